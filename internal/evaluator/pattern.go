package evaluator

import "fmt"

// Pattern is the compile-time pattern node the frontend hands the
// core (component C, §4.C). The op set is closed; any other
// implementation is a compile-time error leaked to runtime — bindInto's
// default case panics rather than reporting an ordinary failed match,
// since an unrecognized Pattern kind means the frontend emitted IR
// this core was never told how to bind, not that a value failed to
// match a known pattern.
type Pattern interface{ patternNode() }

type IdPattern struct{}

func (IdPattern) patternNode() {}

// AsPattern reserves the current slot, recurses into Inner, and on
// success overwrites the reserved slot with the whole value (§4.C
// "As(inner, …)").
type AsPattern struct{ Inner Pattern }

func (AsPattern) patternNode() {}

type WildcardPattern struct{}

func (WildcardPattern) patternNode() {}

type LiteralBoolPattern struct{ Value bool }

func (LiteralBoolPattern) patternNode() {}

type LiteralCharPattern struct{ Value uint8 }

func (LiteralCharPattern) patternNode() {}

type LiteralStringPattern struct{ Value string }

func (LiteralStringPattern) patternNode() {}

// LiteralIntPattern compares by decimal (32-bit int) value equality
// (§4.C "Literal(int)").
type LiteralIntPattern struct{ Value int64 }

func (LiteralIntPattern) patternNode() {}

// LiteralRealPattern compares by numeric double-precision-equivalent
// equality, never bit-equality (§4.C "Literal(real)").
type LiteralRealPattern struct{ Value float32 }

func (LiteralRealPattern) patternNode() {}

type TuplePattern struct{ Elems []Pattern }

func (TuplePattern) patternNode() {}

// RecordPattern behaves exactly like TuplePattern — the engine matches
// against the underlying Tuple's positional Elements; Labels (if any)
// are metadata the value model carries only for printing (§9 "Record
// vs. tuple").
type RecordPattern struct{ Elems []Pattern }

func (RecordPattern) patternNode() {}

type ListPattern struct{ Elems []Pattern }

func (ListPattern) patternNode() {}

// ConsPattern matches a non-empty list: Head against V[0], Tail
// against V[1:] (§4.C "Cons(head,tail)").
type ConsPattern struct{ Head, Tail Pattern }

func (ConsPattern) patternNode() {}

// Con0Pattern matches a nullary datatype constructor, or a 2-list
// whose head equals Tag (§4.C "Con0(tag)").
type Con0Pattern struct{ Tag string }

func (Con0Pattern) patternNode() {}

// ConPattern matches a unary datatype constructor (or a 2-list
// [tag, payload]), recursing Inner on the payload (§4.C "Con(tag,
// inner)").
type ConPattern struct {
	Tag   string
	Inner Pattern
}

func (ConPattern) patternNode() {}

// Bind attaches a fresh Pattern frame over outer driven by pat and
// names (whose length must equal NumSlots(pat)), matches val against
// it, and returns the extended environment plus whether the match
// succeeded — the combination Closure.Invoke, Let1 and the query
// engine's generator clauses all need (§4.D, §4.F).
func Bind(pat Pattern, names []string, val Value, outer *Environment) (*Environment, bool) {
	frame := outer.BindPattern(pat, names)
	return frame, frame.SetOpt(val)
}

// NumSlots returns how many slots pat requires — the length names
// must have when calling Bind/Environment.BindPattern with pat (§4.C:
// "the slot counter is reset on each invocation").
func NumSlots(pat Pattern) int { return countSlots(pat) }

func countSlots(pat Pattern) int {
	switch p := pat.(type) {
	case IdPattern:
		return 1
	case AsPattern:
		return 1 + countSlots(p.Inner)
	case WildcardPattern, LiteralBoolPattern, LiteralCharPattern,
		LiteralStringPattern, LiteralIntPattern, LiteralRealPattern, Con0Pattern:
		return 0
	case TuplePattern:
		n := 0
		for _, e := range p.Elems {
			n += countSlots(e)
		}
		return n
	case RecordPattern:
		n := 0
		for _, e := range p.Elems {
			n += countSlots(e)
		}
		return n
	case ListPattern:
		n := 0
		for _, e := range p.Elems {
			n += countSlots(e)
		}
		return n
	case ConsPattern:
		return countSlots(p.Head) + countSlots(p.Tail)
	case ConPattern:
		return countSlots(p.Inner)
	default:
		return 0
	}
}

// bindInto is the core dispatch of §4.C: match pat against val,
// writing into slots in declared order starting at *counter. Returns
// false (no partial writes that survive to the caller — slots is
// always a scratch buffer owned by Environment.SetOpt) on failure.
func bindInto(pat Pattern, val Value, slots []Value, counter *int) bool {
	switch p := pat.(type) {
	case IdPattern:
		slots[*counter] = val
		*counter++
		return true

	case AsPattern:
		reserved := *counter
		*counter++
		if !bindInto(p.Inner, val, slots, counter) {
			return false
		}
		slots[reserved] = val
		return true

	case WildcardPattern:
		return true

	case LiteralBoolPattern:
		b, ok := val.(Bool)
		return ok && b.Value == p.Value

	case LiteralCharPattern:
		c, ok := val.(Char)
		return ok && c.Value == p.Value

	case LiteralStringPattern:
		s, ok := val.(String)
		return ok && s.Value == p.Value

	case LiteralIntPattern:
		i, ok := val.(Int)
		return ok && i.Value == p.Value

	case LiteralRealPattern:
		r, ok := val.(Real)
		return ok && float64(r.Value) == float64(p.Value)

	case TuplePattern:
		t, ok := val.(*Tuple)
		if !ok || len(t.Elements) != len(p.Elems) {
			return false
		}
		for i, sub := range p.Elems {
			if !bindInto(sub, t.Elements[i], slots, counter) {
				return false
			}
		}
		return true

	case RecordPattern:
		t, ok := val.(*Tuple)
		if !ok || len(t.Elements) != len(p.Elems) {
			return false
		}
		for i, sub := range p.Elems {
			if !bindInto(sub, t.Elements[i], slots, counter) {
				return false
			}
		}
		return true

	case ListPattern:
		l, ok := val.(*List)
		if !ok || l.Len() != len(p.Elems) {
			return false
		}
		for i, sub := range p.Elems {
			if !bindInto(sub, l.Elements[i], slots, counter) {
				return false
			}
		}
		return true

	case ConsPattern:
		l, ok := val.(*List)
		if !ok || l.Len() == 0 {
			return false
		}
		if !bindInto(p.Head, l.Elements[0], slots, counter) {
			return false
		}
		return bindInto(p.Tail, NewList(l.Elements[1:]), slots, counter)

	case Con0Pattern:
		if v, ok := val.(*Variant); ok {
			return v.Tag == p.Tag && v.Payload == nil
		}
		if l, ok := val.(*List); ok && l.Len() == 2 {
			if s, ok := l.Elements[0].(String); ok {
				return s.Value == p.Tag
			}
		}
		return false

	case ConPattern:
		if v, ok := val.(*Variant); ok && v.Tag == p.Tag && v.Payload != nil {
			return bindInto(p.Inner, v.Payload, slots, counter)
		}
		if l, ok := val.(*List); ok && l.Len() == 2 {
			if s, ok := l.Elements[0].(String); ok && s.Value == p.Tag {
				return bindInto(p.Inner, l.Elements[1], slots, counter)
			}
		}
		return false

	default:
		panic(fmt.Sprintf("evaluator: unrecognized Pattern kind %T", pat))
	}
}
