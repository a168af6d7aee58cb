package evaluator

import (
	"github.com/funvibe/evalcore/internal/config"
	"github.com/funvibe/evalcore/internal/fault"
)

// argFault builds the fixed-arity mismatch fault every native builtin
// wrapper raises when Go code (not the type checker) is the only
// thing left checking arity — defensive, since the frontend's types
// should already guarantee this, mirroring the teacher's "wrong
// number of arguments" builtin checks (builtins.go).
func argFault(name string, want, got int) Value {
	return newFault(fault.Unpositioned(fault.Error, "%s expects %d argument(s), got %d", name, want, got))
}

func wantInt(v Value) (Int, bool)       { i, ok := v.(Int); return i, ok }
func wantReal(v Value) (Real, bool)     { r, ok := v.(Real); return r, ok }
func wantChar(v Value) (Char, bool)     { c, ok := v.(Char); return c, ok }
func wantString(v Value) (String, bool) { s, ok := v.(String); return s, ok }
func wantBool(v Value) (Bool, bool)     { b, ok := v.(Bool); return b, ok }
func wantList(v Value) (*List, bool)    { l, ok := v.(*List); return l, ok }
func wantTuple(v Value) (*Tuple, bool)  { t, ok := v.(*Tuple); return t, ok }

func typeFault(name string, v Value) Value {
	return newFault(fault.Unpositioned(fault.Error, "%s: unexpected argument of kind %s", name, v.Kind()))
}

// checkIntBounds enforces §3's "overflow is a domain error": any
// arithmetic result outside the 32-bit signed range raises Overflow
// rather than wrapping.
func checkIntBounds(name string, v int64) Value {
	if v > config.IntMaxInt || v < config.IntMinInt {
		return newFault(fault.Unpositioned(fault.Overflow, "%s: result %d overflows Int", name, v))
	}
	return Int{Value: v}
}

// fn1/fn2/fn3 build an unpositioned *Fn of the given arity (the arity-4
// form is fn4Helper in builtins_listpair.go), reducing
// the per-builtin boilerplate of checking len(args) (mirrors the
// teacher's uniform `Fn: func(e *Evaluator, args ...Object) Object`
// shape, specialized per arity since this core threads Applicable's
// fixed Arity()).
func fn1(name string, f func(ev *Evaluator, a Value) Value) *Fn {
	return &Fn{Name: name, ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
		if len(args) != 1 {
			return argFault(name, 1, len(args))
		}
		return f(ev, args[0])
	}}
}

func fn2(name string, f func(ev *Evaluator, a, b Value) Value) *Fn {
	return &Fn{Name: name, ArityN: 2, Fn: func(ev *Evaluator, args []Value) Value {
		if len(args) != 2 {
			return argFault(name, 2, len(args))
		}
		return f(ev, args[0], args[1])
	}}
}

func fn3(name string, f func(ev *Evaluator, a, b, c Value) Value) *Fn {
	return &Fn{Name: name, ArityN: 3, Fn: func(ev *Evaluator, args []Value) Value {
		if len(args) != 3 {
			return argFault(name, 3, len(args))
		}
		return f(ev, args[0], args[1], args[2])
	}}
}

// apply1/apply2/apply3 invoke a callback Value (a Closure or Fn, as
// higher-order builtins like List.map/List.foldl accept, §4.E) with
// no source position of its own — the position is whatever frame the
// caller is already in, so faults from inside the callback surface
// unpositioned rather than pointing at the builtin's own call site.
func apply1(ev *Evaluator, fn, a Value) Value {
	return applyValue(ev, fn, []Value{a}, fault.Pos{})
}

func apply2(ev *Evaluator, fn, a, b Value) Value {
	return applyValue(ev, fn, []Value{a, b}, fault.Pos{})
}

func apply3(ev *Evaluator, fn, a, b, c Value) Value {
	return applyValue(ev, fn, []Value{a, b, c}, fault.Pos{})
}
