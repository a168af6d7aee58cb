package evaluator

import "github.com/funvibe/evalcore/internal/fault"

// ListPairBuiltins implements the ListPair structure (§4.E): the *Eq
// variants (zipEq, appEq, allEq, existsEq, foldlEq, foldrEq) raise
// UnequalLengths when the two lists differ in length; the plain
// variants (zip, unzip, map, app, all, exists, fold) truncate to the
// shorter length instead.
func ListPairBuiltins() map[string]Value {
	return map[string]Value{
		"ListPair.zip": fn2("ListPair.zip", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := list2(a, b)
			if !ok {
				return typeFault("ListPair.zip", a)
			}
			n := minLen(len(x), len(y))
			out := make([]Value, n)
			for i := 0; i < n; i++ {
				out[i] = &Tuple{Elements: []Value{x[i], y[i]}}
			}
			return NewList(out)
		}),
		"ListPair.zipEq": fn2("ListPair.zipEq", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := list2(a, b)
			if !ok {
				return typeFault("ListPair.zipEq", a)
			}
			if len(x) != len(y) {
				return newFault(fault.Unpositioned(fault.UnequalLengths, "ListPair.zipEq: lengths %d and %d differ", len(x), len(y)))
			}
			out := make([]Value, len(x))
			for i := range x {
				out[i] = &Tuple{Elements: []Value{x[i], y[i]}}
			}
			return NewList(out)
		}),
		"ListPair.unzip": fn1("ListPair.unzip", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("ListPair.unzip", a)
			}
			xs := make([]Value, len(l.Elements))
			ys := make([]Value, len(l.Elements))
			for i, e := range l.Elements {
				t, ok := wantTuple(e)
				if !ok || len(t.Elements) != 2 {
					return typeFault("ListPair.unzip", e)
				}
				xs[i] = t.Elements[0]
				ys[i] = t.Elements[1]
			}
			return &Tuple{Elements: []Value{NewList(xs), NewList(ys)}}
		}),
		"ListPair.map": fn3("ListPair.map", func(ev *Evaluator, a, b, c Value) Value {
			x, y, ok := list2(b, c)
			if !ok {
				return typeFault("ListPair.map", b)
			}
			n := minLen(len(x), len(y))
			out := make([]Value, n)
			for i := 0; i < n; i++ {
				v := apply2(ev, a, x[i], y[i])
				if isFault(v) {
					return v
				}
				out[i] = v
			}
			return NewList(out)
		}),
		"ListPair.mapEq": fn3("ListPair.mapEq", func(ev *Evaluator, a, b, c Value) Value {
			x, y, ok := list2(b, c)
			if !ok {
				return typeFault("ListPair.mapEq", b)
			}
			if len(x) != len(y) {
				return newFault(fault.Unpositioned(fault.UnequalLengths, "ListPair.mapEq: lengths %d and %d differ", len(x), len(y)))
			}
			out := make([]Value, len(x))
			for i := range x {
				v := apply2(ev, a, x[i], y[i])
				if isFault(v) {
					return v
				}
				out[i] = v
			}
			return NewList(out)
		}),
		"ListPair.app": fn3("ListPair.app", func(ev *Evaluator, a, b, c Value) Value {
			x, y, ok := list2(b, c)
			if !ok {
				return typeFault("ListPair.app", b)
			}
			n := minLen(len(x), len(y))
			for i := 0; i < n; i++ {
				v := apply2(ev, a, x[i], y[i])
				if isFault(v) {
					return v
				}
			}
			return TheUnit
		}),
		"ListPair.appEq": fn3("ListPair.appEq", func(ev *Evaluator, a, b, c Value) Value {
			x, y, ok := list2(b, c)
			if !ok {
				return typeFault("ListPair.appEq", b)
			}
			if len(x) != len(y) {
				return newFault(fault.Unpositioned(fault.UnequalLengths, "ListPair.appEq: lengths %d and %d differ", len(x), len(y)))
			}
			for i := range x {
				v := apply2(ev, a, x[i], y[i])
				if isFault(v) {
					return v
				}
			}
			return TheUnit
		}),
		"ListPair.all": fn3("ListPair.all", func(ev *Evaluator, a, b, c Value) Value {
			return listPairAll(ev, a, b, c, false)
		}),
		"ListPair.allEq": fn3("ListPair.allEq", func(ev *Evaluator, a, b, c Value) Value {
			return listPairAll(ev, a, b, c, true)
		}),
		"ListPair.exists": fn3("ListPair.exists", func(ev *Evaluator, a, b, c Value) Value {
			return listPairExists(ev, a, b, c, false)
		}),
		"ListPair.existsEq": fn3("ListPair.existsEq", func(ev *Evaluator, a, b, c Value) Value {
			return listPairExists(ev, a, b, c, true)
		}),
		"ListPair.foldl": fn4Helper("ListPair.foldl", func(ev *Evaluator, f, init, la, lb Value) Value {
			return listPairFold(ev, f, init, la, lb, false, false)
		}),
		"ListPair.foldlEq": fn4Helper("ListPair.foldlEq", func(ev *Evaluator, f, init, la, lb Value) Value {
			return listPairFold(ev, f, init, la, lb, false, true)
		}),
		"ListPair.foldr": fn4Helper("ListPair.foldr", func(ev *Evaluator, f, init, la, lb Value) Value {
			return listPairFold(ev, f, init, la, lb, true, false)
		}),
		"ListPair.foldrEq": fn4Helper("ListPair.foldrEq", func(ev *Evaluator, f, init, la, lb Value) Value {
			return listPairFold(ev, f, init, la, lb, true, true)
		}),
	}
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func listPairAll(ev *Evaluator, f, a, b Value, eq bool) Value {
	x, y, ok := list2(a, b)
	if !ok {
		return typeFault("ListPair.all", a)
	}
	if eq && len(x) != len(y) {
		return newFault(fault.Unpositioned(fault.UnequalLengths, "ListPair.allEq: lengths %d and %d differ", len(x), len(y)))
	}
	n := minLen(len(x), len(y))
	for i := 0; i < n; i++ {
		v := apply2(ev, f, x[i], y[i])
		if isFault(v) {
			return v
		}
		bv, ok := wantBool(v)
		if !ok || !bv.Value {
			return False
		}
	}
	return True
}

func listPairExists(ev *Evaluator, f, a, b Value, eq bool) Value {
	x, y, ok := list2(a, b)
	if !ok {
		return typeFault("ListPair.exists", a)
	}
	if eq && len(x) != len(y) {
		return newFault(fault.Unpositioned(fault.UnequalLengths, "ListPair.existsEq: lengths %d and %d differ", len(x), len(y)))
	}
	n := minLen(len(x), len(y))
	for i := 0; i < n; i++ {
		v := apply2(ev, f, x[i], y[i])
		if isFault(v) {
			return v
		}
		bv, ok := wantBool(v)
		if ok && bv.Value {
			return True
		}
	}
	return False
}

func listPairFold(ev *Evaluator, f, init, a, b Value, reverse, eq bool) Value {
	x, y, ok := list2(a, b)
	if !ok {
		return typeFault("ListPair.fold", a)
	}
	if eq && len(x) != len(y) {
		return newFault(fault.Unpositioned(fault.UnequalLengths, "ListPair.foldEq: lengths %d and %d differ", len(x), len(y)))
	}
	n := minLen(len(x), len(y))
	acc := init
	if !reverse {
		for i := 0; i < n; i++ {
			acc = apply3(ev, f, x[i], y[i], acc)
			if isFault(acc) {
				return acc
			}
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			acc = apply3(ev, f, x[i], y[i], acc)
			if isFault(acc) {
				return acc
			}
		}
	}
	return acc
}

// fn4Helper builds a 4-ary builtin; ListPair's fold variants are the
// only group needing arity 4, so the helper lives here rather than in
// helpers.go's fn1..fn3 family.
func fn4Helper(name string, f func(ev *Evaluator, a, b, c, d Value) Value) *Fn {
	return &Fn{Name: name, ArityN: 4, Fn: func(ev *Evaluator, args []Value) Value {
		if len(args) != 4 {
			return argFault(name, 4, len(args))
		}
		return f(ev, args[0], args[1], args[2], args[3])
	}}
}
