package evaluator

import "github.com/funvibe/evalcore/internal/fault"

// ListBuiltins implements the List structure (§4.E): hd/tl/last raise
// Empty on [], nth/take/drop raise Subscript out of range.
func ListBuiltins() map[string]Value {
	return map[string]Value{
		"List.null": fn1("List.null", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("List.null", a)
			}
			return BoolOf(len(l.Elements) == 0)
		}),
		"List.length": fn1("List.length", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("List.length", a)
			}
			return Int{Value: int64(len(l.Elements))}
		}),
		"List.hd": fn1("List.hd", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("List.hd", a)
			}
			if len(l.Elements) == 0 {
				return newFault(fault.Unpositioned(fault.Empty, "List.hd: empty list"))
			}
			return l.Elements[0]
		}),
		"List.tl": fn1("List.tl", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("List.tl", a)
			}
			if len(l.Elements) == 0 {
				return newFault(fault.Unpositioned(fault.Empty, "List.tl: empty list"))
			}
			return NewList(append([]Value{}, l.Elements[1:]...))
		}),
		"List.last": fn1("List.last", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("List.last", a)
			}
			if len(l.Elements) == 0 {
				return newFault(fault.Unpositioned(fault.Empty, "List.last: empty list"))
			}
			return l.Elements[len(l.Elements)-1]
		}),
		"List.nth": fn2("List.nth", func(ev *Evaluator, a, b Value) Value {
			l, i, ok := listAndIndex(a, b)
			if !ok {
				return typeFault("List.nth", a)
			}
			if i < 0 || i >= int64(len(l.Elements)) {
				return newFault(fault.Unpositioned(fault.Subscript, "List.nth: index %d out of range", i))
			}
			return l.Elements[i]
		}),
		"List.take": fn2("List.take", func(ev *Evaluator, a, b Value) Value {
			l, n, ok := listAndIndex(a, b)
			if !ok {
				return typeFault("List.take", a)
			}
			if n < 0 || n > int64(len(l.Elements)) {
				return newFault(fault.Unpositioned(fault.Subscript, "List.take: %d out of range", n))
			}
			return NewList(append([]Value{}, l.Elements[:n]...))
		}),
		"List.drop": fn2("List.drop", func(ev *Evaluator, a, b Value) Value {
			l, n, ok := listAndIndex(a, b)
			if !ok {
				return typeFault("List.drop", a)
			}
			if n < 0 || n > int64(len(l.Elements)) {
				return newFault(fault.Unpositioned(fault.Subscript, "List.drop: %d out of range", n))
			}
			return NewList(append([]Value{}, l.Elements[n:]...))
		}),
		"List.rev": fn1("List.rev", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("List.rev", a)
			}
			out := make([]Value, len(l.Elements))
			for i, e := range l.Elements {
				out[len(out)-1-i] = e
			}
			return NewList(out)
		}),
		"List.append": fn2("List.append", func(ev *Evaluator, a, b Value) Value {
			x, ok1 := wantList(a)
			y, ok2 := wantList(b)
			if !ok1 || !ok2 {
				return typeFault("List.append", a)
			}
			out := make([]Value, 0, len(x.Elements)+len(y.Elements))
			out = append(out, x.Elements...)
			out = append(out, y.Elements...)
			return NewList(out)
		}),
		"List.concat": fn1("List.concat", func(ev *Evaluator, a Value) Value {
			ll, ok := wantList(a)
			if !ok {
				return typeFault("List.concat", a)
			}
			var out []Value
			for _, e := range ll.Elements {
				sub, ok := wantList(e)
				if !ok {
					return typeFault("List.concat", e)
				}
				out = append(out, sub.Elements...)
			}
			return NewList(out)
		}),
		"List.tabulate": fn2("List.tabulate", func(ev *Evaluator, a, b Value) Value {
			n, ok := wantInt(a)
			if !ok {
				return typeFault("List.tabulate", a)
			}
			if _, ok := b.(Applicable); !ok {
				return typeFault("List.tabulate", b)
			}
			if n.Value < 0 {
				return newFault(fault.Unpositioned(fault.Domain, "List.tabulate: negative length %d", n.Value))
			}
			out := make([]Value, n.Value)
			for i := int64(0); i < n.Value; i++ {
				v := apply1(ev, b, Int{Value: i})
				if isFault(v) {
					return v
				}
				out[i] = v
			}
			return NewList(out)
		}),
		"List.map": fn2("List.map", func(ev *Evaluator, a, b Value) Value {
			fn, l, ok := funcAndList(a, b)
			if !ok {
				return typeFault("List.map", a)
			}
			out := make([]Value, len(l.Elements))
			for i, e := range l.Elements {
				v := apply1(ev, fn, e)
				if isFault(v) {
					return v
				}
				out[i] = v
			}
			return NewList(out)
		}),
		"List.app": fn2("List.app", func(ev *Evaluator, a, b Value) Value {
			fn, l, ok := funcAndList(a, b)
			if !ok {
				return typeFault("List.app", a)
			}
			for _, e := range l.Elements {
				v := apply1(ev, fn, e)
				if isFault(v) {
					return v
				}
			}
			return TheUnit
		}),
		"List.filter": fn2("List.filter", func(ev *Evaluator, a, b Value) Value {
			fn, l, ok := funcAndList(a, b)
			if !ok {
				return typeFault("List.filter", a)
			}
			var out []Value
			for _, e := range l.Elements {
				v := apply1(ev, fn, e)
				if isFault(v) {
					return v
				}
				b, ok := wantBool(v)
				if !ok {
					return typeFault("List.filter", v)
				}
				if b.Value {
					out = append(out, e)
				}
			}
			return NewList(out)
		}),
		"List.exists": fn2("List.exists", func(ev *Evaluator, a, b Value) Value {
			fn, l, ok := funcAndList(a, b)
			if !ok {
				return typeFault("List.exists", a)
			}
			for _, e := range l.Elements {
				v := apply1(ev, fn, e)
				if isFault(v) {
					return v
				}
				bv, ok := wantBool(v)
				if !ok {
					return typeFault("List.exists", v)
				}
				if bv.Value {
					return True
				}
			}
			return False
		}),
		"List.all": fn2("List.all", func(ev *Evaluator, a, b Value) Value {
			fn, l, ok := funcAndList(a, b)
			if !ok {
				return typeFault("List.all", a)
			}
			for _, e := range l.Elements {
				v := apply1(ev, fn, e)
				if isFault(v) {
					return v
				}
				bv, ok := wantBool(v)
				if !ok {
					return typeFault("List.all", v)
				}
				if !bv.Value {
					return False
				}
			}
			return True
		}),
		"List.find": fn2("List.find", func(ev *Evaluator, a, b Value) Value {
			fn, l, ok := funcAndList(a, b)
			if !ok {
				return typeFault("List.find", a)
			}
			for _, e := range l.Elements {
				v := apply1(ev, fn, e)
				if isFault(v) {
					return v
				}
				bv, ok := wantBool(v)
				if !ok {
					return typeFault("List.find", v)
				}
				if bv.Value {
					return NewOption(e)
				}
			}
			return NewOption(nil)
		}),
		// foldl folds left-to-right starting from init; foldr folds
		// right-to-left (§4.E).
		"List.foldl": fn3("List.foldl", func(ev *Evaluator, a, b, c Value) Value {
			l, ok := wantList(c)
			if !ok {
				return typeFault("List.foldl", c)
			}
			acc := b
			for _, e := range l.Elements {
				acc = apply2(ev, a, e, acc)
				if isFault(acc) {
					return acc
				}
			}
			return acc
		}),
		"List.foldr": fn3("List.foldr", func(ev *Evaluator, a, b, c Value) Value {
			l, ok := wantList(c)
			if !ok {
				return typeFault("List.foldr", c)
			}
			acc := b
			for i := len(l.Elements) - 1; i >= 0; i-- {
				acc = apply2(ev, a, l.Elements[i], acc)
				if isFault(acc) {
					return acc
				}
			}
			return acc
		}),
		"List.except": fn2("List.except", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := list2(a, b)
			if !ok {
				return typeFault("List.except", a)
			}
			var out []Value
			for _, e := range x {
				found := false
				for _, o := range y {
					if Equal(e, o) {
						found = true
						break
					}
				}
				if !found {
					out = append(out, e)
				}
			}
			return NewList(out)
		}),
		"List.intersect": fn2("List.intersect", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := list2(a, b)
			if !ok {
				return typeFault("List.intersect", a)
			}
			var out []Value
			for _, e := range x {
				for _, o := range y {
					if Equal(e, o) {
						out = append(out, e)
						break
					}
				}
			}
			return NewList(out)
		}),
	}
}

func listAndIndex(a, b Value) (*List, int64, bool) {
	l, ok1 := wantList(a)
	i, ok2 := wantInt(b)
	if !ok1 || !ok2 {
		return nil, 0, false
	}
	return l, i.Value, true
}

func funcAndList(a, b Value) (Value, *List, bool) {
	l, ok := wantList(b)
	if !ok {
		return nil, nil, false
	}
	if _, ok := a.(Applicable); !ok {
		return nil, nil, false
	}
	return a, l, true
}

func list2(a, b Value) ([]Value, []Value, bool) {
	x, ok1 := wantList(a)
	y, ok2 := wantList(b)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return x.Elements, y.Elements, true
}
