package evaluator

import "github.com/funvibe/evalcore/internal/fault"

// RelationalBuiltins implements the Relational structure (§4.E):
// count/sum/min/max work over a List regardless of whether its
// elements are Int or Real (§4.E "sum dispatches on element type");
// only raises Empty on [] and Size on a list of more than one element;
// iterate computes `list ++ more` repeatedly until `more` is empty.
func RelationalBuiltins() map[string]Value {
	return map[string]Value{
		"Relational.count": fn1("Relational.count", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Relational.count", a)
			}
			return Int{Value: int64(len(l.Elements))}
		}),
		"Relational.sum": fn1("Relational.sum", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Relational.sum", a)
			}
			if len(l.Elements) == 0 {
				return Int{Value: 0}
			}
			switch l.Elements[0].(type) {
			case Int:
				var sum int64
				for _, e := range l.Elements {
					i, ok := wantInt(e)
					if !ok {
						return typeFault("Relational.sum", e)
					}
					sum += i.Value
					if r := checkIntBounds("Relational.sum", sum); isFault(r) {
						return r
					}
				}
				return Int{Value: sum}
			case Real:
				var sum float32
				for _, e := range l.Elements {
					r, ok := wantReal(e)
					if !ok {
						return typeFault("Relational.sum", e)
					}
					sum += r.Value
				}
				return Real{Value: sum}
			default:
				return typeFault("Relational.sum", l.Elements[0])
			}
		}),
		"Relational.min": fn1("Relational.min", func(ev *Evaluator, a Value) Value {
			return relationalExtreme(a, -1)
		}),
		"Relational.max": fn1("Relational.max", func(ev *Evaluator, a Value) Value {
			return relationalExtreme(a, 1)
		}),
		"Relational.only": fn1("Relational.only", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Relational.only", a)
			}
			switch len(l.Elements) {
			case 0:
				return newFault(fault.Unpositioned(fault.Empty, "Relational.only: empty list"))
			case 1:
				return l.Elements[0]
			default:
				return newFault(fault.Unpositioned(fault.Size, "Relational.only: more than one element"))
			}
		}),
		// iterate(list, f) repeatedly computes more = f(list, newest)
		// starting from newest = list, appending more until it is empty,
		// returning the full accumulated list.
		"Relational.iterate": fn2("Relational.iterate", func(ev *Evaluator, a, b Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Relational.iterate", a)
			}
			if _, ok := b.(Applicable); !ok {
				return typeFault("Relational.iterate", b)
			}
			acc := append([]Value{}, l.Elements...)
			newest := NewList(append([]Value{}, l.Elements...))
			for {
				more := apply2(ev, b, NewList(acc), newest)
				if isFault(more) {
					return more
				}
				ml, ok := wantList(more)
				if !ok {
					return typeFault("Relational.iterate", more)
				}
				if len(ml.Elements) == 0 {
					break
				}
				acc = append(acc, ml.Elements...)
				newest = ml
			}
			return NewList(acc)
		}),
		// compare is a generic comparator refined by a type hook (§4.E,
		// §3 Fn.Refine): the Refine field lets the frontend narrow which
		// Compare variant applies at a given call site without a second
		// registry entry per type.
		"Relational.compare": &Fn{
			Name:   "Relational.compare",
			ArityN: 2,
			Fn: func(ev *Evaluator, args []Value) Value {
				if len(args) != 2 {
					return argFault("Relational.compare", 2, len(args))
				}
				c, err := Compare(args[0], args[1])
				if err != nil {
					return newFault(err)
				}
				return OrderOf(c)
			},
			Refine: func(args []Value) Value {
				if len(args) != 2 {
					return argFault("Relational.compare", 2, len(args))
				}
				c, err := Compare(args[0], args[1])
				if err != nil {
					return newFault(err)
				}
				return OrderOf(c)
			},
		},
	}
}

func relationalExtreme(a Value, want int) Value {
	l, ok := wantList(a)
	if !ok {
		return typeFault("Relational.min/max", a)
	}
	if len(l.Elements) == 0 {
		return newFault(fault.Unpositioned(fault.Empty, "Relational.min/max: empty list"))
	}
	best := l.Elements[0]
	for _, e := range l.Elements[1:] {
		c, err := Compare(e, best)
		if err != nil {
			return newFault(err)
		}
		if (want < 0 && c < 0) || (want > 0 && c > 0) {
			best = e
		}
	}
	return best
}
