package evaluator

import (
	"github.com/funvibe/evalcore/internal/config"
	"github.com/funvibe/evalcore/internal/fault"
)

// VectorBuiltins implements the Vector structure (§4.E). Vector has no
// distinct Value kind (§3 "Vector: same data shape as List"); these
// built-ins operate directly on *List, differing from List only in
// update's Subscript fault and the maxLen ceiling.
func VectorBuiltins() map[string]Value {
	return map[string]Value{
		"Vector.fromList": fn1("Vector.fromList", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Vector.fromList", a)
			}
			return NewList(append([]Value{}, l.Elements...))
		}),
		"Vector.length": fn1("Vector.length", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Vector.length", a)
			}
			return Int{Value: int64(len(l.Elements))}
		}),
		"Vector.sub": fn2("Vector.sub", func(ev *Evaluator, a, b Value) Value {
			l, i, ok := listAndIndex(a, b)
			if !ok {
				return typeFault("Vector.sub", a)
			}
			if i < 0 || i >= int64(len(l.Elements)) {
				return newFault(fault.Unpositioned(fault.Subscript, "Vector.sub: index %d out of range", i))
			}
			return l.Elements[i]
		}),
		"Vector.update": fn3("Vector.update", func(ev *Evaluator, a, b, c Value) Value {
			l, i, ok := listAndIndex(a, b)
			if !ok {
				return typeFault("Vector.update", a)
			}
			if i < 0 || i >= int64(len(l.Elements)) {
				return newFault(fault.Unpositioned(fault.Subscript, "Vector.update: index %d out of range", i))
			}
			out := append([]Value{}, l.Elements...)
			out[i] = c
			return NewList(out)
		}),
		"Vector.tabulate": fn2("Vector.tabulate", func(ev *Evaluator, a, b Value) Value {
			n, ok := wantInt(a)
			if !ok {
				return typeFault("Vector.tabulate", a)
			}
			if _, ok := b.(Applicable); !ok {
				return typeFault("Vector.tabulate", b)
			}
			if n.Value < 0 || n.Value > config.VectorMaxLen {
				return newFault(fault.Unpositioned(fault.Size, "Vector.tabulate: length %d out of range", n.Value))
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
		"Vector.map": fn2("Vector.map", func(ev *Evaluator, a, b Value) Value {
			fn, l, ok := funcAndList(a, b)
			if !ok {
				return typeFault("Vector.map", a)
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
		"Vector.foldl": fn3("Vector.foldl", func(ev *Evaluator, a, b, c Value) Value {
			l, ok := wantList(c)
			if !ok {
				return typeFault("Vector.foldl", c)
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
		"Vector.maxLen": Int{Value: config.VectorMaxLen},
	}
}
