package evaluator

// BagBuiltins implements the Bag structure (§4.E: "List/Bag: identical
// operations" — a Bag is an insertion-ordered *List, same as Vector;
// §9 resolves the open question of iteration order for foldl/add by
// keeping first-insertion order, matching List rather than inventing a
// second unordered representation).
func BagBuiltins() map[string]Value {
	return map[string]Value{
		"Bag.empty": NewList(nil),
		"Bag.isEmpty": fn1("Bag.isEmpty", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Bag.isEmpty", a)
			}
			return BoolOf(len(l.Elements) == 0)
		}),
		"Bag.count": fn1("Bag.count", func(ev *Evaluator, a Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Bag.count", a)
			}
			return Int{Value: int64(len(l.Elements))}
		}),
		"Bag.add": fn2("Bag.add", func(ev *Evaluator, a, b Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Bag.add", a)
			}
			out := append(append([]Value{}, l.Elements...), b)
			return NewList(out)
		}),
		"Bag.member": fn2("Bag.member", func(ev *Evaluator, a, b Value) Value {
			l, ok := wantList(a)
			if !ok {
				return typeFault("Bag.member", a)
			}
			for _, e := range l.Elements {
				if Equal(e, b) {
					return True
				}
			}
			return False
		}),
		"Bag.union": fn2("Bag.union", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := list2(a, b)
			if !ok {
				return typeFault("Bag.union", a)
			}
			out := append(append([]Value{}, x...), y...)
			return NewList(out)
		}),
		"Bag.intersection": fn2("Bag.intersection", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := list2(a, b)
			if !ok {
				return typeFault("Bag.intersection", a)
			}
			used := make([]bool, len(y))
			var out []Value
			for _, e := range x {
				for i, o := range y {
					if !used[i] && Equal(e, o) {
						used[i] = true
						out = append(out, e)
						break
					}
				}
			}
			return NewList(out)
		}),
		"Bag.difference": fn2("Bag.difference", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := list2(a, b)
			if !ok {
				return typeFault("Bag.difference", a)
			}
			used := make([]bool, len(y))
			var out []Value
			for _, e := range x {
				removed := false
				for i, o := range y {
					if !used[i] && Equal(e, o) {
						used[i] = true
						removed = true
						break
					}
				}
				if !removed {
					out = append(out, e)
				}
			}
			return NewList(out)
		}),
		"Bag.foldl": fn3("Bag.foldl", func(ev *Evaluator, a, b, c Value) Value {
			l, ok := wantList(c)
			if !ok {
				return typeFault("Bag.foldl", c)
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
	}
}
