package evaluator

// GeneralBuiltins implements the General structure (§4.E): id, const,
// function composition, ignore, and currying combinators.
func GeneralBuiltins() map[string]Value {
	return map[string]Value{
		"General.id": fn1("General.id", func(ev *Evaluator, a Value) Value { return a }),
		"General.const": fn2("General.const", func(ev *Evaluator, a, b Value) Value { return a }),
		"General.ignore": fn1("General.ignore", func(ev *Evaluator, a Value) Value { return TheUnit }),
		// o(f, g)(x) = f(g(x))
		"General.o": fn3("General.o", func(ev *Evaluator, f, g, x Value) Value {
			gv := apply1(ev, g, x)
			if isFault(gv) {
				return gv
			}
			return apply1(ev, f, gv)
		}),
		"General.curry": fn3("General.curry", func(ev *Evaluator, f, a, b Value) Value {
			return apply1(ev, f, &Tuple{Elements: []Value{a, b}})
		}),
		"General.uncurry": fn2("General.uncurry", func(ev *Evaluator, f, pair Value) Value {
			t, ok := wantTuple(pair)
			if !ok || len(t.Elements) != 2 {
				return typeFault("General.uncurry", pair)
			}
			return apply2(ev, f, t.Elements[0], t.Elements[1])
		}),
		"General.flip": fn3("General.flip", func(ev *Evaluator, f, a, b Value) Value {
			return apply2(ev, f, b, a)
		}),
	}
}
