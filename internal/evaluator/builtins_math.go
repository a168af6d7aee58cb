package evaluator

import (
	"math"

	"github.com/funvibe/evalcore/internal/fault"
)

// MathBuiltins implements the Math structure (§4.E): the transcendental
// functions over Real, raising Domain when the mathematical domain is
// violated (negative sqrt/ln, out-of-range asin/acos) rather than
// silently producing nan (§7 "Domain | ... other domain errors").
func MathBuiltins() map[string]Value {
	return map[string]Value{
		"Math.pi": Real{Value: float32(math.Pi)},
		"Math.e":  Real{Value: float32(math.E)},
		"Math.sqrt": fn1("Math.sqrt", mathUnary("Math.sqrt", func(v float64) (float64, bool) {
			if v < 0 {
				return 0, false
			}
			return math.Sqrt(v), true
		})),
		"Math.sin": fn1("Math.sin", mathUnary("Math.sin", func(v float64) (float64, bool) { return math.Sin(v), true })),
		"Math.cos": fn1("Math.cos", mathUnary("Math.cos", func(v float64) (float64, bool) { return math.Cos(v), true })),
		"Math.tan": fn1("Math.tan", mathUnary("Math.tan", func(v float64) (float64, bool) { return math.Tan(v), true })),
		"Math.asin": fn1("Math.asin", mathUnary("Math.asin", func(v float64) (float64, bool) {
			if v < -1 || v > 1 {
				return 0, false
			}
			return math.Asin(v), true
		})),
		"Math.acos": fn1("Math.acos", mathUnary("Math.acos", func(v float64) (float64, bool) {
			if v < -1 || v > 1 {
				return 0, false
			}
			return math.Acos(v), true
		})),
		"Math.atan": fn1("Math.atan", mathUnary("Math.atan", func(v float64) (float64, bool) { return math.Atan(v), true })),
		"Math.atan2": fn2("Math.atan2", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := real2(a, b)
			if !ok {
				return typeFault("Math.atan2", a)
			}
			return Real{Value: float32(math.Atan2(float64(x), float64(y)))}
		}),
		"Math.exp": fn1("Math.exp", mathUnary("Math.exp", func(v float64) (float64, bool) { return math.Exp(v), true })),
		"Math.ln": fn1("Math.ln", mathUnary("Math.ln", func(v float64) (float64, bool) {
			if v <= 0 {
				return 0, false
			}
			return math.Log(v), true
		})),
		"Math.pow": fn2("Math.pow", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := real2(a, b)
			if !ok {
				return typeFault("Math.pow", a)
			}
			return Real{Value: float32(math.Pow(float64(x), float64(y)))}
		}),
	}
}

func mathUnary(name string, f func(float64) (float64, bool)) func(ev *Evaluator, a Value) Value {
	return func(ev *Evaluator, a Value) Value {
		r, ok := wantReal(a)
		if !ok {
			return typeFault(name, a)
		}
		v, ok := f(float64(r.Value))
		if !ok {
			return newFault(fault.Unpositioned(fault.Domain, "%s: argument out of domain", name))
		}
		return Real{Value: float32(v)}
	}
}
