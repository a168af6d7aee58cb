package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/funvibe/evalcore/internal/fault"
)

// RealBuiltins implements the Real structure (§4.E): arithmetic
// operators produce IEEE-754 nan/inf silently on domain violations
// (§7 "division by zero (real) emits nan, not [Div]") — only the
// explicit Real.checkFloat built-in turns an already-produced nan/inf
// into a Div/Overflow fault.
func RealBuiltins() map[string]Value {
	return map[string]Value{
		"Real.+": fn2("Real.+", realArith(func(a, b float32) float32 { return a + b })),
		"Real.-": fn2("Real.-", realArith(func(a, b float32) float32 { return a - b })),
		"Real.*": fn2("Real.*", realArith(func(a, b float32) float32 { return a * b })),
		"Real./": fn2("Real./", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := real2(a, b)
			if !ok {
				return typeFault("Real./", a)
			}
			return Real{Value: x / y}
		}),
		"Real.~": fn1("Real.~", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.~", a)
			}
			return Real{Value: -r.Value}
		}),
		"Real.abs": fn1("Real.abs", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.abs", a)
			}
			return Real{Value: float32(math.Abs(float64(r.Value)))}
		}),
		"Real.min": fn2("Real.min", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := real2(a, b)
			if !ok {
				return typeFault("Real.min", a)
			}
			return Real{Value: float32(math.Min(float64(x), float64(y)))}
		}),
		"Real.max": fn2("Real.max", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := real2(a, b)
			if !ok {
				return typeFault("Real.max", a)
			}
			return Real{Value: float32(math.Max(float64(x), float64(y)))}
		}),
		"Real.sign": fn1("Real.sign", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.sign", a)
			}
			switch {
			case isNaN32(r.Value):
				return newFault(fault.Unpositioned(fault.Domain, "Real.sign: nan has no sign"))
			case r.Value > 0:
				return Int{Value: 1}
			case r.Value < 0:
				return Int{Value: -1}
			default:
				return Int{Value: 0}
			}
		}),
		// signBit/copySign work on the raw IEEE-754 bit, distinct from
		// sign's domain-error-on-nan arithmetic reading (§3, §9).
		"Real.signBit": fn1("Real.signBit", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.signBit", a)
			}
			return BoolOf(RealSignBit(r.Value))
		}),
		"Real.copySign": fn2("Real.copySign", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := real2(a, b)
			if !ok {
				return typeFault("Real.copySign", a)
			}
			return Real{Value: float32(math.Copysign(float64(x), float64(y)))}
		}),
		"Real.compare": fn2("Real.compare", func(ev *Evaluator, a, b Value) Value {
			c, err := Compare(a, b)
			if err != nil {
				return newFault(err)
			}
			return OrderOf(c)
		}),
		"Real.isNan": fn1("Real.isNan", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.isNan", a)
			}
			return BoolOf(isNaN32(r.Value))
		}),
		"Real.isFinite": fn1("Real.isFinite", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.isFinite", a)
			}
			return BoolOf(!isNaN32(r.Value) && !math.IsInf(float64(r.Value), 0))
		}),
		"Real.floor": fn1("Real.floor", func(ev *Evaluator, a Value) Value {
			return realToIntVia("Real.floor", a, math.Floor)
		}),
		"Real.ceil": fn1("Real.ceil", func(ev *Evaluator, a Value) Value {
			return realToIntVia("Real.ceil", a, math.Ceil)
		}),
		"Real.round": fn1("Real.round", func(ev *Evaluator, a Value) Value {
			return realToIntVia("Real.round", a, math.Round)
		}),
		"Real.trunc": fn1("Real.trunc", func(ev *Evaluator, a Value) Value {
			return realToIntVia("Real.trunc", a, math.Trunc)
		}),
		"Real.fromInt": fn1("Real.fromInt", func(ev *Evaluator, a Value) Value {
			i, ok := wantInt(a)
			if !ok {
				return typeFault("Real.fromInt", a)
			}
			return Real{Value: float32(i.Value)}
		}),
		"Real.toString": fn1("Real.toString", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.toString", a)
			}
			return String{Value: FormatReal(r.Value)}
		}),
		"Real.fromString": fn1("Real.fromString", func(ev *Evaluator, a Value) Value {
			s, ok := wantString(a)
			if !ok {
				return typeFault("Real.fromString", a)
			}
			v, ok := parseMLReal(s.Value)
			if !ok {
				return NewOption(nil)
			}
			return NewOption(Real{Value: v})
		}),
		// toManExp/fromManExp expose the binary32 layout directly (§4.E,
		// §9): mantissa normalized to [0.5, 1), exponent such that
		// mantissa * 2^exponent reconstructs the original value.
		"Real.toManExp": fn1("Real.toManExp", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.toManExp", a)
			}
			man, exp := math.Frexp(float64(r.Value))
			return &Tuple{
				Labels:   []string{"exp", "man"},
				Elements: []Value{Int{Value: int64(exp)}, Real{Value: float32(man)}},
			}
		}),
		"Real.fromManExp": fn2("Real.fromManExp", func(ev *Evaluator, a, b Value) Value {
			exp, ok1 := wantInt(a)
			man, ok2 := wantReal(b)
			if !ok1 || !ok2 {
				return typeFault("Real.fromManExp", a)
			}
			return Real{Value: float32(math.Ldexp(float64(man.Value), int(exp.Value)))}
		}),
		// checkFloat is the explicit gate from a possibly nan/inf Real to
		// a fault (§7, §8 "Real.checkFloat Real.posInf raises Overflow;
		// Real.checkFloat (0.0/0.0) raises Div"): arithmetic itself never
		// raises these, only a call to checkFloat does.
		"Real.checkFloat": fn1("Real.checkFloat", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Real.checkFloat", a)
			}
			if isNaN32(r.Value) {
				return newFault(fault.Unpositioned(fault.Div, "Real.checkFloat: nan"))
			}
			if math.IsInf(float64(r.Value), 0) {
				return newFault(fault.Unpositioned(fault.Overflow, "Real.checkFloat: infinite"))
			}
			return r
		}),
		"Real.maxFinite": Real{Value: math.MaxFloat32},
		"Real.minPos":    Real{Value: math.SmallestNonzeroFloat32},
		"Real.posInf":    Real{Value: float32(math.Inf(1))},
		"Real.negInf":    Real{Value: float32(math.Inf(-1))},
	}
}

func real2(a, b Value) (float32, float32, bool) {
	x, ok1 := wantReal(a)
	y, ok2 := wantReal(b)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return x.Value, y.Value, true
}

func realArith(f func(a, b float32) float32) func(ev *Evaluator, a, b Value) Value {
	return func(ev *Evaluator, a, b Value) Value {
		x, y, ok := real2(a, b)
		if !ok {
			return typeFault("Real arithmetic", a)
		}
		return Real{Value: f(x, y)}
	}
}

func realToIntVia(name string, a Value, round func(float64) float64) Value {
	r, ok := wantReal(a)
	if !ok {
		return typeFault(name, a)
	}
	if isNaN32(r.Value) {
		return newFault(fault.Unpositioned(fault.Domain, "%s: nan has no integer value", name))
	}
	if math.IsInf(float64(r.Value), 0) {
		return newFault(fault.Unpositioned(fault.Overflow, "%s: infinite Real has no Int value", name))
	}
	return checkIntBounds(name, int64(round(float64(r.Value))))
}

// parseMLReal implements Real.fromString's grammar: optional leading
// spaces, optional `~`, digits, optional fraction, optional exponent
// (e/E with optional `~` sign).
func parseMLReal(s string) (float32, bool) {
	s = strings.TrimLeft(s, " ")
	neg := false
	if strings.HasPrefix(s, "~") {
		neg = true
		s = s[1:]
	}
	s = strings.ReplaceAll(s, "~", "-")
	if neg {
		s = "-" + s
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}
