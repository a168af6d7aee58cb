package evaluator

import (
	"strconv"
	"strings"

	"github.com/funvibe/evalcore/internal/config"
	"github.com/funvibe/evalcore/internal/fault"
)

// IntBuiltins implements the Int structure (§4.E): div/mod are
// floored, quot/rem are truncated, fromString accepts a leading `~`
// for negative, toString writes `~` for negative.
func IntBuiltins() map[string]Value {
	return map[string]Value{
		"Int.+": fn2("Int.+", intArith(func(a, b int64) int64 { return a + b })),
		"Int.-": fn2("Int.-", intArith(func(a, b int64) int64 { return a - b })),
		"Int.*": fn2("Int.*", intArith(func(a, b int64) int64 { return a * b })),
		"Int.~": fn1("Int.~", func(ev *Evaluator, a Value) Value {
			i, ok := wantInt(a)
			if !ok {
				return typeFault("Int.~", a)
			}
			return checkIntBounds("Int.~", -i.Value)
		}),
		"Int.div": fn2("Int.div", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.div", a)
			}
			if y == 0 {
				return newFault(fault.Unpositioned(fault.Div, "Int.div: division by zero"))
			}
			q := x / y
			if (x%y != 0) && ((x < 0) != (y < 0)) {
				q--
			}
			return checkIntBounds("Int.div", q)
		}),
		"Int.mod": fn2("Int.mod", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.mod", a)
			}
			if y == 0 {
				return newFault(fault.Unpositioned(fault.Div, "Int.mod: division by zero"))
			}
			r := x % y
			if r != 0 && ((r < 0) != (y < 0)) {
				r += y
			}
			return Int{Value: r}
		}),
		"Int.quot": fn2("Int.quot", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.quot", a)
			}
			if y == 0 {
				return newFault(fault.Unpositioned(fault.Div, "Int.quot: division by zero"))
			}
			return checkIntBounds("Int.quot", x/y)
		}),
		"Int.rem": fn2("Int.rem", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.rem", a)
			}
			if y == 0 {
				return newFault(fault.Unpositioned(fault.Div, "Int.rem: division by zero"))
			}
			return Int{Value: x % y}
		}),
		"Int.abs": fn1("Int.abs", func(ev *Evaluator, a Value) Value {
			i, ok := wantInt(a)
			if !ok {
				return typeFault("Int.abs", a)
			}
			if i.Value < 0 {
				return checkIntBounds("Int.abs", -i.Value)
			}
			return i
		}),
		"Int.min": fn2("Int.min", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.min", a)
			}
			if x < y {
				return Int{Value: x}
			}
			return Int{Value: y}
		}),
		"Int.max": fn2("Int.max", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.max", a)
			}
			if x > y {
				return Int{Value: x}
			}
			return Int{Value: y}
		}),
		"Int.sign": fn1("Int.sign", func(ev *Evaluator, a Value) Value {
			i, ok := wantInt(a)
			if !ok {
				return typeFault("Int.sign", a)
			}
			switch {
			case i.Value > 0:
				return Int{Value: 1}
			case i.Value < 0:
				return Int{Value: -1}
			default:
				return Int{Value: 0}
			}
		}),
		// sameSign(a,b) true iff strictly same sign or both zero (§4.E).
		"Int.sameSign": fn2("Int.sameSign", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.sameSign", a)
			}
			signOf := func(v int64) int {
				switch {
				case v > 0:
					return 1
				case v < 0:
					return -1
				default:
					return 0
				}
			}
			return BoolOf(signOf(x) == signOf(y))
		}),
		"Int.compare": fn2("Int.compare", func(ev *Evaluator, a, b Value) Value {
			x, y, ok := int2(a, b)
			if !ok {
				return typeFault("Int.compare", a)
			}
			return OrderOf(intCompare64(x, y))
		}),
		"Int.toString": fn1("Int.toString", func(ev *Evaluator, a Value) Value {
			i, ok := wantInt(a)
			if !ok {
				return typeFault("Int.toString", a)
			}
			return String{Value: i.Inspect()}
		}),
		// fromString accepts optional leading spaces, an optional `~`,
		// then digits; returns SOME n or NONE, raises nothing (§4.E).
		"Int.fromString": fn1("Int.fromString", func(ev *Evaluator, a Value) Value {
			s, ok := wantString(a)
			if !ok {
				return typeFault("Int.fromString", a)
			}
			n, ok := parseMLInt(s.Value)
			if !ok {
				return NewOption(nil)
			}
			return NewOption(Int{Value: n})
		}),
		"Int.fromReal": fn1("Int.fromReal", func(ev *Evaluator, a Value) Value {
			r, ok := wantReal(a)
			if !ok {
				return typeFault("Int.fromReal", a)
			}
			return checkIntBounds("Int.fromReal", int64(r.Value))
		}),
		"Int.toReal": fn1("Int.toReal", func(ev *Evaluator, a Value) Value {
			i, ok := wantInt(a)
			if !ok {
				return typeFault("Int.toReal", a)
			}
			return Real{Value: float32(i.Value)}
		}),
		"Int.maxInt": Int{Value: config.IntMaxInt},
		// minInt is the true lower bound, not a second copy of maxInt —
		// see §9's open question and DESIGN.md.
		"Int.minInt": Int{Value: config.IntMinInt},
	}
}

func int2(a, b Value) (int64, int64, bool) {
	x, ok1 := wantInt(a)
	y, ok2 := wantInt(b)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return x.Value, y.Value, true
}

func intArith(f func(a, b int64) int64) func(ev *Evaluator, a, b Value) Value {
	return func(ev *Evaluator, a, b Value) Value {
		x, y, ok := int2(a, b)
		if !ok {
			return typeFault("Int arithmetic", a)
		}
		return checkIntBounds("Int arithmetic", f(x, y))
	}
}

func intCompare64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// parseMLInt implements Int.fromString's grammar: optional leading
// spaces, optional `~` meaning `-`, then digits.
func parseMLInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " ")
	neg := false
	if strings.HasPrefix(s, "~") {
		neg = true
		s = s[1:]
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
