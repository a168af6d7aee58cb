package evaluator

import "github.com/funvibe/evalcore/internal/fault"

// CharBuiltins implements the Char structure (§4.E): chr/ord bounds
// checking, succ/pred boundary faults, and the is* classifiers whose
// contracts are spelled out exactly ("isGraph = !..~ (0x21..0x7E);
// isPrint = graph ∪ space; isCntrl = ascii ∧ ¬print; isSpace =
// \t..\r ∪ space").
func CharBuiltins() map[string]Value {
	return map[string]Value{
		"Char.chr": fn1("Char.chr", func(ev *Evaluator, a Value) Value {
			i, ok := wantInt(a)
			if !ok {
				return typeFault("Char.chr", a)
			}
			if i.Value < 0 || i.Value > 255 {
				return newFault(fault.Unpositioned(fault.Chr, "Char.chr: %d out of range 0..255", i.Value))
			}
			return Char{Value: uint8(i.Value)}
		}),
		"Char.ord": fn1("Char.ord", func(ev *Evaluator, a Value) Value {
			c, ok := wantChar(a)
			if !ok {
				return typeFault("Char.ord", a)
			}
			return Int{Value: int64(c.Value)}
		}),
		"Char.succ": fn1("Char.succ", func(ev *Evaluator, a Value) Value {
			c, ok := wantChar(a)
			if !ok {
				return typeFault("Char.succ", a)
			}
			if c.Value == 255 {
				return newFault(fault.Unpositioned(fault.Chr, "Char.succ: 255 has no successor"))
			}
			return Char{Value: c.Value + 1}
		}),
		"Char.pred": fn1("Char.pred", func(ev *Evaluator, a Value) Value {
			c, ok := wantChar(a)
			if !ok {
				return typeFault("Char.pred", a)
			}
			if c.Value == 0 {
				return newFault(fault.Unpositioned(fault.Chr, "Char.pred: 0 has no predecessor"))
			}
			return Char{Value: c.Value - 1}
		}),
		"Char.isAlpha":    fn1("Char.isAlpha", charPred(isAlpha)),
		"Char.isDigit":    fn1("Char.isDigit", charPred(isDigit)),
		"Char.isAlphaNum": fn1("Char.isAlphaNum", charPred(func(c uint8) bool { return isAlpha(c) || isDigit(c) })),
		"Char.isHexDigit": fn1("Char.isHexDigit", charPred(isHexDigit)),
		"Char.isUpper":    fn1("Char.isUpper", charPred(func(c uint8) bool { return c >= 'A' && c <= 'Z' })),
		"Char.isLower":    fn1("Char.isLower", charPred(func(c uint8) bool { return c >= 'a' && c <= 'z' })),
		"Char.isSpace":    fn1("Char.isSpace", charPred(isCharSpace)),
		"Char.isGraph":    fn1("Char.isGraph", charPred(isGraph)),
		"Char.isPrint":    fn1("Char.isPrint", charPred(func(c uint8) bool { return isGraph(c) || c == ' ' })),
		"Char.isCntrl":    fn1("Char.isCntrl", charPred(func(c uint8) bool { return c < 128 && !(isGraph(c) || c == ' ') })),
		"Char.isPunct":    fn1("Char.isPunct", charPred(func(c uint8) bool { return isGraph(c) && !isAlpha(c) && !isDigit(c) })),
		"Char.isAscii":    fn1("Char.isAscii", charPred(func(c uint8) bool { return c < 128 })),
		"Char.toUpper": fn1("Char.toUpper", func(ev *Evaluator, a Value) Value {
			c, ok := wantChar(a)
			if !ok {
				return typeFault("Char.toUpper", a)
			}
			if c.Value >= 'a' && c.Value <= 'z' {
				return Char{Value: c.Value - 32}
			}
			return c
		}),
		"Char.toLower": fn1("Char.toLower", func(ev *Evaluator, a Value) Value {
			c, ok := wantChar(a)
			if !ok {
				return typeFault("Char.toLower", a)
			}
			if c.Value >= 'A' && c.Value <= 'Z' {
				return Char{Value: c.Value + 32}
			}
			return c
		}),
		"Char.compare": fn2("Char.compare", func(ev *Evaluator, a, b Value) Value {
			c, err := Compare(a, b)
			if err != nil {
				return newFault(err)
			}
			return OrderOf(c)
		}),
		"Char.minChar": Char{Value: 0},
		"Char.maxChar": Char{Value: 255},
	}
}

func charPred(p func(uint8) bool) func(ev *Evaluator, a Value) Value {
	return func(ev *Evaluator, a Value) Value {
		c, ok := wantChar(a)
		if !ok {
			return typeFault("Char predicate", a)
		}
		return BoolOf(p(c.Value))
	}
}

func isAlpha(c uint8) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c uint8) bool { return c >= '0' && c <= '9' }
func isHexDigit(c uint8) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isGraph is !..~ (0x21..0x7E) per §4.E.
func isGraph(c uint8) bool { return c >= 0x21 && c <= 0x7E }

// isCharSpace is \t..\r ∪ space per §4.E.
func isCharSpace(c uint8) bool { return (c >= '\t' && c <= '\r') || c == ' ' }
