package evaluator

import (
	"github.com/funvibe/evalcore/internal/config"
	"github.com/funvibe/evalcore/internal/fault"
)

// OptionBuiltins implements the Option structure (§4.E): Option has no
// distinct Value kind, just the NONE/SOME Variant convention (§3).
// valOf raises the Option fault on NONE.
func OptionBuiltins() map[string]Value {
	return map[string]Value{
		"Option.isSome": fn1("Option.isSome", func(ev *Evaluator, a Value) Value {
			v, ok := wantVariant(a)
			if !ok {
				return typeFault("Option.isSome", a)
			}
			return BoolOf(v.Tag == config.SomeTag)
		}),
		"Option.isNone": fn1("Option.isNone", func(ev *Evaluator, a Value) Value {
			v, ok := wantVariant(a)
			if !ok {
				return typeFault("Option.isNone", a)
			}
			return BoolOf(v.Tag == config.NoneTag)
		}),
		"Option.valOf": fn1("Option.valOf", func(ev *Evaluator, a Value) Value {
			v, ok := wantVariant(a)
			if !ok {
				return typeFault("Option.valOf", a)
			}
			if v.Tag != config.SomeTag {
				return newFault(fault.Unpositioned(fault.Option, "Option.valOf: NONE"))
			}
			return v.Payload
		}),
		"Option.getOpt": fn2("Option.getOpt", func(ev *Evaluator, a, b Value) Value {
			v, ok := wantVariant(a)
			if !ok {
				return typeFault("Option.getOpt", a)
			}
			if v.Tag == config.SomeTag {
				return v.Payload
			}
			return b
		}),
		"Option.map": fn2("Option.map", func(ev *Evaluator, a, b Value) Value {
			fn := a
			v, ok := wantVariant(b)
			if !ok {
				return typeFault("Option.map", b)
			}
			if v.Tag != config.SomeTag {
				return NewOption(nil)
			}
			r := apply1(ev, fn, v.Payload)
			if isFault(r) {
				return r
			}
			return NewOption(r)
		}),
		"Option.app": fn2("Option.app", func(ev *Evaluator, a, b Value) Value {
			fn := a
			v, ok := wantVariant(b)
			if !ok {
				return typeFault("Option.app", b)
			}
			if v.Tag != config.SomeTag {
				return TheUnit
			}
			r := apply1(ev, fn, v.Payload)
			if isFault(r) {
				return r
			}
			return TheUnit
		}),
		"Option.filter": fn2("Option.filter", func(ev *Evaluator, a, b Value) Value {
			fn := a
			v, ok := wantVariant(b)
			if !ok {
				return typeFault("Option.filter", b)
			}
			if v.Tag != config.SomeTag {
				return NewOption(nil)
			}
			r := apply1(ev, fn, v.Payload)
			if isFault(r) {
				return r
			}
			bv, ok := wantBool(r)
			if !ok {
				return typeFault("Option.filter", r)
			}
			if bv.Value {
				return v
			}
			return NewOption(nil)
		}),
		// compose(f, g)(x) = case g(x) of NONE => NONE | SOME y => SOME(f(y))
		"Option.compose": fn3("Option.compose", func(ev *Evaluator, f, g, x Value) Value {
			gv := apply1(ev, g, x)
			if isFault(gv) {
				return gv
			}
			v, ok := wantVariant(gv)
			if !ok {
				return typeFault("Option.compose", gv)
			}
			if v.Tag != config.SomeTag {
				return NewOption(nil)
			}
			r := apply1(ev, f, v.Payload)
			if isFault(r) {
				return r
			}
			return NewOption(r)
		}),
		// composePartial(f, g)(x) = case g(x) of NONE => NONE | SOME y => f(y),
		// where f itself already returns an Option (so it isn't re-wrapped).
		"Option.composePartial": fn3("Option.composePartial", func(ev *Evaluator, f, g, x Value) Value {
			gv := apply1(ev, g, x)
			if isFault(gv) {
				return gv
			}
			v, ok := wantVariant(gv)
			if !ok {
				return typeFault("Option.composePartial", gv)
			}
			if v.Tag != config.SomeTag {
				return NewOption(nil)
			}
			return apply1(ev, f, v.Payload)
		}),
		"Option.mapPartial": fn2("Option.mapPartial", func(ev *Evaluator, a, b Value) Value {
			fn := a
			v, ok := wantVariant(b)
			if !ok {
				return typeFault("Option.mapPartial", b)
			}
			if v.Tag != config.SomeTag {
				return NewOption(nil)
			}
			return apply1(ev, fn, v.Payload)
		}),
	}
}

func wantVariant(v Value) (*Variant, bool) { va, ok := v.(*Variant); return va, ok }
