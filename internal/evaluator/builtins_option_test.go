package evaluator

import (
	"testing"

	"github.com/funvibe/evalcore/internal/fault"
)

func TestOptionIsSomeIsNoneValOf(t *testing.T) {
	m := OptionBuiltins()
	some := NewOption(Int{Value: 5})
	none := NewOption(nil)

	if !invokeNamed(t, m, "Option.isSome", some).(Bool).Value {
		t.Fatalf("Option.isSome(SOME 5) = false, want true")
	}
	if !invokeNamed(t, m, "Option.isNone", none).(Bool).Value {
		t.Fatalf("Option.isNone(NONE) = false, want true")
	}

	v := invokeNamed(t, m, "Option.valOf", some)
	if v.(Int).Value != 5 {
		t.Fatalf("Option.valOf(SOME 5) = %v, want 5", v.Inspect())
	}

	r := invokeNamed(t, m, "Option.valOf", none)
	flt, ok := r.(*Fault)
	if !ok || flt.F.Kind != fault.Option {
		t.Fatalf("Option.valOf(NONE) = %v, want an Option fault", r.Inspect())
	}
}

func TestOptionGetOptAndMap(t *testing.T) {
	m := OptionBuiltins()
	some := NewOption(Int{Value: 5})
	none := NewOption(nil)

	if v := invokeNamed(t, m, "Option.getOpt", some, Int{Value: 0}); v.(Int).Value != 5 {
		t.Fatalf("Option.getOpt(SOME 5, 0) = %v, want 5", v.Inspect())
	}
	if v := invokeNamed(t, m, "Option.getOpt", none, Int{Value: 0}); v.(Int).Value != 0 {
		t.Fatalf("Option.getOpt(NONE, 0) = %v, want 0", v.Inspect())
	}

	double := &Fn{Name: "double", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
		return Int{Value: args[0].(Int).Value * 2}
	}}
	mapped := invokeNamed(t, m, "Option.map", double, some)
	v, ok := mapped.(*Variant)
	if !ok || v.Tag != "SOME" || v.Payload.(Int).Value != 10 {
		t.Fatalf("Option.map(double, SOME 5) = %v, want SOME 10", mapped.Inspect())
	}
	mappedNone := invokeNamed(t, m, "Option.map", double, none)
	vn := mappedNone.(*Variant)
	if vn.Tag != "NONE" {
		t.Fatalf("Option.map(double, NONE) = %v, want NONE", mappedNone.Inspect())
	}
}

func TestOptionComposeAndComposePartial(t *testing.T) {
	m := OptionBuiltins()
	safeDiv := &Fn{Name: "safeDiv", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
		n := args[0].(Int).Value
		if n == 0 {
			return NewOption(nil)
		}
		return NewOption(Int{Value: 100 / n})
	}}
	addOne := &Fn{Name: "addOne", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
		return Int{Value: args[0].(Int).Value + 1}
	}}

	v := invokeNamed(t, m, "Option.compose", addOne, safeDiv, Int{Value: 10})
	variant, ok := v.(*Variant)
	if !ok || variant.Tag != "SOME" || variant.Payload.(Int).Value != 11 {
		t.Fatalf("Option.compose(addOne,safeDiv,10) = %v, want SOME 11", v.Inspect())
	}

	vZero := invokeNamed(t, m, "Option.compose", addOne, safeDiv, Int{Value: 0})
	variantZero := vZero.(*Variant)
	if variantZero.Tag != "NONE" {
		t.Fatalf("Option.compose(addOne,safeDiv,0) = %v, want NONE", vZero.Inspect())
	}

	safeDivOpt := &Fn{Name: "safeDivOpt", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
		n := args[0].(Int).Value
		if n == 0 {
			return NewOption(nil)
		}
		return NewOption(Int{Value: 100 / n})
	}}
	vp := invokeNamed(t, m, "Option.composePartial", safeDivOpt, safeDiv, Int{Value: 10})
	variantP, ok := vp.(*Variant)
	if !ok || variantP.Tag != "SOME" {
		t.Fatalf("Option.composePartial(safeDivOpt,safeDiv,10) = %v, want SOME", vp.Inspect())
	}
}
