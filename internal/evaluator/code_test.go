package evaluator

import (
	"testing"

	"github.com/funvibe/evalcore/internal/fault"
)

func newTestEvaluator() (*Evaluator, *Environment) {
	session := NewSession(DefaultUse)
	env := RootEnv(session)
	return NewEvaluator(session), env
}

func TestConstantAndGetCode(t *testing.T) {
	ev, env := newTestEvaluator()
	c := &ConstantCode{V: Int{Value: 42}}
	if v := ev.Eval(c, env); v.(Int).Value != 42 {
		t.Fatalf("ConstantCode = %v, want 42", v)
	}

	env.Set("x", Int{Value: 7})
	g := &GetCode{Name: "x"}
	if v := ev.Eval(g, env); v.(Int).Value != 7 {
		t.Fatalf("GetCode = %v, want 7", v)
	}

	missing := &GetCode{Name: "nope"}
	if v := ev.Eval(missing, env); !isFault(v) {
		t.Fatalf("GetCode(missing) = %v, want a fault", v.Inspect())
	}
}

func TestGetTupleCode(t *testing.T) {
	ev, env := newTestEvaluator()
	env.Set("a", Int{Value: 1})
	env.Set("b", Int{Value: 2})
	gt := &GetTupleCode{Names: []string{"a", "b"}}
	v := ev.Eval(gt, env)
	tup, ok := v.(*Tuple)
	if !ok || len(tup.Elements) != 2 {
		t.Fatalf("GetTupleCode = %v, want a 2-tuple", v.Inspect())
	}
}

func TestAndAlsoOrElseShortCircuit(t *testing.T) {
	ev, env := newTestEvaluator()
	boom := &GetCode{Name: "missing-name-that-would-fault"}

	andAlso := &AndAlsoCode{A: &ConstantCode{V: False}, B: boom}
	if v := ev.Eval(andAlso, env); isFault(v) {
		t.Fatalf("AndAlso(false, boom) faulted, want short-circuit to false: %v", v.Inspect())
	} else if v.(Bool).Value {
		t.Fatalf("AndAlso(false, boom) = true, want false")
	}

	orElse := &OrElseCode{A: &ConstantCode{V: True}, B: boom}
	if v := ev.Eval(orElse, env); isFault(v) {
		t.Fatalf("OrElse(true, boom) faulted, want short-circuit to true: %v", v.Inspect())
	} else if !v.(Bool).Value {
		t.Fatalf("OrElse(true, boom) = false, want true")
	}

	andAlsoEval := &AndAlsoCode{A: &ConstantCode{V: True}, B: &ConstantCode{V: False}}
	if v := ev.Eval(andAlsoEval, env); v.(Bool).Value {
		t.Fatalf("AndAlso(true, false) = true, want false")
	}
}

func TestApplyCodeAndApplyNCode(t *testing.T) {
	ev, env := newTestEvaluator()
	add := &Fn{Name: "add", ArityN: 2, Fn: func(ev *Evaluator, args []Value) Value {
		return Int{Value: args[0].(Int).Value + args[1].(Int).Value}
	}}
	env.Set("add", add)

	applyN := &ApplyNCode{
		Fn:   &GetCode{Name: "add"},
		Args: []Code{&ConstantCode{V: Int{Value: 3}}, &ConstantCode{V: Int{Value: 4}}},
	}
	if v := ev.Eval(applyN, env); v.(Int).Value != 7 {
		t.Fatalf("ApplyNCode(add,3,4) = %v, want 7", v.Inspect())
	}

	// ApplyCode is the 1-arg form; exercise it with a single-arg inc Fn.
	inc := &Fn{Name: "inc", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
		return Int{Value: args[0].(Int).Value + 1}
	}}
	env.Set("inc", inc)
	apply1 := &ApplyCode{Fn: &GetCode{Name: "inc"}, Arg: &ConstantCode{V: Int{Value: 9}}}
	if v := ev.Eval(apply1, env); v.(Int).Value != 10 {
		t.Fatalf("ApplyCode(inc,9) = %v, want 10", v.Inspect())
	}
}

func TestApplyNWrongArityFaults(t *testing.T) {
	ev, env := newTestEvaluator()
	add := &Fn{Name: "add", ArityN: 2, Fn: func(ev *Evaluator, args []Value) Value {
		return Int{Value: args[0].(Int).Value + args[1].(Int).Value}
	}}
	env.Set("add", add)
	applyN := &ApplyNCode{Fn: &GetCode{Name: "add"}, Args: []Code{&ConstantCode{V: Int{Value: 1}}}}
	if v := ev.Eval(applyN, env); !isFault(v) {
		t.Fatalf("wrong-arity ApplyNCode = %v, want a fault", v.Inspect())
	}
}

func TestApplyNTupleCode(t *testing.T) {
	ev, env := newTestEvaluator()
	add := &Fn{Name: "add", ArityN: 2, Fn: func(ev *Evaluator, args []Value) Value {
		return Int{Value: args[0].(Int).Value + args[1].(Int).Value}
	}}
	env.Set("add", add)
	applyT := &ApplyNTupleCode{
		Fn:  &GetCode{Name: "add"},
		Arg: &TupleCode{Elems: []Code{&ConstantCode{V: Int{Value: 2}}, &ConstantCode{V: Int{Value: 5}}}},
	}
	if v := ev.Eval(applyT, env); v.(Int).Value != 7 {
		t.Fatalf("ApplyNTupleCode = %v, want 7", v.Inspect())
	}
}

func TestCurriedClosureApplication(t *testing.T) {
	ev, env := newTestEvaluator()
	// fun x => fun y => x + y, curried as two nested Closures.
	outer := &Closure{
		Name: "addCurried",
		Arms: []MatchArm{{
			Pattern: IdPattern{},
			Names:   []string{"x"},
			Body: &ConstantCode{V: &Closure{
				Name: "",
				Arms: []MatchArm{{
					Pattern: IdPattern{},
					Names:   []string{"y"},
					Body: &ApplyNCode{
						Fn: &ConstantCode{V: &Fn{Name: "plus", ArityN: 2, Fn: func(ev *Evaluator, args []Value) Value {
							return Int{Value: args[0].(Int).Value + args[1].(Int).Value}
						}}},
						Args: []Code{&GetCode{Name: "x"}, &GetCode{Name: "y"}},
					},
				}},
				Env: env,
			}},
		}},
		Env: env,
	}

	step1 := outer.Invoke(ev, []Value{Int{Value: 10}})
	if isFault(step1) {
		t.Fatalf("outer.Invoke faulted: %v", step1.Inspect())
	}
	inner, ok := step1.(*Closure)
	if !ok {
		t.Fatalf("outer application did not yield a Closure: %v", step1.Inspect())
	}
	step2 := inner.Invoke(ev, []Value{Int{Value: 5}})
	if isFault(step2) {
		t.Fatalf("inner.Invoke faulted: %v", step2.Inspect())
	}
	if step2.(Int).Value != 15 {
		t.Fatalf("curried add(10)(5) = %v, want 15", step2.Inspect())
	}
}

func TestClosureNoMatchRaisesBindFault(t *testing.T) {
	ev, env := newTestEvaluator()
	cl := &Closure{
		Name: "onlyZero",
		Arms: []MatchArm{{
			Pattern: LiteralIntPattern{Value: 0},
			Names:   nil,
			Body:    &ConstantCode{V: Int{Value: 0}},
		}},
		Env: env,
	}
	result := cl.Invoke(ev, []Value{Int{Value: 1}})
	flt, ok := result.(*Fault)
	if !ok {
		t.Fatalf("Invoke with no matching arm = %v, want a *Fault", result.Inspect())
	}
	if flt.F.Kind != fault.Bind {
		t.Fatalf("fault kind = %v, want Bind", flt.F.Kind)
	}
}

func TestLet1Code(t *testing.T) {
	ev, env := newTestEvaluator()
	matchClosure := &Closure{
		Arms: []MatchArm{{Pattern: IdPattern{}, Names: []string{"x"}, Body: nil}},
		Env:  env,
	}
	let1 := &Let1Code{
		Match:      &ConstantCode{V: matchClosure},
		MatchValue: &ConstantCode{V: Int{Value: 3}},
		Body:       &ApplyCode{Fn: &ConstantCode{V: &Fn{Name: "inc", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
			return Int{Value: args[0].(Int).Value + 1}
		}}}, Arg: &GetCode{Name: "x"}},
	}
	v := ev.Eval(let1, env)
	if isFault(v) {
		t.Fatalf("Let1Code faulted: %v", v.Inspect())
	}
	if v.(Int).Value != 4 {
		t.Fatalf("Let1Code result = %v, want 4", v.Inspect())
	}
}

func TestWrapRelListCodePassThrough(t *testing.T) {
	ev, env := newTestEvaluator()
	list := NewList([]Value{Int{Value: 1}, Int{Value: 2}})
	w := &WrapRelListCode{Inner: &ConstantCode{V: list}}
	v := ev.Eval(w, env)
	if v != Value(list) {
		t.Fatalf("WrapRelListCode did not pass its inner value through unchanged")
	}
}

func TestOrdinalGetAndInc(t *testing.T) {
	ev, env := newTestEvaluator()
	slot := &OrdinalSlot{}
	get := &OrdinalGetCode{Slot: slot}
	if v := ev.Eval(get, env); v.(Int).Value != 0 {
		t.Fatalf("OrdinalGetCode initial = %v, want 0", v.Inspect())
	}
	inc := &OrdinalIncCode{Slot: slot, Next: get}
	if v := ev.Eval(inc, env); v.(Int).Value != 1 {
		t.Fatalf("OrdinalIncCode then get = %v, want 1", v.Inspect())
	}
	if v := ev.Eval(inc, env); v.(Int).Value != 2 {
		t.Fatalf("second OrdinalIncCode then get = %v, want 2", v.Inspect())
	}
}

func TestApplyRefinedCode(t *testing.T) {
	ev, env := newTestEvaluator()
	fn := &Fn{
		Name:   "cmp",
		ArityN: 2,
		Fn: func(ev *Evaluator, args []Value) Value {
			return newFault(fault.Unpositioned(fault.Error, "generic path should not run"))
		},
		Refine: func(args []Value) Value {
			a, b := args[0].(Int).Value, args[1].(Int).Value
			switch {
			case a < b:
				return Int{Value: -1}
			case a > b:
				return Int{Value: 1}
			default:
				return Int{Value: 0}
			}
		},
	}
	env.Set("cmp", fn)
	refined := &ApplyRefinedCode{
		Fn:   &GetCode{Name: "cmp"},
		Args: []Code{&ConstantCode{V: Int{Value: 1}}, &ConstantCode{V: Int{Value: 2}}},
	}
	v := ev.Eval(refined, env)
	if isFault(v) {
		t.Fatalf("ApplyRefinedCode faulted: %v", v.Inspect())
	}
	if v.(Int).Value != -1 {
		t.Fatalf("ApplyRefinedCode(1,2) = %v, want -1", v.Inspect())
	}
}

func TestApplyRefinedCodeWithoutHookFaults(t *testing.T) {
	ev, env := newTestEvaluator()
	fn := &Fn{Name: "noRefine", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value { return args[0] }}
	env.Set("noRefine", fn)
	refined := &ApplyRefinedCode{Fn: &GetCode{Name: "noRefine"}, Args: []Code{&ConstantCode{V: Int{Value: 1}}}}
	if v := ev.Eval(refined, env); !isFault(v) {
		t.Fatalf("ApplyRefinedCode without a Refine hook = %v, want a fault", v.Inspect())
	}
}
