package evaluator

import "testing"

func TestBindIdAndWildcard(t *testing.T) {
	root := NewRootEnvironment()
	pat := TuplePattern{Elems: []Pattern{IdPattern{}, WildcardPattern{}}}
	names := []string{"x"}
	val := &Tuple{Elements: []Value{Int{Value: 1}, Int{Value: 2}}}

	env, ok := Bind(pat, names, val, root)
	if !ok {
		t.Fatalf("Bind failed, want success")
	}
	v, ok := env.Get("x")
	if !ok || v.(Int).Value != 1 {
		t.Fatalf("x = %v, %v; want 1, true", v, ok)
	}
}

func TestBindAsPattern(t *testing.T) {
	root := NewRootEnvironment()
	pat := AsPattern{Inner: TuplePattern{Elems: []Pattern{IdPattern{}, IdPattern{}}}}
	names := []string{"whole", "a", "b"}
	val := &Tuple{Elements: []Value{Int{Value: 1}, Int{Value: 2}}}

	env, ok := Bind(pat, names, val, root)
	if !ok {
		t.Fatalf("Bind failed, want success")
	}
	whole, _ := env.Get("whole")
	if !Equal(whole, val) {
		t.Fatalf("whole = %v, want the original tuple", whole.Inspect())
	}
	a, _ := env.Get("a")
	if a.(Int).Value != 1 {
		t.Fatalf("a = %v, want 1", a)
	}
}

func TestBindAtomicFailureLeavesNoSlotsVisible(t *testing.T) {
	root := NewRootEnvironment()
	pat := TuplePattern{Elems: []Pattern{IdPattern{}, LiteralIntPattern{Value: 9}}}
	names := []string{"x"}
	val := &Tuple{Elements: []Value{Int{Value: 1}, Int{Value: 2}}} // second element fails to match 9

	env, ok := Bind(pat, names, val, root)
	if ok {
		t.Fatalf("Bind succeeded, want failure")
	}
	if _, found := env.Get("x"); found {
		t.Fatalf("slot x is visible after a failed bind — partial write escaped")
	}
}

func TestBindConsPattern(t *testing.T) {
	root := NewRootEnvironment()
	pat := ConsPattern{Head: IdPattern{}, Tail: IdPattern{}}
	names := []string{"hd", "tl"}
	val := NewList([]Value{Int{Value: 1}, Int{Value: 2}, Int{Value: 3}})

	env, ok := Bind(pat, names, val, root)
	if !ok {
		t.Fatalf("Bind failed on non-empty list")
	}
	hd, _ := env.Get("hd")
	if hd.(Int).Value != 1 {
		t.Fatalf("hd = %v, want 1", hd)
	}
	tl, _ := env.Get("tl")
	tlList, ok := tl.(*List)
	if !ok || len(tlList.Elements) != 2 {
		t.Fatalf("tl = %v, want a 2-element list", tl.Inspect())
	}

	emptyEnv, ok := Bind(pat, names, NewList(nil), root)
	_ = emptyEnv
	if ok {
		t.Fatalf("Bind on empty list succeeded, want failure")
	}
}

func TestBindCon0AndCon(t *testing.T) {
	root := NewRootEnvironment()

	none := &Variant{Tag: "NONE"}
	if _, ok := Bind(Con0Pattern{Tag: "NONE"}, nil, none, root); !ok {
		t.Fatalf("Con0 failed to match NONE")
	}

	some := &Variant{Tag: "SOME", Payload: Int{Value: 5}}
	env, ok := Bind(ConPattern{Tag: "SOME", Inner: IdPattern{}}, []string{"x"}, some, root)
	if !ok {
		t.Fatalf("Con failed to match SOME 5")
	}
	x, _ := env.Get("x")
	if x.(Int).Value != 5 {
		t.Fatalf("x = %v, want 5", x)
	}

	if _, ok := Bind(ConPattern{Tag: "SOME", Inner: IdPattern{}}, []string{"x"}, none, root); ok {
		t.Fatalf("Con(SOME) matched NONE, want failure")
	}
}

func TestNumSlots(t *testing.T) {
	pat := TuplePattern{Elems: []Pattern{
		IdPattern{},
		AsPattern{Inner: IdPattern{}},
		WildcardPattern{},
		LiteralIntPattern{Value: 1},
	}}
	if n := NumSlots(pat); n != 3 {
		t.Fatalf("NumSlots = %d, want 3", n)
	}
}
