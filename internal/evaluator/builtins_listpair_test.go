package evaluator

import (
	"testing"

	"github.com/funvibe/evalcore/internal/fault"
)

func TestListPairZipTruncatesVsZipEqFaults(t *testing.T) {
	m := ListPairBuiltins()
	short := intList(1, 2)
	long := intList(10, 20, 30)

	zipped := invokeNamed(t, m, "ListPair.zip", short, long)
	zl := zipped.(*List)
	if len(zl.Elements) != 2 {
		t.Fatalf("ListPair.zip truncated to %v, want 2 pairs", zipped.Inspect())
	}

	v := invokeNamed(t, m, "ListPair.zipEq", short, long)
	flt, ok := v.(*Fault)
	if !ok || flt.F.Kind != fault.UnequalLengths {
		t.Fatalf("ListPair.zipEq on unequal lengths = %v, want an UnequalLengths fault", v.Inspect())
	}
}

func TestListPairUnzip(t *testing.T) {
	m := ListPairBuiltins()
	pairs := NewList([]Value{
		&Tuple{Elements: []Value{Int{Value: 1}, String{Value: "a"}}},
		&Tuple{Elements: []Value{Int{Value: 2}, String{Value: "b"}}},
	})
	v := invokeNamed(t, m, "ListPair.unzip", pairs)
	tup := v.(*Tuple)
	xs := tup.Elements[0].(*List)
	ys := tup.Elements[1].(*List)
	if xs.Elements[0].(Int).Value != 1 || ys.Elements[1].(String).Value != "b" {
		t.Fatalf("ListPair.unzip = %v, want ([1,2],[\"a\",\"b\"])", v.Inspect())
	}
}

func TestListPairFoldlEqAndFoldrEq(t *testing.T) {
	m := ListPairBuiltins()
	a := intList(1, 2, 3)
	b := intList(10, 20, 30)
	sumPair := &Fn{Name: "sumPair", ArityN: 3, Fn: func(ev *Evaluator, args []Value) Value {
		return Int{Value: args[0].(Int).Value + args[1].(Int).Value + args[2].(Int).Value}
	}}
	v := invokeNamed(t, m, "ListPair.foldlEq", sumPair, Int{Value: 0}, a, b)
	if v.(Int).Value != 66 {
		t.Fatalf("ListPair.foldlEq sum = %v, want 66", v.Inspect())
	}

	mismatched := intList(1, 2)
	v2 := invokeNamed(t, m, "ListPair.foldlEq", sumPair, Int{Value: 0}, mismatched, b)
	if !isFault(v2) {
		t.Fatalf("ListPair.foldlEq on unequal lengths = %v, want a fault", v2.Inspect())
	}
}

func TestListPairAllExists(t *testing.T) {
	m := ListPairBuiltins()
	a := intList(1, 2, 3)
	b := intList(1, 2, 3)
	eq := &Fn{Name: "eq", ArityN: 2, Fn: func(ev *Evaluator, args []Value) Value {
		return BoolOf(Equal(args[0], args[1]))
	}}
	if !invokeNamed(t, m, "ListPair.allEq", eq, a, b).(Bool).Value {
		t.Fatalf("ListPair.allEq(eq,[1,2,3],[1,2,3]) = false, want true")
	}

	diffAt := intList(1, 9, 3)
	if invokeNamed(t, m, "ListPair.allEq", eq, a, diffAt).(Bool).Value {
		t.Fatalf("ListPair.allEq should be false when any pair differs")
	}
	if !invokeNamed(t, m, "ListPair.existsEq", eq, a, diffAt).(Bool).Value {
		t.Fatalf("ListPair.existsEq should find at least one equal pair")
	}
}
