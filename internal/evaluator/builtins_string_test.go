package evaluator

import (
	"testing"

	"github.com/funvibe/evalcore/internal/fault"
)

func TestStringSubAndSubstring(t *testing.T) {
	m := StringBuiltins()
	v := invokeNamed(t, m, "String.sub", String{Value: "hello"}, Int{Value: 1})
	if v.(Char).Value != 'e' {
		t.Fatalf("String.sub(\"hello\",1) = %v, want 'e'", v.Inspect())
	}
	v = invokeNamed(t, m, "String.substring", String{Value: "hello"}, Int{Value: 1}, Int{Value: 3})
	if v.(String).Value != "ell" {
		t.Fatalf("String.substring(\"hello\",1,3) = %v, want \"ell\"", v.Inspect())
	}
}

func TestStringSubAndSubstringFaultOnOutOfRange(t *testing.T) {
	m := StringBuiltins()
	if v := invokeNamed(t, m, "String.sub", String{Value: "hi"}, Int{Value: 5}); !isFault(v) {
		t.Fatalf("String.sub out of range = %v, want a fault", v.Inspect())
	}
	flt := invokeNamed(t, m, "String.sub", String{Value: "hi"}, Int{Value: 5}).(*Fault)
	if flt.F.Kind != fault.Subscript {
		t.Fatalf("String.sub out-of-range fault kind = %v, want Subscript", flt.F.Kind)
	}
	if v := invokeNamed(t, m, "String.substring", String{Value: "hi"}, Int{Value: 0}, Int{Value: 5}); !isFault(v) {
		t.Fatalf("String.substring out of range = %v, want a fault", v.Inspect())
	}
}

func TestStringExtract(t *testing.T) {
	m := StringBuiltins()
	v := invokeNamed(t, m, "String.extract", String{Value: "hello"}, Int{Value: 2}, NewOption(nil))
	if v.(String).Value != "llo" {
		t.Fatalf("String.extract(\"hello\",2,NONE) = %v, want \"llo\"", v.Inspect())
	}
	if v := invokeNamed(t, m, "String.extract", String{Value: "hi"}, Int{Value: 3}, NewOption(nil)); !isFault(v) {
		t.Fatalf("String.extract out of range = %v, want a fault", v.Inspect())
	}
}

func TestStringExtractWithSomeActsLikeSubstring(t *testing.T) {
	m := StringBuiltins()
	v := invokeNamed(t, m, "String.extract", String{Value: "hello"}, Int{Value: 1}, NewOption(Int{Value: 3}))
	if v.(String).Value != "ell" {
		t.Fatalf("String.extract(\"hello\",1,SOME 3) = %v, want \"ell\"", v.Inspect())
	}
	if v := invokeNamed(t, m, "String.extract", String{Value: "hello"}, Int{Value: 1}, NewOption(Int{Value: 10})); !isFault(v) {
		t.Fatalf("String.extract(\"hello\",1,SOME 10) = %v, want a fault", v.Inspect())
	}
}

func TestStringConcat(t *testing.T) {
	m := StringBuiltins()
	v := invokeNamed(t, m, "String.concat", String{Value: "ab"}, String{Value: "cd"})
	if v.(String).Value != "abcd" {
		t.Fatalf("String.concat = %v, want \"abcd\"", v.Inspect())
	}
	// String.maxSize is exposed as a plain Int the Size fault check
	// guards against (not individually exercised here — the bound is
	// ~1GB, too large to allocate in a unit test).
	maxSize, ok := m["String.maxSize"].(Int)
	if !ok || maxSize.Value <= 0 {
		t.Fatalf("String.maxSize = %v, want a positive Int", m["String.maxSize"])
	}
}

func TestStringFieldsKeepsEmptyTokensDrops(t *testing.T) {
	m := StringBuiltins()
	isComma := &Fn{Name: "isComma", ArityN: 1, Fn: func(ev *Evaluator, args []Value) Value {
		return BoolOf(args[0].(Char).Value == ',')
	}}
	fields := invokeNamed(t, m, "String.fields", isComma, String{Value: "a,,b"})
	fl := fields.(*List)
	if len(fl.Elements) != 3 {
		t.Fatalf("String.fields(\"a,,b\") = %v, want 3 parts (keeps empty)", fields.Inspect())
	}

	tokens := invokeNamed(t, m, "String.tokens", isComma, String{Value: "a,,b"})
	tl := tokens.(*List)
	if len(tl.Elements) != 2 {
		t.Fatalf("String.tokens(\"a,,b\") = %v, want 2 parts (drops empty)", tokens.Inspect())
	}
}

func TestStringImplodeExplodeRoundTrip(t *testing.T) {
	m := StringBuiltins()
	exploded := invokeNamed(t, m, "String.explode", String{Value: "ab"})
	el := exploded.(*List)
	if len(el.Elements) != 2 || el.Elements[0].(Char).Value != 'a' {
		t.Fatalf("String.explode(\"ab\") = %v, want ['a','b']", exploded.Inspect())
	}
	imploded := invokeNamed(t, m, "String.implode", el)
	if imploded.(String).Value != "ab" {
		t.Fatalf("String.implode(explode(\"ab\")) = %v, want \"ab\"", imploded.Inspect())
	}
}

func TestStringPrefixSuffixSubstringPredicates(t *testing.T) {
	m := StringBuiltins()
	if !invokeNamed(t, m, "String.isPrefix", String{Value: "he"}, String{Value: "hello"}).(Bool).Value {
		t.Fatalf("isPrefix(\"he\",\"hello\") = false, want true")
	}
	if !invokeNamed(t, m, "String.isSuffix", String{Value: "lo"}, String{Value: "hello"}).(Bool).Value {
		t.Fatalf("isSuffix(\"lo\",\"hello\") = false, want true")
	}
	if !invokeNamed(t, m, "String.isSubstring", String{Value: "ell"}, String{Value: "hello"}).(Bool).Value {
		t.Fatalf("isSubstring(\"ell\",\"hello\") = false, want true")
	}
}

func TestStringToHexDumpAndByteRoundTrip(t *testing.T) {
	m := StringBuiltins()
	hex := invokeNamed(t, m, "String.toHexDump", String{Value: "AB"})
	if _, ok := hex.(String); !ok {
		t.Fatalf("String.toHexDump did not return a String: %v", hex.Inspect())
	}

	toBytes := invokeNamed(t, m, "String.toBytes", String{Value: "hi"})
	bl, ok := toBytes.(*List)
	if !ok || len(bl.Elements) != 2 {
		t.Fatalf("String.toBytes(\"hi\") = %v, want a 2-element list", toBytes.Inspect())
	}
	back := invokeNamed(t, m, "String.fromBytes", bl)
	if back.(String).Value != "hi" {
		t.Fatalf("String.fromBytes(toBytes(\"hi\")) = %v, want \"hi\"", back.Inspect())
	}
}
