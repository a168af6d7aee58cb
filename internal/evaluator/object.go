// Package evaluator is the evaluation core: the value model, the
// chained environment, the pattern-binding engine, the Code tree
// evaluator, the built-in library and the query engine all live here
// together, the way the teacher keeps its object model, environment,
// pattern matching and built-in registry in one `evaluator` package —
// these subsystems are too tightly coupled (pattern binding mutates
// environment slots; every built-in consumes values through the value
// model) to separate without a web of tiny interface-only packages.
package evaluator

// Kind tags every runtime Value (component A, §3).
type Kind string

const (
	KindUnit    Kind = "Unit"
	KindBool    Kind = "Bool"
	KindInt     Kind = "Int"
	KindReal    Kind = "Real"
	KindChar    Kind = "Char"
	KindString  Kind = "String"
	KindList    Kind = "List"
	KindTuple   Kind = "Tuple"
	KindVariant Kind = "Variant"
	KindFn      Kind = "Fn"
	KindClosure Kind = "Closure"
	KindRange   Kind = "Range"
	KindSession Kind = "Session"
	KindRow     Kind = "Row"
)

// Value is the tagged sum every Code node, pattern and built-in
// operates on. Inspect renders the §6 wire format.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Applicable is a runtime value that can be invoked with a fixed arity
// 1..4 (the GLOSSARY's "Applicable"): built-in primitives (Fn) and
// user Closures both implement it so applyValue (code.go) can treat
// them uniformly.
type Applicable interface {
	Value
	Arity() int
	Invoke(ev *Evaluator, args []Value) Value
}
