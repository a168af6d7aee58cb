// Package config holds the fixed names and limits the evaluation core
// shares across files: the Session binding name, the built-in structure
// names, the Option/Order tags, and size and Int bounds. The individual
// built-in function names are string literals in the evaluator's
// builtins_*.go files, not entries here.
package config

const ReservedSessionName = "Session.current"

// StructureNames enumerates the built-in groups a registered name is
// grouped under (§4.E). Order here is display order only.
var StructureNames = []string{
	"Char", "Int", "Real", "String", "List", "ListPair", "Vector",
	"Bag", "Option", "General", "Math", "Relational", "Interact", "Sys",
}

// Option and Order constructor tags (§3 conventions).
const (
	NoneTag    = "NONE"
	SomeTag    = "SOME"
	LessTag    = "LESS"
	EqualTag   = "EQUAL"
	GreaterTag = "GREATER"
)

// StringMaxSize is the implementation constant exposed to scripts as
// String.maxSize (§3); kept well below the int64 range so maxSize+1
// arithmetic used by Size-fault tests never itself overflows.
const StringMaxSize = 1<<30 - 1

// VectorMaxLen is Vector.maxLen (§4.E).
const VectorMaxLen = 1<<24 - 1

// Int bounds (§9 open question: minInt must be the true lower bound,
// not a second copy of maxInt as the suspected upstream bug would have
// it).
const (
	IntMaxInt int64 = 1<<31 - 1
	IntMinInt int64 = -1 << 31
)
