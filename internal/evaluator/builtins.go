package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/evalcore/internal/config"
)

// Builtins is the fixed registry mapping built-in identifier (dotted
// `Structure.member`, §6) to its value, mirroring the teacher's
// `var Builtins = map[string]*Builtin{...}` (builtins.go) generalized
// to this core's Structure.member groups (§4.E: Char, Int, Real,
// String, List, ListPair, Vector, Bag, Option, General, Math,
// Relational, Sys) plus the Interact glue.
var Builtins = map[string]Value{}

func register(group map[string]Value) {
	for name, v := range group {
		Builtins[name] = v
	}
}

func init() {
	register(CharBuiltins())
	register(IntBuiltins())
	register(RealBuiltins())
	register(StringBuiltins())
	register(ListBuiltins())
	register(ListPairBuiltins())
	register(VectorBuiltins())
	register(BagBuiltins())
	register(OptionBuiltins())
	register(GeneralBuiltins())
	register(MathBuiltins())
	register(RelationalBuiltins())
	register(SysBuiltins())

	// Startup verifies completeness (§4.E "every entry must be
	// present"): every registered value must actually be usable, and
	// its dotted name must belong to one of the declared Structure
	// groups (config.StructureNames) rather than a typo'd prefix.
	for name, v := range Builtins {
		if v == nil {
			panic(fmt.Sprintf("builtin %q is registered with a nil value", name))
		}
		structure := name[:strings.IndexByte(name, '.')]
		known := false
		for _, s := range config.StructureNames {
			if s == structure {
				known = true
				break
			}
		}
		if !known {
			panic(fmt.Sprintf("builtin %q has an unrecognized Structure prefix %q", name, structure))
		}
	}
}

// RootEnv builds the Root environment frame (component B empty/copyOf)
// pre-populated with every built-in plus the Session binding at the
// reserved name (§3 "The Session binding exists in every environment
// reachable at runtime").
func RootEnv(session *Session) *Environment {
	m := make(map[string]Value, len(Builtins)+1)
	for k, v := range Builtins {
		m[k] = v
	}
	m[config.ReservedSessionName] = &SessionRef{Session: session}
	return NewRootFromMap(m)
}
