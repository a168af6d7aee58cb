package evaluator

import (
	"fmt"

	"github.com/funvibe/evalcore/internal/fault"
)

// BuiltinFunc is the native Go implementation behind a Fn. It receives
// the evaluator (for Session/Interact access) and the already
// evaluated arguments.
type BuiltinFunc func(ev *Evaluator, args []Value) Value

// Fn is an invocable built-in value: arity 1..4, an optional source
// position for fault attribution, and an optional type refinement
// hook (§3). Positions propagate by constructing a new Fn with an
// updated Pos rather than mutating shared state (§9 "Positioned
// built-ins"), mirroring the teacher's Builtin/BuiltinFunction split
// (object_functions.go) generalized with a position field.
type Fn struct {
	Name    string
	ArityN  int
	Pos     fault.Pos
	Fn      BuiltinFunc
	Refine  func(args []Value) Value // optional type refinement hook (e.g. Relational.compare)
}

func (f *Fn) Kind() Kind      { return KindFn }
func (f *Fn) Inspect() string { return fmt.Sprintf("<builtin %s>", f.Name) }
func (f *Fn) Arity() int      { return f.ArityN }

func (f *Fn) Invoke(ev *Evaluator, args []Value) Value {
	result := f.Fn(ev, args)
	if flt, ok := result.(*Fault); ok && flt.F.Pos == (fault.Pos{}) {
		flt.F.Pos = f.Pos
		return flt
	}
	return result
}

// WithPos returns a copy of f carrying pos, used when the frontend
// attributes a source position to a particular call site of a shared
// built-in value.
func (f *Fn) WithPos(pos fault.Pos) *Fn {
	cp := *f
	cp.Pos = pos
	return &cp
}

// MatchArm is one pattern/body pair of a Closure's match table. Names
// is the frontend-assigned binding-name list for Pattern, in declared
// slot order (§4.B bindPattern(pat, names); pattern Id/As nodes carry
// no name of their own — see pattern.go).
type MatchArm struct {
	Pattern Pattern
	Names   []string
	Body    Code
}

// Closure is a user-defined function: one or more pattern/body pairs
// and a captured environment (§3, §4.D "Closure evaluation"). Arity is
// always 1 — multi-argument functions are curried Closures each
// capturing the previous argument, matching the spec's worked example
// ("two Closures created, one captured in the other's env").
type Closure struct {
	Name    string // empty for an anonymous lambda
	Arms    []MatchArm
	Env     *Environment
	Pos     fault.Pos
}

func (c *Closure) Kind() Kind      { return KindClosure }
func (c *Closure) Inspect() string { return fmt.Sprintf("<closure %s>", c.Name) }
func (c *Closure) Arity() int      { return 1 }

// Invoke runs the closure's match table against a single argument: for
// each pattern-body pair in order, attempt bindPattern; on success
// evaluate body in the extended env; if every pattern fails, raise
// Bind (§4.D).
func (c *Closure) Invoke(ev *Evaluator, args []Value) Value {
	if len(args) != 1 {
		return newFault(fault.Unpositioned(fault.Error, "closure expects exactly 1 argument, got %d", len(args)))
	}
	arg := args[0]
	for _, arm := range c.Arms {
		env, ok := Bind(arm.Pattern, arm.Names, arg, c.Env)
		if ok {
			ev.pushFrame(c.Name, c.Pos)
			result := ev.Eval(arm.Body, env)
			ev.popFrame()
			if flt, ok := result.(*Fault); ok {
				return &Fault{F: flt.F.WithFrame(c.Name, c.Pos)}
			}
			return result
		}
	}
	return newFault(fault.New(fault.Bind, c.Pos, "no match for argument %s", arg.Inspect()))
}

// EvalBind performs the bind step of a `let` without evaluating the
// body: it matches arg against the closure's first (and, for `let`,
// only) pattern and returns the extended environment, or nil plus a
// Fault on failure (§4.D: "evalBind(env) performs the bind step
// without evaluating the body (used by let)").
func (c *Closure) EvalBind(arg Value) (*Environment, Value) {
	if len(c.Arms) == 0 {
		return nil, newFault(fault.Unpositioned(fault.Error, "let binding has no pattern"))
	}
	env, ok := Bind(c.Arms[0].Pattern, c.Arms[0].Names, arg, c.Env)
	if !ok {
		return nil, newFault(fault.New(fault.Bind, c.Pos, "let pattern did not match value %s", arg.Inspect()))
	}
	return env, nil
}

// RangeExtent is a materialized enumeration of a bounded type (§3,
// used by the `extent` built-in).
type RangeExtent struct{ Elements []Value }

func (r *RangeExtent) Kind() Kind      { return KindRange }
func (r *RangeExtent) Inspect() string { return NewList(r.Elements).Inspect() }
