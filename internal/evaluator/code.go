package evaluator

import (
	"fmt"

	"github.com/funvibe/evalcore/internal/fault"
)

// Code is the small family of pre-compiled IR node kinds the frontend
// hands the core (component D, §4.D). Every node implements a single
// eval operation and must also emit a structural description for a
// debug visitor (§4.D); Describe's shape is opaque to callers, as §1
// says of every Code/built-in's debug output.
type Code interface {
	Eval(ev *Evaluator, env *Environment) Value
	Describe() string
}

// Evaluator drives Code.Eval. It is intentionally small: a Session
// reference (for Interact/Sys built-ins) plus the call-frame stack
// that Closure.Invoke pushes and pops around each body. The frame
// chain a fault carries is built separately, by fault.WithFrame as the
// fault leaves each closure (SPEC_FULL.md "Stack-frame-attributed
// faults").
type Evaluator struct {
	Session   *Session
	callStack []fault.Frame
}

func NewEvaluator(session *Session) *Evaluator {
	return &Evaluator{Session: session}
}

// Eval is a thin convenience wrapper so call sites read `ev.Eval(c,
// env)` the way the teacher's tree-walker reads `e.Eval(node, env)`.
func (ev *Evaluator) Eval(c Code, env *Environment) Value {
	return c.Eval(ev, env)
}

func (ev *Evaluator) pushFrame(name string, pos fault.Pos) {
	ev.callStack = append(ev.callStack, fault.Frame{Name: name, Pos: pos})
}

func (ev *Evaluator) popFrame() {
	if len(ev.callStack) > 0 {
		ev.callStack = ev.callStack[:len(ev.callStack)-1]
	}
}

// ---- Constant ----

// ConstantCode yields V. When V is a *Closure, it yields a copy whose
// captured Env is the environment the node is evaluated in, so a
// closure returned from another closure's body sees that body's
// bindings (curried functions).
type ConstantCode struct {
	V Value
}

func (c *ConstantCode) Eval(ev *Evaluator, env *Environment) Value {
	if cl, ok := c.V.(*Closure); ok {
		cp := *cl
		cp.Env = env
		return &cp
	}
	return c.V
}
func (c *ConstantCode) Describe() string                           { return fmt.Sprintf("Constant(%s)", c.V.Inspect()) }

// ---- Get ----

type GetCode struct {
	Name string
	Pos  fault.Pos
}

func (c *GetCode) Eval(ev *Evaluator, env *Environment) Value {
	if v, ok := env.Get(c.Name); ok {
		return v
	}
	return newFault(fault.New(fault.Error, c.Pos, "unbound name %q", c.Name))
}
func (c *GetCode) Describe() string { return fmt.Sprintf("Get(%s)", c.Name) }

// ---- GetTuple ----

type GetTupleCode struct {
	Names []string
	Pos   fault.Pos
}

func (c *GetTupleCode) Eval(ev *Evaluator, env *Environment) Value {
	elems := make([]Value, len(c.Names))
	for i, n := range c.Names {
		v, ok := env.Get(n)
		if !ok {
			return newFault(fault.New(fault.Error, c.Pos, "unbound name %q", n))
		}
		elems[i] = v
	}
	return &Tuple{Elements: elems}
}
func (c *GetTupleCode) Describe() string { return fmt.Sprintf("GetTuple(%v)", c.Names) }

// ---- Tuple ----

type TupleCode struct {
	Elems []Code
}

func (c *TupleCode) Eval(ev *Evaluator, env *Environment) Value {
	elems := make([]Value, len(c.Elems))
	for i, e := range c.Elems {
		v := ev.Eval(e, env)
		if isFault(v) {
			return v
		}
		elems[i] = v
	}
	return &Tuple{Elements: elems}
}
func (c *TupleCode) Describe() string { return "Tuple(...)" }

// ---- AndAlso / OrElse ----

type AndAlsoCode struct{ A, B Code }

func (c *AndAlsoCode) Eval(ev *Evaluator, env *Environment) Value {
	a := ev.Eval(c.A, env)
	if isFault(a) {
		return a
	}
	ab, ok := a.(Bool)
	if !ok || !ab.Value {
		return False
	}
	return ev.Eval(c.B, env)
}
func (c *AndAlsoCode) Describe() string { return "AndAlso(...)" }

type OrElseCode struct{ A, B Code }

func (c *OrElseCode) Eval(ev *Evaluator, env *Environment) Value {
	a := ev.Eval(c.A, env)
	if isFault(a) {
		return a
	}
	ab, ok := a.(Bool)
	if ok && ab.Value {
		return True
	}
	return ev.Eval(c.B, env)
}
func (c *OrElseCode) Describe() string { return "OrElse(...)" }

// ---- Let1 / Let ----

// Let1Code binds the pattern of a `val pat = expr` form: Match
// evaluates to a Closure built by the frontend around that pattern,
// and the value being destructured is evaluated separately from
// MatchValue and bound through that Closure before Body runs.
type Let1Code struct {
	Match      Code // evaluates to a *Closure wrapping the binding pattern
	MatchValue Code // the expression being destructured
	Body       Code
}

func (c *Let1Code) Eval(ev *Evaluator, env *Environment) Value {
	mv := ev.Eval(c.Match, env)
	if isFault(mv) {
		return mv
	}
	closure, ok := mv.(*Closure)
	if !ok {
		return newFault(fault.Unpositioned(fault.Error, "let binding did not produce a closure"))
	}
	val := ev.Eval(c.MatchValue, env)
	if isFault(val) {
		return val
	}
	env2, flt := closure.EvalBind(val)
	if flt != nil {
		return flt
	}
	return ev.Eval(c.Body, env2)
}
func (c *Let1Code) Describe() string { return "Let1(...)" }

// LetCode folds Matches left-to-right, threading the extended
// environment (§4.D Let).
type LetCode struct {
	Matches []*Let1Code
	Body    Code
}

func (c *LetCode) Eval(ev *Evaluator, env *Environment) Value {
	cur := env
	for _, m := range c.Matches {
		mv := ev.Eval(m.Match, cur)
		if isFault(mv) {
			return mv
		}
		closure, ok := mv.(*Closure)
		if !ok {
			return newFault(fault.Unpositioned(fault.Error, "let binding did not produce a closure"))
		}
		val := ev.Eval(m.MatchValue, cur)
		if isFault(val) {
			return val
		}
		next, flt := closure.EvalBind(val)
		if flt != nil {
			return flt
		}
		cur = next
	}
	return ev.Eval(c.Body, cur)
}
func (c *LetCode) Describe() string { return "Let(...)" }

// ---- Apply / ApplyN / ApplyNTuple ----

type ApplyCode struct {
	Fn, Arg Code
	Pos     fault.Pos
}

func (c *ApplyCode) Eval(ev *Evaluator, env *Environment) Value {
	fn := ev.Eval(c.Fn, env)
	if isFault(fn) {
		return fn
	}
	arg := ev.Eval(c.Arg, env)
	if isFault(arg) {
		return arg
	}
	return applyValue(ev, fn, []Value{arg}, c.Pos)
}
func (c *ApplyCode) Describe() string { return "Apply(...)" }

// ApplyNCode evaluates its argument codes left-to-right and calls the
// N-ary invocable directly (§4.D, §5 "Arguments to every N-ary
// application are evaluated left-to-right").
type ApplyNCode struct {
	Fn   Code
	Args []Code
	Pos  fault.Pos
}

func (c *ApplyNCode) Eval(ev *Evaluator, env *Environment) Value {
	fn := ev.Eval(c.Fn, env)
	if isFault(fn) {
		return fn
	}
	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v := ev.Eval(a, env)
		if isFault(v) {
			return v
		}
		args[i] = v
	}
	return applyValue(ev, fn, args, c.Pos)
}
func (c *ApplyNCode) Describe() string { return "ApplyN(...)" }

// ApplyNTupleCode evaluates Arg (a tuple) and calls the N-ary
// invocable with the destructured slots (§4.D).
type ApplyNTupleCode struct {
	Fn  Code
	Arg Code
	Pos fault.Pos
}

func (c *ApplyNTupleCode) Eval(ev *Evaluator, env *Environment) Value {
	fn := ev.Eval(c.Fn, env)
	if isFault(fn) {
		return fn
	}
	argv := ev.Eval(c.Arg, env)
	if isFault(argv) {
		return argv
	}
	t, ok := argv.(*Tuple)
	if !ok {
		return newFault(fault.New(fault.Error, c.Pos, "ApplyNTuple argument is not a tuple"))
	}
	return applyValue(ev, fn, t.Elements, c.Pos)
}
func (c *ApplyNTupleCode) Describe() string { return "ApplyNTuple(...)" }

// ApplyRefinedCode calls a Fn's type-refinement hook instead of its
// generic Fn field (§4.E "compare is a generic comparator refined by a
// type hook"): the frontend emits this node at a call site where it
// has statically resolved which variant applies, bypassing the
// generic dispatch a plain ApplyNCode would use.
type ApplyRefinedCode struct {
	Fn   Code
	Args []Code
	Pos  fault.Pos
}

func (c *ApplyRefinedCode) Eval(ev *Evaluator, env *Environment) Value {
	fnv := ev.Eval(c.Fn, env)
	if isFault(fnv) {
		return fnv
	}
	fn, ok := fnv.(*Fn)
	if !ok || fn.Refine == nil {
		return newFault(fault.New(fault.Error, c.Pos, "value has no type-refinement hook"))
	}
	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v := ev.Eval(a, env)
		if isFault(v) {
			return v
		}
		args[i] = v
	}
	result := fn.Refine(args)
	if flt, ok := result.(*Fault); ok && flt.F.Pos == (fault.Pos{}) {
		flt.F.Pos = c.Pos
	}
	return result
}
func (c *ApplyRefinedCode) Describe() string { return "ApplyRefined(...)" }

func applyValue(ev *Evaluator, fn Value, args []Value, pos fault.Pos) Value {
	app, ok := fn.(Applicable)
	if !ok {
		return newFault(fault.New(fault.Error, pos, "value of kind %s is not applicable", fn.Kind()))
	}
	if app.Arity() != len(args) {
		return newFault(fault.New(fault.Error, pos, "wrong number of arguments: want %d, got %d", app.Arity(), len(args)))
	}
	return app.Invoke(ev, args)
}

// ---- WrapRelList ----

// WrapRelListCode forces a relation-backed list into a plain list view
// on demand (§4.D, GLOSSARY "Relation-backed list"). This core
// materializes every List eagerly (§4.F "pre-materialized" rows), so
// there is no deferred relation-backed representation to force —
// WrapRelList is therefore a pass-through, kept as a distinct node so
// the frontend's contract (§4.D table) is satisfied unchanged.
type WrapRelListCode struct{ Inner Code }

func (c *WrapRelListCode) Eval(ev *Evaluator, env *Environment) Value {
	return ev.Eval(c.Inner, env)
}
func (c *WrapRelListCode) Describe() string { return "WrapRelList(...)" }

// ---- Ordinal ----

// OrdinalSlot is a single-element counter array (GLOSSARY "Ordinal
// slot") exposing a row index in comprehensions; it is caller-owned
// and written exclusively by OrdinalIncCode (§5).
type OrdinalSlot struct{ N int64 }

type OrdinalGetCode struct{ Slot *OrdinalSlot }

func (c *OrdinalGetCode) Eval(ev *Evaluator, env *Environment) Value {
	return Int{Value: c.Slot.N}
}
func (c *OrdinalGetCode) Describe() string { return "OrdinalGet(...)" }

type OrdinalIncCode struct {
	Slot *OrdinalSlot
	Next Code
}

func (c *OrdinalIncCode) Eval(ev *Evaluator, env *Environment) Value {
	c.Slot.N++
	return ev.Eval(c.Next, env)
}
func (c *OrdinalIncCode) Describe() string { return "OrdinalInc(...)" }
