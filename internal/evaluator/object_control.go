package evaluator

import "github.com/funvibe/evalcore/internal/fault"

// Fault wraps a fault.Fault as a Value so it can flow through the same
// Eval/Invoke return channel as any other result, exactly as the
// teacher's *Error doubles as an Object (object_control.go) rather
// than using Go's separate error-return channel — the evaluator has no
// local recovery (§4.G), so every call site just has to check
// isFault/propagate, matching the teacher's isError idiom.
type Fault struct{ F *fault.Fault }

func (f *Fault) Kind() Kind      { return KindFault }
func (f *Fault) Inspect() string { return f.F.Error() }

const KindFault Kind = "Fault"

func newFault(f *fault.Fault) *Fault { return &Fault{F: f} }

func isFault(v Value) bool {
	_, ok := v.(*Fault)
	return ok
}
