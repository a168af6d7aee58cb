// Package fault defines the closed set of runtime fault kinds raised by
// the evaluation core and the positioned Fault value used to report them.
package fault

import "fmt"

// Kind is the closed set of runtime fault categories. The frontend and
// driver switch on Kind to decide how to surface a fault; no new kinds
// may be added without extending this set.
type Kind string

const (
	Empty          Kind = "Empty"
	Bind           Kind = "Bind"
	Chr            Kind = "Chr"
	Div            Kind = "Div"
	Domain         Kind = "Domain"
	Option         Kind = "Option"
	Overflow       Kind = "Overflow"
	Size           Kind = "Size"
	Subscript      Kind = "Subscript"
	UnequalLengths Kind = "UnequalLengths"
	Unordered      Kind = "Unordered"
	Error          Kind = "Error"
)

// Pos is a source position attributed to a built-in call site or Code node.
type Pos struct {
	Line   int
	Column int
}

// Frame is one entry of the call-chain attached to a Fault, innermost first.
type Frame struct {
	Name string
	Pos  Pos
}

// Fault is the runtime error value propagated out of the evaluator. It is
// never caught locally by the core; only a user-written handler (a Code
// node outside this package's scope) or the driver observes it.
type Fault struct {
	Kind    Kind
	Pos     Pos
	Message string
	Stack   []Frame
}

func (f *Fault) Error() string {
	if f.Pos.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", f.Kind, f.Pos.Line, f.Pos.Column, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// New builds a Fault of the given kind at pos with a formatted message.
func New(kind Kind, pos Pos, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Unpositioned builds a Fault with no source position. Built-ins raise
// their faults this way; the evaluator's Fn.Invoke then stamps the
// built-in's own position onto them when it has one.
func Unpositioned(kind Kind, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithFrame returns a copy of f with one more call frame appended. A
// closure adds its frame as the fault leaves its body, so each new frame
// encloses those already recorded and the stack stays innermost first;
// the leaf position itself is f.Pos.
func (f *Fault) WithFrame(name string, pos Pos) *Fault {
	stack := make([]Frame, 0, len(f.Stack)+1)
	stack = append(stack, f.Stack...)
	stack = append(stack, Frame{Name: name, Pos: pos})
	return &Fault{Kind: f.Kind, Pos: f.Pos, Message: f.Message, Stack: stack}
}
