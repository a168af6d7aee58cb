package evaluator

import (
	"strings"

	"github.com/funvibe/evalcore/internal/config"
)

// String is an immutable byte sequence (§3). Vector and Bag built-ins
// (§4.E: "Vector: same data shape as List"; "List/Bag: identical
// operations") operate on List rather than a distinct Value kind —
// the value model (§3) lists no separate Vector/Bag tag, only List.
type String struct{ Value string }

func (s String) Kind() Kind      { return KindString }
func (s String) Inspect() string { return `"` + escapeString(s.Value) + `"` }

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// List is an ordered finite sequence of Values. Used directly to
// represent Vector and Bag built-in operands (see String doc above).
type List struct{ Elements []Value }

func NewList(elems []Value) *List {
	if elems == nil {
		elems = []Value{}
	}
	return &List{Elements: elems}
}

func (l *List) Kind() Kind { return KindList }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Len() int { return len(l.Elements) }

// Tuple is an ordered finite sequence of Values. Records are Tuples
// whose Labels are the sorted label order chosen at compile time
// (§3); a nil Labels slice means a plain (unlabeled) tuple.
type Tuple struct {
	Elements []Value
	Labels   []string
}

func (t *Tuple) Kind() Kind { return KindTuple }
func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Elements))
	if t.Labels != nil {
		for i, e := range t.Elements {
			parts[i] = t.Labels[i] + " = " + e.Inspect()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	for i, e := range t.Elements {
		parts[i] = e.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *Tuple) IsRecord() bool { return t.Labels != nil }

// Variant is a datatype instance: constructor tag plus optional
// payload (§3). Option and Order values are Variants by convention
// (NONE/SOME, LESS/EQUAL/GREATER) rather than distinct Value kinds.
type Variant struct {
	Tag     string
	Payload Value // nil for a nullary constructor
}

func (v *Variant) Kind() Kind { return KindVariant }
func (v *Variant) Inspect() string {
	if v.Payload == nil {
		return v.Tag
	}
	return v.Tag + " " + v.Payload.Inspect()
}

func NewOption(v Value) *Variant {
	if v == nil {
		return &Variant{Tag: config.NoneTag}
	}
	return &Variant{Tag: config.SomeTag, Payload: v}
}

func IsSome(v Value) bool {
	va, ok := v.(*Variant)
	return ok && va.Tag == config.SomeTag
}

func OrderOf(signum int) *Variant {
	switch {
	case signum < 0:
		return &Variant{Tag: config.LessTag}
	case signum > 0:
		return &Variant{Tag: config.GreaterTag}
	default:
		return &Variant{Tag: config.EqualTag}
	}
}
