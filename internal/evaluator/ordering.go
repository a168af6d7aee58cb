package evaluator

import (
	"strings"

	"github.com/funvibe/evalcore/internal/fault"
)

// Compare computes the natural ordering §4.A requires: total within
// each primitive type; tuples/records lexicographic by declared slot
// order; lists lexicographic; variants by constructor order (no
// declaration table is threaded through this generic core at runtime,
// so constructor order falls back to tag-lexicographic — which
// happens to agree with the spec's worked NONE < SOME case) then
// payload. nan makes Real ordering Unordered (§3, §4.E Real.compare).
func Compare(a, b Value) (int, *fault.Fault) {
	if a.Kind() != b.Kind() {
		return 0, fault.Unpositioned(fault.Error, "cannot compare values of different kinds %s and %s", a.Kind(), b.Kind())
	}
	switch av := a.(type) {
	case Bool:
		bv := b.(Bool)
		return boolCompare(av.Value, bv.Value), nil
	case Int:
		bv := b.(Int)
		switch {
		case av.Value < bv.Value:
			return -1, nil
		case av.Value > bv.Value:
			return 1, nil
		default:
			return 0, nil
		}
	case Real:
		bv := b.(Real)
		if isNaN32(av.Value) || isNaN32(bv.Value) {
			return 0, fault.Unpositioned(fault.Unordered, "Real.compare on nan")
		}
		switch {
		case av.Value < bv.Value:
			return -1, nil
		case av.Value > bv.Value:
			return 1, nil
		default:
			return 0, nil
		}
	case Char:
		bv := b.(Char)
		return intCompare(int(av.Value), int(bv.Value)), nil
	case String:
		bv := b.(String)
		return strings.Compare(av.Value, bv.Value), nil
	case *List:
		bv := b.(*List)
		n := av.Len()
		if bv.Len() < n {
			n = bv.Len()
		}
		for i := 0; i < n; i++ {
			c, err := Compare(av.Elements[i], bv.Elements[i])
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		return intCompare(av.Len(), bv.Len()), nil
	case *Tuple:
		bv := b.(*Tuple)
		n := len(av.Elements)
		for i := 0; i < n && i < len(bv.Elements); i++ {
			c, err := Compare(av.Elements[i], bv.Elements[i])
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		return intCompare(len(av.Elements), len(bv.Elements)), nil
	case *Variant:
		bv := b.(*Variant)
		if av.Tag != bv.Tag {
			return strings.Compare(av.Tag, bv.Tag), nil
		}
		if av.Payload == nil || bv.Payload == nil {
			return 0, nil
		}
		return Compare(av.Payload, bv.Payload)
	default:
		return 0, fault.Unpositioned(fault.Error, "value of kind %s has no natural ordering", a.Kind())
	}
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isNaN32(v float32) bool {
	return v != v
}
