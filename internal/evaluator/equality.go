package evaluator

// Equal performs the structural equality §3/§4.A requires: lists
// elementwise, tuples slotwise, variants by tag then payload; nan is
// never equal to itself — generalizing the teacher's ObjectsEqual
// (objects_equal.go) to this core's value model.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Unit:
		return true
	case Bool:
		return av.Value == b.(Bool).Value
	case Int:
		return av.Value == b.(Int).Value
	case Real:
		bv := b.(Real)
		// nan != nan even under generic equality (§3, §8 invariants).
		return av.Value == bv.Value
	case Char:
		return av.Value == b.(Char).Value
	case String:
		return av.Value == b.(String).Value
	case *List:
		bv := b.(*List)
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Tuple:
		bv := b.(*Tuple)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Variant:
		bv := b.(*Variant)
		if av.Tag != bv.Tag {
			return false
		}
		if av.Payload == nil || bv.Payload == nil {
			return av.Payload == nil && bv.Payload == nil
		}
		return Equal(av.Payload, bv.Payload)
	default:
		// Fn/Closure/Range/Session have no structural equality contract
		// in the spec; identity is the only sound fallback.
		return a == b
	}
}
