package evaluator

// frameKind discriminates the five frame shapes of §4.B.
type frameKind int

const (
	frameRoot frameKind = iota
	frameSingle
	frameArray
	frameList
	framePattern
)

// Environment is one link in the lexically chained lookup structure
// (GLOSSARY "Frame"). Rather than the teacher's single map-backed
// struct (environment.go), it generalizes to the five frame shapes
// §4.B requires: Root (map), Single/NameArray/NameList (small
// name-indexed slot arrays — linear search, per §4.B "small arrays...
// typically faster than hashing"), and Pattern (slots driven by the
// pattern engine). Names shadow outer frames; lookup walks
// inner-to-outer.
type Environment struct {
	kind  frameKind
	outer *Environment

	root map[string]Value // frameRoot only

	names []string // Single/Array/List/Pattern
	slots []Value  // parallel to names

	pat   Pattern // framePattern only
	fixed bool
}

// NewRootEnvironment builds a Root frame with no bindings (§4.B
// empty()).
func NewRootEnvironment() *Environment {
	return &Environment{kind: frameRoot, root: make(map[string]Value)}
}

// NewRootFromMap builds a Root frame from a name->Value mapping
// (§4.B copyOf). The Session binding is expected to already be
// present at config.ReservedSessionName in m (§3 "The Session binding
// exists in every environment reachable at runtime").
func NewRootFromMap(m map[string]Value) *Environment {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return &Environment{kind: frameRoot, root: cp}
}

// NewEnclosedEnvironment attaches a child frame with no bindings of
// its own over outer; used by Closure/match-arm evaluation to get a
// fresh lexical scope before binding pattern variables into it.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{kind: frameSingle, outer: outer, names: nil, slots: nil}
}

// Get performs the inner-to-outer walk (§4.B get, minus the Unbound
// fault — callers that need the fault wrap this themselves so Code.Get
// can attribute its own position).
func (e *Environment) Get(name string) (Value, bool) {
	for f := e; f != nil; f = f.outer {
		if f.kind == frameRoot {
			if v, ok := f.root[name]; ok {
				return v, true
			}
			continue
		}
		for i, n := range f.names {
			if n == name && f.slots[i] != nil {
				return f.slots[i], true
			}
		}
	}
	return nil, false
}

// GetOpt wraps Get as an Option value (§4.B getOpt).
func (e *Environment) GetOpt(name string) *Variant {
	if v, ok := e.Get(name); ok {
		return NewOption(v)
	}
	return NewOption(nil)
}

// Set writes into the Root frame (used for copyOf-built roots and for
// top-level `let`-at-toplevel style driver bindings). Non-root frames
// are written through their Bind*/Set* methods below.
func (e *Environment) Set(name string, v Value) {
	if e.kind != frameRoot {
		panic("evaluator: Set called on a non-root frame")
	}
	e.root[name] = v
}

// BindSingle attaches one uninitialized slot (§4.B bindSingle); the
// caller must SetSingle before the slot is read.
func (e *Environment) BindSingle(name string) *Environment {
	return &Environment{kind: frameSingle, outer: e, names: []string{name}, slots: []Value{nil}}
}

func (e *Environment) SetSingle(v Value) {
	if e.kind != frameSingle {
		panic("evaluator: SetSingle called on a non-single frame")
	}
	e.slots[0] = v
}

// BindArray attaches N slots written atomically (§4.B bindArray).
func (e *Environment) BindArray(names []string) *Environment {
	return &Environment{kind: frameArray, outer: e, names: append([]string(nil), names...), slots: make([]Value, len(names))}
}

// SetArray atomically writes all N slots; the length must equal the
// number of declared names, per §4.B.
func (e *Environment) SetArray(values []Value) bool {
	if e.kind != frameArray || len(values) != len(e.names) {
		return false
	}
	copy(e.slots, values)
	return true
}

// BindList attaches N slots backed by a list view (§4.B bindList).
func (e *Environment) BindList(names []string) *Environment {
	return &Environment{kind: frameList, outer: e, names: append([]string(nil), names...), slots: make([]Value, len(names))}
}

func (e *Environment) SetList(values []Value) bool {
	if e.kind != frameList || len(values) != len(e.names) {
		return false
	}
	copy(e.slots, values)
	return true
}

// BindPattern attaches N slots driven by a compile-time pattern
// (§4.B bindPattern).
func (e *Environment) BindPattern(pat Pattern, names []string) *Environment {
	return &Environment{kind: framePattern, outer: e, pat: pat, names: append([]string(nil), names...), slots: make([]Value, len(names))}
}

// SetOpt runs the pattern engine against value, filling this frame's
// slots on success and reporting whether binding succeeded (§4.B
// "invokes the pattern engine against a value, answers whether
// binding succeeded"). On failure no slot is written — the engine
// writes into a scratch buffer first and only seals it into the frame
// on success (§4.C "no partial writes that survive").
func (e *Environment) SetOpt(value Value) bool {
	if e.kind != framePattern {
		panic("evaluator: SetOpt called on a non-pattern frame")
	}
	scratch := make([]Value, len(e.slots))
	if !bindInto(e.pat, value, scratch, new(int)) {
		return false
	}
	copy(e.slots, scratch)
	return true
}

// MustSet asserts the pattern match succeeds (§4.B bindPattern
// "set(value) asserts success") — used where the caller has already
// established the pattern is irrefutable. It panics if the match fails.
func (e *Environment) MustSet(value Value) bool {
	if !e.SetOpt(value) {
		panic("evaluator: MustSet pattern did not match")
	}
	return true
}

// Fix produces an immutable snapshot of this frame suitable for
// capture by a Closure that outlives the frame (§4.B fix). It copies
// the frame's slots, for every frame kind including list frames, so
// later writes to the live frame are not seen through the snapshot.
// The fixed flag is set on the copy but the Set* methods do not check
// it.
func (e *Environment) Fix() *Environment {
	cp := &Environment{
		kind:  e.kind,
		outer: e.outer,
		root:  e.root,
		names: e.names,
		slots: append([]Value(nil), e.slots...),
		pat:   e.pat,
		fixed: true,
	}
	return cp
}

// Visit enumerates (name, value) pairs inner-first (§4.B visit).
func (e *Environment) Visit(f func(name string, v Value)) {
	for fr := e; fr != nil; fr = fr.outer {
		if fr.kind == frameRoot {
			for k, v := range fr.root {
				f(k, v)
			}
			continue
		}
		for i, n := range fr.names {
			if fr.slots[i] != nil {
				f(n, fr.slots[i])
			}
		}
	}
}
