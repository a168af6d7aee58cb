package evaluator

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/evalcore/internal/fault"
)

// UseFunc is the driver hook behind Interact.use: load and evaluate a
// source file, returning the last value produced or a Fault (§6
// "Session interface consumed by built-ins"). The frontend/driver
// supplies the real implementation; this core only defines the shape.
type UseFunc func(path string, silent bool) Value

// Session is the process-wide, exactly-one-per-evaluation reference
// (§3 Value variant "Session") addressed at config.ReservedSessionName in
// every environment. It owns the Sys property map and the last
// evaluated plan/Code description, and delegates file loading to the
// driver via Use.
type Session struct {
	ID uuid.UUID

	props map[string]Value // Sys.set/show/unset/show_all, camel-case keyed (§6)
	plan  string            // last evaluated Code's Describe(), retrieved by Sys.plan

	Use UseFunc
}

func NewSession(use UseFunc) *Session {
	return &Session{ID: uuid.New(), props: make(map[string]Value), Use: use}
}

func (s *Session) SetProp(name string, v Value) { s.props[name] = v }

func (s *Session) GetProp(name string) (Value, bool) {
	v, ok := s.props[name]
	return v, ok
}

func (s *Session) UnsetProp(name string) bool {
	if _, ok := s.props[name]; !ok {
		return false
	}
	delete(s.props, name)
	return true
}

// ClearEnv resets the property map (Sys.clearEnv, §4.E).
func (s *Session) ClearEnv() { s.props = make(map[string]Value) }

// ShowAll renders the property map as a List of (name, value) pairs,
// sorted by name for deterministic output, for Sys.show_all.
func (s *Session) ShowAll() *List {
	names := make([]string, 0, len(s.props))
	for k := range s.props {
		names = append(names, k)
	}
	sort.Strings(names)
	pairs := make([]Value, len(names))
	for i, k := range names {
		pairs[i] = &Tuple{Elements: []Value{String{Value: k}, s.props[k]}}
	}
	return NewList(pairs)
}

func (s *Session) SetPlan(description string) { s.plan = description }
func (s *Session) Plan() string                { return s.plan }

// CheckpointYAML serializes the property map to YAML (SPEC_FULL.md
// "Sys.show_all/YAML checkpoint"), generalizing the teacher's
// builtins_yaml.go decode-to-Value bridge to round-trip the Session's
// own property map instead of an arbitrary script value.
func (s *Session) CheckpointYAML() (string, error) {
	plain := make(map[string]interface{}, len(s.props))
	for k, v := range s.props {
		plain[k] = valueToPlain(v)
	}
	out, err := yaml.Marshal(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// RestoreYAML loads a previously checkpointed property map, replacing
// the current one.
func (s *Session) RestoreYAML(content string) error {
	var plain map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &plain); err != nil {
		return err
	}
	props := make(map[string]Value, len(plain))
	for k, v := range plain {
		props[k] = plainToValue(v)
	}
	s.props = props
	return nil
}

func valueToPlain(v Value) interface{} {
	switch vv := v.(type) {
	case Unit:
		return nil
	case Bool:
		return vv.Value
	case Int:
		return vv.Value
	case Real:
		return float64(vv.Value)
	case Char:
		return string(rune(vv.Value))
	case String:
		return vv.Value
	case *List:
		out := make([]interface{}, len(vv.Elements))
		for i, e := range vv.Elements {
			out[i] = valueToPlain(e)
		}
		return out
	default:
		return v.Inspect()
	}
}

func plainToValue(v interface{}) Value {
	switch vv := v.(type) {
	case nil:
		return TheUnit
	case bool:
		return BoolOf(vv)
	case int:
		return Int{Value: int64(vv)}
	case int64:
		return Int{Value: vv}
	case float64:
		return Real{Value: float32(vv)}
	case string:
		return String{Value: vv}
	case []interface{}:
		elems := make([]Value, len(vv))
		for i, e := range vv {
			elems[i] = plainToValue(e)
		}
		return NewList(elems)
	default:
		return String{Value: fmt.Sprintf("%v", vv)}
	}
}

// SessionRef is the Value wrapper bound at config.ReservedSessionName.
type SessionRef struct{ Session *Session }

func (s *SessionRef) Kind() Kind      { return KindSession }
func (s *SessionRef) Inspect() string { return "<session " + s.Session.ID.String() + ">" }

// DefaultUse is a minimal, dependency-free UseFunc: it checks that the
// file exists and reports an Error fault either way, since this core has no parser
// of its own to actually evaluate the contents (§1 "Frontend ...
// supplies the Code tree" — Interact.use's real implementation is the
// driver's job). It exists so Session can be constructed standalone
// (e.g. by tests and cmd/evalcore) without a frontend wired in.
func DefaultUse(path string, silent bool) Value {
	if _, err := os.Stat(path); err != nil {
		return newFault(fault.Unpositioned(fault.Error, "Interact.use: %v", err))
	}
	return newFault(fault.Unpositioned(fault.Error, "Interact.use: no frontend wired in to evaluate %q", path))
}
