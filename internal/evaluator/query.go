package evaluator

import "github.com/funvibe/evalcore/internal/fault"

// QuerySource is one `name in e` clause: Iterable is evaluated once
// per combination of the sources to its left, and its name is bound
// to a mutable single slot the remaining sources and the where/yield
// expressions see in scope (§4.F, generalizing the teacher's
// evalListComprehension/getIterableElements pattern from a single
// nested-loop list comprehension to an n-ary named-source query).
type QuerySource struct {
	Name     string
	Iterable Code
}

// QueryCode evaluates `from (n1 in e1) ... where p yield r` (§4.F).
type QueryCode struct {
	Sources []QuerySource
	Where   Code // may be nil (no filter)
	Yield   Code
}

func (c *QueryCode) Eval(ev *Evaluator, env *Environment) Value {
	var rows []Value
	flt := iterateSources(ev, env, c.Sources, func(rowEnv *Environment) *fault.Fault {
		if c.Where != nil {
			p := ev.Eval(c.Where, rowEnv)
			if f, ok := p.(*Fault); ok {
				return f.F
			}
			b, ok := wantBool(p)
			if !ok || !b.Value {
				return nil
			}
		}
		r := ev.Eval(c.Yield, rowEnv)
		if f, ok := r.(*Fault); ok {
			return f.F
		}
		rows = append(rows, r)
		return nil
	})
	if flt != nil {
		return newFault(flt)
	}
	return NewList(rows)
}
func (c *QueryCode) Describe() string { return "Query(...)" }

// iterateSources walks the cartesian product of c.Sources left to
// right (§5 "Query sources are iterated in source order; within a
// source, in iteration order"), invoking visit once per combination
// with an environment where every source name is bound via
// BindSingle/SetSingle.
func iterateSources(ev *Evaluator, env *Environment, sources []QuerySource, visit func(*Environment) *fault.Fault) *fault.Fault {
	var rec func(i int, cur *Environment) *fault.Fault
	rec = func(i int, cur *Environment) *fault.Fault {
		if i == len(sources) {
			return visit(cur)
		}
		src := sources[i]
		iterable := ev.Eval(src.Iterable, cur)
		if f, ok := iterable.(*Fault); ok {
			return f.F
		}
		elems, ok := iterableElements(iterable)
		if !ok {
			return fault.Unpositioned(fault.Error, "query source %q is not iterable (kind %s)", src.Name, iterable.Kind())
		}
		// A fresh frame per element, not one frame mutated in place:
		// GroupedQueryCode stores rowEnv references and reads them back
		// later in emitRow, so every stored row must keep its own
		// binding rather than all aliasing the last element visited.
		for _, e := range elems {
			slot := cur.BindSingle(src.Name)
			slot.SetSingle(e)
			if f := rec(i+1, slot); f != nil {
				return f
			}
		}
		return nil
	}
	return rec(0, env)
}

func iterableElements(v Value) ([]Value, bool) {
	switch vv := v.(type) {
	case *List:
		return vv.Elements, true
	case *RangeExtent:
		return vv.Elements, true
	case *Tuple:
		return vv.Elements, true
	default:
		return nil, false
	}
}

// Aggregate is one aggregate column of a grouped query: Fn receives
// either the bucket's full row set or, when ArgumentCode is set, a
// per-row projection computed in each row's environment before being
// collected (§4.F "If the aggregate needs only a projection, the
// caller supplies an argumentCode to compute per-row").
type Aggregate struct {
	Label        string
	Fn           Value // Applicable, arity 1: receives a *List
	ArgumentCode Code  // optional per-row projection, evaluated in each bucket row's env
}

// GroupedQueryCode evaluates the grouped variant: `from ... where p
// group keys aggregates` (§4.F).
type GroupedQueryCode struct {
	Sources     []QuerySource
	Where       Code
	KeyExprs    []Code
	KeyLabels   []string
	Aggregates  []Aggregate
	ColumnOrder []string // caller-supplied output column permutation (key labels + aggregate labels)
}

type queryBucket struct {
	key  []Value
	rows []*Environment
}

func (c *GroupedQueryCode) Eval(ev *Evaluator, env *Environment) Value {
	var order []string
	buckets := map[string]*queryBucket{}

	flt := iterateSources(ev, env, c.Sources, func(rowEnv *Environment) *fault.Fault {
		if c.Where != nil {
			p := ev.Eval(c.Where, rowEnv)
			if f, ok := p.(*Fault); ok {
				return f.F
			}
			b, ok := wantBool(p)
			if !ok || !b.Value {
				return nil
			}
		}
		key := make([]Value, len(c.KeyExprs))
		for i, ke := range c.KeyExprs {
			v := ev.Eval(ke, rowEnv)
			if f, ok := v.(*Fault); ok {
				return f.F
			}
			key[i] = v
		}
		k := bucketKey(key)
		b, ok := buckets[k]
		if !ok {
			b = &queryBucket{key: key}
			buckets[k] = b
			order = append(order, k) // first-occurrence order (§5)
		}
		b.rows = append(b.rows, rowEnv)
		return nil
	})
	if flt != nil {
		return newFault(flt)
	}

	var results []Value
	for _, k := range order {
		b := buckets[k]
		row, f := c.emitRow(ev, b)
		if f != nil {
			return newFault(f)
		}
		results = append(results, row)
	}
	return NewList(results)
}
func (c *GroupedQueryCode) Describe() string { return "GroupedQuery(...)" }

// emitRow builds one output row: key fields followed by each
// aggregate applied to the bucket's rows, then permuted into
// c.ColumnOrder (§4.F step 3).
func (c *GroupedQueryCode) emitRow(ev *Evaluator, b *queryBucket) (Value, *fault.Fault) {
	fields := map[string]Value{}
	for i, label := range c.KeyLabels {
		fields[label] = b.key[i]
	}
	for _, agg := range c.Aggregates {
		var arg Value
		if agg.ArgumentCode != nil {
			projected := make([]Value, len(b.rows))
			for i, rowEnv := range b.rows {
				v := ev.Eval(agg.ArgumentCode, rowEnv)
				if f, ok := v.(*Fault); ok {
					return nil, f.F
				}
				projected[i] = v
			}
			arg = NewList(projected)
		} else {
			rows := make([]Value, len(b.rows))
			for i, rowEnv := range b.rows {
				rows[i] = &RowEnv{Env: rowEnv}
			}
			arg = NewList(rows)
		}
		r := apply1(ev, agg.Fn, arg)
		if f, ok := r.(*Fault); ok {
			return nil, f.F
		}
		fields[agg.Label] = r
	}
	elems := make([]Value, len(c.ColumnOrder))
	for i, label := range c.ColumnOrder {
		v, ok := fields[label]
		if !ok {
			return nil, fault.Unpositioned(fault.Error, "grouped query: unknown output column %q", label)
		}
		elems[i] = v
	}
	return &Tuple{Elements: elems, Labels: append([]string{}, c.ColumnOrder...)}, nil
}

func bucketKey(vs []Value) string {
	s := ""
	for _, v := range vs {
		s += v.Inspect() + "\x00"
	}
	return s
}

// RowEnv exposes a single materialized query row's bindings to an
// aggregate that asked for the full row set rather than a projection
// (§4.F "the raw rows are passed"). It is a Value only so it can ride
// inside the *List handed to the aggregate; aggregates that want raw
// rows read fields back out via Field.
type RowEnv struct{ Env *Environment }

func (r *RowEnv) Kind() Kind      { return KindRow }
func (r *RowEnv) Inspect() string { return "<row>" }

// Field looks up one bound name within the row (used by an aggregate
// Fn that was handed full rows instead of a projection).
func (r *RowEnv) Field(name string) (Value, bool) { return r.Env.Get(name) }
