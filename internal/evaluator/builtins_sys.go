package evaluator

import "github.com/funvibe/evalcore/internal/fault"

// SysBuiltins implements the Sys property-map family and Interact.use
// (§4.E): set/show/unset/show_all/clearEnv manipulate the Session's
// name→value map keyed by camel-case names; unknown names passed to
// show/unset are a fault.
func SysBuiltins() map[string]Value {
	return map[string]Value{
		"Sys.set": fn2("Sys.set", func(ev *Evaluator, a, b Value) Value {
			name, ok := wantString(a)
			if !ok {
				return typeFault("Sys.set", a)
			}
			ev.Session.SetProp(name.Value, b)
			return TheUnit
		}),
		"Sys.show": fn1("Sys.show", func(ev *Evaluator, a Value) Value {
			name, ok := wantString(a)
			if !ok {
				return typeFault("Sys.show", a)
			}
			v, ok := ev.Session.GetProp(name.Value)
			if !ok {
				return newFault(fault.Unpositioned(fault.Error, "Sys.show: unknown property %q", name.Value))
			}
			return v
		}),
		"Sys.unset": fn1("Sys.unset", func(ev *Evaluator, a Value) Value {
			name, ok := wantString(a)
			if !ok {
				return typeFault("Sys.unset", a)
			}
			if !ev.Session.UnsetProp(name.Value) {
				return newFault(fault.Unpositioned(fault.Error, "Sys.unset: unknown property %q", name.Value))
			}
			return TheUnit
		}),
		"Sys.show_all": fn1("Sys.show_all", func(ev *Evaluator, a Value) Value {
			return ev.Session.ShowAll()
		}),
		"Sys.clearEnv": fn1("Sys.clearEnv", func(ev *Evaluator, a Value) Value {
			ev.Session.ClearEnv()
			return TheUnit
		}),
		// plan retrieves the last evaluated Code tree's Describe() output
		// (§6 "code — the last evaluated plan, retrieved by Sys.plan"),
		// set by the driver via Session.SetPlan before each evaluation.
		"Sys.plan": fn1("Sys.plan", func(ev *Evaluator, a Value) Value {
			return String{Value: ev.Session.Plan()}
		}),
		"Interact.use": fn2("Interact.use", func(ev *Evaluator, a, b Value) Value {
			path, ok1 := wantString(a)
			silent, ok2 := wantBool(b)
			if !ok1 || !ok2 {
				return typeFault("Interact.use", a)
			}
			if ev.Session.Use == nil {
				return newFault(fault.Unpositioned(fault.Error, "Interact.use: no driver wired in"))
			}
			return ev.Session.Use(path.Value, silent.Value)
		}),
	}
}
