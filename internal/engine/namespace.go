package engine

import (
	"github.com/chongchonghe/acap/internal/quantity"
	"github.com/chongchonghe/acap/internal/registry"
)

// Namespace layers session variables over the immutable registry. Lookup
// checks the session layer first, so an assignment may shadow a global name
// for the rest of its session. A Namespace belongs to exactly one calculator
// session and must not be shared across concurrent users.
type Namespace struct {
	reg  *registry.Registry
	vars map[string]quantity.Quantity
}

// NewNamespace returns a namespace with an empty session layer.
func NewNamespace(reg *registry.Registry) *Namespace {
	return &Namespace{reg: reg, vars: make(map[string]quantity.Quantity)}
}

// Resolve looks a name up, session layer first, then the registry.
func (ns *Namespace) Resolve(name string) (registry.Entry, bool) {
	if q, ok := ns.vars[name]; ok {
		return registry.Entry{Name: name, Kind: registry.EntryConstant, Value: q}, true
	}
	return ns.reg.Lookup(name)
}

// Bind commits a session variable. Bindings shadow registry names but never
// mutate the registry itself.
func (ns *Namespace) Bind(name string, q quantity.Quantity) {
	ns.vars[name] = q
}

// Reset discards all session variables.
func (ns *Namespace) Reset() {
	ns.vars = make(map[string]quantity.Quantity)
}

// Registry exposes the global layer, e.g. for help listings.
func (ns *Namespace) Registry() *registry.Registry { return ns.reg }
