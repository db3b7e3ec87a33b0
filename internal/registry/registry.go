// Package registry holds the process-wide table of physical constants, units
// and elementary functions. The table is built once by a pure constructor and
// is immutable afterwards, so it can be shared across concurrent calculator
// sessions without locking.
package registry

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/chongchonghe/acap/internal/quantity"
)

// EntryKind distinguishes what a registry name resolves to.
type EntryKind int

const (
	// EntryConstant is a fixed numeric or dimensioned value.
	EntryConstant EntryKind = iota
	// EntryUnit is a scale factor tied to a dimension vector.
	EntryUnit
	// EntryFunction is an elementary unary function.
	EntryFunction
)

// Func is the signature of registered elementary functions.
type Func func(quantity.Quantity) (quantity.Quantity, error)

// Entry is one resolved registry binding.
type Entry struct {
	Name  string
	Kind  EntryKind
	Value quantity.Quantity
	Fn    Func
	Doc   string
}

// Registry maps names to constants, units and functions. Immutable after New.
type Registry struct {
	entries     map[string]Entry
	names       []string
	fingerprint uint64
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry, building it on first use. The build is
// deterministic, so the memoized instance never needs refreshing unless the
// definition tables change, which Fingerprint detects.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// New builds a registry from the declarative definition tables.
func New() *Registry {
	r := &Registry{entries: make(map[string]Entry)}

	for _, def := range unitDefs {
		r.add(Entry{
			Name:  def.name,
			Kind:  EntryUnit,
			Value: quantity.New(def.scale, def.dim),
			Doc:   def.doc,
		})
	}
	for _, def := range constantDefs {
		r.add(Entry{
			Name:  def.name,
			Kind:  EntryConstant,
			Value: quantity.New(def.value, def.dim),
			Doc:   def.doc,
		})
	}
	for _, def := range functionDefs {
		r.add(Entry{Name: def.name, Kind: EntryFunction, Fn: def.fn, Doc: def.doc})
	}

	sort.Strings(r.names)
	r.fingerprint = fingerprintDefs()
	return r
}

func (r *Registry) add(e Entry) {
	if _, dup := r.entries[e.Name]; dup {
		panic(fmt.Sprintf("registry: duplicate definition for %q", e.Name))
	}
	r.entries[e.Name] = e
	r.names = append(r.names, e.Name)
}

// Lookup resolves a name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Fingerprint is a hash of the definition tables; two registries built from
// the same tables share it, which is what makes the Default memo safe.
func (r *Registry) Fingerprint() uint64 { return r.fingerprint }

func fingerprintDefs() uint64 {
	d := xxhash.New()
	for _, def := range unitDefs {
		fmt.Fprintf(d, "u|%s|%v|%v\n", def.name, def.scale, def.dim)
	}
	for _, def := range constantDefs {
		fmt.Fprintf(d, "c|%s|%v|%v\n", def.name, def.value, def.dim)
	}
	for _, def := range functionDefs {
		fmt.Fprintf(d, "f|%s\n", def.name)
	}
	return d.Sum64()
}

// SIBaseNames are the display names of the SI base units, index-aligned with
// the dimension vector.
var SIBaseNames = [quantity.NumDims]string{"m", "kg", "s", "A", "K", "mol", "cd", "rad"}

// CGSBaseNames are the display names of the CGS base units.
var CGSBaseNames = [quantity.NumDims]string{"cm", "g", "s", "A", "K", "mol", "cd", "rad"}

// CGSFactor returns the multiplier that takes an SI-base magnitude with the
// given dimensions into CGS base units. It reports false for dimensions
// involving electric current, which have no single CGS representation.
func CGSFactor(dim quantity.Dimension) (float64, bool) {
	if !dim[quantity.Current].IsZero() {
		return 0, false
	}
	factor := math.Pow(100, dim[quantity.Length].Float())
	factor *= math.Pow(1000, dim[quantity.Mass].Float())
	return factor, true
}
