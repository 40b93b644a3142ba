// Package registry implements the algorithm catalog: identifier to
// {function, parameter schema, category, requirements} lookup, plus
// schema-driven parameter validation.
//
// Grounded in the teacher's pattern of small, explicit, constructor-built
// value types with a string-keyed lookup table — the same shape as a
// renderer backend registry, generalized from renderer backends to
// coloring algorithms.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/fractalcolor/internal/algorithms"
)

// Category groups related algorithms.
type Category string

const (
	CategorySmooth             Category = "smooth"
	CategoryOrbitTrap          Category = "orbit_trap"
	CategoryDistance           Category = "distance"
	CategoryHistogram          Category = "histogram"
	CategoryTriangleInequality Category = "triangle_inequality"
	CategoryStripe             Category = "stripe"
	CategoryCurvature          Category = "curvature"
	CategoryAngle              Category = "angle"
	CategoryHybrid             Category = "hybrid"
)

// ParamKind distinguishes the shape of a parameter's schema entry.
type ParamKind int

const (
	KindNumber ParamKind = iota
	KindBool
	KindSelect
	KindArray
)

// ParamSpec is one parameter's schema entry. Exactly one of the
// kind-specific fields is meaningful, selected by Kind.
type ParamSpec struct {
	Kind Kind

	// Number
	Min, Max, Step, NumberDefault float64
	// Bool
	BoolDefault bool
	// Select
	Options       []string
	SelectDefault string
	// Array
	ArrayDefault []float64
}

// Kind is an alias kept for readability at call sites (registry.NumberParam, ...).
type Kind = ParamKind

// NumberParam builds a Number parameter spec.
func NumberParam(min, max, step, def float64) ParamSpec {
	return ParamSpec{Kind: KindNumber, Min: min, Max: max, Step: step, NumberDefault: def}
}

// BoolParam builds a Bool parameter spec.
func BoolParam(def bool) ParamSpec {
	return ParamSpec{Kind: KindBool, BoolDefault: def}
}

// SelectParam builds a Select parameter spec.
func SelectParam(def string, options ...string) ParamSpec {
	return ParamSpec{Kind: KindSelect, Options: options, SelectDefault: def}
}

// ArrayParam builds an Array parameter spec.
func ArrayParam(def ...float64) ParamSpec {
	return ParamSpec{Kind: KindArray, ArrayDefault: def}
}

// AlgorithmEntry is an immutable (once registered) catalog entry.
type AlgorithmEntry struct {
	ID          string
	DisplayName string
	Category    Category
	Description string
	ValueFn     algorithms.Func
	ParamSchema map[string]ParamSpec

	// Compatibility is the set of fractal tags this algorithm applies to.
	// Defaults to {"all"} when nil.
	Compatibility []string

	RequiresOrbitHistory bool
	RequiresPrecompute   bool

	Tags []string
}

func (e AlgorithmEntry) compatibility() []string {
	if len(e.Compatibility) == 0 {
		return []string{"all"}
	}
	return e.Compatibility
}

// ValidationResult is the outcome of validate_params.
type ValidationResult struct {
	OK     bool
	Errors []string
}

// Registry is the explicit, constructed-once value holding the
// algorithm catalog. It replaces a mutable global singleton: callers
// construct their own and pass it to the engine.
type Registry struct {
	entries map[string]AlgorithmEntry
	order   []string // insertion order, for stable all()/by_category() output
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]AlgorithmEntry)}
}

// Register adds or replaces an algorithm entry.
func (r *Registry) Register(entry AlgorithmEntry) {
	if _, exists := r.entries[entry.ID]; !exists {
		r.order = append(r.order, entry.ID)
	}
	r.entries[entry.ID] = entry
}

// Unregister removes an algorithm by id. No-op if absent.
func (r *Registry) Unregister(id string) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the entry for id.
func (r *Registry) Get(id string) (AlgorithmEntry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// All returns every entry in registration order.
func (r *Registry) All() []AlgorithmEntry {
	out := make([]AlgorithmEntry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// ByCategory returns every entry in category cat, in registration order.
func (r *Registry) ByCategory(cat Category) []AlgorithmEntry {
	var out []AlgorithmEntry
	for _, id := range r.order {
		if e := r.entries[id]; e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// CompatibleWith returns every entry compatible with tag (or tagged "all").
func (r *Registry) CompatibleWith(tag string) []AlgorithmEntry {
	var out []AlgorithmEntry
	for _, id := range r.order {
		e := r.entries[id]
		for _, c := range e.compatibility() {
			if c == tag || c == "all" {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// RequiresHistory returns every entry with RequiresOrbitHistory set.
func (r *Registry) RequiresHistory() []AlgorithmEntry {
	var out []AlgorithmEntry
	for _, id := range r.order {
		if e := r.entries[id]; e.RequiresOrbitHistory {
			out = append(out, e)
		}
	}
	return out
}

// RequiresPrecompute returns every entry with RequiresPrecompute set.
func (r *Registry) RequiresPrecompute() []AlgorithmEntry {
	var out []AlgorithmEntry
	for _, id := range r.order {
		if e := r.entries[id]; e.RequiresPrecompute {
			out = append(out, e)
		}
	}
	return out
}

// Search performs a case-insensitive substring match over id, display
// name, description and tags.
func (r *Registry) Search(query string) []AlgorithmEntry {
	q := strings.ToLower(query)
	var out []AlgorithmEntry
	for _, id := range r.order {
		e := r.entries[id]
		if strings.Contains(strings.ToLower(e.ID), q) ||
			strings.Contains(strings.ToLower(e.DisplayName), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
			continue
		}
		for _, t := range e.Tags {
			if strings.Contains(strings.ToLower(t), q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// DefaultParams builds the default parameter map for id from its schema.
func (r *Registry) DefaultParams(id string) algorithms.ParamMap {
	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	return defaultParams(e)
}

func defaultParams(e AlgorithmEntry) algorithms.ParamMap {
	params := make(algorithms.ParamMap, len(e.ParamSchema))
	for name, spec := range e.ParamSchema {
		switch spec.Kind {
		case KindNumber:
			params[name] = spec.NumberDefault
		case KindBool:
			params[name] = spec.BoolDefault
		case KindSelect:
			params[name] = spec.SelectDefault
		case KindArray:
			params[name] = spec.ArrayDefault
		}
	}
	return params
}

// ValidateParams validates params against id's schema. Unknown
// parameters are silently ignored (forward compatibility).
func (r *Registry) ValidateParams(id string, params algorithms.ParamMap) ValidationResult {
	e, ok := r.entries[id]
	if !ok {
		return ValidationResult{OK: false, Errors: []string{fmt.Sprintf("unknown algorithm: %s", id)}}
	}

	var errs []string
	for name, spec := range e.ParamSchema {
		v, present := params[name]
		if !present {
			continue
		}
		switch spec.Kind {
		case KindNumber:
			num, ok := toFloat(v)
			if !ok {
				errs = append(errs, fmt.Sprintf("%s: must be a number", name))
				continue
			}
			if num < spec.Min {
				errs = append(errs, fmt.Sprintf("%s: must be ≥ %v", name, spec.Min))
			}
			if num > spec.Max {
				errs = append(errs, fmt.Sprintf("%s: must be ≤ %v", name, spec.Max))
			}
		case KindBool:
			if _, ok := v.(bool); !ok {
				errs = append(errs, fmt.Sprintf("%s: must be a boolean", name))
			}
		case KindSelect:
			s, ok := v.(string)
			if !ok || !contains(spec.Options, s) {
				errs = append(errs, fmt.Sprintf("%s: must be one of %s", name, strings.Join(spec.Options, ", ")))
			}
		case KindArray:
			// Arrays accept []float64 or []float32; any other type is a soft mismatch,
			// tolerated since the schema does not bound array contents.
		}
	}

	sort.Strings(errs)
	return ValidationResult{OK: len(errs) == 0, Errors: errs}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
