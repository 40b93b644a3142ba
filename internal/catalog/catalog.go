// Package catalog builds the full algorithm registry: every
// internal/algorithms.Func paired with its display name, category,
// parameter schema and data-requirement flags. It is the only package
// that imports both internal/algorithms and internal/registry, keeping
// the two leaf packages decoupled from each other.
package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func entry(id, name string, cat registry.Category, desc string, fn algorithms.Func, schema map[string]registry.ParamSpec, reqHist, reqPre bool, tags ...string) registry.AlgorithmEntry {
	return registry.AlgorithmEntry{
		ID:                   id,
		DisplayName:          name,
		Category:             cat,
		Description:          desc,
		ValueFn:              fn,
		ParamSchema:          schema,
		RequiresOrbitHistory: reqHist,
		RequiresPrecompute:   reqPre,
		Tags:                 tags,
	}
}

// Build constructs a fresh registry populated with every built-in
// algorithm across all nine categories.
func Build() *registry.Registry {
	r := registry.New()
	addSmooth(r)
	addTrap(r)
	addDistance(r)
	addHistogram(r)
	addTIA(r)
	addStripe(r)
	addCurvature(r)
	addAngle(r)
	addHybrid(r)
	return r
}
