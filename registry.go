package fractalcolor

import (
	"github.com/gogpu/fractalcolor/internal/catalog"
	"github.com/gogpu/fractalcolor/internal/registry"
)

// Registry, AlgorithmEntry and the parameter-schema types re-export
// internal/registry's catalog at the package boundary.
type (
	Registry       = registry.Registry
	AlgorithmEntry = registry.AlgorithmEntry
	Category       = registry.Category
	ParamSpec      = registry.ParamSpec
	ValidationResult = registry.ValidationResult
)

const (
	CategorySmooth             = registry.CategorySmooth
	CategoryOrbitTrap          = registry.CategoryOrbitTrap
	CategoryDistance           = registry.CategoryDistance
	CategoryHistogram          = registry.CategoryHistogram
	CategoryTriangleInequality = registry.CategoryTriangleInequality
	CategoryStripe             = registry.CategoryStripe
	CategoryCurvature          = registry.CategoryCurvature
	CategoryAngle              = registry.CategoryAngle
	CategoryHybrid             = registry.CategoryHybrid
)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return registry.New()
}

// DefaultRegistry returns a registry populated with the full built-in
// algorithm library across all nine categories.
func DefaultRegistry() *Registry {
	return catalog.Build()
}
