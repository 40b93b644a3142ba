package catalog

import (
	"math"
	"testing"

	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/histogram"
	"github.com/gogpu/fractalcolor/internal/registry"
)

// minimumPerCategory mirrors the family sizes committed to the catalog.
var minimumPerCategory = map[registry.Category]int{
	registry.CategorySmooth:             14,
	registry.CategoryOrbitTrap:          25,
	registry.CategoryDistance:           12,
	registry.CategoryHistogram:          8,
	registry.CategoryTriangleInequality: 7,
	registry.CategoryStripe:             9,
	registry.CategoryCurvature:          7,
	registry.CategoryAngle:              12,
	registry.CategoryHybrid:             5,
}

func TestBuildRegistersEveryCategoryAtItsMinimum(t *testing.T) {
	r := Build()
	for cat, min := range minimumPerCategory {
		got := len(r.ByCategory(cat))
		if got < min {
			t.Errorf("category %s has %d entries, want at least %d", cat, got, min)
		}
	}
}

func TestBuildHasNoDuplicateIDs(t *testing.T) {
	r := Build()
	seen := make(map[string]bool)
	for _, e := range r.All() {
		if seen[e.ID] {
			t.Errorf("duplicate algorithm id: %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestBuildSpecIDsArePresent(t *testing.T) {
	r := Build()
	// A sample of spec.md's stable string keys, across every family,
	// confirming the naming convention (including the orbit-trap
	// trap-<shape> prefix) is exactly as documented.
	mustExist := []string{
		"smooth-iteration", "continuous-potential", "binary-decomposition",
		"trap-point", "trap-origin", "trap-circle", "multi-trap", "phase-trap",
		"distance-estimation", "gradient-magnitude",
		"histogram-equalization", "sigmoid-equalization",
		"triangle-inequality-average", "hybrid-tia",
		"stripe-average", "iteration-stripe-hybrid",
		"curvature-estimate", "combined-curvature",
		"angular-decomposition", "winding-number", "checkerboard-decomposition",
	}
	for _, id := range mustExist {
		if !r.Has(id) {
			t.Errorf("expected algorithm id %q to be registered", id)
		}
	}
}

func TestEveryEntryDefaultParamsValidate(t *testing.T) {
	r := Build()
	for _, e := range r.All() {
		result := r.ValidateParams(e.ID, r.DefaultParams(e.ID))
		if !result.OK {
			t.Errorf("%s: default params failed validation: %v", e.ID, result.Errors)
		}
	}
}

// syntheticContexts covers the shapes of input a real renderer produces:
// escaped with full orbit history, escaped without history, and interior
// (never escaped).
func syntheticContexts() []algorithms.PixelContext {
	history := make([]algorithms.OrbitStep, 0, 12)
	x, y := float32(0), float32(0)
	const cRe, cIm = float32(-0.5), float32(0.3)
	for i := 0; i < 12; i++ {
		nx := x*x - y*y + cRe
		ny := 2*x*y + cIm
		x, y = nx, ny
		history = append(history, algorithms.OrbitStep{X: x, Y: y})
	}

	base := algorithms.PixelContext{
		X: 10, Y: 10, Width: 100, Height: 100,
		MaxIterations: 256, EscapeRadius: 2,
		Iterations: 37.5, Escaped: true,
		OrbitX: x, OrbitY: y,
		HasDistance: true, Distance: 0.0123,
		HasPotential: true, Potential: 4.2,
		HasAngle: true, Angle: 1.1,
	}

	withHistory := base
	withHistory.HasOrbitHistory = true
	withHistory.OrbitHistory = history

	withoutHistory := base

	interior := base
	interior.Escaped = false
	interior.Iterations = 256
	interior.HasOrbitHistory = true
	interior.OrbitHistory = history

	return []algorithms.PixelContext{withHistory, withoutHistory, interior}
}

func syntheticHistogram() *histogram.Context {
	iterations := make([]float32, 256)
	escaped := make([]uint8, 256)
	for i := range iterations {
		iterations[i] = float32(i)
		if i%3 != 0 {
			escaped[i] = 1
		}
	}
	return histogram.Precompute(iterations, escaped, histogram.Options{Bins: 32, ComputeLog: true})
}

// TestEveryEntryProducesFiniteBoundedOutput drives every registered
// algorithm's ValueFn across escaped-with-history, escaped-without-history
// and interior contexts, with a real histogram.Context available for the
// precompute family. It never asserts a specific value (the catalog has
// ~100 algorithms and inventing per-algorithm expected values would be
// brittle); it only enforces the invariant every Func must uphold: a
// finite, non-NaN, non-negative scalar.
func TestEveryEntryProducesFiniteBoundedOutput(t *testing.T) {
	r := Build()
	hist := syntheticHistogram()
	contexts := syntheticContexts()

	for _, e := range r.All() {
		e := e
		t.Run(e.ID, func(t *testing.T) {
			params := r.DefaultParams(e.ID)
			for i, ctx := range contexts {
				if e.RequiresOrbitHistory && !ctx.HasOrbitHistory {
					continue
				}
				got := e.ValueFn(ctx, params, hist)
				if math.IsNaN(float64(got)) || math.IsInf(float64(got), 0) {
					t.Errorf("context %d: %s produced non-finite output: %v", i, e.ID, got)
				}
				if got < 0 {
					t.Errorf("context %d: %s produced negative output: %v", i, e.ID, got)
				}
			}
		})
	}
}

func TestRequiresOrbitHistoryEntriesNeedHistoryToBeMeaningful(t *testing.T) {
	r := Build()
	for _, e := range r.RequiresHistory() {
		if !e.RequiresOrbitHistory {
			t.Errorf("%s: returned by RequiresHistory() but RequiresOrbitHistory is false", e.ID)
		}
	}
}
