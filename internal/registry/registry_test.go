package registry

import (
	"testing"

	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/histogram"
)

func sampleFn(ctx algorithms.PixelContext, params algorithms.ParamMap, hist *histogram.Context) float32 {
	return params.Float("scale", 1) * 0.1
}

func sampleEntry(id string) AlgorithmEntry {
	return AlgorithmEntry{
		ID:          id,
		DisplayName: "Sample " + id,
		Category:    CategorySmooth,
		Description: "a sample entry for testing",
		ValueFn:     sampleFn,
		ParamSchema: map[string]ParamSpec{
			"scale": NumberParam(0, 10, 0.1, 1),
			"flag":  BoolParam(true),
			"mode":  SelectParam("a", "a", "b", "c"),
		},
		Tags: []string{"sample"},
	}
}

func TestRegisterGetHas(t *testing.T) {
	r := New()
	if r.Has("foo") {
		t.Fatal("empty registry reports Has(foo) = true")
	}
	r.Register(sampleEntry("foo"))
	if !r.Has("foo") {
		t.Fatal("Has(foo) = false after Register")
	}
	e, ok := r.Get("foo")
	if !ok || e.ID != "foo" {
		t.Fatalf("Get(foo) = %v, %v", e, ok)
	}
}

func TestUnregister(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo"))
	r.Unregister("foo")
	if r.Has("foo") {
		t.Fatal("Has(foo) = true after Unregister")
	}
	// Unregistering an absent id is a no-op, not an error.
	r.Unregister("bar")
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	r := New()
	r.Register(sampleEntry("c"))
	r.Register(sampleEntry("a"))
	r.Register(sampleEntry("b"))

	got := r.All()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("All() returned %d entries, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestByCategory(t *testing.T) {
	r := New()
	smooth := sampleEntry("s1")
	smooth.Category = CategorySmooth
	trap := sampleEntry("t1")
	trap.Category = CategoryOrbitTrap
	r.Register(smooth)
	r.Register(trap)

	got := r.ByCategory(CategoryOrbitTrap)
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("ByCategory(orbit_trap) = %v, want [t1]", got)
	}
}

func TestCompatibleWithDefaultsToAll(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo")) // no Compatibility set -> defaults to {"all"}
	got := r.CompatibleWith("mandelbrot")
	if len(got) != 1 {
		t.Fatalf("CompatibleWith(mandelbrot) = %v, want 1 entry (defaults to all)", got)
	}
}

func TestRequiresHistoryAndPrecompute(t *testing.T) {
	r := New()
	plain := sampleEntry("plain")
	hist := sampleEntry("hist")
	hist.RequiresOrbitHistory = true
	pre := sampleEntry("pre")
	pre.RequiresPrecompute = true
	r.Register(plain)
	r.Register(hist)
	r.Register(pre)

	if got := r.RequiresHistory(); len(got) != 1 || got[0].ID != "hist" {
		t.Errorf("RequiresHistory() = %v, want [hist]", got)
	}
	if got := r.RequiresPrecompute(); len(got) != 1 || got[0].ID != "pre" {
		t.Errorf("RequiresPrecompute() = %v, want [pre]", got)
	}
}

func TestSearchMatchesIDNameDescriptionAndTags(t *testing.T) {
	r := New()
	r.Register(sampleEntry("stripe-average"))
	if got := r.Search("STRIPE"); len(got) != 1 {
		t.Errorf("Search(STRIPE) = %v, want 1 match (case-insensitive id)", got)
	}
	if got := r.Search("sample"); len(got) != 1 {
		t.Errorf("Search(sample) = %v, want 1 match (tag)", got)
	}
	if got := r.Search("nonexistent-zzz"); len(got) != 0 {
		t.Errorf("Search(nonexistent-zzz) = %v, want no matches", got)
	}
}

func TestDefaultParamsBuildsEveryKind(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo"))
	params := r.DefaultParams("foo")
	if params["scale"] != 1.0 {
		t.Errorf("default scale = %v, want 1.0", params["scale"])
	}
	if params["flag"] != true {
		t.Errorf("default flag = %v, want true", params["flag"])
	}
	if params["mode"] != "a" {
		t.Errorf("default mode = %v, want \"a\"", params["mode"])
	}
}

func TestDefaultParamsUnknownID(t *testing.T) {
	r := New()
	if got := r.DefaultParams("nope"); got != nil {
		t.Errorf("DefaultParams(nope) = %v, want nil", got)
	}
}

func TestValidateParamsAcceptsDefaults(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo"))
	result := r.ValidateParams("foo", r.DefaultParams("foo"))
	if !result.OK {
		t.Errorf("validating default params failed: %v", result.Errors)
	}
}

func TestValidateParamsRejectsOutOfRangeNumber(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo"))
	result := r.ValidateParams("foo", algorithms.ParamMap{"scale": 100.0})
	if result.OK {
		t.Fatal("expected validation failure for scale=100 (max is 10)")
	}
}

func TestValidateParamsRejectsWrongType(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo"))
	result := r.ValidateParams("foo", algorithms.ParamMap{"flag": "not-a-bool"})
	if result.OK {
		t.Fatal("expected validation failure for flag=\"not-a-bool\"")
	}
}

func TestValidateParamsRejectsInvalidSelectOption(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo"))
	result := r.ValidateParams("foo", algorithms.ParamMap{"mode": "z"})
	if result.OK {
		t.Fatal("expected validation failure for mode=\"z\" (not in options)")
	}
}

func TestValidateParamsIgnoresUnknownKeys(t *testing.T) {
	r := New()
	r.Register(sampleEntry("foo"))
	result := r.ValidateParams("foo", algorithms.ParamMap{"totallyUnknown": 42.0})
	if !result.OK {
		t.Errorf("unknown params should be ignored for forward compatibility, got errors: %v", result.Errors)
	}
}

func TestValidateParamsUnknownAlgorithm(t *testing.T) {
	r := New()
	result := r.ValidateParams("nope", nil)
	if result.OK {
		t.Fatal("expected validation failure for an unregistered algorithm id")
	}
}
