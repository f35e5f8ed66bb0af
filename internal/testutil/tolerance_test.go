package testutil

import "testing"

func TestRequireNear(t *testing.T) {
	RequireNear(t, 1.0, 1.0+1e-13, 1e-12)
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, 1e300})
}

func TestRequirePanics(t *testing.T) {
	got := RequirePanics(t, "explicit panic", func() { panic("boom") })
	if got != "boom" {
		t.Fatalf("recovered = %v, want boom", got)
	}
}
