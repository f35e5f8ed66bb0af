package cplx

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-linalg/internal/testutil"
)

func randomComplexes(seed int64, n int) []Complex {
	rng := rand.New(rand.NewSource(seed))
	zs := make([]Complex, n)
	for i := range zs {
		zs[i] = New(rng.Float64()*20-10, rng.Float64()*20-10)
	}

	return zs
}

func TestModuli(t *testing.T) {
	for _, n := range []int{0, 1, 7, 256} {
		zs := randomComplexes(int64(n), n)

		got := Moduli(zs)
		want := make([]float64, n)
		for i, z := range zs {
			want[i] = z.Modulus()
		}

		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
		testutil.RequireFinite(t, got)
	}
}

func TestPowers(t *testing.T) {
	zs := randomComplexes(5, 64)

	got := Powers(zs)
	want := make([]float64, len(zs))
	for i, z := range zs {
		want[i] = z.Re()*z.Re() + z.Im()*z.Im()
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestModuliReusesScratch(t *testing.T) {
	zs := randomComplexes(6, 128)

	// Two passes over the same input must agree exactly; the second
	// one runs on pooled scratch.
	first := Moduli(zs)
	second := Moduli(zs)
	testutil.RequireSliceNearlyEqual(t, first, second, 0)
}
