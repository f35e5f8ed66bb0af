package vec

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-linalg/internal/testutil"
)

// Dot and Length are validated against gonum as an independent
// reference implementation.

func TestDotMatchesGonum(t *testing.T) {
	for _, size := range []int{1, 3, 64, 1024} {
		v := randomVector(10, size)
		w := randomVector(11, size)

		want := floats.Dot(valuesOf(v), valuesOf(w))
		testutil.RequireNear(t, v.Dot(w), want, 1e-8)
	}
}

func TestLengthMatchesGonum(t *testing.T) {
	for _, size := range []int{1, 3, 64, 1024} {
		v := randomVector(12, size)

		want := floats.Norm(valuesOf(v), 2)
		testutil.RequireNear(t, v.Length(), want, 1e-8)
	}
}
