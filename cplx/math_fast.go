//go:build fastmath

package cplx

import (
	"github.com/meko-christian/algo-approx"
)

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

// mathLog computes ln(x) using fast approximation.
func mathLog(x float64) float64 {
	return approx.FastLog(x)
}

// mathHypot computes sqrt(x²+y²) using fast approximation.
// Note: unlike math.Hypot this squares the parts directly, so inputs
// near the float64 range limits can overflow or underflow.
func mathHypot(x, y float64) float64 {
	return approx.FastSqrt(x*x + y*y)
}
