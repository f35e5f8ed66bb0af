//go:build !fastmath

package cplx

import "math"

// mathExp computes e^x using the standard library.
func mathExp(x float64) float64 {
	return math.Exp(x)
}

// mathLog computes ln(x) using the standard library.
func mathLog(x float64) float64 {
	return math.Log(x)
}

// mathHypot computes sqrt(x²+y²) using the standard library, which
// avoids intermediate overflow and underflow.
func mathHypot(x, y float64) float64 {
	return math.Hypot(x, y)
}
