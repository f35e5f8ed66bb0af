// Package cplx implements arithmetic on immutable complex numbers,
// with polar-form (phasor) construction and principal-branch
// exponential, logarithm, power and root.
//
// Complex is a plain two-float64 value type. Nothing is cached: the
// modulus and argument are recomputed on every call, and all
// operations return new values, so instances are freely shareable.
//
// # Usage
//
// Rotate a unit phasor and take its cube root:
//
//	z := cplx.FromPhasor(1, math.Pi/2) // i
//	w := z.Mul(z)                      // -1
//	r := w.Root(3)                     // principal cube root of -1
//
// # Division semantics
//
// Div goes through the polar reciprocal, so dividing by zero yields
// IEEE infinities/NaNs instead of panicking, and DivScalar performs
// raw float64 division with the same non-finite results. FromPhasor
// is the only validating constructor: a negative modulus panics with
// [*ModulusError].
//
// # Fast math
//
// Building with the "fastmath" tag swaps the exp, log and modulus
// kernels for polynomial approximations from
// github.com/meko-christian/algo-approx, trading the last few bits
// of accuracy for throughput. The default build uses the standard
// library and is bit-exact with the documented formulas.
package cplx
