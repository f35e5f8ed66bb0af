package cplx

import "math"

// Complex is an immutable complex number. The zero value is 0 + 0i.
type Complex struct {
	re, im float64
}

// Unity is the complex value 1.
var Unity = Complex{re: 1}

// New returns the complex number re + im·i. Any pair of float64
// values is valid, including signed zeros, infinities and NaN.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromPhasor builds a complex number from its polar form,
// modulus·e^(i·argument) = modulus·(cos argument + i·sin argument).
// Panics with [*ModulusError] if modulus is negative.
func FromPhasor(modulus, argument float64) Complex {
	if modulus < 0 {
		panic(&ModulusError{Modulus: modulus})
	}

	return Complex{
		re: modulus * math.Cos(argument),
		im: modulus * math.Sin(argument),
	}
}

// Re returns the real part.
func (c Complex) Re() float64 {
	return c.re
}

// Im returns the imaginary part.
func (c Complex) Im() float64 {
	return c.im
}

// Modulus returns the distance from the origin. The hypotenuse is
// computed without squaring the parts first, so it stays accurate
// where sqrt(re²+im²) would overflow or underflow.
func (c Complex) Modulus() float64 {
	return mathHypot(c.re, c.im)
}

// Argument returns the counterclockwise angle from the positive real
// axis, in radians, always within (-π, π].
func (c Complex) Argument() float64 {
	return math.Atan2(c.im, c.re)
}

// Add returns the sum c + other.
func (c Complex) Add(other Complex) Complex {
	return Complex{re: c.re + other.re, im: c.im + other.im}
}

// Subtract returns the difference c - other.
func (c Complex) Subtract(other Complex) Complex {
	return Complex{re: c.re - other.re, im: c.im - other.im}
}

// Negate returns -c.
func (c Complex) Negate() Complex {
	return Complex{re: -c.re, im: -c.im}
}

// Conjugate returns the complex conjugate of c, with only the
// imaginary part negated.
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// Reciprocal returns 1/c via the polar form: a phasor with modulus
// 1/|c| and argument -arg(c). A zero input has no finite reciprocal;
// the result carries IEEE infinities/NaNs rather than panicking.
func (c Complex) Reciprocal() Complex {
	return FromPhasor(1/c.Modulus(), -c.Argument())
}

// Mul returns the complex product c·other:
// (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		re: c.re*other.re - c.im*other.im,
		im: c.re*other.im + c.im*other.re,
	}
}

// MulScalar returns c with both parts scaled by a real constant.
func (c Complex) MulScalar(other float64) Complex {
	return Complex{re: c.re * other, im: c.im * other}
}

// Div returns the quotient c / other, computed as c·other⁻¹.
// Dividing by zero propagates Reciprocal's non-finite values.
func (c Complex) Div(other Complex) Complex {
	return c.Mul(other.Reciprocal())
}

// DivScalar returns c with both parts divided by a real constant.
// There is no zero check: dividing by 0 follows the float64 rules
// and yields infinite or NaN parts.
func (c Complex) DivScalar(other float64) Complex {
	return Complex{re: c.re / other, im: c.im / other}
}

// Exp returns e raised to c. By Euler's formula
// e^(a+bi) = e^a·(cos b + i·sin b), the phasor with modulus e^a and
// argument b.
func (c Complex) Exp() Complex {
	return FromPhasor(mathExp(c.re), c.im)
}

// Log returns the principal natural logarithm of c:
// ln|c| + i·arg(c).
func (c Complex) Log() Complex {
	return Complex{re: mathLog(c.Modulus()), im: c.Argument()}
}

// Pow returns the principal value of c raised to the real power n,
// computed as exp(n·log c).
func (c Complex) Pow(n float64) Complex {
	return c.Log().MulScalar(n).Exp()
}

// Root returns the principal n-th root of c.
func (c Complex) Root(n int) Complex {
	return c.Pow(1 / float64(n))
}
