package cplx

import "fmt"

// ModulusError is the panic value when a phasor is constructed with a
// negative modulus.
type ModulusError struct {
	Modulus float64
}

func (e *ModulusError) Error() string {
	return fmt.Sprintf("cplx: modulus cannot be negative: %g", e.Modulus)
}
