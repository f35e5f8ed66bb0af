// Package vec implements an immutable real vector of fixed dimension.
//
// Every operation returns a freshly allocated Vector and leaves its
// operands untouched, so instances can be shared between goroutines
// without synchronization. Misuse of the API (mismatched sizes, an
// out-of-range index, a cross product on non-3D vectors, normalizing
// a zero vector) is a contract violation and panics with a typed
// error value from this package.
package vec

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Vector is an immutable, fixed-dimension real vector. The dimension
// is set at construction and never changes.
type Vector struct {
	values []float64

	// Length is computed at most once per instance. The cached value
	// stays valid forever because values never changes.
	lengthOnce sync.Once
	length     float64
}

// Axis unit vectors in three dimensions.
var (
	X = Make(1, 0, 0)
	Y = Make(0, 1, 0)
	Z = Make(0, 0, 1)
)

// Make builds a vector from the given components. The input is
// copied, so the caller may reuse or modify its slice afterwards.
func Make(values ...float64) *Vector {
	copied := make([]float64, len(values))
	copy(copied, values)

	return fromSlice(copied)
}

// fromSlice wraps a freshly allocated slice without copying it.
// Callers must not retain a reference to values.
func fromSlice(values []float64) *Vector {
	return &Vector{values: values}
}

// Get returns the component at the zero-based index.
// Panics with [*IndexError] if index is outside [0, Size).
func (v *Vector) Get(index int) float64 {
	v.checkIndex(index)

	return v.values[index]
}

// With returns a copy of v with the component at index replaced by
// value. Panics with [*IndexError] if index is outside [0, Size).
func (v *Vector) With(index int, value float64) *Vector {
	v.checkIndex(index)

	copied := make([]float64, len(v.values))
	copy(copied, v.values)
	copied[index] = value

	return fromSlice(copied)
}

// Size returns the number of components.
func (v *Vector) Size() int {
	return len(v.values)
}

// Negate returns -v.
func (v *Vector) Negate() *Vector {
	out := make([]float64, len(v.values))
	vecmath.ScaleBlock(out, v.values, -1)

	return fromSlice(out)
}

// Add returns the elementwise sum v + other.
// Panics with [*SizeMismatchError] if the sizes differ.
func (v *Vector) Add(other *Vector) *Vector {
	v.checkSameSize(other)

	out := make([]float64, len(v.values))
	copy(out, v.values)
	vecmath.AddBlockInPlace(out, other.values)

	return fromSlice(out)
}

// Subtract returns the elementwise difference v - other.
// Panics with [*SizeMismatchError] if the sizes differ.
func (v *Vector) Subtract(other *Vector) *Vector {
	v.checkSameSize(other)

	out := make([]float64, len(v.values))
	for i := range out {
		out[i] = v.values[i] - other.values[i]
	}

	return fromSlice(out)
}

// Dot returns the dot product of v and other.
// Panics with [*SizeMismatchError] if the sizes differ.
func (v *Vector) Dot(other *Vector) float64 {
	v.checkSameSize(other)

	dot := 0.0
	for i := range v.values {
		dot += v.values[i] * other.values[i]
	}

	return dot
}

// Cross returns the right-hand-rule cross product of v and other.
// Panics with [*SizeMismatchError] if the sizes differ and with
// [*DimensionError] if the vectors are not 3-dimensional.
func (v *Vector) Cross(other *Vector) *Vector {
	v.checkSameSize(other)
	if len(v.values) != 3 {
		panic(&DimensionError{Size: len(v.values)})
	}

	a, b := v.values, other.values

	return fromSlice([]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	})
}

// Multiply returns v scaled by the given constant.
func (v *Vector) Multiply(constant float64) *Vector {
	out := make([]float64, len(v.values))
	vecmath.ScaleBlock(out, v.values, constant)

	return fromSlice(out)
}

// Normalize returns a unit-length vector pointing in the direction of
// v. A vector whose length is already exactly 1 is returned as is.
// Panics with [ErrZeroVector] if the length is zero.
func (v *Vector) Normalize() *Vector {
	length := v.Length()
	if length == 0 {
		panic(ErrZeroVector)
	}

	if length == 1 {
		return v
	}

	return v.Multiply(1 / length)
}

// Length returns the Euclidean norm of v, the square root of v·v.
// The value is computed on first use and cached for the lifetime of
// the instance; concurrent callers all observe the same bit-identical
// result.
func (v *Vector) Length() float64 {
	v.lengthOnce.Do(func() {
		v.length = math.Sqrt(v.Dot(v))
	})

	return v.length
}

// String renders the components as "[1,2,3]": bracketed, comma
// separated, no spaces, each value in the shortest decimal form that
// round-trips a float64.
func (v *Vector) String() string {
	var b strings.Builder

	b.WriteByte('[')
	for i, value := range v.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}

func (v *Vector) checkIndex(index int) {
	if index < 0 || index >= len(v.values) {
		panic(&IndexError{Index: index, Size: len(v.values)})
	}
}

func (v *Vector) checkSameSize(other *Vector) {
	if len(v.values) != len(other.values) {
		panic(&SizeMismatchError{Size: len(v.values), OtherSize: len(other.values)})
	}
}
