package cplx

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for part unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// unpack splits zs into separate real and imaginary part slices.
func unpack(re, im []float64, zs []Complex) {
	for i, z := range zs {
		re[i] = z.re
		im[i] = z.im
	}
}

// Moduli returns |z| for every element of zs.
//
// The moduli are computed with a SIMD block kernel over the unpacked
// parts, so on large inputs this is substantially faster than calling
// [Complex.Modulus] per element. Scratch buffers are pooled
// internally; in steady state only the output slice is allocated.
// The kernel squares the parts directly, so values near the float64
// range limits lose math.Hypot's overflow protection.
func Moduli(zs []Complex) []float64 {
	out := make([]float64, len(zs))

	re, im, buf := getScratch(len(zs))
	defer putScratch(buf)

	unpack(re, im, zs)
	vecmath.Magnitude(out, re, im)

	return out
}

// Powers returns |z|² for every element of zs, skipping the square
// root that Moduli takes. Scratch buffers are pooled internally.
func Powers(zs []Complex) []float64 {
	out := make([]float64, len(zs))

	re, im, buf := getScratch(len(zs))
	defer putScratch(buf)

	unpack(re, im, zs)
	vecmath.Power(out, re, im)

	return out
}
