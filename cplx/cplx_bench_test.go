package cplx

import (
	"strconv"
	"testing"
)

func BenchmarkMul(b *testing.B) {
	a := New(1.5, -2.5)
	c := New(0.5, 3)

	b.ReportAllocs()
	var sink Complex
	for range b.N {
		sink = a.Mul(c)
	}
	_ = sink
}

func BenchmarkModulus(b *testing.B) {
	z := New(3, 4)

	b.ReportAllocs()
	var sink float64
	for range b.N {
		sink = z.Modulus()
	}
	_ = sink
}

func BenchmarkPow(b *testing.B) {
	z := New(1.5, -2.5)

	b.ReportAllocs()
	var sink Complex
	for range b.N {
		sink = z.Pow(2.5)
	}
	_ = sink
}

func BenchmarkModuli(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}
	for _, n := range sizes {
		zs := randomComplexes(1, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))

			for range b.N {
				Moduli(zs)
			}
		})
	}
}
