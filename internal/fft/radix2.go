// Package fft implements the complex FFT core used by the DCT/DST kernels.
package fft

import (
	"math"
	"math/bits"

	"github.com/llehouerou/go-sbrqmf/internal/num"
)

// MaxSize is the largest supported transform size.
const MaxSize = 32

// Radix2 is a decimation-in-frequency FFT of a fixed power-of-two size,
// operating in place on separate real and imaginary arrays.
//
// Ported from: w_array_real, w_array_imag and bit_rev_tab in ~/dev/faad2/libfaad/sbr_dct.c
type Radix2 struct {
	N    int        // Transform size
	Bits int        // log2(N)
	cos  []num.Frac // cos(2πj/N), j < N/2
	sin  []num.Frac // sin(2πj/N), j < N/2
	rev  []uint8    // Bit-reversal permutation
}

// NewRadix2 builds the twiddle and permutation tables for an n-point FFT.
// n must be a power of two between 1 and MaxSize.
func NewRadix2(n int) *Radix2 {
	if n < 1 || n > MaxSize || n&(n-1) != 0 {
		panic("fft: size must be a power of two in [1, 32]")
	}

	f := &Radix2{
		N:    n,
		Bits: bits.TrailingZeros(uint(n)),
		cos:  make([]num.Frac, n/2),
		sin:  make([]num.Frac, n/2),
		rev:  make([]uint8, n),
	}

	for j := range f.cos {
		angle := 2 * math.Pi * float64(j) / float64(n)
		f.cos[j] = num.FracConst(math.Cos(angle))
		f.sin[j] = num.FracConst(math.Sin(angle))
	}
	for k := range f.rev {
		f.rev[k] = uint8(reverseBits(k, f.Bits))
	}

	return f
}

// reverseBits reverses the low width bits of k.
func reverseBits(k, width int) int {
	if width == 0 {
		return 0
	}
	return int(bits.Reverse32(uint32(k)) >> (32 - width))
}

// Reverse returns the array position holding frequency bin k after
// Transform.
func (f *Radix2) Reverse(k int) int {
	return int(f.rev[k])
}

// Transform computes the forward DFT X[k] = Σ x[n]·exp(-2πink/N) in place.
// The output is left in bit-reversed order: bin k is at re[f.Reverse(k)].
// re and im must both have length N.
//
// Ported from: fft_dif() in ~/dev/faad2/libfaad/sbr_dct.c
func (f *Radix2) Transform(re, im []num.Real) {
	n := f.N
	if len(re) != n || len(im) != n {
		panic("fft: buffer length does not match transform size")
	}

	for size := n; size > 1; size >>= 1 {
		half := size >> 1
		step := n / size
		for start := 0; start < n; start += size {
			// j == 0 has a unit twiddle.
			a, b := start, start+half
			tr, ti := re[a]-re[b], im[a]-im[b]
			re[a] += re[b]
			im[a] += im[b]
			re[b], im[b] = tr, ti

			for j := 1; j < half; j++ {
				a, b = start+j, start+j+half
				tr, ti = re[a]-re[b], im[a]-im[b]
				re[a] += re[b]
				im[a] += im[b]
				w := j * step
				re[b], im[b] = ComplexMult(tr, ti, f.cos[w], f.sin[w])
			}
		}
	}
}
