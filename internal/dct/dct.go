// Package dct implements the fast DCT-II/III/IV and DST-II/IV kernels shared
// by the QMF analysis and synthesis banks.
//
// All transforms are unnormalized:
//
//	DCT-II:  y[k] = Σ x[n]·cos(π(n+½)k/N)
//	DCT-III: y[n] = Σ X[k]·cos(πk(n+½)/N)
//	DCT-IV:  y[k] = Σ x[n]·cos(π(n+½)(k+½)/N)
//	DST-II:  y[k] = Σ x[n]·sin(π(n+½)(k+1)/N)
//	DST-IV:  y[k] = Σ x[n]·sin(π(n+½)(k+½)/N)
//
// Supported sizes are powers of two from 2 to MaxSize. The size is taken
// from len(src); dst must have the same length and may alias src.
package dct

import (
	"math"
	"math/bits"

	"github.com/llehouerou/go-sbrqmf/internal/fft"
	"github.com/llehouerou/go-sbrqmf/internal/num"
)

// MaxSize is the largest supported transform size.
const MaxSize = 64

// kernel holds the DCT-IV modulation tables for one size.
//
// Ported from: dct4_64_tab in ~/dev/faad2/libfaad/sbr_dct.c
type kernel struct {
	n       int
	fft     *fft.Radix2 // N/2-point FFT
	preCos  []num.Frac  // cos(π(4n+1)/(4N)), n < N/2
	preSin  []num.Frac  // sin(π(4n+1)/(4N))
	postCos []num.Frac  // cos(πk/N), k < N/2
	postSin []num.Frac  // sin(πk/N)
}

// kernels is indexed by log2(N)-1.
var kernels = newKernels()

var sqrtHalf = num.FracConst(math.Sqrt2 / 2)

func newKernels() [6]*kernel {
	var ks [6]*kernel
	for i := range ks {
		ks[i] = newKernel(2 << i)
	}
	return ks
}

func newKernel(n int) *kernel {
	h := n / 2
	k := &kernel{
		n:       n,
		fft:     fft.NewRadix2(h),
		preCos:  make([]num.Frac, h),
		preSin:  make([]num.Frac, h),
		postCos: make([]num.Frac, h),
		postSin: make([]num.Frac, h),
	}
	for i := 0; i < h; i++ {
		pre := math.Pi * float64(4*i+1) / float64(4*n)
		k.preCos[i] = num.FracConst(math.Cos(pre))
		k.preSin[i] = num.FracConst(math.Sin(pre))

		post := math.Pi * float64(i) / float64(n)
		k.postCos[i] = num.FracConst(math.Cos(post))
		k.postSin[i] = num.FracConst(math.Sin(post))
	}
	return k
}

// kernelFor returns the tables for size n, panicking on unsupported sizes.
func kernelFor(n int) *kernel {
	if n < 2 || n > MaxSize || n&(n-1) != 0 {
		panic("dct: size must be a power of two in [2, 64]")
	}
	return kernels[bits.TrailingZeros(uint(n))-1]
}

func checkLengths(dst, src []num.Real) int {
	n := len(src)
	if len(dst) != n {
		panic("dct: dst and src lengths differ")
	}
	kernelFor(n)
	return n
}

// DCT4 computes the type-IV DCT of src into dst.
//
// The input is folded into N/2 complex values, rotated by odd multiples of
// π/(4N), transformed by an N/2-point FFT, and rotated again by multiples of
// π/N while reading the FFT output in bit-reversed order.
//
// Ported from: dct4_kernel() in ~/dev/faad2/libfaad/sbr_dct.c
func DCT4(dst, src []num.Real) {
	k := kernelFor(len(src))
	if len(dst) != k.n {
		panic("dct: dst and src lengths differ")
	}
	n, h := k.n, k.n/2

	var re, im [MaxSize / 2]num.Real
	for i := 0; i < h; i++ {
		re[i], im[i] = fft.ComplexMult(src[2*i], src[n-1-2*i], k.preCos[i], k.preSin[i])
	}

	k.fft.Transform(re[:h], im[:h])

	for i := 0; i < h; i++ {
		p := k.fft.Reverse(i)
		yr, yi := fft.ComplexMult(re[p], im[p], k.postCos[i], k.postSin[i])
		dst[2*i] = yr
		dst[n-1-2*i] = -yi
	}
}

// DST4 computes the type-IV DST of src into dst by reversing the input of a
// DCT-IV and alternating the signs of its output.
//
// Ported from: DST4_32() in ~/dev/faad2/libfaad/sbr_dct.c
func DST4(dst, src []num.Real) {
	n := checkLengths(dst, src)

	var rev [MaxSize]num.Real
	for i := 0; i < n; i++ {
		rev[i] = src[n-1-i]
	}

	DCT4(dst, rev[:n])

	for k := 1; k < n; k += 2 {
		dst[k] = -dst[k]
	}
}

// DCT2 computes the type-II DCT of src into dst.
// Even outputs come from a half-size DCT-II of the folded sums and odd
// outputs from a half-size DCT-IV of the folded differences.
//
// Ported from: DCT2_16_unscaled() in ~/dev/faad2/libfaad/sbr_dct.c
func DCT2(dst, src []num.Real) {
	n := checkLengths(dst, src)

	if n == 2 {
		a, b := src[0], src[1]
		dst[0] = a + b
		dst[1] = num.MulF(a-b, sqrtHalf)
		return
	}

	h := n / 2
	var sum, diff, even, odd [MaxSize / 2]num.Real
	for i := 0; i < h; i++ {
		sum[i] = src[i] + src[n-1-i]
		diff[i] = src[i] - src[n-1-i]
	}

	DCT2(even[:h], sum[:h])
	DCT4(odd[:h], diff[:h])

	for k := 0; k < h; k++ {
		dst[2*k] = even[k]
		dst[2*k+1] = odd[k]
	}
}

// DCT3 computes the type-III DCT of src into dst. It is the transpose of
// DCT2: DCT3(DCT2(x)) with the DC term halved equals N/2·x.
//
// Ported from: DCT3_32_unscaled() in ~/dev/faad2/libfaad/sbr_dct.c
func DCT3(dst, src []num.Real) {
	n := checkLengths(dst, src)

	if n == 2 {
		a, b := src[0], num.MulF(src[1], sqrtHalf)
		dst[0] = a + b
		dst[1] = a - b
		return
	}

	h := n / 2
	var even, odd, lo, hi [MaxSize / 2]num.Real
	for i := 0; i < h; i++ {
		even[i] = src[2*i]
		odd[i] = src[2*i+1]
	}

	DCT3(lo[:h], even[:h])
	DCT4(hi[:h], odd[:h])

	for i := 0; i < h; i++ {
		dst[i] = lo[i] + hi[i]
		dst[n-1-i] = lo[i] - hi[i]
	}
}

// DST2 computes the type-II DST of src into dst as a DCT-II of the
// sign-alternated input read back in reverse order.
func DST2(dst, src []num.Real) {
	n := checkLengths(dst, src)

	var alt, y [MaxSize]num.Real
	for i := 0; i < n; i++ {
		if i&1 == 0 {
			alt[i] = src[i]
		} else {
			alt[i] = -src[i]
		}
	}

	DCT2(y[:n], alt[:n])

	for k := 0; k < n; k++ {
		dst[k] = y[n-1-k]
	}
}
