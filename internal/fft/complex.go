package fft

import "github.com/llehouerou/go-sbrqmf/internal/num"

// ComplexMult rotates (x1 + i·x2) by the conjugate of (c1 + i·c2):
//
//	y1 = x1*c1 + x2*c2
//	y2 = x2*c1 - x1*c2
//
// With c1 = cos(θ) and c2 = sin(θ) this multiplies by exp(-iθ), which is
// the rotation used by the FFT butterflies and the DCT-IV pre/post twiddles.
//
// Ported from: ComplexMult() in ~/dev/faad2/libfaad/common.h
func ComplexMult(x1, x2 num.Real, c1, c2 num.Frac) (y1, y2 num.Real) {
	y1 = num.MulF(x1, c1) + num.MulF(x2, c2)
	y2 = num.MulF(x2, c1) - num.MulF(x1, c2)
	return
}
