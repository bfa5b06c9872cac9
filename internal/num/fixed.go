//go:build sbr_fixed

package num

import "math"

// Fixed reports whether the fixed-point representation is in use.
const Fixed = true

// Q-format widths.
// Ported from: REAL_BITS and FRAC_BITS in ~/dev/faad2/libfaad/fixed.h
const (
	RealBits = 14
	FracBits = 31
)

// Epsilon is the resolution of Real.
const Epsilon = 1.0 / (1 << RealBits)

// Real is a signal sample in Q(RealBits).
type Real = int32

// Frac is a constant in Q(FracBits). 1.0 itself saturates to the largest
// representable value.
type Frac = int32

// MulF multiplies a signal value by a constant with rounding.
//
// Ported from: MUL_F in ~/dev/faad2/libfaad/fixed.h
func MulF(a Real, b Frac) Real {
	return int32((int64(a)*int64(b) + 1<<(FracBits-1)) >> FracBits)
}

// RealConst converts a compile-time signal constant.
func RealConst(f float64) Real {
	return FromFloat(f)
}

// FracConst converts a constant with magnitude at most 1.
//
// Ported from: FRAC_CONST in ~/dev/faad2/libfaad/fixed.h
func FracConst(f float64) Frac {
	v := math.Round(f * (1 << FracBits))
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// FromFloat converts a float64 to a Real, rounding to nearest.
func FromFloat(f float64) Real {
	return int32(math.Round(f * (1 << RealBits)))
}

// ToFloat converts a Real to float64.
func ToFloat(r Real) float64 {
	return float64(r) / (1 << RealBits)
}
