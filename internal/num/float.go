//go:build !sbr_fixed

package num

// Fixed reports whether the fixed-point representation is in use.
const Fixed = false

// Epsilon is the resolution of Real near 1.0.
const Epsilon = 1.0 / (1 << 23)

// Real is a signal sample.
type Real = float32

// Frac is a constant with magnitude at most 1.
type Frac = float32

// MulF multiplies a signal value by a constant.
// The conversion rounds the product before any following addition, so
// the result never depends on whether the compiler fuses multiply-add.
//
// Ported from: MUL_F in ~/dev/faad2/libfaad/common.h
func MulF(a Real, b Frac) Real {
	return float32(a * b)
}

// RealConst converts a compile-time signal constant.
func RealConst(f float64) Real {
	return float32(f)
}

// FracConst converts a constant with magnitude at most 1.
func FracConst(f float64) Frac {
	return float32(f)
}

// FromFloat converts a float64 to a Real.
func FromFloat(f float64) Real {
	return float32(f)
}

// ToFloat converts a Real to float64.
func ToFloat(r Real) float64 {
	return float64(r)
}
