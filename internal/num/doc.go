// Package num defines the scalar types shared by the transforms and the
// filter banks.
//
// Signal values are Real and multiplicative constants (twiddles, window
// taps, scale factors) are Frac. The default build uses float32 for both.
// Building with the sbr_fixed tag switches to int32 Q-formats: Real carries
// RealBits fractional bits and Frac carries FracBits. Code outside this
// package only combines the two through MulF, adds and subtracts Reals, and
// converts with the Const/From/To helpers, so it compiles unchanged in
// either build.
//
// Fixed-point overflow wraps silently. Callers keep signal magnitudes well
// inside the Real range.
package num
