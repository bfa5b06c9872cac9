package filterbank

import (
	"github.com/llehouerou/go-sbrqmf/internal/dct"
	"github.com/llehouerou/go-sbrqmf/internal/num"
)

// Analysis is the 32-band QMF analysis state of one channel.
//
// Ported from: qmfa_info in ~/dev/faad2/libfaad/sbr_dec.h
type Analysis struct {
	mode Mode

	// x holds the last 320 input samples, newest first.
	x [AnalysisWindowSize]num.Real
}

// NewAnalysis returns a zeroed analysis state.
//
// Ported from: qmfa_init() in ~/dev/faad2/libfaad/sbr_qmf.c
func NewAnalysis(mode Mode) *Analysis {
	return &Analysis{mode: mode}
}

// Mode returns the bank mode.
func (a *Analysis) Mode() Mode {
	return a.mode
}

// Reset clears the input history.
func (a *Analysis) Reset() {
	clear(a.x[:])
}

// Slot consumes 32 new samples and writes one slot of subband samples.
// Bands [0, kx) receive the filter bank output and every other entry of re
// and im is set to zero. In low-power mode im is all zero.
//
// Ported from: sbr_qmf_analysis_32() in ~/dev/faad2/libfaad/sbr_qmf.c
func (a *Analysis) Slot(re, im *[MaxBands]num.Real, in []num.Real, kx int) {
	if len(in) != AnalysisBands {
		panic("analysis slot needs 32 input samples")
	}
	if kx < 0 || kx > AnalysisBands {
		panic("kx out of range")
	}

	// Shift in the new samples, newest at index 0.
	copy(a.x[AnalysisBands:], a.x[:AnalysisWindowSize-AnalysisBands])
	for j, s := range in {
		a.x[AnalysisBands-1-j] = s
	}

	// Polyphase windowing: five taps 64 samples apart.
	var u [64]num.Real
	for n := range u {
		var acc num.Real
		for j := 0; j < 5; j++ {
			i := n + 64*j
			acc += num.MulF(a.x[i], window32[i])
		}
		u[n] = acc
	}

	clear(re[:])
	clear(im[:])

	if a.mode == LowPower {
		analyzeReal(re, &u, kx)
	} else {
		analyzeComplex(re, im, &u, kx)
	}
}

// analyzeReal folds u around sample 48 and applies a 32-point DCT-III.
//
// Ported from: sbr_qmf_analysis_32() (SBR_LOW_POWER) in ~/dev/faad2/libfaad/sbr_qmf.c
func analyzeReal(re *[MaxBands]num.Real, u *[64]num.Real, kx int) {
	var y [32]num.Real
	y[0] = u[48]
	for n := 1; n < 16; n++ {
		y[n] = u[n+48] + u[48-n]
	}
	for n := 16; n < 32; n++ {
		y[n] = -u[n-16] + u[48-n]
	}

	dct.DCT3(y[:], y[:])

	for k := 0; k < kx; k++ {
		re[k] = y[k] + y[k]
	}
}

// analyzeComplex interleaves u with a reversed, negated copy of its upper
// half and applies a 64-point DCT-IV. The low half of the result gives the
// real parts and the mirrored high half the imaginary parts.
//
// Ported from: sbr_qmf_analysis_32() in ~/dev/faad2/libfaad/sbr_qmf.c
func analyzeComplex(re, im *[MaxBands]num.Real, u *[64]num.Real, kx int) {
	var x [64]num.Real
	x[0] = u[0]
	for n := 0; n < 31; n++ {
		x[2*n+1] = u[n+1]
		x[2*n+2] = -u[63-n]
	}
	x[63] = u[32]

	dct.DCT4(x[:], x[:])

	for k := 0; k < kx; k++ {
		re[k] = x[k] + x[k]
		im[k] = -(x[63-k] + x[63-k])
	}
}
