// Package filterbank window.go derives the per-bank windows from the QMF
// prototype.
package filterbank

import "github.com/llehouerou/go-sbrqmf/internal/num"

// Window sizes.
const (
	// WindowSize is the number of prototype taps used by 64-band synthesis.
	WindowSize = 640

	// AnalysisWindowSize is the history length of the 32-band analysis bank.
	AnalysisWindowSize = 320
)

// Windows derived from prototype, built once at package initialization.
var (
	window64 [WindowSize]num.Frac         // every tap, 64-band synthesis
	window32 [AnalysisWindowSize]num.Frac // every other tap, 32-band banks
)

func init() {
	for i, c := range prototype {
		window64[i] = num.FracConst(float64(c))
	}
	for i := range window32 {
		window32[i] = window64[2*i]
	}
}

// Window returns the synthesis window for the given band count.
// bands must be 32 or 64.
//
// Ported from: qmf_c indexing in sbr_qmf_synthesis_32() and
// sbr_qmf_synthesis_64() in ~/dev/faad2/libfaad/sbr_qmf.c
func Window(bands int) []num.Frac {
	switch bands {
	case 64:
		return window64[:]
	case 32:
		return window32[:]
	default:
		panic("invalid band count")
	}
}
