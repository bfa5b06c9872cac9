// Package filterbank implements the SBR QMF analysis and synthesis filter
// banks: 32-band analysis of core-band PCM into subband slots, and 32- or
// 64-band synthesis of subband slots back into PCM by transform plus
// polyphase overlap-add.
//
// Each Analysis and Synthesis value is the state of one channel and must not
// be shared between goroutines. The window and transform tables are built
// during package initialization and only read afterwards.
package filterbank

// Mode selects the real-valued or complex-valued filter bank.
type Mode uint8

const (
	// HighQuality runs complex-exponential modulated banks.
	HighQuality Mode = iota
	// LowPower runs real cosine modulated banks. Analysis leaves the
	// imaginary parts at zero and synthesis ignores them.
	LowPower
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case HighQuality:
		return "high-quality"
	case LowPower:
		return "low-power"
	default:
		return "unknown"
	}
}

// Bands per slot.
const (
	AnalysisBands = 32
	MaxBands      = 64
)
