package sbrqmf

import (
	"slices"

	"github.com/llehouerou/go-sbrqmf/internal/filterbank"
)

// AnalysisBank splits interleaved PCM into 32 subbands per 32-sample slot,
// one independent filter state per channel.
//
// An AnalysisBank is not safe for concurrent use.
type AnalysisBank struct {
	cfg      Config
	channels int
	states   []*filterbank.Analysis
}

// NewAnalysisBank allocates zeroed analysis state for the given number of
// channels. cfg.Bands is ignored.
func NewAnalysisBank(channels int, cfg Config) (*AnalysisBank, error) {
	if err := validateChannels(channels); err != nil {
		return nil, err
	}
	if err := cfg.validateCommon(); err != nil {
		return nil, err
	}

	b := &AnalysisBank{
		cfg:      cfg,
		channels: channels,
		states:   make([]*filterbank.Analysis, channels),
	}
	for ch := range b.states {
		b.states[ch] = filterbank.NewAnalysis(cfg.Mode)
	}
	return b, nil
}

// Channels returns the channel count.
func (b *AnalysisBank) Channels() int {
	return b.channels
}

// Config returns the bank configuration.
func (b *AnalysisBank) Config() Config {
	return b.cfg
}

// Reset clears the history of every channel.
func (b *AnalysisBank) Reset() {
	for _, st := range b.states {
		st.Reset()
	}
}

// Process analyzes input, interleaved PCM holding a whole number of slots
// of SlotSamples samples per channel, and appends one SubbandFrame per slot
// and channel to dst, ordered slot-major: frame slot*Channels()+ch.
// Bands at or above kx are zero. It returns the extended slice.
//
// Process panics if len(input) is not a multiple of SlotSamples*Channels()
// or kx is outside [0, AnalysisBands].
func (b *AnalysisBank) Process(dst []SubbandFrame, input []Sample, kx int) []SubbandFrame {
	slotLen := SlotSamples * b.channels
	if len(input)%slotLen != 0 {
		panic("sbrqmf: analysis input is not a whole number of slots")
	}
	if kx < 0 || kx > AnalysisBands {
		panic("sbrqmf: kx out of range")
	}

	n := len(dst)
	count := len(input) / slotLen * b.channels
	dst = slices.Grow(dst, count)[:n+count]
	frames := dst[n:]

	if !parallel(b.cfg, b.channels) {
		for ch := 0; ch < b.channels; ch++ {
			b.channel(ch, frames, input, kx)
		}
		return dst
	}

	forEachChannel(b.channels, b.cfg.Parallelism, func(ch int) {
		b.channel(ch, frames, input, kx)
	})
	return dst
}

// channel runs every slot of one channel.
func (b *AnalysisBank) channel(ch int, frames []SubbandFrame, input []Sample, kx int) {
	st := b.states[ch]
	stride := b.channels

	var in [SlotSamples]Sample
	for slot := 0; slot*stride < len(frames); slot++ {
		base := slot * SlotSamples * stride
		for j := range in {
			in[j] = input[base+j*stride+ch]
		}
		f := &frames[slot*stride+ch]
		st.Slot(&f.Re, &f.Im, in[:], kx)
	}
}
