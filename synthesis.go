package sbrqmf

import (
	"slices"

	"github.com/llehouerou/go-sbrqmf/internal/filterbank"
)

// SynthesisBank merges subband slots back into interleaved PCM, producing
// Config.Bands samples per slot and channel.
//
// A SynthesisBank is not safe for concurrent use.
type SynthesisBank struct {
	cfg      Config
	channels int
	states   []*filterbank.Synthesis
	out      [][]Sample // per-channel slot output
}

// NewSynthesisBank allocates zeroed synthesis state for the given number of
// channels.
func NewSynthesisBank(channels int, cfg Config) (*SynthesisBank, error) {
	if err := validateChannels(channels); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &SynthesisBank{
		cfg:      cfg,
		channels: channels,
		states:   make([]*filterbank.Synthesis, channels),
		out:      make([][]Sample, channels),
	}
	for ch := range b.states {
		b.states[ch] = filterbank.NewSynthesis(cfg.Mode, cfg.Bands)
		b.out[ch] = make([]Sample, cfg.Bands)
	}
	return b, nil
}

// Channels returns the channel count.
func (b *SynthesisBank) Channels() int {
	return b.channels
}

// Config returns the bank configuration.
func (b *SynthesisBank) Config() Config {
	return b.cfg
}

// Reset clears the history of every channel.
func (b *SynthesisBank) Reset() {
	for _, st := range b.states {
		st.Reset()
	}
}

// Process synthesizes frames, ordered slot-major as AnalysisBank.Process
// produces them, and appends Config().Bands interleaved samples per slot
// and channel to dst. It returns the extended slice.
//
// Process panics if len(frames) is not a multiple of Channels().
func (b *SynthesisBank) Process(dst []Sample, frames []SubbandFrame) []Sample {
	if len(frames)%b.channels != 0 {
		panic("sbrqmf: synthesis frames are not a whole number of slots")
	}

	n := len(dst)
	count := len(frames) * b.cfg.Bands
	dst = slices.Grow(dst, count)[:n+count]
	pcm := dst[n:]

	if !parallel(b.cfg, b.channels) {
		for ch := 0; ch < b.channels; ch++ {
			b.channel(ch, pcm, frames)
		}
		return dst
	}

	forEachChannel(b.channels, b.cfg.Parallelism, func(ch int) {
		b.channel(ch, pcm, frames)
	})
	return dst
}

// channel runs every slot of one channel.
func (b *SynthesisBank) channel(ch int, pcm []Sample, frames []SubbandFrame) {
	st := b.states[ch]
	out := b.out[ch]
	stride := b.channels
	bands := b.cfg.Bands

	for slot := 0; slot*stride < len(frames); slot++ {
		f := &frames[slot*stride+ch]
		st.Slot(out, &f.Re, &f.Im)

		base := slot * bands * stride
		for k, v := range out {
			pcm[base+k*stride+ch] = v
		}
	}
}
