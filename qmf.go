package sbrqmf

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/go-sbrqmf/internal/filterbank"
	"github.com/llehouerou/go-sbrqmf/internal/num"
)

// Sample is the scalar used for PCM and subband values: float32 by default,
// int32 with RealBits fractional bits when built with the sbr_fixed tag.
type Sample = num.Real

// SampleFromFloat converts a float64 to a Sample.
func SampleFromFloat(f float64) Sample {
	return num.FromFloat(f)
}

// SampleToFloat converts a Sample to float64.
func SampleToFloat(s Sample) float64 {
	return num.ToFloat(s)
}

// Mode selects the filter bank variant.
type Mode = filterbank.Mode

// Filter bank variants.
const (
	// HighQuality uses complex subbands.
	HighQuality = filterbank.HighQuality
	// LowPower uses real subbands; imaginary parts are zero on analysis
	// output and ignored on synthesis input.
	LowPower = filterbank.LowPower
)

// Dimensions.
const (
	// SlotSamples is the number of input samples per channel consumed by one
	// analysis slot.
	SlotSamples = filterbank.AnalysisBands

	// AnalysisBands is the number of subbands produced per analysis slot.
	AnalysisBands = filterbank.AnalysisBands

	// MaxBands is the capacity of a SubbandFrame.
	MaxBands = filterbank.MaxBands

	// MaxChannels is the largest supported channel count.
	MaxChannels = 64

	// Delay is the latency in samples of a 32-band analysis bank followed by
	// a 32-band synthesis bank of the same mode.
	Delay = 289
)

// supportedBands lists the valid synthesis band counts.
var supportedBands = []int{32, 64}

// SubbandFrame holds one time slot of subband samples for one channel,
// lowest band first. Analysis fills bands [0, 32) and zeroes the rest;
// synthesis reads bands [0, Config.Bands).
type SubbandFrame struct {
	Re [MaxBands]Sample
	Im [MaxBands]Sample
}

// Config contains filter bank configuration options.
type Config struct {
	Mode        Mode // Filter bank variant
	Bands       int  // Synthesis bands per slot, 32 or 64; unused by analysis
	Parallelism int  // Channels processed concurrently; 0 or 1 means serial
}

// DefaultConfig returns the configuration of a standard SBR decoder:
// high-quality mode, 64 synthesis bands, serial processing.
func DefaultConfig() Config {
	return Config{
		Mode:        HighQuality,
		Bands:       64,
		Parallelism: 1,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.validateCommon(); err != nil {
		return err
	}
	if !lo.Contains(supportedBands, c.Bands) {
		return ErrInvalidBandCount
	}
	return nil
}

// validateCommon checks the fields shared by both banks.
func (c Config) validateCommon() error {
	if c.Mode != HighQuality && c.Mode != LowPower {
		return ErrInvalidMode
	}
	if c.Parallelism < 0 {
		return ErrInvalidParallelism
	}
	return nil
}

func validateChannels(channels int) error {
	if channels < 1 || channels > MaxChannels {
		return ErrInvalidNumChannels
	}
	return nil
}

// parallel reports whether per-channel work should be spread over
// goroutines.
func parallel(cfg Config, channels int) bool {
	return cfg.Parallelism > 1 && channels > 1
}

// forEachChannel runs fn for every channel on up to limit goroutines.
// Each call must only touch its own channel's state and output positions.
// A panic in fn is recovered on its goroutine and raised again on the
// caller's once every channel has finished.
func forEachChannel(channels, limit int, fn func(ch int)) {
	var g errgroup.Group
	g.SetLimit(limit)
	for ch := 0; ch < channels; ch++ {
		ch := ch // per-iteration copy; go 1.21 loop-variable semantics
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = channelPanic{ch: ch, value: r}
				}
			}()
			fn(ch)
			return nil
		})
	}

	var p channelPanic
	if err := g.Wait(); errors.As(err, &p) {
		panic(p.value)
	}
}

// channelPanic carries a recovered panic out of a channel goroutine.
type channelPanic struct {
	ch    int
	value any
}

func (p channelPanic) Error() string {
	return fmt.Sprintf("sbrqmf: channel %d panicked: %v", p.ch, p.value)
}
