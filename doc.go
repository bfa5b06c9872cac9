// Package sbrqmf provides the QMF filter banks used by Spectral Band
// Replication (SBR) in HE-AAC decoders, in pure Go.
//
// An AnalysisBank splits core-band PCM into 32 subbands per 32-sample time
// slot. A SynthesisBank merges 32 or 64 subbands per slot back into PCM,
// which at 64 bands doubles the sample rate. Both banks keep per-channel
// history between calls, so a stream may be fed in pieces of any whole
// number of slots.
//
// # Basic Usage
//
//	cfg := sbrqmf.DefaultConfig()
//	ana, err := sbrqmf.NewAnalysisBank(2, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	syn, err := sbrqmf.NewSynthesisBank(2, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var frames []sbrqmf.SubbandFrame
//	var pcm []sbrqmf.Sample
//	for {
//	    frames = ana.Process(frames[:0], core, kx)
//	    // Generate high bands in frames...
//	    pcm = syn.Process(pcm[:0], frames)
//	}
//
// # Modes
//
// HighQuality banks use complex exponential modulation and carry real and
// imaginary parts per band. LowPower banks use real cosine modulation; their
// analysis output has zero imaginary parts and their synthesis ignores them.
// The mode is chosen per bank at runtime through Config.
//
// # Numeric Representation
//
// Sample is float32 by default. Building with the sbr_fixed tag switches
// every bank and transform to int32 fixed point with 14 fractional bits for
// signal values. Fixed-point overflow wraps silently, so inputs should stay
// well inside ±1<<16.
//
// # Errors
//
// Constructors return an Error for invalid parameters. After construction
// every call is a deterministic transform; malformed buffer lengths and kx
// values outside [0, 32] are programming errors and panic.
//
// # Thread Safety
//
// Banks are NOT safe for concurrent use. Each stream should own its banks.
// With Config.Parallelism > 1 a bank processes its channels on separate
// goroutines internally; the shared window and twiddle tables are read-only.
//
// Ported from FAAD2: https://github.com/knik0/faad2
package sbrqmf
