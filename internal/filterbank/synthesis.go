package filterbank

import (
	"math"

	"github.com/llehouerou/go-sbrqmf/internal/dct"
	"github.com/llehouerou/go-sbrqmf/internal/fft"
	"github.com/llehouerou/go-sbrqmf/internal/num"
)

// Synthesis is the QMF synthesis state of one channel.
//
// High-quality mode keeps two 10·M sample histories that are written in
// alternation (the ping-pong index); low-power mode keeps a single 20·M
// sample history.
//
// Ported from: qmfs_info in ~/dev/faad2/libfaad/sbr_dec.h
type Synthesis struct {
	mode  Mode
	bands int
	win   []num.Frac

	// High-quality history and the index of the buffer convolved next.
	v   [2][WindowSize]num.Real
	idx int

	// Low-power history and the window-aligned gather of it.
	vr [2 * WindowSize]num.Real
	g  [WindowSize]num.Real
}

var (
	// Subband to PCM scale factors.
	complexScale = num.FracConst(1.0 / 64)
	realScale    = num.FracConst(math.Sqrt2 / 2 / 32)

	// Quarter-band rotation applied before the 32-band complex transform,
	// exp(-iπ(2k+1)/256) with complexScale folded in.
	rotCos32, rotSin32 = newRotation32()
)

func newRotation32() (c, s [32]num.Frac) {
	for k := range c {
		angle := math.Pi * float64(2*k+1) / 256
		c[k] = num.FracConst(math.Cos(angle) / 64)
		s[k] = num.FracConst(math.Sin(angle) / 64)
	}
	return c, s
}

// NewSynthesis returns a zeroed synthesis state producing bands samples per
// slot. bands must be 32 or 64.
//
// Ported from: qmfs_init() in ~/dev/faad2/libfaad/sbr_qmf.c
func NewSynthesis(mode Mode, bands int) *Synthesis {
	return &Synthesis{
		mode:  mode,
		bands: bands,
		win:   Window(bands),
	}
}

// Mode returns the bank mode.
func (s *Synthesis) Mode() Mode {
	return s.mode
}

// Bands returns the number of subbands consumed and samples produced per slot.
func (s *Synthesis) Bands() int {
	return s.bands
}

// Reset clears the history.
func (s *Synthesis) Reset() {
	clear(s.v[0][:])
	clear(s.v[1][:])
	clear(s.vr[:])
	s.idx = 0
}

// Slot consumes one slot of subband samples and writes Bands() PCM samples
// to out. Only the first Bands() entries of re and im are read; im is
// ignored in low-power mode.
func (s *Synthesis) Slot(out []num.Real, re, im *[MaxBands]num.Real) {
	if len(out) != s.bands {
		panic("synthesis slot output length does not match band count")
	}

	if s.mode == LowPower {
		s.slotReal(out, re)
	} else {
		s.slotComplex(out, re, im)
	}
}

// slotComplex runs the complex-exponential modulated bank.
//
// Ported from: sbr_qmf_synthesis_32() and sbr_qmf_synthesis_64() in ~/dev/faad2/libfaad/sbr_qmf.c
func (s *Synthesis) slotComplex(out []num.Real, re, im *[MaxBands]num.Real) {
	m := s.bands

	var x1, x2 [MaxBands]num.Real
	if m == 32 {
		for k := 0; k < m; k++ {
			x1[k], x2[k] = fft.ComplexMult(re[k], im[k], rotCos32[k], rotSin32[k])
		}
		// x2 holds the rotated imaginary parts in band order; reverse them.
		for k := 0; k < m/2; k++ {
			x2[k], x2[m-1-k] = x2[m-1-k], x2[k]
		}
	} else {
		for k := 0; k < m; k++ {
			x1[k] = num.MulF(re[k], complexScale)
			x2[k] = num.MulF(im[m-1-k], complexScale)
		}
	}

	dct.DCT4(x1[:m], x1[:m])
	dct.DCT4(x2[:m], x2[:m])

	cur, next := &s.v[s.idx], &s.v[1-s.idx]
	n := polyphaseTaps * m
	copy(cur[m:n], cur[:n-m])
	copy(next[m:n], next[:n-m])

	for q := 0; q < m; q++ {
		d := x2[q]
		if q&1 == 1 {
			d = -d
		}
		cur[q] = d - x1[q]
		next[m-1-q] = d + x1[q]
	}

	convolveImpl(out, cur[:n], s.win)
	s.idx = 1 - s.idx
}

// sign patterns applied to the low-power cosine and sine transform inputs,
// indexed by band mod 4.
var (
	cosSign = [4]bool{false, true, true, false}
	sinSign = [4]bool{false, false, true, true}
)

// slotReal runs the real cosine modulated bank.
//
// Ported from: sbr_qmf_synthesis_64() (SBR_LOW_POWER) in ~/dev/faad2/libfaad/sbr_qmf.c
func (s *Synthesis) slotReal(out []num.Real, re *[MaxBands]num.Real) {
	m := s.bands

	var a, b [MaxBands]num.Real
	for k := 0; k < m; k++ {
		x := num.MulF(re[k], realScale)
		a[k], b[k] = x, x
		if cosSign[k&3] {
			a[k] = -x
		}
		if sinSign[k&3] {
			b[k] = -x
		}
	}

	dct.DCT2(a[:m], a[:m])
	dct.DST2(b[:m], b[:m])

	// Shift the history by 2M and write the new 2M samples at the front.
	n := 2 * polyphaseTaps * m
	copy(s.vr[2*m:n], s.vr[:n-2*m])
	v := s.vr[:2*m]
	v[0] = a[0]
	for i := 1; i < m; i++ {
		v[i] = a[i] + b[i-1]
	}
	v[m] = b[m-1]
	for i := m + 1; i < 2*m; i++ {
		v[i] = b[2*m-i-1] - a[2*m-i]
	}

	// Gather the halves of each 4M block that line up with the window.
	for i := 0; i < polyphaseTaps/2; i++ {
		copy(s.g[2*m*i:2*m*i+m], s.vr[4*m*i:4*m*i+m])
		copy(s.g[2*m*i+m:2*m*(i+1)], s.vr[4*m*i+3*m:4*m*(i+1)])
	}

	convolveImpl(out, s.g[:polyphaseTaps*m], s.win)
}
