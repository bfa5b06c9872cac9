package filterbank

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/llehouerou/go-sbrqmf/internal/num"
)

// groupDelay is the analysis plus 32-band synthesis delay in input samples.
const groupDelay = 289

// upsampledDelay is the analysis plus 64-band synthesis delay in output
// samples.
const upsampledDelay = 2 * groupDelay

func runBanks(mode Mode, bands int, input []float64) []float64 {
	a := NewAnalysis(mode)
	s := NewSynthesis(mode, bands)

	var re, im [MaxBands]num.Real
	in := make([]num.Real, AnalysisBands)
	out := make([]num.Real, bands)
	var pcm []float64

	for pos := 0; pos+AnalysisBands <= len(input); pos += AnalysisBands {
		for j := range in {
			in[j] = num.FromFloat(input[pos+j])
		}
		a.Slot(&re, &im, in, AnalysisBands)
		s.Slot(out, &re, &im)
		for _, v := range out {
			pcm = append(pcm, num.ToFloat(v))
		}
	}
	return pcm
}

func TestRoundTrip_ReconstructsDelayedInput(t *testing.T) {
	tol := 5e-3 + 64*num.Epsilon

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			input := make([]float64, 80*AnalysisBands)
			for i := range input {
				input[i] = rng.Float64()*2 - 1
			}

			output := runBanks(mode, 32, input)
			if len(output) != len(input) {
				t.Fatalf("output length = %d, want %d", len(output), len(input))
			}

			var errEnergy, sigEnergy float64
			for i := 400; i < len(output); i++ {
				want := input[i-groupDelay]
				d := output[i] - want
				if math.Abs(d) > tol {
					t.Fatalf("sample %d = %v, want %v", i, output[i], want)
				}
				errEnergy += d * d
				sigEnergy += want * want
			}
			if rel := math.Sqrt(errEnergy / sigEnergy); rel > 2e-3+64*num.Epsilon {
				t.Errorf("relative reconstruction error = %.2e", rel)
			}
		})
	}
}

func TestRoundTrip_UpsamplingKeepsUnityGain(t *testing.T) {
	// A 32-band analysis into a 64-band synthesis doubles the sample rate.
	const freq = 0.013 // cycles per input sample

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			input := make([]float64, 40*AnalysisBands)
			for i := range input {
				input[i] = math.Sin(2 * math.Pi * freq * float64(i))
			}

			output := runBanks(mode, 64, input)
			if len(output) != 2*len(input) {
				t.Fatalf("output length = %d, want %d", len(output), 2*len(input))
			}

			amp := fitAmplitude(output[1200:], 1200, math.Pi*freq)
			if math.Abs(amp-1) > 0.01 {
				t.Errorf("amplitude = %v, want 1", amp)
			}

			// Output sample t sits at input time (t - upsampledDelay)/2.
			tol := 5e-3 + 64*num.Epsilon
			for i := 1200; i < len(output); i++ {
				want := math.Sin(math.Pi * freq * float64(i-upsampledDelay))
				if math.Abs(output[i]-want) > tol {
					t.Fatalf("sample %d = %v, want %v", i, output[i], want)
				}
			}
		})
	}
}

func TestRoundTrip_UpsampledImpulse(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			input := make([]float64, 30*AnalysisBands)
			input[0] = 1

			output := runBanks(mode, 64, input)

			peak := 0
			for i, v := range output {
				if math.Abs(v) > math.Abs(output[peak]) {
					peak = i
				}
			}
			if peak != upsampledDelay {
				t.Fatalf("peak at %d, want %d", peak, upsampledDelay)
			}
			if math.Abs(output[peak]-1) > 1e-2 {
				t.Errorf("peak = %v, want 1", output[peak])
			}
			// Interpolated neighbours of an ideal 2x upsampler are 2/π.
			for _, i := range []int{peak - 1, peak + 1} {
				if math.Abs(output[i]-2/math.Pi) > 2e-2 {
					t.Errorf("sample %d = %v, want %v", i, output[i], 2/math.Pi)
				}
			}
		})
	}
}

func TestRoundTrip_SilenceStaysSilent(t *testing.T) {
	for _, mode := range modes {
		for _, bands := range []int{32, 64} {
			t.Run(fmt.Sprintf("%s/bands=%d", mode, bands), func(t *testing.T) {
				output := runBanks(mode, bands, make([]float64, 20*AnalysisBands))
				for i, v := range output {
					if v != 0 {
						t.Fatalf("sample %d = %v, want 0", i, v)
					}
				}
			})
		}
	}
}

// fitAmplitude least-squares fits a·sin(ωt) + b·cos(ωt) to y, whose first
// sample is at t0, and returns the amplitude.
func fitAmplitude(y []float64, t0 int, omega float64) float64 {
	var ss, cc, sc, sy, cy float64
	for i, v := range y {
		s, c := math.Sincos(omega * float64(t0+i))
		ss += s * s
		cc += c * c
		sc += s * c
		sy += s * v
		cy += c * v
	}
	det := ss*cc - sc*sc
	a := (sy*cc - cy*sc) / det
	b := (cy*ss - sy*sc) / det
	return math.Hypot(a, b)
}
