package filterbank

import "github.com/llehouerou/go-sbrqmf/internal/num"

// polyphaseTaps is the number of windowed history terms summed per output.
const polyphaseTaps = 10

// convolveFunc computes out[k] = Σ_{j<10} buf[m·j+k]·win[m·j+k] for k < m,
// where m = len(out).
//
// Ported from: the output windowing loop of sbr_qmf_synthesis_64() in
// ~/dev/faad2/libfaad/sbr_qmf.c
type convolveFunc func(out, buf []num.Real, win []num.Frac)

// convolveImpl is chosen at init by detectConvolve for the running CPU.
// Every strategy accumulates each output in j order, so all of them return
// bit-identical results.
var convolveImpl convolveFunc = detectConvolve()

func convolveScalar(out, buf []num.Real, win []num.Frac) {
	m := len(out)
	buf = buf[:polyphaseTaps*m]
	win = win[:polyphaseTaps*m]
	for k := range out {
		var acc num.Real
		for j := 0; j < polyphaseTaps; j++ {
			acc += num.MulF(buf[m*j+k], win[m*j+k])
		}
		out[k] = acc
	}
}

// convolveBlocked produces four outputs per pass so the inner loop runs
// over independent accumulators that the CPU can issue in parallel.
// m must be a multiple of 4.
func convolveBlocked(out, buf []num.Real, win []num.Frac) {
	m := len(out)
	buf = buf[:polyphaseTaps*m]
	win = win[:polyphaseTaps*m]
	for k := 0; k+4 <= m; k += 4 {
		var a0, a1, a2, a3 num.Real
		for j := 0; j < polyphaseTaps; j++ {
			b := buf[m*j+k : m*j+k+4 : m*j+k+4]
			w := win[m*j+k : m*j+k+4 : m*j+k+4]
			a0 += num.MulF(b[0], w[0])
			a1 += num.MulF(b[1], w[1])
			a2 += num.MulF(b[2], w[2])
			a3 += num.MulF(b[3], w[3])
		}
		out[k] = a0
		out[k+1] = a1
		out[k+2] = a2
		out[k+3] = a3
	}
}
