//go:build amd64

package filterbank

import "golang.org/x/sys/cpu"

func detectConvolve() convolveFunc {
	if cpu.X86.HasAVX2 || cpu.X86.HasSSE41 {
		return convolveBlocked
	}
	return convolveScalar
}
