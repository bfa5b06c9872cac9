//go:build arm64

package filterbank

import "golang.org/x/sys/cpu"

func detectConvolve() convolveFunc {
	if cpu.ARM64.HasASIMD {
		return convolveBlocked
	}
	return convolveScalar
}
