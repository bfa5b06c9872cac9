//go:build !amd64 && !arm64

package filterbank

func detectConvolve() convolveFunc {
	return convolveScalar
}
