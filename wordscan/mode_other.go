//go:build !amd64 && !arm64

package wordscan

func detect() Mode {
	return Scalar
}
