//go:build amd64

package wordscan

import "golang.org/x/sys/cpu"

func detect() Mode {
	switch {
	case cpu.X86.HasAVX2:
		return Wide4
	case cpu.X86.HasSSE2:
		return Wide2
	default:
		return Scalar
	}
}
