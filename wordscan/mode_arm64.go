//go:build arm64

package wordscan

import "golang.org/x/sys/cpu"

func detect() Mode {
	if cpu.ARM64.HasASIMD {
		return Wide2
	}
	return Scalar
}
