package wordscan

import (
	"os"
	"strings"
)

// Mode names a scan kernel.
type Mode uint8

const (
	// Scalar tests one word per step.
	Scalar Mode = iota
	// Wide2 tests two words per step.
	Wide2
	// Wide4 tests four words per step.
	Wide4
)

// EnvVar overrides the detected kernel when set to a valid mode name.
const EnvVar = "VEB_WORDSCAN"

func (m Mode) String() string {
	switch m {
	case Scalar:
		return "scalar"
	case Wide2:
		return "wide2"
	case Wide4:
		return "wide4"
	default:
		return "unknown"
	}
}

// ParseMode parses a kernel name (case-insensitive).
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "wide2":
		return Wide2, true
	case "wide4":
		return Wide4, true
	default:
		return Scalar, false
	}
}

type kernel struct {
	next func(words []uint64, start int) (int, bool)
	prev func(words []uint64, start int) (int, bool)
}

var kernels = [...]kernel{
	Scalar: {nextScalar, prevScalar},
	Wide2:  {nextWide2, prevWide2},
	Wide4:  {nextWide4, prevWide4},
}

// Package-level state, written by init and Use only.
var (
	active Mode
	impl   kernel
)

func init() {
	mode := detect()

	if env, ok := os.LookupEnv(EnvVar); ok {
		if m, ok := ParseMode(env); ok {
			mode = m
		}
	}

	Use(mode)
}

// Use switches to the given kernel. It must not be called concurrently with
// scans. Unknown modes select Scalar.
func Use(m Mode) {
	if int(m) >= len(kernels) {
		m = Scalar
	}
	active = m
	impl = kernels[m]
}

// Active reports the kernel in use.
func Active() Mode {
	return active
}
