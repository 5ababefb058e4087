package wordscan

// NextNonZero returns the index of the first non-zero word at or after start.
func NextNonZero(words []uint64, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if start >= len(words) {
		return 0, false
	}
	return impl.next(words, start)
}

// PrevNonZero returns the index of the last non-zero word at or before start.
// A start past the end is clamped to the last word.
func PrevNonZero(words []uint64, start int) (int, bool) {
	if start < 0 || len(words) == 0 {
		return 0, false
	}
	if start >= len(words) {
		start = len(words) - 1
	}
	return impl.prev(words, start)
}

// kernels below expect 0 <= start < len(words)

func nextScalar(words []uint64, start int) (int, bool) {
	for i := start; i < len(words); i++ {
		if words[i] != 0 {
			return i, true
		}
	}
	return 0, false
}

func prevScalar(words []uint64, start int) (int, bool) {
	for i := start; i >= 0; i-- {
		if words[i] != 0 {
			return i, true
		}
	}
	return 0, false
}

func nextWide2(words []uint64, start int) (int, bool) {
	i := start
	for ; i+2 <= len(words); i += 2 {
		if words[i]|words[i+1] != 0 {
			if words[i] != 0 {
				return i, true
			}
			return i + 1, true
		}
	}
	if i < len(words) && words[i] != 0 {
		return i, true
	}
	return 0, false
}

func prevWide2(words []uint64, start int) (int, bool) {
	i := start
	for ; i >= 1; i -= 2 {
		if words[i]|words[i-1] != 0 {
			if words[i] != 0 {
				return i, true
			}
			return i - 1, true
		}
	}
	if i == 0 && words[0] != 0 {
		return 0, true
	}
	return 0, false
}

func nextWide4(words []uint64, start int) (int, bool) {
	i := start
	for ; i+4 <= len(words); i += 4 {
		w := words[i : i+4 : i+4]
		if w[0]|w[1]|w[2]|w[3] != 0 {
			for off, x := range w {
				if x != 0 {
					return i + off, true
				}
			}
		}
	}
	return nextScalar(words, i)
}

func prevWide4(words []uint64, start int) (int, bool) {
	i := start
	for ; i >= 3; i -= 4 {
		w := words[i-3 : i+1 : i+1]
		if w[0]|w[1]|w[2]|w[3] != 0 {
			for off := 3; off >= 0; off-- {
				if w[off] != 0 {
					return i - 3 + off, true
				}
			}
		}
	}
	if i < 0 {
		return 0, false
	}
	return prevScalar(words, i)
}
