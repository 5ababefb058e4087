package veb

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const leaf6Max = 63

// Leaf6 is a 64-value bitmap in a single word.
type Leaf6 struct {
	word uint64
}

func (l *Leaf6) Bits() uint { return 6 }

func (l *Leaf6) Insert(key uint64) bool {
	bit := uint64(1) << (key & leaf6Max)
	if l.word&bit != 0 {
		return false
	}
	l.word |= bit
	return true
}

func (l *Leaf6) Erase(key uint64) bool {
	bit := uint64(1) << (key & leaf6Max)
	if l.word&bit == 0 {
		return false
	}
	l.word &^= bit
	return true
}

func (l *Leaf6) Contains(key uint64) bool {
	return key <= leaf6Max && l.word&(1<<key) != 0
}

func (l *Leaf6) Empty() bool {
	return l.word == 0
}

// Len returns the number of keys in the leaf.
func (l *Leaf6) Len() int {
	return int(popcount.Count(l.word))
}

func (l *Leaf6) Min() (uint64, bool) {
	if l.word == 0 {
		return 0, false
	}
	return uint64(bits.TrailingZeros64(l.word)), true
}

func (l *Leaf6) Max() (uint64, bool) {
	if l.word == 0 {
		return 0, false
	}
	return uint64(63 - bits.LeadingZeros64(l.word)), true
}

func (l *Leaf6) Successor(key uint64) (uint64, bool) {
	if key >= leaf6Max {
		return 0, false
	}
	m := l.word & (^uint64(0) << (key + 1))
	if m == 0 {
		return 0, false
	}
	return uint64(bits.TrailingZeros64(m)), true
}

// Predecessor treats any key above 63 as one past the end.
func (l *Leaf6) Predecessor(key uint64) (uint64, bool) {
	if key == 0 {
		return 0, false
	}
	m := l.word
	if key <= leaf6Max {
		m &= uint64(1)<<key - 1
	}
	if m == 0 {
		return 0, false
	}
	return uint64(63 - bits.LeadingZeros64(m)), true
}

// InsertBatch adds all keys with a single update of the word and returns
// the number of keys that were absent.
func (l *Leaf6) InsertBatch(keys ...uint64) int {
	var m uint64
	for _, k := range keys {
		m |= 1 << (k & leaf6Max)
	}
	added := m &^ l.word
	l.word |= m
	return int(popcount.Count(added))
}

// EraseBatch removes all keys and returns the number that were present.
func (l *Leaf6) EraseBatch(keys ...uint64) int {
	var m uint64
	for _, k := range keys {
		m |= 1 << (k & leaf6Max)
	}
	removed := m & l.word
	l.word &^= m
	return int(popcount.Count(removed))
}

func (l *Leaf6) walk(prefix uint64, yield func(uint64) bool) bool {
	for w := l.word; w != 0; w &= w - 1 {
		if !yield(prefix | uint64(bits.TrailingZeros64(w))) {
			return false
		}
	}
	return true
}
