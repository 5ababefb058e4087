package veb

import (
	"math/bits"

	"github.com/aglyzov/go-veb/wordscan"
	"github.com/hideo55/go-popcount"
)

const leaf8Max = 255

// Leaf8 is a 256-value bitmap over four words.
type Leaf8 struct {
	words [4]uint64 // 256 bits representing 2**8 entries
}

// locate8 returns the word index and the bit of key.
func locate8(key uint64) (int, uint64) {
	return int(key>>6) & 3, uint64(1) << (key & 63)
}

func (l *Leaf8) Bits() uint { return 8 }

func (l *Leaf8) Insert(key uint64) bool {
	i, bit := locate8(key)
	if l.words[i]&bit != 0 {
		return false
	}
	l.words[i] |= bit
	return true
}

func (l *Leaf8) Erase(key uint64) bool {
	i, bit := locate8(key)
	if l.words[i]&bit == 0 {
		return false
	}
	l.words[i] &^= bit
	return true
}

func (l *Leaf8) Contains(key uint64) bool {
	if key > leaf8Max {
		return false
	}
	i, bit := locate8(key)
	return l.words[i]&bit != 0
}

func (l *Leaf8) Empty() bool {
	return l.words[0]|l.words[1]|l.words[2]|l.words[3] == 0
}

// Len returns the number of keys in the leaf.
func (l *Leaf8) Len() int {
	n := 0
	for _, w := range l.words {
		n += int(popcount.Count(w))
	}
	return n
}

func (l *Leaf8) Min() (uint64, bool) {
	i, ok := wordscan.NextNonZero(l.words[:], 0)
	if !ok {
		return 0, false
	}
	return uint64(i)<<6 | uint64(bits.TrailingZeros64(l.words[i])), true
}

func (l *Leaf8) Max() (uint64, bool) {
	i, ok := wordscan.PrevNonZero(l.words[:], len(l.words)-1)
	if !ok {
		return 0, false
	}
	return uint64(i)<<6 | uint64(63-bits.LeadingZeros64(l.words[i])), true
}

func (l *Leaf8) Successor(key uint64) (uint64, bool) {
	if key >= leaf8Max {
		return 0, false
	}
	s := key + 1
	i := int(s >> 6)
	if m := l.words[i] & (^uint64(0) << (s & 63)); m != 0 {
		return uint64(i)<<6 | uint64(bits.TrailingZeros64(m)), true
	}
	i, ok := wordscan.NextNonZero(l.words[:], i+1)
	if !ok {
		return 0, false
	}
	return uint64(i)<<6 | uint64(bits.TrailingZeros64(l.words[i])), true
}

// Predecessor treats any key above 255 as one past the end.
func (l *Leaf8) Predecessor(key uint64) (uint64, bool) {
	if key == 0 {
		return 0, false
	}
	if key > leaf8Max {
		return l.Max()
	}
	s := key - 1
	i := int(s >> 6)
	// bits up to and including s; s&63 == 63 wraps to all ones
	if m := l.words[i] & (uint64(1)<<((s&63)+1) - 1); m != 0 {
		return uint64(i)<<6 | uint64(63-bits.LeadingZeros64(m)), true
	}
	i, ok := wordscan.PrevNonZero(l.words[:], i-1)
	if !ok {
		return 0, false
	}
	return uint64(i)<<6 | uint64(63-bits.LeadingZeros64(l.words[i])), true
}

func (l *Leaf8) masks(keys []uint64) (masks [4]uint64) {
	for _, k := range keys {
		i, bit := locate8(k)
		masks[i] |= bit
	}
	return
}

// InsertBatch adds all keys touching every word once and returns the
// number of keys that were absent.
func (l *Leaf8) InsertBatch(keys ...uint64) int {
	n := 0
	for i, m := range l.masks(keys) {
		if m == 0 {
			continue
		}
		n += int(popcount.Count(m &^ l.words[i]))
		l.words[i] |= m
	}
	return n
}

// EraseBatch removes all keys and returns the number that were present.
func (l *Leaf8) EraseBatch(keys ...uint64) int {
	n := 0
	for i, m := range l.masks(keys) {
		if m == 0 {
			continue
		}
		n += int(popcount.Count(m & l.words[i]))
		l.words[i] &^= m
	}
	return n
}

func (l *Leaf8) walk(prefix uint64, yield func(uint64) bool) bool {
	for i, w := range l.words {
		base := prefix | uint64(i)<<6
		for ; w != 0; w &= w - 1 {
			if !yield(base | uint64(bits.TrailingZeros64(w))) {
				return false
			}
		}
	}
	return true
}
