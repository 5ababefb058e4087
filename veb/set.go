package veb

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrKeyOutOfRange    = errors.New("veb: key out of range")
	ErrUnsupportedWidth = errors.New("veb: unsupported tree width")
)

// Set is the width-independent view of a tree.
type Set interface {
	Insert(key uint64) bool
	Erase(key uint64) bool
	Contains(key uint64) bool
	Empty() bool
	Len() int
	Min() (uint64, bool)
	Max() (uint64, bool)
	Successor(key uint64) (uint64, bool)
	Predecessor(key uint64) (uint64, bool)
	ForEach(fn func(key uint64))
	Iter(handler func(key uint64) bool) bool
	All() iter.Seq[uint64]
	Keys() []uint64
	Reserve(n int)
	Bits() uint
	MaxKey() uint64
	PredecessorQueryMax() uint64
}

var (
	_ Set = (*Tree24)(nil)
	_ Set = (*Tree32)(nil)
	_ Set = (*Tree40)(nil)
	_ Set = (*Tree48)(nil)
	_ Set = (*Tree64)(nil)
)

// Widths lists the supported key widths in increasing order.
var Widths = []uint{24, 32, 40, 48, 64}

// New returns an empty tree of the given key width.
func New(bits uint) (Set, error) {
	switch bits {
	case 24:
		return New24(), nil
	case 32:
		return New32(), nil
	case 40:
		return New40(), nil
	case 48:
		return New48(), nil
	case 64:
		return New64(), nil
	}
	return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, bits)
}
