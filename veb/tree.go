package veb

import (
	"fmt"
	"iter"
	"math"
)

// Tree is an ordered set of keys in [0, MaxKey()] backed by a root node of
// type R. The width of the tree is the width of its root.
type Tree[R any, PR nodePtr[R]] struct {
	root R
	size int
}

func (t *Tree[R, PR]) node() PR {
	return PR(&t.root)
}

// Bits returns the key width of the tree.
func (t *Tree[R, PR]) Bits() uint {
	var r PR
	return r.Bits()
}

// MaxKey returns the largest storable key, 2^Bits()-1.
func (t *Tree[R, PR]) MaxKey() uint64 {
	return maxKeyFor(t.Bits())
}

// PredecessorQueryMax returns the largest valid Predecessor argument:
// MaxKey()+1 for widths below 64 and MaxKey() otherwise.
func (t *Tree[R, PR]) PredecessorQueryMax() uint64 {
	if b := t.Bits(); b < 64 {
		return uint64(1) << b
	}
	return math.MaxUint64
}

func (t *Tree[R, PR]) checkKey(op string, key, limit uint64) {
	if debugChecks && key > limit {
		panic(fmt.Errorf("%w: %s(%d) on a %d-bit tree", ErrKeyOutOfRange, op, key, t.Bits()))
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[R, PR]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Tree[R, PR]) Empty() bool {
	return t == nil || t.size == 0
}

// Insert adds key and reports whether it was absent.
func (t *Tree[R, PR]) Insert(key uint64) bool {
	t.checkKey("Insert", key, t.MaxKey())
	if !t.node().Insert(key) {
		return false
	}
	t.size++
	return true
}

// Erase removes key and reports whether it was present.
func (t *Tree[R, PR]) Erase(key uint64) bool {
	t.checkKey("Erase", key, t.MaxKey())
	if t.size == 0 || !t.node().Erase(key) {
		return false
	}
	t.size--
	return true
}

func (t *Tree[R, PR]) Contains(key uint64) bool {
	if t == nil {
		return false
	}
	t.checkKey("Contains", key, t.MaxKey())
	return t.node().Contains(key)
}

func (t *Tree[R, PR]) Min() (uint64, bool) {
	if t.Empty() {
		return 0, false
	}
	return t.node().Min()
}

func (t *Tree[R, PR]) Max() (uint64, bool) {
	if t.Empty() {
		return 0, false
	}
	return t.node().Max()
}

// Successor returns the smallest key strictly greater than key.
func (t *Tree[R, PR]) Successor(key uint64) (uint64, bool) {
	if t.Empty() {
		return 0, false
	}
	t.checkKey("Successor", key, t.MaxKey())
	return t.node().Successor(key)
}

// Predecessor returns the largest key strictly less than key. Passing
// PredecessorQueryMax() asks for the largest key of a tree below 64 bits.
func (t *Tree[R, PR]) Predecessor(key uint64) (uint64, bool) {
	if t.Empty() {
		return 0, false
	}
	t.checkKey("Predecessor", key, t.PredecessorQueryMax())
	return t.node().Predecessor(key)
}

// ForEach calls fn for every key in ascending order.
func (t *Tree[R, PR]) ForEach(fn func(key uint64)) {
	t.Iter(func(key uint64) bool {
		fn(key)
		return true
	})
}

// Iter calls a handler for all keys in ascending order.
// It returns whether all keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Tree[R, PR]) Iter(handler func(key uint64) bool) bool {
	if t.Empty() {
		return true
	}
	return t.node().walk(0, handler)
}

// All returns an ascending iterator over the keys. Each range over it starts
// from the smallest key.
func (t *Tree[R, PR]) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		t.Iter(yield)
	}
}

// Keys returns all keys in a sorted order.
func (t *Tree[R, PR]) Keys() []uint64 {
	keys := make([]uint64, 0, t.Len())
	t.ForEach(func(key uint64) {
		keys = append(keys, key)
	})
	return keys
}

// Reserve hints that about n keys are going to be inserted. Dense roots
// allocate their cluster arrays, sparse roots pre-size the cluster map while
// empty and the 40-bit root pre-fills its child pool.
func (t *Tree[R, PR]) Reserve(n int) {
	if r, ok := any(t.node()).(reserver); ok {
		r.reserve(n)
	}
}
