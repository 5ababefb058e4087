package main

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/google/btree"

	"github.com/aglyzov/go-veb/veb"
)

// orderedSet is what the comparison needs from a target structure.
type orderedSet interface {
	Insert(key uint64)
	Successor(key uint64) (uint64, bool)
	Predecessor(key uint64) (uint64, bool)
	Keys() []uint64
}

var targetNames = []string{"veb", "btree", "roaring"}

func newTarget(name string, bits uint) (orderedSet, error) {
	switch name {
	case "veb":
		s, err := veb.New(bits)
		if err != nil {
			return nil, err
		}
		return vebSet{s}, nil
	case "btree":
		return newBtreeSet(), nil
	case "roaring":
		return roaringSet{roaring64.New()}, nil
	}
	return nil, fmt.Errorf("unknown target: %q", name)
}

// -- vEB --

type vebSet struct {
	s veb.Set
}

func (v vebSet) Insert(key uint64)                     { v.s.Insert(key) }
func (v vebSet) Successor(key uint64) (uint64, bool)   { return v.s.Successor(key) }
func (v vebSet) Predecessor(key uint64) (uint64, bool) { return v.s.Predecessor(key) }
func (v vebSet) Keys() []uint64                        { return v.s.Keys() }

// -- B-tree --

type btreeSet struct {
	tr *btree.BTreeG[uint64]
}

func newBtreeSet() btreeSet {
	return btreeSet{btree.NewOrderedG[uint64](32)}
}

func (b btreeSet) Insert(key uint64) {
	b.tr.ReplaceOrInsert(key)
}

func (b btreeSet) Successor(key uint64) (next uint64, ok bool) {
	b.tr.AscendGreaterOrEqual(key, func(item uint64) bool {
		if item == key {
			return true
		}
		next, ok = item, true
		return false
	})
	return
}

func (b btreeSet) Predecessor(key uint64) (prev uint64, ok bool) {
	b.tr.DescendLessOrEqual(key, func(item uint64) bool {
		if item == key {
			return true
		}
		prev, ok = item, true
		return false
	})
	return
}

func (b btreeSet) Keys() []uint64 {
	keys := make([]uint64, 0, b.tr.Len())
	b.tr.Ascend(func(item uint64) bool {
		keys = append(keys, item)
		return true
	})
	return keys
}

// -- roaring --

// roaringSet answers ordered queries through Rank (number of values <= x)
// and Select (value of a given 0-based rank).
type roaringSet struct {
	bm *roaring64.Bitmap
}

func (r roaringSet) Insert(key uint64) {
	r.bm.Add(key)
}

func (r roaringSet) Successor(key uint64) (uint64, bool) {
	rank := r.bm.Rank(key)
	if rank >= r.bm.GetCardinality() {
		return 0, false
	}
	v, err := r.bm.Select(rank)
	return v, err == nil
}

func (r roaringSet) Predecessor(key uint64) (uint64, bool) {
	if key == 0 {
		return 0, false
	}
	rank := r.bm.Rank(key - 1)
	if rank == 0 {
		return 0, false
	}
	v, err := r.bm.Select(rank - 1)
	return v, err == nil
}

func (r roaringSet) Keys() []uint64 {
	return r.bm.ToArray()
}
