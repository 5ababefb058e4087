package veb

import (
	"github.com/google/btree"
)

// reference is an ordered set backed by a B-tree, used to cross-check trees.
type reference struct {
	tr *btree.BTreeG[uint64]
}

func newReference() *reference {
	return &reference{tr: btree.NewOrderedG[uint64](32)}
}

func (r *reference) insert(k uint64) bool {
	_, found := r.tr.ReplaceOrInsert(k)
	return !found
}

func (r *reference) erase(k uint64) bool {
	_, found := r.tr.Delete(k)
	return found
}

func (r *reference) successor(k uint64) (next uint64, ok bool) {
	r.tr.AscendGreaterOrEqual(k, func(item uint64) bool {
		if item == k {
			return true
		}
		next, ok = item, true
		return false
	})
	return
}

func (r *reference) predecessor(k uint64) (prev uint64, ok bool) {
	r.tr.DescendLessOrEqual(k, func(item uint64) bool {
		if item == k {
			return true
		}
		prev, ok = item, true
		return false
	})
	return
}

func (r *reference) keys() []uint64 {
	keys := make([]uint64, 0, r.tr.Len())
	r.tr.Ascend(func(item uint64) bool {
		keys = append(keys, item)
		return true
	})
	return keys
}
