package veb

import (
	"github.com/cockroachdb/swiss"
)

type sparseEntry[C any, V lowKey] struct {
	value V
	child *C // nil for an inline entry
}

// SparseClusters keeps only the active clusters, in a hash map keyed by the
// cluster index.
type SparseClusters[C any, V lowKey] struct {
	entries *swiss.Map[uint32, sparseEntry[C, V]]
}

func (s *SparseClusters[C, V]) init(uint) {
	if s.entries == nil {
		s.entries = swiss.New[uint32, sparseEntry[C, V]](0)
	}
}

func (s *SparseClusters[C, V]) lookup(hi uint64) (uint64, *C, slotState) {
	if s.entries == nil {
		return 0, nil, slotEmpty
	}
	e, ok := s.entries.Get(uint32(hi))
	switch {
	case !ok:
		return 0, nil, slotEmpty
	case e.child == nil:
		return uint64(e.value), nil, slotInline
	}
	return 0, e.child, slotChild
}

func (s *SparseClusters[C, V]) setInline(hi, lo uint64) {
	s.entries.Put(uint32(hi), sparseEntry[C, V]{value: V(lo)})
}

func (s *SparseClusters[C, V]) ensureChild(hi uint64) *C {
	e, ok := s.entries.Get(uint32(hi))
	if ok && e.child != nil {
		return e.child
	}
	c := new(C)
	s.entries.Put(uint32(hi), sparseEntry[C, V]{child: c})
	return c
}

func (s *SparseClusters[C, V]) deactivate(hi uint64) {
	s.entries.Delete(uint32(hi))
}

// reserve re-creates an empty map with room for n clusters.
func (s *SparseClusters[C, V]) reserve(highBits uint, n int) {
	if s.entries != nil && s.entries.Len() > 0 {
		return
	}
	if n < 0 {
		n = 0
	}
	if limit := uint64(1) << highBits; uint64(n) > limit {
		n = int(limit)
	}
	s.entries = swiss.New[uint32, sparseEntry[C, V]](n)
}

// active returns the number of occupied slots.
func (s *SparseClusters[C, V]) active() int {
	if s.entries == nil {
		return 0
	}
	return s.entries.Len()
}
