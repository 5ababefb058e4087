package veb

import (
	"github.com/bits-and-blooms/bitset"
)

// DenseClusters keeps one array entry per cluster index. The arrays are
// allocated on first activation and stay until the owner is dropped.
type DenseClusters[C any, V lowKey] struct {
	inline   *bitset.BitSet
	expanded *bitset.BitSet
	values   []V
	children []*C
}

func (d *DenseClusters[C, V]) init(highBits uint) {
	if d.children != nil {
		return
	}
	n := uint(1) << highBits
	d.inline = bitset.New(n)
	d.expanded = bitset.New(n)
	d.values = make([]V, n)
	d.children = make([]*C, n)
}

func (d *DenseClusters[C, V]) lookup(hi uint64) (uint64, *C, slotState) {
	if d.children == nil {
		return 0, nil, slotEmpty
	}
	switch i := uint(hi); {
	case d.inline.Test(i):
		return uint64(d.values[hi]), nil, slotInline
	case d.expanded.Test(i):
		return 0, d.children[hi], slotChild
	}
	return 0, nil, slotEmpty
}

func (d *DenseClusters[C, V]) setInline(hi, lo uint64) {
	d.inline.Set(uint(hi))
	d.values[hi] = V(lo)
}

func (d *DenseClusters[C, V]) ensureChild(hi uint64) *C {
	i := uint(hi)
	if d.expanded.Test(i) {
		return d.children[hi]
	}
	c := new(C)
	d.children[hi] = c
	d.values[hi] = 0
	d.inline.Clear(i)
	d.expanded.Set(i)
	return c
}

func (d *DenseClusters[C, V]) deactivate(hi uint64) {
	i := uint(hi)
	d.inline.Clear(i)
	d.expanded.Clear(i)
	d.values[hi] = 0
	d.children[hi] = nil
}

func (d *DenseClusters[C, V]) reserve(highBits uint, _ int) {
	d.init(highBits)
}

// active returns the number of occupied slots.
func (d *DenseClusters[C, V]) active() int {
	if d.children == nil {
		return 0
	}
	return int(d.inline.Count() + d.expanded.Count())
}
