package veb

import (
	"math/bits"

	"github.com/aglyzov/go-veb/pool"
	"github.com/aglyzov/go-veb/wordscan"
)

const (
	wideTopBits  = 16
	wideFanout   = 1 << wideTopBits // children
	wideWords    = wideFanout / 64  // occupancy words
	wideBlocks   = wideWords / 64   // occupancy blocks
	wideMaxChild = uint64(wideFanout - 1)
)

// WideTop is a flat 65536-way node over children of type C. Occupied
// children are tracked by a three-tier bitmap: a bit in blocks (super) is set
// iff the matching word (block) is non-zero. Children are taken from and
// returned to pool; a nil pool allocates with new.
type WideTop[C any, PC nodePtr[C]] struct {
	words    [wideWords]uint64
	blocks   [wideBlocks]uint64
	super    uint64
	count    int // occupied children
	children [wideFanout]*C
	pool     *pool.Pool[C]
}

func (t *WideTop[C, PC]) lowBits() uint {
	var c PC
	return c.Bits()
}

func (t *WideTop[C, PC]) Bits() uint {
	return wideTopBits + t.lowBits()
}

func (t *WideTop[C, PC]) split(key uint64) (hi, lo uint64, low uint) {
	low = t.lowBits()
	return key >> low, key & maxKeyFor(low), low
}

// -- occupancy bitmap --

func (t *WideTop[C, PC]) setOcc(idx uint64) {
	w := idx >> 6
	if t.words[w] == 0 {
		blk := w >> 6
		if t.blocks[blk] == 0 {
			t.super |= 1 << blk
		}
		t.blocks[blk] |= 1 << (w & 63)
	}
	t.words[w] |= 1 << (idx & 63)
	t.count++
}

func (t *WideTop[C, PC]) clearOcc(idx uint64) {
	w := idx >> 6
	t.words[w] &^= 1 << (idx & 63)
	if t.words[w] == 0 {
		blk := w >> 6
		t.blocks[blk] &^= 1 << (w & 63)
		if t.blocks[blk] == 0 {
			t.super &^= 1 << blk
		}
	}
	t.count--
}

// lowestIn returns the first occupied index of word w.
func (t *WideTop[C, PC]) lowestIn(w uint64) uint64 {
	return w<<6 | uint64(bits.TrailingZeros64(t.words[w]))
}

// highestIn returns the last occupied index of word w.
func (t *WideTop[C, PC]) highestIn(w uint64) uint64 {
	return w<<6 | uint64(63-bits.LeadingZeros64(t.words[w]))
}

func (t *WideTop[C, PC]) firstChild() (uint64, bool) {
	if t.super == 0 {
		return 0, false
	}
	blk := uint64(bits.TrailingZeros64(t.super))
	w := blk<<6 | uint64(bits.TrailingZeros64(t.blocks[blk]))
	return t.lowestIn(w), true
}

func (t *WideTop[C, PC]) lastChild() (uint64, bool) {
	if t.super == 0 {
		return 0, false
	}
	blk := uint64(63 - bits.LeadingZeros64(t.super))
	w := blk<<6 | uint64(63-bits.LeadingZeros64(t.blocks[blk]))
	return t.highestIn(w), true
}

// nextChild returns the first occupied index strictly greater than idx.
func (t *WideTop[C, PC]) nextChild(idx uint64) (uint64, bool) {
	if idx >= wideMaxChild {
		return 0, false
	}
	idx++

	w := idx >> 6
	if m := t.words[w] & (^uint64(0) << (idx & 63)); m != 0 {
		return w<<6 | uint64(bits.TrailingZeros64(m)), true
	}
	blk := w >> 6
	if m := t.blocks[blk] & (^uint64(0) << ((w & 63) + 1)); m != 0 {
		return t.lowestIn(blk<<6 | uint64(bits.TrailingZeros64(m))), true
	}
	if m := t.super & (^uint64(0) << (blk + 1)); m != 0 {
		blk = uint64(bits.TrailingZeros64(m))
		return t.lowestIn(blk<<6 | uint64(bits.TrailingZeros64(t.blocks[blk]))), true
	}
	return 0, false
}

// prevChild returns the last occupied index strictly less than idx.
func (t *WideTop[C, PC]) prevChild(idx uint64) (uint64, bool) {
	if idx == 0 {
		return 0, false
	}
	if idx > wideFanout {
		idx = wideFanout
	}
	idx--

	w := idx >> 6
	if m := t.words[w] & (uint64(1)<<((idx&63)+1) - 1); m != 0 {
		return w<<6 | uint64(63-bits.LeadingZeros64(m)), true
	}
	blk := w >> 6
	if m := t.blocks[blk] & (uint64(1)<<(w&63) - 1); m != 0 {
		return t.highestIn(blk<<6 | uint64(63-bits.LeadingZeros64(m))), true
	}
	if m := t.super & (uint64(1)<<blk - 1); m != 0 {
		blk = uint64(63 - bits.LeadingZeros64(m))
		return t.highestIn(blk<<6 | uint64(63-bits.LeadingZeros64(t.blocks[blk]))), true
	}
	return 0, false
}

// -- set operations --

func (t *WideTop[C, PC]) Insert(key uint64) bool {
	hi, lo, _ := t.split(key)

	c := t.children[hi]
	if c == nil {
		c = t.pool.Get()
		t.children[hi] = c
		t.setOcc(hi)
	}
	return PC(c).Insert(lo)
}

func (t *WideTop[C, PC]) Erase(key uint64) bool {
	hi, lo, _ := t.split(key)
	if hi > wideMaxChild {
		return false
	}

	c := t.children[hi]
	if c == nil || !PC(c).Erase(lo) {
		return false
	}
	if PC(c).Empty() {
		t.children[hi] = nil
		t.clearOcc(hi)
		t.pool.Put(c)
	}
	return true
}

func (t *WideTop[C, PC]) Contains(key uint64) bool {
	hi, lo, _ := t.split(key)
	if hi > wideMaxChild {
		return false
	}
	c := t.children[hi]
	return c != nil && PC(c).Contains(lo)
}

func (t *WideTop[C, PC]) Empty() bool {
	return t.count == 0
}

func (t *WideTop[C, PC]) Min() (uint64, bool) {
	hi, ok := t.firstChild()
	if !ok {
		return 0, false
	}
	m, _ := PC(t.children[hi]).Min()
	return hi<<t.lowBits() | m, true
}

func (t *WideTop[C, PC]) Max() (uint64, bool) {
	hi, ok := t.lastChild()
	if !ok {
		return 0, false
	}
	m, _ := PC(t.children[hi]).Max()
	return hi<<t.lowBits() | m, true
}

func (t *WideTop[C, PC]) Successor(key uint64) (uint64, bool) {
	if t.count == 0 || key >= maxKeyFor(t.Bits()) {
		return 0, false
	}
	hi, lo, low := t.split(key)

	if c := t.children[hi]; c != nil {
		if s, ok := PC(c).Successor(lo); ok {
			return hi<<low | s, true
		}
	}
	next, ok := t.nextChild(hi)
	if !ok {
		return 0, false
	}
	m, _ := PC(t.children[next]).Min()
	return next<<low | m, true
}

// Predecessor accepts any key above the node maximum as one past the end.
func (t *WideTop[C, PC]) Predecessor(key uint64) (uint64, bool) {
	if t.count == 0 || key == 0 {
		return 0, false
	}
	if key > maxKeyFor(t.Bits()) {
		return t.Max()
	}
	hi, lo, low := t.split(key)

	if c := t.children[hi]; c != nil {
		if p, ok := PC(c).Predecessor(lo); ok {
			return hi<<low | p, true
		}
	}
	prev, ok := t.prevChild(hi)
	if !ok {
		return 0, false
	}
	m, _ := PC(t.children[prev]).Max()
	return prev<<low | m, true
}

func (t *WideTop[C, PC]) walk(prefix uint64, yield func(uint64) bool) bool {
	low := t.lowBits()
	words := t.words[:]

	for w, ok := wordscan.NextNonZero(words, 0); ok; w, ok = wordscan.NextNonZero(words, w+1) {
		for m := words[w]; m != 0; m &= m - 1 {
			hi := uint64(w)<<6 | uint64(bits.TrailingZeros64(m))
			if !PC(t.children[hi]).walk(prefix|hi<<low, yield) {
				return false
			}
		}
	}
	return true
}

// reserve pre-fills the child pool for n keys (one child per key at most).
func (t *WideTop[C, PC]) reserve(n int) {
	t.pool.Reserve(min(n, wideFanout))
}
