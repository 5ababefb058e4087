package veb

// Branch is the generic two-level node. A key is split into Bits() of the
// summary type S (cluster index) and Bits() of the child type C (offset).
// The summary holds exactly the active cluster indices; clusters are kept
// in a CS storage. A branch is empty iff its summary is nil.
type Branch[
	S any, PS nodePtr[S],
	C any, PC nodePtr[C],
	CS any, PCS storePtr[CS, C],
] struct {
	summary  *S
	clusters CS
}

func (b *Branch[S, PS, C, PC, CS, PCS]) highBits() uint {
	var s PS
	return s.Bits()
}

func (b *Branch[S, PS, C, PC, CS, PCS]) lowBits() uint {
	var c PC
	return c.Bits()
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Bits() uint {
	return b.highBits() + b.lowBits()
}

func (b *Branch[S, PS, C, PC, CS, PCS]) split(key uint64) (hi, lo uint64, low uint) {
	low = b.lowBits()
	return key >> low, key & maxKeyFor(low), low
}

func (b *Branch[S, PS, C, PC, CS, PCS]) store() PCS {
	return PCS(&b.clusters)
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Insert(key uint64) bool {
	hi, lo, _ := b.split(key)
	store := b.store()

	if b.summary == nil {
		b.summary = new(S)
		store.init(b.highBits())
	}

	v, child, st := store.lookup(hi)
	switch st {
	case slotEmpty:
		PS(b.summary).Insert(hi)
		store.setInline(hi, lo)
		return true
	case slotInline:
		if v == lo {
			return false
		}
		promote[C, PC](store.ensureChild(hi), v, lo)
		return true
	}
	return PC(child).Insert(lo)
}

// promote moves an inline value and a new offset into a fresh child.
func promote[C any, PC nodePtr[C]](child *C, a, b uint64) {
	c := PC(child)
	if bc, ok := any(c).(batcher); ok {
		bc.InsertBatch(a, b)
		return
	}
	c.Insert(a)
	c.Insert(b)
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Erase(key uint64) bool {
	if b.summary == nil {
		return false
	}
	hi, lo, _ := b.split(key)

	v, child, st := b.store().lookup(hi)
	switch st {
	case slotEmpty:
		return false
	case slotInline:
		if v != lo {
			return false
		}
	case slotChild:
		c := PC(child)
		if !c.Erase(lo) {
			return false
		}
		if !c.Empty() {
			return true
		}
	}
	b.release(hi)
	return true
}

// release deactivates cluster hi and drops the summary once nothing is
// left.
func (b *Branch[S, PS, C, PC, CS, PCS]) release(hi uint64) {
	b.store().deactivate(hi)
	s := PS(b.summary)
	s.Erase(hi)
	if s.Empty() {
		b.summary = nil
	}
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Contains(key uint64) bool {
	if b.summary == nil || key > maxKeyFor(b.Bits()) {
		return false
	}
	hi, lo, _ := b.split(key)

	v, child, st := b.store().lookup(hi)
	switch st {
	case slotInline:
		return v == lo
	case slotChild:
		return PC(child).Contains(lo)
	}
	return false
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Empty() bool {
	return b.summary == nil
}

// clusterMin returns the smallest offset of the active cluster hi.
func (b *Branch[S, PS, C, PC, CS, PCS]) clusterMin(hi uint64) uint64 {
	v, child, st := b.store().lookup(hi)
	if st == slotInline {
		return v
	}
	m, _ := PC(child).Min()
	return m
}

// clusterMax returns the largest offset of the active cluster hi.
func (b *Branch[S, PS, C, PC, CS, PCS]) clusterMax(hi uint64) uint64 {
	v, child, st := b.store().lookup(hi)
	if st == slotInline {
		return v
	}
	m, _ := PC(child).Max()
	return m
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Min() (uint64, bool) {
	if b.summary == nil {
		return 0, false
	}
	hi, _ := PS(b.summary).Min()
	return hi<<b.lowBits() | b.clusterMin(hi), true
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Max() (uint64, bool) {
	if b.summary == nil {
		return 0, false
	}
	hi, _ := PS(b.summary).Max()
	return hi<<b.lowBits() | b.clusterMax(hi), true
}

func (b *Branch[S, PS, C, PC, CS, PCS]) Successor(key uint64) (uint64, bool) {
	if b.summary == nil || key >= maxKeyFor(b.Bits()) {
		return 0, false
	}
	hi, lo, low := b.split(key)

	v, child, st := b.store().lookup(hi)
	switch st {
	case slotInline:
		if v > lo {
			return hi<<low | v, true
		}
	case slotChild:
		if s, ok := PC(child).Successor(lo); ok {
			return hi<<low | s, true
		}
	}

	next, ok := PS(b.summary).Successor(hi)
	if !ok {
		return 0, false
	}
	return next<<low | b.clusterMin(next), true
}

// Predecessor accepts any key above the node maximum as one past the end.
func (b *Branch[S, PS, C, PC, CS, PCS]) Predecessor(key uint64) (uint64, bool) {
	if b.summary == nil || key == 0 {
		return 0, false
	}
	hi, lo, low := b.split(key)
	if width := b.Bits(); width < 64 && key > maxKeyFor(width) {
		// probe past the last offset of the last cluster
		hi, lo = maxKeyFor(b.highBits()), uint64(1)<<low
	}

	v, child, st := b.store().lookup(hi)
	switch st {
	case slotInline:
		if v < lo {
			return hi<<low | v, true
		}
	case slotChild:
		if p, ok := PC(child).Predecessor(lo); ok {
			return hi<<low | p, true
		}
	}

	prev, ok := PS(b.summary).Predecessor(hi)
	if !ok {
		return 0, false
	}
	return prev<<low | b.clusterMax(prev), true
}

func (b *Branch[S, PS, C, PC, CS, PCS]) walk(prefix uint64, yield func(uint64) bool) bool {
	if b.summary == nil {
		return true
	}
	low := b.lowBits()
	store := b.store()

	return PS(b.summary).walk(0, func(hi uint64) bool {
		base := prefix | hi<<low
		v, child, st := store.lookup(hi)
		if st == slotInline {
			return yield(base | v)
		}
		return PC(child).walk(base, yield)
	})
}

func (b *Branch[S, PS, C, PC, CS, PCS]) reserve(n int) {
	b.store().reserve(b.highBits(), n)
}

// activeClusters returns the number of occupied cluster slots.
func (b *Branch[S, PS, C, PC, CS, PCS]) activeClusters() int {
	return b.store().active()
}
