package veb

// slotState is the occupancy of one cluster slot.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotInline
	slotChild
)

// clusterStore maps cluster indices to empty, inline or child slots.
// A slot is never inline and expanded at the same time.
type clusterStore[C any] interface {
	// init prepares the storage for 2^highBits slots. Repeated calls are
	// no-ops.
	init(highBits uint)
	lookup(hi uint64) (lo uint64, child *C, st slotState)
	// setInline marks an empty slot as holding the single offset lo.
	setInline(hi, lo uint64)
	// ensureChild returns the child of slot hi, allocating it and dropping
	// any inline value first.
	ensureChild(hi uint64) *C
	// deactivate empties slot hi, releasing its child.
	deactivate(hi uint64)
	// reserve pre-sizes the storage for about n keys.
	reserve(highBits uint, n int)
	// active returns the number of occupied slots.
	active() int
}

// storePtr is the pointer side of a clusterStore value of type CS.
type storePtr[CS any, C any] interface {
	*CS
	clusterStore[C]
}
