package veb

// Node is implemented by every level of the decomposition: leaves,
// branches and the wide top node. Keys are relative to the node, i.e. a node
// of Bits() == b only ever sees keys below 2^b, except Predecessor which
// also accepts 2^b as "past the end".
type Node interface {
	// Insert adds key and reports whether it was absent.
	Insert(key uint64) bool
	// Erase removes key and reports whether it was present.
	Erase(key uint64) bool
	Contains(key uint64) bool
	Empty() bool
	Min() (uint64, bool)
	Max() (uint64, bool)
	// Successor returns the smallest key strictly greater than key.
	Successor(key uint64) (uint64, bool)
	// Predecessor returns the largest key strictly less than key.
	Predecessor(key uint64) (uint64, bool)
	// Bits is the width of the keys handled by the node type. It does not
	// touch the receiver and may be called on a nil pointer.
	Bits() uint

	// walk yields prefix|k for every key k in ascending order and reports
	// whether it ran to completion.
	walk(prefix uint64, yield func(uint64) bool) bool
}

// nodePtr lets generic code hold node values of type T and call Node
// methods through *T.
type nodePtr[T any] interface {
	*T
	Node
}

// batcher is implemented by leaves able to apply several keys at once.
type batcher interface {
	InsertBatch(keys ...uint64) int
}

// reserver is implemented by roots that can pre-size their storage.
type reserver interface {
	reserve(n int)
}

// lowKey is the set of types used to store inline offsets.
type lowKey interface {
	~uint8 | ~uint16 | ~uint32
}

// maxKeyFor returns 2^bits-1; bits == 64 wraps to all ones.
func maxKeyFor(bits uint) uint64 {
	return uint64(1)<<bits - 1
}
