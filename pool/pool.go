// Package pool is a free-list pool of fixed-type objects.
//
// Storage grows in chunks whose size doubles, so a pool that sees heavy
// churn settles on a few large allocations. A nil *Pool is valid and
// degrades to plain allocation.
package pool

const defaultChunk = 1024

type Pool[T any] struct {
	free  []*T
	chunk int // size of the next chunk
	total int // objects ever carved out of chunks
}

// New returns a pool whose first chunk holds preAlloc objects.
// Non-positive preAlloc selects the default chunk size.
func New[T any](preAlloc int) *Pool[T] {
	if preAlloc <= 0 {
		preAlloc = defaultChunk
	}
	return &Pool[T]{
		chunk: preAlloc,
	}
}

// Get returns a zeroed object, reusing a released one if possible.
func (p *Pool[T]) Get() *T {
	if p == nil {
		return new(T)
	}
	if len(p.free) == 0 {
		p.grow(p.chunk)
	}
	l := len(p.free)
	obj := p.free[l-1]
	p.free[l-1] = nil
	p.free = p.free[:l-1]
	return obj
}

// Put zeroes obj and stores it for reuse by subsequent Get calls.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	var zero T
	*obj = zero // clear the object
	if p == nil {
		return
	}
	p.free = append(p.free, obj)
}

// Reserve makes sure at least n objects can be handed out without
// allocating.
func (p *Pool[T]) Reserve(n int) {
	if p == nil {
		return
	}
	if need := n - len(p.free); need > 0 {
		p.grow(need)
	}
}

// Reset forgets about all chunks and free-list entries. Objects handed out
// earlier stay valid; they are simply no longer tracked.
func (p *Pool[T]) Reset() {
	if p == nil {
		return
	}
	p.free = nil
	p.total = 0
	p.chunk = defaultChunk
}

// Free returns the number of objects available without allocating.
func (p *Pool[T]) Free() int {
	if p == nil {
		return 0
	}
	return len(p.free)
}

// grow carves a new chunk of at least n objects and doubles the chunk size.
func (p *Pool[T]) grow(n int) {
	size := p.chunk
	if size < n {
		size = n
	}
	block := make([]T, size)
	if cap(p.free)-len(p.free) < size {
		free := make([]*T, len(p.free), len(p.free)+size)
		copy(free, p.free)
		p.free = free
	}
	// push in reverse so Get hands out the chunk front to back
	for i := size - 1; i >= 0; i-- {
		p.free = append(p.free, &block[i])
	}
	p.total += size
	p.chunk = size * 2
}
