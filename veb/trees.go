package veb

import (
	"math"

	"github.com/aglyzov/go-veb/pool"
)

// Key limits per supported width.
const (
	MaxKey24 uint64 = 1<<24 - 1
	MaxKey32 uint64 = 1<<32 - 1
	MaxKey40 uint64 = 1<<40 - 1
	MaxKey48 uint64 = 1<<48 - 1
	MaxKey64 uint64 = math.MaxUint64

	PredecessorQueryMax24 = MaxKey24 + 1
	PredecessorQueryMax32 = MaxKey32 + 1
	PredecessorQueryMax40 = MaxKey40 + 1
	PredecessorQueryMax48 = MaxKey48 + 1
	PredecessorQueryMax64 = MaxKey64
)

// Inner nodes.
type (
	Branch12 = Branch[Leaf6, *Leaf6, Leaf6, *Leaf6,
		DenseClusters[Leaf6, uint8], *DenseClusters[Leaf6, uint8]]
	Branch16 = Branch[Leaf8, *Leaf8, Leaf8, *Leaf8,
		DenseClusters[Leaf8, uint8], *DenseClusters[Leaf8, uint8]]

	Sparse24 = Branch[Branch12, *Branch12, Branch12, *Branch12,
		SparseClusters[Branch12, uint16], *SparseClusters[Branch12, uint16]]
	Sparse32 = Branch[Branch16, *Branch16, Branch16, *Branch16,
		SparseClusters[Branch16, uint16], *SparseClusters[Branch16, uint16]]

	// 64-way chain below the wide top node
	Fan18 = Branch[Leaf6, *Leaf6, Branch12, *Branch12,
		DenseClusters[Branch12, uint16], *DenseClusters[Branch12, uint16]]
	Fan24 = Branch[Leaf6, *Leaf6, Fan18, *Fan18,
		DenseClusters[Fan18, uint32], *DenseClusters[Fan18, uint32]]
)

// Root nodes.
type (
	Dense24 = Branch[Branch12, *Branch12, Branch12, *Branch12,
		DenseClusters[Branch12, uint16], *DenseClusters[Branch12, uint16]]
	Dense32 = Branch[Branch16, *Branch16, Branch16, *Branch16,
		DenseClusters[Branch16, uint16], *DenseClusters[Branch16, uint16]]
	Wide40   = WideTop[Fan24, *Fan24]
	Sparse48 = Branch[Sparse24, *Sparse24, Sparse24, *Sparse24,
		SparseClusters[Sparse24, uint32], *SparseClusters[Sparse24, uint32]]
	Sparse64 = Branch[Sparse32, *Sparse32, Sparse32, *Sparse32,
		SparseClusters[Sparse32, uint32], *SparseClusters[Sparse32, uint32]]
)

// Trees.
type (
	Tree24 = Tree[Dense24, *Dense24]
	Tree32 = Tree[Dense32, *Dense32]
	Tree40 = Tree[Wide40, *Wide40]
	Tree48 = Tree[Sparse48, *Sparse48]
	Tree64 = Tree[Sparse64, *Sparse64]
)

func New24() *Tree24 { return &Tree24{} }
func New32() *Tree32 { return &Tree32{} }
func New48() *Tree48 { return &Tree48{} }
func New64() *Tree64 { return &Tree64{} }

// New40 returns an empty 40-bit tree whose top-level children are recycled
// through a node pool.
func New40() *Tree40 {
	t := &Tree40{}
	t.root.pool = pool.New[Fan24](0)
	return t
}
