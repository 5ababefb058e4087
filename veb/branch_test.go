package veb

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkBranch verifies that the summary holds exactly the active clusters
// and that no expanded child is empty.
func checkBranch[S any, PS nodePtr[S], C any, PC nodePtr[C], CS any, PCS storePtr[CS, C]](
	t *testing.T, b *Branch[S, PS, C, PC, CS, PCS],
) {
	t.Helper()

	if b.summary == nil {
		assert.Equal(t, 0, b.activeClusters(), "empty branch with active clusters")
		return
	}
	require.False(t, PS(b.summary).Empty(), "summary kept while empty")

	n := 0
	PS(b.summary).walk(0, func(hi uint64) bool {
		n++
		_, child, st := b.store().lookup(hi)
		assert.NotEqual(t, slotEmpty, st, "summary has %d without a cluster", hi)
		if st == slotChild {
			assert.False(t, PC(child).Empty(), "cluster %d has an empty child", hi)
		}
		return true
	})
	assert.Equal(t, n, b.activeClusters())
}

func collect(n Node) []uint64 {
	var keys []uint64
	n.walk(0, func(k uint64) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func Test_BranchBits(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Node    Node
		ExpBits uint
	}{
		{(*Branch12)(nil), 12},
		{(*Branch16)(nil), 16},
		{(*Fan18)(nil), 18},
		{(*Fan24)(nil), 24},
		{(*Dense24)(nil), 24},
		{(*Sparse24)(nil), 24},
		{(*Dense32)(nil), 32},
		{(*Sparse32)(nil), 32},
		{(*Wide40)(nil), 40},
		{(*Sparse48)(nil), 48},
		{(*Sparse64)(nil), 64},
	} {
		assert.Equal(t, tcase.ExpBits, tcase.Node.Bits(), "%T", tcase.Node)
	}
}

func Test_BranchPromotion(t *testing.T) {
	var b Branch12

	// 5 and 70 land in clusters 0 and 1
	assert.True(t, b.Insert(5))
	assert.True(t, b.Insert(70))

	for hi, exp := range map[uint64]uint64{0: 5, 1: 70 & 63} {
		lo, child, st := b.store().lookup(hi)
		assert.Equal(t, slotInline, st)
		assert.Nil(t, child)
		assert.Equal(t, exp, lo)
	}
	assert.True(t, b.Contains(5))
	assert.True(t, b.Contains(70))
	checkBranch(t, &b)

	// a second key in cluster 0 promotes it to a child
	assert.True(t, b.Insert(6))
	assert.False(t, b.Insert(6))

	_, child, st := b.store().lookup(0)
	require.Equal(t, slotChild, st)
	assert.True(t, child.Contains(5))
	assert.True(t, child.Contains(6))
	assert.Equal(t, 2, child.Len())
	assert.Equal(t, []uint64{5, 6, 70}, collect(&b))
	checkBranch(t, &b)

	// emptying the child releases the cluster
	assert.True(t, b.Erase(5))
	assert.True(t, b.Erase(6))
	assert.False(t, b.Erase(6))

	_, _, st = b.store().lookup(0)
	assert.Equal(t, slotEmpty, st)
	assert.Equal(t, []uint64{70}, collect(&b))
	checkBranch(t, &b)

	// the last key drops the summary
	assert.True(t, b.Erase(70))
	assert.True(t, b.Empty())
	assert.Nil(t, b.summary)
	checkBranch(t, &b)

	_, ok := b.Min()
	assert.False(t, ok)
}

func Test_BranchInlineErase(t *testing.T) {
	var b Sparse24

	assert.True(t, b.Insert(1<<12|7))
	assert.False(t, b.Erase(1<<12|8), "erase of a different inline offset")
	assert.False(t, b.Erase(2<<12|7), "erase in an inactive cluster")
	assert.True(t, b.Contains(1<<12|7))

	assert.True(t, b.Erase(1<<12|7))
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.activeClusters())
}

func Test_BranchSentinel(t *testing.T) {
	t.Parallel()

	var b Branch16

	_, ok := b.Predecessor(1 << 16)
	assert.False(t, ok)

	b.Insert(0)
	b.Insert(0xfff0)
	b.Insert(0xffff)

	p, ok := b.Predecessor(1 << 16)
	assert.True(t, ok)
	assert.Equal(t, uint64(0xffff), p)

	p, ok = b.Predecessor(0xffff)
	assert.True(t, ok)
	assert.Equal(t, uint64(0xfff0), p)

	_, ok = b.Successor(0xffff)
	assert.False(t, ok)

	_, ok = b.Predecessor(0)
	assert.False(t, ok)
}

func Test_DenseSparseAgree(t *testing.T) {
	t.Parallel()

	const (
		seed = 42
		ops  = 20000
	)

	var (
		fake   = gofakeit.New(seed)
		dense  Dense24
		sparse Sparse24
		ref    = make(map[uint64]bool)
	)

	// a few hot clusters make promotions and releases frequent
	bases := make([]uint64, 16)
	for i := range bases {
		bases[i] = uint64(fake.IntRange(0, int(MaxKey24>>8))) << 8
	}

	for i := 0; i < ops; i++ {
		k := bases[fake.IntRange(0, len(bases)-1)] | uint64(fake.IntRange(0, 255))
		if fake.IntRange(0, 2) == 0 {
			exp := ref[k]
			require.Equal(t, exp, dense.Erase(k))
			require.Equal(t, exp, sparse.Erase(k))
			delete(ref, k)
		} else {
			exp := !ref[k]
			require.Equal(t, exp, dense.Insert(k))
			require.Equal(t, exp, sparse.Insert(k))
			ref[k] = true
		}

		if i%1000 == 0 {
			checkBranch(t, &dense)
			checkBranch(t, &sparse)
		}

		q := uint64(fake.IntRange(0, int(MaxKey24)))
		s1, ok1 := dense.Successor(q)
		s2, ok2 := sparse.Successor(q)
		require.Equal(t, ok1, ok2)
		require.Equal(t, s1, s2)

		p1, ok1 := dense.Predecessor(q)
		p2, ok2 := sparse.Predecessor(q)
		require.Equal(t, ok1, ok2)
		require.Equal(t, p1, p2)
	}

	assert.Equal(t, collect(&dense), collect(&sparse))
	assert.Len(t, collect(&dense), len(ref))

	for k := range ref {
		require.True(t, dense.Erase(k))
		require.True(t, sparse.Erase(k))
	}
	assert.True(t, dense.Empty())
	assert.True(t, sparse.Empty())
	checkBranch(t, &dense)
	checkBranch(t, &sparse)
}

func Test_SparseReserve(t *testing.T) {
	var b Sparse48

	b.reserve(100)
	require.NotNil(t, b.clusters.entries)
	assert.Equal(t, 0, b.activeClusters())

	b.Insert(1 << 30)
	entries := b.clusters.entries

	// a non-empty map is left alone
	b.reserve(1000)
	assert.Same(t, entries, b.clusters.entries)
	assert.True(t, b.Contains(1<<30))
}

func Test_DenseReserve(t *testing.T) {
	var b Dense32

	b.reserve(10)
	assert.Len(t, b.clusters.children, 1<<16)
	assert.True(t, b.Empty())

	b.Insert(12345)
	assert.True(t, b.Contains(12345))
}
