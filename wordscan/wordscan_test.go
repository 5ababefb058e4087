package wordscan

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allModes = []Mode{Scalar, Wide2, Wide4}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		In     string
		ExpOK  bool
		ExpVal Mode
	}{
		{"scalar", true, Scalar},
		{" Wide2 ", true, Wide2},
		{"WIDE4", true, Wide4},
		{"avx2", false, Scalar},
		{"", false, Scalar},
	} {
		tcase := tcase

		t.Run(fmt.Sprintf("%q", tcase.In), func(t *testing.T) {
			m, ok := ParseMode(tcase.In)

			assert.Equal(t, tcase.ExpOK, ok)
			assert.Equal(t, tcase.ExpVal, m)
		})
	}

	for _, m := range allModes {
		parsed, ok := ParseMode(m.String())
		require.True(t, ok)
		assert.Equal(t, m, parsed)
	}
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestKernels(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Words   []uint64
		Start   int
		ExpNext int // -1 means none
		ExpPrev int
	}{
		{[]uint64{0}, 0, -1, -1},
		{[]uint64{1}, 0, 0, 0},
		{[]uint64{0, 0, 0, 5}, 0, 3, -1},
		{[]uint64{0, 0, 0, 5}, 3, 3, 3},
		{[]uint64{7, 0, 0, 0, 0}, 4, -1, 0},
		{[]uint64{7, 0, 0, 0, 0}, 1, -1, 0},
		{[]uint64{0, 9, 0, 0, 0, 0, 3}, 2, 6, 1},
		{[]uint64{0, 9, 0, 0, 0, 0, 3}, 6, 6, 6},
		{[]uint64{0, 0, 0, 0, 0, 0, 0, 0, 1}, 0, 8, -1},
		{[]uint64{1, 0, 0, 0, 0, 0, 0, 0, 0}, 8, -1, 0},
	} {
		tcase := tcase

		for _, mode := range allModes {
			mode := mode
			name := fmt.Sprintf("%v/%v@%d", mode, tcase.Words, tcase.Start)

			t.Run(name, func(t *testing.T) {
				k := kernels[mode]

				idx, ok := k.next(tcase.Words, tcase.Start)
				if tcase.ExpNext < 0 {
					assert.False(t, ok)
				} else {
					require.True(t, ok)
					assert.Equal(t, tcase.ExpNext, idx)
				}

				idx, ok = k.prev(tcase.Words, tcase.Start)
				if tcase.ExpPrev < 0 {
					assert.False(t, ok)
				} else {
					require.True(t, ok)
					assert.Equal(t, tcase.ExpPrev, idx)
				}
			})
		}
	}
}

func TestBounds(t *testing.T) {
	words := []uint64{0, 2, 0}

	for _, mode := range allModes {
		Use(mode)

		_, ok := NextNonZero(nil, 0)
		assert.False(t, ok, mode)
		_, ok = PrevNonZero(nil, 5)
		assert.False(t, ok, mode)

		idx, ok := NextNonZero(words, -3)
		assert.True(t, ok, mode)
		assert.Equal(t, 1, idx, mode)

		_, ok = NextNonZero(words, 3)
		assert.False(t, ok, mode)

		idx, ok = PrevNonZero(words, 100)
		assert.True(t, ok, mode)
		assert.Equal(t, 1, idx, mode)

		_, ok = PrevNonZero(words, -1)
		assert.False(t, ok, mode)
	}
	Use(detect())
}

func TestKernelsAgree(t *testing.T) {
	t.Parallel()

	const (
		seed   = 1234567890
		rounds = 500
	)

	fake := gofakeit.New(seed)

	for r := 0; r < rounds; r++ {
		var (
			size  = fake.IntRange(1, 70)
			words = make([]uint64, size)
			start = fake.IntRange(0, size-1)
		)

		for i := range words {
			if fake.IntRange(0, 9) == 0 {
				words[i] = fake.Uint64() | 1
			}
		}

		expNext, expNextOK := nextScalar(words, start)
		expPrev, expPrevOK := prevScalar(words, start)

		for _, mode := range allModes[1:] {
			next, ok := kernels[mode].next(words, start)
			require.Equal(t, expNextOK, ok, "%v %v @%d", mode, words, start)
			assert.Equal(t, expNext, next, "%v %v @%d", mode, words, start)

			prev, ok := kernels[mode].prev(words, start)
			require.Equal(t, expPrevOK, ok, "%v %v @%d", mode, words, start)
			assert.Equal(t, expPrev, prev, "%v %v @%d", mode, words, start)
		}
	}
}

func TestUse(t *testing.T) {
	defer Use(detect())

	Use(Wide2)
	assert.Equal(t, Wide2, Active())

	Use(Mode(200))
	assert.Equal(t, Scalar, Active())
}
