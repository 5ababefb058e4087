package veb

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

const benchKeys = 1 << 16

func benchmarkKeys(bits uint) []uint64 {
	fake := gofakeit.New(1)
	mask := maxKeyFor(bits)

	keys := make([]uint64, benchKeys)
	for i := range keys {
		keys[i] = fake.Uint64() & mask
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	for _, bits := range Widths {
		keys := benchmarkKeys(bits)

		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			s, _ := New(bits)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				s.Insert(keys[i%benchKeys])
			}
		})
	}
}

func BenchmarkSuccessor(b *testing.B) {
	for _, bits := range Widths {
		keys := benchmarkKeys(bits)
		s, _ := New(bits)
		for _, k := range keys {
			s.Insert(k)
		}

		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = s.Successor(keys[i%benchKeys] ^ 1)
			}
		})
	}
}

func BenchmarkPredecessor(b *testing.B) {
	for _, bits := range Widths {
		keys := benchmarkKeys(bits)
		s, _ := New(bits)
		for _, k := range keys {
			s.Insert(k)
		}

		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = s.Predecessor(keys[i%benchKeys] ^ 1)
			}
		})
	}
}

func BenchmarkChurn40(b *testing.B) {
	keys := benchmarkKeys(40)
	t := New40()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := keys[i%benchKeys]
		t.Insert(k)
		t.Erase(k)
	}
}
