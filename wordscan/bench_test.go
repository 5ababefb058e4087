package wordscan

import "testing"

func benchmarkNext(b *testing.B, mode Mode) {
	words := make([]uint64, 1024)
	words[1000] = 1

	k := kernels[mode]

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = k.next(words, 0)
	}
}

func benchmarkPrev(b *testing.B, mode Mode) {
	words := make([]uint64, 1024)
	words[20] = 1

	k := kernels[mode]

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = k.prev(words, len(words)-1)
	}
}

func BenchmarkNext_Scalar(b *testing.B) { benchmarkNext(b, Scalar) }
func BenchmarkNext_Wide2(b *testing.B)  { benchmarkNext(b, Wide2) }
func BenchmarkNext_Wide4(b *testing.B)  { benchmarkNext(b, Wide4) }
func BenchmarkPrev_Scalar(b *testing.B) { benchmarkPrev(b, Scalar) }
func BenchmarkPrev_Wide2(b *testing.B)  { benchmarkPrev(b, Wide2) }
func BenchmarkPrev_Wide4(b *testing.B)  { benchmarkPrev(b, Wide4) }
