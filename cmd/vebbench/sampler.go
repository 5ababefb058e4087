package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

type distribution string

const (
	uniform     distribution = "uniform"
	exponential distribution = "exponential"
	zipfian     distribution = "zipfian"
)

func parseDistribution(s string) (distribution, error) {
	switch d := distribution(strings.ToLower(s)); d {
	case uniform, exponential, zipfian:
		return d, nil
	}
	return "", fmt.Errorf("unknown distribution: %q", s)
}

const (
	minZeroProb = 0.0001
	maxZeroProb = 0.9999
)

// sampler draws keys bit by bit; bit i is zero with probability zero[i].
type sampler struct {
	fake *gofakeit.Faker
	zero []float64
}

func newSampler(fake *gofakeit.Faker, dist distribution, skew float64, bits uint) *sampler {
	if skew <= 0 {
		skew = minZeroProb
	}
	zero := make([]float64, bits)
	for i := range zero {
		var p float64
		switch dist {
		case exponential:
			p = math.Exp(-skew * float64(i))
		case zipfian:
			p = 1 / math.Pow(float64(i)+1, skew)
		default:
			p = 0.5
		}
		zero[i] = min(max(p, minZeroProb), maxZeroProb)
	}
	return &sampler{fake: fake, zero: zero}
}

func (s *sampler) next() uint64 {
	var v uint64
	for i, p := range s.zero {
		if s.fake.Float64Range(0, 1) >= p {
			v |= 1 << i
		}
	}
	return v
}

// fill returns n samples.
func (s *sampler) fill(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = s.next()
	}
	return out
}
