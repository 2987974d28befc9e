package heuristic

import (
	"math"
)

// EntropyComputer computes the Shannon entropy of a byte buffer in bits per
// byte. It is an interface so that a faster backend can be injected at
// construction time without the analyzer checking availability on every call.
type EntropyComputer interface {
	Entropy(data []byte) float64
}

// HistogramEntropy is the default EntropyComputer: a single-pass byte
// histogram followed by the Shannon sum over the 256 possible values.
type HistogramEntropy struct{}

// Entropy returns H = -sum(p(b) * log2(p(b))) over the observed byte values.
// Values that never occur contribute nothing to the sum; an empty buffer has
// entropy 0.0. The result is always within [0, 8].
func (HistogramEntropy) Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	entropy := 0.0
	total := float64(len(data))
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}
