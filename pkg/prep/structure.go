package prep

import (
	"math/rand/v2"
)

// Flatten concatenates the inner slices of nested, in order. Only one level
// is flattened; empty inner slices contribute nothing.
func Flatten[T any](nested [][]T) []T {
	n := 0
	for _, inner := range nested {
		n += len(inner)
	}

	out := make([]T, 0, n)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

// NewRand returns a generator whose sequence is fully determined by seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Shuffle returns a randomly permuted copy of values; values itself is not
// modified. Passing the same seeded generator state yields the same
// permutation. A nil rng uses a freshly seeded generator local to the call.
func Shuffle[T any](values []T, rng *rand.Rand) []T {
	out := make([]T, len(values))
	copy(out, values)

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
