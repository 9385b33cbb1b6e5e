// Package shuffle provides the seeded pseudo-random permutations behind
// question selection and choice ordering. The same seed and input always
// reproduce the same order, so a learner can replay a session exactly.
package shuffle

// Shuffle returns a new slice with the elements of in permuted by the
// given generator. The input is never modified.
func Shuffle[T any](in []T, rng *RNG) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample shuffles in and returns the first n elements. n is clamped to
// the input length; n <= 0 means "all of them".
func Sample[T any](in []T, n int, rng *RNG) []T {
	out := Shuffle(in, rng)
	if n <= 0 || n > len(out) {
		n = len(out)
	}
	return out[:n]
}

// Perm returns a permutation of the indices 0..n-1. perm[newIndex] is the
// old index of the element that ends up at newIndex, so callers can remap
// positional data (such as correct-answer indices) through it.
func Perm(n int, rng *RNG) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return Shuffle(idx, rng)
}

// Apply reorders in by perm, where perm[newIndex] is the old index.
func Apply[T any](in []T, perm []int) []T {
	out := make([]T, len(in))
	for newIdx, oldIdx := range perm {
		out[newIdx] = in[oldIdx]
	}
	return out
}

// Remap translates an old index to its position after Apply, or -1 if
// the index is out of range.
func Remap(oldIdx int, perm []int) int {
	for newIdx, o := range perm {
		if o == oldIdx {
			return newIdx
		}
	}
	return -1
}
