package session

import "math/rand/v2"

// Shuffler reorders n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a PCG-backed shuffler; equal seeds give equal orders.
func NewShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func permutation(shuffler Shuffler, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	shuffler.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}
