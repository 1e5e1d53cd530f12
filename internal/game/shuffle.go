package game

import "math/rand/v2"

// Shuffler returns a uniform random int in [0, n).
type Shuffler func(n int) int

// DefaultShuffler draws from the unseeded global generator.
var DefaultShuffler Shuffler = rand.IntN

// Shuffle permutes perm in place with Fisher–Yates: for i from the last
// index down to 1, swap i with a uniformly chosen index in [0, i].
func Shuffle(perm []int, intn Shuffler) {
	for i := len(perm) - 1; i > 0; i-- {
		j := intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
}

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
