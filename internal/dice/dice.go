// Package dice provides the randomness abstraction for the combat engine.
// All probabilistic behavior (weapon bonus rolls, loot rolls, the villain's
// special-ability chance) draws from a single injectable Source so runs can
// be reproduced from a seed.
package dice

import "math/rand"

// Source is the randomness provider for all combat and loot rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// seededSource implements Source using math/rand with a fixed seed.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a Source seeded with the given value. Two sources
// built from the same seed produce identical roll sequences.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.rng.Intn(n)
}

// Chance rolls a percentage check against src.
//
// Precondition: percent in [0, 100].
// Postcondition: Returns true with probability percent/100.
func Chance(src Source, percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return src.Intn(100) < percent
}

// RollRange returns a uniform random value in [lo, hi] inclusive.
//
// Precondition: lo <= hi.
func RollRange(src Source, lo, hi int) int {
	if lo > hi {
		panic("dice: RollRange called with lo > hi")
	}
	return lo + src.Intn(hi-lo+1)
}
