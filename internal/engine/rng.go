package engine

import (
	"math/rand"
)

// NewRand returns a seeded pseudo-random source. Every engine entry point
// takes an explicit *rand.Rand so that a fixed seed reproduces a match
// byte-for-byte; nothing in the engine touches the global rand state.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// pickWeighted selects one player from the pool by cumulative-weight
// roulette-wheel sampling. Candidates with non-positive weight are skipped;
// an empty or all-zero pool yields nil, never an error.
func pickWeighted(rng *rand.Rand, pool []*Player, weight func(*Player) float64) *Player {
	total := 0.0
	for _, p := range pool {
		if w := weight(p); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return nil
	}
	roll := rng.Float64() * total
	acc := 0.0
	for _, p := range pool {
		w := weight(p)
		if w <= 0 {
			continue
		}
		acc += w
		if roll < acc {
			return p
		}
	}
	// Floating point edge: the roll landed on the very top of the wheel.
	for i := len(pool) - 1; i >= 0; i-- {
		if weight(pool[i]) > 0 {
			return pool[i]
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
