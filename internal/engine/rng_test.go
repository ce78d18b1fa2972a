package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickWeightedEmptyPool(t *testing.T) {
	rng := NewRand(1)
	assert.Nil(t, pickWeighted(rng, nil, func(*Player) float64 { return 1 }))
	assert.Nil(t, pickWeighted(rng, []*Player{testPlayer("a", PositionATT, 70)},
		func(*Player) float64 { return 0 }))
}

func TestPickWeightedSkipsNonPositive(t *testing.T) {
	rng := NewRand(2)
	zero := testPlayer("zero", PositionATT, 70)
	only := testPlayer("only", PositionATT, 70)
	pool := []*Player{zero, only}
	weight := func(p *Player) float64 {
		if p == only {
			return 5
		}
		return 0
	}
	for i := 0; i < 100; i++ {
		assert.Same(t, only, pickWeighted(rng, pool, weight))
	}
}

func TestPickWeightedDistribution(t *testing.T) {
	rng := NewRand(3)
	heavy := testPlayer("heavy", PositionATT, 70)
	light := testPlayer("light", PositionATT, 70)
	pool := []*Player{heavy, light}
	weight := func(p *Player) float64 {
		if p == heavy {
			return 3
		}
		return 1
	}

	heavyHits := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		if pickWeighted(rng, pool, weight) == heavy {
			heavyHits++
		}
	}
	assert.InDelta(t, 0.75, float64(heavyHits)/trials, 0.02)
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
