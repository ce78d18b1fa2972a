package engine

import (
	"github.com/google/uuid"
)

// Position is a player's broad role on the pitch.
type Position string

const (
	PositionGK  Position = "GK"
	PositionDEF Position = "DEF"
	PositionMID Position = "MID"
	PositionATT Position = "ATT"
)

// neutralRating is the fallback overall used when a player's position is
// unknown or their attribute set is corrupted. Strength math degrades to an
// average player instead of propagating NaN upward.
const neutralRating = 50.0

// Attributes holds a player's technical and physical ratings, each 1-99.
type Attributes struct {
	Shooting    int
	Passing     int
	Dribbling   int
	Tackling    int
	Marking     int
	Positioning int
	Vision      int
	Composure   int
	Heading     int
	Pace        int
	Stamina     int
	Strength    int
	WorkRate    int
	Reflexes    int
	Handling    int
}

// FormRecord tracks a player's recent match ratings (0-100 scale) and
// season running totals.
type FormRecord struct {
	RecentRatings []float64
	SeasonGoals   int
	SeasonAssists int
	Appearances   int
}

// Rating returns the average of the recent ratings, or a neutral 70 when no
// matches have been recorded yet.
func (f FormRecord) Rating() float64 {
	if len(f.RecentRatings) == 0 {
		return 70
	}
	sum := 0.0
	for _, r := range f.RecentRatings {
		sum += r
	}
	return sum / float64(len(f.RecentRatings))
}

// Player is a squad member. Energy is within-match fatigue and is distinct
// from Fitness, which models durability across matches. Both are mutated only
// by the match and season subsystems.
type Player struct {
	ID         uuid.UUID
	Name       string
	Position   Position
	Age        int
	Attributes Attributes
	Potential  int
	Morale     int
	Fitness    float64 // 0-100, multi-match durability
	Energy     float64 // 0-100, within-match fatigue
	Yellows    int
	Reds       int
	Form       FormRecord
}

// positionWeights maps each position to the attribute blend used by Overall.
// Weights per position sum to 1.
var positionWeights = map[Position][]struct {
	attr   func(Attributes) int
	weight float64
}{
	PositionGK: {
		{func(a Attributes) int { return a.Reflexes }, 0.35},
		{func(a Attributes) int { return a.Handling }, 0.30},
		{func(a Attributes) int { return a.Positioning }, 0.15},
		{func(a Attributes) int { return a.Composure }, 0.10},
		{func(a Attributes) int { return a.Strength }, 0.05},
		{func(a Attributes) int { return a.Pace }, 0.05},
	},
	PositionDEF: {
		{func(a Attributes) int { return a.Tackling }, 0.25},
		{func(a Attributes) int { return a.Marking }, 0.25},
		{func(a Attributes) int { return a.Heading }, 0.15},
		{func(a Attributes) int { return a.Positioning }, 0.10},
		{func(a Attributes) int { return a.Strength }, 0.10},
		{func(a Attributes) int { return a.Pace }, 0.10},
		{func(a Attributes) int { return a.Composure }, 0.05},
	},
	PositionMID: {
		{func(a Attributes) int { return a.Passing }, 0.25},
		{func(a Attributes) int { return a.Vision }, 0.20},
		{func(a Attributes) int { return a.Dribbling }, 0.15},
		{func(a Attributes) int { return a.Positioning }, 0.10},
		{func(a Attributes) int { return a.Stamina }, 0.10},
		{func(a Attributes) int { return a.WorkRate }, 0.10},
		{func(a Attributes) int { return a.Composure }, 0.10},
	},
	PositionATT: {
		{func(a Attributes) int { return a.Shooting }, 0.30},
		{func(a Attributes) int { return a.Positioning }, 0.20},
		{func(a Attributes) int { return a.Pace }, 0.15},
		{func(a Attributes) int { return a.Dribbling }, 0.15},
		{func(a Attributes) int { return a.Composure }, 0.10},
		{func(a Attributes) int { return a.Heading }, 0.10},
	},
}

// Overall computes the position-weighted attribute blend for the player.
// Unknown positions and out-of-range attributes fall back to neutralRating.
func (p *Player) Overall() float64 {
	weights, ok := positionWeights[p.Position]
	if !ok {
		return neutralRating
	}
	total := 0.0
	for _, w := range weights {
		v := w.attr(p.Attributes)
		if v < 1 || v > 99 {
			return neutralRating
		}
		total += float64(v) * w.weight
	}
	return total
}

// Clone returns a copy of the player. Match state holds clones so that the
// engine never mutates a Team's roster directly.
func (p *Player) Clone() *Player {
	c := *p
	c.Form.RecentRatings = append([]float64(nil), p.Form.RecentRatings...)
	return &c
}
