package engine

import (
	"github.com/google/uuid"
)

// formModifier converts a form rating (0-100, neutral at 70) into a strength
// multiplier adjustment of roughly ±0.15 at the extremes.
func formModifier(form float64) float64 {
	return (form - 70) / 100 * 0.15
}

// momentumModifier converts team momentum (1-100, neutral at 50) into a
// lineup-level multiplier adjustment of roughly ±0.16 at the extremes.
func momentumModifier(momentum int) float64 {
	return (float64(momentum) - 50) / 100 * 0.16
}

// fitnessPenalty maps multi-match fitness to a strength penalty. No penalty
// above 80 fitness, linear below, amplified once legs get heavy after minute
// 60, capped at 0.30.
func fitnessPenalty(fitness float64, minute int) float64 {
	if fitness >= 80 {
		return 0
	}
	if fitness < 0 {
		fitness = 0
	}
	penalty := (80 - fitness) / 80 * 0.25
	if minute > 60 {
		penalty *= 1.5
	}
	if penalty > 0.30 {
		penalty = 0.30
	}
	return penalty
}

// redCardPenalty is the flat strength reduction for playing short-handed:
// 8 points for the first send-off, 5 more for each additional one.
func redCardPenalty(reds int) float64 {
	if reds <= 0 {
		return 0
	}
	return 8 + 5*float64(reds-1)
}

// EffectivePlayerStrength folds form, fitness and current energy into a
// single player's overall rating for the given minute.
func EffectivePlayerStrength(p *Player, energy float64, minute int) float64 {
	strength := p.Overall()
	strength *= 1 + formModifier(p.Form.Rating())
	strength *= 1 - fitnessPenalty(p.Fitness, minute)
	strength *= 1 - CalculateEnergyModifier(energy)
	return strength
}

// lineupStrength averages the effective strength of every player currently
// on the pitch, applies the team momentum modifier, and subtracts the
// red-card penalty. An empty lineup rates as neutral.
func lineupStrength(lineup []*Player, energy map[uuid.UUID]float64, momentum, reds, minute int) float64 {
	if len(lineup) == 0 {
		return neutralRating
	}
	total := 0.0
	for _, p := range lineup {
		total += EffectivePlayerStrength(p, energy[p.ID], minute)
	}
	avg := total / float64(len(lineup))
	avg *= 1 + momentumModifier(momentum)
	avg -= redCardPenalty(reds)
	if avg < 1 {
		avg = 1
	}
	return avg
}
