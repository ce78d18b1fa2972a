package engine

// Energy penalty curve breakpoints. Four linear segments mapping remaining
// energy to a strength multiplier penalty; no penalty at 85+ energy, capped
// at maxEnergyPenalty when fully spent. These values are pinned by the
// regression tests and compound multiplicatively with the fitness and form
// modifiers.
const (
	energyFullThreshold = 85.0
	maxEnergyPenalty    = 0.40
)

var energyCurve = []struct {
	energy  float64
	penalty float64
}{
	{85, 0},
	{70, 0.06},
	{55, 0.16},
	{40, 0.28},
	{0, 0.40},
}

// CalculateEnergyModifier maps remaining energy (0-100) to a penalty in
// [0, 0.40]. Strength is multiplied by (1 - penalty).
func CalculateEnergyModifier(energy float64) float64 {
	if energy >= energyFullThreshold {
		return 0
	}
	if energy <= 0 {
		return maxEnergyPenalty
	}
	for i := 0; i < len(energyCurve)-1; i++ {
		hi, lo := energyCurve[i], energyCurve[i+1]
		if energy <= hi.energy && energy > lo.energy {
			frac := (hi.energy - energy) / (hi.energy - lo.energy)
			return hi.penalty + frac*(lo.penalty-hi.penalty)
		}
	}
	return maxEnergyPenalty
}

// CalculateLiveEnergyDrainPerMinute returns the energy a player loses for one
// on-pitch minute. Defensive postures are cheaper to run, attacking ones
// costlier; older legs drain faster; goalkeepers barely drain at all.
func CalculateLiveEnergyDrainPerMinute(p *Player, posture Posture, t Tuning) float64 {
	drain := t.BaseDrain

	switch posture {
	case PostureDefensive:
		drain *= t.DefensiveDrain
	case PostureAttacking:
		drain *= t.AttackingDrain
	default:
		drain *= t.BalancedDrain
	}

	if p.Age > t.AgeDrainStart {
		drain *= 1 + float64(p.Age-t.AgeDrainStart)*t.AgeDrainPerYear
	}
	if p.Position == PositionGK {
		drain *= t.KeeperDrain
	}
	return drain
}

// GetOpponentEffectiveEnergy approximates season-long fatigue for AI squads
// that are not persisted between matches: full freshness in round one,
// decaying linearly toward a floor of 70 as the season progresses.
func GetOpponentEffectiveEnergy(round, totalRounds int) float64 {
	if totalRounds <= 1 || round <= 1 {
		return 100
	}
	if round > totalRounds {
		round = totalRounds
	}
	progress := float64(round-1) / float64(totalRounds-1)
	return 100 - progress*30
}
