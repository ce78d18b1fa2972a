package engine

// Tuning collects the engine's balance constants. The layered structure of
// the rolls is fixed; the magnitudes here are configuration and can be
// overridden per deployment (see internal/config).
type Tuning struct {
	// Possession roll.
	PossessionMin      float64 // lower clamp on home possession probability
	PossessionMax      float64 // upper clamp
	StrengthPossession float64 // possession shift per point of strength differential
	HomeAdvantage      float64 // added to home possession unless neutral venue

	// Any-event roll.
	BaseEventRate float64
	MinEventRate  float64
	MaxEventRate  float64

	// Chance conversion.
	BaseConversion      float64 // baseline probability an attacking chance scores
	StrengthConversion  float64 // conversion shift per point of attack-vs-defense differential
	HomeConversionBonus float64
	MinConversion       float64
	MaxConversion       float64
	StreakBonus         float64 // hot/cold striker adjustment from recent ratings
	KeeperFormPenalty   float64 // subtracted when the opposing keeper is in form

	// Set pieces.
	CornerGoalRate   float64
	FreeKickGoalRate float64

	// Energy drain.
	BaseDrain       float64 // energy lost per on-pitch minute before scaling
	DefensiveDrain  float64 // posture multipliers
	BalancedDrain   float64
	AttackingDrain  float64
	KeeperDrain     float64 // goalkeeper multiplier
	AgeDrainPerYear float64 // extra drain fraction per year past AgeDrainStart
	AgeDrainStart   int

	// AI substitution policy.
	SubEnergyFloor    float64 // on-pitch energy below this triggers a fatigue sub
	SubFreshMargin    float64 // bench player must be at least this much fresher
	TacticalDeficit   int     // goal deficit that triggers an attacking change
	TacticalMinute    int
	ProtectLeadMinute int
}

// DefaultTuning returns the stock balance constants.
func DefaultTuning() Tuning {
	return Tuning{
		PossessionMin:      0.20,
		PossessionMax:      0.80,
		StrengthPossession: 0.004,
		HomeAdvantage:      0.06,

		BaseEventRate: 0.22,
		MinEventRate:  0.05,
		MaxEventRate:  0.35,

		BaseConversion:      0.30,
		StrengthConversion:  0.005,
		HomeConversionBonus: 0.03,
		MinConversion:       0.05,
		MaxConversion:       0.70,
		StreakBonus:         0.05,
		KeeperFormPenalty:   0.04,

		CornerGoalRate:   0.08,
		FreeKickGoalRate: 0.06,

		BaseDrain:       0.68,
		DefensiveDrain:  0.90,
		BalancedDrain:   1.00,
		AttackingDrain:  1.15,
		KeeperDrain:     0.40,
		AgeDrainPerYear: 0.03,
		AgeDrainStart:   30,

		SubEnergyFloor:    55,
		SubFreshMargin:    20,
		TacticalDeficit:   2,
		TacticalMinute:    60,
		ProtectLeadMinute: 75,
	}
}
