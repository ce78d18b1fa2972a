package engine

import (
	"github.com/openfooty/match-engine-go/internal/trace"
)

// Goal-type distribution for a converted open-play chance.
const (
	ownGoalShare    = 0.03
	unassistedShare = 0.24
)

// resolveAttackingChance picks a shooter, evaluates the chance against the
// defense, and on success resolves the goal type and credits. An empty
// shooter pool ends the minute silently.
func (s *Simulation) resolveAttackingChance(attacker Side, attackStrength, defenseStrength float64) {
	st := s.state
	shooter := pickWeighted(s.rng, st.Lineups[attacker], func(p *Player) float64 {
		if p.Position != PositionATT && p.Position != PositionMID {
			return 0
		}
		return float64(p.Attributes.Shooting + p.Attributes.Positioning)
	})
	if shooter == nil {
		return
	}

	prob := s.tuning.BaseConversion +
		(attackStrength-defenseStrength)*s.tuning.StrengthConversion +
		st.Impacts[attacker].Creation -
		st.Impacts[attacker.Other()].Prevention
	if attacker == SideHome && !s.cfg.NeutralVenue {
		prob += s.tuning.HomeConversionBonus
	}
	prob += s.streakModifier(shooter)
	if keeper := s.keeperOf(attacker.Other()); keeper != nil && keeper.Form.Rating() >= 75 {
		prob -= s.tuning.KeeperFormPenalty
	}
	prob = clamp(prob, s.tuning.MinConversion, s.tuning.MaxConversion)

	scored := s.rng.Float64() < prob

	if s.tracer.Enabled(trace.TypeChanceEvaluation) {
		s.tracer.Emit(trace.Record{
			Type:   trace.TypeChanceEvaluation,
			Team:   attacker.String(),
			Minute: st.Minute,
			Inputs: map[string]float64{
				"attack_strength":  attackStrength,
				"defense_strength": defenseStrength,
			},
			Computed: map[string]float64{"conversion": prob},
			Outcome:  shooter.Name,
			Tags:     []string{outcomeLabel(scored)},
		})
	}

	if !scored {
		st.appendEvent(ChanceMissedEvent{Minute: st.Minute, Side: attacker, Shooter: shooter.Name})
		return
	}
	s.resolveGoal(attacker, shooter)
}

// resolveGoal rolls the goal type (own goal / unassisted / assisted) and
// appends the scoring event. The score always goes to the attacking side.
func (s *Simulation) resolveGoal(attacker Side, shooter *Player) {
	st := s.state
	st.Score[attacker]++

	roll := s.rng.Float64()
	switch {
	case roll < ownGoalShare:
		culprit := s.pickOwnGoalCulprit(attacker.Other())
		name := "a defender"
		if culprit != nil {
			name = culprit.Name
		}
		st.appendEvent(OwnGoalEvent{Minute: st.Minute, Side: attacker, Culprit: name})
	case roll < ownGoalShare+unassistedShare:
		st.appendEvent(GoalEvent{Minute: st.Minute, Side: attacker, Scorer: shooter.Name})
	default:
		assister := pickWeighted(s.rng, st.Lineups[attacker], func(p *Player) float64 {
			if p.ID == shooter.ID || p.Position == PositionGK {
				return 0
			}
			return float64(p.Attributes.Passing + p.Attributes.Vision)
		})
		assistName := ""
		if assister != nil {
			assistName = assister.Name
		}
		st.appendEvent(GoalEvent{Minute: st.Minute, Side: attacker, Scorer: shooter.Name, Assister: assistName})
	}
}

// pickOwnGoalCulprit selects the defending player who turned it in, weighted
// inversely by composure with defenders and keepers preferred.
func (s *Simulation) pickOwnGoalCulprit(defender Side) *Player {
	return pickWeighted(s.rng, s.state.Lineups[defender], func(p *Player) float64 {
		w := float64(100 - p.Attributes.Composure)
		if p.Position == PositionDEF || p.Position == PositionGK {
			w *= 2
		}
		return w
	})
}

// resolveCorner awards a corner and rolls its independent, much smaller goal
// probability with an aerial-threat scorer weighting.
func (s *Simulation) resolveCorner(attacker Side) {
	st := s.state
	st.appendEvent(CornerEvent{Minute: st.Minute, Side: attacker})
	if s.rng.Float64() >= s.tuning.CornerGoalRate {
		return
	}
	scorer := pickWeighted(s.rng, st.Lineups[attacker], func(p *Player) float64 {
		if p.Position == PositionGK {
			return 0
		}
		return float64(p.Attributes.Heading + p.Attributes.Positioning)
	})
	if scorer == nil {
		return
	}
	st.Score[attacker]++
	st.appendEvent(GoalEvent{Minute: st.Minute, Side: attacker, Scorer: scorer.Name, SetPiece: "corner"})
}

// resolveFreeKick awards a dangerous free kick and rolls its direct goal
// probability with a dead-ball specialist weighting.
func (s *Simulation) resolveFreeKick(attacker Side) {
	st := s.state
	st.appendEvent(FreeKickEvent{Minute: st.Minute, Side: attacker})
	if s.rng.Float64() >= s.tuning.FreeKickGoalRate {
		return
	}
	taker := pickWeighted(s.rng, st.Lineups[attacker], func(p *Player) float64 {
		if p.Position == PositionGK {
			return 0
		}
		return float64(p.Attributes.Shooting + p.Attributes.Composure)
	})
	if taker == nil {
		return
	}
	st.Score[attacker]++
	st.appendEvent(GoalEvent{Minute: st.Minute, Side: attacker, Scorer: taker.Name, SetPiece: "free_kick"})
}

// resolveSave is a shot held by the defending keeper.
func (s *Simulation) resolveSave(attacker, defender Side) {
	st := s.state
	shooter := pickWeighted(s.rng, st.Lineups[attacker], func(p *Player) float64 {
		if p.Position != PositionATT && p.Position != PositionMID {
			return 0
		}
		return float64(p.Attributes.Shooting + p.Attributes.Positioning)
	})
	keeper := s.keeperOf(defender)
	if shooter == nil || keeper == nil {
		return
	}
	st.appendEvent(SaveEvent{Minute: st.Minute, Side: attacker, Shooter: shooter.Name, Keeper: keeper.Name})
}

// streakModifier nudges conversion for strikers running hot or cold over
// their recent ratings.
func (s *Simulation) streakModifier(p *Player) float64 {
	if len(p.Form.RecentRatings) == 0 {
		return 0
	}
	rating := p.Form.Rating()
	switch {
	case rating >= 75:
		return s.tuning.StreakBonus
	case rating <= 60:
		return -s.tuning.StreakBonus
	default:
		return 0
	}
}

func (s *Simulation) keeperOf(side Side) *Player {
	for _, p := range s.state.Lineups[side] {
		if p.Position == PositionGK {
			return p
		}
	}
	return nil
}
