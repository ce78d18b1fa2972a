package engine

import (
	"github.com/openfooty/match-engine-go/internal/trace"
)

// Event-kind bucket boundaries for the per-minute roll. Cumulative: a roll
// lands in the first bucket whose upper bound exceeds it; anything past the
// last bound is an uneventful minute despite the earlier any-event hit.
const (
	bucketChance   = 0.40
	bucketYellow   = 0.55
	bucketRed      = 0.58
	bucketCorner   = 0.65
	bucketFreeKick = 0.72
	bucketSave     = 0.80
)

// simulateMinute runs one minute of play: recompute tactical impacts, drain
// on-pitch energy, evaluate AI substitutions, settle possession, then roll
// whether and what kind of notable event happens.
func (s *Simulation) simulateMinute() {
	st := s.state

	st.Impacts[SideHome] = ComputeTacticalImpact(st.Tactics[SideHome], st.Tactics[SideAway])
	st.Impacts[SideAway] = ComputeTacticalImpact(st.Tactics[SideAway], st.Tactics[SideHome])

	s.drainEnergy(SideHome)
	s.drainEnergy(SideAway)

	s.evaluateAISubstitutions(SideHome)
	s.evaluateAISubstitutions(SideAway)

	homeStrength := s.sideStrength(SideHome)
	awayStrength := s.sideStrength(SideAway)

	attacker := s.rollPossession(homeStrength, awayStrength)
	st.Possession = attacker
	defender := attacker.Other()

	if s.tracer.Enabled(trace.TypeMinuteContext) {
		s.tracer.Emit(trace.Record{
			Type:   trace.TypeMinuteContext,
			Team:   attacker.String(),
			Minute: st.Minute,
			Computed: map[string]float64{
				"home_strength": homeStrength,
				"away_strength": awayStrength,
			},
			Outcome: "possession_" + attacker.String(),
		})
	}

	eventProb := clamp(
		s.tuning.BaseEventRate+
			st.Impacts[attacker].Creation*0.5-
			st.Impacts[defender].Prevention*0.5,
		s.tuning.MinEventRate, s.tuning.MaxEventRate,
	)
	eventRoll := s.rng.Float64()

	if s.tracer.Enabled(trace.TypeEventProbability) {
		s.tracer.Emit(trace.Record{
			Type:   trace.TypeEventProbability,
			Team:   attacker.String(),
			Minute: st.Minute,
			Inputs: map[string]float64{
				"creation":   st.Impacts[attacker].Creation,
				"prevention": st.Impacts[defender].Prevention,
			},
			Computed: map[string]float64{"event_probability": eventProb, "roll": eventRoll},
			Outcome:  outcomeLabel(eventRoll < eventProb),
		})
	}
	if eventRoll >= eventProb {
		return
	}

	attackStrength := homeStrength
	defenseStrength := awayStrength
	if attacker == SideAway {
		attackStrength, defenseStrength = awayStrength, homeStrength
	}

	switch bucket := s.rng.Float64(); {
	case bucket < bucketChance:
		s.resolveAttackingChance(attacker, attackStrength, defenseStrength)
	case bucket < bucketYellow:
		s.bookPlayer(defender, false)
	case bucket < bucketRed:
		s.bookPlayer(defender, true)
	case bucket < bucketCorner:
		s.resolveCorner(attacker)
	case bucket < bucketFreeKick:
		s.resolveFreeKick(attacker)
	case bucket < bucketSave:
		s.resolveSave(attacker, defender)
	default:
		// A scrappy minute: the any-event roll hit but nothing notable came
		// of it.
	}
}

// possessionProbability is the chance the home side has the ball this
// minute: the strength differential, the tactical possession deltas and home
// advantage, clamped hard to [PossessionMin, PossessionMax].
func (s *Simulation) possessionProbability(homeStrength, awayStrength float64) float64 {
	st := s.state
	p := 0.5 +
		(homeStrength-awayStrength)*s.tuning.StrengthPossession +
		st.Impacts[SideHome].Possession - st.Impacts[SideAway].Possession
	if !s.cfg.NeutralVenue {
		p += s.tuning.HomeAdvantage
	}
	return clamp(p, s.tuning.PossessionMin, s.tuning.PossessionMax)
}

// rollPossession decides which side has the ball this minute.
func (s *Simulation) rollPossession(homeStrength, awayStrength float64) Side {
	if s.rng.Float64() < s.possessionProbability(homeStrength, awayStrength) {
		return SideHome
	}
	return SideAway
}

func (s *Simulation) sideStrength(side Side) float64 {
	st := s.state
	return lineupStrength(st.Lineups[side], st.Energy, s.momentum(side), st.RedCards[side], st.Minute)
}

// drainEnergy applies the per-minute drain to every player currently in the
// side's lineup. Bench players' energy is frozen until they come on.
func (s *Simulation) drainEnergy(side Side) {
	st := s.state
	posture := st.Tactics[side].Posture
	for _, p := range st.Lineups[side] {
		drain := CalculateLiveEnergyDrainPerMinute(p, posture, s.tuning)
		e := st.Energy[p.ID] - drain
		if e < 0 {
			e = 0
		}
		st.Energy[p.ID] = e

		if s.tracer.Enabled(trace.TypeEnergyTick) {
			s.tracer.Emit(trace.Record{
				Type:     trace.TypeEnergyTick,
				Team:     side.String(),
				Minute:   st.Minute,
				Inputs:   map[string]float64{"drain": drain},
				Computed: map[string]float64{"energy": e},
				Outcome:  p.Name,
			})
		}
	}
}

// bookPlayer issues a card to a player on the given side. A straight red or
// a second yellow removes the player from the lineup. The booking target is
// weighted toward hard-running tacklers.
func (s *Simulation) bookPlayer(side Side, straightRed bool) {
	st := s.state
	target := pickWeighted(s.rng, st.Lineups[side], func(p *Player) float64 {
		if p.Position == PositionGK {
			return 1
		}
		return float64(p.Attributes.Tackling + p.Attributes.WorkRate)
	})
	if target == nil {
		return
	}
	reason := cardReasons[s.rng.Intn(len(cardReasons))]

	if straightRed {
		st.appendEvent(RedCardEvent{Minute: st.Minute, Side: side, Player: target.Name, Reason: reason})
		s.sendOff(side, target)
		return
	}

	st.Booked[target.ID]++
	if st.Booked[target.ID] >= 2 {
		st.appendEvent(RedCardEvent{Minute: st.Minute, Side: side, Player: target.Name, SecondYellow: true})
		s.sendOff(side, target)
		return
	}
	st.appendEvent(YellowCardEvent{Minute: st.Minute, Side: side, Player: target.Name, Reason: reason})
}

func (s *Simulation) sendOff(side Side, p *Player) {
	st := s.state
	st.SentOff[p.ID] = true
	st.RedCards[side]++
	st.removeFromLineup(side, p.ID)
}

var cardReasons = []string{
	"reckless challenge",
	"professional foul",
	"dissent",
	"shirt pull",
	"late tackle",
}

func outcomeLabel(hit bool) string {
	if hit {
		return "event"
	}
	return "no_event"
}
