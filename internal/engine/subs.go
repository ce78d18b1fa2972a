package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openfooty/match-engine-go/internal/trace"
)

// SubReason tags why the AI policy made a substitution.
type SubReason string

const (
	SubReasonFatigue     SubReason = "fatigue"
	SubReasonTactical    SubReason = "tactical"
	SubReasonProtectLead SubReason = "protect_lead"
)

// SubstitutionResult is the typed outcome of a substitution attempt. Invalid
// requests degrade to Success=false with a reason; nothing here ever panics.
type SubstitutionResult struct {
	Success bool
	Reason  string
}

func subFailure(reason string) SubstitutionResult {
	return SubstitutionResult{Reason: reason}
}

// Substitute applies a manual substitution for the side. It validates the
// sub budget, that the outgoing player is on the pitch and not sent off, and
// that the incoming player is on the bench. Role compatibility per lineup
// slot is the caller's concern. The incoming player's energy starts draining
// from the next simulated minute.
func (s *Simulation) Substitute(side Side, out, in uuid.UUID) SubstitutionResult {
	st := s.state
	if st.Phase == PhaseFullTime {
		return subFailure("match is over")
	}
	if st.SubsUsed[side] >= maxSubstitutions {
		return subFailure("substitution limit reached")
	}
	outIdx := st.lineupIndex(side, out)
	if outIdx < 0 {
		return subFailure("outgoing player not in lineup")
	}
	if st.SentOff[out] {
		return subFailure("outgoing player was sent off")
	}
	inIdx := st.benchIndex(side, in)
	if inIdx < 0 {
		return subFailure("incoming player not on bench")
	}

	s.applySubstitution(side, outIdx, inIdx, "")
	return SubstitutionResult{Success: true}
}

// applySubstitution swaps the players in place, keeps the Tactics lineup in
// step, bumps the counter and appends the event.
func (s *Simulation) applySubstitution(side Side, outIdx, inIdx int, reason SubReason) {
	st := s.state
	outgoing := st.Lineups[side][outIdx]
	incoming := st.Benches[side][inIdx]

	st.Lineups[side][outIdx] = incoming
	st.Benches[side] = append(st.Benches[side][:inIdx], st.Benches[side][inIdx+1:]...)

	for i, id := range st.Tactics[side].Lineup {
		if id == outgoing.ID {
			st.Tactics[side].Lineup[i] = incoming.ID
			break
		}
	}
	st.SubsUsed[side]++
	st.appendEvent(SubstitutionEvent{
		Minute: st.Minute,
		Side:   side,
		Out:    outgoing.Name,
		In:     incoming.Name,
		Reason: reason,
	})

	s.logger.Debug("substitution",
		zap.String("side", side.String()),
		zap.Int("minute", st.Minute),
		zap.String("out", outgoing.Name),
		zap.String("in", incoming.Name),
		zap.String("reason", string(reason)),
	)
	if s.tracer.Enabled(trace.TypeSubExecuted) {
		s.tracer.Emit(trace.Record{
			Type:    trace.TypeSubExecuted,
			Team:    side.String(),
			Minute:  st.Minute,
			Outcome: outgoing.Name + " -> " + incoming.Name,
			Tags:    []string{string(reason)},
		})
	}
}

// aiSubsEnabledMinute is the first minute the AI policy may act; there are
// no first-half AI substitutions.
const aiSubsEnabledMinute = 46

// evaluateAISubstitutions runs the autonomous substitution policy for one
// side. AI-controlled sides only, never before minute 46, hard-capped at the
// match sub budget. Reasons are checked in priority order and more than one
// substitution may happen in the same minute.
func (s *Simulation) evaluateAISubstitutions(side Side) {
	st := s.state
	if s.controller(side) != ControllerAI {
		return
	}
	if st.Minute < aiSubsEnabledMinute {
		return
	}

	s.aiFatigueSubs(side)
	s.aiTacticalSub(side)
	s.aiProtectLeadSub(side)
}

// aiFatigueSubs replaces exhausted on-pitch players with fresher in-role
// bench players, as many as the budget allows.
func (s *Simulation) aiFatigueSubs(side Side) {
	st := s.state
	for st.SubsUsed[side] < maxSubstitutions {
		outIdx, inIdx := s.findFatigueSwap(side)
		if outIdx < 0 {
			return
		}
		s.applySubstitution(side, outIdx, inIdx, SubReasonFatigue)
	}
}

// findFatigueSwap returns the most tired eligible player below the energy
// floor and the freshest same-position bench replacement, or (-1, -1).
func (s *Simulation) findFatigueSwap(side Side) (outIdx, inIdx int) {
	st := s.state
	outIdx, inIdx = -1, -1
	worst := s.tuning.SubEnergyFloor
	for i, p := range st.Lineups[side] {
		if p.Position == PositionGK {
			continue
		}
		energy := st.Energy[p.ID]
		if energy >= worst {
			continue
		}
		j := s.freshestOnBench(side, p.Position, energy+s.tuning.SubFreshMargin)
		if j < 0 {
			continue
		}
		worst = energy
		outIdx, inIdx = i, j

		if s.tracer.Enabled(trace.TypeSubCandidate) {
			s.tracer.Emit(trace.Record{
				Type:     trace.TypeSubCandidate,
				Team:     side.String(),
				Minute:   st.Minute,
				Inputs:   map[string]float64{"energy": energy},
				Computed: map[string]float64{"bench_energy": st.Energy[st.Benches[side][j].ID]},
				Outcome:  p.Name,
				Tags:     []string{string(SubReasonFatigue)},
			})
		}
	}
	return outIdx, inIdx
}

// freshestOnBench returns the index of the freshest bench player of the
// given position with at least minEnergy, or -1.
func (s *Simulation) freshestOnBench(side Side, pos Position, minEnergy float64) int {
	st := s.state
	best := -1
	bestEnergy := minEnergy
	for i, p := range st.Benches[side] {
		if p.Position != pos || st.SentOff[p.ID] {
			continue
		}
		if e := st.Energy[p.ID]; e >= bestEnergy {
			best = i
			bestEnergy = e
		}
	}
	return best
}

// aiTacticalSub chases the game when well behind late on: switch to an
// attacking posture and trade the quietest midfielder for the best bench
// forward. Runs at most once per match.
func (s *Simulation) aiTacticalSub(side Side) {
	st := s.state
	if st.SubsUsed[side] >= maxSubstitutions {
		return
	}
	deficit := st.Score[side.Other()] - st.Score[side]
	if deficit < s.tuning.TacticalDeficit || st.Minute < s.tuning.TacticalMinute {
		return
	}
	if st.Tactics[side].Posture == PostureAttacking {
		return
	}
	st.Tactics[side].Posture = PostureAttacking
	if s.tracer.Enabled(trace.TypePostureAdjustment) {
		s.tracer.Emit(trace.Record{
			Type:    trace.TypePostureAdjustment,
			Team:    side.String(),
			Minute:  st.Minute,
			Outcome: string(PostureAttacking),
			Tags:    []string{string(SubReasonTactical)},
		})
	}

	outIdx := s.lowestOverallIndex(st.Lineups[side], PositionMID)
	inIdx := s.highestOverallBenchIndex(side, PositionATT)
	if outIdx < 0 || inIdx < 0 {
		return
	}
	s.applySubstitution(side, outIdx, inIdx, SubReasonTactical)
}

// aiProtectLeadSub shuts the game down when ahead late: switch to a
// defensive posture and trade the quietest forward for defensive cover.
// Runs at most once per match.
func (s *Simulation) aiProtectLeadSub(side Side) {
	st := s.state
	if st.SubsUsed[side] >= maxSubstitutions {
		return
	}
	lead := st.Score[side] - st.Score[side.Other()]
	if lead < 1 || st.Minute < s.tuning.ProtectLeadMinute {
		return
	}
	if st.Tactics[side].Posture == PostureDefensive {
		return
	}
	st.Tactics[side].Posture = PostureDefensive
	if s.tracer.Enabled(trace.TypePostureAdjustment) {
		s.tracer.Emit(trace.Record{
			Type:    trace.TypePostureAdjustment,
			Team:    side.String(),
			Minute:  st.Minute,
			Outcome: string(PostureDefensive),
			Tags:    []string{string(SubReasonProtectLead)},
		})
	}

	outIdx := s.lowestOverallIndex(st.Lineups[side], PositionATT)
	inIdx := s.highestOverallBenchIndex(side, PositionDEF)
	if inIdx < 0 {
		inIdx = s.highestOverallBenchIndex(side, PositionMID)
	}
	if outIdx < 0 || inIdx < 0 {
		return
	}
	s.applySubstitution(side, outIdx, inIdx, SubReasonProtectLead)
}

func (s *Simulation) lowestOverallIndex(lineup []*Player, pos Position) int {
	best := -1
	bestOverall := 0.0
	for i, p := range lineup {
		if p.Position != pos {
			continue
		}
		if o := p.Overall(); best < 0 || o < bestOverall {
			best = i
			bestOverall = o
		}
	}
	return best
}

func (s *Simulation) highestOverallBenchIndex(side Side, pos Position) int {
	best := -1
	bestOverall := 0.0
	for i, p := range s.state.Benches[side] {
		if p.Position != pos || s.state.SentOff[p.ID] {
			continue
		}
		if o := p.Overall(); o > bestOverall {
			best = i
			bestOverall = o
		}
	}
	return best
}
