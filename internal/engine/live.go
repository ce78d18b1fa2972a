package engine

import (
	"math/rand"

	"go.uber.org/zap"
)

// LiveMatch wraps a running Simulation with its originating fixture and the
// derived attendance, for stepping a whole round of matches in lock-step.
type LiveMatch struct {
	Fixture    Fixture
	Sim        *Simulation
	Attendance int
}

// NewLiveMatch creates a steppable live match for a fixture.
func NewLiveMatch(fixture Fixture, cfg MatchConfig, rng *rand.Rand, logger *zap.Logger, opts ...SimOption) *LiveMatch {
	return &LiveMatch{
		Fixture:    fixture,
		Sim:        NewSimulation(cfg, rng, logger, opts...),
		Attendance: deriveAttendance(cfg.Home, rng),
	}
}

// Finished reports whether the match has reached full time.
func (m *LiveMatch) Finished() bool {
	return m.Sim.Phase() == PhaseFullTime
}

// Result returns the match result once finished.
func (m *LiveMatch) Result() (*MatchResult, bool) {
	result, ok := m.Sim.Result()
	if !ok {
		return nil, false
	}
	result.FixtureID = m.Fixture.ID
	result.Attendance = m.Attendance
	return result, true
}

// Round steps an arbitrary number of independent live matches in lock-step.
// Matches share nothing but read-only rosters, so stepping is a plain
// sequential sweep.
type Round struct {
	Matches []*LiveMatch
}

// StepDelta is the per-match outcome of one scheduler tick.
type StepDelta struct {
	Fixture Fixture
	Events  []Event
	Phase   Phase
}

// StepAll advances every match that can advance by exactly one step and
// returns the deltas. Finished matches are skipped. Matches parked at half
// time are NOT auto-resumed: a human-controlled match may sit paused
// indefinitely while the caller resumes its AI-only siblings.
func (r *Round) StepAll() []StepDelta {
	deltas := make([]StepDelta, 0, len(r.Matches))
	for _, m := range r.Matches {
		if m.Finished() {
			continue
		}
		events := m.Sim.Step()
		deltas = append(deltas, StepDelta{
			Fixture: m.Fixture,
			Events:  events,
			Phase:   m.Sim.Phase(),
		})
	}
	return deltas
}

// ResumeAI resumes every AI-vs-AI match parked at half time. Matches with a
// human-controlled side are left for that manager to resume.
func (r *Round) ResumeAI() {
	for _, m := range r.Matches {
		if m.Sim.Phase() != PhaseHalfTime {
			continue
		}
		if m.Sim.cfg.Home.Controller == ControllerHuman || m.Sim.cfg.Away.Controller == ControllerHuman {
			continue
		}
		m.Sim.ResumeSecondHalf()
	}
}

// Finished reports whether every match in the round has reached full time.
func (r *Round) Finished() bool {
	for _, m := range r.Matches {
		if !m.Finished() {
			return false
		}
	}
	return true
}
