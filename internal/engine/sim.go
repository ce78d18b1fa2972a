package engine

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/openfooty/match-engine-go/internal/trace"
)

// Simulation owns one MatchState and is the only place phase transitions and
// counters are enforced. It is exclusively owned by its caller: every method
// runs to completion with no background work, so no locking is needed.
type Simulation struct {
	cfg    MatchConfig
	tuning Tuning
	rng    *rand.Rand
	logger *zap.Logger
	tracer *trace.Emitter
	state  *MatchState
	replay *Replay
}

// SimOption customizes a Simulation at construction time.
type SimOption func(*Simulation)

// WithTuning overrides the default balance constants.
func WithTuning(t Tuning) SimOption {
	return func(s *Simulation) { s.tuning = t }
}

// WithTracer attaches a trace emitter. A nil emitter keeps tracing disabled.
func WithTracer(e *trace.Emitter) SimOption {
	return func(s *Simulation) { s.tracer = e }
}

// WithReplay records a per-minute scoreboard snapshot stream for playback.
func WithReplay(r *Replay) SimOption {
	return func(s *Simulation) { s.replay = r }
}

// NewSimulation creates a match at kickoff. The rng is the sole source of
// randomness: the same seed and config reproduce the event log exactly.
func NewSimulation(cfg MatchConfig, rng *rand.Rand, logger *zap.Logger, opts ...SimOption) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Simulation{
		cfg:    cfg,
		tuning: DefaultTuning(),
		rng:    rng,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = createMatchState(cfg, rng)
	return s
}

// State exposes the live match state. Callers must treat it as read-only.
func (s *Simulation) State() *MatchState { return s.state }

// Phase returns the current match phase.
func (s *Simulation) Phase() Phase { return s.state.Phase }

// Step advances the match by exactly one unit and returns the events emitted
// by that step. The very first call emits kickoff without advancing the
// minute. A match parked at half time stays parked until ResumeSecondHalf;
// a finished match no-ops.
func (s *Simulation) Step() []Event {
	st := s.state
	switch st.Phase {
	case PhaseHalfTime, PhaseFullTime:
		return nil
	}

	before := len(st.Events)

	if !st.kickedOff {
		st.kickedOff = true
		st.appendEvent(KickoffEvent{Minute: 0})
		s.snapshot()
		return st.Events[before:]
	}

	st.Minute++
	s.simulateMinute()

	if st.Phase == PhaseFirstHalf && st.Minute >= halfTimeMinute {
		st.Phase = PhaseHalfTime
		st.appendEvent(HalfTimeEvent{Minute: st.Minute, HomeScore: st.Score[SideHome], AwayScore: st.Score[SideAway]})
		s.logger.Debug("half time",
			zap.Int("home", st.Score[SideHome]),
			zap.Int("away", st.Score[SideAway]),
		)
	} else if st.Phase == PhaseSecondHalf && st.Minute >= st.finalMinute() {
		st.Phase = PhaseFullTime
		st.appendEvent(FullTimeEvent{Minute: st.Minute, HomeScore: st.Score[SideHome], AwayScore: st.Score[SideAway]})
		s.logger.Info("full time",
			zap.String("home_team", s.cfg.Home.Name),
			zap.String("away_team", s.cfg.Away.Name),
			zap.Int("home", st.Score[SideHome]),
			zap.Int("away", st.Score[SideAway]),
		)
	}

	s.snapshot()
	return st.Events[before:]
}

// ResumeSecondHalf moves a match parked at half time into the second half.
// Returns false in any other phase.
func (s *Simulation) ResumeSecondHalf() bool {
	if s.state.Phase != PhaseHalfTime {
		return false
	}
	s.state.Phase = PhaseSecondHalf
	return true
}

// Run drives the match to completion synchronously, resuming half time
// automatically, and returns the final result.
func (s *Simulation) Run() *MatchResult {
	for s.state.Phase != PhaseFullTime {
		if s.state.Phase == PhaseHalfTime {
			s.ResumeSecondHalf()
			continue
		}
		s.Step()
	}
	result, _ := s.Result()
	return result
}

func (s *Simulation) snapshot() {
	if s.replay == nil {
		return
	}
	st := s.state
	s.replay.RecordState(ScoreSnapshot{
		Minute:     st.Minute,
		Phase:      st.Phase,
		HomeScore:  st.Score[SideHome],
		AwayScore:  st.Score[SideAway],
		EventCount: len(st.Events),
	})
}

func (s *Simulation) controller(side Side) Controller {
	return s.cfg.team(side).Controller
}

func (s *Simulation) momentum(side Side) int {
	return s.cfg.team(side).Momentum
}
