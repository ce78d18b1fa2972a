package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Side indexes the two teams in a match.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideHome {
		return "home"
	}
	return "away"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// Phase is the match-level state machine. Transitions are linear with no
// skipping and no re-entry: first half, half time, second half, full time.
type Phase int

const (
	PhaseFirstHalf Phase = iota
	PhaseHalfTime
	PhaseSecondHalf
	PhaseFullTime
)

var phaseNames = map[Phase]string{
	PhaseFirstHalf:  "first_half",
	PhaseHalfTime:   "half_time",
	PhaseSecondHalf: "second_half",
	PhaseFullTime:   "full_time",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase_%d", int(p))
}

const (
	regulationMinutes = 90
	halfTimeMinute    = 45
	maxSubstitutions  = 5
)

// MatchConfig is the immutable per-match input: both teams, both tactical
// setups, the venue flag, and optional tuning/trace overrides. Never mutated
// during simulation.
type MatchConfig struct {
	Home         *Team
	Away         *Team
	HomeTactics  Tactics
	AwayTactics  Tactics
	NeutralVenue bool
}

func (c MatchConfig) team(s Side) *Team {
	if s == SideHome {
		return c.Home
	}
	return c.Away
}

// MatchState is the single mutable aggregate for one match. Lineup and bench
// entries are clones of Team players, never live references; Energy is the
// live within-match value keyed by player id. Once Phase reaches full time
// the state is no longer mutated.
type MatchState struct {
	Minute   int
	Phase    Phase
	Stoppage int
	Score    [2]int
	Events   []Event

	Lineups [2][]*Player
	Benches [2][]*Player
	Energy  map[uuid.UUID]float64
	Tactics [2]Tactics

	SubsUsed [2]int
	Booked   map[uuid.UUID]int
	SentOff  map[uuid.UUID]bool
	RedCards [2]int

	Possession Side
	Impacts    [2]TacticalImpact

	kickedOff bool
}

// createMatchState snapshots both squads into a fresh state at minute 0 with
// a random 1-5 minutes of stoppage time.
func createMatchState(cfg MatchConfig, rng *rand.Rand) *MatchState {
	st := &MatchState{
		Phase:    PhaseFirstHalf,
		Stoppage: 1 + rng.Intn(5),
		Energy:   make(map[uuid.UUID]float64),
		Booked:   make(map[uuid.UUID]int),
		SentOff:  make(map[uuid.UUID]bool),
		Tactics:  [2]Tactics{cfg.HomeTactics, cfg.AwayTactics},
	}
	for _, side := range []Side{SideHome, SideAway} {
		team := cfg.team(side)
		tac := st.Tactics[side]
		for _, id := range tac.Lineup {
			if p := team.PlayerByID(id); p != nil {
				c := p.Clone()
				st.Lineups[side] = append(st.Lineups[side], c)
				st.Energy[c.ID] = c.Energy
			}
		}
		for _, id := range tac.Substitutes {
			if p := team.PlayerByID(id); p != nil {
				c := p.Clone()
				st.Benches[side] = append(st.Benches[side], c)
				st.Energy[c.ID] = c.Energy
			}
		}
	}
	return st
}

// lineupIndex returns the index of the player in the side's lineup, or -1.
func (st *MatchState) lineupIndex(side Side, id uuid.UUID) int {
	for i, p := range st.Lineups[side] {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// benchIndex returns the index of the player on the side's bench, or -1.
func (st *MatchState) benchIndex(side Side, id uuid.UUID) int {
	for i, p := range st.Benches[side] {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// removeFromLineup drops a sent-off player. The lineup plays short-handed.
func (st *MatchState) removeFromLineup(side Side, id uuid.UUID) {
	if i := st.lineupIndex(side, id); i >= 0 {
		st.Lineups[side] = append(st.Lineups[side][:i], st.Lineups[side][i+1:]...)
	}
}

func (st *MatchState) appendEvent(e Event) {
	st.Events = append(st.Events, e)
}

// finalMinute is the last minute simulated before full time.
func (st *MatchState) finalMinute() int {
	return regulationMinutes + st.Stoppage
}
