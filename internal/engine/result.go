package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Fixture is the scheduling boundary contract: which two teams meet and in
// which round. Round-robin generation itself lives with the season module.
type Fixture struct {
	ID     uuid.UUID
	HomeID uuid.UUID
	AwayID uuid.UUID
	Round  int
}

// MatchResult is the immutable artifact a finished match leaves behind for
// standings and financial processing.
type MatchResult struct {
	FixtureID  uuid.UUID
	HomeScore  int
	AwayScore  int
	Events     []Event
	Attendance int
	Played     time.Time
}

// Result converts a finished match into its MatchResult. Returns false while
// the match is still in progress.
func (s *Simulation) Result() (*MatchResult, bool) {
	st := s.state
	if st.Phase != PhaseFullTime {
		return nil, false
	}
	events := make([]Event, len(st.Events))
	copy(events, st.Events)
	return &MatchResult{
		HomeScore: st.Score[SideHome],
		AwayScore: st.Score[SideAway],
		Events:    events,
		Played:    time.Now(),
	}, true
}

// deriveAttendance estimates the gate from the home side's reputation with a
// modest random swing.
func deriveAttendance(home *Team, rng *rand.Rand) int {
	base := 5000 + home.Reputation*450
	swing := rng.Intn(base/5 + 1)
	return base - base/10 + swing
}
