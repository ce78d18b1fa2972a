package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestManualSubstitution(t *testing.T) {
	cfg := testMatchConfig(ControllerHuman, ControllerHuman)
	sim := NewSimulation(cfg, NewRand(11), zaptest.NewLogger(t))
	st := sim.State()

	out := st.Lineups[SideHome][5]
	in := st.Benches[SideHome][0]

	res := sim.Substitute(SideHome, out.ID, in.ID)
	require.True(t, res.Success, res.Reason)

	assert.Equal(t, 1, st.SubsUsed[SideHome])
	assert.Less(t, st.lineupIndex(SideHome, out.ID), 0, "outgoing player still in lineup")
	assert.GreaterOrEqual(t, st.lineupIndex(SideHome, in.ID), 0, "incoming player not in lineup")
	assert.Less(t, st.benchIndex(SideHome, in.ID), 0, "incoming player still on bench")

	// Tactics lineup reference follows the swap.
	found := false
	for _, id := range st.Tactics[SideHome].Lineup {
		assert.NotEqual(t, out.ID, id)
		if id == in.ID {
			found = true
		}
	}
	assert.True(t, found)

	// The event log records the substitution with no reason tag.
	last := st.Events[len(st.Events)-1]
	sub, ok := last.(SubstitutionEvent)
	require.True(t, ok)
	assert.Equal(t, out.Name, sub.Out)
	assert.Equal(t, in.Name, sub.In)
	assert.Empty(t, sub.Reason)
}

func TestManualSubstitutionFailures(t *testing.T) {
	cfg := testMatchConfig(ControllerHuman, ControllerHuman)
	sim := NewSimulation(cfg, NewRand(12), nil)
	st := sim.State()

	onPitch := st.Lineups[SideHome][3]
	benched := st.Benches[SideHome][1]

	t.Run("outgoing not in lineup", func(t *testing.T) {
		res := sim.Substitute(SideHome, uuid.New(), benched.ID)
		assert.False(t, res.Success)
	})

	t.Run("incoming not on bench", func(t *testing.T) {
		res := sim.Substitute(SideHome, onPitch.ID, uuid.New())
		assert.False(t, res.Success)
	})

	t.Run("outgoing sent off", func(t *testing.T) {
		victim := st.Lineups[SideHome][4]
		sim.sendOff(SideHome, victim)
		res := sim.Substitute(SideHome, victim.ID, benched.ID)
		assert.False(t, res.Success)
	})

	t.Run("budget exhausted", func(t *testing.T) {
		st.SubsUsed[SideAway] = maxSubstitutions
		res := sim.Substitute(SideAway, st.Lineups[SideAway][2].ID, st.Benches[SideAway][0].ID)
		assert.False(t, res.Success)
	})
}

func TestAISubstitutionsNeverForHumanSide(t *testing.T) {
	cfg := testMatchConfig(ControllerHuman, ControllerHuman)
	drainStarters(cfg)
	sim := NewSimulation(cfg, NewRand(13), nil)
	sim.Run()

	for _, e := range sim.State().Events {
		if sub, ok := e.(SubstitutionEvent); ok && sub.Reason != "" {
			t.Fatalf("AI substitution %q for a human-controlled side", sub.Describe())
		}
	}
}

func TestAISubstitutionsRespectMinuteAndCap(t *testing.T) {
	cfg := testMatchConfig(ControllerAI, ControllerAI)
	drainStarters(cfg)
	sim := NewSimulation(cfg, NewRand(14), zaptest.NewLogger(t))
	sim.Run()

	st := sim.State()
	subsPerSide := map[Side]int{}
	sawFatigue := false
	for _, e := range st.Events {
		sub, ok := e.(SubstitutionEvent)
		if !ok {
			continue
		}
		subsPerSide[sub.Side]++
		if sub.Minute < aiSubsEnabledMinute {
			t.Fatalf("AI substitution at minute %d, before the second half", sub.Minute)
		}
		if sub.Reason == SubReasonFatigue {
			sawFatigue = true
		}
	}
	for side, n := range subsPerSide {
		assert.LessOrEqual(t, n, maxSubstitutions, "side %s exceeded the sub budget", side)
	}
	assert.True(t, sawFatigue, "exhausted starters with a fresh bench should trigger fatigue subs")
	assert.Equal(t, PhaseFullTime, st.Phase)
}

func TestAIFatigueSubPrefersSamePosition(t *testing.T) {
	cfg := testMatchConfig(ControllerAI, ControllerHuman)
	drainStarters(cfg)
	sim := NewSimulation(cfg, NewRand(15), nil)
	sim.Run()

	for _, e := range sim.State().Events {
		sub, ok := e.(SubstitutionEvent)
		if !ok || sub.Reason != SubReasonFatigue {
			continue
		}
		outPos := positionOfName(cfg.Home, sub.Out)
		inPos := positionOfName(cfg.Home, sub.In)
		assert.Equal(t, outPos, inPos, "fatigue sub %s changed position", sub.Describe())
	}
}

// drainStarters exhausts every starting outfield player so the AI fatigue
// policy has obvious work to do, while the bench stays fresh.
func drainStarters(cfg MatchConfig) {
	for _, team := range []*Team{cfg.Home, cfg.Away} {
		for i, p := range team.Players {
			if i < 11 {
				p.Energy = 25
			}
		}
	}
}

func positionOfName(team *Team, name string) Position {
	for _, p := range team.Players {
		if p.Name == name {
			return p.Position
		}
	}
	return ""
}
