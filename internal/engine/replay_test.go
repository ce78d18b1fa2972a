package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayRecordsEveryStep(t *testing.T) {
	replay := NewReplay("test-match")
	sim := NewSimulation(testMatchConfig(ControllerHuman, ControllerHuman), NewRand(31), nil,
		WithReplay(replay))
	sim.Run()

	// One frame per step: kickoff plus every simulated minute.
	minutes := regulationMinutes + sim.State().Stoppage
	assert.Equal(t, minutes+1, replay.Size())

	last := replay.States[replay.Size()-1]
	assert.Equal(t, PhaseFullTime, last.Phase)
	assert.Equal(t, sim.State().Score[SideHome], last.HomeScore)
	assert.Equal(t, sim.State().Score[SideAway], last.AwayScore)
}

func TestReplayCursor(t *testing.T) {
	replay := NewReplay("cursor")
	for i := 0; i <= 10; i++ {
		replay.RecordState(ScoreSnapshot{Minute: i})
	}

	replay.Start()
	first := replay.Next()
	require.NotNil(t, first)
	assert.Equal(t, 0, first.Minute)
	assert.Equal(t, 1, replay.Next().Minute)

	back := replay.Previous()
	require.NotNil(t, back)
	assert.Equal(t, 1, back.Minute)

	jumped := replay.Skip(5)
	require.NotNil(t, jumped)
	assert.Equal(t, 6, jumped.Minute)

	// Skips clamp at the recording bounds.
	assert.Equal(t, 10, replay.Skip(100).Minute)
	assert.Equal(t, 0, replay.Skip(-100).Minute)

	// The cursor runs off the end cleanly.
	replay.Skip(100)
	replay.Next()
	assert.Nil(t, replay.Next())
}

func TestReplaySaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	replay := NewReplay("roundtrip")
	replay.RecordState(ScoreSnapshot{Minute: 1, HomeScore: 1})
	replay.RecordState(ScoreSnapshot{Minute: 90, Phase: PhaseFullTime, HomeScore: 2, AwayScore: 1})
	require.NoError(t, replay.SaveToFile(dir))

	loaded, err := LoadReplayFromFile(filepath.Join(dir, "roundtrip.replay.gz"))
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", loaded.MatchID)
	require.Equal(t, 2, loaded.Size())
	assert.Equal(t, replay.States, loaded.States)
}
