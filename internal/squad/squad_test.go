package squad

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfooty/match-engine-go/internal/engine"
)

func TestGenerateSquadShape(t *testing.T) {
	team := Generate("Testers", 65, engine.NewRand(1))
	assert.Equal(t, "Testers", team.Name)
	assert.Len(t, team.Players, 18)
	assert.Equal(t, engine.ControllerAI, team.Controller)

	counts := map[engine.Position]int{}
	for _, p := range team.Players {
		counts[p.Position]++
		assert.Equal(t, 100.0, p.Energy)
		assert.Equal(t, 100.0, p.Fitness)
	}
	assert.Equal(t, 2, counts[engine.PositionGK])
	assert.Equal(t, 6, counts[engine.PositionDEF])
	assert.Equal(t, 6, counts[engine.PositionMID])
	assert.Equal(t, 4, counts[engine.PositionATT])
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate("A", 60, engine.NewRand(5))
	b := Generate("A", 60, engine.NewRand(5))
	require.Equal(t, len(a.Players), len(b.Players))
	for i := range a.Players {
		assert.Equal(t, a.Players[i].Name, b.Players[i].Name)
		assert.Equal(t, a.Players[i].Attributes, b.Players[i].Attributes)
	}
}

func TestDefaultTacticsBestEleven(t *testing.T) {
	team := Generate("Pickers", 70, engine.NewRand(2))
	tactics, err := DefaultTactics(team, "4-4-2")
	require.NoError(t, err)

	require.Len(t, tactics.Lineup, 11)
	assert.Equal(t, engine.Formation("4-4-2"), tactics.Formation)
	assert.Equal(t, engine.PostureBalanced, tactics.Posture)
	assert.NotEmpty(t, tactics.Substitutes)
	assert.LessOrEqual(t, len(tactics.Substitutes), 7)

	counts := map[engine.Position]int{}
	picked := map[string]bool{}
	for _, id := range tactics.Lineup {
		p := team.PlayerByID(id)
		require.NotNil(t, p)
		require.False(t, picked[id.String()], "player selected twice")
		picked[id.String()] = true
		counts[p.Position]++
	}
	assert.Equal(t, 1, counts[engine.PositionGK])
	assert.Equal(t, 4, counts[engine.PositionDEF])
	assert.Equal(t, 4, counts[engine.PositionMID])
	assert.Equal(t, 2, counts[engine.PositionATT])

	// Starters outrate benched players in the same role.
	for _, id := range tactics.Substitutes {
		sub := team.PlayerByID(id)
		for _, sid := range tactics.Lineup {
			starter := team.PlayerByID(sid)
			if starter.Position == sub.Position {
				assert.GreaterOrEqual(t, starter.Overall(), sub.Overall())
			}
		}
	}
}

func TestDefaultTacticsInsufficientPlayers(t *testing.T) {
	team := Generate("Thin", 60, engine.NewRand(3))
	_, err := DefaultTactics(team, "4-6-0")
	assert.Error(t, err, "no squad carries six starting midfielders and zero forwards")

	_, err = DefaultTactics(team, "oops")
	assert.Error(t, err)
}

func TestLoadTeams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "squads.yaml")
	content := `
teams:
  - name: Riverside
    reputation: 72
    momentum: 61
    controller: human
    players:
      - name: Sam Keller
        position: GK
        age: 31
        attributes:
          reflexes: 82
          handling: 79
          positioning: 75
      - name: Jo Novak
        position: ATT
        fitness: 88
        form: [74, 81]
        attributes:
          shooting: 84
          positioning: 80
  - name: Harbour Town
    players:
      - name: Ade Okafor
        position: MID
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	teams, err := LoadTeams(path)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	riverside := teams[0]
	assert.Equal(t, "Riverside", riverside.Name)
	assert.Equal(t, engine.ControllerHuman, riverside.Controller)
	assert.Equal(t, 72, riverside.Reputation)
	require.Len(t, riverside.Players, 2)

	keeper := riverside.Players[0]
	assert.Equal(t, engine.PositionGK, keeper.Position)
	assert.Equal(t, 82, keeper.Attributes.Reflexes)
	assert.Equal(t, 50, keeper.Attributes.Shooting, "unset attributes default to 50")
	assert.Equal(t, 100.0, keeper.Fitness)

	striker := riverside.Players[1]
	assert.Equal(t, 88.0, striker.Fitness)
	assert.InDelta(t, 77.5, striker.Form.Rating(), 1e-9)

	harbour := teams[1]
	assert.Equal(t, engine.ControllerAI, harbour.Controller, "controller defaults to AI")
	assert.Equal(t, 50, harbour.Reputation)
}

func TestLoadTeamsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTeams(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("teams: []"), 0o644))
	_, err = LoadTeams(empty)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("teams: {"), 0o644))
	_, err = LoadTeams(bad)
	assert.Error(t, err)
}
