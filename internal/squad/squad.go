// Package squad sits at the engine's team-management boundary: it loads
// squads from YAML files, generates demo squads, and selects default tactics
// for AI sides (best eleven by overall). The match engine itself never picks
// a lineup.
package squad

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v2"

	"github.com/openfooty/match-engine-go/internal/engine"
)

type squadFile struct {
	Teams []teamYAML `yaml:"teams"`
}

type teamYAML struct {
	Name       string       `yaml:"name"`
	Reputation int          `yaml:"reputation"`
	Momentum   int          `yaml:"momentum"`
	Controller string       `yaml:"controller"`
	Players    []playerYAML `yaml:"players"`
}

type playerYAML struct {
	Name       string         `yaml:"name"`
	Position   string         `yaml:"position"`
	Age        int            `yaml:"age"`
	Fitness    float64        `yaml:"fitness"`
	Energy     float64        `yaml:"energy"`
	Attributes map[string]int `yaml:"attributes"`
	Form       []float64      `yaml:"form"`
}

// LoadTeams reads a squad YAML file into engine teams.
func LoadTeams(path string) ([]*engine.Team, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read squad file: %w", err)
	}
	var file squadFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse squad file: %w", err)
	}
	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("squad file %s defines no teams", path)
	}

	teams := make([]*engine.Team, 0, len(file.Teams))
	for _, ty := range file.Teams {
		team := &engine.Team{
			ID:         uuid.New(),
			Name:       ty.Name,
			Reputation: defaultInt(ty.Reputation, 50),
			Momentum:   defaultInt(ty.Momentum, 50),
			Controller: engine.ControllerAI,
		}
		if ty.Controller == string(engine.ControllerHuman) {
			team.Controller = engine.ControllerHuman
		}
		for _, py := range ty.Players {
			team.Players = append(team.Players, buildPlayer(py))
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func buildPlayer(py playerYAML) *engine.Player {
	p := &engine.Player{
		ID:       uuid.New(),
		Name:     py.Name,
		Position: engine.Position(py.Position),
		Age:      defaultInt(py.Age, 25),
		Fitness:  defaultFloat(py.Fitness, 100),
		Energy:   defaultFloat(py.Energy, 100),
		Morale:   70,
		Form:     engine.FormRecord{RecentRatings: py.Form},
	}
	attr := func(key string) int { return defaultInt(py.Attributes[key], 50) }
	p.Attributes = engine.Attributes{
		Shooting:    attr("shooting"),
		Passing:     attr("passing"),
		Dribbling:   attr("dribbling"),
		Tackling:    attr("tackling"),
		Marking:     attr("marking"),
		Positioning: attr("positioning"),
		Vision:      attr("vision"),
		Composure:   attr("composure"),
		Heading:     attr("heading"),
		Pace:        attr("pace"),
		Stamina:     attr("stamina"),
		Strength:    attr("strength"),
		WorkRate:    attr("work_rate"),
		Reflexes:    attr("reflexes"),
		Handling:    attr("handling"),
	}
	return p
}

// DefaultTactics selects the best eleven by overall for the formation's
// slot counts, goalkeeper first, with the rest of the squad on the bench
// (up to seven substitutes).
func DefaultTactics(team *engine.Team, formation engine.Formation) (engine.Tactics, error) {
	def, mid, att, err := formation.Lines()
	if err != nil {
		return engine.Tactics{}, err
	}

	byPosition := map[engine.Position][]*engine.Player{}
	for _, p := range team.Players {
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}
	for _, pool := range byPosition {
		sort.Slice(pool, func(i, j int) bool { return pool[i].Overall() > pool[j].Overall() })
	}

	need := []struct {
		pos   engine.Position
		count int
	}{
		{engine.PositionGK, 1},
		{engine.PositionDEF, def},
		{engine.PositionMID, mid},
		{engine.PositionATT, att},
	}

	tactics := engine.Tactics{Formation: formation, Posture: engine.PostureBalanced}
	picked := map[uuid.UUID]bool{}
	for _, n := range need {
		pool := byPosition[n.pos]
		if len(pool) < n.count {
			return engine.Tactics{}, fmt.Errorf("team %s has %d %s players, formation %s needs %d",
				team.Name, len(pool), n.pos, formation, n.count)
		}
		for _, p := range pool[:n.count] {
			tactics.Lineup = append(tactics.Lineup, p.ID)
			picked[p.ID] = true
		}
	}

	// Bench: the strongest leftovers, keeper included if available.
	rest := make([]*engine.Player, 0, len(team.Players))
	for _, p := range team.Players {
		if !picked[p.ID] {
			rest = append(rest, p)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Overall() > rest[j].Overall() })
	for i, p := range rest {
		if i >= 7 {
			break
		}
		tactics.Substitutes = append(tactics.Substitutes, p.ID)
	}
	return tactics, nil
}

func defaultInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func defaultFloat(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
