package squad

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/openfooty/match-engine-go/internal/engine"
)

// Squad shape used by Generate: two keepers plus outfield cover for any of
// the common formations.
var generatePlan = []struct {
	pos   engine.Position
	count int
}{
	{engine.PositionGK, 2},
	{engine.PositionDEF, 6},
	{engine.PositionMID, 6},
	{engine.PositionATT, 4},
}

var surnames = []string{
	"Silva", "Costa", "Moreno", "Keller", "Novak", "Bakker", "Lindgren",
	"Hoffmann", "Brandt", "Sørensen", "Kone", "Petit", "Marino", "Ivanov",
	"Dawson", "Reyes", "Okafor", "Tanaka", "Weber", "Duarte",
}

// Generate builds a deterministic random squad of 18 around the given
// quality level (roughly the mean attribute value). Useful for demos and
// tests; real squads come from LoadTeams.
func Generate(name string, quality int, rng *rand.Rand) *engine.Team {
	team := &engine.Team{
		ID:         uuid.New(),
		Name:       name,
		Reputation: quality,
		Momentum:   40 + rng.Intn(21),
		Controller: engine.ControllerAI,
	}
	shirt := 1
	for _, plan := range generatePlan {
		for i := 0; i < plan.count; i++ {
			team.Players = append(team.Players, generatePlayer(name, shirt, plan.pos, quality, rng))
			shirt++
		}
	}
	return team
}

func generatePlayer(teamName string, shirt int, pos engine.Position, quality int, rng *rand.Rand) *engine.Player {
	roll := func() int {
		v := quality - 10 + rng.Intn(21)
		if v < 20 {
			v = 20
		}
		if v > 99 {
			v = 99
		}
		return v
	}
	p := &engine.Player{
		ID:       uuid.New(),
		Name:     fmt.Sprintf("%s %d %s", teamName, shirt, surnames[rng.Intn(len(surnames))]),
		Position: pos,
		Age:      19 + rng.Intn(16),
		Fitness:  100,
		Energy:   100,
		Morale:   70,
		Attributes: engine.Attributes{
			Shooting:    roll(),
			Passing:     roll(),
			Dribbling:   roll(),
			Tackling:    roll(),
			Marking:     roll(),
			Positioning: roll(),
			Vision:      roll(),
			Composure:   roll(),
			Heading:     roll(),
			Pace:        roll(),
			Stamina:     roll(),
			Strength:    roll(),
			WorkRate:    roll(),
			Reflexes:    roll(),
			Handling:    roll(),
		},
	}
	return p
}
