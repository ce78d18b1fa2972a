package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Test fixtures: deterministic squads with uniform attributes so individual
// modifiers can be asserted in isolation.

func testPlayer(name string, pos Position, rating int) *Player {
	return &Player{
		ID:       uuid.New(),
		Name:     name,
		Position: pos,
		Age:      25,
		Fitness:  100,
		Energy:   100,
		Morale:   70,
		Attributes: Attributes{
			Shooting:    rating,
			Passing:     rating,
			Dribbling:   rating,
			Tackling:    rating,
			Marking:     rating,
			Positioning: rating,
			Vision:      rating,
			Composure:   rating,
			Heading:     rating,
			Pace:        rating,
			Stamina:     rating,
			Strength:    rating,
			WorkRate:    rating,
			Reflexes:    rating,
			Handling:    rating,
		},
	}
}

// testTeam builds an 18-player squad in a 4-4-2 shape with a 7-player bench
// (1 GK, 2 DEF, 2 MID, 2 ATT) and returns the matching tactics.
func testTeam(name string, controller Controller, rating int) (*Team, Tactics) {
	team := &Team{
		ID:         uuid.New(),
		Name:       name,
		Momentum:   50,
		Reputation: 50,
		Controller: controller,
	}
	plan := []struct {
		pos   Position
		count int
	}{
		{PositionGK, 1},
		{PositionDEF, 4},
		{PositionMID, 4},
		{PositionATT, 2},
		// bench
		{PositionGK, 1},
		{PositionDEF, 2},
		{PositionMID, 2},
		{PositionATT, 2},
	}
	shirt := 1
	for _, p := range plan {
		for i := 0; i < p.count; i++ {
			player := testPlayer(fmt.Sprintf("%s %s %d", name, p.pos, shirt), p.pos, rating)
			team.Players = append(team.Players, player)
			shirt++
		}
	}

	tactics := Tactics{Formation: "4-4-2", Posture: PostureBalanced}
	for _, p := range team.Players[:11] {
		tactics.Lineup = append(tactics.Lineup, p.ID)
	}
	for _, p := range team.Players[11:] {
		tactics.Substitutes = append(tactics.Substitutes, p.ID)
	}
	return team, tactics
}

func testMatchConfig(homeController, awayController Controller) MatchConfig {
	home, homeTactics := testTeam("Home", homeController, 70)
	away, awayTactics := testTeam("Away", awayController, 70)
	return MatchConfig{
		Home:        home,
		Away:        away,
		HomeTactics: homeTactics,
		AwayTactics: awayTactics,
	}
}
