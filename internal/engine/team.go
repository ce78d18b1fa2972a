package engine

import (
	"github.com/google/uuid"
)

// Controller says who makes in-match decisions for a side. AI-controlled
// sides receive automatic substitutions; human-controlled sides never do.
type Controller string

const (
	ControllerHuman Controller = "human"
	ControllerAI    Controller = "ai"
)

// Team owns a roster of players plus squad-level state. The match engine
// never mutates a Team; it works on cloned lineup views inside MatchState.
type Team struct {
	ID         uuid.UUID
	Name       string
	Players    []*Player
	Momentum   int // 1-100, derived from recent results
	Reputation int // 1-100, drives attendance
	Controller Controller
}

// PlayerByID returns the roster player with the given id, or nil.
func (t *Team) PlayerByID(id uuid.UUID) *Player {
	for _, p := range t.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
