package engine

import (
	"fmt"
)

// EventKind identifies a match event variant.
type EventKind string

const (
	EventKickoff      EventKind = "kickoff"
	EventGoal         EventKind = "goal"
	EventOwnGoal      EventKind = "own_goal"
	EventYellowCard   EventKind = "yellow_card"
	EventRedCard      EventKind = "red_card"
	EventSubstitution EventKind = "substitution"
	EventChanceMissed EventKind = "chance_missed"
	EventSave         EventKind = "save"
	EventCorner       EventKind = "corner"
	EventFreeKick     EventKind = "free_kick"
	EventHalfTime     EventKind = "half_time"
	EventFullTime     EventKind = "full_time"
)

// Event is one entry in the append-only match log. Each kind is its own
// variant carrying only the fields that kind needs; entries are never edited
// after creation.
type Event interface {
	Kind() EventKind
	EventMinute() int
	Describe() string
}

// SideEvent is implemented by events attributed to one side.
type SideEvent interface {
	Event
	EventSide() Side
}

// KickoffEvent opens the match log.
type KickoffEvent struct {
	Minute int
}

func (e KickoffEvent) Kind() EventKind  { return EventKickoff }
func (e KickoffEvent) EventMinute() int { return e.Minute }
func (e KickoffEvent) Describe() string { return "Kickoff" }

// GoalEvent is a goal credited to Side, with an optional assister and an
// optional set-piece origin ("corner" or "free_kick").
type GoalEvent struct {
	Minute   int
	Side     Side
	Scorer   string
	Assister string
	SetPiece string
}

func (e GoalEvent) Kind() EventKind  { return EventGoal }
func (e GoalEvent) EventMinute() int { return e.Minute }
func (e GoalEvent) EventSide() Side  { return e.Side }
func (e GoalEvent) Describe() string {
	switch {
	case e.SetPiece == "corner":
		return fmt.Sprintf("Goal! %s heads in from the corner", e.Scorer)
	case e.SetPiece == "free_kick":
		return fmt.Sprintf("Goal! %s scores direct from the free kick", e.Scorer)
	case e.Assister != "":
		return fmt.Sprintf("Goal! %s scores, assisted by %s", e.Scorer, e.Assister)
	default:
		return fmt.Sprintf("Goal! %s scores unassisted", e.Scorer)
	}
}

// OwnGoalEvent credits Side with a goal turned in by a defending player.
type OwnGoalEvent struct {
	Minute  int
	Side    Side // side credited with the goal
	Culprit string
}

func (e OwnGoalEvent) Kind() EventKind  { return EventOwnGoal }
func (e OwnGoalEvent) EventMinute() int { return e.Minute }
func (e OwnGoalEvent) EventSide() Side  { return e.Side }
func (e OwnGoalEvent) Describe() string {
	return fmt.Sprintf("Own goal! %s turns it into his own net", e.Culprit)
}

// YellowCardEvent books a player.
type YellowCardEvent struct {
	Minute int
	Side   Side
	Player string
	Reason string
}

func (e YellowCardEvent) Kind() EventKind  { return EventYellowCard }
func (e YellowCardEvent) EventMinute() int { return e.Minute }
func (e YellowCardEvent) EventSide() Side  { return e.Side }
func (e YellowCardEvent) Describe() string {
	return fmt.Sprintf("Yellow card for %s (%s)", e.Player, e.Reason)
}

// RedCardEvent sends a player off, either straight or for a second booking.
type RedCardEvent struct {
	Minute       int
	Side         Side
	Player       string
	Reason       string
	SecondYellow bool
}

func (e RedCardEvent) Kind() EventKind  { return EventRedCard }
func (e RedCardEvent) EventMinute() int { return e.Minute }
func (e RedCardEvent) EventSide() Side  { return e.Side }
func (e RedCardEvent) Describe() string {
	if e.SecondYellow {
		return fmt.Sprintf("Red card! Second yellow for %s", e.Player)
	}
	return fmt.Sprintf("Red card for %s (%s)", e.Player, e.Reason)
}

// SubstitutionEvent swaps Out for In. Reason is empty for manual
// substitutions and carries the AI policy tag otherwise.
type SubstitutionEvent struct {
	Minute int
	Side   Side
	Out    string
	In     string
	Reason SubReason
}

func (e SubstitutionEvent) Kind() EventKind  { return EventSubstitution }
func (e SubstitutionEvent) EventMinute() int { return e.Minute }
func (e SubstitutionEvent) EventSide() Side  { return e.Side }
func (e SubstitutionEvent) Describe() string {
	if e.Reason != "" {
		return fmt.Sprintf("Substitution: %s off, %s on [%s]", e.Out, e.In, e.Reason)
	}
	return fmt.Sprintf("Substitution: %s off, %s on", e.Out, e.In)
}

// ChanceMissedEvent is an attacking chance that went begging.
type ChanceMissedEvent struct {
	Minute  int
	Side    Side
	Shooter string
}

func (e ChanceMissedEvent) Kind() EventKind  { return EventChanceMissed }
func (e ChanceMissedEvent) EventMinute() int { return e.Minute }
func (e ChanceMissedEvent) EventSide() Side  { return e.Side }
func (e ChanceMissedEvent) Describe() string {
	return fmt.Sprintf("%s shoots wide", e.Shooter)
}

// SaveEvent is a shot held by the keeper. Side is the attacking side.
type SaveEvent struct {
	Minute  int
	Side    Side
	Shooter string
	Keeper  string
}

func (e SaveEvent) Kind() EventKind  { return EventSave }
func (e SaveEvent) EventMinute() int { return e.Minute }
func (e SaveEvent) EventSide() Side  { return e.Side }
func (e SaveEvent) Describe() string {
	return fmt.Sprintf("%s denies %s with a fine save", e.Keeper, e.Shooter)
}

// CornerEvent is a corner won by Side.
type CornerEvent struct {
	Minute int
	Side   Side
}

func (e CornerEvent) Kind() EventKind  { return EventCorner }
func (e CornerEvent) EventMinute() int { return e.Minute }
func (e CornerEvent) EventSide() Side  { return e.Side }
func (e CornerEvent) Describe() string { return "Corner" }

// FreeKickEvent is a free kick in a dangerous position for Side.
type FreeKickEvent struct {
	Minute int
	Side   Side
}

func (e FreeKickEvent) Kind() EventKind  { return EventFreeKick }
func (e FreeKickEvent) EventMinute() int { return e.Minute }
func (e FreeKickEvent) EventSide() Side  { return e.Side }
func (e FreeKickEvent) Describe() string { return "Free kick in a dangerous position" }

// HalfTimeEvent closes the first half with the running score.
type HalfTimeEvent struct {
	Minute    int
	HomeScore int
	AwayScore int
}

func (e HalfTimeEvent) Kind() EventKind  { return EventHalfTime }
func (e HalfTimeEvent) EventMinute() int { return e.Minute }
func (e HalfTimeEvent) Describe() string {
	return fmt.Sprintf("Half time: %d-%d", e.HomeScore, e.AwayScore)
}

// FullTimeEvent closes the match with the final score.
type FullTimeEvent struct {
	Minute    int
	HomeScore int
	AwayScore int
}

func (e FullTimeEvent) Kind() EventKind  { return EventFullTime }
func (e FullTimeEvent) EventMinute() int { return e.Minute }
func (e FullTimeEvent) Describe() string {
	return fmt.Sprintf("Full time: %d-%d", e.HomeScore, e.AwayScore)
}

// FormatEvent renders one log line for an event.
func FormatEvent(e Event) string {
	return fmt.Sprintf("%d' %s", e.EventMinute(), e.Describe())
}
