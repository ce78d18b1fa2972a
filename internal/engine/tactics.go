package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Posture is the tactical stance a side plays with.
type Posture string

const (
	PostureDefensive Posture = "defensive"
	PostureBalanced  Posture = "balanced"
	PostureAttacking Posture = "attacking"
)

// Formation is a positional shape tag such as "4-4-2" or "4-3-3". The three
// numbers are the DEF/MID/ATT line counts; the goalkeeper is implicit.
type Formation string

// Lines parses the formation into its DEF/MID/ATT line counts.
func (f Formation) Lines() (def, mid, att int, err error) {
	parts := strings.Split(string(f), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed formation %q", f)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, convErr := strconv.Atoi(part)
		if convErr != nil || n < 1 {
			return 0, 0, 0, fmt.Errorf("malformed formation %q", f)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// SlotCount returns the number of lineup slots the formation defines,
// including the goalkeeper. Malformed formations count as the standard 11.
func (f Formation) SlotCount() int {
	def, mid, att, err := f.Lines()
	if err != nil {
		return 11
	}
	return 1 + def + mid + att
}

// Tactics is a side's match setup: shape, stance, the ordered starting
// lineup (slot order implied by the formation), and the bench.
type Tactics struct {
	Formation   Formation
	Posture     Posture
	Lineup      []uuid.UUID
	Substitutes []uuid.UUID
}

// TacticalImpact is the derived possession/creation/prevention delta for one
// side against its current opponent. Each component is clamped to
// [-impactBound, impactBound] and recomputed every simulated minute.
type TacticalImpact struct {
	Possession float64
	Creation   float64
	Prevention float64
}

const impactBound = 0.2

func clampImpact(v float64) float64 {
	if v > impactBound {
		return impactBound
	}
	if v < -impactBound {
		return -impactBound
	}
	return v
}

// postureImpacts is the fixed stance table, merged additively with the
// formation matchup deltas.
var postureImpacts = map[Posture]TacticalImpact{
	PostureDefensive: {Possession: -0.04, Creation: -0.08, Prevention: 0.08},
	PostureBalanced:  {},
	PostureAttacking: {Possession: 0.04, Creation: 0.08, Prevention: -0.08},
}

// ComputeTacticalImpact derives one side's possession/creation/prevention
// deltas from its formation matchup against the opponent plus its posture.
// Pure function of the two tactics; unparseable formations contribute no
// formation delta.
func ComputeTacticalImpact(own, opponent Tactics) TacticalImpact {
	var impact TacticalImpact

	ownDef, ownMid, ownAtt, ownErr := own.Formation.Lines()
	oppDef, oppMid, oppAtt, oppErr := opponent.Formation.Lines()
	if ownErr == nil && oppErr == nil {
		midDiff := float64(ownMid - oppMid)
		attDiff := float64(ownAtt - oppAtt)
		defDiff := float64(ownDef - oppDef)

		// Midfield numbers drive possession; forward numbers drive creation;
		// defensive numbers drive prevention.
		impact.Possession = clampImpact(midDiff * 0.03)
		impact.Creation = clampImpact(attDiff*0.04 + midDiff*0.02)
		impact.Prevention = clampImpact(defDiff * 0.04)
	}

	posture := postureImpacts[own.Posture]
	impact.Possession = clampImpact(impact.Possession + posture.Possession)
	impact.Creation = clampImpact(impact.Creation + posture.Creation)
	impact.Prevention = clampImpact(impact.Prevention + posture.Prevention)
	return impact
}
