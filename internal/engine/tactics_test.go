package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormationLines(t *testing.T) {
	def, mid, att, err := Formation("4-3-3").Lines()
	assert.NoError(t, err)
	assert.Equal(t, 4, def)
	assert.Equal(t, 3, mid)
	assert.Equal(t, 3, att)
	assert.Equal(t, 11, Formation("4-3-3").SlotCount())

	for _, bad := range []Formation{"", "4-4", "a-b-c", "4-0-6"} {
		_, _, _, err := bad.Lines()
		assert.Error(t, err, "formation %q should not parse", bad)
	}
}

func TestPostureTable(t *testing.T) {
	base := Tactics{Formation: "4-4-2", Posture: PostureBalanced}

	balanced := ComputeTacticalImpact(base, base)
	assert.Zero(t, balanced.Possession)
	assert.Zero(t, balanced.Creation)
	assert.Zero(t, balanced.Prevention)

	attacking := ComputeTacticalImpact(Tactics{Formation: "4-4-2", Posture: PostureAttacking}, base)
	assert.Greater(t, attacking.Possession, 0.0)
	assert.Greater(t, attacking.Creation, 0.0)
	assert.Less(t, attacking.Prevention, 0.0)

	defensive := ComputeTacticalImpact(Tactics{Formation: "4-4-2", Posture: PostureDefensive}, base)
	assert.Less(t, defensive.Possession, 0.0)
	assert.Less(t, defensive.Creation, 0.0)
	assert.Greater(t, defensive.Prevention, 0.0)
}

func TestFormationMatchup(t *testing.T) {
	threeMids := Tactics{Formation: "4-3-3", Posture: PostureBalanced}
	fiveMids := Tactics{Formation: "3-5-2", Posture: PostureBalanced}

	impact := ComputeTacticalImpact(fiveMids, threeMids)
	assert.Greater(t, impact.Possession, 0.0, "extra midfielders should win possession")

	reverse := ComputeTacticalImpact(threeMids, fiveMids)
	assert.Less(t, reverse.Possession, 0.0)
}

// Impact components always stay inside [-0.2, 0.2] after the formation and
// posture contributions merge, whatever the matchup.
func TestTacticalImpactClamped(t *testing.T) {
	formations := []Formation{"4-4-2", "4-3-3", "3-5-2", "5-3-2", "4-2-4", "3-4-3", "5-4-1", "2-3-5"}
	postures := []Posture{PostureDefensive, PostureBalanced, PostureAttacking}
	for _, of := range formations {
		for _, op := range postures {
			for _, tf := range formations {
				impact := ComputeTacticalImpact(
					Tactics{Formation: of, Posture: op},
					Tactics{Formation: tf, Posture: PostureBalanced},
				)
				for name, v := range map[string]float64{
					"possession": impact.Possession,
					"creation":   impact.Creation,
					"prevention": impact.Prevention,
				} {
					if v < -impactBound || v > impactBound {
						t.Fatalf("%s out of bounds: %.3f (%s %s vs %s)", name, v, of, op, tf)
					}
				}
			}
		}
	}
}
