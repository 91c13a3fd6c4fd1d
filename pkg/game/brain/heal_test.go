package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonpilot/pkg/engine/world"
)

func TestHeal_Unavailable(t *testing.T) {
	a := &HealAction{}
	ctx := testContext()

	// Full health, no item.
	assert.False(t, a.IsAvailable(ctx))

	// Item but full health.
	ctx.Player.Inventory = append(ctx.Player.Inventory, healingPotion())
	assert.False(t, a.IsAvailable(ctx))

	// Hurt: now worth considering.
	setHealth(ctx, 10)
	assert.True(t, a.IsAvailable(ctx))
}

func TestHeal_FullUtilityBelowThreshold(t *testing.T) {
	a := &HealAction{}
	ctx := testContext()
	ctx.Player.Inventory = append(ctx.Player.Inventory, healingPotion())
	ctx.SurvivalThreshold = 0.5
	setHealth(ctx, 8) // ratio 0.4

	assert.Equal(t, 1.0, a.Utility(ctx))
}

func TestHeal_ZeroWhenSafeAndHealthy(t *testing.T) {
	a := &HealAction{}
	ctx := testContext()
	ctx.Player.Inventory = append(ctx.Player.Inventory, healingPotion())
	setHealth(ctx, 15) // ratio 0.75, above threshold, no monsters

	assert.Zero(t, a.Utility(ctx))
}

func TestHeal_PreCombatTopUp(t *testing.T) {
	a := &HealAction{}
	ctx := testContext()
	ctx.Player.Inventory = append(ctx.Player.Inventory, healingPotion())
	addAdjacentMonster(ctx, "wraith", world.North) // attack power 5

	// Ratio 0.8 or above gates pre-combat healing off entirely.
	setHealth(ctx, 16)
	assert.Zero(t, a.Utility(ctx))

	// health 7 <= 5*1.5: one hit from critical.
	setHealth(ctx, 7)
	assert.Equal(t, 0.98, a.Utility(ctx))
}

func TestHeal_DangerousNeighborAtHalfHealth(t *testing.T) {
	a := &HealAction{}
	ctx := testContext()
	ctx.Player.Inventory = append(ctx.Player.Inventory, healingPotion())
	addAdjacentMonster(ctx, "giant", world.North) // danger rating 5
	setHealth(ctx, 10)                            // ratio 0.5

	u := a.Utility(ctx)
	// health 10 <= 9*1.5 triggers the stronger rule first.
	assert.Equal(t, 0.98, u)
}

func TestHeal_DangerRuleWithoutImminentKill(t *testing.T) {
	a := &HealAction{}
	ctx := testContext()
	ctx.Player.MaxHealth = 40
	ctx.Player.Inventory = append(ctx.Player.Inventory, healingPotion())
	addAdjacentMonster(ctx, "wraith", world.North) // danger rating 4, attack 5
	setHealth(ctx, 20)                             // ratio 0.5, health > 5*1.5

	assert.Equal(t, 0.96, a.Utility(ctx))
}

func TestHeal_ExecuteUsesFirstHealingItem(t *testing.T) {
	a := &HealAction{}
	ctx := testContext()
	ctx.Player.Inventory = []*world.Item{
		{Name: "old boot", Kind: world.KindMisc},
		healingPotion(),
	}
	setHealth(ctx, 5)

	cmd, ok := a.Execute(ctx, NewAgent(), testLogger())
	require.True(t, ok)
	assert.Equal(t, Use("healing potion"), cmd)
}
