package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonpilot/pkg/engine/world"
)

func TestApplyDistanceDecay(t *testing.T) {
	assert.InDelta(t, 0.70, applyDistanceDecay(0.70, 0), 1e-9)
	assert.InDelta(t, 0.35, applyDistanceDecay(0.70, 50), 1e-9)
	assert.InDelta(t, 0.35, applyDistanceDecay(0.70, 100), 1e-9)
	assert.InDelta(t, 0.35, applyDistanceDecay(0.70, 400), 1e-9)
	assert.InDelta(t, 0.63, applyDistanceDecay(0.70, 10), 1e-9)
}

func TestPathToHealth_GatedByHealthRatio(t *testing.T) {
	a := NewPathToHealthAction()
	ctx := testContext()
	ctx.Maps[0].Tile(4, 2).Item = healingPotion()

	// Healthy: not worth the walk even though a potion is known.
	assert.False(t, a.IsAvailable(ctx))

	setHealth(ctx, 10) // ratio 0.5
	require.True(t, a.IsAvailable(ctx))

	// Base 0.70, distance 2.
	assert.InDelta(t, 0.70*0.98, a.Utility(ctx), 1e-9)
}

func TestPathToHealth_ExecuteWalksTowardPotion(t *testing.T) {
	a := NewPathToHealthAction()
	ctx := testContext()
	ctx.Maps[0].Tile(4, 2).Item = healingPotion()
	setHealth(ctx, 10)

	agent := NewAgent()
	cmd, ok := a.Execute(ctx, agent, testLogger())
	require.True(t, ok)
	assert.Equal(t, Move(world.East), cmd)
	assert.NotEmpty(t, agent.Path)
	assert.Equal(t, world.Coord{X: 4, Y: 2, Floor: 0}, agent.Path[len(agent.Path)-1])
}

func TestPathToWeapon_KnownUpgrade(t *testing.T) {
	a := NewPathToWeaponAction()
	ctx := testContext()

	assert.False(t, a.IsAvailable(ctx))

	ctx.Maps[0].Tile(2, 4).Item = &world.Item{
		Name: "iron sword", Kind: world.KindWeapon, Slot: world.SlotMainHand, AttackBonus: 3,
	}
	require.True(t, a.IsAvailable(ctx))
	assert.InDelta(t, 0.65*0.98, a.Utility(ctx), 1e-9)
}

func TestPathToQuest_Utility(t *testing.T) {
	a := NewPathToQuestAction()
	ctx := testContext()
	ctx.Maps[0].Tile(2, 0).Item = &world.Item{Name: "sigil", Kind: world.KindQuest}

	require.True(t, a.IsAvailable(ctx))
	assert.InDelta(t, 0.55*0.98, a.Utility(ctx), 1e-9)
}

func TestPathToLoot_IgnoresClassifiedItems(t *testing.T) {
	a := NewPathToLootAction()
	ctx := testContext()
	ctx.Maps[0].Tile(2, 0).Item = healingPotion()

	assert.False(t, a.IsAvailable(ctx), "healing items are not generic loot")

	ctx.Maps[0].Tile(2, 4).Item = &world.Item{Name: "old boot", Kind: world.KindMisc}
	assert.True(t, a.IsAvailable(ctx))
}

// portalContext puts the player on a portal to an unexplored floor, with the
// current floor's exploration ratio adjustable through the explored flags.
func portalContext() *Context {
	ctx := testContext()
	tile := ctx.Maps[0].Tile(2, 2)
	tile.Type = world.TilePortal
	tile.PortalTo = 1

	upper := world.ParseFloor([]string{
		".....",
		"..0..",
		".....",
	})
	upper.ForEachTile(func(x, y int, t *world.Tile) { t.Explored = false })
	ctx.Maps[1] = upper
	return ctx
}

func TestPathToPortal_UtilityGrowsWithExploration(t *testing.T) {
	a := NewPathToPortalAction()
	ctx := portalContext()

	// 25 floor tiles on floor 0; leave 12 unexplored for a ratio near 0.5.
	hidden := 0
	ctx.Maps[0].ForEachTile(func(x, y int, tile *world.Tile) {
		if hidden < 12 && !(x == 2 && y == 2) {
			tile.Explored = false
			hidden++
		}
	})
	require.True(t, a.IsAvailable(ctx))
	assert.InDelta(t, 0.45, a.Utility(ctx), 1e-9, "mostly unexplored floor keeps the urge low")

	// Reveal everything: ratio 1.0 > 0.8, and the portal is at distance 0.
	ctx.Maps[0].ForEachTile(func(x, y int, tile *world.Tile) { tile.Explored = true })
	assert.InDelta(t, 0.55, a.Utility(ctx), 1e-9)
}

func TestPathToPortal_PrefersUnexploredDestination(t *testing.T) {
	a := NewPathToPortalAction()
	ctx := testContext()

	// Two portals: west leads to a fully-explored floor, east to a fresh one.
	west := ctx.Maps[0].Tile(0, 2)
	west.Type = world.TilePortal
	west.PortalTo = 1
	east := ctx.Maps[0].Tile(4, 2)
	east.Type = world.TilePortal
	east.PortalTo = 2

	explored := world.ParseFloor([]string{"0...."})
	fresh := world.ParseFloor([]string{"....0"})
	fresh.ForEachTile(func(x, y int, tile *world.Tile) { tile.Explored = false })
	fresh.Tile(4, 0).Explored = true
	ctx.Maps[1] = explored
	ctx.Maps[2] = fresh

	agent := NewAgent()
	cmd, ok := a.Execute(ctx, agent, testLogger())
	require.True(t, ok)
	assert.Equal(t, Move(world.East), cmd, "the gate to unexplored ground wins")
}
