package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonpilot/pkg/engine/world"
)

func TestExplore_SameFloorUtility(t *testing.T) {
	a := &ExploreAction{}
	ctx := testContext()

	// Fully explored, no portals: nothing left.
	assert.False(t, a.IsAvailable(ctx))

	ctx.Maps[0].Tile(4, 4).Explored = false
	require.True(t, a.IsAvailable(ctx))
	assert.Equal(t, 0.30, a.Utility(ctx))
}

func TestExplore_CrossFloorUtility(t *testing.T) {
	a := &ExploreAction{}
	ctx := testContext()

	// Current floor done; the frontier is behind a gate.
	gate := ctx.Maps[0].Tile(4, 2)
	gate.Type = world.TilePortal
	gate.PortalTo = 1
	upper := world.ParseFloor([]string{
		".....",
		".....",
		"....0",
	})
	upper.Tile(0, 0).Explored = false
	ctx.Maps[1] = upper

	require.True(t, a.IsAvailable(ctx))
	assert.Equal(t, 0.50, a.Utility(ctx))
}

func TestExplore_ExecuteStepsTowardFrontier(t *testing.T) {
	a := &ExploreAction{}
	ctx := testContext()
	ctx.Maps[0].Tile(4, 2).Explored = false

	agent := NewAgent()
	cmd, ok := a.Execute(ctx, agent, testLogger())
	require.True(t, ok)
	assert.Equal(t, Move(world.East), cmd)
	assert.NotEmpty(t, agent.Path)
}

func TestRandomMove_Utility(t *testing.T) {
	a := &RandomMoveAction{}
	ctx := testContext()

	assert.True(t, a.IsAvailable(ctx))
	assert.Equal(t, 0.10, a.Utility(ctx))

	ctx.LoopBreakerActive = true
	assert.Equal(t, 0.99, a.Utility(ctx))
}

func TestRandomMove_AlwaysProducesACommand(t *testing.T) {
	a := &RandomMoveAction{}
	ctx := testContext()

	cmd, ok := a.Execute(ctx, NewAgent(), testLogger())
	require.True(t, ok)
	assert.True(t, cmd.IsMove())
}

func TestRandomMove_LookWhenFullyEnclosed(t *testing.T) {
	a := &RandomMoveAction{}
	ctx := testContext(
		"###",
		"#.#",
		"###",
	)
	ctx.Player.X, ctx.Player.Y = 1, 1

	cmd, ok := a.Execute(ctx, NewAgent(), testLogger())
	require.True(t, ok)
	assert.Equal(t, Look(), cmd)
}

func TestRandomMove_AvoidsReversingLastMove(t *testing.T) {
	a := &RandomMoveAction{}
	ctx := testContext()

	agent := NewAgent()
	agent.LastMove = Move(world.East)

	// With a real choice available, the agent never walks straight back.
	for i := 0; i < 20; i++ {
		agent.LastMove = Move(world.East)
		cmd, ok := a.Execute(ctx, agent, testLogger())
		require.True(t, ok)
		dir, _ := cmd.Direction()
		assert.NotEqual(t, world.West, dir)
	}
}

func TestRandomMove_PrefersMonsterFreeTiles(t *testing.T) {
	// Corridor: monster east, open floor west.
	ctx := testContext(
		"###",
		".@!",
		"###",
	)
	ctx.Player.X, ctx.Player.Y = 1, 1
	ctx.Maps[0].Tile(2, 1).Monster = "goblin"

	a := &RandomMoveAction{}
	for i := 0; i < 10; i++ {
		cmd, ok := a.Execute(ctx, NewAgent(), testLogger())
		require.True(t, ok)
		assert.Equal(t, Move(world.West), cmd)
	}
}

func TestRandomMove_NilRandStillMoves(t *testing.T) {
	ctx := testContext()
	ctx.Rand = nil

	a := &RandomMoveAction{}
	cmd, ok := a.Execute(ctx, NewAgent(), testLogger())
	require.True(t, ok)
	assert.True(t, cmd.IsMove())
}
