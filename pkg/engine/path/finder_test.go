package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonpilot/pkg/engine/world"
)

func TestFindPathAStar_StraightLine(t *testing.T) {
	floor := world.ParseFloor([]string{
		".....",
	})

	f := NewFinder()
	p := f.FindPathAStar(floor, world.Point{X: 0, Y: 0}, world.Point{X: 4, Y: 0})

	require.NotNil(t, p)
	assert.Len(t, p, 5)
	assert.Equal(t, world.Point{X: 0, Y: 0}, p[0])
	assert.Equal(t, world.Point{X: 4, Y: 0}, p[4])
}

func TestFindPathAStar_RoutesAroundWall(t *testing.T) {
	floor := world.ParseFloor([]string{
		"...",
		".#.",
		"...",
	})

	f := NewFinder()
	p := f.FindPathAStar(floor, world.Point{X: 0, Y: 1}, world.Point{X: 2, Y: 1})

	require.NotNil(t, p)
	// Shortest detour around the center wall is 5 tiles.
	assert.Len(t, p, 5)
	for _, step := range p {
		assert.False(t, floor.Tile(step.X, step.Y).IsWall(), "path crosses a wall at %v", step)
	}
}

func TestFindPathAStar_NoPath(t *testing.T) {
	floor := world.ParseFloor([]string{
		".#.",
	})

	f := NewFinder()
	p := f.FindPathAStar(floor, world.Point{X: 0, Y: 0}, world.Point{X: 2, Y: 0})
	assert.Nil(t, p)
}

func TestFindPathBFS_CrossFloorThroughPortal(t *testing.T) {
	maps := map[int]*world.Floor{
		0: world.ParseFloor([]string{"S.1"}),
		1: world.ParseFloor([]string{"G.0"}),
	}

	f := NewFinder()
	p := f.FindPathBFS(maps,
		world.Coord{X: 0, Y: 0, Floor: 0},
		world.Coord{X: 0, Y: 0, Floor: 1},
		true)

	require.NotNil(t, p)
	want := []world.Coord{
		{X: 0, Y: 0, Floor: 0},
		{X: 1, Y: 0, Floor: 0},
		{X: 2, Y: 0, Floor: 0},
		{X: 2, Y: 0, Floor: 1},
		{X: 1, Y: 0, Floor: 1},
		{X: 0, Y: 0, Floor: 1},
	}
	assert.Equal(t, want, p)
}

func TestFindPathBFS_UnexploredBlocksWhenRequired(t *testing.T) {
	floor := world.ParseFloor([]string{"..."})
	floor.Tile(1, 0).Explored = false
	maps := map[int]*world.Floor{0: floor}

	f := NewFinder()
	start := world.Coord{X: 0, Y: 0, Floor: 0}
	goal := world.Coord{X: 2, Y: 0, Floor: 0}

	assert.Nil(t, f.FindPathBFS(maps, start, goal, true))
	assert.NotNil(t, f.FindPathBFS(maps, start, goal, false))
}

func TestFindPathBFS_MonsterBlocksUnlessGoal(t *testing.T) {
	floor := world.ParseFloor([]string{"..."})
	floor.Tile(1, 0).Monster = "goblin"
	maps := map[int]*world.Floor{0: floor}

	f := NewFinder()
	start := world.Coord{X: 0, Y: 0, Floor: 0}

	// Monster tile as an intermediate step: blocked.
	assert.Nil(t, f.FindPathBFS(maps, start, world.Coord{X: 2, Y: 0, Floor: 0}, true))

	// Monster tile as the goal: allowed, the agent attacks into it.
	assert.NotNil(t, f.FindPathBFS(maps, start, world.Coord{X: 1, Y: 0, Floor: 0}, true))
}

func TestFindPathRiskAware_AvoidsDangerWhenHurt(t *testing.T) {
	// Open room with a monster on the north edge. Avoidance cost dwarfs the
	// detour cost, so a hurt agent swings south of the danger radius.
	floor := world.ParseFloor([]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	})
	floor.Tile(3, 0).Monster = "orc"
	maps := map[int]*world.Floor{0: floor}

	f := NewFinder()
	start := world.Coord{X: 0, Y: 0, Floor: 0}
	goal := world.Coord{X: 6, Y: 0, Floor: 0}

	hurt := f.FindPathRiskAware(maps, start, goal, 0.2, true)
	require.NotNil(t, hurt)

	maxY := 0
	for _, c := range hurt {
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	assert.Greater(t, maxY, f.DangerRadius, "hurt agent should detour outside the danger zone")

	healthy := f.FindPathRiskAware(maps, start, goal, 1.0, true)
	require.NotNil(t, healthy)
	assert.LessOrEqual(t, len(healthy), len(hurt))
}
