package brain

import (
	"math/rand"

	"dungeonpilot/pkg/engine/path"
	"dungeonpilot/pkg/engine/world"
	"dungeonpilot/pkg/game/bestiary"
	"dungeonpilot/pkg/game/explore"
	"dungeonpilot/pkg/game/scout"
	"dungeonpilot/pkg/game/view"
)

// Context is the immutable per-tick snapshot every action scores against.
// It is built fresh each tick by the surrounding engine, never mutated by an
// action, and discarded after the tick.
type Context struct {
	// Player state.
	Player view.Player

	// Precomputed flags, derived by the context builder from the player
	// state and a short position/command history. Actions never re-derive
	// these.
	HealthRatio       float64
	SurvivalThreshold float64
	IsCornered        bool
	IsInLoop          bool
	LoopBreakerActive bool

	// Monsters on the four cardinal neighbors of the player's tile.
	AdjacentMonsters []view.Monster

	// Item on the tile the player stands on, if any.
	CurrentTileItem *world.Item

	// Snapshot of the agent's current path, if one is being followed.
	CurrentPath []world.Coord

	// Explored per-floor map views.
	Maps map[int]*world.Floor

	// Collaborators.
	Paths    *path.Finder
	Bestiary *bestiary.Bestiary
	Explorer *explore.Explorer
	Targets  *scout.Finder

	// Seedable random source for reproducible runs.
	Rand *rand.Rand
}

// PlayerCoord returns the player's position including floor
func (ctx *Context) PlayerCoord() world.Coord {
	return ctx.Player.Coord()
}

// CurrentFloor returns the visible map of the player's floor, or nil
func (ctx *Context) CurrentFloor() *world.Floor {
	return ctx.Maps[ctx.Player.Floor]
}

// IsLowHealth returns true when health is at or below the survival threshold
func (ctx *Context) IsLowHealth() bool {
	return ctx.HealthRatio <= ctx.SurvivalThreshold
}

// HasAdjacentMonsters returns true if any monster stands next to the player
func (ctx *Context) HasAdjacentMonsters() bool {
	return len(ctx.AdjacentMonsters) > 0
}

// CurrentTileHasQuestItem returns true if the item underfoot is a quest item
func (ctx *Context) CurrentTileHasQuestItem() bool {
	return ctx.CurrentTileItem.IsQuest()
}

// isSafeStep reports whether the agent could stand on the given position:
// in bounds, known, not a wall, and not monster-occupied.
func (ctx *Context) isSafeStep(x, y int) bool {
	floor := ctx.CurrentFloor()
	if floor == nil {
		return false
	}
	tile := floor.Tile(x, y)
	return tile != nil && tile.Explored && !tile.IsWall() && !tile.HasMonster()
}
