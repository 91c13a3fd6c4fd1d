package brain

import (
	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/world"
)

// Action is the capability contract every decision variant implements.
//
// IsAvailable is a cheap precondition check. Utility is pure and
// deterministic: it reads only the context and returns a desirability score
// in [0,1]. Execute performs one side effect on the agent and returns the
// command to issue; a false result is a soft failure (something degraded
// between scoring and execution) and never an error.
type Action interface {
	Name() string
	IsAvailable(ctx *Context) bool
	Utility(ctx *Context) float64
	Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool)
}

// applyDistanceDecay reduces utility for distant targets, bottoming out at
// half the base so far-away targets of a higher tier still outrank nearer
// targets of a lower one.
func applyDistanceDecay(base float64, distance int) float64 {
	decay := 1.0 - float64(distance)/100.0
	if decay < 0.5 {
		decay = 0.5
	}
	return base * decay
}

// followPath advances the agent one step along its stored path. The step is
// revalidated against the visible map before moving: it must be explored and
// walkable, and monster-occupied only if it is the final step. Anything
// stale clears the path and soft-fails so the calculator can fall through.
func followPath(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	pos := ctx.PlayerCoord()

	// Trim the tile we stand on, and the entry endpoint of a portal hop the
	// engine already carried us through. A hop leaves two leading entries at
	// our point (entry gate on the old floor, then our tile); stopping once
	// an entry on the current floor is consumed keeps a not-yet-taken hop
	// intact when the path was planned from atop a gate.
	for len(agent.Path) > 0 && agent.Path[0].Point() == pos.Point() {
		onCurrentFloor := agent.Path[0].Floor == pos.Floor
		agent.Path = agent.Path[1:]
		if onCurrentFloor {
			break
		}
	}
	if len(agent.Path) == 0 {
		agent.ClearPath()
		return Command{}, false
	}

	next := agent.Path[0]
	if next.Point() == pos.Point() && next.Floor != pos.Floor {
		// The path crosses through the gate under our feet, but the engine
		// only teleports on entry. Step aside so the next tick re-enters.
		return stepAside(ctx, agent, log)
	}

	dir, ok := world.DirectionBetween(pos.Point(), next.Point())
	if !ok {
		agent.ClearPath()
		return Command{}, false
	}

	stepFloor := next.Floor
	if stepFloor != pos.Floor {
		// A cross-floor step is valid only through an adjacent gate on our
		// own floor leading to the path's floor.
		gate := gateTile(ctx, pos.Floor, next.Point())
		if gate == nil || gate.PortalTo != next.Floor {
			agent.ClearPath()
			return Command{}, false
		}
		stepFloor = pos.Floor
	}

	floor := ctx.Maps[stepFloor]
	if floor == nil {
		agent.ClearPath()
		return Command{}, false
	}
	tile := floor.Tile(next.X, next.Y)
	if tile == nil || !tile.Explored || tile.IsWall() {
		agent.ClearPath()
		return Command{}, false
	}
	if tile.HasMonster() && len(agent.Path) > 1 {
		agent.ClearPath()
		return Command{}, false
	}

	cmd := Move(dir)
	agent.LastMove = cmd
	log.Debug("following path",
		zap.String("direction", dir.String()),
		zap.Int("x", next.X), zap.Int("y", next.Y), zap.Int("floor", next.Floor))
	return cmd, true
}

// gateTile returns the explored portal tile at the given point of the given
// floor, or nil.
func gateTile(ctx *Context, floorID int, p world.Point) *world.Tile {
	floor := ctx.Maps[floorID]
	if floor == nil {
		return nil
	}
	tile := floor.Tile(p.X, p.Y)
	if tile == nil || !tile.Explored || !tile.IsPortal() {
		return nil
	}
	return tile
}

// stepAside moves one tile off the gate the agent is standing on, keeping the
// stored path so the following tick walks back in and takes the hop. With no
// free neighbor the path is dropped.
func stepAside(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	pos := ctx.PlayerCoord()
	floor := ctx.CurrentFloor()
	if floor == nil {
		agent.ClearPath()
		return Command{}, false
	}
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		tile := floor.Tile(pos.X+dx, pos.Y+dy)
		if tile == nil || !tile.Explored || tile.IsWall() || tile.HasMonster() {
			continue
		}
		cmd := Move(dir)
		agent.LastMove = cmd
		log.Debug("stepping off the gate to re-enter it",
			zap.String("direction", dir.String()))
		return cmd, true
	}
	agent.ClearPath()
	return Command{}, false
}
