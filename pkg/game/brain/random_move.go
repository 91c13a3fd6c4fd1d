package brain

import (
	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/world"
)

// RandomMoveAction is the guaranteed fallback: it is always available and
// always produces a command, down to a look when the agent is fully enclosed.
// Under an active loop breaker it jumps to near the top of the ranking to
// shake the agent out of a repeating pattern.
type RandomMoveAction struct{}

// Name returns the action name
func (a *RandomMoveAction) Name() string { return "RandomMove" }

// IsAvailable is always true
func (a *RandomMoveAction) IsAvailable(ctx *Context) bool { return true }

// Utility is 0.99 while the loop breaker runs, 0.10 otherwise
func (a *RandomMoveAction) Utility(ctx *Context) float64 {
	if ctx.LoopBreakerActive {
		return 0.99
	}
	return 0.10
}

// Execute moves in a random passable direction, preferring monster-free
// tiles and avoiding an immediate reversal of the last move when there is a
// choice.
func (a *RandomMoveAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	pos := ctx.PlayerCoord()

	var safe, risky []world.Direction
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		x, y := pos.X+dx, pos.Y+dy
		floor := ctx.CurrentFloor()
		if floor == nil {
			break
		}
		tile := floor.Tile(x, y)
		if tile == nil || !tile.Explored || tile.IsWall() {
			continue
		}
		if tile.HasMonster() {
			risky = append(risky, dir)
			continue
		}
		safe = append(safe, dir)
	}

	options := safe
	if len(options) == 0 {
		options = risky
	}
	if len(options) == 0 {
		log.Info("nowhere to move, looking around")
		return Look(), true
	}

	if len(options) > 1 {
		filtered := options[:0:0]
		for _, dir := range options {
			if !Move(dir).Reverses(agent.LastMove) {
				filtered = append(filtered, dir)
			}
		}
		if len(filtered) > 0 {
			options = filtered
		}
	}

	dir := options[0]
	if ctx.Rand != nil {
		dir = options[ctx.Rand.Intn(len(options))]
	}
	cmd := Move(dir)
	agent.LastMove = cmd
	log.Info("moving at random", zap.String("direction", dir.String()),
		zap.Bool("loop_breaker", ctx.LoopBreakerActive))
	return cmd, true
}
