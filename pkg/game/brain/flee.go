package brain

import (
	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/world"
)

// FleeAction retreats from adjacent monsters when health is low and an
// escape route exists.
type FleeAction struct{}

// Name returns the action name
func (a *FleeAction) Name() string { return "Flee" }

// IsAvailable requires adjacent monsters, an escape route, and low health
func (a *FleeAction) IsAvailable(ctx *Context) bool {
	return len(ctx.AdjacentMonsters) > 0 && !ctx.IsCornered && ctx.IsLowHealth()
}

// Utility is a high flat score when fleeing is on the table
func (a *FleeAction) Utility(ctx *Context) float64 {
	if !a.IsAvailable(ctx) {
		return 0
	}
	return 0.95
}

// Execute moves away from the threat. Directions are scored by distance from
// the centroid of adjacent monster positions plus an exit bonus that avoids
// dead ends; if no scored direction works, any safe move is taken at random.
func (a *FleeAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	if dir, ok := a.bestFleeDirection(ctx); ok {
		log.Info("fleeing from monsters", zap.String("direction", dir.String()))
		cmd := Move(dir)
		agent.LastMove = cmd
		return cmd, true
	}

	safe := a.safeDirections(ctx)
	if len(safe) > 0 && ctx.Rand != nil {
		dir := safe[ctx.Rand.Intn(len(safe))]
		log.Info("fleeing from monsters", zap.String("direction", dir.String()))
		cmd := Move(dir)
		agent.LastMove = cmd
		return cmd, true
	}

	return Command{}, false
}

func (a *FleeAction) safeDirections(ctx *Context) []world.Direction {
	var safe []world.Direction
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		if ctx.isSafeStep(ctx.Player.X+dx, ctx.Player.Y+dy) {
			safe = append(safe, dir)
		}
	}
	return safe
}

func (a *FleeAction) countExits(ctx *Context, x, y int) int {
	exits := 0
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		if ctx.isSafeStep(x+dx, y+dy) {
			exits++
		}
	}
	return exits
}

// bestFleeDirection picks the safe direction that maximizes distance from
// the threat centroid while avoiding dead ends.
func (a *FleeAction) bestFleeDirection(ctx *Context) (world.Direction, bool) {
	if len(ctx.AdjacentMonsters) == 0 {
		return world.North, false
	}

	var sumX, sumY float64
	for _, m := range ctx.AdjacentMonsters {
		sumX += float64(m.X)
		sumY += float64(m.Y)
	}
	threatX := sumX / float64(len(ctx.AdjacentMonsters))
	threatY := sumY / float64(len(ctx.AdjacentMonsters))

	best := world.North
	bestScore := 0.0
	found := false

	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		nx, ny := ctx.Player.X+dx, ctx.Player.Y+dy
		if !ctx.isSafeStep(nx, ny) {
			continue
		}

		dist := absFloat(float64(nx)-threatX) + absFloat(float64(ny)-threatY)

		exits := a.countExits(ctx, nx, ny)
		var exitBonus float64
		switch {
		case exits <= 1:
			exitBonus = -10 // dead end
		case exits == 2:
			exitBonus = 0 // corridor or corner
		default:
			exitBonus = float64(exits)
		}

		score := dist + exitBonus
		if !found || score > bestScore {
			found = true
			bestScore = score
			best = dir
		}
	}
	return best, found
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
