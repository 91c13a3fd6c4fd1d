package brain

import (
	"go.uber.org/zap"
)

// ExploreAction walks toward the nearest exploration frontier. Crossing to
// another floor scores higher than pushing the current one, so a finished
// floor is left behind promptly.
type ExploreAction struct{}

// Name returns the action name
func (a *ExploreAction) Name() string { return "Explore" }

// IsAvailable requires a reachable frontier somewhere
func (a *ExploreAction) IsAvailable(ctx *Context) bool {
	return ctx.Explorer.FindExplorationPath(ctx.PlayerCoord()) != nil
}

// Utility is 0.30 for a same-floor frontier, 0.50 when the route ends on
// another floor.
func (a *ExploreAction) Utility(ctx *Context) float64 {
	p := ctx.Explorer.FindExplorationPath(ctx.PlayerCoord())
	if p == nil {
		return 0
	}
	if p[len(p)-1].Floor != ctx.Player.Floor {
		return 0.50
	}
	return 0.30
}

// Execute stores the frontier route on the agent and takes the first step
func (a *ExploreAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	p := ctx.Explorer.FindExplorationPath(ctx.PlayerCoord())
	if p == nil {
		return Command{}, false
	}
	agent.Path = p
	cmd, ok := followPath(ctx, agent, log)
	if !ok {
		return Command{}, false
	}
	dest := p[len(p)-1]
	log.Info("exploring",
		zap.Int("x", dest.X), zap.Int("y", dest.Y), zap.Int("floor", dest.Floor),
		zap.Int("steps", len(p)))
	return cmd, true
}
