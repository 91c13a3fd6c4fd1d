package brain

import (
	"go.uber.org/zap"
)

// PickupItemAction takes the item on the current tile. Quest items outrank
// nearly everything; picking one up can win the game.
type PickupItemAction struct{}

// Name returns the action name
func (a *PickupItemAction) Name() string { return "PickupItem" }

// IsAvailable requires an item underfoot
func (a *PickupItemAction) IsAvailable(ctx *Context) bool {
	return ctx.CurrentTileItem != nil
}

// Utility is 0.99 for quest items, 0.80 otherwise
func (a *PickupItemAction) Utility(ctx *Context) float64 {
	if !a.IsAvailable(ctx) {
		return 0
	}
	if ctx.CurrentTileHasQuestItem() {
		return 0.99
	}
	return 0.80
}

// Execute takes the item and drops any stored path
func (a *PickupItemAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	if ctx.CurrentTileItem == nil {
		return Command{}, false
	}
	log.Info("taking item on current tile", zap.String("item", ctx.CurrentTileItem.Name))
	agent.ClearPath()
	return Take(ctx.CurrentTileItem.Name), true
}
