package brain

import (
	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/world"
)

// UseCombatItemAction throws an offensive consumable at adjacent monsters.
// Worth a turn when a monster is vulnerable to the item's damage type or
// when there are enough targets for the area damage to pay off.
type UseCombatItemAction struct{}

// Name returns the action name
func (a *UseCombatItemAction) Name() string { return "UseCombatItem" }

// IsAvailable requires an offensive consumable and adjacent monsters
func (a *UseCombatItemAction) IsAvailable(ctx *Context) bool {
	return ctx.Player.HasOffensiveItem() && len(ctx.AdjacentMonsters) > 0
}

// Utility is 0.91 against a vulnerable monster or a group of two or more
func (a *UseCombatItemAction) Utility(ctx *Context) float64 {
	if !a.IsAvailable(ctx) {
		return 0
	}
	if ctx.Bestiary == nil {
		return 0
	}

	for _, it := range ctx.Player.Inventory {
		if !it.IsOffensive() || it.DamageType == "" {
			continue
		}
		for _, m := range ctx.AdjacentMonsters {
			if ctx.Bestiary.GetVulnerability(m.Name) == it.DamageType {
				return 0.91
			}
		}
	}

	if len(ctx.AdjacentMonsters) >= 2 {
		return 0.91
	}

	return 0
}

// Execute uses the best offensive item, preferring one whose damage type
// matches an adjacent monster's vulnerability.
func (a *UseCombatItemAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	item := a.pickItem(ctx)
	if item == nil || len(ctx.AdjacentMonsters) == 0 {
		return Command{}, false
	}

	log.Info("using combat item",
		zap.String("item", item.Name),
		zap.String("target", ctx.AdjacentMonsters[0].Name))
	return Use(item.Name), true
}

func (a *UseCombatItemAction) pickItem(ctx *Context) *world.Item {
	var fallback *world.Item
	for _, it := range ctx.Player.Inventory {
		if !it.IsOffensive() {
			continue
		}
		if fallback == nil {
			fallback = it
		}
		if it.DamageType == "" || ctx.Bestiary == nil {
			continue
		}
		for _, m := range ctx.AdjacentMonsters {
			if ctx.Bestiary.GetVulnerability(m.Name) == it.DamageType {
				return it
			}
		}
	}
	return fallback
}
