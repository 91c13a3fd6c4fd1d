package brain

import (
	"go.uber.org/zap"
)

// HealAction uses a healing item when health is low.
//
// Scores: 1.0 at or below the survival threshold; 0.98 when an adjacent
// monster's single hit could leave us critical; 0.96 below half health
// facing a danger-3+ monster; otherwise 0.
type HealAction struct{}

// Name returns the action name
func (a *HealAction) Name() string { return "Heal" }

// IsAvailable requires a healing item and missing health
func (a *HealAction) IsAvailable(ctx *Context) bool {
	return ctx.Player.HasHealingItem() && ctx.Player.Health < ctx.Player.MaxHealth
}

// Utility scores healing by health status and the adjacent combat situation
func (a *HealAction) Utility(ctx *Context) float64 {
	if !a.IsAvailable(ctx) {
		return 0
	}

	if ctx.HealthRatio <= ctx.SurvivalThreshold {
		return 1.0
	}

	// Pre-combat healing: only worth a turn when monsters are already on
	// us and health is risky.
	if len(ctx.AdjacentMonsters) > 0 && ctx.Bestiary != nil {
		if ctx.HealthRatio >= 0.8 {
			return 0
		}

		maxIncoming := 0
		for _, m := range ctx.AdjacentMonsters {
			if ap := ctx.Bestiary.GetAttackPower(m.Name); ap > maxIncoming {
				maxIncoming = ap
			}
		}
		if float64(ctx.Player.Health) <= float64(maxIncoming)*1.5 {
			return 0.98
		}

		if ctx.HealthRatio <= 0.5 {
			maxDanger := 0
			for _, m := range ctx.AdjacentMonsters {
				if d := ctx.Bestiary.DangerRating(m.Name); d > maxDanger {
					maxDanger = d
				}
			}
			if maxDanger >= 3 {
				return 0.96
			}
		}
	}

	return 0
}

// Execute uses the first healing item in the inventory
func (a *HealAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	for _, it := range ctx.Player.Inventory {
		if it.IsHealing() {
			log.Info("using healing item", zap.String("item", it.Name),
				zap.Int("health", ctx.Player.Health), zap.Int("max_health", ctx.Player.MaxHealth))
			return Use(it.Name), true
		}
	}
	return Command{}, false
}
