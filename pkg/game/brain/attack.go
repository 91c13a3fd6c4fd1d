package brain

import (
	"go.uber.org/zap"

	"dungeonpilot/pkg/game/view"
)

// AttackAction fights an adjacent monster.
//
// Scores: 0.90 when cornered (no choice), 0.85 when some adjacent monster is
// safe to engage, 0.35 as a risky last resort.
type AttackAction struct{}

// Name returns the action name
func (a *AttackAction) Name() string { return "Attack" }

// IsAvailable requires at least one adjacent monster
func (a *AttackAction) IsAvailable(ctx *Context) bool {
	return len(ctx.AdjacentMonsters) > 0
}

// Utility scores combat by the safety estimate against each adjacent monster
func (a *AttackAction) Utility(ctx *Context) float64 {
	if !a.IsAvailable(ctx) {
		return 0
	}

	if ctx.IsCornered {
		return 0.90
	}

	for _, m := range ctx.AdjacentMonsters {
		if isSafeToEngage(ctx, m.Name) {
			return 0.85
		}
	}

	return 0.35
}

// Execute attacks the least dangerous safely-engageable adjacent monster,
// falling back to a random adjacent one. Committing to a fight drops any
// stored path.
func (a *AttackAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	target, ok := safestAdjacentMonster(ctx)
	if !ok {
		if len(ctx.AdjacentMonsters) == 0 || ctx.Rand == nil {
			return Command{}, false
		}
		target = ctx.AdjacentMonsters[ctx.Rand.Intn(len(ctx.AdjacentMonsters))]
	}

	log.Info("attacking adjacent monster", zap.String("monster", target.Name))
	agent.ClearPath()
	return Attack(target.Name), true
}

// isSafeToEngage estimates whether a melee fight with the named monster is
// winnable without critical damage, using bestiary knowledge only.
func isSafeToEngage(ctx *Context, monsterName string) bool {
	if ctx.Bestiary == nil {
		return false
	}
	stats := ctx.Bestiary.GetStats(monsterName)

	effectiveDamage := ctx.Player.Attack - stats.Defense
	if effectiveDamage < 1 {
		effectiveDamage = 1
	}
	turnsToKill := (stats.Health + effectiveDamage - 1) / effectiveDamage

	incoming := stats.AttackPower - ctx.Player.Defense
	if incoming < 0 {
		incoming = 0
	}
	expectedDamage := turnsToKill * incoming

	// Could die in a hit or two.
	if ctx.Player.Health <= stats.AttackPower*2 {
		return false
	}
	if expectedDamage >= ctx.Player.Health {
		return false
	}

	// Avoid fights that leave us nearly dead with nothing to heal with.
	remaining := ctx.Player.Health - expectedDamage
	if float64(remaining) < float64(ctx.Player.MaxHealth)*0.15 && !ctx.Player.HasHealingItem() {
		return false
	}

	return true
}

// safestAdjacentMonster returns the lowest-danger adjacent monster that is
// safe to engage.
func safestAdjacentMonster(ctx *Context) (view.Monster, bool) {
	var best view.Monster
	bestDanger := 0
	found := false
	for _, m := range ctx.AdjacentMonsters {
		if !isSafeToEngage(ctx, m.Name) {
			continue
		}
		danger := ctx.Bestiary.DangerRating(m.Name)
		if !found || danger < bestDanger {
			found = true
			bestDanger = danger
			best = m
		}
	}
	return best, found
}
