package brain

import (
	"math/rand"

	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/path"
	"dungeonpilot/pkg/engine/world"
	"dungeonpilot/pkg/game/bestiary"
	"dungeonpilot/pkg/game/explore"
	"dungeonpilot/pkg/game/scout"
	"dungeonpilot/pkg/game/view"
)

// testContext builds a healthy player standing in the middle of a small open
// room. Individual tests tweak the fields they care about.
func testContext(rows ...string) *Context {
	if len(rows) == 0 {
		rows = []string{
			".....",
			".....",
			".....",
			".....",
			".....",
		}
	}
	maps := map[int]*world.Floor{0: world.ParseFloor(rows)}
	finder := path.NewFinder()

	ctx := &Context{
		Player: view.Player{
			X: 2, Y: 2, Floor: 0,
			Health: 20, MaxHealth: 20,
			Attack: 5, Defense: 1,
			Equipped: map[string]*world.Item{},
		},
		SurvivalThreshold: 0.3,
		Maps:              maps,
		Paths:             finder,
		Bestiary:          testBestiary(),
		Explorer:          explore.New(maps, finder),
		Targets:           scout.NewFinder(maps),
		Rand:              rand.New(rand.NewSource(1)),
	}
	ctx.HealthRatio = ctx.Player.HealthRatio()
	return ctx
}

func testBestiary() *bestiary.Bestiary {
	return bestiary.New([]bestiary.Stats{
		{Name: "rat", Health: 6, AttackPower: 1},
		{Name: "goblin", Health: 8, AttackPower: 2},
		{Name: "skeleton", Health: 10, AttackPower: 3, Defense: 1, Vulnerability: "fire"},
		{Name: "wraith", Health: 12, AttackPower: 5, Evasion: 0.2, Resistance: "fire"},
		{Name: "giant", Health: 40, AttackPower: 9, Defense: 4},
	})
}

// addAdjacentMonster drops a monster next to the player, on both the map and
// the context's adjacency list.
func addAdjacentMonster(ctx *Context, name string, dir world.Direction) {
	dx, dy := dir.Delta()
	x, y := ctx.Player.X+dx, ctx.Player.Y+dy
	ctx.Maps[ctx.Player.Floor].Tile(x, y).Monster = name
	ctx.AdjacentMonsters = append(ctx.AdjacentMonsters, view.Monster{Name: name, X: x, Y: y})
}

func setHealth(ctx *Context, health int) {
	ctx.Player.Health = health
	ctx.HealthRatio = ctx.Player.HealthRatio()
}

func healingPotion() *world.Item {
	return &world.Item{Name: "healing potion", Kind: world.KindHeal, HealAmount: 10}
}

func firePotion() *world.Item {
	return &world.Item{Name: "fire potion", Kind: world.KindOffensive, DamageType: "fire"}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
