package brain

import (
	"sort"

	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/world"
	"dungeonpilot/pkg/game/explore"
	"dungeonpilot/pkg/game/scout"
)

// pathToAction is the shared machinery behind the six travel actions. Each
// variant supplies a target scan, a base utility and an optional extra gate;
// the shared part scores by distance decay, plans a route to the nearest
// reachable candidate and advances one step per tick.
type pathToAction struct {
	name string

	// gate is an extra availability condition beyond having targets.
	gate func(ctx *Context) bool

	// targets lists candidate destinations for this variant.
	targets func(ctx *Context) []scout.Target

	// base returns the utility before distance decay.
	base func(ctx *Context) float64

	// riskAware switches to danger-avoiding search when health is low.
	riskAware bool
}

func (a *pathToAction) Name() string { return a.name }

func (a *pathToAction) IsAvailable(ctx *Context) bool {
	if a.gate != nil && !a.gate(ctx) {
		return false
	}
	return len(a.targets(ctx)) > 0
}

func (a *pathToAction) Utility(ctx *Context) float64 {
	if a.gate != nil && !a.gate(ctx) {
		return 0
	}
	targets := a.targets(ctx)
	if len(targets) == 0 {
		return 0
	}
	nearest := targets[0].Distance
	for _, t := range targets[1:] {
		if t.Distance < nearest {
			nearest = t.Distance
		}
	}
	return applyDistanceDecay(a.base(ctx), nearest)
}

// Execute tries candidates nearest-first until a route is found, stores it on
// the agent and takes the first step.
func (a *pathToAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	targets := a.targets(ctx)
	scout.SortByDistance(targets)
	pos := ctx.PlayerCoord()

	for _, target := range targets {
		p := a.planPath(ctx, pos, target.Coord)
		if p == nil {
			continue
		}
		agent.Path = p
		cmd, ok := followPath(ctx, agent, log)
		if !ok {
			continue
		}
		log.Info("walking to target",
			zap.String("action", a.name),
			zap.String("kind", target.Kind),
			zap.Int("x", target.X), zap.Int("y", target.Y), zap.Int("floor", target.Floor),
			zap.Int("steps", len(p)))
		return cmd, true
	}
	return Command{}, false
}

func (a *pathToAction) planPath(ctx *Context, start, goal world.Coord) []world.Coord {
	if a.riskAware && ctx.HealthRatio < 0.7 {
		return ctx.Paths.FindPathRiskAware(ctx.Maps, start, goal, ctx.HealthRatio, true)
	}
	return ctx.Paths.FindPathBFS(ctx.Maps, start, goal, true)
}

// NewPathToHealthAction walks toward a known healing item when health drops
// below 70%, avoiding monster territory the weaker the agent gets.
func NewPathToHealthAction() Action {
	return &pathToAction{
		name:      "PathToHealth",
		riskAware: true,
		gate:      func(ctx *Context) bool { return ctx.HealthRatio < 0.7 },
		targets: func(ctx *Context) []scout.Target {
			return ctx.Targets.FindHealingItems(&ctx.Player, false)
		},
		base: func(ctx *Context) float64 { return 0.70 },
	}
}

// NewPathToWeaponAction walks toward a known weapon upgrade
func NewPathToWeaponAction() Action {
	return &pathToAction{
		name: "PathToWeapon",
		targets: func(ctx *Context) []scout.Target {
			return ctx.Targets.FindBetterWeapons(&ctx.Player, false)
		},
		base: func(ctx *Context) float64 { return 0.65 },
	}
}

// NewPathToArmorAction walks toward a known armor upgrade
func NewPathToArmorAction() Action {
	return &pathToAction{
		name: "PathToArmor",
		targets: func(ctx *Context) []scout.Target {
			return ctx.Targets.FindBetterArmor(&ctx.Player, false)
		},
		base: func(ctx *Context) float64 { return 0.60 },
	}
}

// NewPathToQuestAction walks toward a known quest item, routing around danger
// when weakened.
func NewPathToQuestAction() Action {
	return &pathToAction{
		name:      "PathToQuest",
		riskAware: true,
		targets: func(ctx *Context) []scout.Target {
			return ctx.Targets.FindQuestItems(&ctx.Player, false)
		},
		base: func(ctx *Context) float64 { return 0.55 },
	}
}

// NewPathToLootAction walks toward any remaining known item
func NewPathToLootAction() Action {
	return &pathToAction{
		name: "PathToLoot",
		targets: func(ctx *Context) []scout.Target {
			return ctx.Targets.FindOtherItems(&ctx.Player, false)
		},
		base: func(ctx *Context) float64 { return 0.40 },
	}
}

// NewPathToPortalAction walks toward an unvisited portal or one leading to an
// unfinished floor. Portals to unexplored floors are preferred, and the urge
// to descend grows once the current floor is mostly revealed.
func NewPathToPortalAction() Action {
	return &portalAction{}
}

type portalAction struct{}

func (a *portalAction) Name() string { return "PathToPortal" }

func (a *portalAction) candidates(ctx *Context) []scout.Target {
	pos := ctx.PlayerCoord()
	seen := make(map[world.Coord]bool)
	var targets []scout.Target
	for _, t := range ctx.Explorer.FindPortalsToUnexplored(pos) {
		if !seen[t.Coord] {
			seen[t.Coord] = true
			targets = append(targets, t)
		}
	}
	for _, t := range ctx.Explorer.FindUnvisitedPortals(pos) {
		if !seen[t.Coord] {
			seen[t.Coord] = true
			targets = append(targets, t)
		}
	}
	return targets
}

func (a *portalAction) IsAvailable(ctx *Context) bool {
	return len(a.candidates(ctx)) > 0
}

func (a *portalAction) Utility(ctx *Context) float64 {
	targets := a.candidates(ctx)
	if len(targets) == 0 {
		return 0
	}
	base := 0.45
	if ctx.Explorer.FloorExplorationRatio(ctx.Player.Floor) > 0.8 {
		base = 0.55
	}
	nearest := targets[0].Distance
	for _, t := range targets[1:] {
		if t.Distance < nearest {
			nearest = t.Distance
		}
	}
	return applyDistanceDecay(base, nearest)
}

// Execute prefers portals to unexplored floors, nearest-first within each
// group, and routes through the gate so the stored path continues on the
// destination floor.
func (a *portalAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	targets := a.candidates(ctx)
	sort.SliceStable(targets, func(i, j int) bool {
		pi := targets[i].Kind == explore.KindPortalToUnexplored
		pj := targets[j].Kind == explore.KindPortalToUnexplored
		if pi != pj {
			return pi
		}
		return targets[i].Distance < targets[j].Distance
	})

	pos := ctx.PlayerCoord()
	for _, target := range targets {
		floor := ctx.Maps[target.Floor]
		if floor == nil {
			continue
		}
		tile := floor.Tile(target.X, target.Y)
		if !tile.IsPortal() {
			continue
		}

		dest := world.Coord{X: target.X, Y: target.Y, Floor: tile.PortalTo}
		p := ctx.Paths.FindPathBFS(ctx.Maps, pos, dest, true)
		if p == nil {
			p = ctx.Paths.FindPathBFS(ctx.Maps, pos, target.Coord, true)
		}
		if p == nil {
			continue
		}
		agent.Path = p
		cmd, ok := followPath(ctx, agent, log)
		if !ok {
			continue
		}
		log.Info("walking to portal",
			zap.String("kind", target.Kind),
			zap.Int("x", target.X), zap.Int("y", target.Y),
			zap.Int("floor", target.Floor), zap.Int("to", tile.PortalTo))
		return cmd, true
	}
	return Command{}, false
}
