package sim

import (
	"math/rand"
	"strconv"

	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/path"
	"dungeonpilot/pkg/engine/world"
	"dungeonpilot/pkg/game/bestiary"
	"dungeonpilot/pkg/game/brain"
	"dungeonpilot/pkg/game/config"
	"dungeonpilot/pkg/game/explore"
	"dungeonpilot/pkg/game/scout"
	"dungeonpilot/pkg/game/view"
)

// Player is the real character state. The agent only ever sees the
// view.Player projection built from it.
type Player struct {
	X, Y, Floor int

	Health    int
	MaxHealth int
	Attack    int
	Defense   int

	Inventory []*world.Item
	Equipped  map[string]*world.Item
}

// EffectiveAttack is base attack plus equipment bonuses
func (p *Player) EffectiveAttack() int {
	total := p.Attack
	for _, it := range p.Equipped {
		if it != nil {
			total += it.AttackBonus
		}
	}
	return total
}

// EffectiveDefense is base defense plus equipment bonuses
func (p *Player) EffectiveDefense() int {
	total := p.Defense
	for _, it := range p.Equipped {
		if it != nil {
			total += it.DefenseBonus
		}
	}
	return total
}

// Outcome is how a run ended.
type Outcome string

// Run outcomes
const (
	OutcomeWin     Outcome = "win"
	OutcomeDead    Outcome = "dead"
	OutcomeTimeout Outcome = "timeout"
	OutcomeRunning Outcome = "running"
)

// Engine owns the real world, the agent's visible projection of it, and the
// turn loop wiring them to the decision core.
type Engine struct {
	cfg *config.Config
	log *zap.Logger
	rng *rand.Rand

	dungeon *Dungeon
	visible map[int]*world.Floor
	player  *Player

	agent    *brain.Agent
	calc     *brain.Calculator
	finder   *path.Finder
	explorer *explore.Explorer
	targets  *scout.Finder
	bestiary *bestiary.Bestiary

	tick           int
	questCollected int
	lastCommand    brain.Command
	messages       []string
}

// NewEngine assembles a run over a freshly generated dungeon.
func NewEngine(cfg *config.Config, bst *bestiary.Bestiary, rng *rand.Rand, log *zap.Logger) *Engine {
	d := Generate(rng, cfg.Sim.Floors, cfg.Sim.FloorWidth, cfg.Sim.FloorHeight)

	visible := make(map[int]*world.Floor, len(d.Floors))
	for id, floor := range d.Floors {
		visible[id] = world.NewFloor(floor.Width(), floor.Height())
	}

	finder := &path.Finder{
		DangerRadius: cfg.Brain.DangerRadius,
		RiskWeight:   cfg.Brain.RiskWeight,
	}

	e := &Engine{
		cfg:     cfg,
		log:     log,
		rng:     rng,
		dungeon: d,
		visible: visible,
		player: &Player{
			X: d.Start.X, Y: d.Start.Y, Floor: d.Start.Floor,
			Health: 30, MaxHealth: 30, Attack: 3, Defense: 1,
			Equipped: make(map[string]*world.Item),
		},
		agent:    brain.NewAgentWithTuning(cfg.Brain.HistoryWindow, cfg.Brain.LoopBreakerTurns),
		calc:     brain.NewDefaultCalculator(),
		finder:   finder,
		explorer: explore.New(visible, finder),
		targets:  scout.NewFinder(visible),
		bestiary: bst,
	}
	e.reveal()
	return e
}

// Tick runs one full turn: observe, decide, apply, retaliate, reveal.
// Returns the outcome after the turn.
func (e *Engine) Tick() Outcome {
	e.tick++
	pos := e.playerCoord()
	e.agent.ObservePosition(pos)
	e.reveal()

	ctx := e.buildContext()
	cmd, ok := e.calc.ExecuteBest(ctx, e.agent, e.log)
	if !ok {
		// The fallback action guarantees this does not happen; treat it as
		// a pass if it somehow does.
		cmd = brain.Look()
	}
	e.agent.RecordCommand(cmd)
	e.lastCommand = cmd
	e.apply(cmd)
	e.monstersRetaliate()
	e.reveal()

	return e.Outcome()
}

// Run loops until the run ends or the tick budget is spent.
func (e *Engine) Run(onTick func(e *Engine)) Outcome {
	for e.tick < e.cfg.Sim.MaxTicks {
		outcome := e.Tick()
		if onTick != nil {
			onTick(e)
		}
		if outcome != OutcomeRunning {
			return outcome
		}
	}
	return OutcomeTimeout
}

// Outcome reports the run state after the latest turn
func (e *Engine) Outcome() Outcome {
	switch {
	case e.player.Health <= 0:
		return OutcomeDead
	case e.questCollected >= e.dungeon.QuestItems:
		return OutcomeWin
	default:
		return OutcomeRunning
	}
}

// Tick count so far
func (e *Engine) TickCount() int { return e.tick }

// LastCommand returns the most recently issued command
func (e *Engine) LastCommand() brain.Command { return e.lastCommand }

// Messages returns the recent event log lines
func (e *Engine) Messages() []string { return e.messages }

func (e *Engine) playerCoord() world.Coord {
	return world.Coord{X: e.player.X, Y: e.player.Y, Floor: e.player.Floor}
}

func (e *Engine) addMessage(msg string) {
	const maxMessages = 5
	e.messages = append(e.messages, msg)
	if len(e.messages) > maxMessages {
		e.messages = e.messages[len(e.messages)-maxMessages:]
	}
}

// reveal copies real tile state into the agent-visible map for every tile
// the player can currently see.
func (e *Engine) reveal() {
	real := e.dungeon.Floors[e.player.Floor]
	vis := e.visible[e.player.Floor]
	if real == nil || vis == nil {
		return
	}
	center := world.Point{X: e.player.X, Y: e.player.Y}
	for _, p := range world.VisiblePoints(real, center, e.cfg.Sim.FOVRadius) {
		src := real.Tile(p.X, p.Y)
		dst := vis.Tile(p.X, p.Y)
		if src == nil || dst == nil {
			continue
		}
		*dst = *src
		dst.Explored = true
	}
}

// buildContext assembles the read-only snapshot for one decision.
func (e *Engine) buildContext() *brain.Context {
	pv := view.Player{
		X: e.player.X, Y: e.player.Y, Floor: e.player.Floor,
		Health:    e.player.Health,
		MaxHealth: e.player.MaxHealth,
		Attack:    e.player.EffectiveAttack(),
		Defense:   e.player.EffectiveDefense(),
		Inventory: e.player.Inventory,
		Equipped:  e.player.Equipped,
	}

	vis := e.visible[e.player.Floor]
	var adjacent []view.Monster
	cornered := true
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		x, y := e.player.X+dx, e.player.Y+dy
		tile := vis.Tile(x, y)
		if tile == nil || !tile.Explored {
			continue
		}
		if tile.HasMonster() {
			adjacent = append(adjacent, view.Monster{Name: tile.Monster, X: x, Y: y})
			continue
		}
		if !tile.IsWall() {
			cornered = false
		}
	}
	// Cornered means hemmed in by monsters, not merely lacking known exits.
	if len(adjacent) == 0 {
		cornered = false
	}

	var tileItem *world.Item
	if tile := vis.Tile(e.player.X, e.player.Y); tile != nil {
		tileItem = tile.Item
	}

	return &brain.Context{
		Player:            pv,
		HealthRatio:       pv.HealthRatio(),
		SurvivalThreshold: e.cfg.Brain.SurvivalThreshold,
		IsCornered:        cornered,
		IsInLoop:          e.agent.IsInLoop(),
		LoopBreakerActive: e.agent.LoopBreakerActive(),
		AdjacentMonsters:  adjacent,
		CurrentTileItem:   tileItem,
		CurrentPath:       e.agent.Path,
		Maps:              e.visible,
		Paths:             e.finder,
		Bestiary:          e.bestiary,
		Explorer:          e.explorer,
		Targets:           e.targets,
		Rand:              e.rng,
	}
}

// apply resolves one agent command against the real world.
func (e *Engine) apply(cmd brain.Command) {
	switch cmd.Verb {
	case brain.VerbMove:
		e.applyMove(cmd)
	case brain.VerbAttack:
		e.applyAttack(cmd.Arg)
	case brain.VerbUse:
		e.applyUse(cmd.Arg)
	case brain.VerbTake:
		e.applyTake(cmd.Arg)
	case brain.VerbLook:
		// A deliberate pass.
	}
}

func (e *Engine) applyMove(cmd brain.Command) {
	dir, ok := cmd.Direction()
	if !ok {
		return
	}
	dx, dy := dir.Delta()
	x, y := e.player.X+dx, e.player.Y+dy

	real := e.dungeon.Floors[e.player.Floor]
	tile := real.Tile(x, y)
	if tile == nil || tile.IsWall() || tile.HasMonster() {
		e.addMessage("blocked moving " + dir.String())
		return
	}

	e.player.X, e.player.Y = x, y
	if tile.IsPortal() {
		// Stepping onto a gate carries the player straight through; the
		// paired endpoint shares the same (x, y).
		from := world.Coord{X: x, Y: y, Floor: e.player.Floor}
		e.explorer.MarkPortalVisited(from)
		e.player.Floor = tile.PortalTo
		e.addMessage("took the gate to floor " + strconv.Itoa(e.player.Floor))
	}
}

func (e *Engine) applyAttack(name string) {
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		c := world.Coord{X: e.player.X + dx, Y: e.player.Y + dy, Floor: e.player.Floor}
		m := e.dungeon.MonsterAt(c)
		if m == nil || m.Name != name {
			continue
		}

		dmg := e.player.EffectiveAttack() - m.Defense
		if dmg < 1 {
			dmg = 1
		}
		m.Health -= dmg
		if m.Health <= 0 {
			e.removeMonster(m)
			e.addMessage("slew the " + m.Name)
		} else {
			e.addMessage("hit the " + m.Name)
		}
		return
	}
	e.addMessage("swung at nothing")
}

func (e *Engine) applyUse(name string) {
	idx := -1
	for i, it := range e.player.Inventory {
		if it.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.addMessage("no such item: " + name)
		return
	}
	item := e.player.Inventory[idx]

	switch {
	case item.IsHealing():
		e.player.Health += item.HealAmount
		if e.player.Health > e.player.MaxHealth {
			e.player.Health = e.player.MaxHealth
		}
		e.removeFromInventory(idx)
		e.addMessage("drank the " + item.Name)

	case item.IsOffensive():
		e.throwOffensive(item)
		e.removeFromInventory(idx)

	case item.IsEquippable():
		if prev := e.player.Equipped[item.Slot]; prev != nil {
			e.player.Inventory = append(e.player.Inventory, prev)
		}
		e.player.Equipped[item.Slot] = item
		e.removeFromInventory(idx)
		e.addMessage("equipped the " + item.Name)

	default:
		e.addMessage("nothing happens")
	}
}

// throwOffensive hits every adjacent monster, doubled against a vulnerable
// damage type and halved against a resistant one.
func (e *Engine) throwOffensive(item *world.Item) {
	const baseDamage = 6
	hit := 0
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		c := world.Coord{X: e.player.X + dx, Y: e.player.Y + dy, Floor: e.player.Floor}
		m := e.dungeon.MonsterAt(c)
		if m == nil {
			continue
		}

		dmg := baseDamage
		stats := e.bestiary.GetStats(m.Name)
		if item.DamageType != "" && stats.Vulnerability == item.DamageType {
			dmg *= 2
		} else if item.DamageType != "" && stats.Resistance == item.DamageType {
			dmg /= 2
		}
		m.Health -= dmg
		hit++
		if m.Health <= 0 {
			e.removeMonster(m)
		}
	}
	if hit > 0 {
		e.addMessage("the " + item.Name + " scorched " + strconv.Itoa(hit) + " foes")
	} else {
		e.addMessage("the " + item.Name + " fizzled")
	}
}

func (e *Engine) applyTake(name string) {
	real := e.dungeon.Floors[e.player.Floor]
	tile := real.Tile(e.player.X, e.player.Y)
	if tile == nil || tile.Item == nil || tile.Item.Name != name {
		e.addMessage("nothing here to take")
		return
	}
	item := tile.Item
	tile.Item = nil
	e.player.Inventory = append(e.player.Inventory, item)
	if item.IsQuest() {
		e.questCollected++
	}
	e.addMessage("took the " + item.Name)
}

func (e *Engine) removeFromInventory(idx int) {
	e.player.Inventory = append(e.player.Inventory[:idx], e.player.Inventory[idx+1:]...)
}

// removeMonster clears a dead monster from its real tile. The visible map
// catches up on the next reveal.
func (e *Engine) removeMonster(m *Monster) {
	m.Health = 0
	if floor := e.dungeon.Floors[m.Floor]; floor != nil {
		if tile := floor.Tile(m.X, m.Y); tile != nil && tile.Monster == m.Name {
			tile.Monster = ""
		}
	}
}

// monstersRetaliate lets every living monster adjacent to the player strike
// once. Monsters are stationary; adjacency is the only reach they have.
func (e *Engine) monstersRetaliate() {
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		c := world.Coord{X: e.player.X + dx, Y: e.player.Y + dy, Floor: e.player.Floor}
		m := e.dungeon.MonsterAt(c)
		if m == nil {
			continue
		}
		dmg := m.Attack - e.player.EffectiveDefense()
		if dmg < 0 {
			dmg = 0
		}
		if dmg > 0 {
			e.player.Health -= dmg
			e.addMessage("the " + m.Name + " strikes for " + strconv.Itoa(dmg))
		}
	}
}
