// Package view provides the information-hiding projections of game entities
// the agent is allowed to see.
//
// A MonsterView deliberately exposes only name and position: anything else a
// player would have to infer from the monster's identity via the bestiary.
// The PlayerView exposes full self-knowledge.
package view

import (
	"dungeonpilot/pkg/engine/world"
)

// Monster is what the agent may know about a monster it can see.
type Monster struct {
	Name string
	X    int
	Y    int
}

// Point returns the monster's position
func (m Monster) Point() world.Point {
	return world.Point{X: m.X, Y: m.Y}
}

// Player is the agent's full knowledge of its own character.
type Player struct {
	X     int
	Y     int
	Floor int

	Health    int
	MaxHealth int
	Attack    int
	Defense   int

	Inventory []*world.Item
	Equipped  map[string]*world.Item // slot name -> item, nil/absent for empty
}

// Point returns the player's 2D position
func (p *Player) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Coord returns the player's position including floor
func (p *Player) Coord() world.Coord {
	return world.Coord{X: p.X, Y: p.Y, Floor: p.Floor}
}

// HealthRatio returns current health as a fraction of max health
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}

// EquippedIn returns the item equipped in the given slot, or nil
func (p *Player) EquippedIn(slot string) *world.Item {
	if p.Equipped == nil {
		return nil
	}
	return p.Equipped[slot]
}

// HasHealingItem returns true if the inventory holds a healing consumable
func (p *Player) HasHealingItem() bool {
	for _, it := range p.Inventory {
		if it.IsHealing() {
			return true
		}
	}
	return false
}

// HasOffensiveItem returns true if the inventory holds an offensive consumable
func (p *Player) HasOffensiveItem() bool {
	for _, it := range p.Inventory {
		if it.IsOffensive() {
			return true
		}
	}
	return false
}
