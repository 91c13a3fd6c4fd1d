// Package scout scans the agent's explored map views for things worth
// walking to: consumables, upgrades, quest items and monsters.
package scout

import (
	"sort"

	"dungeonpilot/pkg/engine/world"
	"dungeonpilot/pkg/game/view"
)

// Target kinds
const (
	KindHealingItem  = "healing_item"
	KindBetterWeapon = "better_weapon"
	KindBetterArmor  = "better_armor"
	KindQuestItem    = "quest_item"
	KindOtherItem    = "other_item"
	KindMonster      = "monster"
)

// Target is a classified point of interest on an explored tile.
// Distance is an estimate: Manhattan distance plus a heavy per-floor penalty,
// not a computed path length.
type Target struct {
	world.Coord
	Kind     string
	Distance int
}

// SortByDistance orders targets nearest-first
func SortByDistance(targets []Target) {
	sort.Slice(targets, func(i, j int) bool { return targets[i].Distance < targets[j].Distance })
}

// Finder scans explored tiles of all held floor views.
type Finder struct {
	maps map[int]*world.Floor
}

// NewFinder creates a target finder over the given visible maps
func NewFinder(maps map[int]*world.Floor) *Finder {
	return &Finder{maps: maps}
}

// findItems collects explored tiles whose item passes the filter.
func (f *Finder) findItems(p *view.Player, kind string, sameFloorOnly bool, filter func(*world.Item) bool) []Target {
	var targets []Target
	for floorID, floor := range f.maps {
		if floor == nil {
			continue
		}
		if sameFloorOnly && floorID != p.Floor {
			continue
		}
		floor.ForEachTile(func(x, y int, tile *world.Tile) {
			if !tile.Explored || tile.Item == nil || !filter(tile.Item) {
				return
			}
			c := world.Coord{X: x, Y: y, Floor: floorID}
			targets = append(targets, Target{
				Coord:    c,
				Kind:     kind,
				Distance: world.CrossFloorDistance(p.Coord(), c),
			})
		})
	}
	return targets
}

// FindHealingItems returns explored health-restoring items
func (f *Finder) FindHealingItems(p *view.Player, sameFloorOnly bool) []Target {
	return f.findItems(p, KindHealingItem, sameFloorOnly, func(it *world.Item) bool {
		return it.IsHealing()
	})
}

// FindQuestItems returns explored quest items
func (f *Finder) FindQuestItems(p *view.Player, sameFloorOnly bool) []Target {
	return f.findItems(p, KindQuestItem, sameFloorOnly, func(it *world.Item) bool {
		return it.IsQuest()
	})
}

// FindBetterWeapons returns weapons strictly better than the equipped
// main-hand, compared by attack bonus.
func (f *Finder) FindBetterWeapons(p *view.Player, sameFloorOnly bool) []Target {
	return f.findItems(p, KindBetterWeapon, sameFloorOnly, func(it *world.Item) bool {
		return f.isBetterWeapon(p, it)
	})
}

// FindBetterArmor returns armor strictly better than the equipped piece for
// its slot, or armor for an empty slot.
func (f *Finder) FindBetterArmor(p *view.Player, sameFloorOnly bool) []Target {
	return f.findItems(p, KindBetterArmor, sameFloorOnly, func(it *world.Item) bool {
		return f.isBetterArmor(p, it)
	})
}

// FindOtherItems returns explored items outside the four classified
// categories: not healing, not quest, and not an equipment upgrade.
func (f *Finder) FindOtherItems(p *view.Player, sameFloorOnly bool) []Target {
	return f.findItems(p, KindOtherItem, sameFloorOnly, func(it *world.Item) bool {
		if it.IsHealing() || it.IsQuest() {
			return false
		}
		if f.isBetterWeapon(p, it) || f.isBetterArmor(p, it) {
			return false
		}
		return true
	})
}

func (f *Finder) isBetterWeapon(p *view.Player, it *world.Item) bool {
	if it.Slot != world.SlotMainHand {
		return false
	}
	current := 0
	if equipped := p.EquippedIn(world.SlotMainHand); equipped != nil {
		current = equipped.AttackBonus
	}
	return it.AttackBonus > current
}

func (f *Finder) isBetterArmor(p *view.Player, it *world.Item) bool {
	armorSlot := false
	for _, slot := range world.ArmorSlots {
		if it.Slot == slot {
			armorSlot = true
			break
		}
	}
	if !armorSlot {
		return false
	}
	equipped := p.EquippedIn(it.Slot)
	if equipped == nil {
		return true
	}
	return it.DefenseBonus > equipped.DefenseBonus
}

// FindMonsters returns explored, non-adjacent monsters on all floors.
// Adjacency is only meaningful on the player's current floor.
func (f *Finder) FindMonsters(p *view.Player) []Target {
	var targets []Target
	for floorID, floor := range f.maps {
		if floor == nil {
			continue
		}
		floor.ForEachTile(func(x, y int, tile *world.Tile) {
			if !tile.Explored || !tile.HasMonster() {
				return
			}
			if floorID == p.Floor && world.Manhattan(p.Point(), world.Point{X: x, Y: y}) == 1 {
				return
			}
			c := world.Coord{X: x, Y: y, Floor: floorID}
			targets = append(targets, Target{
				Coord:    c,
				Kind:     KindMonster,
				Distance: world.CrossFloorDistance(p.Coord(), c),
			})
		})
	}
	return targets
}
