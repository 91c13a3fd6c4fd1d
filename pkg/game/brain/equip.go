package brain

import (
	"go.uber.org/zap"

	"dungeonpilot/pkg/engine/world"
)

// EquipAction puts on a strictly better weapon, armor for an empty slot, or
// strictly better armor from the inventory.
type EquipAction struct{}

type equipChoice struct {
	item   *world.Item
	reason string
}

// Name returns the action name
func (a *EquipAction) Name() string { return "Equip" }

// IsAvailable requires something beneficial to equip
func (a *EquipAction) IsAvailable(ctx *Context) bool {
	_, ok := a.findBestEquip(ctx)
	return ok
}

// Utility is a fixed 0.75
func (a *EquipAction) Utility(ctx *Context) float64 {
	if !a.IsAvailable(ctx) {
		return 0
	}
	return 0.75
}

// findBestEquip scans the inventory for the first upgrade: a main-hand
// weapon with a higher attack bonus, armor for an empty slot, or armor with
// a higher defense bonus than the equipped piece.
func (a *EquipAction) findBestEquip(ctx *Context) (equipChoice, bool) {
	for _, it := range ctx.Player.Inventory {
		if !it.IsEquippable() {
			continue
		}

		if it.Slot == world.SlotMainHand {
			current := 0
			if equipped := ctx.Player.EquippedIn(world.SlotMainHand); equipped != nil {
				current = equipped.AttackBonus
			}
			if it.AttackBonus > current {
				return equipChoice{item: it, reason: "better weapon"}, true
			}
			continue
		}

		for _, slot := range world.ArmorSlots {
			if it.Slot != slot {
				continue
			}
			equipped := ctx.Player.EquippedIn(slot)
			if equipped == nil {
				return equipChoice{item: it, reason: "empty slot"}, true
			}
			if it.DefenseBonus > equipped.DefenseBonus {
				return equipChoice{item: it, reason: "better armor"}, true
			}
		}
	}
	return equipChoice{}, false
}

// Execute equips the chosen item by using it
func (a *EquipAction) Execute(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	choice, ok := a.findBestEquip(ctx)
	if !ok {
		return Command{}, false
	}
	log.Info("equipping item",
		zap.String("item", choice.item.Name),
		zap.String("slot", choice.item.Slot),
		zap.String("reason", choice.reason))
	return Use(choice.item.Name), true
}
