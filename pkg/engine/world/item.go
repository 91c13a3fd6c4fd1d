package world

// ItemKind classifies what an item does when used or equipped.
type ItemKind string

// Item kinds
const (
	KindHeal      ItemKind = "heal"
	KindQuest     ItemKind = "quest"
	KindWeapon    ItemKind = "weapon"
	KindArmor     ItemKind = "armor"
	KindOffensive ItemKind = "offensive"
	KindMisc      ItemKind = "misc"
)

// Equipment slot names
const (
	SlotMainHand = "main_hand"
	SlotOffHand  = "off_hand"
	SlotHead     = "head"
	SlotChest    = "chest"
	SlotLegs     = "legs"
	SlotBoots    = "boots"
)

// ArmorSlots lists the slots that hold defensive equipment.
var ArmorSlots = []string{SlotHead, SlotChest, SlotLegs, SlotOffHand, SlotBoots}

// Item represents a collectible item in the world.
// The core only reads this metadata; effect resolution is the engine's job.
type Item struct {
	Name         string
	Kind         ItemKind
	Slot         string // equipment slot, empty for non-equippables
	AttackBonus  int
	DefenseBonus int
	HealAmount   int
	DamageType   string // for offensive consumables, e.g. "fire"
}

// NewItem creates a new miscellaneous item with the given name
func NewItem(name string) *Item {
	return &Item{Name: name, Kind: KindMisc}
}

// IsEquippable returns true if the item occupies an equipment slot
func (i *Item) IsEquippable() bool {
	return i != nil && i.Slot != ""
}

// IsHealing returns true for consumables that restore health
func (i *Item) IsHealing() bool {
	return i != nil && i.Kind == KindHeal
}

// IsQuest returns true for quest items
func (i *Item) IsQuest() bool {
	return i != nil && i.Kind == KindQuest
}

// IsOffensive returns true for consumables that deal damage
func (i *Item) IsOffensive() bool {
	return i != nil && i.Kind == KindOffensive
}
