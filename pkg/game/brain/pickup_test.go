package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonpilot/pkg/engine/world"
)

func TestPickup_Unavailable(t *testing.T) {
	a := &PickupItemAction{}
	assert.False(t, a.IsAvailable(testContext()))
}

func TestPickup_QuestItemOutranksLoot(t *testing.T) {
	a := &PickupItemAction{}
	ctx := testContext()

	ctx.CurrentTileItem = &world.Item{Name: "old boot", Kind: world.KindMisc}
	assert.Equal(t, 0.80, a.Utility(ctx))

	ctx.CurrentTileItem = &world.Item{Name: "sigil", Kind: world.KindQuest}
	assert.Equal(t, 0.99, a.Utility(ctx))
}

func TestPickup_ExecuteTakesAndDropsPath(t *testing.T) {
	a := &PickupItemAction{}
	ctx := testContext()
	ctx.CurrentTileItem = &world.Item{Name: "sigil", Kind: world.KindQuest}

	agent := NewAgent()
	agent.Path = []world.Coord{{X: 3, Y: 3, Floor: 0}}

	cmd, ok := a.Execute(ctx, agent, testLogger())
	require.True(t, ok)
	assert.Equal(t, Take("sigil"), cmd)
	assert.Nil(t, agent.Path)
}

func TestEquip_BetterWeapon(t *testing.T) {
	a := &EquipAction{}
	ctx := testContext()

	assert.False(t, a.IsAvailable(ctx))

	sword := &world.Item{
		Name: "iron sword", Kind: world.KindWeapon, Slot: world.SlotMainHand, AttackBonus: 3,
	}
	ctx.Player.Inventory = append(ctx.Player.Inventory, sword)
	assert.True(t, a.IsAvailable(ctx))
	assert.Equal(t, 0.75, a.Utility(ctx))

	cmd, ok := a.Execute(ctx, NewAgent(), testLogger())
	require.True(t, ok)
	assert.Equal(t, Use("iron sword"), cmd)
}

func TestEquip_NotForWorseWeapon(t *testing.T) {
	a := &EquipAction{}
	ctx := testContext()
	ctx.Player.Equipped[world.SlotMainHand] = &world.Item{
		Name: "greatsword", Kind: world.KindWeapon, Slot: world.SlotMainHand, AttackBonus: 5,
	}
	ctx.Player.Inventory = append(ctx.Player.Inventory, &world.Item{
		Name: "dagger", Kind: world.KindWeapon, Slot: world.SlotMainHand, AttackBonus: 1,
	})

	assert.False(t, a.IsAvailable(ctx))
}

func TestEquip_EmptyArmorSlot(t *testing.T) {
	a := &EquipAction{}
	ctx := testContext()
	hat := &world.Item{Name: "cap", Kind: world.KindArmor, Slot: world.SlotHead, DefenseBonus: 1}
	ctx.Player.Inventory = append(ctx.Player.Inventory, hat)

	require.True(t, a.IsAvailable(ctx))

	// Once something at least as good is worn, the cap stops qualifying.
	ctx.Player.Equipped[world.SlotHead] = &world.Item{
		Name: "helmet", Kind: world.KindArmor, Slot: world.SlotHead, DefenseBonus: 2,
	}
	assert.False(t, a.IsAvailable(ctx))
}
