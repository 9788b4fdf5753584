package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hollandm/gravenhold/internal/inventory"
)

func healthPotion() *inventory.Potion {
	return inventory.NewPotion("Health Potion", "Restores 20 health", 10, 20)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	inv := inventory.New()

	inv.AddItem(healthPotion(), 1)
	require.True(t, inv.Has("Health Potion"))

	require.True(t, inv.RemoveItem("Health Potion", 1))
	assert.False(t, inv.Has("Health Potion"), "empty stack must be removed")
	assert.Equal(t, 0, inv.Quantity("Health Potion"))
}

func TestAddMergesStacks(t *testing.T) {
	inv := inventory.New()

	inv.AddItem(healthPotion(), 2)
	inv.AddItem(healthPotion(), 3)

	assert.Equal(t, 5, inv.Quantity("Health Potion"))

	require.True(t, inv.RemoveItem("Health Potion", 1))
	assert.Equal(t, 4, inv.Quantity("Health Potion"))
}

func TestRemoveInsufficientFails(t *testing.T) {
	inv := inventory.New()
	inv.AddItem(healthPotion(), 1)

	assert.False(t, inv.RemoveItem("Health Potion", 2), "removing more than held must fail")
	assert.Equal(t, 1, inv.Quantity("Health Potion"), "failed removal must not consume anything")

	assert.False(t, inv.RemoveItem("Elixir", 1), "removing an absent item must fail")
}

func TestEquipItem(t *testing.T) {
	inv := inventory.New()
	sword := inventory.NewWeapon("Dark Sword", "A blade that drinks light", 50, 5)
	mail := inventory.NewArmor("Goblin King's Armor", "Armor dropped by the Goblin King", 50, 4)

	require.True(t, inv.EquipItem(sword))
	require.True(t, inv.EquipItem(mail))

	assert.Equal(t, sword, inv.Equipped(inventory.SlotWeapon))
	assert.Equal(t, mail, inv.Equipped(inventory.SlotArmor))

	// A consumable has no slot.
	assert.False(t, inv.EquipItem(healthPotion()))
	assert.Equal(t, sword, inv.Equipped(inventory.SlotWeapon), "rejected equip must not disturb slots")
}

func TestUseConsumable(t *testing.T) {
	inv := inventory.New()
	inv.AddItem(healthPotion(), 2)

	used, ok := inv.UseConsumable("Health Potion")
	require.True(t, ok)
	assert.Equal(t, 20, used.HealAmount())
	assert.Equal(t, 1, inv.Quantity("Health Potion"), "one unit consumed")

	_, ok = inv.UseConsumable("Missing Potion")
	assert.False(t, ok)

	// Non-consumables cannot be used.
	inv.AddItem(inventory.NewArmor("Plate", "", 50, 3), 1)
	_, ok = inv.UseConsumable("Plate")
	assert.False(t, ok)
	assert.Equal(t, 1, inv.Quantity("Plate"))
}

func TestTotalValue(t *testing.T) {
	inv := inventory.New()
	inv.AddGold(40)
	inv.AddItem(healthPotion(), 2)                             // 2 x 10
	inv.AddItem(inventory.NewArmor("Plate", "", 50, 3), 1)     // 1 x 50
	inv.AddItem(inventory.NewPotion("Mana Potion", "", 15, 15), 1) // 1 x 15

	assert.Equal(t, 40+20+50+15, inv.TotalValue())
}

// TestStackInvariant_Property: after any sequence of adds and removals the
// quantity equals the running balance, and stacks never go negative.
func TestStackInvariant_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		inv := inventory.New()
		balance := 0

		ops := rapid.IntRange(1, 50).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			qty := rapid.IntRange(1, 5).Draw(rt, "qty")
			if rapid.Bool().Draw(rt, "add") {
				inv.AddItem(healthPotion(), qty)
				balance += qty
			} else {
				if inv.RemoveItem("Health Potion", qty) {
					balance -= qty
				}
			}

			if balance > 0 {
				assert.Equal(rt, balance, inv.Quantity("Health Potion"))
			} else {
				assert.False(rt, inv.Has("Health Potion"))
			}
		}
	})
}
