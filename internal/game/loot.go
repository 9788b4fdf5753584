package game

import (
	"fmt"

	"github.com/hollandm/gravenhold/internal/dice"
	"github.com/hollandm/gravenhold/internal/entity"
	"github.com/hollandm/gravenhold/internal/gamedata"
	"github.com/hollandm/gravenhold/internal/inventory"
)

const (
	goldPerDamage    = 5
	potionDropChance = 50
	armorDropChance  = 30
	armorValue       = 50

	healthPotionID = "health_potion"
)

// LootResult is what a defeated enemy yields.
type LootResult struct {
	Gold  int
	Items []inventory.Item
}

// rollLoot resolves a defeated enemy's drops: gold scaled off its damage,
// an independent chance of a health potion, and an independent chance of
// armor cut from its hide.
func rollLoot(src dice.Source, enemy *entity.Character, consumables *gamedata.ConsumableRegistry) LootResult {
	result := LootResult{Gold: enemy.Damage * goldPerDamage}

	if dice.Chance(src, potionDropChance) {
		if def := consumables.GetByID(healthPotionID); def != nil {
			result.Items = append(result.Items,
				inventory.NewPotion(def.Name, def.Description, def.Value, def.HealAmount))
		}
	}

	if dice.Chance(src, armorDropChance) {
		result.Items = append(result.Items, inventory.NewArmor(
			fmt.Sprintf("%s's Armor", enemy.Name),
			fmt.Sprintf("Battle-scarred armor stripped from %s.", enemy.Name),
			armorValue,
			enemy.Damage/2,
		))
	}

	return result
}
