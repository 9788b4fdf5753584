// Package inventory manages the run's items, equipment slots, and gold.
package inventory

// Item is the capability shared by everything a run can carry.
type Item interface {
	Name() string
	Description() string
	Value() int
}

// Consumable is an item that can be spent for a one-time heal. The inventory
// removes the unit; the caller applies the effect.
type Consumable interface {
	Item
	HealAmount() int
}

// itemCore holds the fields common to every item variant.
type itemCore struct {
	name        string
	description string
	value       int
}

func (i itemCore) Name() string        { return i.name }
func (i itemCore) Description() string { return i.description }
func (i itemCore) Value() int          { return i.value }

// Weapon is an equipable item granting a flat damage bonus.
type Weapon struct {
	itemCore
	damageBonus int
}

// NewWeapon creates a weapon item.
func NewWeapon(name, description string, value, damageBonus int) *Weapon {
	return &Weapon{itemCore: itemCore{name: name, description: description, value: value}, damageBonus: damageBonus}
}

// DamageBonus returns the flat damage added while equipped.
func (w *Weapon) DamageBonus() int { return w.damageBonus }

// Armor is an equipable item granting a flat defense bonus.
type Armor struct {
	itemCore
	defenseBonus int
}

// NewArmor creates an armor item.
func NewArmor(name, description string, value, defenseBonus int) *Armor {
	return &Armor{itemCore: itemCore{name: name, description: description, value: value}, defenseBonus: defenseBonus}
}

// DefenseBonus returns the flat defense granted while equipped.
func (a *Armor) DefenseBonus() int { return a.defenseBonus }

// Potion is a consumable restoring health when used.
type Potion struct {
	itemCore
	healAmount int
}

// NewPotion creates a consumable potion.
func NewPotion(name, description string, value, healAmount int) *Potion {
	return &Potion{itemCore: itemCore{name: name, description: description, value: value}, healAmount: healAmount}
}

// HealAmount returns the health restored when the potion is used.
func (p *Potion) HealAmount() int { return p.healAmount }
