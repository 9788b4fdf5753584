// Package entity provides the character model shared by the player, bosses,
// the villain, and companions.
package entity

import "github.com/hollandm/gravenhold/internal/gamedata"

// Kind is the closed set of character variants. Variant-specific attack rules
// are dispatched on it by the combat resolver.
type Kind int

const (
	KindPlayer Kind = iota
	KindBoss
	KindSidekick
	KindVillain
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBoss:
		return "boss"
	case KindSidekick:
		return "sidekick"
	case KindVillain:
		return "villain"
	default:
		return "unknown"
	}
}

// Weapon is a flat damage bonus carried by a character.
type Weapon struct {
	Name        string
	DamageBonus int
}

// Character is a single combat participant. One struct covers every variant;
// Kind selects the behavior.
type Character struct {
	Name string
	Kind Kind

	Health    int
	MaxHealth int
	Damage    int
	Weapon    *Weapon

	Level                 int
	Experience            int
	ExperienceToNextLevel int

	// SupportAbility is set for sidekicks (e.g. "Heal").
	SupportAbility string
	// SpecialAbility is set for villains (e.g. "Dark Magic").
	SpecialAbility string
}

// New creates a character at level 1 with full health.
func New(name string, kind Kind, health, damage int) *Character {
	return &Character{
		Name:                  name,
		Kind:                  kind,
		Health:                health,
		MaxHealth:             health,
		Damage:                damage,
		Level:                 1,
		ExperienceToNextLevel: experienceForLevel(1),
	}
}

// NewEnemyFromDef creates a boss or villain from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Character {
	kind := KindBoss
	if def.Villain {
		kind = KindVillain
	}
	c := New(def.Name, kind, def.HP, def.Damage)
	c.SpecialAbility = def.SpecialAbility
	if def.WeaponName != "" {
		c.Weapon = &Weapon{Name: def.WeaponName, DamageBonus: def.WeaponDamage}
	}
	return c
}

// NewCompanionFromDef creates a sidekick from a data-driven definition.
func NewCompanionFromDef(def *gamedata.CompanionDef) *Character {
	c := New(def.Name, KindSidekick, def.HP, def.Damage)
	c.SupportAbility = def.Ability
	if def.WeaponName != "" {
		c.Weapon = &Weapon{Name: def.WeaponName, DamageBonus: def.WeaponDamage}
	}
	return c
}

// IsAlive returns true while health is above zero.
func (c *Character) IsAlive() bool { return c.Health > 0 }

// IsBoss reports whether the character is an encounter enemy.
func (c *Character) IsBoss() bool { return c.Kind == KindBoss || c.Kind == KindVillain }

// CalculateDamage returns base plus the equipped weapon's bonus, if any.
// Pure: no state is modified.
func (c *Character) CalculateDamage(base int) int {
	if c.Weapon != nil {
		return base + c.Weapon.DamageBonus
	}
	return base
}

// TakeDamage reduces health by amount, flooring at zero.
func (c *Character) TakeDamage(amount int) {
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

// Heal restores health up to MaxHealth and returns the amount actually healed.
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if c.Health+actual > c.MaxHealth {
		actual = c.MaxHealth - c.Health
	}
	c.Health += actual
	return actual
}

// GainExperience adds experience and levels up when the threshold is reached.
// Returns true if a level-up occurred.
func (c *Character) GainExperience(amount int) bool {
	c.Experience += amount
	if c.Experience >= c.ExperienceToNextLevel {
		c.levelUp()
		return true
	}
	return false
}

// levelUp raises the level, grows health and damage by 20% (floored), resets
// experience, and recomputes the next threshold.
func (c *Character) levelUp() {
	c.Level++
	c.Health = c.Health * 12 / 10
	c.MaxHealth = c.MaxHealth * 12 / 10
	c.Damage = c.Damage * 12 / 10
	c.Experience = 0
	c.ExperienceToNextLevel = experienceForLevel(c.Level)
}

// ExperienceRemaining returns the experience still needed for the next level.
func (c *Character) ExperienceRemaining() int {
	return c.ExperienceToNextLevel - c.Experience
}

// experienceForLevel is the experience curve: 100 per current level.
func experienceForLevel(level int) int {
	return 100 * level
}
