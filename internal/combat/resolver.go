// Package combat implements the variant attack rules and abilities of the
// combat engine.
package combat

import (
	"errors"
	"strings"

	"github.com/hollandm/gravenhold/internal/combatlog"
	"github.com/hollandm/gravenhold/internal/dice"
	"github.com/hollandm/gravenhold/internal/entity"
)

// Ability names recognized by the resolver.
const (
	AbilityHeal      = "Heal"
	AbilityDarkMagic = "Dark Magic"
)

// healingSpiritAmount is the fixed heal granted by the Healing Spirit
// companion, matching its ability description.
const healingSpiritAmount = 15

// healingSpiritName identifies the companion with the fixed heal amount.
const healingSpiritName = "Healing Spirit"

// villainSpecialChance is the per-attack percentage chance that a villain
// uses its special ability instead of a normal attack.
const villainSpecialChance = 20

// ErrUnknownAbility is returned when a character's ability string is not one
// the resolver implements. The caller reports it; no state changes.
var ErrUnknownAbility = errors.New("combat: unknown ability")

// Resolver applies variant attack rules. Every resolved attack or heal is
// appended to the combat log.
type Resolver struct {
	rng dice.Source
	log *combatlog.Log
}

// NewResolver creates a resolver drawing randomness from src.
func NewResolver(src dice.Source, log *combatlog.Log) *Resolver {
	return &Resolver{rng: src, log: log}
}

// attackFunc computes and applies one variant's attack. Returns damage dealt.
type attackFunc func(r *Resolver, actor, target *entity.Character) int

// attackRules dispatches the per-variant attack behavior.
var attackRules = map[entity.Kind]attackFunc{
	entity.KindPlayer:   plainAttack,
	entity.KindBoss:     plainAttack,
	entity.KindSidekick: sidekickAttack,
	entity.KindVillain:  villainAttack,
}

// Attack resolves actor's attack on target using the rule for actor's
// variant, applies the damage, logs the event, and returns the damage dealt.
func (r *Resolver) Attack(actor, target *entity.Character) int {
	rule, ok := attackRules[actor.Kind]
	if !ok {
		rule = plainAttack
	}
	return rule(r, actor, target)
}

func plainAttack(r *Resolver, actor, target *entity.Character) int {
	return r.strike(actor, target, actor.Damage, "")
}

// sidekickAttack deals 75% of base damage, floored before the weapon bonus.
func sidekickAttack(r *Resolver, actor, target *entity.Character) int {
	return r.strike(actor, target, actor.Damage*3/4, "")
}

// villainAttack has a 20% chance to delegate entirely to the special ability;
// otherwise it deals 125% of base damage, floored before the weapon bonus.
func villainAttack(r *Resolver, actor, target *entity.Character) int {
	if dice.Chance(r.rng, villainSpecialChance) {
		return r.UseSpecialAbility(actor, target)
	}
	return r.strike(actor, target, actor.Damage+actor.Damage/4, "")
}

// SpecialAttack resolves a boss's alternate action: 150% of base damage,
// floored before the weapon bonus. Not invoked by the generic attack
// dispatch.
func (r *Resolver) SpecialAttack(actor, target *entity.Character) int {
	return r.strike(actor, target, actor.Damage+actor.Damage/2, "")
}

// UseSpecialAbility resolves a villain's named ability. Only Dark Magic is
// implemented: double base damage, logged with the ability tag. Any other
// ability string is a no-op returning zero.
func (r *Resolver) UseSpecialAbility(actor, target *entity.Character) int {
	if !strings.EqualFold(actor.SpecialAbility, AbilityDarkMagic) {
		return 0
	}
	return r.strike(actor, target, actor.Damage*2, actor.SpecialAbility)
}

// UseSupportAbility resolves a sidekick's support ability on target. Only
// Heal is implemented: a fixed amount for the Healing Spirit, half the
// sidekick's base damage otherwise, clamped to the target's max health. The
// actual heal is returned; ErrUnknownAbility is returned for any other
// ability with no state change.
func (r *Resolver) UseSupportAbility(actor, target *entity.Character) (int, error) {
	if !strings.EqualFold(actor.SupportAbility, AbilityHeal) {
		return 0, ErrUnknownAbility
	}

	amount := actor.Damage / 2
	if actor.Name == healingSpiritName {
		amount = healingSpiritAmount
	}

	actual := target.Heal(amount)
	if actual > 0 {
		r.log.Record(actor.Name, target.Name, -actual, actor.SupportAbility)
	}
	return actual, nil
}

// strike applies a computed attack: weapon bonus on top of base, damage to
// the target (floored at zero health), one log entry.
func (r *Resolver) strike(actor, target *entity.Character, base int, ability string) int {
	total := actor.CalculateDamage(base)
	target.TakeDamage(total)
	r.log.Record(actor.Name, target.Name, total, ability)
	return total
}
