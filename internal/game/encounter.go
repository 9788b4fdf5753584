package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hollandm/gravenhold/internal/combat"
	"github.com/hollandm/gravenhold/internal/combatlog"
	"github.com/hollandm/gravenhold/internal/dice"
	"github.com/hollandm/gravenhold/internal/entity"
	"github.com/hollandm/gravenhold/internal/gamedata"
	"github.com/hollandm/gravenhold/internal/inventory"
	"github.com/hollandm/gravenhold/internal/telemetry"
)

// Phase represents the current phase of an encounter.
type Phase int

const (
	// PhaseAwaitingAction - waiting for the player to pick an action
	PhaseAwaitingAction Phase = iota
	// PhasePlayerAction - the player's action is being resolved
	PhasePlayerAction
	// PhaseEnemyAction - the enemy is taking its turn
	PhaseEnemyAction
	// PhaseWon - the enemy is defeated
	PhaseWon
	// PhaseLost - the player is defeated
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAction:
		return "awaiting_action"
	case PhasePlayerAction:
		return "player_action"
	case PhaseEnemyAction:
		return "enemy_action"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Menu action identifiers returned by the boundary.
const (
	actionAttack        = "attack"
	actionUseItem       = "use_item"
	actionSidekick      = "sidekick"
	actionViewInventory = "view_inventory"
	actionCancel        = "cancel"
)

// experiencePerDamage scales the experience award off the defeated enemy's
// damage stat.
const experiencePerDamage = 10

// EncounterOptions carries the shared dependencies an encounter runs on.
type EncounterOptions struct {
	Resolver    *combat.Resolver
	CombatLog   *combatlog.Log
	Inventory   *inventory.Inventory
	Consumables *gamedata.ConsumableRegistry
	Rand        dice.Source
	Console     Console
	Logger      *zap.Logger
	Verbosity   Verbosity
}

// Encounter is one fight: the player (optionally backed by a sidekick)
// against a single enemy, played to a Won or Lost phase.
type Encounter struct {
	player   *entity.Character
	sidekick *entity.Character
	enemy    *entity.Character
	def      *gamedata.EnemyDef

	resolver    *combat.Resolver
	combatLog   *combatlog.Log
	inv         *inventory.Inventory
	consumables *gamedata.ConsumableRegistry
	rng         dice.Source
	console     Console
	logger      *zap.Logger
	verbosity   Verbosity

	phase Phase
	turns int
}

// NewEncounter creates an encounter against the enemy described by def.
// sidekick may be nil.
func NewEncounter(player, sidekick *entity.Character, def *gamedata.EnemyDef, opts EncounterOptions) *Encounter {
	return &Encounter{
		player:      player,
		sidekick:    sidekick,
		enemy:       entity.NewEnemyFromDef(def),
		def:         def,
		resolver:    opts.Resolver,
		combatLog:   opts.CombatLog,
		inv:         opts.Inventory,
		consumables: opts.Consumables,
		rng:         opts.Rand,
		console:     opts.Console,
		logger:      opts.Logger,
		verbosity:   opts.Verbosity,
		phase:       PhaseAwaitingAction,
	}
}

// Enemy returns the enemy combatant.
func (e *Encounter) Enemy() *entity.Character { return e.enemy }

// Phase returns the encounter's current phase.
func (e *Encounter) Phase() Phase { return e.phase }

// Turns returns the number of full turns taken so far.
func (e *Encounter) Turns() int { return e.turns }

// Run plays the encounter to completion and returns the terminal phase,
// PhaseWon or PhaseLost.
func (e *Encounter) Run(ctx context.Context) Phase {
	tracer := telemetry.Tracer("encounter")
	ctx, span := tracer.Start(ctx, "encounter.run")
	span.SetAttributes(
		attribute.String("enemy", e.enemy.Name),
		attribute.Int("enemy.health", e.enemy.Health),
		attribute.Int("enemy.damage", e.enemy.Damage),
		attribute.Bool("enemy.villain", e.enemy.Kind == entity.KindVillain),
	)
	defer span.End()

	e.console.Banner(e.def.Name, e.def.AccentColor())
	if e.def.Intro != "" {
		e.console.Display(e.def.Intro, "")
	}
	e.logger.Info("encounter started",
		zap.String("enemy", e.enemy.Name),
		zap.Int("enemy_health", e.enemy.Health))

	for e.phase != PhaseWon && e.phase != PhaseLost {
		e.playTurn(ctx)
	}

	if e.phase == PhaseWon {
		e.win(ctx)
	}

	span.SetAttributes(
		attribute.String("outcome", e.phase.String()),
		attribute.Int("turns", e.turns),
	)
	e.logger.Info("encounter finished",
		zap.String("enemy", e.enemy.Name),
		zap.String("outcome", e.phase.String()),
		zap.Int("turns", e.turns))
	return e.phase
}

// playTurn runs one full turn: player action, then, unless the action was a
// free one, the enemy's response.
func (e *Encounter) playTurn(ctx context.Context) {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.turn")
	span.SetAttributes(attribute.Int("turn", e.turns))
	defer span.End()

	e.phase = PhaseAwaitingAction
	e.console.Display("", e.statusLine())
	if e.verbosity == VerbosityDebug {
		e.console.Display(fmt.Sprintf("[debug] turn %d, phase %s", e.turns, e.phase))
	}

	action := e.console.Choose("Choose your action", e.actionOptions())
	e.phase = PhasePlayerAction
	span.SetAttributes(attribute.String("action", action))

	// Checking the pack or drinking a potion costs nothing; the enemy
	// does not respond to free actions.
	enemyResponds := true
	switch action {
	case actionAttack:
		e.resolver.Attack(e.player, e.enemy)
	case actionUseItem:
		e.useItem()
		enemyResponds = false
	case actionViewInventory:
		e.showInventory()
		enemyResponds = false
	case actionSidekick:
		e.sidekickAct()
	}

	if !e.enemy.IsAlive() {
		e.phase = PhaseWon
		return
	}

	if enemyResponds {
		e.phase = PhaseEnemyAction
		e.resolver.Attack(e.enemy, e.player)
		if !e.player.IsAlive() {
			e.phase = PhaseLost
			return
		}
	}

	e.turns++
}

// actionOptions builds the turn menu. The sidekick entry only appears when a
// companion has joined.
func (e *Encounter) actionOptions() []Option {
	options := []Option{
		{ID: actionAttack, Label: "Attack"},
		{ID: actionUseItem, Label: "Use Item"},
	}
	if e.sidekick != nil && e.sidekick.IsAlive() {
		options = append(options, Option{
			ID:    actionSidekick,
			Label: fmt.Sprintf("%s: %s", e.sidekick.Name, e.sidekick.SupportAbility),
		})
	}
	options = append(options, Option{ID: actionViewInventory, Label: "View Inventory"})
	return options
}

// statusLine summarizes the combatants' health for the turn header.
func (e *Encounter) statusLine() string {
	line := fmt.Sprintf("%s: %d/%d HP  |  %s: %d HP",
		e.player.Name, e.player.Health, e.player.MaxHealth,
		e.enemy.Name, e.enemy.Health)
	if e.sidekick != nil && e.sidekick.IsAlive() {
		line += fmt.Sprintf("  |  %s: %d HP", e.sidekick.Name, e.sidekick.Health)
	}
	return line
}

// useItem lets the player drink a consumable from the pack.
func (e *Encounter) useItem() {
	stacks := e.inv.Consumables()
	if len(stacks) == 0 {
		e.console.Display("Your pack holds nothing you can use.")
		return
	}

	options := make([]Option, 0, len(stacks)+1)
	for _, s := range stacks {
		options = append(options, Option{
			ID:     s.Item.Name(),
			Label:  fmt.Sprintf("%s x%d", s.Item.Name(), s.Quantity),
			Detail: s.Item.Description(),
		})
	}
	options = append(options, Option{ID: actionCancel, Label: "Back"})

	choice := e.console.Choose("Use which item?", options)
	if choice == actionCancel {
		return
	}

	item, ok := e.inv.UseConsumable(choice)
	if !ok {
		return
	}

	healed := e.player.Heal(item.HealAmount())
	if healed > 0 {
		e.combatLog.Record(e.player.Name, e.player.Name, -healed, item.Name())
	} else {
		e.console.Display(fmt.Sprintf("%s is already at full health.", e.player.Name))
	}
}

// showInventory prints the pack, equipment, and gold.
func (e *Encounter) showInventory() {
	lines := []string{fmt.Sprintf("Gold: %d", e.inv.Gold())}
	if w := e.inv.Equipped(inventory.SlotWeapon); w != nil {
		lines = append(lines, "Weapon: "+w.Name())
	}
	if a := e.inv.Equipped(inventory.SlotArmor); a != nil {
		lines = append(lines, "Armor: "+a.Name())
	}
	stacks := e.inv.Stacks()
	if len(stacks) == 0 {
		lines = append(lines, "Pack: empty")
	} else {
		lines = append(lines, "Pack:")
		for _, s := range stacks {
			lines = append(lines, fmt.Sprintf("  %s x%d", s.Item.Name(), s.Quantity))
		}
	}
	e.console.Display(lines...)
	e.console.Pause()
}

// sidekickAct resolves the sidekick's support ability. An ability the
// resolver doesn't know wastes the turn: the inability is reported and
// nothing changes.
func (e *Encounter) sidekickAct() {
	if e.sidekick == nil {
		return
	}

	healed, err := e.resolver.UseSupportAbility(e.sidekick, e.player)
	if errors.Is(err, combat.ErrUnknownAbility) {
		e.console.Display(fmt.Sprintf("%s can't use %s!", e.sidekick.Name, e.sidekick.SupportAbility))
		return
	}
	if err != nil {
		e.logger.Warn("support ability failed", zap.String("sidekick", e.sidekick.Name), zap.Error(err))
		return
	}
	if healed == 0 {
		e.console.Display(fmt.Sprintf("%s's %s fizzles; %s is already at full health.",
			e.sidekick.Name, e.sidekick.SupportAbility, e.player.Name))
	}
}

// win handles the victory sequence: narration, the experience award, and
// loot resolution.
func (e *Encounter) win(ctx context.Context) {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.loot")
	defer span.End()

	e.console.Display("", fmt.Sprintf("%s falls! %s is victorious!", e.enemy.Name, e.player.Name))

	award := e.enemy.Damage * experiencePerDamage
	leveled := e.player.GainExperience(award)
	e.console.Display(fmt.Sprintf("%s gains %d experience.", e.player.Name, award))
	if leveled {
		e.console.Display(fmt.Sprintf("%s reaches level %d! Health %d/%d, damage %d.",
			e.player.Name, e.player.Level, e.player.Health, e.player.MaxHealth, e.player.Damage))
	} else {
		e.console.Display(fmt.Sprintf("%d experience to the next level.", e.player.ExperienceRemaining()))
	}

	loot := rollLoot(e.rng, e.enemy, e.consumables)
	e.inv.AddGold(loot.Gold)
	e.console.Display(fmt.Sprintf("You loot %d gold.", loot.Gold))
	for _, item := range loot.Items {
		e.inv.AddItem(item, 1)
		e.console.Display(fmt.Sprintf("You find %s.", item.Name()))
	}

	span.SetAttributes(
		attribute.Int("experience", award),
		attribute.Bool("leveled_up", leveled),
		attribute.Int("gold", loot.Gold),
		attribute.Int("items", len(loot.Items)),
	)
	e.logger.Info("encounter loot resolved",
		zap.String("enemy", e.enemy.Name),
		zap.Int("gold", loot.Gold),
		zap.Int("items", len(loot.Items)),
		zap.Int("experience", award),
		zap.Bool("leveled_up", leveled))

	e.console.Pause()
}
