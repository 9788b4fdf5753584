package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hollandm/gravenhold/internal/combat"
	"github.com/hollandm/gravenhold/internal/combatlog"
	"github.com/hollandm/gravenhold/internal/dice"
	"github.com/hollandm/gravenhold/internal/entity"
	"github.com/hollandm/gravenhold/internal/gamedata"
	"github.com/hollandm/gravenhold/internal/inventory"
	"github.com/hollandm/gravenhold/internal/telemetry"
)

// Player starting stats.
const (
	playerStartHealth = 110
	playerStartDamage = 10
	defaultPlayerName = "Hero"
)

// Outcome is the terminal result of a run.
type Outcome int

const (
	// OutcomeWin - every enemy was defeated
	OutcomeWin Outcome = iota
	// OutcomeLoss - the player fell
	OutcomeLoss
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Registries bundles the loaded game data a run draws from.
type Registries struct {
	Enemies     *gamedata.EnemyRegistry
	Companions  *gamedata.CompanionRegistry
	Weapons     *gamedata.WeaponRegistry
	Consumables *gamedata.ConsumableRegistry
}

// Run is one full playthrough: setup, the ordered encounters, and the
// ending. All randomness flows from the single injected source, so a run is
// reproducible from its seed.
type Run struct {
	console   Console
	rng       dice.Source
	logger    *zap.Logger
	registry  Registries
	verbosity Verbosity
}

// NewRun creates a run sequencer.
func NewRun(console Console, src dice.Source, logger *zap.Logger, registry Registries, verbosity Verbosity) *Run {
	return &Run{
		console:   console,
		rng:       src,
		logger:    logger,
		registry:  registry,
		verbosity: verbosity,
	}
}

// Play runs the full game and returns its outcome. Encounters are fought in
// registry order; a single loss ends the run.
func (r *Run) Play(ctx context.Context) Outcome {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "run.play")
	defer span.End()

	runID := uuid.New()
	span.SetAttributes(
		attribute.String("run.id", runID.String()),
		attribute.Int("run.encounters", r.registry.Enemies.Count()),
	)
	r.logger.Info("run started",
		zap.String("run_id", runID.String()),
		zap.Int("encounters", r.registry.Enemies.Count()))

	r.console.Banner("GRAVENHOLD", colorful.Color{R: 1, G: 1, B: 1})
	r.console.Display(
		"The keep of Gravenhold has fallen to darkness.",
		"Three rule its halls now. Cut them down, one by one, and the keep is yours.",
		"")

	player := r.createPlayer()
	inv := inventory.New()
	r.chooseWeapon(player, inv)

	clog := combatlog.New(func(line string) { r.console.Display(line) })
	resolver := combat.NewResolver(r.rng, clog)

	opts := EncounterOptions{
		Resolver:    resolver,
		CombatLog:   clog,
		Inventory:   inv,
		Consumables: r.registry.Consumables,
		Rand:        r.rng,
		Console:     r.console,
		Logger:      r.logger,
		Verbosity:   r.verbosity,
	}

	var sidekick *entity.Character
	enemies := r.registry.Enemies.All()
	for i := range enemies {
		// The companion joins after the first victory proves the player
		// worth following.
		if i == 1 {
			sidekick = r.chooseCompanion()
		}

		enc := NewEncounter(player, sidekick, &enemies[i], opts)
		if enc.Run(ctx) == PhaseLost {
			r.console.Display("",
				fmt.Sprintf("%s has fallen. Gravenhold keeps its darkness.", player.Name),
				"GAME OVER")
			span.SetAttributes(attribute.String("outcome", OutcomeLoss.String()))
			r.logger.Info("run finished",
				zap.String("run_id", runID.String()),
				zap.String("outcome", OutcomeLoss.String()))
			return OutcomeLoss
		}
	}

	r.console.Display("",
		fmt.Sprintf("The last of them is dust. %s stands alone in the silent keep.", player.Name),
		fmt.Sprintf("Level %d, %d gold, %d entries in the chronicle.",
			player.Level, inv.Gold(), clog.Len()),
		"YOU WIN")
	span.SetAttributes(attribute.String("outcome", OutcomeWin.String()))
	r.logger.Info("run finished",
		zap.String("run_id", runID.String()),
		zap.String("outcome", OutcomeWin.String()),
		zap.Int("player_level", player.Level),
		zap.Int("gold", inv.Gold()))
	return OutcomeWin
}

// createPlayer asks for a name and builds the player character.
func (r *Run) createPlayer() *entity.Character {
	name := normalizeName(r.console.ReadLine("What is your name, challenger?"))
	player := entity.New(name, entity.KindPlayer, playerStartHealth, playerStartDamage)
	r.console.Display("", fmt.Sprintf("Welcome, %s.", player.Name))
	return player
}

// normalizeName trims and title-cases the entered name, falling back to a
// default when nothing was typed.
func normalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return defaultPlayerName
	}
	return cases.Title(language.English).String(name)
}

// chooseWeapon presents the starting weapons, rolls the chosen one's bonus,
// and equips it.
func (r *Run) chooseWeapon(player *entity.Character, inv *inventory.Inventory) {
	defs := r.registry.Weapons.All()
	options := make([]Option, 0, len(defs))
	for _, def := range defs {
		options = append(options, Option{
			ID:     def.ID,
			Label:  def.Name,
			Detail: fmt.Sprintf("damage bonus %d-%d", def.MinBonus, def.MaxBonus),
		})
	}

	id := r.console.Choose("Choose your weapon", options)
	def := r.registry.Weapons.GetByID(id)
	bonus := dice.RollRange(r.rng, def.MinBonus, def.MaxBonus)

	player.Weapon = &entity.Weapon{Name: def.Name, DamageBonus: bonus}
	inv.EquipItem(inventory.NewWeapon(def.Name,
		fmt.Sprintf("Your trusty %s.", strings.ToLower(def.Name)), 0, bonus))

	r.console.Display("", fmt.Sprintf("You take up the %s.", def.Name))
	if r.verbosity == VerbosityDebug {
		r.console.Display(fmt.Sprintf("[debug] %s rolled a +%d damage bonus", def.Name, bonus))
	}
	r.logger.Debug("weapon chosen", zap.String("weapon", def.Name), zap.Int("bonus", bonus))
}

// chooseCompanion presents the companions and returns the chosen one. The
// choice is made once and stands for the rest of the run.
func (r *Run) chooseCompanion() *entity.Character {
	defs := r.registry.Companions.All()
	options := make([]Option, 0, len(defs))
	for _, def := range defs {
		options = append(options, Option{
			ID:     def.ID,
			Label:  def.Name,
			Detail: def.Description,
		})
	}

	r.console.Display("",
		"Word of your victory spreads. A companion offers to join you.",
		"Choose well; they stay at your side to the end.")
	id := r.console.Choose("Who joins you?", options)
	def := r.registry.Companions.GetByID(id)
	sidekick := entity.NewCompanionFromDef(def)

	r.console.Display("", fmt.Sprintf("%s joins you.", sidekick.Name))
	r.logger.Info("companion joined", zap.String("companion", sidekick.Name))
	return sidekick
}
