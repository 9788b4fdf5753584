package game

import (
	"context"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/hollandm/gravenhold/internal/combat"
	"github.com/hollandm/gravenhold/internal/combatlog"
	"github.com/hollandm/gravenhold/internal/entity"
	"github.com/hollandm/gravenhold/internal/gamedata"
	"github.com/hollandm/gravenhold/internal/inventory"
)

// scriptedConsole replays a fixed sequence of menu choices and input lines,
// capturing everything displayed.
type scriptedConsole struct {
	t       *testing.T
	choices []string
	input   []string
	output  []string
}

func (c *scriptedConsole) Display(lines ...string) {
	c.output = append(c.output, lines...)
}

func (c *scriptedConsole) Banner(title string, _ colorful.Color) {
	c.output = append(c.output, title)
}

func (c *scriptedConsole) Choose(prompt string, options []Option) string {
	if len(c.choices) == 0 {
		c.t.Fatalf("scripted console ran out of choices at prompt %q", prompt)
	}
	id := c.choices[0]
	c.choices = c.choices[1:]
	for _, o := range options {
		if o.ID == id {
			return id
		}
	}
	c.t.Fatalf("scripted choice %q was not among the offered options", id)
	return ""
}

func (c *scriptedConsole) ReadLine(string) string {
	if len(c.input) == 0 {
		return ""
	}
	line := c.input[0]
	c.input = c.input[1:]
	return line
}

func (c *scriptedConsole) Pause() {}

func (c *scriptedConsole) sawLine(substr string) bool {
	for _, line := range c.output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// scriptedSource replays a fixed sequence of Intn results.
type scriptedSource struct {
	vals []int
	next int
}

func (s *scriptedSource) Intn(n int) int {
	if s.next >= len(s.vals) {
		return n - 1
	}
	v := s.vals[s.next]
	s.next++
	if v >= n {
		v = n - 1
	}
	return v
}

// newTestEncounter wires an encounter with scripted input and randomness.
// rolls defaults to "never" values when empty.
func newTestEncounter(t *testing.T, player, sidekick *entity.Character, def *gamedata.EnemyDef, choices []string, rolls []int, inv *inventory.Inventory) (*Encounter, *scriptedConsole) {
	t.Helper()
	console := &scriptedConsole{t: t, choices: choices}
	src := &scriptedSource{vals: rolls}
	clog := combatlog.New(func(line string) { console.Display(line) })
	if inv == nil {
		inv = inventory.New()
	}
	enc := NewEncounter(player, sidekick, def, EncounterOptions{
		Resolver:    combat.NewResolver(src, clog),
		CombatLog:   clog,
		Inventory:   inv,
		Consumables: gamedata.MustLoadConsumableRegistry(),
		Rand:        src,
		Console:     console,
		Logger:      zap.NewNop(),
	})
	return enc, console
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseAwaitingAction, "awaiting_action"},
		{PhasePlayerAction, "player_action"},
		{PhaseEnemyAction, "enemy_action"},
		{PhaseWon, "won"},
		{PhaseLost, "lost"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestEncounterGoblinKingScenario(t *testing.T) {
	// An unarmed damage-10 player needs 5 attacks for 50 HP and eats 4
	// counters of 8 along the way.
	def := gamedata.MustLoadEnemyRegistry().GetByID("goblin_king")
	if def == nil {
		t.Fatal("goblin_king missing from enemy registry")
	}

	player := entity.New("Aria", entity.KindPlayer, 110, 10)
	inv := inventory.New()
	choices := []string{"attack", "attack", "attack", "attack", "attack"}
	enc, console := newTestEncounter(t, player, nil, def, choices, []int{99, 99}, inv)

	phase := enc.Run(context.Background())

	if phase != PhaseWon {
		t.Fatalf("Run() = %v, want PhaseWon", phase)
	}
	if enc.Enemy().Health != 0 {
		t.Errorf("enemy health = %d, want 0", enc.Enemy().Health)
	}
	if player.Health != 78 {
		t.Errorf("player health = %d, want 78 (110 - 4x8)", player.Health)
	}
	if player.Experience != 80 {
		t.Errorf("player experience = %d, want 80", player.Experience)
	}
	if player.Level != 1 {
		t.Errorf("player level = %d, want 1", player.Level)
	}
	if inv.Gold() != 40 {
		t.Errorf("gold = %d, want 40", inv.Gold())
	}
	if enc.Turns() != 4 {
		t.Errorf("Turns() = %d, want 4", enc.Turns())
	}
	if !console.sawLine("Aria is victorious") {
		t.Error("victory narration missing from output")
	}
	if !console.sawLine("20 experience to the next level") {
		t.Error("experience-to-next-level line missing from output")
	}
}

func TestEncounterUseItemIsFreeAction(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "training_dummy", Name: "Training Dummy", HP: 10, Damage: 8}

	player := entity.New("Aria", entity.KindPlayer, 110, 10)
	player.Health = 90
	inv := inventory.New()
	inv.AddItem(inventory.NewPotion("Health Potion", "Restores 20 health.", 10, 20), 1)

	choices := []string{"use_item", "Health Potion", "attack"}
	enc, _ := newTestEncounter(t, player, nil, def, choices, []int{99, 99}, inv)

	if phase := enc.Run(context.Background()); phase != PhaseWon {
		t.Fatalf("Run() = %v, want PhaseWon", phase)
	}
	// The potion healed 20 and the enemy never got a counter-attack.
	if player.Health != 110 {
		t.Errorf("player health = %d, want 110", player.Health)
	}
	if inv.Quantity("Health Potion") != 0 {
		t.Errorf("potion quantity = %d, want 0", inv.Quantity("Health Potion"))
	}
}

func TestEncounterViewInventoryIsFreeAction(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "training_dummy", Name: "Training Dummy", HP: 10, Damage: 8}

	player := entity.New("Aria", entity.KindPlayer, 110, 10)
	choices := []string{"view_inventory", "attack"}
	enc, console := newTestEncounter(t, player, nil, def, choices, []int{99, 99}, nil)

	if phase := enc.Run(context.Background()); phase != PhaseWon {
		t.Fatalf("Run() = %v, want PhaseWon", phase)
	}
	if player.Health != 110 {
		t.Errorf("player health = %d, want 110 (no counter-attack)", player.Health)
	}
	if !console.sawLine("Gold: 0") {
		t.Error("inventory listing missing from output")
	}
}

func TestEncounterSidekickTurnAllowsEnemyResponse(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "training_dummy", Name: "Training Dummy", HP: 10, Damage: 8}

	player := entity.New("Aria", entity.KindPlayer, 110, 10)
	player.Health = 95
	sidekick := entity.New("Healing Spirit", entity.KindSidekick, 50, 3)
	sidekick.SupportAbility = "Heal"

	choices := []string{"sidekick", "attack"}
	enc, _ := newTestEncounter(t, player, sidekick, def, choices, []int{99, 99}, nil)

	if phase := enc.Run(context.Background()); phase != PhaseWon {
		t.Fatalf("Run() = %v, want PhaseWon", phase)
	}
	// Healed 95 -> 110, then the enemy answered with 8: the sidekick's
	// turn is not a free action.
	if player.Health != 102 {
		t.Errorf("player health = %d, want 102", player.Health)
	}
}

func TestEncounterSidekickUnknownAbilityWastesTurn(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "training_dummy", Name: "Training Dummy", HP: 20, Damage: 8}

	player := entity.New("Aria", entity.KindPlayer, 110, 10)
	hound := entity.New("Battle Hound", entity.KindSidekick, 40, 8)
	hound.SupportAbility = "Bite"

	choices := []string{"sidekick", "attack", "attack"}
	enc, console := newTestEncounter(t, player, hound, def, choices, []int{99, 99}, nil)

	if phase := enc.Run(context.Background()); phase != PhaseWon {
		t.Fatalf("Run() = %v, want PhaseWon", phase)
	}
	if !console.sawLine("Battle Hound can't use Bite!") {
		t.Error("inability message missing from output")
	}
	// The wasted turn changed nothing: the 20 HP dummy needed both player
	// attacks of 10, and it answered the sidekick's turn plus the first
	// attack with counters of 8.
	if player.Health != 94 {
		t.Errorf("player health = %d, want 94", player.Health)
	}
	if enc.Turns() != 2 {
		t.Errorf("Turns() = %d, want 2", enc.Turns())
	}
}

func TestEncounterLoss(t *testing.T) {
	def := gamedata.MustLoadEnemyRegistry().GetByID("goblin_king")
	if def == nil {
		t.Fatal("goblin_king missing from enemy registry")
	}

	player := entity.New("Aria", entity.KindPlayer, 110, 10)
	player.Health = 5

	choices := []string{"attack"}
	enc, _ := newTestEncounter(t, player, nil, def, choices, nil, nil)

	if phase := enc.Run(context.Background()); phase != PhaseLost {
		t.Fatalf("Run() = %v, want PhaseLost", phase)
	}
	if player.Health != 0 {
		t.Errorf("player health = %d, want 0", player.Health)
	}
}

func TestEncounterEmptyPackUseItem(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "training_dummy", Name: "Training Dummy", HP: 10, Damage: 8}

	player := entity.New("Aria", entity.KindPlayer, 110, 10)
	choices := []string{"use_item", "attack"}
	enc, console := newTestEncounter(t, player, nil, def, choices, []int{99, 99}, nil)

	if phase := enc.Run(context.Background()); phase != PhaseWon {
		t.Fatalf("Run() = %v, want PhaseWon", phase)
	}
	if !console.sawLine("nothing you can use") {
		t.Error("empty pack message missing from output")
	}
	if player.Health != 110 {
		t.Errorf("player health = %d, want 110 (no counter-attack)", player.Health)
	}
}

func TestRollLoot(t *testing.T) {
	consumables := gamedata.MustLoadConsumableRegistry()
	enemy := entity.New("Goblin King", entity.KindBoss, 50, 8)

	t.Run("both drops", func(t *testing.T) {
		src := &scriptedSource{vals: []int{0, 0}}
		loot := rollLoot(src, enemy, consumables)

		if loot.Gold != 40 {
			t.Errorf("gold = %d, want 40", loot.Gold)
		}
		if len(loot.Items) != 2 {
			t.Fatalf("items = %d, want 2", len(loot.Items))
		}
		potion, ok := loot.Items[0].(*inventory.Potion)
		if !ok {
			t.Fatalf("first item is %T, want *inventory.Potion", loot.Items[0])
		}
		if potion.HealAmount() != 20 {
			t.Errorf("potion heal = %d, want 20", potion.HealAmount())
		}
		armor, ok := loot.Items[1].(*inventory.Armor)
		if !ok {
			t.Fatalf("second item is %T, want *inventory.Armor", loot.Items[1])
		}
		if armor.Name() != "Goblin King's Armor" {
			t.Errorf("armor name = %q, want %q", armor.Name(), "Goblin King's Armor")
		}
		if armor.DefenseBonus() != 4 {
			t.Errorf("armor defense = %d, want 4 (8/2)", armor.DefenseBonus())
		}
		if armor.Value() != 50 {
			t.Errorf("armor value = %d, want 50", armor.Value())
		}
	})

	t.Run("no drops", func(t *testing.T) {
		src := &scriptedSource{vals: []int{99, 99}}
		loot := rollLoot(src, enemy, consumables)

		if loot.Gold != 40 {
			t.Errorf("gold = %d, want 40", loot.Gold)
		}
		if len(loot.Items) != 0 {
			t.Errorf("items = %d, want 0", len(loot.Items))
		}
	})
}
