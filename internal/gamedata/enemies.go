package gamedata

import "github.com/lucasb-eyer/go-colorful"

// EnemyDef defines an encounter enemy loaded from JSON. Enemies are fought in
// the order they appear in enemies.json.
type EnemyDef struct {
	ID             string `json:"id"`             // Unique identifier (e.g., "goblin_king")
	Name           string `json:"name"`           // Display name (e.g., "Goblin King")
	HP             int    `json:"hp"`             // Base hit points
	Damage         int    `json:"damage"`         // Base damage per attack
	WeaponName     string `json:"weaponName"`     // Equipped weapon name (empty = unarmed)
	WeaponDamage   int    `json:"weaponDamage"`   // Flat weapon damage bonus
	Villain        bool   `json:"villain"`        // Villains may use their special ability mid-fight
	SpecialAbility string `json:"specialAbility"` // Special ability name (villains only)
	Color          string `json:"color"`          // Hex accent color for presentation (e.g., "#66A832")
	Intro          string `json:"intro"`          // Narration shown before the encounter
}

// AccentColor returns the enemy's display color. Falls back to white when the
// data carries an invalid hex string.
func (e *EnemyDef) AccentColor() colorful.Color {
	c, err := colorful.Hex(e.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
