package gamedata

// WeaponDef defines a starting weapon choice loaded from JSON. The actual
// damage bonus is rolled uniformly in [MinBonus, MaxBonus] at run start.
type WeaponDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "rock")
	Name     string `json:"name"`     // Display name (e.g., "Rock")
	MinBonus int    `json:"minBonus"` // Lowest possible damage bonus
	MaxBonus int    `json:"maxBonus"` // Highest possible damage bonus
}

// WeaponsFile represents the structure of weapons.json.
type WeaponsFile struct {
	Weapons []WeaponDef `json:"weapons"`
}

// LoadWeapons loads weapon definitions from the embedded weapons.json file.
func LoadWeapons() ([]WeaponDef, error) {
	file, err := Load[WeaponsFile]("weapons.json")
	if err != nil {
		return nil, err
	}
	return file.Weapons, nil
}
