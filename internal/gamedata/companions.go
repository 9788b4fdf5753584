package gamedata

// CompanionDef defines a selectable companion loaded from JSON.
type CompanionDef struct {
	ID           string `json:"id"`           // Unique identifier (e.g., "healing_spirit")
	Name         string `json:"name"`         // Display name (e.g., "Healing Spirit")
	HP           int    `json:"hp"`           // Base hit points
	Damage       int    `json:"damage"`       // Base damage per attack
	WeaponName   string `json:"weaponName"`   // Equipped weapon name
	WeaponDamage int    `json:"weaponDamage"` // Flat weapon damage bonus
	Ability      string `json:"ability"`      // Support ability name (e.g., "Heal")
	Description  string `json:"description"`  // Ability description shown at selection time
}

// CompanionsFile represents the structure of companions.json.
type CompanionsFile struct {
	Companions []CompanionDef `json:"companions"`
}

// LoadCompanions loads companion definitions from the embedded companions.json file.
func LoadCompanions() ([]CompanionDef, error) {
	file, err := Load[CompanionsFile]("companions.json")
	if err != nil {
		return nil, err
	}
	return file.Companions, nil
}
