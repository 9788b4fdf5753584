package gamedata

// ConsumableDef defines a consumable item loaded from JSON.
type ConsumableDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "health_potion")
	Name        string `json:"name"`        // Display name (e.g., "Health Potion")
	Description string `json:"description"` // Flavor/effect text
	Value       int    `json:"value"`       // Trade value in gold
	HealAmount  int    `json:"healAmount"`  // Health restored when used
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Consumables []ConsumableDef `json:"consumables"`
}

// LoadConsumables loads consumable definitions from the embedded items.json file.
func LoadConsumables() ([]ConsumableDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Consumables, nil
}
