package gamedata

import "errors"

// EnemyRegistry holds loaded enemy definitions in encounter order.
type EnemyRegistry struct {
	enemies []EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{enemies: enemies}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions in encounter order.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemies in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// CompanionRegistry
// =============================================================================

// CompanionRegistry holds loaded companion definitions in selection-menu order.
type CompanionRegistry struct {
	companions []CompanionDef
}

// NewCompanionRegistry creates a registry from loaded companion definitions.
func NewCompanionRegistry(companions []CompanionDef) *CompanionRegistry {
	return &CompanionRegistry{companions: companions}
}

// LoadCompanionRegistry loads and creates a registry from the embedded companions.json.
func LoadCompanionRegistry() (*CompanionRegistry, error) {
	companions, err := LoadCompanions()
	if err != nil {
		return nil, err
	}
	if len(companions) == 0 {
		return nil, errors.New("no companions loaded from companions.json")
	}
	return NewCompanionRegistry(companions), nil
}

// MustLoadCompanionRegistry loads a registry, panicking on error.
func MustLoadCompanionRegistry() *CompanionRegistry {
	registry, err := LoadCompanionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the companion definition with the given ID, or nil if not found.
func (r *CompanionRegistry) GetByID(id string) *CompanionDef {
	for i := range r.companions {
		if r.companions[i].ID == id {
			return &r.companions[i]
		}
	}
	return nil
}

// All returns all companion definitions.
func (r *CompanionRegistry) All() []CompanionDef {
	return r.companions
}

// Count returns the number of companions in the registry.
func (r *CompanionRegistry) Count() int {
	return len(r.companions)
}

// =============================================================================
// WeaponRegistry
// =============================================================================

// WeaponRegistry holds loaded starting-weapon definitions.
type WeaponRegistry struct {
	weapons []WeaponDef
}

// NewWeaponRegistry creates a registry from loaded weapon definitions.
func NewWeaponRegistry(weapons []WeaponDef) *WeaponRegistry {
	return &WeaponRegistry{weapons: weapons}
}

// LoadWeaponRegistry loads and creates a registry from the embedded weapons.json.
func LoadWeaponRegistry() (*WeaponRegistry, error) {
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	if len(weapons) == 0 {
		return nil, errors.New("no weapons loaded from weapons.json")
	}
	return NewWeaponRegistry(weapons), nil
}

// MustLoadWeaponRegistry loads a registry, panicking on error.
func MustLoadWeaponRegistry() *WeaponRegistry {
	registry, err := LoadWeaponRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the weapon definition with the given ID, or nil if not found.
func (r *WeaponRegistry) GetByID(id string) *WeaponDef {
	for i := range r.weapons {
		if r.weapons[i].ID == id {
			return &r.weapons[i]
		}
	}
	return nil
}

// All returns all weapon definitions.
func (r *WeaponRegistry) All() []WeaponDef {
	return r.weapons
}

// =============================================================================
// ConsumableRegistry
// =============================================================================

// ConsumableRegistry holds loaded consumable definitions.
type ConsumableRegistry struct {
	consumables map[string]*ConsumableDef
	all         []ConsumableDef
}

// NewConsumableRegistry creates a registry from loaded consumable definitions.
func NewConsumableRegistry(consumables []ConsumableDef) *ConsumableRegistry {
	registry := &ConsumableRegistry{
		consumables: make(map[string]*ConsumableDef),
		all:         consumables,
	}
	for i := range consumables {
		registry.consumables[consumables[i].ID] = &consumables[i]
	}
	return registry
}

// LoadConsumableRegistry loads and creates a registry from the embedded items.json.
func LoadConsumableRegistry() (*ConsumableRegistry, error) {
	consumables, err := LoadConsumables()
	if err != nil {
		return nil, err
	}
	if len(consumables) == 0 {
		return nil, errors.New("no consumables loaded from items.json")
	}
	return NewConsumableRegistry(consumables), nil
}

// MustLoadConsumableRegistry loads a registry, panicking on error.
func MustLoadConsumableRegistry() *ConsumableRegistry {
	registry, err := LoadConsumableRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the consumable definition with the given ID, or nil if not found.
func (r *ConsumableRegistry) GetByID(id string) *ConsumableDef {
	return r.consumables[id]
}

// All returns all consumable definitions.
func (r *ConsumableRegistry) All() []ConsumableDef {
	return r.all
}
