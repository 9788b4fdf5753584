package inventory

import "sort"

// Slot identifies an equipment slot.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotArmor  Slot = "armor"
)

// Stack is one named item with its carried quantity.
type Stack struct {
	Item     Item
	Quantity int
}

// Inventory is the run's item storage: stacks keyed by item name, two
// equipment slots, and a gold balance. Zero-quantity stacks are removed, so
// presence in the map implies Quantity > 0.
type Inventory struct {
	stacks    map[string]*Stack
	equipment map[Slot]Item
	gold      int
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		stacks:    make(map[string]*Stack),
		equipment: make(map[Slot]Item),
	}
}

// AddItem adds qty units of item, merging into an existing stack.
func (inv *Inventory) AddItem(item Item, qty int) {
	if qty <= 0 {
		return
	}
	if s, ok := inv.stacks[item.Name()]; ok {
		s.Quantity += qty
		return
	}
	inv.stacks[item.Name()] = &Stack{Item: item, Quantity: qty}
}

// RemoveItem removes qty units of the named item. Returns false, leaving the
// inventory unchanged, if the stack is absent or holds fewer than qty units.
func (inv *Inventory) RemoveItem(name string, qty int) bool {
	s, ok := inv.stacks[name]
	if !ok || s.Quantity < qty || qty <= 0 {
		return false
	}
	s.Quantity -= qty
	if s.Quantity == 0 {
		delete(inv.stacks, name)
	}
	return true
}

// Has reports whether a stack with the given name exists.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.stacks[name]
	return ok
}

// Quantity returns the carried count of the named item, zero if absent.
func (inv *Inventory) Quantity(name string) int {
	if s, ok := inv.stacks[name]; ok {
		return s.Quantity
	}
	return 0
}

// EquipItem places an equipable item into its slot, replacing any occupant.
// Items that are neither weapons nor armor are rejected.
func (inv *Inventory) EquipItem(item Item) bool {
	switch item.(type) {
	case *Weapon:
		inv.equipment[SlotWeapon] = item
	case *Armor:
		inv.equipment[SlotArmor] = item
	default:
		return false
	}
	return true
}

// Equipped returns the item in the given slot, or nil when empty.
func (inv *Inventory) Equipped(slot Slot) Item {
	return inv.equipment[slot]
}

// UseConsumable spends one unit of the named item if it exists and is
// consumable. The consumed item is returned so the caller can apply its
// effect; the inventory itself never touches health.
func (inv *Inventory) UseConsumable(name string) (Consumable, bool) {
	s, ok := inv.stacks[name]
	if !ok {
		return nil, false
	}
	c, ok := s.Item.(Consumable)
	if !ok {
		return nil, false
	}
	if !inv.RemoveItem(name, 1) {
		return nil, false
	}
	return c, true
}

// Consumables returns the consumable stacks sorted by item name.
func (inv *Inventory) Consumables() []Stack {
	var out []Stack
	for _, s := range inv.stacks {
		if _, ok := s.Item.(Consumable); ok {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.Name() < out[j].Item.Name() })
	return out
}

// Stacks returns a snapshot of every stack sorted by item name.
func (inv *Inventory) Stacks() []Stack {
	out := make([]Stack, 0, len(inv.stacks))
	for _, s := range inv.stacks {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.Name() < out[j].Item.Name() })
	return out
}

// Gold returns the current gold balance.
func (inv *Inventory) Gold() int { return inv.gold }

// AddGold increases the gold balance.
func (inv *Inventory) AddGold(amount int) {
	if amount > 0 {
		inv.gold += amount
	}
}

// TotalValue returns gold plus the value of every carried stack.
func (inv *Inventory) TotalValue() int {
	total := inv.gold
	for _, s := range inv.stacks {
		total += s.Item.Value() * s.Quantity
	}
	return total
}
