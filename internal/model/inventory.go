package model

import (
	"github.com/udisondev/charcreate/internal/data"
)

// Inventory - надетые предметы (paperdoll) и рюкзак персонажа.
type Inventory struct {
	paperdoll [data.LayerCount]*Item // worn items by layer
	backpack  *Container
}

// NewInventory создаёт пустой инвентарь.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Equipped returns the item worn on layer (может быть nil).
func (inv *Inventory) Equipped(layer data.Layer) *Item {
	if layer < 0 || int(layer) >= data.LayerCount {
		return nil
	}
	return inv.paperdoll[layer]
}

// EquippedItems returns worn items ordered by layer.
func (inv *Inventory) EquippedItems() []*Item {
	var out []*Item
	for _, it := range inv.paperdoll {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// CanEquip reports whether item could be worn right now.
//
// Rules:
//   - item must be wearable, loose and not deleted
//   - its layer must be free
//   - a two-handed weapon needs a free one-handed layer, and a one-handed
//     item cannot join a two-handed weapon
func (inv *Inventory) CanEquip(item *Item) bool {
	if item == nil || item.IsDeleted() || item.Location() != ItemLocationLoose {
		return false
	}
	t := item.Template()
	if !t.Wearable() || int(t.Layer) >= data.LayerCount {
		return false
	}
	if inv.paperdoll[t.Layer] != nil {
		return false
	}
	if t.TwoHanded && inv.paperdoll[data.LayerOneHanded] != nil {
		return false
	}
	if t.Layer == data.LayerOneHanded {
		if other := inv.paperdoll[data.LayerTwoHanded]; other != nil && other.Template().TwoHanded {
			return false
		}
	}
	return true
}

// EquipItem надевает item на его layer.
// Returns false if CanEquip rejects it; the item is left untouched.
func (inv *Inventory) EquipItem(item *Item) bool {
	if !inv.CanEquip(item) {
		return false
	}
	inv.paperdoll[item.Layer()] = item
	item.location = ItemLocationWorn
	return true
}

// Backpack returns the backpack container (nil if the entity has none).
func (inv *Inventory) Backpack() *Container {
	return inv.backpack
}

// SetBackpack wears c on the backpack layer.
// Returns false if a backpack is already worn or c cannot be placed.
func (inv *Inventory) SetBackpack(c *Container) bool {
	if c == nil || inv.backpack != nil || c.IsDeleted() || c.Location() != ItemLocationLoose {
		return false
	}
	inv.backpack = c
	inv.paperdoll[data.LayerBackpack] = c.Item
	c.location = ItemLocationWorn
	return true
}
