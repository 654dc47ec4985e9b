package model

import (
	"fmt"

	"github.com/udisondev/charcreate/internal/data"
)

// Item - конкретный экземпляр предмета (weapon, clothing, reagent, tool...).
// Может лежать в контейнере, быть надетым на персонажа или удалённым.
type Item struct {
	serial   uint32
	template *data.ItemTemplate
	amount   int32
	hue      int32
	lootType LootType
	movable  bool
	content  uint64 // spellbook content bitmask (0 for non-books)
	location ItemLocation
}

// ItemLocation определяет где находится предмет.
type ItemLocation int32

const (
	ItemLocationLoose     ItemLocation = iota // Created, not placed yet
	ItemLocationContainer                     // Inside a container
	ItemLocationWorn                          // Equipped on a layer
	ItemLocationDeleted                       // Destroyed
)

// String returns human-readable item location name.
func (il ItemLocation) String() string {
	switch il {
	case ItemLocationLoose:
		return "Loose"
	case ItemLocationContainer:
		return "Container"
	case ItemLocationWorn:
		return "Worn"
	case ItemLocationDeleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

// LootType is the degree of protection an item has against loss on death.
type LootType int32

const (
	LootRegular LootType = iota
	// LootNewbied items stay with the owner on death but cannot be sold or traded.
	LootNewbied
	// LootBlessed items are kept through death permanently.
	LootBlessed
)

// String returns the loot type name.
func (lt LootType) String() string {
	switch lt {
	case LootRegular:
		return "Regular"
	case LootNewbied:
		return "Newbied"
	case LootBlessed:
		return "Blessed"
	default:
		return "Unknown"
	}
}

// NewItem создаёт новый предмет с валидацией.
//
// Parameters:
//   - serial: unique ID в world (from world.Serials().NextItemSerial())
//   - template: catalog entry
//   - amount: stack count (должен быть > 0; >1 только для stackable)
func NewItem(serial uint32, template *data.ItemTemplate, amount int32) (*Item, error) {
	if template == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be > 0, got %d", amount)
	}
	if amount > 1 && !template.Stackable {
		return nil, fmt.Errorf("item %s is not stackable, amount %d", template.ID, amount)
	}

	return &Item{
		serial:   serial,
		template: template,
		amount:   amount,
		movable:  true,
		location: ItemLocationLoose,
	}, nil
}

// Serial returns the world-unique item serial.
func (i *Item) Serial() uint32 { return i.serial }

// ID returns the catalog identity.
func (i *Item) ID() data.ItemID { return i.template.ID }

// Name returns the catalog display name.
func (i *Item) Name() string { return i.template.Name }

// Template returns the catalog entry.
func (i *Item) Template() *data.ItemTemplate { return i.template }

// Layer returns the body layer the item is worn on (LayerInvalid if none).
func (i *Item) Layer() data.Layer { return i.template.Layer }

// Amount returns the stack count.
func (i *Item) Amount() int32 { return i.amount }

// Hue returns the item color.
func (i *Item) Hue() int32 { return i.hue }

// SetHue sets the item color.
func (i *Item) SetHue(hue int32) { i.hue = hue }

// LootType returns the death-loss protection of the item.
func (i *Item) LootType() LootType { return i.lootType }

// SetLootType sets the death-loss protection of the item.
func (i *Item) SetLootType(lt LootType) { i.lootType = lt }

// Movable reports whether the owner can lift the item.
func (i *Item) Movable() bool { return i.movable }

// SetMovable sets the movable flag.
func (i *Item) SetMovable(v bool) { i.movable = v }

// Content returns the spellbook content bitmask.
func (i *Item) Content() uint64 { return i.content }

// SetContent sets the spellbook content bitmask.
func (i *Item) SetContent(c uint64) { i.content = c }

// Location returns where the item currently is.
func (i *Item) Location() ItemLocation { return i.location }

// Delete destroys the item. Deleted items cannot be placed anywhere.
func (i *Item) Delete() { i.location = ItemLocationDeleted }

// IsDeleted reports whether the item was destroyed.
func (i *Item) IsDeleted() bool { return i.location == ItemLocationDeleted }

// String implements fmt.Stringer for log lines.
func (i *Item) String() string {
	if i.amount > 1 {
		return fmt.Sprintf("%s x%d", i.template.Name, i.amount)
	}
	return i.template.Name
}
