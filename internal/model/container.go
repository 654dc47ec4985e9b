package model

import (
	"github.com/udisondev/charcreate/internal/data"
)

// Container - предмет-контейнер (backpack) со списком вложенных предметов.
type Container struct {
	*Item // embedded

	items []*Item
}

// NewContainer wraps a container item.
// Returns nil if item is nil or its template is not a container.
func NewContainer(item *Item) *Container {
	if item == nil || !item.Template().Container {
		return nil
	}
	return &Container{Item: item}
}

// DropItem кладёт предмет в контейнер.
// Returns false if the container or the item is deleted, the item is already
// placed somewhere, or item is the container itself.
func (c *Container) DropItem(item *Item) bool {
	if c == nil || item == nil || c.IsDeleted() || item.IsDeleted() {
		return false
	}
	if item == c.Item || item.location != ItemLocationLoose {
		return false
	}
	item.location = ItemLocationContainer
	c.items = append(c.items, item)
	return true
}

// Items returns a copy of the contained items in insertion order.
func (c *Container) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of contained items.
func (c *Container) Count() int {
	return len(c.items)
}

// FindByID returns contained items of the given catalog id.
func (c *Container) FindByID(id data.ItemID) []*Item {
	var out []*Item
	for _, it := range c.items {
		if it.ID() == id {
			out = append(out, it)
		}
	}
	return out
}
