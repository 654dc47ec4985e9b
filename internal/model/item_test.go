package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/charcreate/internal/data"
)

func mustItem(t *testing.T, serial uint32, id data.ItemID, amount int32) *Item {
	t.Helper()
	item, err := NewItem(serial, data.GetItemTemplate(id), amount)
	require.NoError(t, err)
	return item
}

func TestItemLocation_String(t *testing.T) {
	tests := []struct {
		location ItemLocation
		want     string
	}{
		{ItemLocationLoose, "Loose"},
		{ItemLocationContainer, "Container"},
		{ItemLocationWorn, "Worn"},
		{ItemLocationDeleted, "Deleted"},
		{ItemLocation(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.location.String())
		})
	}
}

func TestLootType_String(t *testing.T) {
	assert.Equal(t, "Regular", LootRegular.String())
	assert.Equal(t, "Newbied", LootNewbied.String())
	assert.Equal(t, "Blessed", LootBlessed.String())
	assert.Equal(t, "Unknown", LootType(7).String())
}

func TestNewItem(t *testing.T) {
	tests := []struct {
		name    string
		id      data.ItemID
		amount  int32
		wantErr bool
	}{
		{"single", data.ItemDagger, 1, false},
		{"stack", data.ItemBandage, 10, false},
		{"zero amount", data.ItemDagger, 0, true},
		{"negative amount", data.ItemBandage, -5, true},
		{"stack of unstackable", data.ItemDagger, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(100, data.GetItemTemplate(tt.id), tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint32(100), item.Serial())
			assert.Equal(t, tt.id, item.ID())
			assert.Equal(t, tt.amount, item.Amount())
			assert.True(t, item.Movable())
			assert.Equal(t, LootRegular, item.LootType())
			assert.Equal(t, ItemLocationLoose, item.Location())
		})
	}

	t.Run("nil template", func(t *testing.T) {
		_, err := NewItem(1, nil, 1)
		assert.Error(t, err)
	})
}

func TestItem_Setters(t *testing.T) {
	item := mustItem(t, 1, data.ItemSpellbook, 1)

	item.SetHue(1153)
	item.SetLootType(LootBlessed)
	item.SetMovable(false)
	item.SetContent(0xFF)

	assert.Equal(t, int32(1153), item.Hue())
	assert.Equal(t, LootBlessed, item.LootType())
	assert.False(t, item.Movable())
	assert.Equal(t, uint64(0xFF), item.Content())
	assert.Equal(t, data.LayerOneHanded, item.Layer())
}

func TestItem_Delete(t *testing.T) {
	item := mustItem(t, 1, data.ItemShirt, 1)
	assert.False(t, item.IsDeleted())

	item.Delete()

	assert.True(t, item.IsDeleted())
	assert.Equal(t, ItemLocationDeleted, item.Location())
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "dagger", mustItem(t, 1, data.ItemDagger, 1).String())
	assert.Equal(t, "clean bandage x10", mustItem(t, 2, data.ItemBandage, 10).String())
}
