package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/charcreate/internal/data"
)

func newBackpack(t *testing.T) *Container {
	t.Helper()
	c := NewContainer(mustItem(t, 1, data.ItemBackpack, 1))
	require.NotNil(t, c)
	return c
}

func TestNewContainer(t *testing.T) {
	assert.Nil(t, NewContainer(nil))
	assert.Nil(t, NewContainer(mustItem(t, 1, data.ItemDagger, 1)), "not a container")
	assert.NotNil(t, NewContainer(mustItem(t, 2, data.ItemBagOfReagents, 1)))
}

func TestContainer_DropItem(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, c *Container) *Item
		want  bool
	}{
		{
			name:  "loose item",
			setup: func(t *testing.T, _ *Container) *Item { return mustItem(t, 10, data.ItemPickaxe, 1) },
			want:  true,
		},
		{
			name:  "nil item",
			setup: func(*testing.T, *Container) *Item { return nil },
			want:  false,
		},
		{
			name: "deleted item",
			setup: func(t *testing.T, _ *Container) *Item {
				it := mustItem(t, 10, data.ItemPickaxe, 1)
				it.Delete()
				return it
			},
			want: false,
		},
		{
			name:  "container into itself",
			setup: func(_ *testing.T, c *Container) *Item { return c.Item },
			want:  false,
		},
		{
			name: "already packed",
			setup: func(t *testing.T, c *Container) *Item {
				it := mustItem(t, 10, data.ItemPickaxe, 1)
				require.True(t, c.DropItem(it))
				return it
			},
			want: false,
		},
		{
			name: "into deleted container",
			setup: func(t *testing.T, c *Container) *Item {
				c.Delete()
				return mustItem(t, 10, data.ItemPickaxe, 1)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBackpack(t)
			item := tt.setup(t, c)
			before := c.Count()

			assert.Equal(t, tt.want, c.DropItem(item))
			if tt.want {
				assert.Equal(t, before+1, c.Count())
				assert.Equal(t, ItemLocationContainer, item.Location())
			} else {
				assert.Equal(t, before, c.Count())
			}
		})
	}
}

func TestContainer_ItemsAndFind(t *testing.T) {
	c := newBackpack(t)
	a := mustItem(t, 10, data.ItemBandage, 5)
	b := mustItem(t, 11, data.ItemScissors, 1)
	d := mustItem(t, 12, data.ItemBandage, 3)
	for _, it := range []*Item{a, b, d} {
		require.True(t, c.DropItem(it))
	}

	items := c.Items()
	assert.Equal(t, []*Item{a, b, d}, items)

	items[0] = nil
	assert.Same(t, a, c.Items()[0], "Items returns a copy")

	assert.Equal(t, []*Item{a, d}, c.FindByID(data.ItemBandage))
	assert.Empty(t, c.FindByID(data.ItemLockpick))
}
