package creation

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
	"github.com/udisondev/charcreate/internal/world"
)

// fixedSource always picks the same offset, clamped to the range.
type fixedSource int

func (f fixedSource) IntN(n int) int {
	return min(int(f), n-1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEntity(t *testing.T) *model.Entity {
	t.Helper()
	e, err := model.NewEntity(1, "tester")
	require.NoError(t, err)
	return e
}

func newTestProvisioner(expansion data.Expansion) *Provisioner {
	return NewProvisioner(expansion, fixedSource(0), world.NewSerialGenerator(), nil, discardLogger())
}

// itemIDs returns the catalog ids of items in order.
func itemIDs(items []*model.Item) []data.ItemID {
	out := make([]data.ItemID, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID())
	}
	return out
}

func packedIDs(e *model.Entity) []data.ItemID {
	if e.Backpack() == nil {
		return nil
	}
	return itemIDs(e.Backpack().Items())
}

func wornIDs(e *model.Entity) []data.ItemID {
	return itemIDs(e.Inventory().EquippedItems())
}
