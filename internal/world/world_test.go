package world

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
)

func newTestEntity(t *testing.T, serial uint32) *model.Entity {
	t.Helper()
	e, err := model.NewEntity(serial, "tester")
	require.NoError(t, err)
	return e
}

func TestWorld_Place(t *testing.T) {
	w := New()
	e := newTestEntity(t, 1)
	loc := model.NewLocation(3503, 2574, 14, data.FacetTrammel)

	require.NoError(t, w.Place(context.Background(), e, loc))

	assert.True(t, e.Placed())
	assert.Equal(t, loc, e.Location())
	assert.Equal(t, 1, w.EntityCount())

	got, ok := w.Entity(1)
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.Len(t, w.EntitiesInSector(loc), 1)
}

func TestWorld_PlaceRejects(t *testing.T) {
	tests := []struct {
		name string
		loc  model.Location
	}{
		{"negative x", model.NewLocation(-1, 10, 0, data.FacetTrammel)},
		{"beyond width", model.NewLocation(7168, 10, 0, data.FacetFelucca)},
		{"beyond tokuno", model.NewLocation(1500, 10, 0, data.FacetTokuno)},
		{"unknown facet", model.NewLocation(10, 10, 0, data.Facet(99))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			e := newTestEntity(t, 1)
			assert.Error(t, w.Place(context.Background(), e, tt.loc))
			assert.False(t, e.Placed())
			assert.Equal(t, 0, w.EntityCount())
		})
	}
}

func TestWorld_PlaceTwice(t *testing.T) {
	w := New()
	e := newTestEntity(t, 7)
	loc := model.NewLocation(1602, 1591, 20, data.FacetTrammel)

	require.NoError(t, w.Place(context.Background(), e, loc))
	assert.Error(t, w.Place(context.Background(), e, loc))
}

func TestWorld_PlaceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New()
	err := w.Place(ctx, newTestEntity(t, 1), model.NewLocation(1, 1, 0, data.FacetTrammel))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorld_Remove(t *testing.T) {
	w := New()
	e := newTestEntity(t, 3)
	loc := model.NewLocation(1602, 1591, 20, data.FacetTrammel)
	require.NoError(t, w.Place(context.Background(), e, loc))

	w.Remove(3)
	w.Remove(3) // no-op

	_, ok := w.Entity(3)
	assert.False(t, ok)
	assert.Empty(t, w.EntitiesInSector(loc))
}

func TestSerialGenerator_Concurrent(t *testing.T) {
	gen := NewSerialGenerator()

	const workers, perWorker = 8, 500
	seen := sync.Map{}
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				s := gen.NextEntitySerial()
				_, dup := seen.LoadOrStore(s, struct{}{})
				assert.False(t, dup, "duplicate serial %d", s)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, FirstItemSerial, gen.NextItemSerial())
	assert.Equal(t, FirstEntitySerial+workers*perWorker, gen.NextEntitySerial())
}

func TestCoordToSector(t *testing.T) {
	k := CoordToSector(data.FacetTrammel, 3503, 2574)
	assert.Equal(t, SectorKey{Facet: data.FacetTrammel, SX: 218, SY: 160}, k)
}
