package world

import (
	"context"
	"fmt"
	"sync"

	"github.com/udisondev/charcreate/internal/model"
)

// World tracks placed entities per facet sector.
// Use Instance() for the process-wide world or New() for an isolated one.
type World struct {
	mu       sync.RWMutex
	entities map[uint32]*model.Entity
	sectors  map[SectorKey]map[uint32]*model.Entity
}

var (
	instance *World
	once     sync.Once
)

// Instance returns singleton World instance.
func Instance() *World {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New creates an empty world.
func New() *World {
	return &World{
		entities: make(map[uint32]*model.Entity),
		sectors:  make(map[SectorKey]map[uint32]*model.Entity),
	}
}

// Place moves entity to loc and registers it in its sector.
// Returns error if coordinates are off the facet map or the entity is already placed.
func (w *World) Place(ctx context.Context, e *model.Entity, loc model.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("entity cannot be nil")
	}
	if !InBounds(loc.Facet, loc.X, loc.Y) {
		return fmt.Errorf("invalid coordinates for entity %d: %s", e.Serial(), loc)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.entities[e.Serial()]; exists {
		return fmt.Errorf("entity %d already placed", e.Serial())
	}

	key := CoordToSector(loc.Facet, loc.X, loc.Y)
	sector := w.sectors[key]
	if sector == nil {
		sector = make(map[uint32]*model.Entity)
		w.sectors[key] = sector
	}
	sector[e.Serial()] = e
	w.entities[e.Serial()] = e

	e.MoveToWorld(loc)
	return nil
}

// Remove removes entity from the world.
func (w *World) Remove(serial uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.entities[serial]
	if !ok {
		return
	}
	loc := e.Location()
	key := CoordToSector(loc.Facet, loc.X, loc.Y)
	if sector := w.sectors[key]; sector != nil {
		delete(sector, serial)
		if len(sector) == 0 {
			delete(w.sectors, key)
		}
	}
	delete(w.entities, serial)
}

// Entity returns a placed entity by serial.
func (w *World) Entity(serial uint32) (*model.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[serial]
	return e, ok
}

// EntitiesInSector returns entities registered in the sector containing loc.
func (w *World) EntitiesInSector(loc model.Location) []*model.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	sector := w.sectors[CoordToSector(loc.Facet, loc.X, loc.Y)]
	out := make([]*model.Entity, 0, len(sector))
	for _, e := range sector {
		out = append(out, e)
	}
	return out
}

// EntityCount returns number of placed entities.
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}
