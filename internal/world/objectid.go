package world

import "sync/atomic"

// SerialGenerator generates unique serials for entities and items.
//
// Serial ranges (convention):
//
//	0x00000000:              invalid
//	0x00000001 - 0x3FFFFFFF: mobiles (entities)
//	0x40000000 - 0x7FFFFFFF: items
type SerialGenerator struct {
	nextEntity atomic.Uint32
	nextItem   atomic.Uint32
}

// Serial range starts.
const (
	FirstEntitySerial uint32 = 0x00000001
	FirstItemSerial   uint32 = 0x40000000
)

// NewSerialGenerator creates a new generator.
func NewSerialGenerator() *SerialGenerator {
	gen := &SerialGenerator{}
	gen.nextEntity.Store(FirstEntitySerial - 1)
	gen.nextItem.Store(FirstItemSerial - 1)
	return gen
}

// NextEntitySerial generates next unique entity serial.
// Thread-safe via atomic increment.
func (g *SerialGenerator) NextEntitySerial() uint32 {
	return g.nextEntity.Add(1)
}

// NextItemSerial generates next unique item serial.
// Thread-safe via atomic increment.
func (g *SerialGenerator) NextItemSerial() uint32 {
	return g.nextItem.Add(1)
}

// Global serial generator (singleton pattern).
var globalSerials = NewSerialGenerator()

// Serials returns global serial generator.
// Thread-safe singleton.
func Serials() *SerialGenerator {
	return globalSerials
}
