package model

import (
	"fmt"
	"sync"

	"github.com/udisondev/charcreate/internal/data"
)

// Skill is one entry of an entity's skill table.
// Base and Cap are fixed-point: 1000 means 100.0.
type Skill struct {
	Base int32
	Cap  int32
}

// Appearance is a hair, beard or face choice.
type Appearance struct {
	ItemID int32
	Hue    int32
}

// Entity - новый персонаж.
// Собирается процедурой создания и передаётся миру только после размещения.
type Entity struct {
	serial  uint32
	account string

	mu sync.RWMutex

	name        string
	accessLevel AccessLevel
	female      bool
	race        *data.Race
	hue         int32
	hair        Appearance
	beard       Appearance
	face        Appearance
	profession  int32

	str, dex, intel int32
	skills          [data.SkillCount]Skill

	hunger             int32
	autoRenewInsurance bool
	young              bool

	inventory *Inventory
	location  Location
	placed    bool
}

// NewEntity создаёт персонажа с валидацией.
func NewEntity(serial uint32, account string) (*Entity, error) {
	if serial == 0 {
		return nil, fmt.Errorf("serial cannot be zero")
	}
	if account == "" {
		return nil, fmt.Errorf("account cannot be empty")
	}
	return &Entity{
		serial:    serial,
		account:   account,
		race:      data.DefaultRace(),
		inventory: NewInventory(),
	}, nil
}

// Serial returns the world-unique entity serial.
func (e *Entity) Serial() uint32 { return e.serial }

// Account returns the owning account login.
func (e *Entity) Account() string { return e.account }

// Name returns the display name.
func (e *Entity) Name() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.name
}

// SetName sets the display name.
func (e *Entity) SetName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.name = name
}

// AccessLevel returns the staff level.
func (e *Entity) AccessLevel() AccessLevel {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.accessLevel
}

// SetAccessLevel sets the staff level.
func (e *Entity) SetAccessLevel(lvl AccessLevel) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.accessLevel = lvl
}

// IsPlayer reports whether the entity has no staff privileges.
func (e *Entity) IsPlayer() bool {
	return e.AccessLevel() <= AccessVIP
}

// Female reports the gender flag.
func (e *Entity) Female() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.female
}

// SetFemale sets the gender flag.
func (e *Entity) SetFemale(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.female = v
}

// Race returns the entity race.
func (e *Entity) Race() *data.Race {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.race
}

// SetRace sets the entity race. nil resets to the default race.
func (e *Entity) SetRace(r *data.Race) {
	if r == nil {
		r = data.DefaultRace()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.race = r
}

// Hue returns the body (skin) hue.
func (e *Entity) Hue() int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hue
}

// SetHue sets the body (skin) hue.
func (e *Entity) SetHue(hue int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hue = hue
}

// Hair returns the hair appearance (ItemID 0 = none).
func (e *Entity) Hair() Appearance {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hair
}

// SetHair sets the hair appearance.
func (e *Entity) SetHair(a Appearance) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hair = a
}

// Beard returns the facial hair appearance (ItemID 0 = none).
func (e *Entity) Beard() Appearance {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.beard
}

// SetBeard sets the facial hair appearance.
func (e *Entity) SetBeard(a Appearance) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.beard = a
}

// Face returns the face appearance.
func (e *Entity) Face() Appearance {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.face
}

// SetFace sets the face appearance.
func (e *Entity) SetFace(a Appearance) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.face = a
}

// Profession returns the starting profession id.
func (e *Entity) Profession() int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.profession
}

// SetProfession sets the starting profession id.
func (e *Entity) SetProfession(id int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profession = id
}

// Stats returns (str, dex, int).
func (e *Entity) Stats() (str, dex, intel int32) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.str, e.dex, e.intel
}

// InitStats sets the three base attributes.
func (e *Entity) InitStats(str, dex, intel int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.str, e.dex, e.intel = str, dex, intel
}

// Skill returns the skill entry. Unknown skills return a zero Skill.
func (e *Entity) Skill(s data.SkillName) Skill {
	if !s.Valid() {
		return Skill{}
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.skills[s]
}

// SetSkillBase sets the fixed-point base value of a skill.
// Returns false for unknown skills.
func (e *Entity) SetSkillBase(s data.SkillName, fixed int32) bool {
	if !s.Valid() {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.skills[s].Base = fixed
	return true
}

// SetSkillCaps sets the same fixed-point cap on every skill.
func (e *Entity) SetSkillCaps(fixed int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.skills {
		e.skills[i].Cap = fixed
	}
}

// SkillsWithValue returns fixed-point bases of every skill above zero.
func (e *Entity) SkillsWithValue() map[data.SkillName]int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[data.SkillName]int32)
	for i, s := range e.skills {
		if s.Base > 0 {
			out[data.SkillName(i)] = s.Base
		}
	}
	return out
}

// Hunger returns the food level.
func (e *Entity) Hunger() int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hunger
}

// SetHunger sets the food level.
func (e *Entity) SetHunger(v int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hunger = v
}

// AutoRenewInsurance reports whether item insurance renews automatically.
func (e *Entity) AutoRenewInsurance() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.autoRenewInsurance
}

// SetAutoRenewInsurance sets insurance auto-renewal.
func (e *Entity) SetAutoRenewInsurance(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoRenewInsurance = v
}

// Young reports new player protection.
func (e *Entity) Young() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.young
}

// SetYoung sets new player protection.
func (e *Entity) SetYoung(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.young = v
}

// Inventory returns the paperdoll and backpack.
// Inventory is not synchronized; it is only touched by the creation flow.
func (e *Entity) Inventory() *Inventory { return e.inventory }

// Backpack is a shortcut for Inventory().Backpack().
func (e *Entity) Backpack() *Container { return e.inventory.Backpack() }

// EquipItem is a shortcut for Inventory().EquipItem(item).
func (e *Entity) EquipItem(item *Item) bool { return e.inventory.EquipItem(item) }

// Location returns the world position.
func (e *Entity) Location() Location {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.location
}

// MoveToWorld sets the world position and marks the entity as placed.
func (e *Entity) MoveToWorld(loc Location) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.location = loc
	e.placed = true
}

// Placed reports whether the entity was moved into the world.
func (e *Entity) Placed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.placed
}
