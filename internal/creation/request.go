package creation

import (
	"errors"

	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
)

// ErrNoSession rejects a request that arrived without an active session.
var ErrNoSession = errors.New("no active session")

// ErrAccountFull rejects a request when the account has no free slot.
var ErrAccountFull = model.ErrAccountFull

// Session is the network session a request arrived on.
type Session struct {
	ID      string `yaml:"id"`
	Account string `yaml:"account"`

	// NewCharacterCreation is set for clients using the newer creation
	// protocol; it raises the stat budget from 80 to 90.
	NewCharacterCreation bool `yaml:"new_character_creation"`
}

// Request is one character creation attempt as submitted by the client.
// The engine never mutates a Request.
type Request struct {
	Session *Session `yaml:"session"`

	Name       string `yaml:"name"`
	Profession int32  `yaml:"profession"`
	Female     bool   `yaml:"female"`
	Race       int32  `yaml:"race"`
	Hue        int32  `yaml:"hue"`

	Str int32 `yaml:"str"`
	Dex int32 `yaml:"dex"`
	Int int32 `yaml:"int"`

	Skills []data.SkillValue `yaml:"skills"`

	HairID   int32 `yaml:"hair_id"`
	HairHue  int32 `yaml:"hair_hue"`
	BeardID  int32 `yaml:"beard_id"`
	BeardHue int32 `yaml:"beard_hue"`
	FaceID   int32 `yaml:"face_id"`
	FaceHue  int32 `yaml:"face_hue"`
	ShirtHue int32 `yaml:"shirt_hue"`
	PantsHue int32 `yaml:"pants_hue"`

	City data.City `yaml:"city"`
}
