package data

import "github.com/udisondev/charcreate/internal/random"

// Race ids as sent by the client.
const (
	RaceHuman    int32 = 0
	RaceElf      int32 = 1
	RaceGargoyle int32 = 2
)

// Race describes a playable race and its appearance rules.
type Race struct {
	ID                int32
	Name              string
	RequiredExpansion Expansion

	// Appearance rules. A zero item id ("none") is always accepted for hair and beard.
	maleHair     []idRange
	femaleHair   []idRange
	maleBeard    []idRange
	femaleBeard  []idRange
	faces        idRange
	canThrowItem bool
}

type idRange struct{ from, to int32 }

func (r idRange) contains(id int32) bool { return id >= r.from && id <= r.to }

func single(id int32) idRange { return idRange{id, id} }

func anyContains(ranges []idRange, id int32) bool {
	for _, r := range ranges {
		if r.contains(id) {
			return true
		}
	}
	return false
}

var races = [...]*Race{
	RaceHuman: {
		ID: RaceHuman, Name: "Human", RequiredExpansion: ExpansionT2A,
		maleHair:   []idRange{{0x203B, 0x203D}, {0x2044, 0x2045}, {0x2047, 0x204A}},
		femaleHair: []idRange{{0x203B, 0x203D}, {0x2044, 0x2047}, {0x2049, 0x204A}},
		maleBeard:  []idRange{{0x203E, 0x2041}, {0x204B, 0x204D}},
		faces:      idRange{0x3B44, 0x3B4D},
	},
	RaceElf: {
		ID: RaceElf, Name: "Elf", RequiredExpansion: ExpansionML,
		maleHair:   []idRange{{0x2FBF, 0x2FC2}, single(0x2FCD), {0x2FCE, 0x2FCF}, {0x2FD1, 0x2FD2}},
		femaleHair: []idRange{{0x2FBF, 0x2FC2}, single(0x2FCC), {0x2FCE, 0x2FD0}, single(0x2FD2)},
		faces:      idRange{0x3B4E, 0x3B57},
	},
	RaceGargoyle: {
		ID: RaceGargoyle, Name: "Gargoyle", RequiredExpansion: ExpansionSA,
		maleHair: []idRange{{0x4258, 0x425F}},
		femaleHair: []idRange{
			{0x4261, 0x4262}, {0x4273, 0x4275}, {0x42AA, 0x42AB}, {0x42B0, 0x42B1},
		},
		maleBeard:    []idRange{{0x42AD, 0x42AF}},
		faces:        idRange{0x5679, 0x5682},
		canThrowItem: true,
	},
}

// DefaultRace is the race every character falls back to.
func DefaultRace() *Race { return races[RaceHuman] }

// GetRace returns the race for id, or nil if unknown.
func GetRace(id int32) *Race {
	if id < 0 || int(id) >= len(races) {
		return nil
	}
	return races[id]
}

// IsDefault reports whether r is the default race.
func (r *Race) IsDefault() bool { return r == DefaultRace() }

// ValidateHair reports whether hair item id is allowed for this race and gender.
func (r *Race) ValidateHair(female bool, itemID int32) bool {
	if itemID == 0 {
		return true
	}
	if female {
		return anyContains(r.femaleHair, itemID)
	}
	return anyContains(r.maleHair, itemID)
}

// ValidateFacialHair reports whether beard item id is allowed for this race and gender.
func (r *Race) ValidateFacialHair(female bool, itemID int32) bool {
	if itemID == 0 {
		return true
	}
	if female {
		return anyContains(r.femaleBeard, itemID)
	}
	return anyContains(r.maleBeard, itemID)
}

// ValidateFace reports whether face item id is allowed for this race.
func (r *Race) ValidateFace(_ bool, itemID int32) bool {
	return r.faces.contains(itemID)
}

// RandomFace picks one of the race's faces.
func (r *Race) RandomFace(_ bool, src random.Source) int32 {
	return int32(random.Range(src, int(r.faces.from), int(r.faces.to-r.faces.from+1)))
}

// SupportsThrowing reports whether the race may wield throwing weapons.
func (r *Race) SupportsThrowing() bool { return r.canThrowItem }
