package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return min(int(f), n-1) }

func TestGetRace(t *testing.T) {
	t.Parallel()

	assert.True(t, GetRace(RaceHuman).IsDefault())
	assert.Same(t, DefaultRace(), GetRace(RaceHuman))
	assert.Equal(t, "Elf", GetRace(RaceElf).Name)
	assert.Equal(t, ExpansionSA, GetRace(RaceGargoyle).RequiredExpansion)
	assert.Nil(t, GetRace(3))
	assert.Nil(t, GetRace(-1))
}

func TestRace_ValidateHair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		race   int32
		female bool
		item   int32
		want   bool
	}{
		{"bald", RaceHuman, false, 0, true},
		{"human short hair", RaceHuman, false, 0x203B, true},
		{"human male gap", RaceHuman, false, 0x2046, false},
		{"human female allows 0x2046", RaceHuman, true, 0x2046, true},
		{"human female gap", RaceHuman, true, 0x2048, false},
		{"elf hair on human", RaceHuman, false, 0x2FBF, false},
		{"elf male only", RaceElf, false, 0x2FCD, true},
		{"elf male only for female", RaceElf, true, 0x2FCD, false},
		{"gargoyle horns", RaceGargoyle, false, 0x425A, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetRace(tt.race).ValidateHair(tt.female, tt.item))
		})
	}
}

func TestRace_ValidateFacialHair(t *testing.T) {
	t.Parallel()

	human := GetRace(RaceHuman)
	assert.True(t, human.ValidateFacialHair(false, 0x203E))
	assert.True(t, human.ValidateFacialHair(true, 0), "none is always allowed")
	assert.False(t, human.ValidateFacialHair(true, 0x203E), "women have no beards")
	assert.False(t, GetRace(RaceElf).ValidateFacialHair(false, 0x203E), "elves have no beards")
}

func TestRace_Faces(t *testing.T) {
	t.Parallel()

	for id := RaceHuman; id <= RaceGargoyle; id++ {
		r := GetRace(id)
		require.NotNil(t, r)

		first := r.RandomFace(false, fixedSource(0))
		last := r.RandomFace(false, fixedSource(1000))
		assert.True(t, r.ValidateFace(false, first), r.Name)
		assert.True(t, r.ValidateFace(false, last), r.Name)
		assert.Equal(t, int32(9), last-first, r.Name)
		assert.False(t, r.ValidateFace(false, last+1), r.Name)
	}
}

func TestRace_SupportsThrowing(t *testing.T) {
	t.Parallel()

	assert.False(t, GetRace(RaceHuman).SupportsThrowing())
	assert.True(t, GetRace(RaceGargoyle).SupportsThrowing())
}
