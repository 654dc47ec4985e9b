package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       int32
		wantNil  bool
		wantName string
	}{
		{-1, true, ""},
		{ProfessionCustom, true, ""},
		{1, false, "Warrior"},
		{3, false, "Blacksmith"},
		{7, false, "Ninja"},
		{8, true, ""},
	}

	for _, tt := range tests {
		p := GetProfession(tt.id)
		if tt.wantNil {
			assert.Nil(t, p, "GetProfession(%d)", tt.id)
			continue
		}
		require.NotNil(t, p, "GetProfession(%d)", tt.id)
		assert.Equal(t, tt.id, p.ID)
		assert.Equal(t, tt.wantName, p.Name)
	}
}

// Every template is a legal starting character: 90 stat points, 120 skill points.
func TestProfessions_Budgets(t *testing.T) {
	t.Parallel()

	for id := int32(1); id < int32(len(professions)); id++ {
		p := GetProfession(id)
		require.NotNil(t, p)

		assert.Equal(t, int32(90), p.Str+p.Dex+p.Int, p.Name)

		var total int32
		seen := make(map[SkillName]bool)
		for _, sv := range p.Skills {
			assert.True(t, sv.Skill.Valid(), p.Name)
			assert.False(t, seen[sv.Skill], "%s lists %s twice", p.Name, sv.Skill)
			seen[sv.Skill] = true
			total += sv.Value
		}
		assert.Equal(t, int32(120), total, p.Name)
	}
}

func TestIsBasicProfession(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBasicProfession(ProfessionCustom))
	assert.True(t, IsBasicProfession(3))
	assert.False(t, IsBasicProfession(4))
	assert.False(t, IsBasicProfession(-1))
}
