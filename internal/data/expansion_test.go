package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpansion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Expansion
		wantErr bool
	}{
		{"T2A", ExpansionT2A, false},
		{"aos", ExpansionAOS, false},
		{" ml ", ExpansionML, false},
		{"SA", ExpansionSA, false},
		{"HS", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseExpansion(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestExpansion_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for e := ExpansionT2A; e <= ExpansionSA; e++ {
		text, err := e.MarshalText()
		require.NoError(t, err)

		var back Expansion
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, e, back)
	}
	assert.Equal(t, "Expansion(42)", Expansion(42).String())
}

func TestExpansion_AtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, ExpansionSA.AtLeast(ExpansionML))
	assert.True(t, ExpansionAOS.AtLeast(ExpansionAOS))
	assert.False(t, ExpansionLBR.AtLeast(ExpansionAOS))
}
