package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipDyedHue(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want int32 }{
		{0, MinDyedHue},
		{2, 2},
		{500, 500},
		{1001, 1001},
		{5000, MaxDyedHue},
		{-7, MinDyedHue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClipDyedHue(tt.in), "ClipDyedHue(%d)", tt.in)
	}
}

func TestPalette_Random(t *testing.T) {
	t.Parallel()

	for _, p := range []Palette{PinkHues, BlueHues, GreenHues, OrangeHues, RedHues, YellowHues, NeutralHues} {
		assert.Equal(t, p.From, p.Random(fixedSource(0)))
		last := p.Random(fixedSource(1 << 20))
		assert.Equal(t, p.From+p.Count-1, last)
		assert.True(t, p.Contains(last))
		assert.False(t, p.Contains(last+1))
	}
}
