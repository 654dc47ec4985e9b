package data

import "github.com/udisondev/charcreate/internal/random"

// Dye hue bounds accepted for player-chosen clothing colors.
const (
	MinDyedHue = 2
	MaxDyedHue = 1001

	// HueMask strips the flag bits a client may send along with a hue.
	HueMask = 0x3FFF

	// BodyHueFlag is OR-ed into a requested skin hue.
	BodyHueFlag = 0x8000
)

// ClipDyedHue clamps hue into [MinDyedHue, MaxDyedHue].
func ClipDyedHue(hue int32) int32 {
	if hue < MinDyedHue {
		return MinDyedHue
	}
	if hue > MaxDyedHue {
		return MaxDyedHue
	}
	return hue
}

// Palette is a contiguous hue range.
type Palette struct {
	From  int32
	Count int32
}

// Contains reports whether hue belongs to the palette.
func (p Palette) Contains(hue int32) bool {
	return hue >= p.From && hue < p.From+p.Count
}

// Random picks a hue from the palette.
func (p Palette) Random(src random.Source) int32 {
	return int32(random.Range(src, int(p.From), int(p.Count)))
}

// Color palettes used for starter clothing.
var (
	PinkHues    = Palette{From: 1201, Count: 54}
	BlueHues    = Palette{From: 1301, Count: 54}
	GreenHues   = Palette{From: 1401, Count: 54}
	OrangeHues  = Palette{From: 1501, Count: 54}
	RedHues     = Palette{From: 1601, Count: 54}
	YellowHues  = Palette{From: 1701, Count: 54}
	NeutralHues = Palette{From: 1801, Count: 108}
)
