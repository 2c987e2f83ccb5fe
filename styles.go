package stackview

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. labels).
	CardTextColor            tcell.Color // Text on card faces.
	ScrollBarColor           tcell.Color // Scroll bar thumb.
	ScrollTrackColor         tcell.Color // Scroll bar track.
}

// Styles defines the theme for applications.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	BorderColor:              tcell.ColorGray,
	TitleColor:               tcell.ColorWhite,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorSilver,
	CardTextColor:            tcell.NewRGBColor(0x21, 0x21, 0x21),
	ScrollBarColor:           tcell.ColorSilver,
	ScrollTrackColor:         tcell.NewRGBColor(0x30, 0x30, 0x30),
}

// BlendColor mixes c over background with the given opacity in [0, 1].
// Colors without an RGB value are returned unchanged when alpha is above
// one half and replaced by background otherwise.
func BlendColor(c, background tcell.Color, alpha float64) tcell.Color {
	switch {
	case alpha >= 1:
		return c
	case alpha <= 0:
		return background
	}
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := background.RGB()
	if r1 < 0 || r2 < 0 {
		if alpha >= 0.5 {
			return c
		}
		return background
	}
	mix := func(a, b int32) int32 {
		return int32(math.Round(float64(b) + (float64(a)-float64(b))*alpha))
	}
	return tcell.NewRGBColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}
