// Package cards provides the demo's card data: built-in color palettes and a
// SQLite card store.
package cards

import "fmt"

// Card is one entry of the demo collection.
type Card struct {
	ID    int64
	Title string
	// Color is a "#rrggbb" hex color.
	Color string
}

// Palette returns the default card colors.
func Palette() []string {
	return []string{
		"#E57373", "#F06292", "#BA68C8", "#9575CD", "#7986CB", "#64B5F6",
		"#4FC3F7", "#4DD0E1", "#4DB6AC", "#81C784", "#AED581", "#DCE775",
		"#FFF176", "#FFD54F", "#FF8A65", "#A1887F", "#E0E0E0", "#90A4AE",
	}
}

// Alternate returns the shorter palette the demo swaps to.
func Alternate() []string {
	return []string{
		"#E57373", "#BA68C8", "#7986CB", "#4FC3F7",
		"#4DB6AC", "#DCE775", "#FFD54F", "#E0E0E0",
	}
}

// Generate returns n cards numbered from 1, colored by cycling palette.
func Generate(n int, palette []string) []Card {
	if n <= 0 || len(palette) == 0 {
		return nil
	}
	out := make([]Card, n)
	for i := range out {
		out[i] = Card{
			ID:    int64(i + 1),
			Title: fmt.Sprintf("Card %d", i+1),
			Color: palette[i%len(palette)],
		}
	}
	return out
}

// Recolor returns a copy of cs colored by cycling palette.
func Recolor(cs []Card, palette []string) []Card {
	out := make([]Card, len(cs))
	copy(out, cs)
	if len(palette) == 0 {
		return out
	}
	for i := range out {
		out[i].Color = palette[i%len(palette)]
	}
	return out
}
