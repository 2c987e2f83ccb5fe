package stackview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the box at (x,y,maxWidth,1) with
// the given foreground color, keeping the background already on screen.
//
// It returns the screen width used by the printed text.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) int {
	_, width := printWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return width
}

// PrintWithStyle works like [Print] but overwrites cells with style,
// background included. It returns the column where printing started and the
// printed width.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	return printWithStyle(screen, text, x, y, maxWidth, alignment, style, false)
}

func printWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= totalHeight {
		return x, 0
	}

	if StringWidth(text) > maxWidth {
		text = runewidth.Truncate(text, maxWidth, string(SemigraphicsHorizontalEllipsis))
	}
	textWidth := StringWidth(text)
	switch alignment {
	case AlignmentCenter:
		x += (maxWidth - textWidth) / 2
	case AlignmentRight:
		x += maxWidth - textWidth
	}
	start = x

	state := -1
	rightBorder := x + maxWidth
	for text != "" && x < rightBorder && x < totalWidth {
		var cluster string
		var boundaries int
		cluster, text, boundaries, state = uniseg.StepString(text, state)
		width := boundaries >> uniseg.ShiftWidth
		if width == 0 {
			continue
		}
		if x+width > rightBorder {
			break
		}

		finalStyle := style
		if maintainBackground {
			_, _, existing, _ := screen.GetContent(x, y)
			_, background, _ := existing.Decompose()
			finalStyle = finalStyle.Background(background)
		}
		runes := []rune(cluster)
		// Trailing cells of wide clusters are populated first so the main
		// cell wins.
		for offset := width - 1; offset > 0; offset-- {
			screen.SetContent(x+offset, y, ' ', nil, finalStyle)
		}
		if x >= 0 {
			screen.SetContent(x, y, runes[0], runes[1:], finalStyle)
		}
		x += width
		printedWidth += width
	}
	return start, printedWidth
}

// StringWidth returns the screen width of text measured in grapheme clusters.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// fillRect paints the rectangle with spaces in style, clipped to the screen.
func fillRect(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	totalWidth, totalHeight := screen.Size()
	for row := max(y, 0); row < y+height && row < totalHeight; row++ {
		for col := max(x, 0); col < x+width && col < totalWidth; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
