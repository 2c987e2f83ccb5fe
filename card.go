package stackview

import "github.com/gdamore/tcell/v2"

// Card is the content of one stack list entry: a filled, rounded frame with
// the title on its top edge so a card collapsed into a one-row stack slot
// still shows it.
type Card struct {
	Title    string
	Subtitle string
	Color    tcell.Color
}

// Draw draws the card into the rectangle at (x, y) faded over background by
// alpha.
func (c Card) Draw(screen tcell.Screen, x, y, width, height int, alpha float64, background tcell.Color) {
	if width < 2 || height < 1 || alpha <= 0 {
		return
	}

	face := BlendColor(c.Color, background, alpha)
	edge := BlendColor(BlendColor(c.Color, tcell.ColorBlack, 0.6), background, alpha)
	text := BlendColor(Styles.CardTextColor, face, alpha)
	faceStyle := tcell.StyleDefault.Background(face)
	edgeStyle := faceStyle.Foreground(edge)

	fillRect(screen, x, y, width, height, faceStyle)

	set := BorderSetRound()
	right, bottom := x+width-1, y+height-1
	for col := x + 1; col < right; col++ {
		screen.SetContent(col, y, set.Top, nil, edgeStyle)
		if height > 1 {
			screen.SetContent(col, bottom, set.Bottom, nil, edgeStyle)
		}
	}
	for row := y + 1; row < bottom; row++ {
		screen.SetContent(x, row, set.Left, nil, edgeStyle)
		screen.SetContent(right, row, set.Right, nil, edgeStyle)
	}
	screen.SetContent(x, y, set.TopLeft, nil, edgeStyle)
	screen.SetContent(right, y, set.TopRight, nil, edgeStyle)
	if height > 1 {
		screen.SetContent(x, bottom, set.BottomLeft, nil, edgeStyle)
		screen.SetContent(right, bottom, set.BottomRight, nil, edgeStyle)
	}

	if c.Title != "" && width > 4 {
		PrintWithStyle(screen, " "+c.Title+" ", x+1, y, width-2, AlignmentLeft, faceStyle.Foreground(text).Bold(true))
	}
	if c.Subtitle != "" && height > 2 && width > 4 {
		PrintWithStyle(screen, c.Subtitle, x+2, y+1, width-4, AlignmentLeft, faceStyle.Foreground(text))
	}
}

// clippedScreen drops cells written outside its rectangle.
type clippedScreen struct {
	tcell.Screen
	x, y, width, height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{Screen: screen, x: x, y: y, width: width, height: height}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}
