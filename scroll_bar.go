package stackview

import "github.com/gdamore/tcell/v2"

// subcell is the number of thumb steps a single track cell can show.
const subcell = 8

var (
	thumbLower = [subcell]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	thumbUpper = [subcell]rune{'▔', '▔', '▀', '▀', '▀', '▀', '█', '█'}
)

// ScrollBar draws a vertical position indicator for a stack list. Lengths
// are counted in items: the content is the whole collection and the
// viewport is the run of items shown between the two stacks.
type ScrollBar struct {
	*Box

	contentLen  int
	viewportLen int
	offset      int

	autoHide   bool
	track      rune
	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewScrollBar returns a new vertical scroll bar.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		autoHide:   true,
		track:      BoxDrawingsLightVertical,
		trackStyle: tcell.StyleDefault.Foreground(Styles.ScrollTrackColor).Background(Styles.PrimitiveBackgroundColor),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.ScrollBarColor).Background(Styles.PrimitiveBackgroundColor),
	}
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(content, viewport int) *ScrollBar {
	s.contentLen = max(content, 0)
	s.viewportLen = max(viewport, 0)
	return s
}

// SetOffset sets the index of the first item in the viewport.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetAutoHide controls whether the bar is hidden when everything fits.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetTrack sets the track rune and style.
func (s *ScrollBar) SetTrack(track rune, style tcell.Style) *ScrollBar {
	s.track = track
	s.trackStyle = style
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

type scrollMetrics struct {
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeScrollMetrics returns the thumb position in subcell units.
func computeScrollMetrics(cells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := cells * subcell
	if trackLen <= 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := contentLen - viewportLen
	if maxOffset == 0 {
		return scrollMetrics{trackLen: trackLen, thumbLen: trackLen}
	}
	offset = min(max(offset, 0), maxOffset)

	thumbLen := min(max(trackLen*viewportLen/contentLen, subcell), trackLen)
	thumbStart := (trackLen - thumbLen) * offset / maxOffset
	return scrollMetrics{trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// glyph returns the rune drawn in track cell i.
func (m scrollMetrics) glyph(i int) (r rune, thumb bool) {
	cellStart, cellEnd := i*subcell, (i+1)*subcell
	start := max(m.thumbStart, cellStart)
	end := min(m.thumbStart+m.thumbLen, cellEnd)
	if end <= start {
		return 0, false
	}
	fill := end - start
	if fill >= subcell {
		return thumbLower[subcell-1], true
	}
	if start == cellStart {
		return thumbUpper[fill-1], true
	}
	return thumbLower[fill-1], true
}

// Visible reports whether the bar draws anything for the current lengths.
func (s *ScrollBar) Visible() bool {
	if s.contentLen <= 0 {
		return false
	}
	return !s.autoHide || s.viewportLen < s.contentLen
}

// Draw draws the scroll bar into the first column of its inner rectangle.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 || !s.Visible() {
		return
	}

	m := computeScrollMetrics(height, s.contentLen, s.viewportLen, s.offset)
	for i := range height {
		if r, ok := m.glyph(i); ok {
			screen.SetContent(x, y+i, r, nil, s.thumbStyle)
		} else {
			screen.SetContent(x, y+i, s.track, nil, s.trackStyle)
		}
	}
}

var _ Primitive = &ScrollBar{}
