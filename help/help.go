// Package help renders the keybinds of a key map as a one-line summary or as
// aligned columns.
package help

import (
	"strings"

	"github.com/ayn2op/stackview"
	"github.com/ayn2op/stackview/keybind"
	"github.com/gdamore/tcell/v2"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help is a primitive drawing the help of a KeyMap.
type Help struct {
	*stackview.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            stackview.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetSeparators sets the separators used between short help entries and
// between full help columns.
func (h *Help) SetSeparators(short, full string) *Help {
	h.shortSeparator, h.fullSeparator = short, full
	return h
}

// SetEllipsis sets the marker appended when entries were left out.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Height returns the rows needed to draw the current mode.
func (h *Help) Height() int {
	if h.keyMap == nil {
		return 0
	}
	if !h.showAll {
		return 1
	}
	rows := 0
	for _, group := range h.keyMap.FullHelp() {
		rows = max(rows, len(helpEntries(group)))
	}
	return max(rows, 1)
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.Box.Draw(screen)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		lines[row].draw(screen, x, y+row, width)
	}
}

// Lines renders the current mode as plain text lines of at most width cells.
func (h *Help) Lines(width int) []string {
	if h.keyMap == nil {
		return nil
	}
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out
}

type segment struct {
	text  string
	style tcell.Style
}

// line is a row of styled segments.
type line []segment

func (l line) width() int {
	w := 0
	for _, s := range l {
		w += stackview.StringWidth(s.text)
	}
	return w
}

func (l line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		if s.text == "" {
			continue
		}
		_, printed := stackview.PrintWithStyle(screen, s.text, x, y, width, stackview.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

func helpEntries(bindings []keybind.Keybind) []keybind.Help {
	entries := make([]keybind.Help, 0, len(bindings))
	for _, kb := range bindings {
		if hp := kb.Help(); kb.Enabled() && (hp.Key != "" || hp.Desc != "") {
			entries = append(entries, hp)
		}
	}
	return entries
}

// shortLine joins entries until the next one would not fit.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) line {
	var out line
	for i, hp := range helpEntries(bindings) {
		item := h.entry(hp, h.Styles.ShortKeyStyle, h.Styles.ShortDescStyle, 0)
		if i > 0 {
			item = append(line{{text: h.shortSeparator, style: h.Styles.ShortSeparatorStyle}}, item...)
		}
		if maxWidth > 0 && out.width()+item.width() > maxWidth {
			return h.withEllipsis(out, maxWidth)
		}
		out = append(out, item...)
	}
	return out
}

// fullLines lays groups out as columns, dropping columns that do not fit.
func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) []line {
	type column struct {
		entries []keybind.Help
		keyW    int
		width   int
	}

	var columns []column
	total, truncated := 0, false
	sepW := stackview.StringWidth(h.fullSeparator)
	for _, group := range groups {
		col := column{entries: helpEntries(group)}
		if len(col.entries) == 0 {
			continue
		}
		for _, e := range col.entries {
			col.keyW = max(col.keyW, stackview.StringWidth(e.Key))
		}
		for _, e := range col.entries {
			w := col.keyW + stackview.StringWidth(e.Desc)
			if e.Key != "" && e.Desc != "" {
				w++
			}
			col.width = max(col.width, w)
		}

		next := col.width
		if len(columns) > 0 {
			next += sepW
		}
		if maxWidth > 0 && total+next > maxWidth {
			truncated = true
			break
		}
		total += next
		columns = append(columns, col)
	}

	if len(columns) == 0 {
		if truncated {
			return []line{{{text: h.ellipsis, style: h.Styles.EllipsisStyle}}}
		}
		return nil
	}

	rows := 0
	for _, col := range columns {
		rows = max(rows, len(col.entries))
	}

	lines := make([]line, rows)
	for row := range lines {
		for i, col := range columns {
			if i > 0 {
				lines[row] = append(lines[row], segment{text: h.fullSeparator, style: h.Styles.FullSeparatorStyle})
			}
			var cell line
			if row < len(col.entries) {
				cell = h.entry(col.entries[row], h.Styles.FullKeyStyle, h.Styles.FullDescStyle, col.keyW)
			}
			// Pad all but the last column so separators stay aligned.
			if pad := col.width - cell.width(); pad > 0 && i < len(columns)-1 {
				cell = append(cell, segment{text: strings.Repeat(" ", pad), style: h.Styles.FullDescStyle})
			}
			lines[row] = append(lines[row], cell...)
		}
	}

	if truncated {
		lines[0] = h.withEllipsis(lines[0], maxWidth)
	}
	return lines
}

// entry renders one keybind help with the key padded to keyW cells.
func (h *Help) entry(hp keybind.Help, keyStyle, descStyle tcell.Style, keyW int) line {
	var out line
	if hp.Key != "" {
		out = append(out, segment{text: hp.Key, style: keyStyle})
	}
	if pad := keyW - stackview.StringWidth(hp.Key); pad > 0 {
		out = append(out, segment{text: strings.Repeat(" ", pad), style: keyStyle})
	}
	if hp.Key != "" && hp.Desc != "" {
		out = append(out, segment{text: " ", style: descStyle})
	}
	if hp.Desc != "" {
		out = append(out, segment{text: hp.Desc, style: descStyle})
	}
	return out
}

// withEllipsis appends the ellipsis when it fits completely.
func (h *Help) withEllipsis(l line, maxWidth int) line {
	if h.ellipsis == "" {
		return l
	}
	tail := line{{text: " " + h.ellipsis, style: h.Styles.EllipsisStyle}}
	if l.width()+tail.width() > maxWidth {
		return l
	}
	return append(l, tail...)
}
