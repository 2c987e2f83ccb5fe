package help

import (
	"testing"

	"github.com/ayn2op/stackview/keybind"
	"github.com/gdamore/tcell/v2"
)

type testKeyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (k testKeyMap) ShortHelp() []keybind.Keybind  { return k.short }
func (k testKeyMap) FullHelp() [][]keybind.Keybind { return k.full }

func bind(key, desc string) keybind.Keybind {
	return keybind.NewKeybind(keybind.WithKeys(key), keybind.WithHelp(key, desc))
}

func newTestHelp() *Help {
	up, down, quit := bind("k1", "up"), bind("k22", "down"), bind("q", "quit")
	return New().SetKeyMap(testKeyMap{
		short: []keybind.Keybind{up, down},
		full:  [][]keybind.Keybind{{up, down}, {quit}},
	})
}

func TestShortHelp(t *testing.T) {
	h := newTestHelp()
	tests := []struct {
		width int
		want  string
	}{
		{width: 0, want: "k1 up • k22 down"},
		{width: 40, want: "k1 up • k22 down"},
		{width: 10, want: "k1 up …"},
		{width: 6, want: "k1 up"},
	}
	for _, tt := range tests {
		lines := h.Lines(tt.width)
		if len(lines) != 1 || lines[0] != tt.want {
			t.Errorf("width %d: want %q, got %q", tt.width, tt.want, lines)
		}
	}
}

func TestFullHelpColumns(t *testing.T) {
	h := newTestHelp().SetShowAll(true)
	want := []string{
		"k1  up      q quit",
		"k22 down    ",
	}
	got := h.Lines(0)
	if len(got) != len(want) {
		t.Fatalf("want %d lines, got %q", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: want %q, got %q", i, want[i], got[i])
		}
	}
	if h.Height() != 2 {
		t.Errorf("want height 2, got %d", h.Height())
	}
}

func TestFullHelpDropsColumnsThatDoNotFit(t *testing.T) {
	h := newTestHelp().SetShowAll(true)
	got := h.Lines(10)
	want := []string{"k1  up …", "k22 down"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestDisabledBindingsAreHidden(t *testing.T) {
	hidden := bind("x", "hidden")
	hidden.SetEnabled(false)
	h := New().SetKeyMap(testKeyMap{short: []keybind.Keybind{hidden, bind("q", "quit")}})
	lines := h.Lines(0)
	if len(lines) != 1 || lines[0] != "q quit" {
		t.Errorf("want %q, got %q", "q quit", lines)
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 1)

	h := newTestHelp()
	h.SetRect(0, 0, 20, 1)
	h.Draw(screen)

	var got []rune
	for x := range 5 {
		r, _, _, _ := screen.GetContent(x, 0)
		got = append(got, r)
	}
	if string(got) != "k1 up" {
		t.Errorf("want %q drawn, got %q", "k1 up", string(got))
	}
}
