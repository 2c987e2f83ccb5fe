package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayn2op/stackview"
	"github.com/ayn2op/stackview/help"
	"github.com/ayn2op/stackview/keybind"
	"github.com/gdamore/tcell/v2"
)

type viewKeyMap struct {
	list    stackview.StackListKeyMap
	Add     keybind.Keybind
	Remove  keybind.Keybind
	Palette keybind.Keybind
	Help    keybind.Keybind
	Quit    keybind.Keybind
}

func defaultViewKeyMap(list stackview.StackListKeyMap) viewKeyMap {
	return viewKeyMap{
		list:    list,
		Add:     keybind.NewKeybind(keybind.WithKeys("a"), keybind.WithHelp("a", "add")),
		Remove:  keybind.NewKeybind(keybind.WithKeys("x", "delete"), keybind.WithHelp("x", "remove")),
		Palette: keybind.NewKeybind(keybind.WithKeys("space"), keybind.WithHelp("space", "palette")),
		Help:    keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
		Quit:    keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

func (k viewKeyMap) ShortHelp() []keybind.Keybind {
	return append(k.list.ShortHelp(), k.Add, k.Palette, k.Help, k.Quit)
}

func (k viewKeyMap) FullHelp() [][]keybind.Keybind {
	return append(k.list.FullHelp(), []keybind.Keybind{k.Add, k.Remove, k.Palette}, []keybind.Keybind{k.Help, k.Quit})
}

// cardView is the demo's root: the card list above a help bar.
type cardView struct {
	*stackview.Box
	list   *stackview.StackList
	help   *help.Help
	deck   *deck
	keyMap viewKeyMap
}

func newCardView(list *stackview.StackList, d *deck) *cardView {
	v := &cardView{
		Box:    stackview.NewBox(),
		list:   list,
		help:   help.New(),
		deck:   d,
		keyMap: defaultViewKeyMap(list.KeyMap()),
	}
	v.help.SetKeyMap(v.keyMap)
	v.help.SetBorderPadding(0, 0, 1, 1)
	return v
}

// reveal shows the held back cards with the appear transition.
func (v *cardView) reveal() {
	start, n := v.deck.reveal()
	v.list.NotifyItemRangeInserted(start, n)
}

func (v *cardView) Draw(screen tcell.Screen) {
	v.Box.Draw(screen)
	x, y, width, height := v.GetInnerRect()
	helpHeight := min(v.help.Height(), height)
	v.list.SetRect(x, y, width, height-helpHeight)
	v.help.SetRect(x, y+height-helpHeight, width, helpHeight)
	v.list.Draw(screen)
	v.help.Draw(screen)
}

func (v *cardView) InputHandler(event *tcell.EventKey) stackview.Command {
	ctx := context.Background()
	switch {
	case keybind.Matches(event, v.keyMap.Quit):
		return stackview.QuitCommand{}
	case keybind.Matches(event, v.keyMap.Help):
		v.help.SetShowAll(!v.help.ShowAll())
		return stackview.RedrawCommand{}
	case keybind.Matches(event, v.keyMap.Add):
		index, err := v.deck.add(ctx)
		if err != nil {
			slog.Error("failed to add card", "err", err)
			return nil
		}
		v.list.NotifyItemRangeInserted(index, 1)
		return stackview.AnimateCommand{}
	case keybind.Matches(event, v.keyMap.Remove):
		anchor := v.list.Manager().AnchorItem()
		if anchor == nil {
			return nil
		}
		index := anchor.Index()
		if err := v.deck.remove(ctx, index); err != nil {
			slog.Error("failed to remove card", "index", index, "err", err)
			return nil
		}
		v.list.NotifyItemRangeRemoved(index, 1)
		return stackview.AnimateCommand{}
	case keybind.Matches(event, v.keyMap.Palette):
		v.deck.swapPalette()
		v.list.NotifyItemRangeChanged(0, v.deck.Len())
		return stackview.AnimateCommand{}
	}
	return v.list.InputHandler(event)
}

func (v *cardView) MouseHandler(action stackview.MouseAction, event *tcell.EventMouse) stackview.Command {
	return v.list.MouseHandler(action, event)
}

func (v *cardView) Tick(dt time.Duration) bool {
	return v.list.Tick(dt)
}

var (
	_ stackview.Primitive = &cardView{}
	_ stackview.Animated  = &cardView{}
)
