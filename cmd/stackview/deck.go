package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayn2op/stackview"
	"github.com/ayn2op/stackview/internal/cards"
	"github.com/gdamore/tcell/v2"
)

// deck is the demo's card collection. Cards are held back until reveal so
// they can slide in after start-up.
type deck struct {
	cards    []cards.Card
	visible  int
	palettes [][]string
	palette  int
	store    *cards.Store
}

func newDeck(cs []cards.Card, store *cards.Store) *deck {
	return &deck{
		cards:    cs,
		palettes: [][]string{cards.Palette(), cards.Alternate()},
		store:    store,
	}
}

// Len implements stackview.CardSource.
func (d *deck) Len() int {
	return d.visible
}

// Card implements stackview.CardSource.
func (d *deck) Card(index int) (stackview.Card, error) {
	if index < 0 || index >= d.visible {
		return stackview.Card{}, fmt.Errorf("card %d out of range [0, %d)", index, d.visible)
	}
	c := d.cards[index]
	return stackview.Card{
		Title:    c.Title,
		Subtitle: fmt.Sprintf("#%d  %s", c.ID, strings.ToLower(c.Color)),
		Color:    tcell.GetColor(c.Color),
	}, nil
}

// reveal makes every held back card visible and returns the inserted range.
func (d *deck) reveal() (start, n int) {
	start = d.visible
	d.visible = len(d.cards)
	return start, d.visible - start
}

// add appends a card and returns its index.
func (d *deck) add(ctx context.Context) (int, error) {
	palette := d.palettes[d.palette]
	next := len(d.cards)
	c := cards.Card{
		ID:    int64(next + 1),
		Title: fmt.Sprintf("Card %d", next+1),
		Color: palette[next%len(palette)],
	}
	if d.store != nil {
		stored, err := d.store.Add(ctx, c.Title, c.Color)
		if err != nil {
			return 0, err
		}
		c = stored
	}
	d.cards = append(d.cards, c)
	d.visible = len(d.cards)
	return next, nil
}

// remove deletes the visible card at index.
func (d *deck) remove(ctx context.Context, index int) error {
	if index < 0 || index >= d.visible {
		return fmt.Errorf("card %d out of range [0, %d)", index, d.visible)
	}
	if d.store != nil {
		if err := d.store.Delete(ctx, d.cards[index].ID); err != nil {
			return err
		}
	}
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
	d.visible--
	return nil
}

// swapPalette recolors every card with the next palette.
func (d *deck) swapPalette() {
	d.palette = (d.palette + 1) % len(d.palettes)
	d.cards = cards.Recolor(d.cards, d.palettes[d.palette])
}
