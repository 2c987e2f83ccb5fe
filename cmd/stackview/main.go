// Command stackview shows a collection of colored cards in a terminal. Cards
// scrolled past the top or bottom collapse into stacks, and pulling past
// either end of the collection springs back once scrolling stops.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ayn2op/stackview"
	"github.com/ayn2op/stackview/config"
	"github.com/ayn2op/stackview/internal/cards"
	"github.com/ayn2op/stackview/stack"
	"golang.org/x/term"
)

// revealDelay is how long the list stays empty before the cards slide in.
const revealDelay = 200 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "stackview:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "configuration file (default: stackview/config.json in the user config dir)")
	dbPath := flag.String("db", "", "SQLite card database, seeded with generated cards on first use")
	items := flag.Int("items", 40, "number of generated cards")
	verbose := flag.Bool("verbose", false, "log layout engine debug records")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	closeLog, err := setupLogging(*logPath, *verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	path := *configPath
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			slog.Warn("using default configuration", "err", err)
		}
	}
	cfg := config.Default()
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	ctx := context.Background()
	d, closeStore, err := loadDeck(ctx, *dbPath, *items)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := append(cfg.LayoutOptions(), stack.WithTransition(stack.Disappear, stack.FadeOut))
	list := stackview.NewStackList(d, opts...)
	list.SetCardHeight(cfg.Layout.CardHeight).
		SetCardMargins(cfg.CardMargins()).
		SetScrollStep(cfg.View.ScrollStep).
		SetWheelStep(cfg.View.WheelStep).
		SetIdleDelay(cfg.IdleDelay())
	list.SetBorders(stackview.BordersAll).
		SetBorderSet(stackview.BorderSetRound()).
		SetTitle(" " + cfg.View.Title + " ")

	view := newCardView(list, d)
	app := stackview.NewApplication().SetFrameRate(cfg.View.FrameRate)
	app.SetRoot(view)

	go func() {
		time.Sleep(revealDelay)
		app.QueueUpdateDraw(view.reveal)
	}()

	slog.Info("starting", "cards", len(d.cards), "config", path)
	return app.Run()
}

// setupLogging sends application and engine logs to path, or discards them
// when path is empty since the terminal belongs to the UI.
func setupLogging(path string, verbose bool) (func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	stack.SetVerbose(verbose)

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	stack.SetLogOutput(w)
	return closeFn, nil
}

// loadDeck returns generated cards, or the cards of the database at dbPath
// seeded with generated ones when it is empty.
func loadDeck(ctx context.Context, dbPath string, n int) (*deck, func(), error) {
	generated := cards.Generate(n, cards.Palette())
	if dbPath == "" {
		return newDeck(generated, nil), func() {}, nil
	}

	store, err := cards.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open card database: %w", err)
	}
	if _, err := store.Seed(ctx, generated); err != nil {
		store.Close()
		return nil, nil, err
	}
	cs, err := store.List(ctx)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return newDeck(cs, store), func() { store.Close() }, nil
}
