// Package config loads the JSON configuration of the stackview demo and maps
// it onto layout engine options.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ayn2op/stackview/anim"
	"github.com/ayn2op/stackview/stack"
)

const fileName = "config.json"

// Config is the configuration file.
type Config struct {
	Layout  Layout `json:"layout"`
	Rebound Spring `json:"rebound"`
	Appear  Spring `json:"appear"`
	View    View   `json:"view"`
}

// Layout holds the engine constants.
type Layout struct {
	// StackFraction is n in viewportHeight/n, the height of each stack region.
	StackFraction int `json:"stack_fraction"`
	// SlotSize is the stack slot height in density independent units.
	SlotSize float64 `json:"slot_size"`
	// Density is the number of rows per density independent unit.
	Density float64 `json:"density"`
	// CardHeight is the card height in rows. Zero uses a quarter of the
	// viewport.
	CardHeight int     `json:"card_height"`
	Margins    Margins `json:"margins"`
	// StaggerMS is the delay between neighbouring appearing cards.
	StaggerMS int `json:"stagger_ms"`
}

type Margins struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Spring parameterizes a damped spring animation.
type Spring struct {
	Frequency float64 `json:"frequency"`
	Damping   float64 `json:"damping"`
	Precision float64 `json:"precision"`
}

// View holds the terminal host settings.
type View struct {
	Title       string `json:"title"`
	FrameRate   int    `json:"frame_rate"`
	IdleDelayMS int    `json:"idle_delay_ms"`
	ScrollStep  int    `json:"scroll_step"`
	WheelStep   int    `json:"wheel_step"`
}

// Default returns the configuration used when no file exists. Slots are one
// row tall at a density of one row per unit.
func Default() Config {
	rebound, appear := anim.ReboundSpring(), anim.AppearSpring()
	return Config{
		Layout: Layout{
			StackFraction: stack.DefaultStackFraction,
			SlotSize:      1,
			Density:       1,
			Margins:       Margins{Left: 1, Right: 1},
			StaggerMS:     int(stack.DefaultStagger / time.Millisecond),
		},
		Rebound: Spring{Frequency: rebound.Frequency, Damping: rebound.Damping, Precision: 0.5},
		Appear:  Spring{Frequency: appear.Frequency, Damping: appear.Damping, Precision: 0.5},
		View: View{
			Title:       "Cards",
			FrameRate:   60,
			IdleDelayMS: 150,
			ScrollStep:  1,
			WheelStep:   2,
		},
	}
}

// DefaultPath returns the configuration file in the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "stackview", fileName), nil
}

// Load reads the configuration at path over the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the engine cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.StackFraction < 2 {
		errs = append(errs, fmt.Errorf("layout.stack_fraction must be at least 2, got %d", c.Layout.StackFraction))
	}
	if c.Layout.SlotSize <= 0 {
		errs = append(errs, fmt.Errorf("layout.slot_size must be positive, got %g", c.Layout.SlotSize))
	}
	if c.Layout.Density <= 0 {
		errs = append(errs, fmt.Errorf("layout.density must be positive, got %g", c.Layout.Density))
	}
	if c.Layout.CardHeight < 0 {
		errs = append(errs, fmt.Errorf("layout.card_height must not be negative, got %d", c.Layout.CardHeight))
	}
	for name, s := range map[string]Spring{"rebound": c.Rebound, "appear": c.Appear} {
		if s.Frequency <= 0 || s.Damping <= 0 {
			errs = append(errs, fmt.Errorf("%s spring needs positive frequency and damping", name))
		}
	}
	if c.View.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("view.frame_rate must be positive, got %d", c.View.FrameRate))
	}
	return errors.Join(errs...)
}

// Spring returns the animator for s at the given frame rate.
func (s Spring) Spring(fps int) anim.Spring {
	return anim.Spring{Frequency: s.Frequency, Damping: s.Damping, Precision: s.Precision, FPS: fps}
}

// LayoutOptions maps the configuration onto layout engine options.
func (c Config) LayoutOptions() []stack.Option {
	return []stack.Option{
		stack.WithStackFraction(c.Layout.StackFraction),
		stack.WithSlotSize(c.Layout.SlotSize),
		stack.WithDensity(c.Layout.Density),
		stack.WithStagger(time.Duration(c.Layout.StaggerMS) * time.Millisecond),
		stack.WithAnimator(c.Rebound.Spring(c.View.FrameRate)),
		stack.WithAppearAnimator(c.Appear.Spring(c.View.FrameRate)),
	}
}

// CardMargins returns the card margins as engine margins.
func (c Config) CardMargins() stack.Margins {
	m := c.Layout.Margins
	return stack.Margins{Left: m.Left, Top: m.Top, Right: m.Right, Bottom: m.Bottom}
}

// IdleDelay returns the pause after which scrolling counts as idle.
func (c Config) IdleDelay() time.Duration {
	return time.Duration(c.View.IdleDelayMS) * time.Millisecond
}
