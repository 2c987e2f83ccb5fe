package stack

import (
	"log/slog"
	"time"

	"github.com/ayn2op/stackview/anim"
)

const (
	// DefaultStackFraction is the share of the viewport height, as 1/n, taken
	// by each stack region.
	DefaultStackFraction = 6
	// DefaultSlotSize is the stack slot height in density independent units.
	DefaultSlotSize = 20
	// DefaultStagger is the delay between the appearance of two neighbours.
	DefaultStagger = 100 * time.Millisecond
)

// Option configures a Manager.
type Option func(*Manager)

// WithStackFraction sets the stack region height to viewportHeight/n. Values
// below 2 are raised to 2 so the two regions never overlap.
func WithStackFraction(n int) Option {
	return func(m *Manager) {
		m.stackFraction = max(n, 2)
	}
}

// WithSlotSize sets the stack slot height in density independent units.
func WithSlotSize(size float64) Option {
	return func(m *Manager) {
		if size > 0 {
			m.slotSize = size
		}
	}
}

// WithDensity sets the number of layout units per density independent unit.
func WithDensity(density float64) Option {
	return func(m *Manager) {
		if density > 0 {
			m.density = density
		}
	}
}

// WithAnimator sets the animator used to return over-pulled items to rest.
func WithAnimator(a anim.Animator) Option {
	return func(m *Manager) {
		if a != nil {
			m.reboundAnimator = a
		}
	}
}

// WithAppearAnimator sets the animator that runs transition tweens.
func WithAppearAnimator(a anim.Animator) Option {
	return func(m *Manager) {
		if a != nil {
			m.appearAnimator = a
		}
	}
}

// WithTransition sets the transition run for kind. A nil transition disables
// the kind.
func WithTransition(kind TransitionKind, t Transition) Option {
	return func(m *Manager) {
		m.transitions[kind] = t
	}
}

// WithStagger sets the delay between the appearance of neighbouring items.
func WithStagger(d time.Duration) Option {
	return func(m *Manager) {
		m.stagger = max(d, 0)
	}
}

// WithLogger sets the manager's logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}
