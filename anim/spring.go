package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	defaultFPS       = 60
	defaultPrecision = 0.01
)

// Spring animates values with a damped harmonic oscillator.
type Spring struct {
	// Frequency is the angular frequency in radians per second. Higher values
	// make the spring stiffer.
	Frequency float64
	// Damping is the damping ratio: 1 is critically damped, lower values
	// overshoot and oscillate before settling.
	Damping float64
	// Precision is the distance from the target, in value units, under which
	// the animation snaps to the target and reports done.
	Precision float64
	// FPS is the fixed simulation rate. Elapsed time passed to Step is
	// consumed in whole simulation frames.
	FPS int
}

// ReboundSpring returns the spring used to return over-pulled items to rest.
// It is slightly under-damped so the items settle with a small overshoot.
func ReboundSpring() Spring {
	return Spring{Frequency: 14.1, Damping: 0.9, Precision: defaultPrecision, FPS: defaultFPS}
}

// AppearSpring returns the soft, low-bounce spring used for items sliding
// into place when they are inserted.
func AppearSpring() Spring {
	return Spring{Frequency: 7.1, Damping: 0.75, Precision: defaultPrecision, FPS: defaultFPS}
}

// Animate returns a spring animation from from to to, starting at rest.
func (s Spring) Animate(from, to float64) Animation {
	if from == to {
		return settled(to)
	}

	fps := s.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	precision := s.Precision
	if precision <= 0 {
		precision = defaultPrecision
	}
	frequency := s.Frequency
	if frequency <= 0 {
		frequency = ReboundSpring().Frequency
	}
	damping := s.Damping
	if damping <= 0 {
		damping = ReboundSpring().Damping
	}

	return &springAnimation{
		spring:    harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		frame:     time.Second / time.Duration(fps),
		frameSecs: 1 / float64(fps),
		pos:       from,
		target:    to,
		precision: precision,
	}
}

type springAnimation struct {
	spring    harmonica.Spring
	frame     time.Duration
	frameSecs float64

	pos, vel  float64
	target    float64
	precision float64

	// Time received from Step that has not yet been simulated.
	pending time.Duration
	done    bool
}

func (a *springAnimation) Step(dt time.Duration) (float64, bool) {
	if a.done {
		return a.target, true
	}
	if dt > 0 {
		a.pending += dt
	}
	for a.pending >= a.frame {
		a.pending -= a.frame
		a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
		// Snap once both the distance and the next frame's travel are negligible.
		if math.Abs(a.pos-a.target) < a.precision && math.Abs(a.vel*a.frameSecs) < a.precision {
			a.pos, a.vel = a.target, 0
			a.done = true
			a.pending = 0
			break
		}
	}
	return a.pos, a.done
}
