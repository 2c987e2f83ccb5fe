// Package anim animates a single value from a start to a target.
//
// The layout engine treats animations as an opaque service: it asks an
// Animator for an Animation and polls it from its own frame loop. Nothing in
// this package schedules work on its own; callers drive time forward with
// Animation.Step.
package anim

import "time"

// Animation is an in-flight transition of one value.
type Animation interface {
	// Step advances the animation by dt and returns the current value and
	// whether the animation has settled on its target.
	Step(dt time.Duration) (value float64, done bool)
}

// Animator creates animations.
type Animator interface {
	Animate(from, to float64) Animation
}

// AnimatorFunc adapts a function to the Animator interface.
type AnimatorFunc func(from, to float64) Animation

// Animate calls f(from, to).
func (f AnimatorFunc) Animate(from, to float64) Animation {
	return f(from, to)
}

// settled is an animation that has already reached its target.
type settled float64

func (s settled) Step(time.Duration) (float64, bool) {
	return float64(s), true
}
