package stack

import (
	"time"

	"github.com/ayn2op/stackview/anim"
)

type animationKind int

const (
	kindRebound animationKind = iota
	kindTransition
)

type animationKey struct {
	item *Item
	prop Property
}

type runningAnimation struct {
	kind  animationKind
	anim  anim.Animation
	end   float64
	delay time.Duration
}

// animations is the registry of in-flight animations. It is the only writer of
// animated item properties, and at most one animation drives a property of an
// item at a time.
type animations struct {
	running map[animationKey]*runningAnimation
}

func newAnimations() *animations {
	return &animations{running: make(map[animationKey]*runningAnimation)}
}

// start registers a, replacing any animation already driving the property.
func (as *animations) start(item *Item, prop Property, kind animationKind, a anim.Animation, end float64, delay time.Duration) {
	as.running[animationKey{item, prop}] = &runningAnimation{
		kind:  kind,
		anim:  a,
		end:   end,
		delay: delay,
	}
}

// cancelItem stops every animation of item and snaps its properties to their
// targets.
func (as *animations) cancelItem(item *Item) {
	for k, r := range as.running {
		if k.item == item {
			item.setProperty(k.prop, r.end)
			delete(as.running, k)
		}
	}
}

// step advances every animation by dt and drops the finished ones.
func (as *animations) step(dt time.Duration) {
	for k, r := range as.running {
		elapsed := dt
		if r.delay > 0 {
			if elapsed <= r.delay {
				r.delay -= elapsed
				continue
			}
			elapsed -= r.delay
			r.delay = 0
		}
		v, done := r.anim.Step(elapsed)
		if done {
			k.item.setProperty(k.prop, r.end)
			delete(as.running, k)
			continue
		}
		k.item.setProperty(k.prop, v)
	}
}

func (as *animations) active(item *Item) bool {
	for k := range as.running {
		if k.item == item {
			return true
		}
	}
	return false
}

func (as *animations) rebounding() bool {
	for _, r := range as.running {
		if r.kind == kindRebound {
			return true
		}
	}
	return false
}

func (as *animations) len() int {
	return len(as.running)
}

func (as *animations) has(item *Item, prop Property) bool {
	_, ok := as.running[animationKey{item, prop}]
	return ok
}
