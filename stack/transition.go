package stack

import "time"

// Property is an animatable visual property of an Item.
type Property int

const (
	TranslationX Property = iota
	TranslationY
	ScaleX
	ScaleY
	Alpha
)

func (p Property) String() string {
	switch p {
	case TranslationX:
		return "translation_x"
	case TranslationY:
		return "translation_y"
	case ScaleX:
		return "scale_x"
	case ScaleY:
		return "scale_y"
	case Alpha:
		return "alpha"
	}
	return "unknown"
}

// Tween animates one property from Start to End.
type Tween struct {
	Property Property
	Start    float64
	End      float64
	// Delay postpones the start. The property holds Start while waiting.
	Delay time.Duration
}

// TransitionKind classifies how an item took part in a data change.
type TransitionKind int

const (
	// Appear is an item that was inserted and is now laid out.
	Appear TransitionKind = iota
	// Disappear is a laid out item that was removed.
	Disappear
	// Persist is a laid out item that stays laid out.
	Persist
	// Change is a laid out item whose content changed.
	Change
)

func (k TransitionKind) String() string {
	switch k {
	case Appear:
		return "appear"
	case Disappear:
		return "disappear"
	case Persist:
		return "persist"
	case Change:
		return "change"
	}
	return "unknown"
}

// Transition returns the tweens run for an item. A nil result runs nothing.
type Transition func(item *Item, g Geometry) []Tween

// SlideUp is the default Appear transition: the item rises from the bottom of
// the viewport into its laid out position.
func SlideUp(_ *Item, g Geometry) []Tween {
	return []Tween{{Property: TranslationY, Start: float64(g.ViewportHeight), End: 0}}
}

// FadeOut fades an item to transparent.
func FadeOut(*Item, Geometry) []Tween {
	return []Tween{{Property: Alpha, Start: 1, End: 0}}
}

func defaultTransitions() map[TransitionKind]Transition {
	return map[TransitionKind]Transition{
		Appear: SlideUp,
	}
}

// runTransition starts the tweens of kind for item, after an extra delay.
func (m *Manager) runTransition(kind TransitionKind, item *Item, delay time.Duration) int {
	t := m.transitions[kind]
	if t == nil {
		return 0
	}
	tweens := t(item, m.geom)
	for _, tw := range tweens {
		item.setProperty(tw.Property, tw.Start)
		m.anims.start(item, tw.Property, kindTransition, m.appearAnimator.Animate(tw.Start, tw.End), tw.End, tw.Delay+delay)
	}
	return len(tweens)
}
