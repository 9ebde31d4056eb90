// Package motion holds the named transition presets used by the page and
// turns them into the CSS the browser-side engine drives.
package motion

import "time"

// Preset names.
const (
	FadeUp           = "fadeUp"
	Bloom            = "bloom"
	SlideLeft        = "slideLeft"
	SlideRight       = "slideRight"
	StaggerContainer = "staggerContainer"
	HeroFade         = "heroFade"
	HeroRise         = "heroRise"
	Bob              = "bob"
)

// State is a set of visual properties at one end of a transition.
// X and Y are offsets in pixels, Blur is a radius in pixels.
type State struct {
	Opacity float64
	X       float64
	Y       float64
	Blur    float64
	Scale   float64
}

// Easing is either a named CSS timing function or a cubic bezier curve.
type Easing struct {
	Name  string
	Curve [4]float64
}

var (
	EaseOut   = Easing{Name: "ease-out"}
	EaseInOut = Easing{Name: "ease-in-out"}
)

// Cubic returns a bezier easing.
func Cubic(x1, y1, x2, y2 float64) Easing {
	return Easing{Curve: [4]float64{x1, y1, x2, y2}}
}

// Timing controls how a preset plays. Stagger is the delay between
// consecutive children of a container. Repeat is only meaningful for
// keyframe presets; a negative value repeats forever.
type Timing struct {
	Duration time.Duration
	Ease     Easing
	Delay    time.Duration
	Stagger  time.Duration
	Repeat   int
}

// Infinite marks a keyframe preset that never stops.
const Infinite = -1

// Preset describes a transition from Initial to Target. Keyframes, when
// set, turn the preset into a looping animation visiting each state in
// order instead of a one-shot transition.
type Preset struct {
	Name      string
	Initial   State
	Target    State
	Keyframes []State
	Timing    Timing
}

// Looping reports whether the preset is a keyframe animation.
func (p Preset) Looping() bool {
	return len(p.Keyframes) > 0
}

// Class is the CSS class carrying the preset.
func (p Preset) Class() string {
	return "m-" + p.Name
}

var visible = State{Opacity: 1, Scale: 1}

// Defaults is the preset table the page is designed around.
var Defaults = Table{
	FadeUp: {
		Name:    FadeUp,
		Initial: State{Opacity: 0, Y: 50, Scale: 1},
		Target:  visible,
		Timing:  Timing{Duration: 800 * time.Millisecond, Ease: EaseOut},
	},
	Bloom: {
		Name:    Bloom,
		Initial: State{Opacity: 0, Scale: 0.8, Blur: 10},
		Target:  visible,
		Timing:  Timing{Duration: 900 * time.Millisecond, Ease: Cubic(0.22, 1, 0.36, 1)},
	},
	SlideLeft: {
		Name:    SlideLeft,
		Initial: State{Opacity: 0, X: -70, Scale: 1},
		Target:  visible,
		Timing:  Timing{Duration: 800 * time.Millisecond, Ease: EaseOut},
	},
	SlideRight: {
		Name:    SlideRight,
		Initial: State{Opacity: 0, X: 70, Scale: 1},
		Target:  visible,
		Timing:  Timing{Duration: 800 * time.Millisecond, Ease: EaseOut},
	},
	StaggerContainer: {
		Name:    StaggerContainer,
		Initial: State{Opacity: 0, Scale: 1},
		Target:  visible,
		Timing:  Timing{Duration: 300 * time.Millisecond, Ease: EaseOut, Stagger: 200 * time.Millisecond},
	},
	HeroFade: {
		Name:    HeroFade,
		Initial: State{Opacity: 0, Scale: 1},
		Target:  visible,
		Timing:  Timing{Duration: time.Second, Ease: EaseOut, Delay: 500 * time.Millisecond},
	},
	HeroRise: {
		Name:    HeroRise,
		Initial: State{Opacity: 0, Y: 20, Scale: 1},
		Target:  visible,
		Timing:  Timing{Duration: 800 * time.Millisecond, Ease: EaseOut, Delay: time.Second},
	},
	Bob: {
		Name:      Bob,
		Keyframes: []State{visible, {Opacity: 1, Y: 10, Scale: 1}, visible},
		Timing:    Timing{Duration: 2 * time.Second, Ease: EaseInOut, Repeat: Infinite},
	},
}
