package tween

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Easing selects one of the registered easing curves. The zero value is
// Linear.
type Easing uint8

const (
	Linear              Easing = iota // constant speed
	EaseInOutSine                     // sine S-curve
	EaseInOutSineBounce               // sine S-curve out to the end value and back
	EaseInQuad                        // quadratic acceleration
	EaseOutQuad                       // quadratic deceleration
	EaseInOutQuad                     // quadratic S-curve
	EaseInOutQuadBounce               // quadratic S-curve out and back
	EaseInCubic                       // cubic acceleration
	EaseOutCubic                      // cubic deceleration
	EaseInOutCubic                    // cubic S-curve
	EaseOutBounce                     // bounces against the end value
	EaseOutBack                       // overshoots the end value then settles
	EaseOutElastic                    // springs around the end value

	numEasings
)

// curve describes one registered easing. shape is evaluated with a begin of
// 0, a change of 1 and a duration of 1, giving the interpolation weight.
// Curves with a weight func are evaluated in float64 instead.
// Doubled curves run the shape over twice the fraction so a single pass goes
// out to the end value and back; they rest at the start value.
type curve struct {
	name        string
	weight      func(t float64) float64
	shape       ease.TweenFunc
	doubled     bool
	endsAtStart bool
}

var curves = [numEasings]curve{
	Linear:              {name: "linear", weight: linearWeight},
	EaseInOutSine:       {name: "easeInOutSine", weight: sineWeight},
	EaseInOutSineBounce: {name: "easeInOutSineBounce", weight: sineWeight, doubled: true, endsAtStart: true},
	EaseInQuad:          {name: "easeInQuad", shape: ease.InQuad},
	EaseOutQuad:         {name: "easeOutQuad", shape: ease.OutQuad},
	EaseInOutQuad:       {name: "easeInOutQuad", shape: ease.InOutQuad},
	EaseInOutQuadBounce: {name: "easeInOutQuadBounce", shape: palindrome(ease.InOutQuad), doubled: true, endsAtStart: true},
	EaseInCubic:         {name: "easeInCubic", shape: ease.InCubic},
	EaseOutCubic:        {name: "easeOutCubic", shape: ease.OutCubic},
	EaseInOutCubic:      {name: "easeInOutCubic", shape: ease.InOutCubic},
	EaseOutBounce:       {name: "easeOutBounce", shape: ease.OutBounce},
	EaseOutBack:         {name: "easeOutBack", shape: ease.OutBack},
	EaseOutElastic:      {name: "easeOutElastic", shape: ease.OutElastic},
}

var easingsByName = func() map[string]Easing {
	m := make(map[string]Easing, len(curves))
	for i, c := range curves {
		m[c.name] = Easing(i)
	}
	return m
}()

func linearWeight(t float64) float64 { return t }

// sineWeight is the cosine S-curve. Over [0, 2] it runs out and back.
func sineWeight(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// palindrome mirrors an out-and-in shape over [0, 2]: the second half replays
// the first in reverse. Sine needs no wrapper because cos is already periodic.
func palindrome(fn ease.TweenFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if t > d {
			t = 2*d - t
		}
		return fn(t, b, c, d)
	}
}

// ParseEasing returns the easing registered under name, e.g. "easeInOutSine".
func ParseEasing(name string) (Easing, error) {
	e, ok := easingsByName[name]
	if !ok {
		return Linear, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}

// Easings returns every registered easing in declaration order.
func Easings() []Easing {
	out := make([]Easing, numEasings)
	for i := range out {
		out[i] = Easing(i)
	}
	return out
}

// String returns the registered name.
func (e Easing) String() string {
	if e >= numEasings {
		return fmt.Sprintf("Easing(%d)", uint8(e))
	}
	return curves[e].name
}

// Valid reports whether e names a registered curve.
func (e Easing) Valid() bool {
	return e < numEasings
}

// EndsAtStart reports whether a finished run of this curve comes to rest on
// the start value instead of the end value.
func (e Easing) EndsAtStart() bool {
	return e.Valid() && curves[e].endsAtStart
}

// Eval interpolates between start and end at the elapsed fraction. The
// fraction is clamped to [0, 1] first, so slightly late frames land exactly on
// the boundary value.
func (e Easing) Eval(fraction, start, end float64) float64 {
	c := curves[Linear]
	if e.Valid() {
		c = curves[e]
	}
	t := clamp01(fraction)
	if c.doubled {
		t *= 2
	}
	var w float64
	if c.weight != nil {
		w = c.weight(t)
	} else {
		w = float64(c.shape(float32(t), 0, 1, 1))
	}
	return start + (end-start)*w
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	case f != f:
		// NaN
		return 0
	default:
		return f
	}
}
