package tween

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default box color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		default:
			return uint8(v*255 + 0.5)
		}
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// whitePixel is a 1x1 white image scaled up to draw solid boxes. Created
// lazily so the package can be used without a graphics context.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Property names an animatable attribute.
type Property string

const (
	PropX      Property = "x"      // horizontal translation (transform)
	PropY      Property = "y"      // vertical translation (transform)
	PropRotate Property = "rotate" // rotation (transform)
	PropWidth  Property = "width"  // box width (style)
	PropHeight Property = "height" // box height (style)
	PropLeft   Property = "left"   // box left offset (style)
	PropTop    Property = "top"    // box top offset (style)
)

// Attr is one keyed entry of a State.
type Attr struct {
	Key   Property
	Value Value
}

// State is an ordered set of attribute values. Order matters: transform
// expressions are joined in declaration order.
type State []Attr

// S builds a State from alternating keys and values. Values may be Value,
// float64, int or string. Panics on a malformed argument list.
//
//	tween.S(tween.PropX, 0, tween.PropRotate, "0.5turn")
func S(kv ...any) State {
	if len(kv)%2 != 0 {
		panic("tween: S requires key/value pairs")
	}
	st := make(State, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		var key Property
		switch k := kv[i].(type) {
		case Property:
			key = k
		case string:
			key = Property(k)
		default:
			panic("tween: S key must be a Property or string")
		}
		var val Value
		switch v := kv[i+1].(type) {
		case Value:
			val = v
		case float64:
			val = Num(v)
		case int:
			val = Num(float64(v))
		case string:
			val = Str(v)
		default:
			panic("tween: S value must be a Value, float64, int or string")
		}
		st = append(st, Attr{Key: key, Value: val})
	}
	return st
}

// Lookup returns the value stored for key.
func (s State) Lookup(key Property) (Value, bool) {
	for _, a := range s {
		if a.Key == key {
			return a.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the keys in declaration order.
func (s State) Keys() []Property {
	keys := make([]Property, len(s))
	for i, a := range s {
		keys[i] = a.Key
	}
	return keys
}
