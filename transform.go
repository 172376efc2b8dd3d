package tween

import (
	"math"
	"regexp"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// geometry is a box resolved to pixels within its parent.
type geometry struct {
	X, Y          float64 // top-left before rotation
	Width, Height float64
	Rotation      float64 // radians, about the box center
}

// computeLocalTransform maps the unit square onto the box. Returns
// [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale(W, H) -> Translate(-W/2, -H/2) -> Rotate -> Translate(X+W/2, Y+H/2)
func computeLocalTransform(g geometry) [6]float64 {
	sin, cos := math.Sincos(g.Rotation)
	hw, hh := g.Width/2, g.Height/2

	// After Scale and the pivot translation:
	//   a=W, b=0, c=0, d=H, tx=-W/2, ty=-H/2
	ra := cos * g.Width
	rb := sin * g.Width
	rc := -sin * g.Height
	rd := cos * g.Height
	rtx := cos*-hw - sin*-hh
	rty := sin*-hw + cos*-hh

	return [6]float64{ra, rb, rc, rd, rtx + g.X + hw, rty + g.Y + hh}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformCall matches one function of a transform expression, e.g.
// "translateX(12px)".
var transformCall = regexp.MustCompile(`([A-Za-z]+)\(\s*([^)]*?)\s*\)`)

// parsedTransform is the result of reading a transform expression.
type parsedTransform struct {
	tx, ty     Value
	hasX, hasY bool
	rotation   float64
}

// parseTransform reads the functions the engine emits (translateX,
// translateY, rotate). Later functions of the same kind replace earlier ones.
// Unknown functions are ignored.
func parseTransform(expr string) parsedTransform {
	var p parsedTransform
	for _, m := range transformCall.FindAllStringSubmatch(expr, -1) {
		arg := Str(m[2])
		switch m[1] {
		case "translateX":
			p.tx, p.hasX = arg, true
		case "translateY":
			p.ty, p.hasY = arg, true
		case "rotate":
			p.rotation = angleRadians(arg)
		}
	}
	return p
}

// angleRadians converts an angle value to radians. Unitless angles use the
// rotate default unit.
func angleRadians(v Value) float64 {
	m := MagnitudeOf(v)
	if math.IsNaN(m) {
		return 0
	}
	switch UnitOf(v, PropRotate) {
	case "turn":
		return m * 2 * math.Pi
	case "deg":
		return m * math.Pi / 180
	case "grad":
		return m * math.Pi / 200
	case "rad":
		return m
	default:
		return 0
	}
}

// resolveLength converts a length to pixels. Percentages are relative to
// base. Empty or malformed lengths resolve to fallback.
func resolveLength(s string, key Property, base, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v := Str(s)
	m := MagnitudeOf(v)
	if math.IsNaN(m) {
		return fallback
	}
	if UnitOf(v, key) == "%" {
		return m / 100 * base
	}
	return m
}
