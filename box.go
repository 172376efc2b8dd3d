package tween

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- ID counter ---

// boxIDCounter is a plain counter; the package is single-threaded.
var boxIDCounter uint32

func nextBoxID() uint32 {
	boxIDCounter++
	return boxIDCounter
}

// --- Box ---

// Box is a solid rectangle that implements Element. It keeps the style strings
// written to it and resolves them to pixels against its parent rectangle when
// drawn, the way a browser lays out an absolutely positioned element.
//
// Defaults: 0px left/top, width and height from NewBox, no transform.
type Box struct {
	// Identity
	ID   uint32
	Name string

	Color   Color
	Visible bool

	// Style as last written.
	transform string
	width     string
	height    string
	left      string
	top       string

	// Cached layout, recomputed when the style or parent changes.
	parsed      parsedTransform
	geom        geometry
	matrix      [6]float64
	parent      Rect
	layoutDirty bool

	writes   int
	disposed bool
}

// NewBox creates a visible white box of the given pixel size.
func NewBox(name string, width, height float64) *Box {
	return &Box{
		ID:          nextBoxID(),
		Name:        name,
		Color:       ColorWhite,
		Visible:     true,
		width:       FormatValue(width, "px"),
		height:      FormatValue(height, "px"),
		layoutDirty: true,
	}
}

// SetTransform sets the transform expression, e.g.
// "translateX(10px) rotate(0.25turn)".
func (b *Box) SetTransform(expr string) {
	b.transform = expr
	b.parsed = parseTransform(expr)
	b.touch()
}

// SetWidth sets the width. Percentages are relative to the parent width.
func (b *Box) SetWidth(v string) {
	b.width = v
	b.touch()
}

// SetHeight sets the height. Percentages are relative to the parent height.
func (b *Box) SetHeight(v string) {
	b.height = v
	b.touch()
}

// SetLeft sets the offset from the parent's left edge.
func (b *Box) SetLeft(v string) {
	b.left = v
	b.touch()
}

// SetTop sets the offset from the parent's top edge.
func (b *Box) SetTop(v string) {
	b.top = v
	b.touch()
}

func (b *Box) touch() {
	b.writes++
	b.layoutDirty = true
}

// Transform returns the last transform expression written.
func (b *Box) Transform() string { return b.transform }

// Width returns the last width written.
func (b *Box) Width() string { return b.width }

// Height returns the last height written.
func (b *Box) Height() string { return b.height }

// Left returns the last left offset written.
func (b *Box) Left() string { return b.left }

// Top returns the last top offset written.
func (b *Box) Top() string { return b.top }

// Writes returns how many style writes the box has received.
func (b *Box) Writes() int { return b.writes }

// Layout resolves the style against parent and returns the box's pixel
// rectangle before rotation, and its rotation in radians.
func (b *Box) Layout(parent Rect) (Rect, float64) {
	b.updateLayout(parent)
	g := b.geom
	return Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}, g.Rotation
}

func (b *Box) updateLayout(parent Rect) {
	if !b.layoutDirty && parent == b.parent {
		return
	}
	w := resolveLength(b.width, PropWidth, parent.Width, 0)
	h := resolveLength(b.height, PropHeight, parent.Height, 0)

	var tx, ty float64
	if b.parsed.hasX {
		tx = resolveLength(b.parsed.tx.String(), PropX, w, 0)
	}
	if b.parsed.hasY {
		ty = resolveLength(b.parsed.ty.String(), PropY, h, 0)
	}

	b.geom = geometry{
		X:        parent.X + resolveLength(b.left, PropLeft, parent.Width, 0) + tx,
		Y:        parent.Y + resolveLength(b.top, PropTop, parent.Height, 0) + ty,
		Width:    w,
		Height:   h,
		Rotation: b.parsed.rotation,
	}
	b.matrix = computeLocalTransform(b.geom)
	b.parent = parent
	b.layoutDirty = false
}

// Contains reports whether the point (x, y), in the parent's coordinate space,
// lies inside the rotated box.
func (b *Box) Contains(parent Rect, x, y float64) bool {
	b.updateLayout(parent)
	u, v := transformPoint(invertAffine(b.matrix), x, y)
	return u >= 0 && u <= 1 && v >= 0 && v <= 1
}

// Draw renders the box onto dst within parent.
func (b *Box) Draw(dst *ebiten.Image, parent Rect) {
	if b.disposed || !b.Visible {
		return
	}
	b.updateLayout(parent)
	if b.geom.Width <= 0 || b.geom.Height <= 0 {
		return
	}
	m := b.matrix
	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	op.ColorScale.ScaleWithColor(b.Color.toRGBA())
	dst.DrawImage(solidPixel(), &op)
}

// --- Disposal ---

// Dispose marks the box as disposed. Tweens writing to it stop on their next
// frame.
func (b *Box) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.ID = 0
}

// IsDisposed returns true if this box has been disposed.
func (b *Box) IsDisposed() bool {
	return b.disposed
}
