package tween

import (
	"math"
	"testing"
)

var stageRect = Rect{Width: 640, Height: 480}

func TestNewBoxDefaults(t *testing.T) {
	b := NewBox("cube", 40, 20)
	if b.Name != "cube" {
		t.Errorf("Name = %q", b.Name)
	}
	if b.Width() != "40px" || b.Height() != "20px" {
		t.Errorf("size = %q x %q, want 40px x 20px", b.Width(), b.Height())
	}
	if b.Transform() != "" || b.Left() != "" || b.Top() != "" {
		t.Error("new box should have no transform or offsets")
	}
	if !b.Visible || b.Color != ColorWhite {
		t.Error("new box should be visible and white")
	}
	if b.Writes() != 0 {
		t.Errorf("Writes() = %d, want 0", b.Writes())
	}
}

func TestBoxIDsUnique(t *testing.T) {
	a := NewBox("a", 1, 1)
	b := NewBox("b", 1, 1)
	if a.ID == 0 || a.ID == b.ID {
		t.Errorf("IDs = %d, %d; want distinct non-zero", a.ID, b.ID)
	}
}

func TestBoxImplementsElement(t *testing.T) {
	var _ Element = (*Box)(nil)
	var _ disposable = (*Box)(nil)
}

func TestBoxSettersRecordWrites(t *testing.T) {
	b := NewBox("b", 10, 10)
	b.SetTransform("translateX(3px)")
	b.SetWidth("50%")
	b.SetHeight("12px")
	b.SetLeft("4px")
	b.SetTop("5%")
	if b.Writes() != 5 {
		t.Errorf("Writes() = %d, want 5", b.Writes())
	}
	if b.Transform() != "translateX(3px)" || b.Width() != "50%" || b.Height() != "12px" ||
		b.Left() != "4px" || b.Top() != "5%" {
		t.Errorf("style = %q %q %q %q %q", b.Transform(), b.Width(), b.Height(), b.Left(), b.Top())
	}
}

func TestBoxLayoutTransform(t *testing.T) {
	b := NewBox("b", 40, 20)
	b.SetTransform("translateX(10px) translateY(50%) rotate(0.25turn)")
	r, rot := b.Layout(stageRect)

	assertNear(t, "x", r.X, 10)
	assertNear(t, "y", r.Y, 10) // half the box's own height
	assertNear(t, "width", r.Width, 40)
	assertNear(t, "height", r.Height, 20)
	assertNear(t, "rotation", rot, math.Pi/2)
}

func TestBoxLayoutPercentOfParent(t *testing.T) {
	b := NewBox("b", 0, 0)
	b.SetWidth("50%")
	b.SetHeight("25%")
	b.SetLeft("25%")
	b.SetTop("10px")
	r, _ := b.Layout(Rect{X: 100, Y: 50, Width: 640, Height: 480})

	assertNear(t, "x", r.X, 100+160)
	assertNear(t, "y", r.Y, 50+10)
	assertNear(t, "width", r.Width, 320)
	assertNear(t, "height", r.Height, 120)
}

func TestBoxLayoutFollowsWrites(t *testing.T) {
	b := NewBox("b", 40, 40)
	r, _ := b.Layout(stageRect)
	assertNear(t, "x before", r.X, 0)

	b.SetTransform("translateX(25px)")
	r, _ = b.Layout(stageRect)
	assertNear(t, "x after", r.X, 25)

	b.SetWidth("10%")
	r, _ = b.Layout(stageRect)
	assertNear(t, "width", r.Width, 64)

	// Parent changes also invalidate the cached layout.
	r, _ = b.Layout(Rect{Width: 100, Height: 100})
	assertNear(t, "width in smaller parent", r.Width, 10)
}

func TestBoxLayoutWithTweenOutput(t *testing.T) {
	b := NewBox("b", 40, 40)
	q := &FrameQueue{}
	tw, err := New(Config{
		Element:   b,
		Scheduler: q,
		Duration:  100 * ms,
		Start:     S(PropX, 0, PropRotate, 0, PropWidth, "10%"),
		End:       S(PropX, 200, PropRotate, 0.5, PropWidth, "20%"),
	})
	if err != nil {
		t.Fatal(err)
	}
	tw.Start()
	q.Flush(0)
	q.Flush(50 * ms)

	r, rot := b.Layout(stageRect)
	assertNear(t, "x", r.X, 100)
	assertNear(t, "width", r.Width, 96) // 15% of 640
	assertNear(t, "rotation", rot, math.Pi/2)
}

func TestBoxContains(t *testing.T) {
	b := NewBox("b", 40, 20)
	tests := []struct {
		x, y float64
		want bool
	}{
		{20, 10, true},
		{0, 0, true},
		{40, 20, true},
		{41, 10, false},
		{20, -1, false},
	}
	for _, tt := range tests {
		if got := b.Contains(stageRect, tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBoxContainsRotated(t *testing.T) {
	b := NewBox("b", 40, 20)
	b.SetTransform("rotate(90deg)")
	// Rotated about its center (20, 10): now 20 wide and 40 tall.
	tests := []struct {
		x, y float64
		want bool
	}{
		{20, 10, true},
		{20, 28, true},
		{20, -8, true},
		{35, 10, false},
		{5, 10, false},
	}
	for _, tt := range tests {
		if got := b.Contains(stageRect, tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBoxDispose(t *testing.T) {
	b := NewBox("b", 1, 1)
	b.Dispose()
	if !b.IsDisposed() {
		t.Error("IsDisposed() = false after Dispose")
	}
	if b.ID != 0 {
		t.Errorf("ID = %d after Dispose, want 0", b.ID)
	}
	b.Dispose() // second call is a no-op
	if !b.IsDisposed() {
		t.Error("IsDisposed() = false after second Dispose")
	}
}
