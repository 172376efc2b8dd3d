package tween

import (
	"math"
	"testing"
)

func TestEasingSpotValues(t *testing.T) {
	tests := []struct {
		name     string
		easing   Easing
		fraction float64
		want     float64
	}{
		{"linear mid", Linear, 0.5, 5},
		{"linear start", Linear, 0, 0},
		{"linear end", Linear, 1, 10},
		{"sine start", EaseInOutSine, 0, 0},
		{"sine mid", EaseInOutSine, 0.5, 5},
		{"sine end", EaseInOutSine, 1, 10},
		{"sine bounce start", EaseInOutSineBounce, 0, 0},
		{"sine bounce mid reaches end", EaseInOutSineBounce, 0.5, 10},
		{"sine bounce end returns", EaseInOutSineBounce, 1, 0},
		{"quad bounce mid reaches end", EaseInOutQuadBounce, 0.5, 10},
		{"quad bounce end returns", EaseInOutQuadBounce, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.easing.Eval(tt.fraction, 0, 10)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v.Eval(%v, 0, 10) = %v, want %v", tt.easing, tt.fraction, got, tt.want)
			}
		})
	}
}

func TestSineCurvesMatchCosineFormula(t *testing.T) {
	sine := func(f float64) float64 { return -(math.Cos(math.Pi*f) - 1) / 2 }
	tests := []struct {
		easing   Easing
		fraction float64
		want     float64 // weight
	}{
		{EaseInOutSine, 0.1, sine(0.1)},
		{EaseInOutSine, 0.25, sine(0.25)},
		{EaseInOutSine, 0.3, sine(0.3)},
		{EaseInOutSine, 0.9, sine(0.9)},
		{EaseInOutSineBounce, 0.1, sine(0.2)},
		{EaseInOutSineBounce, 0.25, sine(0.5)},
		{EaseInOutSineBounce, 0.3, sine(0.6)},
		{EaseInOutSineBounce, 0.8, sine(1.6)},
	}
	for _, tt := range tests {
		const start, end = -250.0, 1e6
		want := start + (end-start)*tt.want
		if got := tt.easing.Eval(tt.fraction, start, end); math.Abs(got-want) > 1e-9 {
			t.Errorf("%v.Eval(%v) = %v, want %v", tt.easing, tt.fraction, got, want)
		}
	}
	if got := EaseInOutSine.Eval(0.25, 0, 100); got != 100*sine(0.25) {
		t.Errorf("easeInOutSine(0.25) = %v, want %v", got, 100*sine(0.25))
	}
}

func TestLinearIsExact(t *testing.T) {
	for _, f := range []float64{0.1, 0.2, 0.3, 0.7} {
		if got, want := Linear.Eval(f, 0, 1e6), 1e6*f; got != want {
			t.Errorf("linear(%v) = %v, want %v", f, got, want)
		}
	}
}

func TestEasingExactBoundaries(t *testing.T) {
	if got := Linear.Eval(0.5, 0, 10); got != 5 {
		t.Errorf("linear(0.5) = %v, want exactly 5", got)
	}
	if got := EaseInOutSine.Eval(0, 0, 10); got != 0 {
		t.Errorf("easeInOutSine(0) = %v, want exactly 0", got)
	}
	if got := EaseInOutSine.Eval(1, 0, 10); got != 10 {
		t.Errorf("easeInOutSine(1) = %v, want exactly 10", got)
	}
	if got := EaseInOutSineBounce.Eval(0.5, 0, 10); got != 10 {
		t.Errorf("easeInOutSineBounce(0.5) = %v, want exactly 10", got)
	}
	if got := EaseInOutSineBounce.Eval(1, 0, 10); got != 0 {
		t.Errorf("easeInOutSineBounce(1) = %v, want exactly 0", got)
	}
}

func TestEasingClampsOutOfRange(t *testing.T) {
	for _, e := range Easings() {
		t.Run(e.String(), func(t *testing.T) {
			lo := e.Eval(0, -20, 80)
			hi := e.Eval(1, -20, 80)
			for _, f := range []float64{-1, -0.001, -1e9, math.Inf(-1)} {
				if got := e.Eval(f, -20, 80); got != lo {
					t.Errorf("Eval(%v) = %v, want clamped %v", f, got, lo)
				}
			}
			for _, f := range []float64{1.0001, 1.5, 42, math.Inf(1)} {
				if got := e.Eval(f, -20, 80); got != hi {
					t.Errorf("Eval(%v) = %v, want clamped %v", f, got, hi)
				}
			}
		})
	}
}

func TestEasingEndsAtStart(t *testing.T) {
	want := map[Easing]bool{
		EaseInOutSineBounce: true,
		EaseInOutQuadBounce: true,
	}
	for _, e := range Easings() {
		if got := e.EndsAtStart(); got != want[e] {
			t.Errorf("%v.EndsAtStart() = %v, want %v", e, got, want[e])
		}
	}
	if Easing(200).EndsAtStart() {
		t.Error("unregistered easing should not end at start")
	}
}

func TestEasingNonBounceRestsOnEnd(t *testing.T) {
	for _, e := range Easings() {
		if e.EndsAtStart() {
			continue
		}
		if got := e.Eval(1, 3, 7); math.Abs(got-7) > 1e-4 {
			t.Errorf("%v.Eval(1, 3, 7) = %v, want 7", e, got)
		}
		if got := e.Eval(0, 3, 7); math.Abs(got-3) > 1e-4 {
			t.Errorf("%v.Eval(0, 3, 7) = %v, want 3", e, got)
		}
	}
}

func TestEasingSineIsSlowAtEdges(t *testing.T) {
	early := EaseInOutSine.Eval(0.1, 0, 1)
	if early >= 0.1 {
		t.Errorf("easeInOutSine(0.1) = %v, should lag linear", early)
	}
	late := EaseInOutSine.Eval(0.9, 0, 1)
	if late <= 0.9 {
		t.Errorf("easeInOutSine(0.9) = %v, should lead linear", late)
	}
}

func TestEasingBounceIsPalindromic(t *testing.T) {
	for _, e := range []Easing{EaseInOutSineBounce, EaseInOutQuadBounce} {
		for _, f := range []float64{0.1, 0.2, 0.3, 0.45} {
			a := e.Eval(f, 0, 100)
			b := e.Eval(1-f, 0, 100)
			if math.Abs(a-b) > 1e-3 {
				t.Errorf("%v: Eval(%v)=%v, Eval(%v)=%v, want mirror", e, f, a, 1-f, b)
			}
		}
	}
}

func TestParseEasing(t *testing.T) {
	for _, e := range Easings() {
		got, err := ParseEasing(e.String())
		if err != nil {
			t.Fatalf("ParseEasing(%q): %v", e.String(), err)
		}
		if got != e {
			t.Errorf("ParseEasing(%q) = %v, want %v", e.String(), got, e)
		}
	}
	if _, err := ParseEasing("easeSideways"); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestEasingNames(t *testing.T) {
	tests := []struct {
		e    Easing
		want string
	}{
		{Linear, "linear"},
		{EaseInOutSine, "easeInOutSine"},
		{EaseInOutSineBounce, "easeInOutSineBounce"},
		{Easing(250), "Easing(250)"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEasingZeroValueIsLinear(t *testing.T) {
	var e Easing
	if e != Linear {
		t.Fatalf("zero Easing = %v, want linear", e)
	}
}

func TestEasingEvalZeroAlloc(t *testing.T) {
	result := testing.AllocsPerRun(100, func() {
		EaseInOutSineBounce.Eval(0.3, 0, 100)
	})
	if result > 0 {
		t.Errorf("Eval allocated %f times per run, want 0", result)
	}
}
