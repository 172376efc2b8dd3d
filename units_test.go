package tween

import (
	"math"
	"testing"
)

func TestDefaultUnit(t *testing.T) {
	tests := []struct {
		key  Property
		want string
	}{
		{PropRotate, "turn"},
		{PropWidth, "%"},
		{PropHeight, "%"},
		{PropX, "px"},
		{PropY, "px"},
		{PropLeft, "px"},
		{PropTop, "px"},
		{"opacity", "px"},
		{"", "px"},
	}
	for _, tt := range tests {
		if got := DefaultUnit(tt.key); got != tt.want {
			t.Errorf("DefaultUnit(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestUnitOfNumericUsesDefault(t *testing.T) {
	keys := []Property{PropX, PropY, PropRotate, PropWidth, PropHeight, PropLeft, PropTop, "unknown"}
	for _, k := range keys {
		for _, v := range []float64{0, 1, -3.5, 1e6} {
			if got := UnitOf(Num(v), k); got != DefaultUnit(k) {
				t.Errorf("UnitOf(Num(%v), %q) = %q, want %q", v, k, got, DefaultUnit(k))
			}
		}
	}
}

func TestUnitOfString(t *testing.T) {
	tests := []struct {
		name string
		v    string
		key  Property
		want string
	}{
		{"px suffix", "10px", PropX, "px"},
		{"percent", "20%", PropX, "%"},
		{"turn", "0.25turn", PropRotate, "turn"},
		{"deg", "-90deg", PropRotate, "deg"},
		{"bare number x", "0", PropX, "px"},
		{"bare number width", "50", PropWidth, "%"},
		{"bare number rotate", "-1.5", PropRotate, "turn"},
		{"empty", "", PropY, "px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitOf(Str(tt.v), tt.key); got != tt.want {
				t.Errorf("UnitOf(%q, %q) = %q, want %q", tt.v, tt.key, got, tt.want)
			}
		})
	}
}

func TestMagnitudeOf(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
	}{
		{"number", Num(12.5), 12.5},
		{"negative number", Num(-3), -3},
		{"px", Str("10px"), 10},
		{"negative px", Str("-42.5px"), -42.5},
		{"percent", Str("50%"), 50},
		{"turn", Str(".25turn"), 0.25},
		{"bare", Str("7"), 7},
		{"trailing period", Str("3.px"), 3},
		{"second period ignored", Str("1.5.2px"), 1.5},
		{"unit between digits", Str("1px2"), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MagnitudeOf(tt.v); got != tt.want {
				t.Errorf("MagnitudeOf(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestMagnitudeOfNaN(t *testing.T) {
	for _, s := range []string{"", "px", "auto", "-", ".", "--5px"} {
		if got := MagnitudeOf(Str(s)); !math.IsNaN(got) {
			t.Errorf("MagnitudeOf(%q) = %v, want NaN", s, got)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		m    float64
		unit string
		want string
	}{
		{10, "px", "10px"},
		{0.25, "turn", "0.25turn"},
		{-12.5, "%", "-12.5%"},
		{0, "px", "0px"},
		{math.Copysign(0, -1), "px", "0px"},
		{1e6, "px", "1000000px"},
		{math.NaN(), "px", ""},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.m, tt.unit); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.m, tt.unit, got, tt.want)
		}
	}
}

func TestValueString(t *testing.T) {
	if got := Num(3.5).String(); got != "3.5" {
		t.Errorf("Num(3.5).String() = %q", got)
	}
	if got := Str("10px").String(); got != "10px" {
		t.Errorf("Str(10px).String() = %q", got)
	}
	if !Num(1).IsNumeric() || Str("1").IsNumeric() {
		t.Error("IsNumeric mismatch")
	}
}
