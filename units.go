package tween

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Value is an attribute value: either a plain number, whose unit comes from
// the attribute's default, or a string carrying a magnitude and a trailing
// unit such as "10px" or "0.25turn".
type Value struct {
	num     float64
	raw     string
	numeric bool
}

// Num returns a numeric Value. Its unit is the default unit of the key it is
// assigned to.
func Num(v float64) Value {
	return Value{num: v, numeric: true}
}

// Str returns a string Value such as "10px" or "50%".
func Str(s string) Value {
	return Value{raw: s}
}

// IsNumeric reports whether v was created with Num.
func (v Value) IsNumeric() bool {
	return v.numeric
}

// String returns the value as written: the raw string for string values and
// the shortest decimal form for numbers.
func (v Value) String() string {
	if v.numeric {
		return formatNumber(v.num)
	}
	return v.raw
}

// DefaultUnit returns the unit used for key when a value does not name one.
// Unknown keys use "px".
func DefaultUnit(key Property) string {
	switch key {
	case PropRotate:
		return "turn"
	case PropWidth, PropHeight:
		return "%"
	default:
		return "px"
	}
}

// UnitOf returns the unit implied by v for key. Numbers always use the key's
// default. Strings use whatever remains after removing digits, periods and
// minus signs, falling back to the default when nothing remains.
func UnitOf(v Value, key Property) string {
	if v.numeric {
		return DefaultUnit(key)
	}
	unit := strings.Map(func(r rune) rune {
		if isMagnitudeRune(r) {
			return -1
		}
		return r
	}, v.raw)
	if unit == "" {
		return DefaultUnit(key)
	}
	return unit
}

// leadingFloat matches the numeric prefix parsed out of a stripped magnitude.
var leadingFloat = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)

// MagnitudeOf returns the numeric part of v. For strings every rune other
// than digits, periods and minus signs is removed and the longest leading
// decimal number is parsed, so "1.5.2px" yields 1.5. The result is NaN when
// no number can be found.
func MagnitudeOf(v Value) float64 {
	if v.numeric {
		return v.num
	}
	stripped := strings.Map(func(r rune) rune {
		if isMagnitudeRune(r) {
			return r
		}
		return -1
	}, v.raw)
	m := leadingFloat.FindString(stripped)
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// FormatValue renders magnitude m followed by unit. NaN stands for a missing
// value and renders as the empty string, which leaves the attribute unset.
func FormatValue(m float64, unit string) string {
	if math.IsNaN(m) {
		return ""
	}
	return formatNumber(m) + unit
}

func formatNumber(f float64) string {
	if f == 0 {
		// Collapse negative zero.
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isMagnitudeRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-'
}
