package tween

import (
	"fmt"
	"strings"
)

// Element is the rendering surface a Tween writes to. Transform-producing
// attributes of one frame arrive as a single joined expression; the remaining
// attributes each have their own setter. Values are CSS-like strings such as
// "12.5px" or "50%".
type Element interface {
	SetTransform(expr string)
	SetWidth(v string)
	SetHeight(v string)
	SetLeft(v string)
	SetTop(v string)
}

// transformFuncs renders transform-producing attributes.
var transformFuncs = map[Property]func(v, unit string) string{
	PropRotate: func(v, unit string) string { return "rotate(" + v + unit + ")" },
	PropX:      func(v, unit string) string { return "translateX(" + v + unit + ")" },
	PropY:      func(v, unit string) string { return "translateY(" + v + unit + ")" },
}

// styleSetters writes attributes that are not part of the transform.
var styleSetters = map[Property]func(Element, string){
	PropWidth:  Element.SetWidth,
	PropHeight: Element.SetHeight,
	PropLeft:   Element.SetLeft,
	PropTop:    Element.SetTop,
}

// IsTransform reports whether key renders into the transform expression.
func IsTransform(key Property) bool {
	_, ok := transformFuncs[key]
	return ok
}

// knownProperty reports whether key can be written to an Element.
func knownProperty(key Property) bool {
	if _, ok := transformFuncs[key]; ok {
		return true
	}
	_, ok := styleSetters[key]
	return ok
}

// frameWriter collects one frame of attribute writes. Transform pieces are
// buffered and written once in flush, since separate writes would replace
// each other instead of composing.
type frameWriter struct {
	el         Element
	transforms []string
}

func (w *frameWriter) reset(el Element) {
	w.el = el
	w.transforms = w.transforms[:0]
}

// write renders magnitude m with unit under key.
func (w *frameWriter) write(key Property, m float64, unit string) {
	if fn, ok := transformFuncs[key]; ok {
		w.transforms = append(w.transforms, fn(formatNumber(m), unit))
		return
	}
	set, ok := styleSetters[key]
	if !ok {
		// Keys are validated when the tween is built.
		panic(fmt.Sprintf("tween: no setter for property %q", key))
	}
	set(w.el, FormatValue(m, unit))
}

// flush writes the joined transform expression, if any.
func (w *frameWriter) flush() {
	if len(w.transforms) == 0 {
		return
	}
	w.el.SetTransform(strings.Join(w.transforms, " "))
}
