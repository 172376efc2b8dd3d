package tween

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Document describes boxes and the tweens that animate them. It is the YAML
// format read by LoadDocument:
//
//	boxes:
//	  - name: cube
//	    width: 40
//	    height: 40
//	    color: [0.3, 0.7, 1, 1]
//	tweens:
//	  - name: slide
//	    box: cube
//	    duration: 5s
//	    infinite: true
//	    easing: easeInOutSineBounce
//	    autostart: true
//	    start: {x: "0"}
//	    end: {x: 600}
type Document struct {
	Boxes  []BoxDef   `yaml:"boxes"`
	Tweens []TweenDef `yaml:"tweens"`
}

// BoxDef describes a Box. Width and Height are pixels; Left and Top are
// lengths such as "10px" or "25%".
type BoxDef struct {
	Name   string    `yaml:"name"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Left   string    `yaml:"left"`
	Top    string    `yaml:"top"`
	Color  []float64 `yaml:"color"`
}

// TweenDef describes a Tween animating the box named Box.
type TweenDef struct {
	Name      string   `yaml:"name"`
	Box       string   `yaml:"box"`
	Duration  Duration `yaml:"duration"`
	Infinite  bool     `yaml:"infinite"`
	Easing    string   `yaml:"easing"`
	Autostart bool     `yaml:"autostart"`
	Start     State    `yaml:"start"`
	End       State    `yaml:"end"`
}

// Duration is a time.Duration read from YAML either as a Go duration string
// ("1.5s") or as a plain number of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	switch value.ShortTag() {
	case "!!int", "!!float":
		var ms float64
		if err := value.Decode(&ms); err != nil {
			return err
		}
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("line %d: duration %s is not finite", value.Line, value.Value)
		}
		*d = Duration(ms * float64(time.Millisecond))
		return nil
	default:
		v, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*d = Duration(v)
		return nil
	}
}

// UnmarshalYAML reads a mapping into a State, keeping key order. Numeric
// scalars become Num values; everything else becomes a Str value.
func (s *State) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: state must be a mapping", value.Line)
	}
	st := make(State, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %q must be a scalar", v.Line, k.Value)
		}
		var val Value
		switch v.ShortTag() {
		case "!!int", "!!float":
			var f float64
			if err := v.Decode(&f); err != nil {
				return err
			}
			val = Num(f)
		default:
			val = Str(v.Value)
		}
		st = append(st, Attr{Key: Property(k.Value), Value: val})
	}
	*s = st
	return nil
}

// LoadDocument parses a YAML document and checks that names are present and
// unique and that every tween refers to a declared box.
func LoadDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tween document: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, fmt.Errorf("parse tween document: %w", err)
	}
	return &doc, nil
}

// LoadDocumentFile reads and parses the YAML document at path.
func LoadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadDocument(data)
}

func (d *Document) check() error {
	boxes := make(map[string]bool, len(d.Boxes))
	for i, b := range d.Boxes {
		if b.Name == "" {
			return fmt.Errorf("box %d has no name", i)
		}
		if boxes[b.Name] {
			return fmt.Errorf("box %q declared twice", b.Name)
		}
		if len(b.Color) != 0 && len(b.Color) != 3 && len(b.Color) != 4 {
			return fmt.Errorf("box %q: color needs 3 or 4 components", b.Name)
		}
		boxes[b.Name] = true
	}
	tweens := make(map[string]bool, len(d.Tweens))
	for i, t := range d.Tweens {
		if t.Name == "" {
			return fmt.Errorf("tween %d has no name", i)
		}
		if tweens[t.Name] {
			return fmt.Errorf("tween %q declared twice", t.Name)
		}
		if !boxes[t.Box] {
			return fmt.Errorf("tween %q: unknown box %q", t.Name, t.Box)
		}
		tweens[t.Name] = true
	}
	return nil
}

// NewBox creates the described box.
func (b BoxDef) NewBox() *Box {
	box := NewBox(b.Name, b.Width, b.Height)
	if b.Left != "" {
		box.SetLeft(b.Left)
	}
	if b.Top != "" {
		box.SetTop(b.Top)
	}
	switch len(b.Color) {
	case 3:
		box.Color = Color{R: b.Color[0], G: b.Color[1], B: b.Color[2], A: 1}
	case 4:
		box.Color = Color{R: b.Color[0], G: b.Color[1], B: b.Color[2], A: b.Color[3]}
	}
	return box
}

// Config returns the tween configuration for element el. Scheduler and Sink
// are left for the caller.
func (t TweenDef) Config(el Element) (Config, error) {
	easing := Linear
	if t.Easing != "" {
		e, err := ParseEasing(t.Easing)
		if err != nil {
			return Config{}, &ConfigError{Reason: err.Error()}
		}
		easing = e
	}
	return Config{
		Name:     t.Name,
		Element:  el,
		Duration: time.Duration(t.Duration),
		Infinite: t.Infinite,
		Start:    t.Start,
		End:      t.End,
		Easing:   easing,
	}, nil
}

// Apply adds the document's boxes and tweens to the stage and starts the
// autostart tweens. Every tween is validated before the stage is touched, so
// a failing document leaves the stage unchanged.
func (s *Stage) Apply(doc *Document) error {
	if doc == nil {
		return errors.New("apply tween document: nil document")
	}
	if err := doc.check(); err != nil {
		return fmt.Errorf("apply tween document: %w", err)
	}
	boxes := make(map[string]*Box, len(doc.Boxes))
	for _, def := range doc.Boxes {
		if s.Box(def.Name) != nil {
			return fmt.Errorf("apply tween document: box %q already on stage", def.Name)
		}
		boxes[def.Name] = def.NewBox()
	}
	cfgs := make([]Config, 0, len(doc.Tweens))
	for _, def := range doc.Tweens {
		if s.Tween(def.Name) != nil {
			return fmt.Errorf("apply tween document: tween %q already on stage", def.Name)
		}
		box, ok := boxes[def.Box]
		if !ok {
			return fmt.Errorf("apply tween document: tween %q: unknown box %q", def.Name, def.Box)
		}
		cfg, err := def.Config(box)
		if err != nil {
			return fmt.Errorf("apply tween document: tween %q: %w", def.Name, err)
		}
		cfg.Scheduler = &s.frames
		if _, err := New(cfg); err != nil {
			return fmt.Errorf("apply tween document: tween %q: %w", def.Name, err)
		}
		cfgs = append(cfgs, cfg)
	}

	for _, def := range doc.Boxes {
		s.AddBox(boxes[def.Name])
	}
	for i, cfg := range cfgs {
		t, err := s.NewTween(cfg)
		if err != nil {
			// Names and configs were checked above.
			return fmt.Errorf("apply tween document: %w", err)
		}
		if doc.Tweens[i].Autostart {
			t.Start()
		}
	}
	return nil
}
