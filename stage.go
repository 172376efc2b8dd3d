package tween

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Stage is the top-level object that owns boxes, named tweens, the frame
// queue that drives them and the clock that timestamps each frame.
//
// Call Update once per game tick and Draw once per rendered frame, or hand the
// Stage to Run. Tweens on a Stage are independent of each other; the Stage
// never sequences them.
type Stage struct {
	// Width and Height are the size of the stage rectangle that box
	// percentages resolve against.
	Width, Height float64
	// ClearColor fills the screen before boxes are drawn. A zero alpha skips
	// the fill.
	ClearColor Color

	boxes      []*Box
	boxByName  map[string]*Box
	tweens     []*Tween
	tweenByKey map[string]*Tween

	frames FrameQueue
	clock  func() time.Duration
	sink   EventSink
	debug  bool

	script     *ScriptRunner
	updateFunc func() error
}

// NewStage creates an empty stage of the given size whose clock starts at
// zero now.
func NewStage(width, height float64) *Stage {
	epoch := time.Now()
	return &Stage{
		Width:      width,
		Height:     height,
		boxByName:  make(map[string]*Box),
		tweenByKey: make(map[string]*Tween),
		clock:      func() time.Duration { return time.Since(epoch) },
	}
}

// Bounds returns the stage rectangle.
func (s *Stage) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Scheduler returns the frame queue flushed by Update. Tweens created outside
// NewTween can use it to run on this stage's frames.
func (s *Stage) Scheduler() Scheduler {
	return &s.frames
}

// SetClock replaces the clock sampled once per Update. The clock should not
// run backwards; earlier samples are raised to the previous frame time.
func (s *Stage) SetClock(clock func() time.Duration) {
	if clock == nil {
		panic("tween: nil clock")
	}
	s.clock = clock
}

// SetEventSink sets the sink that receives events from every tween on the
// stage, including tweens created before the call.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetUpdateFunc sets a function called on every Update before frames are
// flushed. A non-nil error is returned from Update.
func (s *Stage) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// --- Boxes ---

// AddBox adds b to the stage. Panics if b is nil or its name is already taken.
func (s *Stage) AddBox(b *Box) {
	if b == nil {
		panic("tween: cannot add nil box")
	}
	if _, ok := s.boxByName[b.Name]; ok {
		panic(fmt.Sprintf("tween: box %q already on stage", b.Name))
	}
	s.boxes = append(s.boxes, b)
	s.boxByName[b.Name] = b
}

// Box returns the box with the given name, or nil.
func (s *Stage) Box(name string) *Box {
	return s.boxByName[name]
}

// Boxes returns the boxes in draw order. The returned slice MUST NOT be
// mutated.
func (s *Stage) Boxes() []*Box {
	return s.boxes
}

// RemoveBox disposes the named box and removes it from the stage. Tweens
// writing to it stop on their next frame.
func (s *Stage) RemoveBox(name string) {
	b, ok := s.boxByName[name]
	if !ok {
		return
	}
	delete(s.boxByName, name)
	for i, c := range s.boxes {
		if c == b {
			copy(s.boxes[i:], s.boxes[i+1:])
			s.boxes[len(s.boxes)-1] = nil
			s.boxes = s.boxes[:len(s.boxes)-1]
			break
		}
	}
	b.Dispose()
}

// --- Tweens ---

// NewTween builds a tween on this stage's frame queue and registers it under
// cfg.Name. A nil cfg.Scheduler defaults to the stage's queue. Events go to
// cfg.Sink, if set, and then to the stage sink.
func (s *Stage) NewTween(cfg Config) (*Tween, error) {
	if _, ok := s.tweenByKey[cfg.Name]; ok {
		return nil, fmt.Errorf("tween %q already on stage", cfg.Name)
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = &s.frames
	}
	cfg.Sink = &stageSink{stage: s, next: cfg.Sink}
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	s.tweens = append(s.tweens, t)
	s.tweenByKey[cfg.Name] = t
	return t, nil
}

// Tween returns the tween registered under name, or nil.
func (s *Stage) Tween(name string) *Tween {
	return s.tweenByKey[name]
}

// Tweens returns the tweens in creation order. The returned slice MUST NOT be
// mutated.
func (s *Stage) Tweens() []*Tween {
	return s.tweens
}

// Running returns how many tweens are currently animating.
func (s *Stage) Running() int {
	n := 0
	for _, t := range s.tweens {
		if t.Running() {
			n++
		}
	}
	return n
}

// Reset stops every tween and disposes every box, leaving an empty stage.
// Callbacks still queued become no-ops.
func (s *Stage) Reset() {
	for _, t := range s.tweens {
		t.Stop()
	}
	for _, b := range s.boxes {
		b.Dispose()
	}
	s.tweens = nil
	s.boxes = nil
	s.tweenByKey = make(map[string]*Tween)
	s.boxByName = make(map[string]*Box)
}

// --- Frame loop ---

// Update steps the attached script, runs the update function, then samples
// the clock and fires every pending frame callback.
func (s *Stage) Update() error {
	if s.script != nil {
		s.script.step(s)
		if err := s.script.Err(); err != nil {
			return err
		}
	}
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	stats.callbacks = s.frames.Flush(s.clock())

	if s.debug {
		stats.flushTime = time.Since(t0)
		stats.frame = s.frames.Frames()
		stats.now = s.frames.Now()
		stats.running = s.Running()
		stats.tweens = len(s.tweens)
		s.debugLog(stats)
	}
	return nil
}

// Draw clears the screen with ClearColor and draws every box in order.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	bounds := s.Bounds()
	for _, b := range s.boxes {
		b.Draw(screen, bounds)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// stats and tween events are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// stageSink forwards tween events to a per-tween sink and the stage sink.
type stageSink struct {
	stage *Stage
	next  EventSink
}

func (k *stageSink) EmitEvent(e Event) {
	if k.next != nil {
		k.next.EmitEvent(e)
	}
	if k.stage.debug {
		k.stage.debugEvent(e)
	}
	if k.stage.sink != nil {
		k.stage.sink.EmitEvent(e)
	}
}
