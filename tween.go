package tween

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrConfig is matched by every error New returns for an invalid Config.
var ErrConfig = errors.New("tween: invalid configuration")

// ConfigError describes why a Config was rejected. Key is empty when the
// problem is not tied to a single attribute.
type ConfigError struct {
	Key    Property
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return "tween: " + e.Reason
	}
	return fmt.Sprintf("tween: property %q: %s", e.Key, e.Reason)
}

// Is lets errors.Is(err, ErrConfig) match any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Config describes a tween. It is copied by New and never modified after.
type Config struct {
	// Name identifies the tween in events and logs. Optional.
	Name string
	// Element receives the rendered values. It is shared with the caller and
	// never released by the tween.
	Element Element
	// Scheduler provides frame callbacks.
	Scheduler Scheduler
	// Duration of one pass. Must be positive.
	Duration time.Duration
	// Infinite repeats the pass forever; the tween never completes on its own.
	Infinite bool
	// Start and End must name the same properties with matching units.
	Start, End State
	// Easing selects the interpolation curve. Defaults to Linear.
	Easing Easing
	// Sink receives lifecycle events. Optional.
	Sink EventSink
}

// disposable is implemented by elements that can be destroyed while a tween
// still references them.
type disposable interface {
	IsDisposed() bool
}

// channel is one animated property with its precomputed magnitudes.
type channel struct {
	key        Property
	unit       string
	start, end float64
}

// Tween drives an Element from a start state to an end state, one frame
// callback at a time. A Tween is not safe for concurrent use; all methods and
// frame callbacks must run on the goroutine that flushes its Scheduler.
type Tween struct {
	name      string
	el        Element
	sched     Scheduler
	sink      EventSink
	duration  time.Duration
	infinite  bool
	easing    Easing
	channels  []channel
	state     runState
	pending   bool
	progress  float64
	writer    frameWriter
	onFrameFn FrameFunc
}

// New validates cfg and returns a stopped Tween. Every validation failure is a
// *ConfigError matching ErrConfig; no Tween is returned in that case.
func New(cfg Config) (*Tween, error) {
	channels, err := validate(cfg)
	if err != nil {
		return nil, err
	}
	t := &Tween{
		name:     cfg.Name,
		el:       cfg.Element,
		sched:    cfg.Scheduler,
		sink:     cfg.Sink,
		duration: cfg.Duration,
		infinite: cfg.Infinite,
		easing:   cfg.Easing,
		channels: channels,
	}
	t.onFrameFn = t.onFrame
	return t, nil
}

func validate(cfg Config) ([]channel, error) {
	switch {
	case cfg.Element == nil:
		return nil, &ConfigError{Reason: "element is required"}
	case cfg.Scheduler == nil:
		return nil, &ConfigError{Reason: "scheduler is required"}
	case cfg.Duration <= 0:
		return nil, &ConfigError{Reason: fmt.Sprintf("duration must be positive, got %v", cfg.Duration)}
	case !cfg.Easing.Valid():
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown easing %v", cfg.Easing)}
	}

	if err := checkDuplicates(cfg.Start, "start"); err != nil {
		return nil, err
	}
	if err := checkDuplicates(cfg.End, "end"); err != nil {
		return nil, err
	}
	for _, a := range cfg.End {
		if _, ok := cfg.Start.Lookup(a.Key); !ok {
			return nil, &ConfigError{Key: a.Key, Reason: "both start and end need a defined state"}
		}
	}

	channels := make([]channel, 0, len(cfg.Start))
	for _, a := range cfg.Start {
		endVal, ok := cfg.End.Lookup(a.Key)
		if !ok {
			return nil, &ConfigError{Key: a.Key, Reason: "both start and end need a defined state"}
		}
		if !knownProperty(a.Key) {
			return nil, &ConfigError{Key: a.Key, Reason: "unsupported property"}
		}
		startUnit := UnitOf(a.Value, a.Key)
		endUnit := UnitOf(endVal, a.Key)
		if startUnit != endUnit {
			return nil, &ConfigError{Key: a.Key, Reason: fmt.Sprintf("start unit %q differs from end unit %q", startUnit, endUnit)}
		}
		c := channel{
			key:   a.Key,
			unit:  startUnit,
			start: MagnitudeOf(a.Value),
			end:   MagnitudeOf(endVal),
		}
		if math.IsNaN(c.start) {
			return nil, &ConfigError{Key: a.Key, Reason: fmt.Sprintf("start value %q is not a number", a.Value)}
		}
		if math.IsNaN(c.end) {
			return nil, &ConfigError{Key: a.Key, Reason: fmt.Sprintf("end value %q is not a number", endVal)}
		}
		channels = append(channels, c)
	}
	return channels, nil
}

func checkDuplicates(s State, which string) error {
	for i, a := range s {
		for _, b := range s[:i] {
			if a.Key == b.Key {
				return &ConfigError{Key: a.Key, Reason: "declared twice in " + which + " state"}
			}
		}
	}
	return nil
}

// Start runs the tween. A stopped tween resumes from where it was stopped;
// a finished or never-started tween begins at the start state. Calling Start
// on a running tween does nothing.
func (t *Tween) Start() {
	if t.state.running {
		return
	}
	t.state = t.state.start()
	t.emit(EventStart, t.state.lastTick)
	t.requestFrame()
}

// Restart runs the tween from the start state regardless of prior progress.
func (t *Tween) Restart() {
	t.state = t.state.restart()
	t.emit(EventRestart, t.state.lastTick)
	t.requestFrame()
}

// Stop pauses the tween. A frame callback that is already scheduled still
// fires but changes nothing, so the run can later be resumed with Start.
func (t *Tween) Stop() {
	if !t.state.running {
		return
	}
	t.state = t.state.stop()
	t.emit(EventStop, t.state.lastTick)
}

// Running reports whether the tween is currently animating.
func (t *Tween) Running() bool {
	return t.state.running
}

// Paused reports whether the tween was stopped part way and can resume.
func (t *Tween) Paused() bool {
	return t.state.paused()
}

// Progress returns the elapsed fraction computed on the latest frame. Finite
// tweens report 1 once complete.
func (t *Tween) Progress() float64 {
	return t.progress
}

// Name returns the configured name.
func (t *Tween) Name() string {
	return t.name
}

// Duration returns the length of one pass.
func (t *Tween) Duration() time.Duration {
	return t.duration
}

// Easing returns the configured curve.
func (t *Tween) Easing() Easing {
	return t.easing
}

// Infinite reports whether the tween repeats forever.
func (t *Tween) Infinite() bool {
	return t.infinite
}

// requestFrame schedules onFrame unless a callback is already outstanding.
func (t *Tween) requestFrame() {
	if t.pending {
		return
	}
	t.pending = true
	t.sched.RequestFrame(t.onFrameFn)
}

// onFrame is the frame callback.
func (t *Tween) onFrame(now time.Duration) {
	t.pending = false
	if !t.state.running {
		return
	}
	if d, ok := t.el.(disposable); ok && d.IsDisposed() {
		t.state = t.state.finish()
		t.emit(EventStop, now)
		return
	}

	out := t.state.tick(now, t.duration, t.infinite)
	t.state = out.next

	switch out.render {
	case renderFinal:
		t.progress = 1
		t.renderFinal()
		t.emit(EventComplete, now)
	case renderFrame:
		t.progress = out.fraction
		t.renderAt(out.fraction)
		if out.looped {
			t.emitLoop(now, out.next.cycle)
		}
	}
	if out.reschedule {
		t.requestFrame()
	}
}

// renderAt writes every channel interpolated at fraction.
func (t *Tween) renderAt(fraction float64) {
	t.writer.reset(t.el)
	for _, c := range t.channels {
		t.writer.write(c.key, t.easing.Eval(fraction, c.start, c.end), c.unit)
	}
	t.writer.flush()
}

// renderFinal writes the resting values: the start state for curves that end
// where they began, the end state otherwise.
func (t *Tween) renderFinal() {
	atStart := t.easing.EndsAtStart()
	t.writer.reset(t.el)
	for _, c := range t.channels {
		v := c.end
		if atStart {
			v = c.start
		}
		t.writer.write(c.key, v, c.unit)
	}
	t.writer.flush()
}

func (t *Tween) emit(typ EventType, at time.Duration) {
	if t.sink == nil {
		return
	}
	t.sink.EmitEvent(Event{Type: typ, Name: t.name, Time: at})
}

func (t *Tween) emitLoop(at time.Duration, cycle int) {
	if t.sink == nil {
		return
	}
	t.sink.EmitEvent(Event{Type: EventLoop, Name: t.name, Time: at, Cycle: cycle})
}
