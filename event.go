package tween

import "time"

// EventSink receives tween lifecycle events. Set one on a Config or a Stage
// to forward events elsewhere, e.g. into an ECS world (see tween/ecs).
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventStart    EventType = iota // Start was called
	EventRestart                   // Restart was called
	EventStop                      // Stop was called
	EventLoop                      // an infinite tween began another cycle
	EventComplete                  // a finite tween rendered its final frame
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventRestart:
		return "restart"
	case EventStop:
		return "stop"
	case EventLoop:
		return "loop"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle transition of a Tween.
type Event struct {
	Type EventType
	// Name is the tween's configured name.
	Name string
	// Time is the frame timestamp for EventLoop and EventComplete, and the
	// latest tick time for control events.
	Time time.Duration
	// Cycle counts completed cycles of an infinite tween (EventLoop only).
	Cycle int
}
