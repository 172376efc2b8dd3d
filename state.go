package tween

import "time"

// runState is the engine's animation state. It only changes through start,
// restart, stop and tick, each of which returns the next state.
//
//	idle:    running == false, started == false
//	running: running == true
//	paused:  running == false, started == true (startTick kept for resume)
type runState struct {
	running bool
	started bool
	// resume asks the next tick to rebase startTick so a paused run continues
	// where it left off.
	resume    bool
	startTick time.Duration
	lastTick  time.Duration
	cycle     int
}

// renderKind is the side effect a tick asks the engine to perform.
type renderKind uint8

const (
	renderNone  renderKind = iota // stale or cancelled callback
	renderFrame                   // interpolated values at fraction
	renderFinal                   // resting values, run finished
)

// tickOutcome is the result of feeding one frame timestamp to a runState.
type tickOutcome struct {
	next       runState
	render     renderKind
	fraction   float64
	reschedule bool
	looped     bool
}

// paused reports whether a run was stopped part way and can be resumed.
func (s runState) paused() bool {
	return !s.running && s.started
}

func (s runState) start() runState {
	if s.running {
		return s
	}
	s.running = true
	s.resume = s.started
	return s
}

func (s runState) restart() runState {
	s.running = true
	s.started = false
	s.resume = false
	s.startTick = 0
	s.cycle = 0
	return s
}

// stop leaves startTick and lastTick untouched so the run can be resumed.
func (s runState) stop() runState {
	s.running = false
	return s
}

// finish returns the state after a completed run.
func (s runState) finish() runState {
	s.running = false
	s.started = false
	s.resume = false
	s.startTick = 0
	s.cycle = 0
	return s
}

// tick advances the state to frame time now.
func (s runState) tick(now, duration time.Duration, infinite bool) tickOutcome {
	if !s.running {
		return tickOutcome{next: s}
	}
	if s.resume {
		elapsed := s.lastTick - s.startTick
		s.startTick = now - elapsed
		s.resume = false
	}
	if !s.started {
		s.started = true
		s.startTick = now
		s.cycle = 0
	}
	s.lastTick = now

	if !infinite && now-s.startTick > duration {
		return tickOutcome{next: s.finish(), render: renderFinal, fraction: 1}
	}

	elapsed := now - s.startTick
	out := tickOutcome{render: renderFrame, reschedule: true}
	if infinite {
		out.fraction = float64(elapsed%duration) / float64(duration)
		if c := int(elapsed / duration); c > s.cycle {
			s.cycle = c
			out.looped = true
		}
	} else {
		out.fraction = float64(elapsed) / float64(duration)
	}
	out.next = s
	return out
}
