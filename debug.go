package tween

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and tween counts.
// Only populated when Stage.debug is true.
type debugStats struct {
	frame     int
	now       time.Duration
	flushTime time.Duration
	callbacks int
	running   int
	tweens    int
}

// debugLog prints frame stats to stderr.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tween] frame %d @ %v | callbacks: %d | flush: %v | running: %d/%d\n",
		stats.frame, stats.now, stats.callbacks, stats.flushTime, stats.running, stats.tweens)
}

// debugEvent prints a tween lifecycle event to stderr.
func (s *Stage) debugEvent(e Event) {
	if e.Type == EventLoop {
		_, _ = fmt.Fprintf(os.Stderr, "[tween] %q %s (cycle %d) @ %v\n", e.Name, e.Type, e.Cycle, e.Time)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tween] %q %s @ %v\n", e.Name, e.Type, e.Time)
}
