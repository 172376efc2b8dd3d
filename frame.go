package tween

import "time"

// FrameFunc is invoked once with the timestamp of the frame being prepared.
type FrameFunc func(now time.Duration)

// Scheduler runs callbacks before the next display refresh.
// RequestFrame invokes fn exactly once, with a timestamp no earlier than
// any timestamp it handed out before.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// FrameQueue is a Scheduler driven by the caller: each Flush runs the
// callbacks requested before it began. Callbacks requested while a flush is
// running wait for the next one, so a callback that reschedules itself runs
// once per frame.
//
// FrameQueue is not safe for concurrent use; like the rest of the package it
// belongs to the game loop goroutine.
type FrameQueue struct {
	pending []FrameFunc
	running []FrameFunc
	last    time.Duration
	frames  int
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	if fn == nil {
		panic("tween: nil frame callback")
	}
	q.pending = append(q.pending, fn)
}

// Flush runs every queued callback with timestamp now and returns how many
// ran. A now earlier than a previous flush is raised to that flush's time.
func (q *FrameQueue) Flush(now time.Duration) int {
	if now < q.last {
		now = q.last
	}
	q.last = now
	q.frames++

	// Swap buffers so callbacks requested during this flush land in pending.
	q.running, q.pending = q.pending, q.running[:0]
	n := len(q.running)
	for i, fn := range q.running {
		q.running[i] = nil
		fn(now)
	}
	q.running = q.running[:0]
	return n
}

// Len returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Now returns the timestamp of the latest Flush.
func (q *FrameQueue) Now() time.Duration {
	return q.last
}

// Frames returns how many times Flush has run.
func (q *FrameQueue) Frames() int {
	return q.frames
}
