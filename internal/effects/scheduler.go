package effects

import (
	"container/heap"
	"time"
)

// Scheduler is the host's event loop as seen by the effects. Callbacks are
// always invoked on the host's single UI thread.
type Scheduler interface {
	Now() time.Time
	// AfterFunc runs f once after d. The returned func cancels it if it has
	// not fired yet.
	AfterFunc(d time.Duration, f func()) (cancel func())
	// NextFrame runs f before the next paint.
	NextFrame(f func())
}

type timer struct {
	at       time.Time
	seq      uint64
	fn       func()
	canceled bool
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }
func (q timerQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}
func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }
func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// ManualScheduler is a virtual-time Scheduler. Nothing runs until the owner
// calls Advance, AdvanceTo or Flush, which makes it suitable both for tests and
// for hosts that already own a tick loop.
type ManualScheduler struct {
	now    time.Time
	seq    uint64
	timers timerQueue
	frames []func()
}

// NewManualScheduler returns a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) Now() time.Time { return s.now }

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timer{at: s.now.Add(d), seq: s.seq, fn: f}
	heap.Push(&s.timers, t)
	return func() { t.canceled = true }
}

func (s *ManualScheduler) NextFrame(f func()) {
	s.frames = append(s.frames, f)
}

// Flush runs the frame callbacks queued so far. Callbacks queued while
// flushing wait for the next Flush, like requestAnimationFrame.
func (s *ManualScheduler) Flush() {
	frames := s.frames
	s.frames = nil
	for _, f := range frames {
		f()
	}
}

// Advance moves the clock forward by d, firing due timers in order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now.Add(d))
}

// AdvanceTo moves the clock to t, firing every timer due at or before t.
// The clock never moves backwards.
func (s *ManualScheduler) AdvanceTo(t time.Time) {
	for s.timers.Len() > 0 {
		next := s.timers[0]
		if next.at.After(t) {
			break
		}
		heap.Pop(&s.timers)
		if next.at.After(s.now) {
			s.now = next.at
		}
		if !next.canceled {
			next.fn()
		}
	}
	if t.After(s.now) {
		s.now = t
	}
}

// Pending reports timers that are scheduled and not canceled.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}
