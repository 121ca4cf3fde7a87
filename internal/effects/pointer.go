// Package effects implements the decorative cursor and scroll effects of the
// portfolio page independently of any rendering host: a pointer tracker, the
// spotlight overlay, the falling-star particle trail and the one-shot scroll
// reveal. Hosts plug in through small interfaces (Scheduler, PointerSource,
// Overlay, Layer, Notifier).
package effects

import "math"

// Point is a position in viewport pixel space.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// PointerSource is a host input that reports pointer movement. Listen
// subscribes fn and returns the func that releases the subscription.
type PointerSource interface {
	Listen(fn func(Point)) (stop func())
}

type subscriber struct {
	fn      func(Point)
	removed bool
}

// Tracker keeps the latest pointer position. It holds no history.
type Tracker struct {
	pos  Point
	subs []*subscriber
}

// NewTracker returns a tracker positioned at the origin.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Position returns the most recently recorded position.
func (t *Tracker) Position() Point {
	return t.pos
}

// Move records p and notifies subscribers synchronously, in the order they
// subscribed. Subscribers added during dispatch wait for the next Move; one
// removed during dispatch is not called again, even for this Move.
func (t *Tracker) Move(p Point) {
	t.pos = p
	subs := append([]*subscriber(nil), t.subs...)
	for _, s := range subs {
		if !s.removed {
			s.fn(p)
		}
	}
}

// Subscribe registers fn for every future Move. The returned func removes it
// and is safe to call more than once.
func (t *Tracker) Subscribe(fn func(Point)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}
	t.subs = append(t.subs, sub)
	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		for i, s := range t.subs {
			if s == sub {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers reports how many subscriptions are active.
func (t *Tracker) Subscribers() int {
	return len(t.subs)
}

// Attach feeds the tracker from src until the returned func is called.
func (t *Tracker) Attach(src PointerSource) (detach func()) {
	return src.Listen(t.Move)
}
