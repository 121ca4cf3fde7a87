package effects

import "math"

// Rect is an axis-aligned box in viewport space.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

func (r Rect) intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.W, o.X+o.W)
	y1 := math.Min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// VisibleRatio is the fraction of target inside viewport once margin has been
// cut from the viewport's bottom edge.
func VisibleRatio(target, viewport Rect, margin float64) float64 {
	a := target.area()
	if a == 0 {
		return 0
	}
	viewport.H -= margin
	return target.intersect(viewport).area() / a
}

// PollingNotifier is a Notifier for hosts without a native intersection
// primitive. The host calls Poll after scrolling or resizing; entries are
// reported when a target's intersecting state changes, including its first
// poll after Observe.
type PollingNotifier struct {
	threshold float64
	margin    float64
	geometry  func(target string) (Rect, bool)
	viewport  func() Rect
	callback  func([]Entry)

	observed     []string
	state        map[string]bool
	disconnected bool
}

// NewPollingNotifier builds a notifier using cfg's reveal threshold and
// bottom margin. geometry reports false for targets that no longer exist.
func NewPollingNotifier(cfg Config, geometry func(string) (Rect, bool), viewport func() Rect, callback func([]Entry)) *PollingNotifier {
	return &PollingNotifier{
		threshold: cfg.RevealThreshold,
		margin:    cfg.RevealBottomMargin,
		geometry:  geometry,
		viewport:  viewport,
		callback:  callback,
		state:     make(map[string]bool),
	}
}

func (n *PollingNotifier) Observe(target string) {
	if n.disconnected {
		return
	}
	for _, t := range n.observed {
		if t == target {
			return
		}
	}
	n.observed = append(n.observed, target)
}

func (n *PollingNotifier) Unobserve(target string) {
	for i, t := range n.observed {
		if t == target {
			n.observed = append(n.observed[:i], n.observed[i+1:]...)
			break
		}
	}
	delete(n.state, target)
}

func (n *PollingNotifier) Disconnect() {
	n.disconnected = true
	n.observed = nil
	n.state = make(map[string]bool)
}

// Observed reports how many targets are being watched.
func (n *PollingNotifier) Observed() int {
	return len(n.observed)
}

// Poll measures every observed target and delivers the changes.
func (n *PollingNotifier) Poll() {
	if n.disconnected || len(n.observed) == 0 {
		return
	}
	vp := n.viewport()
	var entries []Entry
	for _, id := range n.observed {
		r, ok := n.geometry(id)
		if !ok {
			continue
		}
		ratio := VisibleRatio(r, vp, n.margin)
		in := ratio > 0 && ratio >= n.threshold
		if prev, seen := n.state[id]; seen && prev == in {
			continue
		}
		n.state[id] = in
		entries = append(entries, Entry{Target: id, Ratio: ratio, Intersecting: in})
	}
	if len(entries) > 0 {
		n.callback(entries)
	}
}
