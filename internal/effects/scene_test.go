package effects

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestGradient(t *testing.T) {
	got := Gradient(Point{120, 45.5}, 600, 0.18, 0.4)
	want := "radial-gradient(600px circle at 120px 45.5px, rgba(255, 255, 255, 0.18), transparent 40%)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSpotlightIntensity(t *testing.T) {
	s := NewSpotlight(DefaultConfig(), nil)
	s.Update(Point{100, 100})

	if got := s.Intensity(Point{100, 100}); got != 0.18 {
		t.Fatalf("expected full alpha at centre, got %v", got)
	}
	if got := s.Intensity(Point{100, 100 + 240}); got != 0 {
		t.Fatalf("expected no highlight at the fade edge, got %v", got)
	}
	if got := s.Intensity(Point{100, 220}); got <= 0 || got >= 0.18 {
		t.Fatalf("expected partial highlight, got %v", got)
	}
}

func TestTrackerSubscribers(t *testing.T) {
	tr := NewTracker()
	var order []int
	stopA := tr.Subscribe(func(Point) { order = append(order, 1) })
	tr.Subscribe(func(Point) { order = append(order, 2) })

	tr.Move(Point{3, 4})
	if tr.Position() != (Point{3, 4}) {
		t.Fatalf("unexpected position %+v", tr.Position())
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected subscription order, got %v", order)
	}

	stopA()
	stopA()
	order = nil
	tr.Move(Point{5, 6})
	if len(order) != 1 || order[0] != 2 {
		t.Fatalf("expected only second subscriber, got %v", order)
	}
}

func TestTrackerUnsubscribeDuringMove(t *testing.T) {
	tr := NewTracker()
	var calls []int
	var stopB func()
	tr.Subscribe(func(Point) {
		calls = append(calls, 1)
		stopB()
		tr.Subscribe(func(Point) { calls = append(calls, 3) })
	})
	stopB = tr.Subscribe(func(Point) { calls = append(calls, 2) })

	tr.Move(Point{1, 1})
	if len(calls) != 1 || calls[0] != 1 {
		t.Fatalf("expected removed and added subscribers skipped, got %v", calls)
	}
	if tr.Subscribers() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", tr.Subscribers())
	}
}

func newTestScene(t *testing.T) (*Scene, *ManualScheduler, *fakeLayer, *fakeOverlay) {
	t.Helper()
	sched := NewManualScheduler(epoch)
	layer := newFakeLayer()
	overlay := &fakeOverlay{}
	s := NewScene(DefaultConfig(), Host{
		Scheduler: sched,
		Overlay:   overlay,
		Layer:     layer,
		Rand:      rand.New(rand.NewPCG(7, 7)),
	})
	return s, sched, layer, overlay
}

func TestSceneSpotlightFollowsPointer(t *testing.T) {
	s, _, _, overlay := newTestScene(t)
	src := &fakeSource{}
	s.Mount(src, nil, nil)

	for _, p := range []Point{{10, 10}, {300, 40}, {301, 41}} {
		src.move(p.X, p.Y)
		if s.Spotlight.Center() != p {
			t.Fatalf("expected spotlight at %+v, got %+v", p, s.Spotlight.Center())
		}
		if overlay.background != Gradient(p, 600, 0.18, 0.4) {
			t.Fatalf("unexpected background %q", overlay.background)
		}
	}
}

func TestSceneEmitsFromPointer(t *testing.T) {
	s, sched, layer, _ := newTestScene(t)
	src := &fakeSource{}
	s.Mount(src, nil, nil)

	src.move(100, 100)
	sched.Advance(20 * time.Millisecond)
	src.move(100, 105)
	if layer.inserts != 2 {
		t.Fatalf("expected 2 particles, got %d", layer.inserts)
	}
	ps := s.Emitter.Particles()
	if ps[len(ps)-1].Origin != (Point{100, 105}) {
		t.Fatalf("expected last particle at (100,105), got %+v", ps[len(ps)-1].Origin)
	}
}

func TestSceneUnmountReleasesListeners(t *testing.T) {
	s, sched, layer, overlay := newTestScene(t)
	src := &fakeSource{}
	pg := &page{height: 800, rects: map[string]Rect{"about": {Y: 0, W: 10, H: 10}}}
	var marked []string
	s.Reveal = NewRevealController(DefaultConfig(), sched, func(id string) { marked = append(marked, id) })
	n := NewPollingNotifier(DefaultConfig(), pg.geometry, pg.viewport, s.Reveal.Handle)
	s.Mount(src, n, func() []string { return []string{"about"} })

	src.move(50, 50)
	p := s.Emitter.Particles()[0]
	s.Unmount()

	if len(src.listeners) != 0 {
		t.Fatalf("expected pointer listener released")
	}
	if s.Tracker.Subscribers() != 0 {
		t.Fatalf("expected tracker subscriptions released")
	}
	calls := overlay.calls
	src.move(400, 400)
	sched.Advance(time.Second)
	n.Poll()
	if overlay.calls != calls || len(marked) != 0 {
		t.Fatalf("expected no callbacks after unmount")
	}

	// In-flight particles still expire.
	sched.Advance(p.Duration)
	if len(layer.live) != 0 {
		t.Fatalf("expected in-flight particle removed after unmount")
	}
}

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler(epoch)
	var got []string
	s.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })
	cancel := s.AfterFunc(20*time.Millisecond, func() { got = append(got, "x") })
	cancel()

	s.Advance(30 * time.Millisecond)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order %v", got)
	}
	if !s.Now().Equal(epoch.Add(30 * time.Millisecond)) {
		t.Fatalf("unexpected clock %v", s.Now())
	}

	var frames int
	s.NextFrame(func() {
		frames++
		s.NextFrame(func() { frames++ })
	})
	s.Flush()
	if frames != 1 {
		t.Fatalf("expected nested frame deferred, got %d", frames)
	}
	s.Flush()
	if frames != 2 {
		t.Fatalf("expected nested frame on second flush, got %d", frames)
	}
}
