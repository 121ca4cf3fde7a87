package effects

import "math/rand/v2"

// Scene wires the effects of one page together. Mount and Unmount bracket the
// page's lifetime; nothing is subscribed outside of it.
type Scene struct {
	Tracker   *Tracker
	Spotlight *Spotlight
	Emitter   *Emitter
	Reveal    *RevealController

	stops   []func()
	mounted bool
}

// Host bundles what a rendering host provides to a Scene.
type Host struct {
	Scheduler Scheduler
	Overlay   Overlay
	Layer     Layer
	// Mark applies the revealed marker to a section.
	Mark func(target string)
	// Rand seeds particle appearance; nil picks a random seed.
	Rand *rand.Rand
}

// NewScene builds an unmounted scene.
func NewScene(cfg Config, h Host) *Scene {
	s := &Scene{
		Tracker:   NewTracker(),
		Spotlight: NewSpotlight(cfg, h.Overlay),
		Emitter:   NewEmitter(cfg, h.Scheduler, h.Layer, h.Rand),
		Reveal:    NewRevealController(cfg, h.Scheduler, h.Mark),
	}
	return s
}

// Mount subscribes the scene to src and starts scroll reveal through n.
// discover lists the marked sections once layout has settled.
func (s *Scene) Mount(src PointerSource, n Notifier, discover func() []string) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.stops = append(s.stops,
		s.Tracker.Subscribe(s.Spotlight.Update),
		s.Tracker.Subscribe(func(p Point) { s.Emitter.Move(p) }),
	)
	if src != nil {
		s.stops = append(s.stops, s.Tracker.Attach(src))
	}
	if n != nil {
		s.Reveal.Mount(n, discover)
		s.stops = append(s.stops, s.Reveal.Unmount)
	}
}

// Unmount releases every subscription and observer. Particles already in
// flight expire on their own timers.
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	for i := len(s.stops) - 1; i >= 0; i-- {
		s.stops[i]()
	}
	s.stops = nil
}

// Mounted reports whether the scene is live.
func (s *Scene) Mounted() bool {
	return s.mounted
}
