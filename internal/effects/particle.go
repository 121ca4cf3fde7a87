package effects

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"
)

// ParticleID identifies a particle for its whole lifetime. IDs are never
// reused by an Emitter.
type ParticleID uint64

// Transform is the animated state of a particle relative to its origin.
type Transform struct {
	DX, DY   float64
	Rotation float64
	Scale    float64
	Opacity  float64
}

// CSS renders the transform property. Particles are centred on their origin.
func (t Transform) CSS() string {
	s := "translate(-50%, -50%)"
	if t.DX != 0 || t.DY != 0 {
		s = fmt.Sprintf("translate(calc(-50%% + %spx), calc(-50%% + %spx))", num(t.DX), num(t.DY))
	}
	s += " rotate(" + num(t.Rotation) + "deg)"
	if t.Scale != 1 {
		s += " scale(" + num(t.Scale) + ")"
	}
	return s
}

// Particle is a single falling star.
type Particle struct {
	ID           ParticleID
	Glyph        string
	Color        string
	Size         float64
	Drift        float64
	FallDistance float64
	Duration     time.Duration
	Rotation     float64
	Origin       Point
	BornAt       time.Time
	End          Transform
}

// Start is the transform a particle is inserted with.
func (p Particle) Start() Transform {
	return Transform{Rotation: p.Rotation, Scale: 1, Opacity: 1}
}

// At samples the animation elapsed after the transition started. The motion
// follows FallEase and the fade follows EaseOut.
func (p Particle) At(elapsed time.Duration) Transform {
	x := 1.0
	if p.Duration > 0 {
		x = float64(elapsed) / float64(p.Duration)
	}
	m := FallEase.Ease(x)
	f := EaseOut.Ease(x)
	s := p.Start()
	return Transform{
		DX:       lerp(s.DX, p.End.DX, m),
		DY:       lerp(s.DY, p.End.DY, m),
		Rotation: lerp(s.Rotation, p.End.Rotation, m),
		Scale:    lerp(s.Scale, p.End.Scale, m),
		Opacity:  lerp(s.Opacity, p.End.Opacity, f),
	}
}

// Style renders the inline style of a freshly inserted particle.
func (p Particle) Style() string {
	ms := p.Duration.Milliseconds()
	return fmt.Sprintf("position: fixed; left: %spx; top: %spx; color: %s; font-size: %spx; "+
		"pointer-events: none; z-index: 9999; transform: %s; opacity: 1; "+
		"transition: transform %dms %s, opacity %dms ease-out;",
		num(p.Origin.X), num(p.Origin.Y), p.Color, num(p.Size),
		p.Start().CSS(), ms, FallEase.CSS(), ms)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Layer is the render subtree that hosts live particles.
type Layer interface {
	// Mounted reports whether the container is currently attached.
	Mounted() bool
	Insert(p Particle)
	// Animate starts the transition of id towards to.
	Animate(id ParticleID, to Transform)
	// Remove drops id. Removing an unknown id is a no-op.
	Remove(id ParticleID)
}

// Emitter spawns particles along the pointer trail. Every live particle is
// owned by the emitter's arena and removed by its own expiry timer.
type Emitter struct {
	cfg   Config
	sched Scheduler
	layer Layer
	rnd   *rand.Rand

	last    Point
	lastAt  time.Time
	emitted bool

	nextID ParticleID
	active map[ParticleID]*Particle
}

// NewEmitter returns an emitter drawing randomness from rnd. A nil rnd uses a
// randomly seeded source.
func NewEmitter(cfg Config, sched Scheduler, layer Layer, rnd *rand.Rand) *Emitter {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Emitter{
		cfg:    cfg,
		sched:  sched,
		layer:  layer,
		rnd:    rnd,
		active: make(map[ParticleID]*Particle),
	}
}

// Move considers p for an emission. It reports the spawned particle, if any.
func (e *Emitter) Move(p Point) (Particle, bool) {
	if e.layer == nil || !e.layer.Mounted() {
		return Particle{}, false
	}
	now := e.sched.Now()
	if e.emitted && now.Sub(e.lastAt) < e.cfg.Throttle {
		return Particle{}, false
	}
	if e.last.Dist(p) <= e.cfg.DistanceThreshold {
		return Particle{}, false
	}
	part := e.spawn(p, now)
	e.last = p
	e.lastAt = now
	e.emitted = true
	return part, true
}

func (e *Emitter) spawn(at Point, now time.Time) Particle {
	e.nextID++
	id := e.nextID
	cfg := e.cfg
	part := &Particle{
		ID:           id,
		Glyph:        cfg.Glyphs[e.rnd.IntN(len(cfg.Glyphs))],
		Color:        cfg.Palette[e.rnd.IntN(len(cfg.Palette))],
		Size:         e.uniform(cfg.SizeMin, cfg.SizeMax),
		Drift:        (e.rnd.Float64() - 0.5) * cfg.DriftSpan,
		FallDistance: e.uniform(cfg.FallMin, cfg.FallMax),
		Duration:     cfg.DurationMin + time.Duration(e.rnd.Float64()*float64(cfg.DurationMax-cfg.DurationMin)),
		Rotation:     e.rnd.Float64() * 360,
		Origin:       at,
		BornAt:       now,
	}
	part.End = Transform{
		DX:       part.Drift,
		DY:       part.FallDistance,
		Rotation: part.Rotation + cfg.Spin,
		Scale:    cfg.EndScale,
		Opacity:  0,
	}
	e.active[id] = part
	e.layer.Insert(*part)

	end := part.End
	e.sched.NextFrame(func() {
		if _, ok := e.active[id]; ok {
			e.layer.Animate(id, end)
		}
	})
	e.sched.AfterFunc(part.Duration, func() { e.expire(id) })
	return *part
}

func (e *Emitter) uniform(lo, hi float64) float64 {
	return lo + e.rnd.Float64()*(hi-lo)
}

// expire runs whether or not the transition finished.
func (e *Emitter) expire(id ParticleID) {
	delete(e.active, id)
	e.layer.Remove(id)
}

// Live reports the number of particles that have not expired.
func (e *Emitter) Live() int {
	return len(e.active)
}

// Particles returns the live particles in spawn order.
func (e *Emitter) Particles() []Particle {
	out := make([]Particle, 0, len(e.active))
	for _, p := range e.active {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
