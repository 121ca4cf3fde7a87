package effects

import (
	"fmt"
	"math"
	"strconv"
)

// Overlay receives the spotlight background whenever the centre moves.
type Overlay interface {
	SetBackground(css string)
}

// Spotlight is the full-viewport radial highlight that follows the pointer.
type Spotlight struct {
	// Radius of the gradient circle.
	Radius float64
	// Alpha is the translucency of the white highlight at the centre.
	Alpha float64
	// Fade is the fraction of Radius at which the highlight is fully
	// transparent.
	Fade float64

	center  Point
	overlay Overlay
}

// NewSpotlight returns a spotlight that pushes its background to overlay.
// overlay may be nil for hosts that only sample Intensity.
func NewSpotlight(cfg Config, overlay Overlay) *Spotlight {
	return &Spotlight{
		Radius:  cfg.SpotlightRadius,
		Alpha:   cfg.SpotlightAlpha,
		Fade:    cfg.SpotlightFade,
		overlay: overlay,
	}
}

// Update recenters the spotlight on p.
func (s *Spotlight) Update(p Point) {
	s.center = p
	if s.overlay != nil {
		s.overlay.SetBackground(s.Background())
	}
}

// Center returns the current centre of the gradient.
func (s *Spotlight) Center() Point {
	return s.center
}

// Background renders the CSS background for the current centre.
func (s *Spotlight) Background() string {
	return Gradient(s.center, s.Radius, s.Alpha, s.Fade)
}

// Intensity is the highlight alpha at p, falling linearly from Alpha at the
// centre to zero at Fade*Radius.
func (s *Spotlight) Intensity(p Point) float64 {
	edge := s.Radius * s.Fade
	if edge <= 0 {
		return 0
	}
	d := s.center.Dist(p)
	if d >= edge {
		return 0
	}
	return s.Alpha * (1 - d/edge)
}

// Gradient renders a CSS radial-gradient centred at c.
func Gradient(c Point, radius, alpha, fade float64) string {
	return fmt.Sprintf("radial-gradient(%spx circle at %spx %spx, rgba(255, 255, 255, %s), transparent %s%%)",
		num(radius), num(c.X), num(c.Y), num(alpha), num(math.Round(fade*100)))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
