package effects

import "time"

// Config holds the tuning constants of the effects. The values were picked by
// eye; nothing is derived from them.
type Config struct {
	// DistanceThreshold is the displacement since the last emission that a
	// move must exceed to emit a particle.
	DistanceThreshold float64
	// Throttle is the minimum time between two emissions.
	Throttle time.Duration

	Glyphs  []string
	Palette []string

	SizeMin, SizeMax         float64
	DriftSpan                float64
	FallMin, FallMax         float64
	DurationMin, DurationMax time.Duration
	// EndScale and Spin describe the final transform of a particle relative
	// to its start.
	EndScale float64
	Spin     float64

	SpotlightRadius float64
	SpotlightAlpha  float64
	SpotlightFade   float64

	// RevealThreshold is the visible fraction of a section that reveals it.
	RevealThreshold float64
	// RevealBottomMargin shrinks the viewport from the bottom edge.
	RevealBottomMargin float64
	// RevealDelay lets layout settle before sections are discovered.
	RevealDelay time.Duration
}

// DefaultConfig returns the constants used by the published page.
func DefaultConfig() Config {
	return Config{
		DistanceThreshold: 4,
		Throttle:          20 * time.Millisecond,

		Glyphs:  []string{"✦", "✧", "•", "+", "*"},
		Palette: []string{"#E8A5A5", "#D68F8F", "#0a0a0a", "#EACDD0", "#c97878"},

		SizeMin:     8,
		SizeMax:     22,
		DriftSpan:   60,
		FallMin:     60,
		FallMax:     140,
		DurationMin: 600 * time.Millisecond,
		DurationMax: 1400 * time.Millisecond,
		EndScale:    0.3,
		Spin:        180,

		SpotlightRadius: 600,
		SpotlightAlpha:  0.18,
		SpotlightFade:   0.4,

		RevealThreshold:    0.1,
		RevealBottomMargin: 50,
		RevealDelay:        100 * time.Millisecond,
	}
}
