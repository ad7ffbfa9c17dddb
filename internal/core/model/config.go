package model

import "time"

// Tween describes a one-shot move between two values.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
}

// Oscillation describes an endless Low -> High -> Low cycle.
// Each half of the cycle takes HalfPeriod.
type Oscillation struct {
	Low        float64
	High       float64
	HalfPeriod time.Duration
}

// Period returns the length of a full cycle.
func (osc Oscillation) Period() time.Duration {
	return 2 * osc.HalfPeriod
}

// LandingConfig contains the timing model of the landing controller.
type LandingConfig struct {
	Fade  Tween
	Slide Tween

	Pulse   Oscillation
	Shimmer Oscillation

	RevertAfter time.Duration
}
