package motion

import (
	"time"

	"allure/internal/core/clock"

	"fyne.io/fyne/v2"
)

// Leg is one timed move of a Value from wherever it rests to To.
type Leg struct {
	To       float64
	Duration time.Duration
	Curve    fyne.AnimationCurve
}

// Ease builds a leg with the default ease-in-out curve.
func Ease(to float64, duration time.Duration) Leg {
	return Leg{To: to, Duration: duration, Curve: fyne.AnimationEaseInOut}
}

// Sample returns the interpolated value elapsed into the leg.
func (leg Leg) Sample(from float64, elapsed time.Duration) float64 {
	if leg.Duration <= 0 || elapsed >= leg.Duration {
		return leg.To
	}
	if elapsed <= 0 {
		return from
	}
	progress := float32(float64(elapsed) / float64(leg.Duration))
	curve := leg.Curve
	if curve == nil {
		curve = fyne.AnimationLinear
	}
	eased := float64(curve(progress))
	if eased < 0 {
		eased = 0
	}
	if eased > 1 {
		eased = 1
	}
	return from + (leg.To-from)*eased
}

// Value is an animated scalar. While a leg is active it is sampled
// against the clock on every read; otherwise it holds its resting value.
type Value struct {
	clock clock.Clock
	rest  float64
	leg   *Leg
	start time.Time
}

// NewValue creates a value resting at initial.
func NewValue(clk clock.Clock, initial float64) *Value {
	return &Value{clock: clk, rest: initial}
}

// Get returns the current value.
func (value *Value) Get() float64 {
	if value.leg == nil {
		return value.rest
	}
	return value.leg.Sample(value.rest, value.clock.Now().Sub(value.start))
}

// Animating reports whether a leg is in flight.
func (value *Value) Animating() bool {
	return value.leg != nil
}

func (value *Value) begin(leg Leg, start time.Time) {
	value.rest = value.Get()
	value.leg = &leg
	value.start = start
}

func (value *Value) settle(to float64) {
	value.rest = to
	value.leg = nil
}

func (value *Value) freeze() {
	value.settle(value.Get())
}
