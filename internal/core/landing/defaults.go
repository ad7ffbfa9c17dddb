package landing

import (
	"time"

	"allure/internal/core/model"
)

// DefaultConfig returns the timings of the coming-soon screen.
func DefaultConfig() model.LandingConfig {
	return model.LandingConfig{
		Fade: model.Tween{
			From:     0,
			To:       1,
			Duration: 1500 * time.Millisecond,
		},
		Slide: model.Tween{
			From:     50,
			To:       0,
			Duration: 1200 * time.Millisecond,
		},
		Pulse: model.Oscillation{
			Low:        1,
			High:       1.2,
			HalfPeriod: 2 * time.Second,
		},
		Shimmer: model.Oscillation{
			Low:        0,
			High:       1,
			HalfPeriod: 3 * time.Second,
		},
		RevertAfter: 3 * time.Second,
	}
}
