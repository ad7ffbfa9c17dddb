package preferences

import (
	"time"

	"allure/internal/core/landing"
	"allure/internal/core/model"
)

// Settings defines user preferences for the landing app.
type Settings struct {
	HapticsEnabled bool
	Fullscreen     bool
	FrameRate      int

	WindowWidth  float32
	WindowHeight float32
}

// DefaultSettings returns default settings for the landing app.
func DefaultSettings() Settings {
	return Settings{
		HapticsEnabled: true,
		Fullscreen:     false,
		FrameRate:      60,
		WindowWidth:    420,
		WindowHeight:   760,
	}
}

// FrameInterval converts the frame rate into a repaint period.
func (settings Settings) FrameInterval() time.Duration {
	if settings.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(settings.FrameRate)
}

// LandingConfig returns the controller timing model. Timings are part of
// the design and are not user editable.
func (settings Settings) LandingConfig() model.LandingConfig {
	return landing.DefaultConfig()
}
