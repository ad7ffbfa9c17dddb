package platform

import "errors"

// ErrHapticsUnsupported indicates the target has no way to play an impact.
var ErrHapticsUnsupported = errors.New("haptics unsupported")

// Haptics plays a light impact on the current device.
type Haptics interface {
	LightImpact() error
}

// NewHaptics returns the platform haptic provider, or nil on targets where
// haptics are skipped altogether.
func NewHaptics() Haptics {
	return newHaptics()
}
