//go:build js

package platform

// Browsers get no impact feedback.
func newHaptics() Haptics {
	return nil
}
