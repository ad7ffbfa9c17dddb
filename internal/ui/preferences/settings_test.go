package preferences

import (
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	settings := DefaultSettings()
	if got := settings.FrameInterval(); got != time.Second/60 {
		t.Errorf("expected 60fps default, got %v", got)
	}

	settings.FrameRate = 30
	if got := settings.FrameInterval(); got != time.Second/30 {
		t.Errorf("expected 30fps, got %v", got)
	}

	settings.FrameRate = 0
	if got := settings.FrameInterval(); got != time.Second/60 {
		t.Errorf("expected fallback to 60fps, got %v", got)
	}
}

func TestLandingConfigKeepsDesignTimings(t *testing.T) {
	config := DefaultSettings().LandingConfig()
	if config.RevertAfter != 3*time.Second {
		t.Errorf("unexpected revert delay %v", config.RevertAfter)
	}
	if config.Pulse.Period() != 4*time.Second || config.Shimmer.Period() != 6*time.Second {
		t.Errorf("unexpected loop periods %v / %v", config.Pulse.Period(), config.Shimmer.Period())
	}
}
