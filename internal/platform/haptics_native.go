//go:build !js

package platform

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	tickSampleRate = beep.SampleRate(44100)
	tickFrequency  = 180.0
	tickLength     = 12 * time.Millisecond
	tickStall      = time.Second
)

var errTickStalled = errors.New("tick playback stalled")

// tickHaptics stands in for a vibration motor with a short low click on
// the speaker.
type tickHaptics struct {
	once    sync.Once
	initErr error
}

func newHaptics() Haptics {
	return &tickHaptics{}
}

func (haptics *tickHaptics) LightImpact() error {
	haptics.once.Do(func() {
		if err := speaker.Init(tickSampleRate, tickSampleRate.N(time.Second/20)); err != nil {
			haptics.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	if haptics.initErr != nil {
		return haptics.initErr
	}

	tone, err := generators.SineTone(tickSampleRate, tickFrequency)
	if err != nil {
		return fmt.Errorf("tick tone: %w", err)
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(tickSampleRate.N(tickLength), tone),
		beep.Callback(func() { close(done) }),
	))
	select {
	case <-done:
		return nil
	case <-time.After(tickStall):
		return fmt.Errorf("%w after %s", errTickStalled, tickStall)
	}
}
