package clock

import (
	"sync/atomic"
	"time"
)

// Clock schedules callbacks for the landing controller.
// Callbacks are always delivered on the owner's thread.
type Clock interface {
	Now() time.Time
	AfterFunc(delay time.Duration, fn func()) Timer
}

// Timer is a scheduled callback. Stop is safe to call any number of times
// and reports whether it prevented the callback from running.
type Timer interface {
	Stop() bool
}

// Real is a wall clock that hands every expired callback to dispatch,
// which is expected to run it on the UI thread.
type Real struct {
	dispatch func(func())
}

// NewReal creates a wall clock. A nil dispatch runs callbacks on the
// timer goroutine.
func NewReal(dispatch func(func())) *Real {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Real{dispatch: dispatch}
}

// Now returns the current time.
func (clock *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc arms fn to run after delay.
func (clock *Real) AfterFunc(delay time.Duration, fn func()) Timer {
	timer := &realTimer{}
	timer.timer = time.AfterFunc(delay, func() {
		clock.dispatch(func() {
			// Stop may have won the race after the callback was queued.
			if timer.stopped.Swap(true) {
				return
			}
			fn()
		})
	})
	return timer
}

type realTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (timer *realTimer) Stop() bool {
	if timer.stopped.Swap(true) {
		return false
	}
	timer.timer.Stop()
	return true
}
