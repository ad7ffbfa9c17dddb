package clock

import (
	"sort"
	"time"
)

// Manual is a deterministic clock for tests. Time only moves on Advance,
// and due callbacks run synchronously inside it in deadline order.
type Manual struct {
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current mocked time.
func (clock *Manual) Now() time.Time {
	return clock.now
}

// AfterFunc arms fn to run once the clock has advanced by delay.
func (clock *Manual) AfterFunc(delay time.Duration, fn func()) Timer {
	if delay < 0 {
		delay = 0
	}
	clock.seq++
	timer := &manualTimer{
		clock: clock,
		when:  clock.now.Add(delay),
		seq:   clock.seq,
		fn:    fn,
	}
	clock.timers = append(clock.timers, timer)
	return timer
}

// Advance moves the clock forward by delta, firing every callback that
// falls due on the way. Callbacks armed while advancing fire too if their
// deadline is within the window.
func (clock *Manual) Advance(delta time.Duration) {
	target := clock.now.Add(delta)
	for {
		next := clock.nextDue(target)
		if next == nil {
			break
		}
		clock.remove(next)
		clock.now = next.when
		next.fn()
	}
	clock.now = target
}

// Pending returns the number of armed timers.
func (clock *Manual) Pending() int {
	return len(clock.timers)
}

// NextDeadline returns the earliest armed deadline.
func (clock *Manual) NextDeadline() (time.Time, bool) {
	if len(clock.timers) == 0 {
		return time.Time{}, false
	}
	clock.sortTimers()
	return clock.timers[0].when, true
}

func (clock *Manual) nextDue(target time.Time) *manualTimer {
	if len(clock.timers) == 0 {
		return nil
	}
	clock.sortTimers()
	if clock.timers[0].when.After(target) {
		return nil
	}
	return clock.timers[0]
}

func (clock *Manual) sortTimers() {
	sort.Slice(clock.timers, func(i, j int) bool {
		if clock.timers[i].when.Equal(clock.timers[j].when) {
			return clock.timers[i].seq < clock.timers[j].seq
		}
		return clock.timers[i].when.Before(clock.timers[j].when)
	})
}

func (clock *Manual) remove(timer *manualTimer) bool {
	for index, candidate := range clock.timers {
		if candidate == timer {
			clock.timers = append(clock.timers[:index], clock.timers[index+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	clock *Manual
	when  time.Time
	seq   uint64
	fn    func()
}

func (timer *manualTimer) Stop() bool {
	return timer.clock.remove(timer)
}
