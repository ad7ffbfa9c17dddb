package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	clock := NewManual(epoch)
	var order []string

	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(250 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected [a b], got %v", order)
	}
	if clock.Pending() != 1 {
		t.Fatalf("expected 1 pending timer, got %d", clock.Pending())
	}

	clock.Advance(50 * time.Millisecond)
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("expected c to fire at its deadline, got %v", order)
	}
	if !clock.Now().Equal(epoch.Add(300 * time.Millisecond)) {
		t.Errorf("unexpected clock time %v", clock.Now())
	}
}

func TestManualCallbackSeesItsDeadline(t *testing.T) {
	clock := NewManual(epoch)
	var firedAt time.Time
	clock.AfterFunc(time.Second, func() { firedAt = clock.Now() })

	clock.Advance(5 * time.Second)
	if !firedAt.Equal(epoch.Add(time.Second)) {
		t.Errorf("expected callback at +1s, got %v", firedAt.Sub(epoch))
	}
	if !clock.Now().Equal(epoch.Add(5 * time.Second)) {
		t.Errorf("expected clock at +5s, got %v", clock.Now().Sub(epoch))
	}
}

func TestManualChainedTimersFireWithinWindow(t *testing.T) {
	clock := NewManual(epoch)
	count := 0
	var arm func()
	arm = func() {
		clock.AfterFunc(time.Second, func() {
			count++
			arm()
		})
	}
	arm()

	clock.Advance(3500 * time.Millisecond)
	if count != 3 {
		t.Errorf("expected 3 chained firings, got %d", count)
	}
	if clock.Pending() != 1 {
		t.Errorf("expected the next link to stay armed, got %d", clock.Pending())
	}
}

func TestManualStopIsIdempotent(t *testing.T) {
	clock := NewManual(epoch)
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("first Stop should report the timer was armed")
	}
	if timer.Stop() {
		t.Fatal("second Stop should be a no-op")
	}
	clock.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if clock.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", clock.Pending())
	}
}

func TestRealDispatchesCallbacks(t *testing.T) {
	queue := make(chan func(), 1)
	clock := NewReal(func(fn func()) { queue <- fn })

	done := make(chan struct{})
	clock.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case fn := <-queue:
		fn()
	case <-time.After(time.Second):
		t.Fatal("callback was never dispatched")
	}
	select {
	case <-done:
	default:
		t.Fatal("dispatched callback did not run")
	}
}

func TestRealStopSuppressesQueuedCallback(t *testing.T) {
	queue := make(chan func(), 1)
	clock := NewReal(func(fn func()) { queue <- fn })

	fired := false
	timer := clock.AfterFunc(time.Millisecond, func() { fired = true })

	var queued func()
	select {
	case queued = <-queue:
	case <-time.After(time.Second):
		t.Fatal("callback was never dispatched")
	}

	timer.Stop()
	timer.Stop()
	queued()
	if fired {
		t.Error("callback ran after Stop")
	}
}
