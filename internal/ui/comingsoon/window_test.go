package comingsoon

import (
	"math"
	"testing"
	"time"

	"allure/internal/core/clock"
	"allure/internal/core/landing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newView(t *testing.T) (*Window, *landing.Controller, *clock.Manual) {
	t.Helper()
	app := test.NewTempApp(t)
	clk := clock.NewManual(epoch)
	controller := landing.New(landing.DefaultConfig(), clk)
	view := New(app, controller, Config{Size: fyne.NewSize(420, 760), FrameInterval: time.Second / 60})
	t.Cleanup(view.Close)
	return view, controller, clk
}

func TestSubmitShowsConfirmationThenReverts(t *testing.T) {
	view, controller, clk := newView(t)
	controller.Mount()

	var states []landing.State
	view.SetOnStateChange(func(state landing.State) { states = append(states, state) })

	test.Type(view.entry, "a@b.com")
	if controller.Draft() != "a@b.com" {
		t.Fatalf("draft not forwarded, got %q", controller.Draft())
	}

	test.Tap(view.submitButton)
	if controller.State() != landing.StateSubmitted {
		t.Fatalf("expected submitted, got %s", controller.State())
	}
	if view.formBox.Visible() || !view.confirmation.Visible() {
		t.Error("form should be replaced by the confirmation")
	}

	clk.Advance(3 * time.Second)
	view.render()
	if !view.formBox.Visible() || view.confirmation.Visible() {
		t.Error("form should come back after the confirmation period")
	}
	if view.entry.Text != "" {
		t.Errorf("entry should be empty, got %q", view.entry.Text)
	}
	if len(states) != 2 || states[0] != landing.StateSubmitted || states[1] != landing.StateIdle {
		t.Errorf("unexpected state changes %v", states)
	}
}

func TestInvalidEmailShowsDialog(t *testing.T) {
	view, controller, _ := newView(t)

	test.Type(view.entry, "not-an-email")
	test.Tap(view.submitButton)

	if controller.State() != landing.StateIdle {
		t.Fatal("invalid email must not submit")
	}
	if view.window.Canvas().Overlays().Top() == nil {
		t.Error("expected an alert dialog")
	}
	if view.entry.Text != "not-an-email" {
		t.Error("entry should keep the draft")
	}
}

func TestRenderAppliesAnimatedValues(t *testing.T) {
	view, controller, clk := newView(t)
	view.render()
	_, _, _, startAlpha := view.veil.FillColor.RGBA()
	if startAlpha != 0xffff {
		t.Errorf("veil should hide everything before mount, alpha %d", startAlpha)
	}
	if view.slide.offset != slideDistance {
		t.Errorf("expected content to start %v below, got %v", slideDistance, view.slide.offset)
	}

	controller.Mount()
	clk.Advance(5 * time.Second)
	view.render()

	if view.slide.offset != 0 {
		t.Errorf("slide should have landed, got %v", view.slide.offset)
	}
	_, _, _, veilAlpha := view.veil.FillColor.RGBA()
	if veilAlpha != 0 {
		t.Errorf("veil should be transparent after the fade, alpha %d", veilAlpha)
	}
	if math.Abs(float64(view.pulse.scale)-controller.Pulse()) > 1e-6 {
		t.Errorf("gem scale %v does not follow pulse %v", view.pulse.scale, controller.Pulse())
	}
	wantAlpha := uint8(ShimmerOpacity(controller.Shimmer()) * 255)
	if got := view.brand.Color; got != withAlpha(gold, wantAlpha) {
		t.Errorf("brand colour %v, want alpha %d", got, wantAlpha)
	}
}

func TestShimmerOpacityBand(t *testing.T) {
	cases := map[float64]float64{-1: 0.8, 0: 0.8, 0.5: 0.9, 1: 1, 2: 1}
	for in, want := range cases {
		if got := ShimmerOpacity(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("ShimmerOpacity(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestCloseTearsControllerDown(t *testing.T) {
	view, controller, clk := newView(t)
	controller.Mount()

	view.Close()
	view.Close()
	if clk.Pending() != 0 {
		t.Errorf("expected no timers after close, got %d", clk.Pending())
	}
	if _, ok := controller.Form(); ok {
		t.Error("form offered after close")
	}
}
