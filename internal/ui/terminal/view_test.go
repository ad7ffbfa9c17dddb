package terminal

import (
	"math"
	"strings"
	"testing"
	"time"

	"allure/internal/core/clock"
	"allure/internal/core/landing"

	"github.com/gdamore/tcell/v2"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newView(t *testing.T) (*View, *landing.Controller, *clock.Manual, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	clk := clock.NewManual(epoch)
	controller := landing.New(landing.DefaultConfig(), clk)
	return New(screen, controller), controller, clk, screen
}

func screenText(screen tcell.Screen) string {
	width, height := screen.Size()
	var builder strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			builder.WriteRune(r)
		}
		builder.WriteRune('\n')
	}
	return builder.String()
}

func typeText(view *View, text string) {
	for _, r := range text {
		view.handleKey(tcell.KeyRune, r)
	}
}

func TestDrawShowsLandingCopy(t *testing.T) {
	view, controller, clk, screen := newView(t)
	controller.Mount()
	clk.Advance(2 * time.Second)
	view.Draw()

	text := screenText(screen)
	for _, want := range []string{"A L L U R E", "COMING SOON", "Join Our VIP List", "Enter your email", "NOTIFY ME"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen is missing %q", want)
		}
	}
}

func TestTypingAndSubmitting(t *testing.T) {
	view, controller, clk, screen := newView(t)
	controller.Mount()

	typeText(view, "a@b.comx")
	view.handleKey(tcell.KeyBackspace2, 0)
	if controller.Draft() != "a@b.com" {
		t.Fatalf("unexpected draft %q", controller.Draft())
	}

	view.handleKey(tcell.KeyEnter, 0)
	if controller.State() != landing.StateSubmitted {
		t.Fatalf("expected submitted, got %s", controller.State())
	}
	view.Draw()
	if text := screenText(screen); !strings.Contains(text, "Welcome to the elite circle") || strings.Contains(text, "NOTIFY ME") {
		t.Error("form should be replaced by the confirmation")
	}

	typeText(view, "ignored")
	if controller.Draft() != "" {
		t.Error("keystrokes must not reach a closed form")
	}

	clk.Advance(3 * time.Second)
	view.Draw()
	if !strings.Contains(screenText(screen), "NOTIFY ME") {
		t.Error("form should return after the confirmation period")
	}
}

func TestInvalidEmailShowsAlertUntilKeypress(t *testing.T) {
	view, controller, _, screen := newView(t)

	typeText(view, "nope")
	view.handleKey(tcell.KeyEnter, 0)
	if !view.Alerting() {
		t.Fatal("expected an alert")
	}
	view.Draw()
	text := screenText(screen)
	if !strings.Contains(text, "Invalid Email") || !strings.Contains(text, "Please enter a valid email address") {
		t.Error("alert copy missing from screen")
	}

	view.handleKey(tcell.KeyRune, 'x')
	if view.Alerting() {
		t.Error("any key should dismiss the alert")
	}
	if controller.Draft() != "nope" {
		t.Errorf("dismissing key must not edit the draft, got %q", controller.Draft())
	}
}

func TestQuitKeys(t *testing.T) {
	view, _, _, _ := newView(t)
	if view.handleKey(tcell.KeyEscape, 0) {
		t.Error("escape should quit")
	}
	view.ShowAlert("t", "m")
	if !view.handleKey(tcell.KeyEscape, 0) {
		t.Error("escape should first close the alert")
	}
	if view.handleKey(tcell.KeyCtrlC, 0) {
		t.Error("ctrl-c should quit")
	}
}

func TestGemGlyphFollowsPulse(t *testing.T) {
	cases := map[float64]string{1: "✧", 1.1: "✦", 1.2: "❖"}
	for pulse, want := range cases {
		if got := gemGlyph(pulse); got != want {
			t.Errorf("gemGlyph(%v) = %q, want %q", pulse, got, want)
		}
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  []string
	}{
		{text: "one two three four", width: 10, want: []string{"one two", "three four"}},
		{text: "one two three four", width: 9, want: []string{"one two", "three", "four"}},
		{text: "extraordinary", width: 5, want: []string{"extraordinary"}},
		{text: "a extraordinary b", width: 5, want: []string{"a", "extraordinary", "b"}},
		{text: "", width: 5, want: nil},
	}
	for _, tc := range cases {
		got := wrap(tc.text, tc.width)
		if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
			t.Errorf("wrap(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestShimmerStrengthBand(t *testing.T) {
	cases := map[float64]float64{-1: 0.8, 0: 0.8, 0.5: 0.9, 1: 1, 2: 1}
	for in, want := range cases {
		if got := shimmerStrength(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("shimmerStrength(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestLoopRunsDispatchedCallbacks(t *testing.T) {
	view, _, _, screen := newView(t)
	loop := NewLoop()

	ran := make(chan struct{})
	loop.Clock().AfterFunc(time.Millisecond, func() {
		close(ran)
		screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	})

	done := make(chan struct{})
	go func() {
		loop.Run(view, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	select {
	case <-ran:
	default:
		t.Error("clock callback never ran on the loop")
	}
	// Late dispatches after the loop ended must not block.
	loop.Dispatch(func() {})
}
