package terminal

import (
	"time"

	"allure/internal/core/clock"

	"github.com/gdamore/tcell/v2"
)

// Loop is the terminal's single UI thread. Input, repaints and every
// clock callback run on the goroutine that calls Run.
type Loop struct {
	tasks chan func()
	quit  chan struct{}
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 16),
		quit:  make(chan struct{}),
	}
}

// Clock returns a wall clock whose callbacks are delivered on the loop.
func (loop *Loop) Clock() *clock.Real {
	return clock.NewReal(loop.Dispatch)
}

// Dispatch queues fn for the loop. Calls after the loop stopped are
// dropped.
func (loop *Loop) Dispatch(fn func()) {
	select {
	case loop.tasks <- fn:
	case <-loop.quit:
	}
}

// Run pumps events until the view asks to quit.
func (loop *Loop) Run(view *View, frameInterval time.Duration) {
	defer close(loop.quit)

	if frameInterval <= 0 {
		frameInterval = time.Second / 60
	}
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			event := view.screen.PollEvent()
			if event == nil {
				return
			}
			select {
			case events <- event:
			case <-loop.quit:
				return
			}
		}
	}()

	view.Draw()
	for {
		select {
		case event := <-events:
			if !view.HandleEvent(event) {
				return
			}
			view.Draw()
		case fn := <-loop.tasks:
			fn()
		case <-ticker.C:
			view.Draw()
		}
	}
}
