package landing

import (
	"log"

	"allure/internal/core/clock"
	"allure/internal/core/model"
	"allure/internal/core/motion"
)

// Alerter shows a blocking message to the user.
type Alerter interface {
	ShowAlert(title, message string)
}

// Haptics plays a light impact. Failures are never fatal.
type Haptics interface {
	LightImpact() error
}

// Frame is a snapshot of everything a renderer needs for one paint.
type Frame struct {
	Fade     float64
	Slide    float64
	Pulse    float64
	Shimmer  float64
	State    State
	Draft    string
	FormOpen bool
}

// Controller drives the landing view: the entrance animation, the two
// ambient loops and the email submission state machine.
//
// A Controller is not safe for concurrent use. Every method and every
// clock callback must run on the same thread.
type Controller struct {
	config  model.LandingConfig
	clock   clock.Clock
	alerter Alerter
	haptics Haptics

	fade    *motion.Value
	slide   *motion.Value
	pulse   *motion.Value
	shimmer *motion.Value

	entrance    motion.Animation
	pulseLoop   motion.Animation
	shimmerLoop motion.Animation

	state        State
	draft        string
	revert       clock.Timer
	form         *Form
	mounted      bool
	tornDown     bool
	entranceRuns int

	events []chan Event
}

// New creates a controller in the idle state with all values at rest.
func New(config model.LandingConfig, clk clock.Clock) *Controller {
	return &Controller{
		config:  config,
		clock:   clk,
		fade:    motion.NewValue(clk, config.Fade.From),
		slide:   motion.NewValue(clk, config.Slide.From),
		pulse:   motion.NewValue(clk, config.Pulse.Low),
		shimmer: motion.NewValue(clk, config.Shimmer.Low),
		state:   StateIdle,
	}
}

// SetAlerter injects the alert collaborator.
func (controller *Controller) SetAlerter(alerter Alerter) {
	controller.alerter = alerter
}

// SetHaptics injects the haptic collaborator. Nil disables haptics.
func (controller *Controller) SetHaptics(haptics Haptics) {
	controller.haptics = haptics
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	if controller.tornDown {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Mount plays the entrance and starts the ambient loops. Only the first
// call has any effect.
func (controller *Controller) Mount() {
	if controller.mounted || controller.tornDown {
		return
	}
	controller.mounted = true
	controller.entranceRuns++

	config := controller.config
	controller.entrance = motion.Parallel(
		motion.Timing(controller.fade, motion.Ease(config.Fade.To, config.Fade.Duration)),
		motion.Timing(controller.slide, motion.Ease(config.Slide.To, config.Slide.Duration)),
	)
	controller.pulseLoop = oscillate(controller.pulse, config.Pulse)
	controller.shimmerLoop = oscillate(controller.shimmer, config.Shimmer)

	controller.emit(Event{Type: EventEntranceStarted})
	controller.entrance.Start(controller.clock, func() {
		controller.emit(Event{Type: EventEntranceDone})
	})
	controller.pulseLoop.Start(controller.clock, nil)
	controller.shimmerLoop.Start(controller.clock, nil)
}

// Teardown cancels every scheduled task and closes observers. Idempotent.
func (controller *Controller) Teardown() {
	if controller.tornDown {
		return
	}
	controller.tornDown = true

	for _, animation := range []motion.Animation{controller.entrance, controller.pulseLoop, controller.shimmerLoop} {
		if animation != nil {
			animation.Stop()
		}
	}
	if controller.revert != nil {
		controller.revert.Stop()
		controller.revert = nil
	}
	controller.closeForm()

	controller.emit(Event{Type: EventTeardown})
	events := controller.events
	controller.events = nil
	for _, ch := range events {
		close(ch)
	}
}

// Form returns the email entry point. It is absent while a submission is
// being confirmed and after teardown.
func (controller *Controller) Form() (*Form, bool) {
	if !controller.formAvailable() {
		return nil, false
	}
	if controller.form == nil {
		controller.form = &Form{controller: controller}
	}
	return controller.form, true
}

// State returns the submission state.
func (controller *Controller) State() State {
	return controller.state
}

// Draft returns the current input buffer.
func (controller *Controller) Draft() string {
	return controller.draft
}

// RevertPending reports whether the confirmation timer is armed.
func (controller *Controller) RevertPending() bool {
	return controller.revert != nil
}

// EntranceRuns returns how many times the entrance has been started.
func (controller *Controller) EntranceRuns() int {
	return controller.entranceRuns
}

// Fade returns the entrance opacity in [0,1].
func (controller *Controller) Fade() float64 {
	return controller.fade.Get()
}

// Slide returns the entrance vertical offset in [0,50].
func (controller *Controller) Slide() float64 {
	return controller.slide.Get()
}

// Pulse returns the gem scale in [1,1.2].
func (controller *Controller) Pulse() float64 {
	return controller.pulse.Get()
}

// Shimmer returns the raw brand shimmer driver in [0,1].
func (controller *Controller) Shimmer() float64 {
	return controller.shimmer.Get()
}

// Frame samples every value at the current clock time. It has no side
// effects.
func (controller *Controller) Frame() Frame {
	return Frame{
		Fade:     controller.Fade(),
		Slide:    controller.Slide(),
		Pulse:    controller.Pulse(),
		Shimmer:  controller.Shimmer(),
		State:    controller.state,
		Draft:    controller.draft,
		FormOpen: controller.formAvailable(),
	}
}

func (controller *Controller) formAvailable() bool {
	if controller.tornDown {
		return false
	}
	_, ok := allowed(controller.state, triggerSubmit)
	return ok
}

func (controller *Controller) submit() error {
	next, ok := allowed(controller.state, triggerSubmit)
	if !ok || controller.tornDown {
		return ErrFormClosed
	}

	if err := ValidateEmail(controller.draft); err != nil {
		if controller.alerter != nil {
			controller.alerter.ShowAlert(InvalidEmailTitle, InvalidEmailMessage)
		}
		controller.emit(Event{Type: EventInvalidEmail, Message: err.Error()})
		return err
	}

	controller.closeForm()
	controller.state = next
	controller.draft = ""
	controller.revert = controller.clock.AfterFunc(controller.config.RevertAfter, controller.expireRevert)
	controller.emit(Event{Type: EventStateChange})

	controller.impact()
	return nil
}

func (controller *Controller) expireRevert() {
	controller.revert = nil
	if controller.tornDown {
		return
	}
	next, ok := allowed(controller.state, triggerRevert)
	if !ok {
		return
	}
	controller.state = next
	controller.emit(Event{Type: EventStateChange})
}

func (controller *Controller) impact() {
	haptics := controller.haptics
	if haptics == nil {
		return
	}
	go func() {
		if err := haptics.LightImpact(); err != nil {
			log.Printf("haptics: %v", err)
		}
	}()
}

func (controller *Controller) closeForm() {
	if controller.form != nil {
		controller.form.closed = true
		controller.form = nil
	}
}

func (controller *Controller) emit(event Event) {
	event.State = controller.state
	if event.At.IsZero() {
		event.At = controller.clock.Now()
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func oscillate(value *motion.Value, osc model.Oscillation) *motion.Task {
	return motion.Loop(value,
		motion.Ease(osc.High, osc.HalfPeriod),
		motion.Ease(osc.Low, osc.HalfPeriod),
	)
}
