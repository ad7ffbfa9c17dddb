package landing

import "errors"

// ErrFormClosed indicates the form handle outlived its idle period.
var ErrFormClosed = errors.New("email form closed")

type trigger string

const (
	triggerSubmit trigger = "submit"
	triggerRevert trigger = "revert"
)

// transitions is the submission state machine. Anything not listed here
// cannot happen.
var transitions = map[State]map[trigger]State{
	StateIdle: {
		triggerSubmit: StateSubmitted,
	},
	StateSubmitted: {
		triggerRevert: StateIdle,
	},
}

func allowed(from State, by trigger) (State, bool) {
	to, ok := transitions[from][by]
	return to, ok
}

// Form is the email entry point. A controller hands one out only while it
// is idle; the handle is closed for good when the controller leaves idle.
type Form struct {
	controller *Controller
	closed     bool
}

// Draft returns the current input buffer.
func (form *Form) Draft() string {
	if form.closed {
		return ""
	}
	return form.controller.draft
}

// SetDraft replaces the input buffer. No validation happens here.
func (form *Form) SetDraft(text string) error {
	if form.closed {
		return ErrFormClosed
	}
	form.controller.draft = text
	return nil
}

// Submit validates the draft and, if it passes, moves the controller to
// submitted. An invalid draft has already been reported through the
// alert collaborator when ErrInvalidEmail is returned.
func (form *Form) Submit() error {
	if form.closed {
		return ErrFormClosed
	}
	return form.controller.submit()
}

// Open reports whether the handle still accepts input.
func (form *Form) Open() bool {
	return !form.closed
}
