package landing

import "time"

// State represents the submission state of the lead-capture form.
type State string

const (
	StateIdle      State = "idle"
	StateSubmitted State = "submitted"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventEntranceStarted EventType = "entrance_started"
	EventEntranceDone    EventType = "entrance_done"
	EventStateChange     EventType = "state_change"
	EventInvalidEmail    EventType = "invalid_email"
	EventTeardown        EventType = "teardown"
)

// Event represents a controller update for observers.
type Event struct {
	Type    EventType
	State   State
	Message string
	At      time.Time
}
