package motion

import (
	"time"

	"allure/internal/core/clock"
)

// Animation is a cancellable scheduled task driving one or more values.
type Animation interface {
	// Start schedules the animation on clk. onDone runs once when the
	// animation finishes on its own; it never runs after Stop.
	Start(clk clock.Clock, onDone func())
	// Stop cancels the animation and freezes its values. Idempotent.
	Stop()
	// Running reports whether the animation is started and unfinished.
	Running() bool
}

// Task plays a sequence of legs on a single value, once or forever.
type Task struct {
	value  *Value
	legs   []Leg
	repeat bool

	clock   clock.Clock
	index   int
	start   time.Time
	timer   clock.Timer
	started bool
	done    bool
	onDone  func()
}

// Timing plays legs on value one after another, then finishes.
func Timing(value *Value, legs ...Leg) *Task {
	return &Task{value: value, legs: legs}
}

// Loop plays legs on value one after another, forever.
func Loop(value *Value, legs ...Leg) *Task {
	return &Task{value: value, legs: legs, repeat: true}
}

// Start implements Animation. A second Start is ignored.
func (task *Task) Start(clk clock.Clock, onDone func()) {
	if task.started {
		return
	}
	task.started = true
	task.clock = clk
	task.onDone = onDone
	task.start = clk.Now()

	if len(task.legs) == 0 || (task.repeat && task.cycle() <= 0) {
		// Nothing to schedule; a zero-length loop would spin forever.
		if len(task.legs) > 0 {
			task.value.settle(task.legs[len(task.legs)-1].To)
		}
		task.finish()
		return
	}
	task.runLeg()
}

// Stop implements Animation.
func (task *Task) Stop() {
	if !task.started || task.done {
		task.started = true
		task.done = true
		return
	}
	task.done = true
	task.onDone = nil
	if task.timer != nil {
		task.timer.Stop()
		task.timer = nil
	}
	task.value.freeze()
}

// Running implements Animation.
func (task *Task) Running() bool {
	return task.started && !task.done
}

func (task *Task) cycle() time.Duration {
	var total time.Duration
	for _, leg := range task.legs {
		if leg.Duration > 0 {
			total += leg.Duration
		}
	}
	return total
}

func (task *Task) runLeg() {
	leg := task.legs[task.index]
	task.value.begin(leg, task.start)
	end := task.start.Add(leg.Duration)
	task.timer = task.clock.AfterFunc(end.Sub(task.clock.Now()), task.advance)
}

func (task *Task) advance() {
	if task.done {
		return
	}
	leg := task.legs[task.index]
	task.value.settle(leg.To)
	if leg.Duration > 0 {
		// Anchor on the ideal boundary so late timers do not drift the phase.
		task.start = task.start.Add(leg.Duration)
	}
	task.timer = nil
	task.index++
	if task.index == len(task.legs) {
		if !task.repeat {
			task.finish()
			return
		}
		task.index = 0
	}
	task.runLeg()
}

func (task *Task) finish() {
	task.done = true
	onDone := task.onDone
	task.onDone = nil
	if onDone != nil {
		onDone()
	}
}

// Group runs animations side by side and finishes when all of them have.
type Group struct {
	members   []Animation
	remaining int
	started   bool
	done      bool
	onDone    func()
}

// Parallel groups animations that start together.
func Parallel(members ...Animation) *Group {
	return &Group{members: members}
}

// Start implements Animation.
func (group *Group) Start(clk clock.Clock, onDone func()) {
	if group.started {
		return
	}
	group.started = true
	group.onDone = onDone
	group.remaining = len(group.members)
	if group.remaining == 0 {
		group.finish()
		return
	}
	for _, member := range group.members {
		member.Start(clk, group.memberDone)
	}
}

// Stop implements Animation.
func (group *Group) Stop() {
	group.started = true
	if group.done {
		return
	}
	group.done = true
	group.onDone = nil
	for _, member := range group.members {
		member.Stop()
	}
}

// Running implements Animation.
func (group *Group) Running() bool {
	return group.started && !group.done
}

func (group *Group) memberDone() {
	group.remaining--
	if group.remaining == 0 && !group.done {
		group.finish()
	}
}

func (group *Group) finish() {
	group.done = true
	onDone := group.onDone
	group.onDone = nil
	if onDone != nil {
		onDone()
	}
}
