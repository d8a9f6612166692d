// Package task models a single reminder and computes its alert moments.
package task

import (
	"errors"
	"fmt"
)

// NoTime is returned by NextTimeAfter when no alert follows the query time.
const NoTime = -1

// Rejection errors. The messages are part of the output contract: they are
// what a Reporter receives and what the CLI prints.
var (
	ErrEmptyTitle          = errors.New("Task name must consist of at least one character")
	ErrNegativeTime        = errors.New("Task notification time must be >= zero")
	ErrNegativeStart       = errors.New("The start time of the task alert must be >= zero")
	ErrEndNotAfterStart    = errors.New("Time to stop the alert task should be bigger than the start time of the task alert")
	ErrNonPositiveInterval = errors.New("The time interval after which the task notification must be repeated should be greater than zero")
)

// Task is a reminder with either a single alert time or a repeating alert
// window. A zero Task is not usable; construct one with NewOnce or
// NewRepeating.
//
// Setters never leave a Task half-updated: a rejected call returns an error,
// reports it, and keeps the previous state.
type Task struct {
	title    string
	active   bool
	repeated bool

	time     int
	start    int
	end      int
	interval int

	reporter Reporter
}

// Option configures a Task at construction.
type Option func(*Task)

// WithReporter routes rejection messages to r.
func WithReporter(r Reporter) Option {
	return func(t *Task) {
		t.reporter = r
	}
}

// NewOnce creates an inactive one-time task alerting at the given moment.
func NewOnce(title string, at int, opts ...Option) (*Task, error) {
	t := newTask(opts)
	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if err := t.SetTime(at); err != nil {
		return nil, err
	}
	return t, nil
}

// NewRepeating creates an inactive task alerting every interval seconds
// from start up to end.
func NewRepeating(title string, start, end, interval int, opts ...Option) (*Task, error) {
	t := newTask(opts)
	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if err := t.SetWindow(start, end, interval); err != nil {
		return nil, err
	}
	return t, nil
}

func newTask(opts []Option) *Task {
	t := &Task{reporter: discard}
	for _, opt := range opts {
		opt(t)
	}
	if t.reporter == nil {
		t.reporter = discard
	}
	return t
}

// SetReporter replaces the sink that receives rejection messages.
// A nil reporter discards them.
func (t *Task) SetReporter(r Reporter) {
	if r == nil {
		r = discard
	}
	t.reporter = r
}

// Title returns the task title.
func (t *Task) Title() string {
	return t.title
}

// SetTitle sets the title. Empty titles are rejected.
func (t *Task) SetTitle(title string) error {
	if len(title) == 0 {
		return t.reject(ErrEmptyTitle)
	}
	t.title = title
	return nil
}

// Active reports whether the task produces alerts.
func (t *Task) Active() bool {
	return t.active
}

// SetActive switches alerting on or off.
func (t *Task) SetActive(active bool) {
	t.active = active
}

// Repeated reports whether the task is in repeating mode.
func (t *Task) Repeated() bool {
	return t.repeated
}

// Time returns the alert time, or the window start for a repeating task.
func (t *Task) Time() int {
	if t.repeated {
		return t.start
	}
	return t.time
}

// SetTime switches the task to one-time mode at the given moment.
func (t *Task) SetTime(at int) error {
	if at < 0 {
		return t.reject(ErrNegativeTime)
	}
	t.time = at
	t.start, t.end, t.interval = 0, 0, 0
	t.repeated = false
	return nil
}

// StartTime returns the window start, or the alert time for a one-time task.
func (t *Task) StartTime() int {
	if t.repeated {
		return t.start
	}
	return t.time
}

// EndTime returns the window end, or the alert time for a one-time task.
func (t *Task) EndTime() int {
	if t.repeated {
		return t.end
	}
	return t.time
}

// RepeatInterval returns the repeat interval, or 0 for a one-time task.
func (t *Task) RepeatInterval() int {
	if t.repeated {
		return t.interval
	}
	return 0
}

// SetWindow switches the task to repeating mode. Constraints are checked in
// order: start >= 0, end > start, interval > 0.
func (t *Task) SetWindow(start, end, interval int) error {
	switch {
	case start < 0:
		return t.reject(ErrNegativeStart)
	case end <= start:
		return t.reject(ErrEndNotAfterStart)
	case interval <= 0:
		return t.reject(ErrNonPositiveInterval)
	}
	t.time = 0
	t.start, t.end, t.interval = start, end, interval
	t.repeated = true
	return nil
}

// NextTimeAfter returns the first alert moment after at, or NoTime.
//
// For a one-time task the alert time itself qualifies while at is before it.
// For a repeating task the first step past start is clipped to end when it
// would overshoot, while any later overshoot yields NoTime.
func (t *Task) NextTimeAfter(at int) int {
	if !t.active {
		return NoTime
	}
	if !t.repeated {
		if at < t.time {
			return t.time
		}
		return NoTime
	}

	if at >= t.end {
		return NoTime
	}
	if at < t.start {
		return t.start
	}
	span := t.end - t.start
	if t.interval > span {
		return t.end
	}
	// at < end, so the first step past at is the answer unless it overshoots.
	// Steps are counted, not accumulated, so start+steps*interval never
	// exceeds end and cannot overflow.
	steps := (at-t.start)/t.interval + 1
	if steps > span/t.interval {
		return NoTime
	}
	return t.start + steps*t.interval
}

// String renders the task the way the CLI shows it.
func (t *Task) String() string {
	switch {
	case !t.active:
		return fmt.Sprintf("Task \"%s\" is inactive", t.title)
	case t.repeated:
		return fmt.Sprintf("Task \"%s\" from %d to %d every %d seconds", t.title, t.start, t.end, t.interval)
	default:
		return fmt.Sprintf("Task \"%s\" at %d", t.title, t.time)
	}
}

// Equal reports whether both tasks hold the same title, state and times.
// The reporter is not part of a task's value.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.title == other.title &&
		t.active == other.active &&
		t.repeated == other.repeated &&
		t.time == other.time &&
		t.start == other.start &&
		t.end == other.end &&
		t.interval == other.interval
}

// Clone returns an independent copy sharing the same reporter.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

func (t *Task) reject(err error) error {
	t.reporter.Report(err.Error())
	return err
}
