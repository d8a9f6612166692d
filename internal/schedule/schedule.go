// Package schedule answers alert queries across a whole task list.
package schedule

import (
	"sort"

	"remind/internal/task"
	"remind/internal/tasklist"
)

// Alert is one alert moment of one task.
type Alert struct {
	At    int
	Index int // position of the task in the list
	Task  *task.Task
}

// DefaultLimit caps how many alerts the CLI collects from one window.
const DefaultLimit = 1000

// Upcoming returns the first limit alerts in (after, until], ordered by
// moment and then by list position, and whether more alerts exist in the
// window. A limit <= 0 collects every alert.
func Upcoming(l tasklist.TaskList, after, until, limit int) ([]Alert, bool) {
	var alerts []Alert
	for i, t := range tasklist.All(l) {
		// The first limit alerts overall hold at most limit from each task, so
		// one extra per task is enough to tell whether the window was cut.
		n := 0
		for at := t.NextTimeAfter(after); at != task.NoTime && at <= until; at = t.NextTimeAfter(at) {
			if limit > 0 && n > limit {
				break
			}
			alerts = append(alerts, Alert{At: at, Index: i, Task: t})
			n++
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].At != alerts[j].At {
			return alerts[i].At < alerts[j].At
		}
		return alerts[i].Index < alerts[j].Index
	})
	if limit > 0 && len(alerts) > limit {
		return alerts[:limit], true
	}
	return alerts, false
}

// Next returns the earliest alert moment after the given one and the tasks
// that fire then, in list order. It returns task.NoTime and nil when no
// task alerts again.
func Next(l tasklist.TaskList, after int) (int, []*task.Task) {
	next := task.NoTime
	var due []*task.Task
	for _, t := range tasklist.All(l) {
		at := t.NextTimeAfter(after)
		switch {
		case at == task.NoTime:
		case next == task.NoTime || at < next:
			next = at
			due = []*task.Task{t}
		case at == next:
			due = append(due, t)
		}
	}
	return next, due
}
