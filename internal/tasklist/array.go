package tasklist

import "remind/internal/task"

const arrayInitialCap = 10

// ArrayTaskList stores tasks in a slice.
type ArrayTaskList struct {
	Base
	tasks []*task.Task
}

// NewArray creates an empty slice-backed list.
func NewArray() *ArrayTaskList {
	return &ArrayTaskList{
		Base:  newBase(),
		tasks: make([]*task.Task, 0, arrayInitialCap),
	}
}

// Add appends a task.
func (l *ArrayTaskList) Add(t *task.Task) error {
	if t == nil {
		return ErrNilTask
	}
	l.tasks = append(l.tasks, t)
	l.count++
	return nil
}

// Remove deletes every stored task equal to t, keeping the order of the rest.
func (l *ArrayTaskList) Remove(t *task.Task) int {
	if t == nil {
		return 0
	}
	kept := l.tasks[:0]
	for _, cur := range l.tasks {
		if !cur.Equal(t) {
			kept = append(kept, cur)
		}
	}
	removed := len(l.tasks) - len(kept)
	// Drop references held in the tail so removed tasks can be collected.
	clear(l.tasks[len(kept):])
	l.tasks = kept
	l.count -= removed
	return removed
}

// Task returns the task at a zero-based index.
func (l *ArrayTaskList) Task(index int) (*task.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return l.tasks[index], nil
}
