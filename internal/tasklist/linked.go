package tasklist

import "remind/internal/task"

type node struct {
	task *task.Task
	next *node
}

// LinkedTaskList stores tasks in a singly linked chain.
type LinkedTaskList struct {
	Base
	head *node
	tail *node
}

// NewLinked creates an empty linked list.
func NewLinked() *LinkedTaskList {
	return &LinkedTaskList{Base: newBase()}
}

// Add appends a task.
func (l *LinkedTaskList) Add(t *task.Task) error {
	if t == nil {
		return ErrNilTask
	}
	n := &node{task: t}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
	return nil
}

// Remove unlinks every stored task equal to t.
func (l *LinkedTaskList) Remove(t *task.Task) int {
	if t == nil {
		return 0
	}
	removed := 0
	var prev *node
	for cur := l.head; cur != nil; cur = cur.next {
		if !cur.task.Equal(t) {
			prev = cur
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		if cur == l.tail {
			l.tail = prev
		}
		removed++
	}
	l.count -= removed
	return removed
}

// Task returns the task at a zero-based index.
func (l *LinkedTaskList) Task(index int) (*task.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}
	return cur.task, nil
}
