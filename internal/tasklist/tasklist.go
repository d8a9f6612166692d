// Package tasklist defines the task list contract and its implementations.
package tasklist

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"remind/internal/task"
)

var (
	// ErrIndexOutOfRange is returned by Task for an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilTask is returned by Add for a nil task.
	ErrNilTask = errors.New("nil task")

	// ErrUnknownKind is returned by New for an unsupported list kind.
	ErrUnknownKind = errors.New("unknown list kind")
)

// TaskList is an ordered collection of tasks. Duplicates are allowed.
// Implementations are not safe for concurrent use.
type TaskList interface {
	// Add appends a task.
	Add(t *task.Task) error

	// Remove deletes every stored task equal to t and returns how many were removed.
	Remove(t *task.Task) int

	// Size returns the number of stored tasks.
	Size() int

	// Task returns the task at a zero-based index.
	Task(index int) (*task.Task, error)

	// ID identifies this list instance.
	ID() uuid.UUID

	// ListsCreated returns how many lists this process has constructed.
	ListsCreated() int
}

// listsCreated counts constructions across every implementation.
var listsCreated atomic.Int64

// NumberOfListsCreated returns how many lists this process has constructed.
// The count never decreases.
func NumberOfListsCreated() int {
	return int(listsCreated.Load())
}

// Base holds what every implementation shares: the element counter behind
// Size and the instance identity. Implementations embed it and must obtain
// it from newBase so the construction is counted.
type Base struct {
	id    uuid.UUID
	count int
}

func newBase() Base {
	listsCreated.Add(1)
	return Base{id: uuid.New()}
}

// Size returns the number of stored tasks.
func (b *Base) Size() int {
	return b.count
}

// ID identifies this list instance.
func (b *Base) ID() uuid.UUID {
	return b.id
}

// ListsCreated returns how many lists this process has constructed.
func (b *Base) ListsCreated() int {
	return NumberOfListsCreated()
}

func (b *Base) checkIndex(index int) error {
	if index < 0 || index >= b.count {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, b.count)
	}
	return nil
}

// Kinds accepted by New.
const (
	KindArray  = "array"
	KindLinked = "linked"
)

// New creates an empty list of the given kind. An empty kind selects an
// array list.
func New(kind string) (TaskList, error) {
	switch kind {
	case "", KindArray:
		return NewArray(), nil
	case KindLinked:
		return NewLinked(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// All returns the stored tasks in index order.
func All(l TaskList) []*task.Task {
	out := make([]*task.Task, 0, l.Size())
	for i := 0; i < l.Size(); i++ {
		t, err := l.Task(i)
		if err != nil {
			break
		}
		out = append(out, t)
	}
	return out
}

var (
	_ TaskList = (*ArrayTaskList)(nil)
	_ TaskList = (*LinkedTaskList)(nil)
)
