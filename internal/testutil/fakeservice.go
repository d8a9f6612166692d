// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"remind/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when multiple matches are found.
var ErrAmbiguous = errors.New("ambiguous")

// FakeService is an in-memory implementation of service.Service for testing.
// It records every created task per list.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.List
	tasks map[string][]service.Task // listID -> created tasks

	// Error injection
	DefaultListErr error
	ListListsErr   error
	ResolveListErr error
	CreateTaskErr  error

	// FailAfter makes CreateTask fail with CreateTaskErr only once this many
	// tasks have been created. Zero fails every call.
	FailAfter int
}

// NewFakeService creates a new FakeService with a default list.
func NewFakeService() *FakeService {
	fs := &FakeService{
		tasks: make(map[string][]service.Task),
	}
	fs.lists = []service.List{
		{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
	}
	fs.tasks[DefaultListID] = nil
	return fs
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.List{ID: id, Title: title})
	if _, ok := f.tasks[id]; !ok {
		f.tasks[id] = nil
	}
}

// Created returns a copy of the tasks created in a list.
func (f *FakeService) Created(listID string) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks[listID]))
	copy(result, f.tasks[listID])
	return result
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.List, error) {
	if f.DefaultListErr != nil {
		return service.List{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.List{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.List, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.List, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.List, error) {
	if f.ResolveListErr != nil {
		return service.List{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	nameLower := strings.ToLower(strings.TrimSpace(name))

	var matches []service.List
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.List{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return service.List{}, ErrAmbiguous
	}
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID string, task service.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateTaskErr != nil && f.created() >= f.FailAfter {
		return f.CreateTaskErr
	}
	if _, ok := f.tasks[listID]; !ok {
		return ErrNotFound
	}
	f.tasks[listID] = append(f.tasks[listID], task)
	return nil
}

func (f *FakeService) created() int {
	n := 0
	for _, tasks := range f.tasks {
		n += len(tasks)
	}
	return n
}
