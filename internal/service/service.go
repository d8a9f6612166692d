// Package service defines the backend-agnostic interface for exporting alerts.
package service

import "context"

// Service is the remote task backend that alerts are exported to.
// Commands never import the Google SDK directly.
type Service interface {
	// DefaultList returns the user's default list.
	DefaultList(ctx context.Context) (List, error)

	// ListLists returns all lists in API order.
	ListLists(ctx context.Context) ([]List, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns an error if not found or ambiguous.
	ResolveList(ctx context.Context, name string) (List, error)

	// CreateTask creates a task in the given list.
	CreateTask(ctx context.Context, listID string, task Task) error
}
