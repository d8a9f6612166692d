// Package service defines the backend-agnostic interface for exporting alerts.
package service

import "time"

// Task is a remote task created for one alert.
type Task struct {
	Title string
	Notes string
	Due   time.Time
}

// List is a remote task list.
type List struct {
	ID        string
	Title     string
	IsDefault bool
}
