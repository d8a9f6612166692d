// Package taskfile reads task definitions from YAML.
package taskfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"remind/internal/task"
	"remind/internal/tasklist"
)

// ErrAmbiguousMode is returned for an entry that sets both a one-time alert
// and a repeating window.
var ErrAmbiguousMode = errors.New("both 'at' and a repeating window are set")

// File is a decoded task file.
type File struct {
	// List selects the list implementation: "array" (default) or "linked".
	List  string  `yaml:"list"`
	Tasks []Entry `yaml:"tasks"`
}

// Entry is one task definition. Set At for a one-time task, or Start, End
// and Every for a repeating one.
type Entry struct {
	Title  string `yaml:"title"`
	Active bool   `yaml:"active"`
	At     *int   `yaml:"at,omitempty"`
	Start  *int   `yaml:"start,omitempty"`
	End    *int   `yaml:"end,omitempty"`
	Every  *int   `yaml:"every,omitempty"`
}

// Load reads and decodes the task file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode parses a task file. An empty document yields an empty File.
func Decode(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid task file: %w", err)
	}
	return &file, nil
}

// Build constructs the list named by the file and fills it with every valid
// entry. Each task reports later rejections to rep. Invalid entries are
// skipped; their errors are returned joined, alongside the list.
func (f *File) Build(rep task.Reporter) (tasklist.TaskList, error) {
	list, err := tasklist.New(f.List)
	if err != nil {
		return nil, err
	}

	var errs []error
	for i, e := range f.Tasks {
		t, err := e.Task(rep)
		if err != nil {
			errs = append(errs, fmt.Errorf("task %d (%q): %w", i+1, e.Title, err))
			continue
		}
		if err := list.Add(t); err != nil {
			errs = append(errs, fmt.Errorf("task %d (%q): %w", i+1, e.Title, err))
		}
	}
	return list, errors.Join(errs...)
}

// Task constructs the task an entry describes. Construction errors are
// returned, not reported; rep only sees rejections from later updates.
func (e Entry) Task(rep task.Reporter) (*task.Task, error) {
	var (
		t   *task.Task
		err error
	)
	if e.repeating() {
		if e.At != nil {
			return nil, ErrAmbiguousMode
		}
		t, err = task.NewRepeating(e.Title, deref(e.Start), deref(e.End), deref(e.Every))
	} else {
		t, err = task.NewOnce(e.Title, deref(e.At))
	}
	if err != nil {
		return nil, err
	}
	t.SetReporter(rep)
	t.SetActive(e.Active)
	return t, nil
}

func (e Entry) repeating() bool {
	return e.Start != nil || e.End != nil || e.Every != nil
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
