package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"remind/internal/config"
	"remind/internal/exitcode"
	"remind/internal/schedule"
	"remind/internal/taskfile"
	"remind/internal/tasklist"
)

// loadTasks reads the configured task file into a list. Rejected entries
// are printed to errOut as warnings and skipped. On failure it prints the
// error and returns a non-zero exit code.
func loadTasks(cfg *config.Config, errOut io.Writer) (tasklist.TaskList, int) {
	log := cfg.Logger(errOut)
	path := cfg.TasksPath()

	file, err := taskfile.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(errOut, "error: task file not found: %s\n", path)
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return nil, exitcode.UserError
	}

	// Loaded tasks are never updated afterwards, so they need no reporter.
	list, err := file.Build(nil)
	if list == nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.UserError
	}
	for _, e := range unjoin(err) {
		fmt.Fprintf(errOut, "warning: %v\n", e)
	}

	log.Debug("loaded task file",
		"path", path,
		"list", list.ID(),
		"tasks", list.Size(),
		"lists_created", list.ListsCreated())
	return list, exitcode.Success
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// alertLimit returns the alert cap for a window query. Zero or less selects
// schedule.DefaultLimit.
func alertLimit(n int) int {
	if n <= 0 {
		return schedule.DefaultLimit
	}
	return n
}

// parseMoment parses a moment given on the command line.
func parseMoment(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time: %s", s)
	}
	return n, nil
}
