// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"remind/internal/schedule"
	"remind/internal/service"
	"remind/internal/task"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {TASK}\n" where TASK is the task's String form.
func FormatTask(w io.Writer, num int, t *task.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, oneLine(t.String()))
}

// FormatAlert formats one schedule line.
// Format: "{AT:>10}  {N:>4}  {TITLE}\n" where N is the 1-based task number.
func FormatAlert(w io.Writer, a schedule.Alert) {
	fmt.Fprintf(w, "%10d  %4d  %s\n", a.At, a.Index+1, oneLine(a.Task.Title()))
}

// FormatNext formats the answer to a next-alert query: a header line with
// the moment, then one indented line per task firing then.
func FormatNext(w io.Writer, at int, due []*task.Task) {
	fmt.Fprintf(w, "next alert at %d\n", at)
	for _, t := range due {
		fmt.Fprintf(w, "    %s\n", oneLine(t.Title()))
	}
}

// FormatListName formats a remote list name for the lists command.
func FormatListName(w io.Writer, list service.List) {
	title := normalizeListTitle(list.Title)
	if list.IsDefault {
		title += " [default]"
	}
	fmt.Fprintln(w, title)
}

// oneLine replaces newlines so a title never breaks the line layout.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
