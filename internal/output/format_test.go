package output

import (
	"bytes"
	"testing"

	"remind/internal/schedule"
	"remind/internal/service"
	"remind/internal/task"
)

func TestFormatTask(t *testing.T) {
	tk, err := task.NewRepeating("Water\nplants", 10, 20, 5)
	if err != nil {
		t.Fatal(err)
	}
	tk.SetActive(true)

	var buf bytes.Buffer
	FormatTask(&buf, 3, tk)

	expected := "   3  Task \"Water plants\" from 10 to 20 every 5 seconds\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatAlert(t *testing.T) {
	tk, err := task.NewOnce("Call", 15)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	FormatAlert(&buf, schedule.Alert{At: 15, Index: 1, Task: tk})

	expected := "        15     2  Call\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatNext(t *testing.T) {
	a, _ := task.NewOnce("A", 5)
	b, _ := task.NewOnce("B", 5)

	var buf bytes.Buffer
	FormatNext(&buf, 5, []*task.Task{a, b})

	expected := "next alert at 5\n    A\n    B\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatListName(t *testing.T) {
	var buf bytes.Buffer
	FormatListName(&buf, service.List{Title: "My Tasks", IsDefault: true})
	FormatListName(&buf, service.List{Title: "  "})

	expected := "My Tasks [default]\n(untitled)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
