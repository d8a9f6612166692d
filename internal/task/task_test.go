package task_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"remind/internal/task"
)

func mustOnce(t *testing.T, title string, at int) *task.Task {
	t.Helper()
	tk, err := task.NewOnce(title, at)
	if err != nil {
		t.Fatalf("NewOnce(%q, %d): %v", title, at, err)
	}
	return tk
}

func mustRepeating(t *testing.T, title string, start, end, interval int) *task.Task {
	t.Helper()
	tk, err := task.NewRepeating(title, start, end, interval)
	if err != nil {
		t.Fatalf("NewRepeating(%q, %d, %d, %d): %v", title, start, end, interval, err)
	}
	return tk
}

func TestNewOnce_StartsInactive(t *testing.T) {
	tk := mustOnce(t, "Call mom", 10)

	if tk.Active() {
		t.Error("expected new task to be inactive")
	}
	if tk.Repeated() {
		t.Error("expected one-time task")
	}
	if tk.Title() != "Call mom" {
		t.Errorf("expected title %q, got %q", "Call mom", tk.Title())
	}
	if tk.Time() != 10 {
		t.Errorf("expected time 10, got %d", tk.Time())
	}
}

func TestNewOnce_Rejects(t *testing.T) {
	if _, err := task.NewOnce("", 10); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := task.NewOnce("x", -1); !errors.Is(err, task.ErrNegativeTime) {
		t.Errorf("expected ErrNegativeTime, got %v", err)
	}
}

func TestNewRepeating_Rejects(t *testing.T) {
	tests := []struct {
		name                 string
		start, end, interval int
		want                 error
	}{
		{"negative start", -1, 10, 1, task.ErrNegativeStart},
		{"end equals start", 5, 5, 1, task.ErrEndNotAfterStart},
		{"end before start", 5, 4, 1, task.ErrEndNotAfterStart},
		{"zero interval", 0, 10, 0, task.ErrNonPositiveInterval},
		{"start checked first", -1, -5, 0, task.ErrNegativeStart},
		{"end checked before interval", 3, 1, -2, task.ErrEndNotAfterStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := task.NewRepeating("x", tt.start, tt.end, tt.interval)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSetTitle(t *testing.T) {
	tk := mustOnce(t, "first", 0)

	if err := tk.SetTitle("second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Title() != "second" {
		t.Errorf("expected title %q, got %q", "second", tk.Title())
	}

	if err := tk.SetTitle(""); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if tk.Title() != "second" {
		t.Errorf("rejected title must keep %q, got %q", "second", tk.Title())
	}
}

func TestSetTime_SwitchesToOneTime(t *testing.T) {
	tk := mustRepeating(t, "x", 10, 20, 5)

	if err := tk.SetTime(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Repeated() {
		t.Error("expected one-time mode")
	}
	if tk.Time() != 7 {
		t.Errorf("expected time 7, got %d", tk.Time())
	}
	if tk.StartTime() != 7 || tk.EndTime() != 7 {
		t.Errorf("expected start/end 7/7, got %d/%d", tk.StartTime(), tk.EndTime())
	}
	if tk.RepeatInterval() != 0 {
		t.Errorf("expected interval 0, got %d", tk.RepeatInterval())
	}
}

func TestSetTime_RejectedKeepsState(t *testing.T) {
	tk := mustRepeating(t, "x", 10, 20, 5)

	if err := tk.SetTime(-3); !errors.Is(err, task.ErrNegativeTime) {
		t.Fatalf("expected ErrNegativeTime, got %v", err)
	}
	if !tk.Repeated() || tk.StartTime() != 10 || tk.EndTime() != 20 || tk.RepeatInterval() != 5 {
		t.Errorf("state changed after rejection: %v", tk)
	}
}

func TestSetWindow_SwitchesToRepeating(t *testing.T) {
	tk := mustOnce(t, "x", 42)

	if err := tk.SetWindow(1, 100, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tk.Repeated() {
		t.Error("expected repeating mode")
	}
	if tk.Time() != 1 {
		t.Errorf("expected Time() to return start 1, got %d", tk.Time())
	}
	if tk.StartTime() != 1 || tk.EndTime() != 100 || tk.RepeatInterval() != 9 {
		t.Errorf("expected 1/100/9, got %d/%d/%d", tk.StartTime(), tk.EndTime(), tk.RepeatInterval())
	}

	// Going back to one-time must not resurrect the old alert time.
	if err := tk.SetTime(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Time() != 3 {
		t.Errorf("expected time 3, got %d", tk.Time())
	}
}

func TestSetWindow_RejectedKeepsState(t *testing.T) {
	tk := mustOnce(t, "x", 42)

	if err := tk.SetWindow(10, 20, 0); !errors.Is(err, task.ErrNonPositiveInterval) {
		t.Fatalf("expected ErrNonPositiveInterval, got %v", err)
	}
	if tk.Repeated() || tk.Time() != 42 {
		t.Errorf("state changed after rejection: repeated=%v time=%d", tk.Repeated(), tk.Time())
	}
}

func TestReporter_ReceivesRejections(t *testing.T) {
	var buf bytes.Buffer
	tk, err := task.NewOnce("x", 1, task.WithReporter(task.WriterReporter(&buf)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tk.SetTitle("")
	tk.SetTime(-1)
	tk.SetWindow(0, 10, -1)

	expected := "Task name must consist of at least one character\n" +
		"Task notification time must be >= zero\n" +
		"The time interval after which the task notification must be repeated should be greater than zero\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestReporter_NilDiscards(t *testing.T) {
	tk := mustOnce(t, "x", 1)
	tk.SetReporter(nil)

	if err := tk.SetTitle(""); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestString(t *testing.T) {
	once := mustOnce(t, "Dentist", 10)
	rep := mustRepeating(t, "Water", 10, 20, 5)

	if got := once.String(); got != `Task "Dentist" is inactive` {
		t.Errorf("unexpected inactive string %q", got)
	}
	if got := rep.String(); got != `Task "Water" is inactive` {
		t.Errorf("unexpected inactive string %q", got)
	}

	once.SetActive(true)
	rep.SetActive(true)

	if got := once.String(); got != `Task "Dentist" at 10` {
		t.Errorf("unexpected one-time string %q", got)
	}
	if got := rep.String(); got != `Task "Water" from 10 to 20 every 5 seconds` {
		t.Errorf("unexpected repeating string %q", got)
	}
}

func TestNextTimeAfter_Inactive(t *testing.T) {
	once := mustOnce(t, "x", 10)
	rep := mustRepeating(t, "y", 10, 20, 5)

	for _, at := range []int{-5, 0, 9, 10, 15, 100} {
		if got := once.NextTimeAfter(at); got != task.NoTime {
			t.Errorf("inactive one-time: NextTimeAfter(%d) = %d, want -1", at, got)
		}
		if got := rep.NextTimeAfter(at); got != task.NoTime {
			t.Errorf("inactive repeating: NextTimeAfter(%d) = %d, want -1", at, got)
		}
	}
}

func TestNextTimeAfter_OneTime(t *testing.T) {
	tk := mustOnce(t, "x", 10)
	tk.SetActive(true)

	tests := []struct{ at, want int }{
		{5, 10},
		{9, 10},
		{10, task.NoTime},
		{15, task.NoTime},
	}
	for _, tt := range tests {
		if got := tk.NextTimeAfter(tt.at); got != tt.want {
			t.Errorf("NextTimeAfter(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestNextTimeAfter_Repeating(t *testing.T) {
	tk := mustRepeating(t, "x", 10, 20, 5)
	tk.SetActive(true)

	tests := []struct{ at, want int }{
		{0, 10},
		{9, 10},
		{10, 15},
		{14, 15},
		{15, 20},
		{19, 20},
		{20, task.NoTime},
		{25, task.NoTime},
	}
	for _, tt := range tests {
		if got := tk.NextTimeAfter(tt.at); got != tt.want {
			t.Errorf("NextTimeAfter(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestNextTimeAfter_FirstStepClippedToEnd(t *testing.T) {
	tk := mustRepeating(t, "x", 10, 12, 5)
	tk.SetActive(true)

	tests := []struct{ at, want int }{
		{5, 10},
		{10, 12},
		{11, 12},
		{12, task.NoTime},
	}
	for _, tt := range tests {
		if got := tk.NextTimeAfter(tt.at); got != tt.want {
			t.Errorf("NextTimeAfter(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

// A later step that overshoots end is not clipped, unlike the first one.
func TestNextTimeAfter_LaterOvershootIsNotClipped(t *testing.T) {
	tk := mustRepeating(t, "x", 0, 12, 5)
	tk.SetActive(true)

	tests := []struct{ at, want int }{
		{0, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, task.NoTime},
		{11, task.NoTime},
	}
	for _, tt := range tests {
		if got := tk.NextTimeAfter(tt.at); got != tt.want {
			t.Errorf("NextTimeAfter(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestNextTimeAfter_HugeIntervalTerminates(t *testing.T) {
	tk := mustRepeating(t, "x", 0, math.MaxInt, 1<<62)
	tk.SetActive(true)

	tests := []struct{ at, want int }{
		{0, 1 << 62},
		{1 << 62, task.NoTime},
		{math.MaxInt - 1, task.NoTime},
	}
	for _, tt := range tests {
		if got := tk.NextTimeAfter(tt.at); got != tt.want {
			t.Errorf("NextTimeAfter(%d) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestNextTimeAfter_StepLandsOnEnd(t *testing.T) {
	tk := mustRepeating(t, "x", 3, math.MaxInt, math.MaxInt-3)
	tk.SetActive(true)

	if got := tk.NextTimeAfter(3); got != math.MaxInt {
		t.Errorf("NextTimeAfter(3) = %d, want %d", got, math.MaxInt)
	}
	if got := tk.NextTimeAfter(math.MaxInt - 1); got != math.MaxInt {
		t.Errorf("NextTimeAfter(MaxInt-1) = %d, want %d", got, math.MaxInt)
	}
}

func TestEqual(t *testing.T) {
	a := mustOnce(t, "x", 10)
	b := mustOnce(t, "x", 10)
	b.SetReporter(task.ReporterFunc(func(string) {}))

	if !a.Equal(b) {
		t.Error("expected equal tasks")
	}

	b.SetActive(true)
	if a.Equal(b) {
		t.Error("expected activation to break equality")
	}

	c := mustRepeating(t, "x", 10, 20, 5)
	c.SetTime(10)
	if !a.Equal(c) {
		t.Error("expected tasks equal after switching to the same one-time state")
	}

	if a.Equal(nil) {
		t.Error("expected task not equal to nil")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	a := mustOnce(t, "x", 10)
	b := a.Clone()

	b.SetTitle("y")
	b.SetActive(true)

	if a.Title() != "x" || a.Active() {
		t.Errorf("clone mutation leaked into original: %v", a)
	}
}
