package task

import (
	"fmt"
	"io"
)

// Reporter receives human-readable rejection messages.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(msg string)

// Report calls f(msg).
func (f ReporterFunc) Report(msg string) { f(msg) }

// WriterReporter writes each message to w on its own line.
func WriterReporter(w io.Writer) Reporter {
	return ReporterFunc(func(msg string) {
		fmt.Fprintln(w, msg)
	})
}

var discard Reporter = ReporterFunc(func(string) {})
