package core

import "time"

// Record is a single log event as delivered to handlers. It is built by
// the producer after the severity gate has approved the level, so handlers
// never need to re-check it against the global threshold (they are free to
// apply stricter filters of their own).
//
// A Record is a plain value: it crosses the delivery queue by copy and is
// never mutated after construction. Handlers must treat all fields as
// read-only.
type Record struct {
	// Level is the severity on the caller-defined scale. Larger means
	// more severe; negative values are valid.
	Level int

	// Name is the short static heading of the log kind, e.g. "EVENT".
	Name string

	// Color is the ANSI escape sequence hinting how console-style sinks
	// should render the record, e.g. "\x1b[32m". Sinks that do not render
	// color ignore it. May be empty.
	Color string

	// Message is the rendered message text.
	Message string

	// Time is the instant the record was constructed on the producer
	// side. It is authoritative for when the event occurred; handlers run
	// later, on the dispatcher goroutine.
	Time time.Time
}

// Descriptor supplies the static identity of a log kind: its severity
// level, short name, and color hint. Kind values passed to the logging
// entry points satisfy this interface.
type Descriptor interface {
	Level() int
	Name() string
	Color() string
}
