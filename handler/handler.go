package handler

import "github.com/mkoval/relaylog/core"

// Handler defines the interface for log sinks.
//
// Both methods are only ever called from the single dispatcher goroutine,
// one call at a time, so implementations need no internal locking. They
// must not assume they run on the goroutine that produced the record;
// Record.Time, not call timing, says when the event occurred.
type Handler interface {
	// Handle processes one delivered record.
	Handle(rec *core.Record) error

	// Flush writes out any buffered state. It is called once, after all
	// delivered records, when the pipeline shuts down.
	Flush() error
}

// HandlerFunc adapts a plain function to the Handler interface with a
// no-op Flush.
type HandlerFunc func(rec *core.Record) error

// Handle calls f(rec).
func (f HandlerFunc) Handle(rec *core.Record) error { return f(rec) }

// Flush is a no-op.
func (f HandlerFunc) Flush() error { return nil }
