// Package handler provides the Handler contract implemented by log sinks
// and the built-in sinks.
//
// Handlers receive records from a single dispatcher goroutine, one at a
// time, so they need no internal synchronization. The records a handler
// sees have already passed the process-wide severity gate; a handler that
// wants a stricter cut (say, errors only) inspects Record.Level inside its
// own Handle and ignores the rest.
//
// Built-in handlers:
//
//   - ConsoleHandler renders each record as "[NAME] : ts -> message"
//     wrapped in the record's ANSI color escape, written to stdout by
//     default.
//   - FileHandler appends uncolored lines to a file through a buffered
//     writer, with optional size-based rotation and numbered backups.
//
// A handler that also implements io.Closer is closed by the dispatcher
// after the shutdown Flush, giving file-like sinks a deterministic
// teardown point.
package handler
