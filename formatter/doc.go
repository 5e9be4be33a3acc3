// Package formatter defines how log records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte without the
// line terminator (so sinks can wrap the rendered line, e.g. in ANSI color
// escapes, before writing it), and WriterFormatter, which writes a complete
// newline-terminated line directly to an io.Writer. Handlers check for
// WriterFormatter at construction time and prefer it when available,
// eliminating the intermediate byte slice allocation on the write path.
//
// The built-in TextFormatter implements both interfaces. It uses a pooled
// bytes.Buffer internally and time.AppendFormat for the timestamp to avoid
// per-call allocations. Buffers larger than 64 KiB are not returned to the
// pool to prevent a single large log line from permanently inflating
// memory usage.
package formatter
