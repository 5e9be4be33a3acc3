package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/mkoval/relaylog/core"
)

// Formatter defines the interface for log record formatters.
type Formatter interface {
	// Format renders a record into bytes, without a trailing newline.
	// The returned slice is owned by the caller.
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write a complete record line (including the line terminator) directly
// to a writer without an intermediate byte slice allocation. Handlers
// check for it at construction time and prefer it when available.
type WriterFormatter interface {
	// FormatTo renders a record and writes it, newline-terminated, to w.
	FormatTo(rec *core.Record, w io.Writer) error
}

// Config holds common formatter configuration.
type Config struct {
	// TimestampLayout is the time layout for rendering Record.Time
	// (empty for DefaultTimestampLayout).
	TimestampLayout string
}

// DefaultTimestampLayout renders timestamps as "YY-MM-DD HH:MM:SS".
const DefaultTimestampLayout = "06-01-02 15:04:05"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
