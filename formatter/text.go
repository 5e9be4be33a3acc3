package formatter

import (
	"bytes"
	"io"

	"github.com/mkoval/relaylog/core"
)

// TextFormatter renders records as a single human-readable line:
//
//	[NAME] : 25-03-14 09:30:00 -> message
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = DefaultTimestampLayout
	}
	return &TextFormatter{Config: cfg}
}

// Format renders a record as text, without a trailing newline.
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo renders a record and writes it, newline-terminated, directly
// to the writer.
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.WriteString(rec.Name)
	buf.WriteString("] : ")

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampLayout))

	buf.WriteString(" -> ")
	buf.WriteString(rec.Message)
}
