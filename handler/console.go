package handler

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/mkoval/relaylog/core"
	"github.com/mkoval/relaylog/formatter"
)

// ConsoleHandler writes rendered records to standard output (or any
// io.Writer), wrapping each line in the record's ANSI color escape and a
// reset escape.
type ConsoleHandler struct {
	writer    io.Writer
	formatter formatter.Formatter
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
}

// Handle renders the record and writes it in the record's color.
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	line, err := h.formatter.Format(rec)
	if err != nil {
		return err
	}

	if c := colorFor(rec.Color); c != nil {
		_, err = c.Fprintln(h.writer, string(line))
		return err
	}
	return h.writeRaw(rec.Color, line)
}

// writeRaw handles records whose color is empty or not a recognized ANSI
// code: the escape is passed through verbatim.
func (h *ConsoleHandler) writeRaw(escape string, line []byte) error {
	if escape == "" {
		line = append(line, '\n')
		_, err := h.writer.Write(line)
		return err
	}
	buf := make([]byte, 0, len(escape)+len(line)+5)
	buf = append(buf, escape...)
	buf = append(buf, line...)
	buf = append(buf, "\x1b[0m\n"...)
	_, err := h.writer.Write(buf)
	return err
}

// Flush flushes the underlying writer if it supports flushing.
func (h *ConsoleHandler) Flush() error {
	if f, ok := h.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// enabled constructs a color with output forced on. The escapes are part
// of the handler's output contract, so terminal detection must not strip
// them.
func enabled(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// ansiColors maps the standard and bright foreground ANSI escape codes to
// their color equivalents. Unknown codes fall back to raw passthrough.
var ansiColors = map[string]*color.Color{
	"\x1b[30m": enabled(color.FgBlack),
	"\x1b[31m": enabled(color.FgRed),
	"\x1b[32m": enabled(color.FgGreen),
	"\x1b[33m": enabled(color.FgYellow),
	"\x1b[34m": enabled(color.FgBlue),
	"\x1b[35m": enabled(color.FgMagenta),
	"\x1b[36m": enabled(color.FgCyan),
	"\x1b[37m": enabled(color.FgWhite),

	"\x1b[90m": enabled(color.FgHiBlack),
	"\x1b[91m": enabled(color.FgHiRed),
	"\x1b[92m": enabled(color.FgHiGreen),
	"\x1b[93m": enabled(color.FgHiYellow),
	"\x1b[94m": enabled(color.FgHiBlue),
	"\x1b[95m": enabled(color.FgHiMagenta),
	"\x1b[96m": enabled(color.FgHiCyan),
	"\x1b[97m": enabled(color.FgHiWhite),
}

func colorFor(code string) *color.Color {
	return ansiColors[code]
}
