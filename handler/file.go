package handler

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mkoval/relaylog/core"
	"github.com/mkoval/relaylog/formatter"
)

// sizeTrackingWriter wraps an io.Writer and tracks total bytes written
type sizeTrackingWriter struct {
	w       io.Writer
	written int64
}

func (s *sizeTrackingWriter) Write(p []byte) (n int, err error) {
	n, err = s.w.Write(p)
	s.written += int64(n)
	return
}

func (s *sizeTrackingWriter) reset(w io.Writer) {
	s.w = w
	s.written = 0
}

// FileHandler writes plain (uncolored) rendered records to a file through
// a buffered writer, rotating the file by size with numbered backups.
//
// Like every handler it is driven solely by the dispatcher goroutine, so
// it carries no mutex: the single-consumer pipeline is the concurrency
// mechanism.
type FileHandler struct {
	path            string
	file            *os.File
	sizeWriter      *sizeTrackingWriter
	bufWriter       *bufio.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	maxSize         int64
	maxBackups      int
	baseSize        int64
}

// FileConfig holds configuration for the file handler
type FileConfig struct {
	// Path of the log file (required)
	Path string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSize is the size in bytes at which the file is rotated.
	// Zero disables rotation.
	MaxSize int64
	// MaxBackups is how many rotated files to keep (default: 3).
	MaxBackups int
}

// NewFileHandler creates a file handler, opening (or creating) the file
// in append mode.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Path == "" {
		return nil, errors.New("file handler: empty path")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "file handler: open")
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "file handler: stat")
	}

	sw := &sizeTrackingWriter{w: f}
	h := &FileHandler{
		path:       cfg.Path,
		file:       f,
		sizeWriter: sw,
		bufWriter:  bufio.NewWriter(sw),
		formatter:  cfg.Formatter,
		maxSize:    cfg.MaxSize,
		maxBackups: cfg.MaxBackups,
		baseSize:   info.Size(),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h, nil
}

// currentSize is the logical size of the live file: what was there at
// open, what has been flushed through, and what still sits in the buffer.
func (h *FileHandler) currentSize() int64 {
	return h.baseSize + h.sizeWriter.written + int64(h.bufWriter.Buffered())
}

// Handle renders the record and appends it to the file.
func (h *FileHandler) Handle(rec *core.Record) error {
	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(rec, h.bufWriter)
	}

	line, err := h.formatter.Format(rec)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = h.bufWriter.Write(line)
	return err
}

// Flush writes buffered data through to the OS and syncs the file.
func (h *FileHandler) Flush() error {
	if err := h.bufWriter.Flush(); err != nil {
		return errors.Wrap(err, "file handler: flush")
	}
	return h.file.Sync()
}

// Close flushes and closes the file. The dispatcher calls it after the
// final Flush when the pipeline shuts down.
func (h *FileHandler) Close() error {
	if err := h.bufWriter.Flush(); err != nil {
		h.file.Close()
		return err
	}
	return h.file.Close()
}

// rotateIfNeeded rotates when the current file has reached MaxSize.
func (h *FileHandler) rotateIfNeeded() error {
	if h.maxSize <= 0 || h.currentSize() < h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate shifts numbered backups up (path.1 -> path.2, ...), moves the
// live file to path.1, and reopens a fresh file. The oldest backup beyond
// MaxBackups falls off the end of the shift.
func (h *FileHandler) rotate() error {
	if err := h.bufWriter.Flush(); err != nil {
		return errors.Wrap(err, "file handler: rotate flush")
	}
	if err := h.file.Close(); err != nil {
		return errors.Wrap(err, "file handler: rotate close")
	}

	for i := h.maxBackups - 1; i >= 1; i-- {
		old := fmt.Sprintf("%s.%d", h.path, i)
		if _, err := os.Stat(old); err != nil {
			continue
		}
		if err := os.Rename(old, fmt.Sprintf("%s.%d", h.path, i+1)); err != nil {
			return errors.Wrap(err, "file handler: shift backup")
		}
	}
	if err := os.Rename(h.path, h.path+".1"); err != nil {
		return errors.Wrap(err, "file handler: rotate rename")
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "file handler: rotate reopen")
	}
	h.file = f
	h.sizeWriter.reset(f)
	h.bufWriter.Reset(h.sizeWriter)
	h.baseSize = 0
	return nil
}
