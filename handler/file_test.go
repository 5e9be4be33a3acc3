package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mkoval/relaylog/core"
)

func fileRecord(msg string) *core.Record {
	return &core.Record{
		Level:   10,
		Name:    "EVENT",
		Message: msg,
		Time:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestFileHandler_WritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := NewFileHandler(FileConfig{Path: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	defer h.Close()

	h.Handle(fileRecord("first"))
	h.Handle(fileRecord("second"))
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "[EVENT] : 25-03-14 09:30:00 -> first") {
		t.Errorf("file content %q missing first line", out)
	}
	if !strings.Contains(out, "-> second") {
		t.Errorf("file content %q missing second line", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("file content %q contains ANSI escapes", out)
	}
}

func TestFileHandler_BuffersUntilFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := NewFileHandler(FileConfig{Path: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	defer h.Close()

	h.Handle(fileRecord("buffered"))

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Fatal("line hit the file before Flush")
	}
	h.Flush()
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "buffered") {
		t.Errorf("file content %q missing line after Flush", string(data))
	}
}

func TestFileHandler_RotatesBySize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := NewFileHandler(FileConfig{Path: path, MaxSize: 256, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	defer h.Close()

	for i := 0; i < 50; i++ {
		if err := h.Handle(fileRecord(fmt.Sprintf("line %02d padding padding padding", i))); err != nil {
			t.Fatalf("Handle(%d) error = %v", i, err)
		}
	}
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("no first backup after rotation: %v", err)
	}
	matches, _ := filepath.Glob(path + ".*")
	if len(matches) > 2 {
		t.Errorf("found %d backups %v, want at most MaxBackups=2", len(matches), matches)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() >= 256+128 {
		t.Errorf("live file size %d well past rotation threshold", info.Size())
	}
}

func TestFileHandler_ResumesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("preexisting\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	h, err := NewFileHandler(FileConfig{Path: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	h.Handle(fileRecord("appended"))
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	out := string(data)
	if !strings.HasPrefix(out, "preexisting\n") {
		t.Errorf("existing content lost: %q", out)
	}
	if !strings.Contains(out, "appended") {
		t.Errorf("file content %q missing appended line", out)
	}
}

func TestFileHandler_EmptyPath(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Error("NewFileHandler() with empty path succeeded")
	}
}
