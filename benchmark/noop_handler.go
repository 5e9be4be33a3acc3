package benchmark

import (
	"time"

	"github.com/mkoval/relaylog/core"
	"github.com/mkoval/relaylog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) error {
	_ = len(rec.Message)
	return nil
}

func (h *noopHandler) Flush() error {
	return nil
}

// sampleBenchRecord builds a fixed record for formatter benchmarks.
func sampleBenchRecord() *core.Record {
	return &core.Record{
		Level:   10,
		Name:    "BENCH",
		Color:   "\x1b[32m",
		Message: "The quick brown fox jumps over the lazy dog",
		Time:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}
