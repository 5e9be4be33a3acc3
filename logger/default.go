package logger

import (
	"github.com/mkoval/relaylog/core"
	"github.com/mkoval/relaylog/handler"
)

// std is the process-wide runtime behind the package-level functions.
// It is created up front (an uninitialized Runtime is two words) and
// initialized at most once by Init or InitWithHandlers.
var std = New()

// Init initializes the process-wide runtime with only the built-in
// console handler. See Runtime.Init.
func Init(minLevel int) error {
	return std.Init(minLevel)
}

// InitWithHandlers initializes the process-wide runtime with the console
// handler plus the given sinks, in order. See Runtime.InitWithHandlers.
func InitWithHandlers(extra []handler.Handler, minLevel int) error {
	return std.InitWithHandlers(extra, minLevel)
}

// IsActive reports whether the given level passes the process-wide
// severity gate. False before Init.
func IsActive(level int) bool {
	return std.IsActive(level)
}

// Log submits a message under the given descriptor via the process-wide
// runtime. See Runtime.Log.
func Log(d core.Descriptor, msg string) error {
	return std.Log(d, msg)
}

// Logf is Log with fmt-style formatting; the arguments are not rendered
// unless the gate passes. See Runtime.Logf.
func Logf(d core.Descriptor, format string, args ...interface{}) error {
	return std.Logf(d, format, args...)
}
