package logger

import "errors"

var (
	// ErrAlreadyInitialized is returned when Init or InitWithHandlers is
	// called on a runtime that is already initialized (or is concurrently
	// being initialized). The existing runtime is unaffected.
	ErrAlreadyInitialized = errors.New("relaylog: already initialized")

	// ErrNotInitialized is returned by Log and Logf before Init. The
	// message is not buffered; callers are free to ignore the error.
	ErrNotInitialized = errors.New("relaylog: not initialized")

	// ErrClosed is returned by Log and Logf after the runtime has been
	// closed. The message is dropped; callers are free to ignore the
	// error.
	ErrClosed = errors.New("relaylog: closed")
)
