package logger

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/mkoval/relaylog/core"
	"github.com/mkoval/relaylog/handler"
)

// Runtime states. The only forward path is uninitialized -> initializing
// -> ready; closing is reached from ready via Close.
const (
	stateUninitialized int32 = iota
	stateInitializing
	stateReady
)

// Runtime binds the severity threshold, the producer side of the delivery
// queue, and the single dispatcher goroutine. The package-level functions
// use one process-wide Runtime; tests and embedding applications can
// create independent ones with New.
//
// A Runtime is inert until Init or InitWithHandlers succeeds: the gate
// reports inactive and Log is a no-op. Initialization happens at most
// once per Runtime.
type Runtime struct {
	state         atomic.Int32
	minLevel      int
	q             *queue
	handlers      []handler.Handler
	done          chan struct{}
	consoleWriter io.Writer
	faultWriter   io.Writer
}

// Option configures a Runtime before initialization.
type Option func(*Runtime)

// WithConsoleWriter redirects the built-in console handler's output away
// from os.Stdout. Benchmarks and tests point it at a buffer or io.Discard.
func WithConsoleWriter(w io.Writer) Option {
	return func(r *Runtime) { r.consoleWriter = w }
}

// New creates an uninitialized Runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init initializes the runtime with the built-in console handler as the
// only sink and minLevel as the severity threshold. It spawns the
// dispatcher and returns immediately; it does not wait for anything to be
// consumed.
//
// A second initialization attempt, from any goroutine, returns
// ErrAlreadyInitialized and leaves the existing runtime untouched.
func (r *Runtime) Init(minLevel int) error {
	return r.InitWithHandlers(nil, minLevel)
}

// InitWithHandlers is Init with additional sinks. The built-in console
// handler is always installed first; extra handlers follow in the order
// given, and the dispatcher delivers every record to all of them in that
// order. The runtime takes ownership of the handlers: they are driven
// only by the dispatcher from here on, flushed at shutdown, and closed if
// they implement io.Closer.
func (r *Runtime) InitWithHandlers(extra []handler.Handler, minLevel int) error {
	if !r.state.CompareAndSwap(stateUninitialized, stateInitializing) {
		return ErrAlreadyInitialized
	}

	hs := make([]handler.Handler, 0, len(extra)+1)
	hs = append(hs, handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: r.consoleWriter,
	}))
	hs = append(hs, extra...)

	r.handlers = hs
	r.minLevel = minLevel
	r.q = newQueue()
	r.done = make(chan struct{})

	go r.dispatch()

	r.state.Store(stateReady)
	return nil
}

// IsActive reports whether a record at the given level would pass the
// severity gate: level >= threshold. It is false before initialization.
// Callers use it to skip building expensive messages for disabled levels;
// Logf does the same check internally before formatting.
func (r *Runtime) IsActive(level int) bool {
	return r.state.Load() == stateReady && level >= r.minLevel
}

// Log submits one message under the given descriptor. Below-threshold
// levels return nil without allocating or touching the queue. The send
// never blocks: the queue is unbounded, so a slow sink grows memory
// rather than stalling producers.
//
// The returned error is informational only - ErrNotInitialized before
// Init, ErrClosed after Close, both meaning the message was dropped.
// Nothing here can take the process down.
func (r *Runtime) Log(d core.Descriptor, msg string) error {
	if r.state.Load() != stateReady {
		return ErrNotInitialized
	}
	level := d.Level()
	if level < r.minLevel {
		return nil
	}
	return r.q.send(core.Record{
		Level:   level,
		Name:    d.Name(),
		Color:   d.Color(),
		Message: msg,
		Time:    time.Now(),
	})
}

// Logf is Log with fmt-style formatting. The format arguments are not
// rendered unless the gate passes.
func (r *Runtime) Logf(d core.Descriptor, format string, args ...interface{}) error {
	if r.state.Load() != stateReady {
		return ErrNotInitialized
	}
	if d.Level() < r.minLevel {
		return nil
	}
	return r.Log(d, fmt.Sprintf(format, args...))
}

// Close stops accepting new records, waits for the dispatcher to deliver
// everything already queued, flush every handler, and exit. Idempotent;
// a Close before Init is a no-op.
//
// The process-wide runtime behind the package-level functions normally
// lives until process exit and is never closed; Close exists for tests
// and short-lived tools that need the flush to have happened before they
// return.
func (r *Runtime) Close() error {
	if r.state.Load() != stateReady {
		return nil
	}
	r.q.close()
	<-r.done
	return nil
}
