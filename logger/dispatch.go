package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mkoval/relaylog/core"
	"github.com/mkoval/relaylog/handler"
)

// dispatch is the single consumer of the delivery queue. It drains
// records and fans each one out to every handler in registration order,
// then, once the queue reports permanent closure, flushes every handler
// in the same order and exits. All sink I/O happens here, which is what
// lets handlers go without locks.
func (r *Runtime) dispatch() {
	defer close(r.done)

	for {
		rec, ok := r.q.receive()
		if !ok {
			break
		}
		for _, h := range r.handlers {
			r.invoke(h, &rec)
		}
	}

	for _, h := range r.handlers {
		r.finish(h)
	}
}

// invoke delivers one record to one handler, containing any error or
// panic so the remaining handlers still see the record and the loop
// keeps running. A broken sink costs log lines, never the process.
func (r *Runtime) invoke(h handler.Handler, rec *core.Record) {
	defer func() {
		if p := recover(); p != nil {
			r.reportFault(errors.Errorf("handler %T panicked: %v", h, p))
		}
	}()
	if err := h.Handle(rec); err != nil {
		r.reportFault(errors.Wrapf(err, "handler %T", h))
	}
}

// finish flushes a handler and, if it owns a closeable resource, closes
// it. Runs exactly once per handler, after the last record.
func (r *Runtime) finish(h handler.Handler) {
	defer func() {
		if p := recover(); p != nil {
			r.reportFault(errors.Errorf("handler %T panicked in flush: %v", h, p))
		}
	}()
	if err := h.Flush(); err != nil {
		r.reportFault(errors.Wrapf(err, "flush %T", h))
	}
	if c, ok := h.(io.Closer); ok {
		if err := c.Close(); err != nil {
			r.reportFault(errors.Wrapf(err, "close %T", h))
		}
	}
}

// reportFault writes a contained sink fault to stderr. The logging
// pipeline cannot log its own failures through itself.
func (r *Runtime) reportFault(err error) {
	w := r.faultWriter
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "relaylog: %v\n", err)
}
