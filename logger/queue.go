package logger

import (
	"sync"

	"github.com/mkoval/relaylog/core"
)

// shrinkCap is the backing-array capacity above which an emptied queue
// releases its memory instead of reusing it, so a burst does not pin a
// large allocation for the rest of the process.
const shrinkCap = 4096

// queue is the unbounded multi-producer single-consumer FIFO between
// producers and the dispatcher. Sends never block; receive blocks until a
// record or permanent closure. Records from one producer goroutine are
// received in the order they were sent.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	recs   []core.Record
	head   int
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// send enqueues one record. It returns ErrClosed (and drops the record)
// if the queue has been closed.
func (q *queue) send(rec core.Record) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.recs = append(q.recs, rec)
	q.mu.Unlock()
	q.cond.Signal()
	return nil
}

// receive blocks until a record is available or the queue is closed and
// drained. The second return is false only in the closed-and-drained
// case; pending records are always delivered before that.
func (q *queue) receive() (core.Record, bool) {
	q.mu.Lock()
	for q.head == len(q.recs) && !q.closed {
		q.cond.Wait()
	}
	if q.head == len(q.recs) {
		q.mu.Unlock()
		return core.Record{}, false
	}
	rec := q.recs[q.head]
	q.recs[q.head] = core.Record{} // release strings for GC
	q.head++
	if q.head == len(q.recs) {
		if cap(q.recs) > shrinkCap {
			q.recs = nil
		} else {
			q.recs = q.recs[:0]
		}
		q.head = 0
	}
	q.mu.Unlock()
	return rec, true
}

// close marks the queue permanently closed. Idempotent. Records already
// enqueued remain receivable.
func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
