package audit

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
)

type Writer interface {
	Write(ctx context.Context, ev Event) error
}

// Dispatcher persists events on a single background worker. Dispatch
// never blocks: when the queue is full the event is dropped.
type Dispatcher struct {
	writer Writer
	log    *logrus.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(writer Writer, log *logrus.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	d := &Dispatcher{
		writer: writer,
		log:    log,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.writer.Write(context.Background(), ev); err != nil {
			metrics.AuditEventsTotal.WithLabelValues("failed").Inc()
			d.log.WithError(err).WithFields(logrus.Fields{
				"table":     ev.Table,
				"record_id": ev.RecordID,
				"action":    ev.Action,
			}).Error("audit write failed")
			continue
		}
		metrics.AuditEventsTotal.WithLabelValues("written").Inc()
	}
}

// Dispatch reports whether the event was queued.
func (d *Dispatcher) Dispatch(ev Event) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.AuditEventsTotal.WithLabelValues("dropped").Inc()
		return false
	}

	select {
	case d.queue <- ev:
		return true
	default:
		metrics.AuditEventsTotal.WithLabelValues("dropped").Inc()
		d.log.WithFields(logrus.Fields{
			"table":     ev.Table,
			"record_id": ev.RecordID,
			"action":    ev.Action,
		}).Warn("audit queue full, dropping event")
		return false
	}
}

// Close stops accepting events and waits until the queue is drained or
// ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
