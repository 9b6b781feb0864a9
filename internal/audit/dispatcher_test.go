package audit

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu      sync.Mutex
	events  []Event
	started chan struct{}
	release chan struct{}
	err     error
}

func (f *fakeWriter) Write(_ context.Context, ev Event) error {
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.err
}

func (f *fakeWriter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDispatcher_WritesAndDrains(t *testing.T) {
	w := &fakeWriter{}
	d := NewDispatcher(w, quietLogger(), 10)

	for i := 0; i < 5; i++ {
		assert.True(t, d.Dispatch(Event{Table: "patients", RecordID: "1", Action: "INSERT"}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, 5, w.count())
	assert.False(t, d.Dispatch(Event{Table: "patients"}), "closed dispatcher drops events")
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	w := &fakeWriter{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	d := NewDispatcher(w, quietLogger(), 1)

	require.True(t, d.Dispatch(Event{RecordID: "1"}))
	<-w.started

	assert.True(t, d.Dispatch(Event{RecordID: "2"}))
	assert.False(t, d.Dispatch(Event{RecordID: "3"}))

	close(w.release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, 2, w.count())
}

func TestDispatcher_WriteErrorDoesNotStopWorker(t *testing.T) {
	w := &fakeWriter{err: errors.New("db down")}
	d := NewDispatcher(w, quietLogger(), 4)

	d.Dispatch(Event{RecordID: "1"})
	d.Dispatch(Event{RecordID: "2"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, 2, w.count())
}

func TestActorFrom(t *testing.T) {
	assert.Equal(t, SystemActor, ActorFrom(context.Background()).ID)

	ctx := WithActor(context.Background(), Actor{ID: "u-1", Email: "doc@clinic.example", RequestID: "req-1"})
	a := ActorFrom(ctx)
	assert.Equal(t, "u-1", a.ID)
	assert.Equal(t, "doc@clinic.example", a.Email)
	assert.Equal(t, "req-1", a.RequestID)
}
