package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studium/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)            {}
func (nopLogger) Info(string, ...any)             {}
func (nopLogger) Warn(string, ...any)             {}
func (nopLogger) Error(string, ...any)            {}
func (nopLogger) Debugw(string, ...interface{})   {}
func (nopLogger) Infow(string, ...interface{})    {}
func (nopLogger) Warnw(string, ...interface{})    {}
func (nopLogger) Errorw(string, ...interface{})   {}
func (n nopLogger) With(...any) logger.Interface  { return n }
func (n nopLogger) Named(string) logger.Interface { return n }

func testEvent(eventType, aggregateID string) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  time.Now(),
	}
}

func TestInMemoryEventDispatcher_PublishAndHandle(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, nopLogger{})
	require.NoError(t, d.Start())
	defer d.Stop()

	var mu sync.Mutex
	received := []string{}
	done := make(chan struct{})

	handler := NewHandlerFunc("request_approved", func(e DomainEvent) error {
		mu.Lock()
		received = append(received, e.GetAggregateID())
		mu.Unlock()
		close(done)
		return nil
	})
	require.NoError(t, d.Subscribe("request_approved", handler))

	require.NoError(t, d.Publish(testEvent("request_approved", "42")))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"42"}, received)
}

func TestInMemoryEventDispatcher_UnsubscribedTypeIgnored(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, nopLogger{})
	require.NoError(t, d.Start())

	handled := make(chan struct{}, 1)
	require.NoError(t, d.Subscribe("request_rejected", NewHandlerFunc("request_rejected", func(DomainEvent) error {
		handled <- struct{}{}
		return nil
	})))

	require.NoError(t, d.Publish(testEvent("request_submitted", "1")))
	require.NoError(t, d.Stop())

	select {
	case <-handled:
		t.Fatal("handler for a different event type fired")
	default:
	}
}

func TestInMemoryEventDispatcher_PublishWhenStopped(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, nopLogger{})
	err := d.Publish(testEvent("request_submitted", "1"))
	assert.Error(t, err)
}

func TestInMemoryEventDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, nopLogger{})
	assert.Error(t, d.Subscribe("", NewHandlerFunc("x", func(DomainEvent) error { return nil })))
	assert.Error(t, d.Subscribe("x", nil))
}

func TestInMemoryEventDispatcher_HandlerErrorDoesNotStopDispatch(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, nopLogger{})
	require.NoError(t, d.Start())
	defer d.Stop()

	done := make(chan struct{})
	require.NoError(t, d.Subscribe("allocation_released", NewHandlerFunc("allocation_released", func(DomainEvent) error {
		return fmt.Errorf("projector down")
	})))
	require.NoError(t, d.Subscribe("allocation_released", NewHandlerFunc("allocation_released", func(DomainEvent) error {
		close(done)
		return nil
	})))

	require.NoError(t, d.Publish(testEvent("allocation_released", "7")))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler was not invoked after first failed")
	}
}
