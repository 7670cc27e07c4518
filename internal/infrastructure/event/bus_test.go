package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/storefront/backoffice/internal/domain/shared"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Order", uuid.New()),
	}
}

type recordingHandler struct {
	mu         sync.Mutex
	eventTypes []string
	received   []shared.DomainEvent
	err        error
	panics     bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.mu.Lock()
	h.received = append(h.received, event)
	h.mu.Unlock()
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.eventTypes
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.received)
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers events to matching handlers", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{eventTypes: []string{"order.transitioned"}}
		bus.Subscribe(handler)

		err := bus.Publish(ctx, newTestEvent("order.transitioned"), newTestEvent("order.created"))

		assert.NoError(t, err)
		assert.Equal(t, 1, handler.count())
	})

	t.Run("wildcard handler receives all events", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{}
		bus.Subscribe(handler)

		err := bus.Publish(ctx, newTestEvent("order.transitioned"), newTestEvent("order.created"))

		assert.NoError(t, err)
		assert.Equal(t, 2, handler.count())
	})

	t.Run("handler error does not block other handlers", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &recordingHandler{eventTypes: []string{"order.transitioned"}, err: errors.New("boom")}
		healthy := &recordingHandler{eventTypes: []string{"order.transitioned"}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		err := bus.Publish(ctx, newTestEvent("order.transitioned"))

		assert.NoError(t, err)
		assert.Equal(t, 1, healthy.count())
	})

	t.Run("recovers from panicking handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		panicking := &recordingHandler{eventTypes: []string{"order.transitioned"}, panics: true}
		healthy := &recordingHandler{eventTypes: []string{"order.transitioned"}}
		bus.Subscribe(panicking)
		bus.Subscribe(healthy)

		assert.NotPanics(t, func() {
			_ = bus.Publish(ctx, newTestEvent("order.transitioned"))
		})
		assert.Equal(t, 1, healthy.count())
	})

	t.Run("unsubscribed handler receives nothing", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{eventTypes: []string{"order.transitioned"}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		_ = bus.Publish(ctx, newTestEvent("order.transitioned"))

		assert.Equal(t, 0, handler.count())
	})

	t.Run("explicit event types override handler defaults", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{eventTypes: []string{"order.transitioned"}}
		bus.Subscribe(handler, "order.cancelled")

		_ = bus.Publish(ctx, newTestEvent("order.transitioned"))
		_ = bus.Publish(ctx, newTestEvent("order.cancelled"))

		assert.Equal(t, 1, handler.count())
	})
}
