package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Event is the envelope carried on the in-process bus.
type Event struct {
	EventID    string
	Type       string
	Payload    []byte
	OccurredAt time.Time
}

// Bus is the event bus connecting the identity directory to the refresh
// worker. Current implementation is in-process publish/subscribe; the
// constructor shape leaves room for an external broker later.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
	logger      *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[string][]chan Event),
		logger:      logger,
	}
}

func (b *Bus) Publish(ctx context.Context, topic string, event Event) error {
	b.mu.RLock()
	subs := append([]chan Event(nil), b.subscribers[topic]...)
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				"event", "bus_publish_drop",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"event_type", event.Type,
			)
		}
	}
	return nil
}

// Subscribe registers a buffered channel on topic. The returned channel is
// owned by the bus and closed on Close.
func (b *Bus) Subscribe(topic string) <-chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	b.mu.Unlock()
	return ch
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for topic, subs := range b.subscribers {
		for _, sub := range subs {
			close(sub)
		}
		delete(b.subscribers, topic)
	}
}
