package event

import (
	"context"
	"log"
	"sync"

	"agencydesk/internal/domain/status"
)

// StatusChanged is emitted after every committed transition.
type StatusChanged struct {
	Kind     status.Kind `json:"kind"`
	EntityID string      `json:"entity_id"`
	From     string      `json:"from"`
	To       string      `json:"to"`
}

// Sink consumes status-change events. Sink failures never affect the
// transition that produced the event.
type Sink interface {
	OnStatusChanged(ctx context.Context, ev StatusChanged) error
}

// Bus fans events out to registered sinks asynchronously, at-least-once,
// log-and-continue on error.
type Bus struct {
	mu    sync.RWMutex
	sinks []Sink
	wg    sync.WaitGroup
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a sink. Not safe to call concurrently with itself,
// intended for wiring at startup.
func (b *Bus) Subscribe(s Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, s)
}

// Publish delivers ev to every sink on its own goroutine. The caller's
// context is not propagated: the producing transition has already
// committed and must not be tied to sink lifetimes.
func (b *Bus) Publish(ev StatusChanged) {
	b.mu.RLock()
	sinks := make([]Sink, len(b.sinks))
	copy(sinks, b.sinks)
	b.mu.RUnlock()

	for _, s := range sinks {
		b.wg.Add(1)
		go func(s Sink) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("event_sink_panic kind=%s entity_id=%s err=%v", ev.Kind, ev.EntityID, r)
				}
			}()
			if err := s.OnStatusChanged(context.Background(), ev); err != nil {
				log.Printf("event_sink_error kind=%s entity_id=%s from=%s to=%s err=%v",
					ev.Kind, ev.EntityID, ev.From, ev.To, err)
			}
		}(s)
	}
}

// Wait blocks until in-flight deliveries drain. Used by tests and shutdown.
func (b *Bus) Wait() {
	b.wg.Wait()
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, ev StatusChanged) error

func (f SinkFunc) OnStatusChanged(ctx context.Context, ev StatusChanged) error {
	return f(ctx, ev)
}
