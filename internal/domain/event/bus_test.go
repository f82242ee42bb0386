package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"agencydesk/internal/domain/status"
)

type countingSink struct {
	mu    sync.Mutex
	count int
}

func (c *countingSink) OnStatusChanged(_ context.Context, _ StatusChanged) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return nil
}

func (c *countingSink) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func TestBus_FansOutToAllSinks(t *testing.T) {
	bus := NewBus()
	a := &countingSink{}
	b := &countingSink{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	for i := 0; i < 5; i++ {
		bus.Publish(StatusChanged{Kind: status.KindLead, EntityID: "lead-1", From: "new", To: "connected"})
	}
	bus.Wait()

	assert.Equal(t, 5, a.total())
	assert.Equal(t, 5, b.total())
}

func TestBus_SinkErrorDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	failing := SinkFunc(func(_ context.Context, _ StatusChanged) error {
		return errors.New("sink down")
	})
	healthy := &countingSink{}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	bus.Publish(StatusChanged{Kind: status.KindRequest, EntityID: "req-1", To: "pending"})
	bus.Wait()

	assert.Equal(t, 1, healthy.total())
}

func TestBus_SinkPanicIsRecovered(t *testing.T) {
	bus := NewBus()
	panicking := SinkFunc(func(_ context.Context, _ StatusChanged) error {
		panic("sink blew up")
	})
	healthy := &countingSink{}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	bus.Publish(StatusChanged{Kind: status.KindInstallment, EntityID: "inst-1", To: "paid"})
	bus.Wait()

	assert.Equal(t, 1, healthy.total())
}

func TestBus_NoSinks(t *testing.T) {
	bus := NewBus()
	bus.Publish(StatusChanged{Kind: status.KindLead, EntityID: "lead-1", To: "new"})
	bus.Wait()
}
