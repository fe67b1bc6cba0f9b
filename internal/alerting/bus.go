// FilePath: internal/alerting/bus.go
package alerting

import (
	"sync"

	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// DefaultClientBuffer is the per-subscriber channel capacity when none is
// configured.
const DefaultClientBuffer = 16

// Broker is the process-wide alert pub/sub channel. It is constructed once
// at startup and injected wherever alerts are produced or consumed; it
// holds no state across process lifetimes.
//
// Delivery is synchronous and in registration order. A subscriber whose
// buffer is full is skipped for that publish (lossy, never blocking the
// publisher or other subscribers). Subscribers registered after a publish
// never see that alert.
type Broker struct {
	mu     sync.RWMutex
	subs   []chan *models.Alert
	buffer int
	closed bool
}

// NewBroker creates a broker whose subscriber channels hold up to buffer
// undelivered alerts each.
func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = DefaultClientBuffer
	}
	return &Broker{buffer: buffer}
}

// Subscribe registers a new subscriber and returns its channel. The channel
// is closed on Unsubscribe or when the broker shuts down.
func (b *Broker) Subscribe() <-chan *models.Alert {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan *models.Alert, b.buffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Unsubscribe removes a subscriber and closes its channel. Safe to call
// while a publish is in flight and safe to call twice.
func (b *Broker) Unsubscribe(ch <-chan *models.Alert) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub == ch {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// Publish delivers the alert to every current subscriber in registration
// order. The read lock is held for the duration of the sends so no channel
// can be closed out from under a send; sends are non-blocking, so a full
// subscriber is skipped rather than stalling delivery to the others.
func (b *Broker) Publish(alert *models.Alert) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, sub := range b.subs {
		select {
		case sub <- alert:
		default:
			nuts.L.Warnf("[AlertBus] subscriber buffer full, dropping alert %s", alert.ID)
		}
	}
}

// Subscribers returns the number of currently registered subscribers.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes all subscriber channels and rejects further publishes.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}
