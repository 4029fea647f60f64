package notification

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
)

// Outcome is a semantic result of a command, e.g. "receipt-added". Rendering
// and localization are left to the consuming surface.
type Outcome struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[uuid.UUID]chan Outcome),
	}
}

// Broker fans command outcomes out to all subscribed listeners.
type Broker struct {
	subscribers map[uuid.UUID]chan Outcome
	lock        sync.Mutex
}

func (b *Broker) Subscribe() (uuid.UUID, <-chan Outcome) {
	b.lock.Lock()
	defer b.lock.Unlock()

	id := uuid.New()
	channel := make(chan Outcome, 8)
	b.subscribers[id] = channel
	return id, channel
}

func (b *Broker) Unsubscribe(id uuid.UUID) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if channel, ok := b.subscribers[id]; ok {
		close(channel)
		delete(b.subscribers, id)
	}
}

// Publish delivers the outcome to every subscriber. A subscriber whose buffer
// is full misses the outcome rather than blocking the publishing command.
func (b *Broker) Publish(outcome Outcome) {
	b.lock.Lock()
	defer b.lock.Unlock()

	for _, id := range maps.Keys(b.subscribers) {
		select {
		case b.subscribers[id] <- outcome:
		default:
		}
	}
}
