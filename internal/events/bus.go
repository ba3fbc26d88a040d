// Package events is a small in-process publish/subscribe bus. Views that
// mutate a resource publish on its topic so any other open view of the same
// resource refreshes; nothing crosses the process boundary.
package events

import "sync"

type Topic string

const (
	TopicOrders     Topic = "orders"
	TopicStaff      Topic = "staff"
	TopicCafeOwners Topic = "cafeowners"
	TopicSession    Topic = "session"
)

type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic]map[int]func(Topic)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]func(Topic))}
}

// Subscribe registers a handler for one topic and returns its unsubscribe
// func. Handlers run synchronously on the publisher's goroutine.
func (b *Bus) Subscribe(topic Topic, fn func(Topic)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(Topic))
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

func (b *Bus) Publish(topic Topic) {
	b.mu.RLock()
	handlers := make([]func(Topic), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(topic)
	}
}
