package event

import "sync"

// Name identifies a published event; the known names live in events.go.
type Name string

type Handler func(payload interface{})

// Bus is a minimal in-process pub/sub fanout. Each delivery runs on its own
// goroutine, so a slow consumer never blocks a publisher.
type Bus struct {
	handlers map[Name][]Handler
	mu       sync.RWMutex
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Name][]Handler),
	}
}

func (b *Bus) Subscribe(name Name, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
}

func (b *Bus) Publish(name Name, payload interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers[name] {
		go h(payload)
	}
}
