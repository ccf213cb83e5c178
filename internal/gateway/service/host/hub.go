package host

import "sync"

// Hub fans frames out to every attached host-channel client. Delivery is
// best-effort: a client that stops draining loses its oldest frames rather
// than blocking the sender.
type Hub struct {
	mu      sync.Mutex
	clients map[chan Frame]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan Frame]struct{})}
}

// Attach registers a client and returns its frame channel plus a detach
// function. Detach is idempotent and closes the channel.
func (h *Hub) Attach(buffer int) (<-chan Frame, func()) {
	if buffer <= 0 {
		buffer = 32
	}
	ch := make(chan Frame, buffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	detach := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.clients, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, detach
}

func (h *Hub) Broadcast(f Frame) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- f:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- f:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
