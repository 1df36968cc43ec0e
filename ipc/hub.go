package ipc

import (
	"net"
	"sync"

	"github.com/mywm/mywm/internal/log"
)

var logger = log.WithComponent("ipc")

// subscriberQueueDepth bounds how many undelivered events a slow client may
// accumulate before it is dropped.
const subscriberQueueDepth = 64

// subscriber is one connected IPC client, always registered as an event
// recipient regardless of whether it ever sends a command.
type subscriber struct {
	id   uint64
	conn net.Conn
	out  chan []byte
	done chan struct{}
}

// Hub fans broadcast events out to every connected subscriber, dropping any
// client whose outbound queue is full instead of blocking the reactor.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]*subscriber
	nextID uint64
}

// NewHub creates an empty event hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]*subscriber)}
}

// register adds conn as a subscriber and starts its dedicated writer
// goroutine, draining out until the connection is unregistered.
func (h *Hub) register(conn net.Conn) *subscriber {
	h.mu.Lock()
	h.nextID++
	sub := &subscriber{
		id:   h.nextID,
		conn: conn,
		out:  make(chan []byte, subscriberQueueDepth),
		done: make(chan struct{}),
	}
	h.subs[sub.id] = sub
	h.mu.Unlock()

	go sub.writeLoop()
	return sub
}

func (s *subscriber) writeLoop() {
	for {
		select {
		case b, ok := <-s.out:
			if !ok {
				return
			}
			if _, err := s.conn.Write(b); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

// unregister removes sub from the broadcast set and closes its connection.
func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subs, sub.id)
	h.mu.Unlock()
	close(sub.done)
	sub.conn.Close()
}

// Broadcast fans an event out to every connected subscriber. It is safe to
// call concurrently with client connect/disconnect.
func (h *Hub) Broadcast(eventName string, payload interface{}) {
	line, err := formatEvent(eventName, payload)
	if err != nil {
		logger.Error().Err(err).Str("event", eventName).Msg("failed to encode event")
		return
	}

	h.mu.Lock()
	targets := make([]*subscriber, 0, len(h.subs))
	for _, s := range h.subs {
		targets = append(targets, s)
	}
	h.mu.Unlock()

	for _, s := range targets {
		select {
		case s.out <- line:
		default:
			// Subscriber's buffer is full: drop it rather than block the
			// reactor.
			h.unregister(s)
		}
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for _, s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()
	for _, s := range subs {
		h.unregister(s)
	}
}
