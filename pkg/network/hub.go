package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cbodonnell/purgatorium/pkg/log"
	"github.com/cbodonnell/purgatorium/pkg/messages"
	"nhooyr.io/websocket"
)

const (
	DefaultSubscriberBuffer = 16
	DefaultWriteTimeout     = 5 * time.Second
)

// Hub fans serialized messages out to websocket subscribers.
// A subscriber that falls a full buffer behind is disconnected.
type Hub struct {
	subscriberBuffer int
	writeTimeout     time.Duration

	subscribersLock sync.RWMutex
	subscribers     map[*subscriber]struct{}
}

type subscriber struct {
	msgs      chan []byte
	closeSlow func()
}

type NewHubOptions struct {
	// SubscriberBuffer is the number of pending frames kept per subscriber.
	SubscriberBuffer int
	WriteTimeout     time.Duration
}

func NewHub(opts NewHubOptions) *Hub {
	if opts.SubscriberBuffer <= 0 {
		opts.SubscriberBuffer = DefaultSubscriberBuffer
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultWriteTimeout
	}
	return &Hub{
		subscriberBuffer: opts.SubscriberBuffer,
		writeTimeout:     opts.WriteTimeout,
		subscribers:      make(map[*subscriber]struct{}),
	}
}

// ServeHTTP upgrades the request and streams broadcasts to it until the
// client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Error("Failed to upgrade to WebSocket: %v", err)
		return
	}
	log.Debug("New stream subscriber from %s", r.RemoteAddr)

	err = h.subscribe(r.Context(), conn)
	if errors.Is(err, context.Canceled) ||
		websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
		websocket.CloseStatus(err) == websocket.StatusGoingAway {
		log.Trace("Stream closed for %s", r.RemoteAddr)
		return
	}
	if err != nil {
		log.Warn("Stream to %s ended: %v", r.RemoteAddr, err)
	}
}

func (h *Hub) subscribe(ctx context.Context, conn *websocket.Conn) error {
	var mu sync.Mutex
	closed := false
	s := &subscriber{
		msgs: make(chan []byte, h.subscriberBuffer),
		closeSlow: func() {
			mu.Lock()
			defer mu.Unlock()
			closed = true
			conn.Close(websocket.StatusPolicyViolation, "connection too slow to keep up with messages")
		},
	}
	h.addSubscriber(s)
	defer h.removeSubscriber(s)

	// subscribers never send, so reads only watch for the close frame
	ctx = conn.CloseRead(ctx)

	for {
		select {
		case msg := <-s.msgs:
			if err := writeTimeout(ctx, h.writeTimeout, conn, msg); err != nil {
				mu.Lock()
				wasClosed := closed
				mu.Unlock()
				if wasClosed {
					return fmt.Errorf("subscriber dropped: %v", err)
				}
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Broadcast serializes msg once and queues it for every subscriber.
func (h *Hub) Broadcast(ctx context.Context, msg *messages.Message) {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		log.Error("Failed to serialize broadcast message: %v", err)
		return
	}

	h.subscribersLock.RLock()
	defer h.subscribersLock.RUnlock()
	for s := range h.subscribers {
		select {
		case s.msgs <- b:
		default:
			go s.closeSlow()
		}
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.subscribersLock.RLock()
	defer h.subscribersLock.RUnlock()
	return len(h.subscribers)
}

func (h *Hub) addSubscriber(s *subscriber) {
	h.subscribersLock.Lock()
	h.subscribers[s] = struct{}{}
	h.subscribersLock.Unlock()
}

func (h *Hub) removeSubscriber(s *subscriber) {
	h.subscribersLock.Lock()
	delete(h.subscribers, s)
	h.subscribersLock.Unlock()
}

func writeTimeout(ctx context.Context, timeout time.Duration, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageBinary, msg)
}

// ReadMessage reads one frame written by a Hub and decodes it.
func ReadMessage(ctx context.Context, conn *websocket.Conn) (*messages.Message, error) {
	_, b, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
