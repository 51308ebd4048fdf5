// Package spectate broadcasts read-only game snapshots to WebSocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Hub maintains the set of connected viewers and broadcasts snapshots to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	upgrader   websocket.Upgrader
	logger     *log.Logger

	mu          sync.Mutex
	interval    time.Duration
	lastPublish time.Time
	dropped     int
}

// NewHub creates a hub that publishes at most once per interval (0 = every call).
func NewHub(logger *log.Logger, interval time.Duration) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Viewers are read-only, so any origin may watch.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:   logger,
		interval: interval,
	}
}

// Run handles connections and broadcasts until ctx is cancelled.
// A hub cannot be restarted once Run returns.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("spectator connected", "remote", c.remote, "viewers", n)
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Info("spectator disconnected", "remote", c.remote, "viewers", len(h.clients))
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Too slow to keep up; drop the viewer.
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish serializes v and queues it for every viewer. It never blocks the
// caller; when the queue is full or the rate limit applies, v is dropped.
func (h *Hub) Publish(v any) {
	now := time.Now()

	h.mu.Lock()
	if len(h.clients) == 0 || (h.interval > 0 && now.Sub(h.lastPublish) < h.interval) {
		h.mu.Unlock()
		return
	}
	h.lastPublish = now
	h.mu.Unlock()

	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("cannot encode snapshot", "error", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.mu.Lock()
		h.dropped++
		h.mu.Unlock()
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request to a WebSocket and streams snapshots to it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(h, conn, r.RemoteAddr)
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	c.readPump()
}

// ListenAndServe serves the hub on addr at /ws until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck // best-effort on exit
	}()

	h.logger.Info("spectator feed listening", "address", addr, "path", "/ws")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
