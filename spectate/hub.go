// Package spectate broadcasts read-only game snapshots to websocket viewers
package spectate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
)

// Path is the websocket endpoint
const Path = "/ws"

// Hub fans encoded snapshots out to every connected viewer
// Publish is safe from the frame goroutine; slow viewers are dropped instead of blocking it
type Hub struct {
	upgrader websocket.Upgrader

	mutex   sync.RWMutex
	clients map[*connection]struct{}
	closed  bool

	server *http.Server
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Viewers are read-only; any origin may watch
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*connection]struct{}),
	}
}

// Handler returns the HTTP handler exposing the websocket endpoint
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, h.serveWS)
	return mux
}

// Start listens on addr and serves the hub in the background
func (h *Hub) Start(addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate listen %s: %w", addr, err)
	}
	h.server = &http.Server{Handler: h.Handler(), ReadHeaderTimeout: 5 * time.Second}
	core.Go(func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate server: %v", err)
		}
	})
	log.Printf("spectate feed on ws://%s%s", ln.Addr(), Path)
	return ln.Addr(), nil
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate upgrade: %v", err)
		return
	}

	c := newConnection(ws)
	if !h.add(c) {
		ws.Close()
		return
	}

	core.Go(c.writePump)
	core.Go(func() {
		c.readPump()
		h.remove(c)
	})
}

func (h *Hub) add(c *connection) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *connection) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
}

// Publish encodes v once and queues it for every viewer
func (h *Hub) Publish(v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for c := range h.clients {
		if !c.trySend(data) {
			delete(h.clients, c)
			c.close()
		}
	}
	return nil
}

// Due reports whether the frame should be broadcast
func Due(frame int64) bool {
	return frame%constants.SpectateEveryNFrames == 0
}

// ClientCount returns the number of connected viewers
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Close disconnects every viewer and stops the server if Start was used
func (h *Hub) Close() error {
	h.mutex.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
	h.mutex.Unlock()

	if h.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), constants.SpectateWriteTimeout)
	defer cancel()
	return h.server.Shutdown(ctx)
}
