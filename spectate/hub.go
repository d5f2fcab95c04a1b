// Package spectate serves a read-only websocket feed of the running duel
package spectate

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// Spectating is read-only; any origin may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one connected spectator
// send is closed exactly once, by the hub, when the client is removed
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans encoded frames out to spectators
// Publish never blocks: a client whose buffer is full is dropped
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	closed  bool

	sendBuffer   int
	writeTimeout time.Duration
}

// NewHub creates a hub with the given per-client buffer and write timeout
func NewHub(sendBuffer int, writeTimeout time.Duration) *Hub {
	return &Hub{
		clients:      make(map[*client]struct{}),
		sendBuffer:   sendBuffer,
		writeTimeout: writeTimeout,
	}
}

// ServeHTTP upgrades the request and streams frames until the spectator leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("spectate upgrade:", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, h.sendBuffer)}
	if !h.register(c) {
		conn.Close()
		return
	}
	log.Printf("spectator connected: %s", r.RemoteAddr)

	go h.writePump(c)
	h.readPump(c)
	log.Printf("spectator disconnected: %s", r.RemoteAddr)
}

// register adds a client and queues the most recent frame for it
func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.latest != nil {
		select {
		case c.send <- h.latest:
		default:
		}
	}
	return true
}

// remove drops a client; safe to call more than once
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// readPump discards inbound messages and returns when the connection fails
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump sends queued frames until the hub closes the client's channel
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			h.remove(c)
			break
		}
	}
	// Best-effort close handshake
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(h.writeTimeout))
}

// Publish encodes a frame and queues it for every spectator
func (h *Hub) Publish(f *Frame) error {
	data, err := Encode(f)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Println("spectator too slow, dropping")
			h.removeLocked(c)
		}
	}
	return nil
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every spectator and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}
