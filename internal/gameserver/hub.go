package gameserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/udisondev/lastcamp/internal/world"
)

// CommandSink accepts world commands from any goroutine. *world.World implements it.
type CommandSink interface {
	Enqueue(cmd world.Command) bool
}

// Hub fans world snapshots out to browsers and feeds their commands back
// into the world.
type Hub struct {
	sink         CommandSink
	writeTimeout time.Duration
	queueSize    int
	upgrader     websocket.Upgrader

	mu      sync.Mutex
	clients map[*Client]struct{}
	forest  []byte // last encoded forest message, replayed to new clients
}

// NewHub creates a hub forwarding commands to sink.
func NewHub(sink CommandSink, writeTimeout time.Duration) *Hub {
	return &Hub{
		sink:         sink,
		writeTimeout: writeTimeout,
		queueSize:    defaultSendQueueSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*Client]struct{}),
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish broadcasts a snapshot. Called from the world loop; never blocks
// on a slow client.
func (h *Hub) Publish(s world.Snapshot) {
	var forestData []byte
	if s.Trees != nil {
		data, err := json.Marshal(newForestMessage(s.ForestVersion, s.Trees))
		if err != nil {
			slog.Error("encoding forest message", "error", err)
		} else {
			forestData = data
		}
	}

	stateData, err := json.Marshal(newStateMessage(s))
	if err != nil {
		slog.Error("encoding state message", "error", err)
		return
	}

	h.mu.Lock()
	if forestData != nil {
		h.forest = forestData
	}
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if forestData != nil && !c.Send(forestData) {
			continue
		}
		c.Send(stateData)
	}
}

// ServeHTTP upgrades the request to a websocket and serves the client
// until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := newClient(conn, h.writeTimeout, h.queueSize)
	h.register(c)
	defer h.unregister(c)

	go c.writePump()
	h.readLoop(c)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	forest := h.forest
	count := len(h.clients)
	h.mu.Unlock()

	if forest != nil {
		c.Send(forest)
	}
	slog.Info("client connected", "client", c.remote, "clients", count)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	count := len(h.clients)
	h.mu.Unlock()

	c.Close()
	slog.Info("client disconnected", "client", c.remote, "clients", count)
}

func (h *Hub) readLoop(c *Client) {
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			slog.Debug("discarding malformed message", "client", c.remote, "error", err)
			continue
		}

		cmd, ok := msg.command()
		if !ok {
			slog.Debug("unknown message type", "client", c.remote, "type", msg.Type)
			continue
		}
		if !h.sink.Enqueue(cmd) {
			slog.Warn("world command queue full, dropping command", "client", c.remote, "type", msg.Type)
		}
	}
}
