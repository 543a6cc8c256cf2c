package gameserver

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// defaultSendQueueSize bounds how many messages may wait for a slow browser.
const defaultSendQueueSize = 64

// Client is one connected browser. Writes go through a dedicated
// writer goroutine fed by sendCh.
type Client struct {
	conn         *websocket.Conn
	remote       string
	writeTimeout time.Duration

	sendCh    chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, writeTimeout time.Duration, queueSize int) *Client {
	if queueSize <= 0 {
		queueSize = defaultSendQueueSize
	}
	return &Client{
		conn:         conn,
		remote:       conn.RemoteAddr().String(),
		writeTimeout: writeTimeout,
		sendCh:       make(chan []byte, queueSize),
		closeCh:      make(chan struct{}),
	}
}

// Send queues a message. Non-blocking: a full queue closes the client.
func (c *Client) Send(data []byte) bool {
	select {
	case <-c.closeCh:
		return false
	default:
	}

	select {
	case c.sendCh <- data:
		return true
	default:
		slog.Warn("send queue full, disconnecting slow client", "client", c.remote)
		c.Close()
		return false
	}
}

// Close stops the writer and closes the connection. Safe to call repeatedly.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closeCh)
		_ = c.conn.Close()
	})
}

// Closed is closed once the client shuts down.
func (c *Client) Closed() <-chan struct{} {
	return c.closeCh
}

// writePump writes queued messages until the client closes or a write fails.
func (c *Client) writePump() {
	defer c.Close()

	for {
		select {
		case data := <-c.sendCh:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
				slog.Warn("set write deadline failed", "client", c.remote, "error", err)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				slog.Warn("write failed", "client", c.remote, "error", err)
				return
			}

		case <-c.closeCh:
			return
		}
	}
}
