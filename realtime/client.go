package realtime

import (
	"encoding/json"
	"time"

	"monumento-api/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// clientEvent is the envelope for every client-to-server message.
type clientEvent struct {
	Event      string `json:"event"`
	MonumentID string `json:"monumentId"`
	Role       string `json:"role"`
	Message    string `json:"message"`
}

// Client is one authenticated realtime connection. The identity decoded at
// the handshake is bound to the connection for its lifetime.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	username string
}

// readPump reads client events and dispatches them to the hub. It runs in
// its own goroutine; there is at most one reader per connection.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).WithField("username", c.username).Warn("Unexpected WebSocket close")
			}
			return
		}

		var event clientEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logger.Log.WithError(err).WithField("username", c.username).Warn("Ignoring malformed client event")
			continue
		}

		switch event.Event {
		case "joinMonument":
			c.hub.joins <- joinRequest{client: c, monumentID: event.MonumentID, role: event.Role}
		case "sendMessage":
			c.hub.chats <- chatRequest{client: c, monumentID: event.MonumentID, role: event.Role, message: event.Message}
		default:
			logger.Log.WithField("event", event.Event).Warn("Ignoring unknown client event")
		}
	}
}

// writePump forwards queued payloads to the connection and keeps it alive
// with pings. There is at most one writer per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
