package realtime

import (
	"encoding/json"
	"time"

	"monumento-api/logger"
	"monumento-api/model"

	"github.com/sirupsen/logrus"
)

// historyLimit caps each room's in-memory chat history; the oldest entries
// are dropped first. Histories are never evicted wholesale while the
// process lives.
const defaultHistoryLimit = 500

type joinRequest struct {
	client     *Client
	monumentID string
	role       string
}

type chatRequest struct {
	client     *Client
	monumentID string
	role       string
	message    string
}

// serverEvent is the envelope for every server-to-client message.
type serverEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// MonumentNotification is the payload broadcast to every client when a
// monument is created.
type MonumentNotification struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Hub owns the connection registry, room membership and room histories.
// All state is mutated only by the Run goroutine, which serializes every
// join, chat and broadcast; this is what gives per-room message ordering.
type Hub struct {
	register      chan *Client
	unregister    chan *Client
	joins         chan joinRequest
	chats         chan chatRequest
	notifications chan MonumentNotification
	done          chan struct{}

	clients      map[*Client]struct{}
	rooms        map[string]map[*Client]struct{}
	history      map[string][]model.ChatMessage
	historyLimit int
}

func NewHub() *Hub {
	return &Hub{
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		joins:         make(chan joinRequest),
		chats:         make(chan chatRequest),
		notifications: make(chan MonumentNotification, 64),
		done:          make(chan struct{}),
		clients:       make(map[*Client]struct{}),
		rooms:         make(map[string]map[*Client]struct{}),
		history:       make(map[string][]model.ChatMessage),
		historyLimit:  defaultHistoryLimit,
	}
}

// Run processes hub events until Stop is called. It must run in its own
// goroutine; handlers run to completion without preemption.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			logger.Log.WithFields(logrus.Fields{
				"username":      client.username,
				"total_clients": len(h.clients),
			}).Info("New WebSocket connection established")

		case client := <-h.unregister:
			h.removeClient(client)

		case req := <-h.joins:
			h.handleJoin(req)

		case req := <-h.chats:
			h.handleChat(req)

		case notification := <-h.notifications:
			h.handleNotification(notification)

		case <-h.done:
			for client := range h.clients {
				h.removeClient(client)
			}
			return
		}
	}
}

// Stop shuts the hub down and disconnects every client.
func (h *Hub) Stop() {
	close(h.done)
}

// NotifyNewMonument broadcasts a creation event to every connected client,
// regardless of room membership. It is safe to call on a nil or stopped
// hub; the notification is then dropped with a log line, never an error.
func (h *Hub) NotifyNewMonument(monument *model.Monument) {
	if h == nil {
		logger.Log.Warn("Unable to send notification: realtime hub is not initialized")
		return
	}

	notification := MonumentNotification{
		ID:          monument.ID,
		Title:       monument.Title,
		Description: monument.Description,
		CreatedAt:   monument.Created,
	}

	select {
	case h.notifications <- notification:
	default:
		logger.Log.WithField("monument_id", monument.ID).Warn("Dropping monument notification: realtime hub is not accepting events")
	}
}

func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for monumentID, members := range h.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, monumentID)
		}
	}
	close(client.send)
	logger.Log.WithField("username", client.username).Info("WebSocket connection closed")
}

func (h *Hub) handleJoin(req joinRequest) {
	members, ok := h.rooms[req.monumentID]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[req.monumentID] = members
	}
	members[req.client] = struct{}{}

	if _, ok := h.history[req.monumentID]; !ok {
		h.history[req.monumentID] = []model.ChatMessage{}
	}

	logger.Log.WithFields(logrus.Fields{
		"username":    req.client.username,
		"monument_id": req.monumentID,
		"role":        req.role,
	}).Info("Client joined monument room")

	// Only the joining client receives the accumulated history.
	h.sendTo(req.client, "chatHistory", h.history[req.monumentID])
}

func (h *Hub) handleChat(req chatRequest) {
	msg := model.ChatMessage{
		User:    req.client.username,
		Role:    req.role,
		Message: req.message,
		Date:    time.Now(),
	}

	history := append(h.history[req.monumentID], msg)
	if len(history) > h.historyLimit {
		history = history[len(history)-h.historyLimit:]
	}
	h.history[req.monumentID] = history

	payload := marshalEvent("newMessage", msg)
	for member := range h.rooms[req.monumentID] {
		h.push(member, payload)
	}
}

func (h *Hub) handleNotification(notification MonumentNotification) {
	logger.Log.WithFields(logrus.Fields{
		"monument_id":   notification.ID,
		"total_clients": len(h.clients),
	}).Info("Broadcasting new monument notification")

	payload := marshalEvent("newMonument", notification)
	for client := range h.clients {
		h.push(client, payload)
	}
}

func (h *Hub) sendTo(client *Client, event string, data interface{}) {
	h.push(client, marshalEvent(event, data))
}

// push queues a payload for one client; a client whose send buffer is full
// is considered dead and dropped.
func (h *Hub) push(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		h.removeClient(client)
	}
}

func marshalEvent(event string, data interface{}) []byte {
	payload, err := json.Marshal(serverEvent{Event: event, Data: data})
	if err != nil {
		logger.Log.WithError(err).WithField("event", event).Error("Failed to marshal server event")
		return nil
	}
	return payload
}
