package ws

import (
	"encoding/json"
	"log"
	"sync"

	"bizbalance/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgQuestCompleted MessageType = "quest_completed"
	MsgHealthUpdated  MessageType = "health_updated"
	MsgError          MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans events out to dashboards watching a VIP. Both the VIP's own
// dashboard and the owning agent's view subscribe to the same vip channel.
type Hub struct {
	// vipID -> connection id -> connection
	conns map[string]map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one subscribed dashboard socket
type Connection struct {
	ID      string
	VIPID   string
	IsAgent bool
	Send    chan []byte
	Hub     *Hub
}

// BroadcastMessage is an event to fan out to a VIP's watchers
type BroadcastMessage struct {
	VIPID   string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.VIPID] == nil {
				h.conns[conn.VIPID] = make(map[string]*Connection)
			}
			h.conns[conn.VIPID][conn.ID] = conn
			h.mu.Unlock()
			log.Printf("Dashboard connected for vip %s (agent=%v)", conn.VIPID, conn.IsAgent)

		case conn := <-h.unregister:
			h.mu.Lock()
			if watchers, ok := h.conns[conn.VIPID]; ok {
				if existing, ok := watchers[conn.ID]; ok && existing == conn {
					delete(watchers, conn.ID)
					close(conn.Send)
					log.Printf("Dashboard disconnected for vip %s", conn.VIPID)
				}
				if len(watchers) == 0 {
					delete(h.conns, conn.VIPID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for _, conn := range h.conns[msg.VIPID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// NotifyQuestCompleted pushes a completion event (implements service.Notifier)
func (h *Hub) NotifyQuestCompleted(vipID string, n *model.Notification) {
	h.push(vipID, MsgQuestCompleted, n)
}

// NotifyHealthUpdated pushes a fresh health snapshot (implements service.Notifier)
func (h *Hub) NotifyHealthUpdated(vipID string, index *model.HealthIndex) {
	h.push(vipID, MsgHealthUpdated, index)
}

func (h *Hub) push(vipID string, msgType MessageType, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		VIPID: vipID,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}
