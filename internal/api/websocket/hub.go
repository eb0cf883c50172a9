package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/chynybekuuludastan/adstudio/internal/session"
)

// Message types
const (
	TypeConnected  = "connected"
	TypePanelState = "panel_state"
)

// Client represents a connected WebSocket client
type Client struct {
	conn      *websocket.Conn
	sessionID string
	send      chan []byte
}

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients by session ID
	clients map[string]map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Guard clients map
	mu sync.RWMutex
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's message handling loop
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for _, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.sessionID]; !ok {
				h.clients[client.sessionID] = make(map[*Client]bool)
			}
			h.clients[client.sessionID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.sessionID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
				}

				// If no more clients for this session, remove the map
				if len(clients) == 0 {
					delete(h.clients, client.sessionID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register registers a new client connection; it reports false once the hub has stopped
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client connection
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Notify forwards a panel transition to the browsers of its session
func (h *Hub) Notify(event session.Event) {
	h.BroadcastToSession(event.SessionID, Message{Type: TypePanelState, Data: event})
}

// BroadcastToSession sends a message to all clients of a session
func (h *Hub) BroadcastToSession(sessionID string, message Message) {
	messageJSON, err := json.Marshal(message)
	if err != nil {
		log.Printf("[ERROR] marshal websocket message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.clients[sessionID]
	if !ok {
		return
	}

	for client := range clients {
		select {
		case client.send <- messageJSON:
		default:
			// Client's send buffer is full, unregister
			go h.Unregister(client)
		}
	}
}

// ClientCount returns the number of clients connected for a session
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// HandleConnection serves a connection until the browser goes away
func (h *Hub) HandleConnection(conn *websocket.Conn, sessionID string) {
	client := &Client{
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan []byte, 16),
	}

	initial, _ := json.Marshal(Message{
		Type: TypeConnected,
		Data: map[string]interface{}{"status": "connected"},
	})
	client.send <- initial

	if !h.Register(client) {
		close(client.send)
	}

	// The connection is released when this returns, so wait for the writer
	written := make(chan struct{})
	go func() {
		client.writePump()
		close(written)
	}()
	client.readPump(h)
	<-written
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump blocks until the connection fails; incoming messages are ignored
func (c *Client) readPump(h *Hub) {
	defer h.Unregister(c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ERROR] websocket: %v", err)
			}
			return
		}
	}
}
