package handlers

import (
	"encoding/json"

	"github.com/gofiber/websocket/v2"

	"github.com/chynybekuuludastan/adstudio/internal/api/middleware"
	ws "github.com/chynybekuuludastan/adstudio/internal/api/websocket"
)

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	Hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{Hub: hub}
}

// HandlePanelsWebSocket streams the panel transitions of the caller's session
func (h *WebSocketHandler) HandlePanelsWebSocket(c *websocket.Conn) {
	sessionID, _ := c.Locals(middleware.LocalSessionID).(string)
	if sessionID == "" {
		msg, _ := json.Marshal(ws.Message{
			Type: "error",
			Data: map[string]interface{}{"message": "Session is required"},
		})
		_ = c.WriteMessage(websocket.TextMessage, msg)
		_ = c.Close()
		return
	}

	h.Hub.HandleConnection(c, sessionID)
}
