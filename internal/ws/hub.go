package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"mostface/internal/models"
	"mostface/internal/observability"
)

// Hub maintains active websocket rooms: one room per chat, plus a single
// room for notification badge pushes.
type Hub struct {
	chatRooms           map[int64]map[*websocket.Conn]bool
	chatConnInfo        map[int64]map[*websocket.Conn]ConnInfo
	notificationClients map[*websocket.Conn]ConnInfo
	log                 *logrus.Entry
	mu                  sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub(log *logrus.Entry) *Hub {
	return &Hub{
		chatRooms:           make(map[int64]map[*websocket.Conn]bool),
		chatConnInfo:        make(map[int64]map[*websocket.Conn]ConnInfo),
		notificationClients: make(map[*websocket.Conn]ConnInfo),
		log:                 log,
	}
}

// AddChatClient registers a websocket connection to a chat room.
func (h *Hub) AddChatClient(chatID int64, conn *websocket.Conn, info ConnInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.chatRooms[chatID]; !ok {
		h.chatRooms[chatID] = make(map[*websocket.Conn]bool)
		h.chatConnInfo[chatID] = make(map[*websocket.Conn]ConnInfo)
	}
	h.chatRooms[chatID][conn] = true
	h.chatConnInfo[chatID][conn] = info
}

// RemoveChatClient removes a chat websocket connection.
func (h *Hub) RemoveChatClient(chatID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.chatRooms[chatID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.chatRooms, chatID)
		}
	}
	if infos, ok := h.chatConnInfo[chatID]; ok {
		delete(infos, conn)
		if len(infos) == 0 {
			delete(h.chatConnInfo, chatID)
		}
	}
}

// AddNotificationClient registers a connection for badge pushes.
func (h *Hub) AddNotificationClient(conn *websocket.Conn, info ConnInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notificationClients[conn] = info
}

// RemoveNotificationClient removes a badge connection.
func (h *Hub) RemoveNotificationClient(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.notificationClients, conn)
}

// BroadcastChatMessage sends a new message to all clients in its chat room.
func (h *Hub) BroadcastChatMessage(chatID int64, msg models.Message) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.chatRooms[chatID]))
	for conn := range h.chatRooms[chatID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	event := models.ChatEvent{Type: "message", ChatID: chatID, Message: &msg}
	payload, _ := json.Marshal(event)
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.WithError(err).Warn("websocket write error")
			conn.Close()
			h.RemoveChatClient(chatID, conn)
			h.publishWSError("chat", chatID, conn, err)
		}
	}
}

// BroadcastNotification pushes a new notification and the updated badge
// count to all notification clients.
func (h *Hub) BroadcastNotification(n models.Notification, unreadCount int) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.notificationClients))
	for conn := range h.notificationClients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	event := models.NotificationEvent{Type: "notification", Notification: &n, UnreadCount: unreadCount}
	payload, _ := json.Marshal(event)
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.WithError(err).Warn("websocket write error")
			conn.Close()
			h.RemoveNotificationClient(conn)
		}
	}
}

func (h *Hub) publishWSError(kind string, resourceID int64, conn *websocket.Conn, err error) {
	info, ok := h.getConnInfo(resourceID, conn)
	if !ok {
		return
	}

	payload := map[string]interface{}{
		"ws": map[string]interface{}{
			"kind":        kind,
			"resource_id": resourceID,
			"event":       "ws_error",
			"conn_id":     info.ConnID,
			"duration_ms": time.Since(info.ConnectedAt).Milliseconds(),
			"reason":      err.Error(),
		},
		"identity": map[string]interface{}{
			"user_id":   info.UserID,
			"device_id": info.DeviceID,
			"ip":        info.IP,
		},
	}

	headers := observability.BuildHeaders(info.RequestID, info.TraceID)
	_ = observability.PublishEvent(context.Background(), observability.RoutingKeyWSChats, observability.EventEnvelope{
		EventType: "ws_events",
		EventName: "ws_error",
		Payload:   payload,
	}, headers)
	observability.IncWSEvent(kind, "ws_error")
}

func (h *Hub) getConnInfo(resourceID int64, conn *websocket.Conn) (ConnInfo, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if infos, ok := h.chatConnInfo[resourceID]; ok {
		info, exists := infos[conn]
		return info, exists
	}
	return ConnInfo{}, false
}
