package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"mostface/internal/observability"
	"mostface/internal/store"
)

// NotificationWebSocketHandler pushes badge updates to the header UI.
type NotificationWebSocketHandler struct {
	hub   *Hub
	store *store.Store
}

// NewNotificationWebSocketHandler constructs a NotificationWebSocketHandler.
func NewNotificationWebSocketHandler(hub *Hub, st *store.Store) *NotificationWebSocketHandler {
	return &NotificationWebSocketHandler{hub: hub, store: st}
}

// Handle upgrades and registers a notification badge connection.
func (h *NotificationWebSocketHandler) Handle(c *gin.Context) {
	state := h.store.GetState()
	if state.CurrentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	ctx := c.Request.Context()
	traceID := ""
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		traceID = sc.TraceID().String()
	}
	requestID := observability.RequestIDFromRequest(c.Request)

	info := ConnInfo{
		ConnID:      newConnID(),
		UserID:      state.CurrentUser.ID,
		DeviceID:    observability.DeviceIDFromRequest(c.Request),
		IP:          observability.IPFromRequest(c.Request),
		RequestID:   requestID,
		TraceID:     traceID,
		ConnectedAt: time.Now(),
	}
	h.hub.AddNotificationClient(conn, info)

	observability.IncWSActive("notifications")
	observability.IncWSEvent("notifications", "ws_connect")
	_ = observability.PublishEvent(ctx, observability.RoutingKeyWSNotifications, observability.EventEnvelope{
		EventType: "ws_events",
		EventName: "ws_connect",
		Payload:   wsEventPayload("notifications", 0, info, "ws_connect", 0, ""),
	}, observability.BuildHeaders(requestID, traceID))

	go func() {
		var closeReason string
		defer func() {
			h.hub.RemoveNotificationClient(conn)
			observability.DecWSActive("notifications")
			observability.IncWSEvent("notifications", "ws_disconnect")
			_ = observability.PublishEvent(ctx, observability.RoutingKeyWSNotifications, observability.EventEnvelope{
				EventType: "ws_events",
				EventName: "ws_disconnect",
				Payload:   wsEventPayload("notifications", 0, info, "ws_disconnect", time.Since(info.ConnectedAt).Milliseconds(), closeReason),
			}, observability.BuildHeaders(requestID, traceID))
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				closeReason = err.Error()
				return
			}
		}
	}()
}
