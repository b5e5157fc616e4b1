package observability

// EventEnvelope wraps events published to the AMQP sink.
type EventEnvelope struct {
	EventType string      `json:"event_type"`
	EventName string      `json:"event_name"`
	Payload   interface{} `json:"payload"`
}

// Routing keys for the event sink.
const (
	RoutingKeySessionSaveFailed = "store_events.session_save_failed"
	RoutingKeyWSChats           = "ws_events.chats"
	RoutingKeyWSNotifications   = "ws_events.notifications"
)

// BuildHeaders assembles correlation headers for a published event.
func BuildHeaders(requestID, traceID string) map[string]string {
	headers := map[string]string{}
	if requestID != "" {
		headers["x-request-id"] = requestID
	}
	if traceID != "" {
		headers["trace_id"] = traceID
	}
	return headers
}
