package ws

import "github.com/google/uuid"

// newConnID tags a websocket connection for event correlation.
func newConnID() string {
	return uuid.NewString()
}
