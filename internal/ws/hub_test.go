package ws

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(logger)
}

func TestAddAndRemoveChatClient(t *testing.T) {
	hub := NewHub(testLog())
	conn := &websocket.Conn{}
	info := ConnInfo{ConnID: "c1", UserID: 1, ConnectedAt: time.Now()}

	hub.AddChatClient(7, conn, info)

	got, ok := hub.getConnInfo(7, conn)
	require.True(t, ok)
	assert.Equal(t, "c1", got.ConnID)

	hub.RemoveChatClient(7, conn)
	_, ok = hub.getConnInfo(7, conn)
	assert.False(t, ok)

	// Empty rooms are dropped entirely.
	assert.Empty(t, hub.chatRooms)
	assert.Empty(t, hub.chatConnInfo)
}

func TestRemoveChatClientUnknownRoom(t *testing.T) {
	hub := NewHub(testLog())

	// Must not panic on rooms that never existed.
	hub.RemoveChatClient(99, &websocket.Conn{})
}

func TestAddAndRemoveNotificationClient(t *testing.T) {
	hub := NewHub(testLog())
	conn := &websocket.Conn{}

	hub.AddNotificationClient(conn, ConnInfo{ConnID: "n1", UserID: 1})
	assert.Len(t, hub.notificationClients, 1)

	hub.RemoveNotificationClient(conn)
	assert.Empty(t, hub.notificationClients)
}

func TestChatRoomsAreIndependent(t *testing.T) {
	hub := NewHub(testLog())
	a := &websocket.Conn{}
	b := &websocket.Conn{}

	hub.AddChatClient(1, a, ConnInfo{ConnID: "a"})
	hub.AddChatClient(2, b, ConnInfo{ConnID: "b"})

	hub.RemoveChatClient(1, a)
	_, ok := hub.getConnInfo(2, b)
	assert.True(t, ok)
}
