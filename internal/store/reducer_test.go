package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mostface/internal/models"
)

func stateWithUser(id int64) State {
	u := models.User{ID: id, Name: "me", Email: "me@example.com"}
	return State{
		CurrentUser:   &u,
		Users:         []models.User{u},
		Posts:         []models.Post{},
		Items:         []models.MarketplaceItem{},
		Notifications: []models.Notification{},
		Chats:         []models.Chat{},
	}
}

func TestReduceAddPostPrepends(t *testing.T) {
	s := stateWithUser(1)

	s, applied := Reduce(s, AddPost{Post: models.Post{ID: 101, AuthorID: 1}})
	require.True(t, applied)
	s, applied = Reduce(s, AddPost{Post: models.Post{ID: 102, AuthorID: 1}})
	require.True(t, applied)

	require.Len(t, s.Posts, 2)
	assert.Equal(t, int64(102), s.Posts[0].ID)
	assert.Equal(t, int64(101), s.Posts[1].ID)
}

func TestReduceAddPostDuplicateIDNoOp(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, AddPost{Post: models.Post{ID: 101}})

	next, applied := Reduce(s, AddPost{Post: models.Post{ID: 101, Content: "again"}})
	assert.False(t, applied)
	assert.Empty(t, cmp.Diff(s, next))
}

func TestReduceLikePostOnce(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, AddPost{Post: models.Post{ID: 101, AuthorID: 2}})

	s, applied := Reduce(s, LikePost{PostID: 101, UserID: 1})
	require.True(t, applied)
	assert.Equal(t, []int64{1}, s.Posts[0].Likes)

	next, applied := Reduce(s, LikePost{PostID: 101, UserID: 1})
	assert.False(t, applied)
	assert.Equal(t, []int64{1}, next.Posts[0].Likes)
}

func TestReduceLikeUnknownPost(t *testing.T) {
	s := stateWithUser(1)

	_, applied := Reduce(s, LikePost{PostID: 999, UserID: 1})
	assert.False(t, applied)
}

func TestReduceAddCommentAppends(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, AddPost{Post: models.Post{ID: 101}})

	s, applied := Reduce(s, AddComment{PostID: 101, Comment: models.Comment{ID: 201, Text: "first"}})
	require.True(t, applied)
	s, applied = Reduce(s, AddComment{PostID: 101, Comment: models.Comment{ID: 202, Text: "second"}})
	require.True(t, applied)

	require.Len(t, s.Posts[0].Comments, 2)
	assert.Equal(t, "first", s.Posts[0].Comments[0].Text)
	assert.Equal(t, "second", s.Posts[0].Comments[1].Text)
}

func TestReduceMarkNotificationReadIdempotent(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, AddNotification{Notification: models.Notification{ID: 301, Kind: models.NotificationLike}})

	s, applied := Reduce(s, MarkNotificationRead{ID: 301})
	require.True(t, applied)
	assert.True(t, s.Notifications[0].Read)

	_, applied = Reduce(s, MarkNotificationRead{ID: 301})
	assert.False(t, applied)

	_, applied = Reduce(s, MarkNotificationRead{ID: 999})
	assert.False(t, applied)
}

func TestReduceOpenChatCreatesThenReuses(t *testing.T) {
	s := stateWithUser(1)
	friend := models.User{ID: 2, Name: "friend"}

	s, applied := Reduce(s, OpenChat{ChatID: 401, Counterpart: friend})
	require.True(t, applied)
	require.Len(t, s.Chats, 1)
	assert.Equal(t, int64(401), s.ActiveChatID)

	s, _ = Reduce(s, SetActiveChat{ChatID: 0})

	s, applied = Reduce(s, OpenChat{ChatID: 999, Counterpart: friend})
	require.True(t, applied)
	require.Len(t, s.Chats, 1, "existing chat must be reused")
	assert.Equal(t, int64(401), s.ActiveChatID)
}

func TestReduceSendMessageUpdatesUnread(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, OpenChat{ChatID: 401, Counterpart: models.User{ID: 2}})

	s, applied := Reduce(s, SendMessage{ChatID: 401, Message: models.Message{ID: 501, SenderID: 2, ReceiverID: 1}})
	require.True(t, applied)
	assert.Equal(t, 1, s.Chats[0].UnreadCount)

	// Messages sent by the current user never count as unread.
	s, _ = Reduce(s, SendMessage{ChatID: 401, Message: models.Message{ID: 502, SenderID: 1, ReceiverID: 2}})
	assert.Equal(t, 1, s.Chats[0].UnreadCount)
	require.Len(t, s.Chats[0].Messages, 2)
}

func TestReduceSendMessageUnknownChat(t *testing.T) {
	s := stateWithUser(1)

	_, applied := Reduce(s, SendMessage{ChatID: 999, Message: models.Message{ID: 501}})
	assert.False(t, applied)
}

func TestReduceMarkChatRead(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, OpenChat{ChatID: 401, Counterpart: models.User{ID: 2}})
	s, _ = Reduce(s, SendMessage{ChatID: 401, Message: models.Message{ID: 501, SenderID: 2, ReceiverID: 1}})
	require.Equal(t, 1, s.Chats[0].UnreadCount)

	s, applied := Reduce(s, MarkChatRead{ChatID: 401})
	require.True(t, applied)
	assert.Equal(t, 0, s.Chats[0].UnreadCount)
	assert.True(t, s.Chats[0].Messages[0].Read)

	_, applied = Reduce(s, MarkChatRead{ChatID: 401})
	assert.False(t, applied)
}

func TestReduceSetCurrentUserRecomputesUnread(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, OpenChat{ChatID: 401, Counterpart: models.User{ID: 2}})
	s, _ = Reduce(s, SendMessage{ChatID: 401, Message: models.Message{ID: 501, SenderID: 2, ReceiverID: 1}})
	require.Equal(t, 1, s.Chats[0].UnreadCount)

	// Logging out leaves no addressee, so nothing is unread.
	s, applied := Reduce(s, SetCurrentUser{User: nil})
	require.True(t, applied)
	assert.Nil(t, s.CurrentUser)
	assert.Equal(t, 0, s.Chats[0].UnreadCount)

	u := models.User{ID: 1}
	s, _ = Reduce(s, SetCurrentUser{User: &u})
	assert.Equal(t, 1, s.Chats[0].UnreadCount)
}

func TestReduceRegisterUserDuplicateNoOp(t *testing.T) {
	s := stateWithUser(1)

	_, applied := Reduce(s, RegisterUser{User: models.User{ID: 1, Name: "imposter"}})
	assert.False(t, applied)

	s, applied = Reduce(s, RegisterUser{User: models.User{ID: 2}})
	require.True(t, applied)
	assert.Len(t, s.Users, 2)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := stateWithUser(1)
	s, _ = Reduce(s, AddPost{Post: models.Post{ID: 101}})
	before := s.Clone()

	_, applied := Reduce(s, LikePost{PostID: 101, UserID: 1})
	require.True(t, applied)
	assert.Empty(t, cmp.Diff(before, s), "input state must stay untouched")
}

type unknownAction struct{}

func (unknownAction) isAction()    {}
func (unknownAction) name() string { return "unknown" }

func TestReduceUnknownActionNoOp(t *testing.T) {
	s := stateWithUser(1)

	next, applied := Reduce(s, unknownAction{})
	assert.False(t, applied)
	assert.Empty(t, cmp.Diff(s, next))
}
