package store

import "mostface/internal/models"

// Action is a closed set of mutation requests. The sealed marker method keeps
// the variant set exhaustively known to the reducer; there are no string tags
// to mistype.
type Action interface {
	isAction()
	name() string
}

// SetCurrentUser replaces the session owner. A nil User means logout.
type SetCurrentUser struct {
	User *models.User
}

// RegisterUser appends a user to the directory. No-op when the id is taken.
type RegisterUser struct {
	User models.User
}

// AddPost inserts a post at the head of the feed collection. The caller
// assigns the id via the store's generator before dispatching.
type AddPost struct {
	Post models.Post
}

// LikePost appends a user to a post's ordered like-set, once.
type LikePost struct {
	PostID int64
	UserID int64
}

// AddComment appends a comment to a post.
type AddComment struct {
	PostID  int64
	Comment models.Comment
}

// AddMarketplaceItem inserts a listing. Preconditions (non-empty title,
// price >= 0, image present) are the caller's responsibility; the store does
// not validate.
type AddMarketplaceItem struct {
	Item models.MarketplaceItem
}

// AddNotification inserts a notification for the current user.
type AddNotification struct {
	Notification models.Notification
}

// MarkNotificationRead flips a notification's read flag. Idempotent; unknown
// ids are a detectable no-op.
type MarkNotificationRead struct {
	ID int64
}

// OpenChat ensures a chat with the counterpart exists and makes it active.
// ChatID is used only when a new chat must be created.
type OpenChat struct {
	ChatID      int64
	Counterpart models.User
}

// SetActiveChat moves the active-chat pointer. Zero closes the chat window.
type SetActiveChat struct {
	ChatID int64
}

// SendMessage appends a message to an existing chat.
type SendMessage struct {
	ChatID  int64
	Message models.Message
}

// MarkChatRead marks the chat's messages addressed to the current user as
// read, bringing its unread counter to zero.
type MarkChatRead struct {
	ChatID int64
}

func (SetCurrentUser) isAction()       {}
func (RegisterUser) isAction()         {}
func (AddPost) isAction()              {}
func (LikePost) isAction()             {}
func (AddComment) isAction()           {}
func (AddMarketplaceItem) isAction()   {}
func (AddNotification) isAction()      {}
func (MarkNotificationRead) isAction() {}
func (OpenChat) isAction()             {}
func (SetActiveChat) isAction()        {}
func (SendMessage) isAction()          {}
func (MarkChatRead) isAction()         {}

func (SetCurrentUser) name() string       { return "set_current_user" }
func (RegisterUser) name() string         { return "register_user" }
func (AddPost) name() string              { return "add_post" }
func (LikePost) name() string             { return "like_post" }
func (AddComment) name() string           { return "add_comment" }
func (AddMarketplaceItem) name() string   { return "add_marketplace_item" }
func (AddNotification) name() string      { return "add_notification" }
func (MarkNotificationRead) name() string { return "mark_notification_read" }
func (OpenChat) name() string             { return "open_chat" }
func (SetActiveChat) name() string        { return "set_active_chat" }
func (SendMessage) name() string          { return "send_message" }
func (MarkChatRead) name() string         { return "mark_chat_read" }
