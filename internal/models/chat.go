package models

import "time"

// Chat is the current user's conversation with one counterpart. There is at
// most one chat per counterpart and its id is stable across reloads.
// UnreadCount always equals the number of messages with read=false addressed
// to the current user.
type Chat struct {
	ID            int64        `json:"id"`
	CounterpartID int64        `json:"counterpart_id"`
	Counterpart   UserSnapshot `json:"counterpart"`
	Messages      []Message    `json:"messages"`
	UnreadCount   int          `json:"unread_count"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Message belongs to exactly one chat. Either Text or Image is set.
// Ordering is insertion order.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Text       string    `json:"text,omitempty"`
	Image      string    `json:"image,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatEvent is broadcasted through websockets.
type ChatEvent struct {
	Type    string   `json:"type"`
	ChatID  int64    `json:"chat_id"`
	Message *Message `json:"message,omitempty"`
}

// NotificationEvent is pushed to notification websocket clients.
type NotificationEvent struct {
	Type         string        `json:"type"`
	Notification *Notification `json:"notification,omitempty"`
	UnreadCount  int           `json:"unread_count"`
}
