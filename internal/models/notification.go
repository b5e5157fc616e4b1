package models

import "time"

// NotificationKind classifies notifications for badge rendering.
type NotificationKind string

const (
	NotificationLike          NotificationKind = "like"
	NotificationComment       NotificationKind = "comment"
	NotificationFriendRequest NotificationKind = "friend_request"
	NotificationOther         NotificationKind = "other"
)

// Notification targets the current user. Read transitions one way only,
// false to true.
type Notification struct {
	ID        int64            `json:"id"`
	Kind      NotificationKind `json:"kind"`
	SenderID  int64            `json:"sender_id"`
	Sender    UserSnapshot     `json:"sender"`
	Message   string           `json:"message,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
