package models

import "time"

// User is the canonical identity record. Ids are never reused.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ProfileName    string    `json:"profile_name,omitempty"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Friends        []int64   `json:"friends"`
	JoinedAt       time.Time `json:"joined_at"`

	// Password is a plaintext development stub used by the demo login flow.
	// It is not a security boundary.
	Password string `json:"password,omitempty"`
}

// UserSnapshot is an as-of copy of a user's display fields, frozen at the
// moment an owning entity is created. It is never refreshed when the
// canonical User changes.
type UserSnapshot struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ProfileName    string `json:"profile_name,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// Snapshot freezes the user's display fields.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:             u.ID,
		Name:           u.Name,
		ProfileName:    u.ProfileName,
		ProfilePicture: u.ProfilePicture,
	}
}
