package store

import (
	"github.com/jinzhu/copier"

	"mostface/internal/models"
)

// State is the entity registry: one immutable aggregate of every collection
// plus the current-user and active-chat pointers. Consumers receive deep
// copies and must never mutate them in place; the dispatcher owns the
// canonical value.
type State struct {
	CurrentUser   *models.User             `json:"current_user,omitempty"`
	Users         []models.User            `json:"users"`
	Posts         []models.Post            `json:"posts"`
	Items         []models.MarketplaceItem `json:"items"`
	Notifications []models.Notification    `json:"notifications"`
	Chats         []models.Chat            `json:"chats"`
	ActiveChatID  int64                    `json:"active_chat_id,omitempty"`
}

// Clone returns a deep copy sharing no memory with the receiver.
func (s State) Clone() State {
	var out State
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on invalid (nil/unaddressable) destinations,
		// which cannot happen here.
		panic(err)
	}
	return out
}

func (s State) postIndex(id int64) int {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) chatIndex(id int64) int {
	for i := range s.Chats {
		if s.Chats[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) userIndex(id int64) int {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) currentUserID() int64 {
	if s.CurrentUser == nil {
		return 0
	}
	return s.CurrentUser.ID
}
