package views

import (
	"mostface/internal/models"
	"mostface/internal/store"
)

// ChatWithCounterpart resolves the chat for a counterpart user. ok=false
// signals "not found" so the caller can dispatch OpenChat.
func ChatWithCounterpart(s store.State, counterpartID int64) (models.Chat, bool) {
	for _, c := range s.Chats {
		if c.CounterpartID == counterpartID {
			return c, true
		}
	}
	return models.Chat{}, false
}

// ChatByID resolves a chat by id.
func ChatByID(s store.State, chatID int64) (models.Chat, bool) {
	for _, c := range s.Chats {
		if c.ID == chatID {
			return c, true
		}
	}
	return models.Chat{}, false
}

// ActiveChat resolves the active-chat pointer; ok=false when the window is
// closed.
func ActiveChat(s store.State) (models.Chat, bool) {
	if s.ActiveChatID == 0 {
		return models.Chat{}, false
	}
	return ChatByID(s, s.ActiveChatID)
}

// UserByID looks up a user in the directory.
func UserByID(s store.State, id int64) (models.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmail looks up a user for the demo login flow.
func UserByEmail(s store.State, email string) (models.User, bool) {
	for _, u := range s.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}
