package views

import "mostface/internal/store"

// UnreadNotifications is the global badge: notifications with read=false.
func UnreadNotifications(s store.State) int {
	count := 0
	for _, n := range s.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// ChatUnread reports a chat's unread counter; ok is false for unknown ids.
func ChatUnread(s store.State, chatID int64) (int, bool) {
	for _, c := range s.Chats {
		if c.ID == chatID {
			return c.UnreadCount, true
		}
	}
	return 0, false
}

// TotalChatUnread sums unread counters across all chats for the messenger
// badge.
func TotalChatUnread(s store.State) int {
	total := 0
	for _, c := range s.Chats {
		total += c.UnreadCount
	}
	return total
}
