package store

import "mostface/internal/models"

// Reduce is the sole mutation path of the registry: pure, total, and
// I/O-free. It returns the next state and an applied flag. Actions that miss
// their referent (unknown chat or notification id) and unrecognized variants
// leave the state untouched and report applied=false instead of raising an
// error.
func Reduce(s State, a Action) (State, bool) {
	next := s.Clone()

	switch act := a.(type) {
	case SetCurrentUser:
		if act.User != nil {
			u := *act.User
			next.CurrentUser = &u
		} else {
			next.CurrentUser = nil
		}
		// The unread invariant is defined relative to the current user.
		for i := range next.Chats {
			next.Chats[i].UnreadCount = unreadCount(next.Chats[i], next.currentUserID())
		}
		return next, true

	case RegisterUser:
		if next.userIndex(act.User.ID) >= 0 {
			return s, false
		}
		next.Users = append(next.Users, act.User)
		return next, true

	case AddPost:
		if next.postIndex(act.Post.ID) >= 0 {
			return s, false
		}
		post := act.Post
		if post.Likes == nil {
			post.Likes = []int64{}
		}
		if post.Comments == nil {
			post.Comments = []models.Comment{}
		}
		next.Posts = append([]models.Post{post}, next.Posts...)
		return next, true

	case LikePost:
		i := next.postIndex(act.PostID)
		if i < 0 {
			return s, false
		}
		for _, id := range next.Posts[i].Likes {
			if id == act.UserID {
				return s, false
			}
		}
		next.Posts[i].Likes = append(next.Posts[i].Likes, act.UserID)
		return next, true

	case AddComment:
		i := next.postIndex(act.PostID)
		if i < 0 {
			return s, false
		}
		next.Posts[i].Comments = append(next.Posts[i].Comments, act.Comment)
		return next, true

	case AddMarketplaceItem:
		for _, item := range next.Items {
			if item.ID == act.Item.ID {
				return s, false
			}
		}
		next.Items = append([]models.MarketplaceItem{act.Item}, next.Items...)
		return next, true

	case AddNotification:
		for _, n := range next.Notifications {
			if n.ID == act.Notification.ID {
				return s, false
			}
		}
		next.Notifications = append([]models.Notification{act.Notification}, next.Notifications...)
		return next, true

	case MarkNotificationRead:
		for i := range next.Notifications {
			if next.Notifications[i].ID == act.ID {
				if next.Notifications[i].Read {
					return s, false
				}
				next.Notifications[i].Read = true
				return next, true
			}
		}
		return s, false

	case OpenChat:
		for i := range next.Chats {
			if next.Chats[i].CounterpartID == act.Counterpart.ID {
				next.ActiveChatID = next.Chats[i].ID
				return next, true
			}
		}
		chat := models.Chat{
			ID:            act.ChatID,
			CounterpartID: act.Counterpart.ID,
			Counterpart:   act.Counterpart.Snapshot(),
			Messages:      []models.Message{},
			CreatedAt:     Timestamp(act.ChatID),
		}
		next.Chats = append(next.Chats, chat)
		next.ActiveChatID = chat.ID
		return next, true

	case SetActiveChat:
		next.ActiveChatID = act.ChatID
		return next, true

	case SendMessage:
		i := next.chatIndex(act.ChatID)
		if i < 0 {
			return s, false
		}
		next.Chats[i].Messages = append(next.Chats[i].Messages, act.Message)
		next.Chats[i].UnreadCount = unreadCount(next.Chats[i], next.currentUserID())
		return next, true

	case MarkChatRead:
		i := next.chatIndex(act.ChatID)
		if i < 0 {
			return s, false
		}
		changed := false
		userID := next.currentUserID()
		for m := range next.Chats[i].Messages {
			msg := &next.Chats[i].Messages[m]
			if msg.ReceiverID == userID && !msg.Read {
				msg.Read = true
				changed = true
			}
		}
		if !changed && next.Chats[i].UnreadCount == 0 {
			return s, false
		}
		next.Chats[i].UnreadCount = 0
		return next, true

	default:
		return s, false
	}
}

func unreadCount(c models.Chat, userID int64) int {
	count := 0
	for _, m := range c.Messages {
		if !m.Read && m.ReceiverID == userID {
			count++
		}
	}
	return count
}
