package query

import "github.com/jonathan/hireflow/internal/types"

// MatchConversation reports whether conv satisfies every criterion set in f.
func MatchConversation(conv *types.Conversation, f types.CommunicationFilters) bool {
	if f.Search != "" {
		names := make([]string, 0, len(conv.Participants)+1)
		names = append(names, conv.JobTitle)
		for _, p := range conv.Participants {
			names = append(names, p.UserName)
		}
		if !anyContainsFold(f.Search, names...) {
			return false
		}
	}
	if f.Type != "" && conv.Type != f.Type {
		return false
	}
	if f.UnreadOnly && conv.UnreadCount == 0 {
		return false
	}
	if f.ParticipantID != "" && !conv.HasParticipant(f.ParticipantID) {
		return false
	}
	return true
}

// Conversations returns the conversations matching f, most recently updated first.
func Conversations(convs []types.Conversation, f types.CommunicationFilters) []types.Conversation {
	return selectSorted(convs,
		func(c *types.Conversation) bool { return MatchConversation(c, f) },
		func(a, b *types.Conversation) bool { return a.UpdatedAt.After(b.UpdatedAt) },
	)
}

// Messages returns the messages of one conversation, oldest first.
func Messages(msgs []types.Message, conversationID string) []types.Message {
	return selectSorted(msgs,
		func(m *types.Message) bool { return m.ConversationID == conversationID },
		func(a, b *types.Message) bool { return a.CreatedAt.Before(b.CreatedAt) },
	)
}

// Notifications returns a user's notifications, newest first.
func Notifications(items []types.Notification, userID string) []types.Notification {
	return selectSorted(items,
		func(n *types.Notification) bool { return n.UserID == userID },
		func(a, b *types.Notification) bool { return a.CreatedAt.After(b.CreatedAt) },
	)
}
