package hiring

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/hireflow/internal/query"
	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
)

// ListConversations returns the conversations matching filters, most recently active first.
func (s *Service) ListConversations(ctx context.Context, filters types.CommunicationFilters) ([]types.Conversation, error) {
	convs, err := s.repos.Conversations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return query.Conversations(convs, filters), nil
}

// GetConversation returns the conversation with id, or nil when there is none.
func (s *Service) GetConversation(ctx context.Context, id string) (*types.Conversation, error) {
	conv, err := s.repos.Conversations.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// CreateConversation opens a conversation between two or more participants.
func (s *Service) CreateConversation(ctx context.Context, in types.ConversationInput) (*types.Conversation, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}

	now := s.clock()
	participants := make([]types.Participant, 0, len(in.Participants))
	for _, p := range in.Participants {
		participants = append(participants, types.Participant{
			UserID:   p.UserID,
			UserName: p.UserName,
			UserRole: p.UserRole,
			JoinedAt: now,
		})
	}

	conv := types.Conversation{
		ID:            s.newID(),
		Type:          in.Type,
		ApplicationID: in.ApplicationID,
		InterviewID:   in.InterviewID,
		JobID:         in.JobID,
		JobTitle:      in.JobTitle,
		Participants:  participants,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repos.Conversations.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &conv, nil
}

// ListMessages returns the messages of a conversation in the order they were sent.
func (s *Service) ListMessages(ctx context.Context, conversationID string) ([]types.Message, error) {
	msgs, err := s.repos.Messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return query.Messages(msgs, conversationID), nil
}

// SendMessage posts a message to the conversation with id. The conversation's last message,
// activity time and unread count are refreshed, and the recipient is notified unless they
// turned message notifications off. It returns nil when the conversation does not exist.
//
// The message is stored before the conversation is touched, and removed again if the
// conversation cannot be updated, so a conversation never points at a missing message.
func (s *Service) SendMessage(ctx context.Context, conversationID string, req types.SendMessageRequest) (*types.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, asValidation(err)
	}

	existing, err := s.repos.Conversations.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	now := s.clock()
	msg := types.Message{
		ID:             s.newID(),
		ConversationID: existing.ID,
		SenderID:       req.Sender.ID,
		SenderName:     req.Sender.Name,
		SenderRole:     req.Sender.Role,
		RecipientID:    req.Recipient.ID,
		RecipientName:  req.Recipient.Name,
		Type:           req.Type,
		Content:        req.Content,
		Status:         types.MessageSent,
		CreatedAt:      now,
	}
	if msg.Type == "" {
		msg.Type = types.MessageText
	}
	if err := s.repos.Messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	conv, err := s.repos.Conversations.Update(ctx, conversationID, func(conv *types.Conversation) error {
		last := msg
		conv.LastMessage = &last
		conv.UpdatedAt = now
		conv.UnreadCount++
		return nil
	})
	if err != nil || conv == nil {
		if _, delErr := s.repos.Messages.Delete(ctx, msg.ID); delErr != nil {
			log.WithError(delErr).WithField("message_id", msg.ID).Error("[hiring] failed to remove orphaned message")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to update conversation: %w", err)
		}
		return nil, nil
	}

	settings, err := s.GetNotificationSettings(ctx, msg.RecipientID)
	if err != nil {
		return nil, err
	}
	if settings.MessageNotifications {
		_, err := s.notify(ctx, types.Notification{
			UserID:    msg.RecipientID,
			Type:      types.NotificationMessage,
			Title:     fmt.Sprintf("New message from %s", msg.SenderName),
			Content:   msg.Content,
			ActionURL: "/conversations/" + conv.ID,
		})
		if err != nil {
			return nil, err
		}
	}
	return &msg, nil
}

// MarkMessageRead moves the message with id to the read status. A message that is already
// read keeps its original read time. It returns nil when the message does not exist.
func (s *Service) MarkMessageRead(ctx context.Context, id string) (*types.Message, error) {
	msg, err := s.repos.Messages.Update(ctx, id, func(msg *types.Message) error {
		if msg.Status.Rank() >= types.MessageRead.Rank() {
			return nil
		}
		now := s.clock()
		msg.Status = types.MessageRead
		msg.ReadAt = &now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}
	return msg, nil
}

// MarkConversationRead clears the unread count of a conversation and records when userID
// last read it. It returns nil when the conversation does not exist.
func (s *Service) MarkConversationRead(ctx context.Context, conversationID, userID string) (*types.Conversation, error) {
	conv, err := s.repos.Conversations.Update(ctx, conversationID, func(conv *types.Conversation) error {
		now := s.clock()
		conv.UnreadCount = 0
		for i := range conv.Participants {
			if conv.Participants[i].UserID == userID {
				conv.Participants[i].LastReadAt = &now
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return conv, nil
}

// ListNotifications returns the notifications of a user, newest first.
func (s *Service) ListNotifications(ctx context.Context, userID string) ([]types.Notification, error) {
	items, err := s.repos.Notifications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return query.Notifications(items, userID), nil
}

// GetNotification returns the notification with id, or nil when it does not exist.
func (s *Service) GetNotification(ctx context.Context, id string) (*types.Notification, error) {
	n, err := s.repos.Notifications.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

// MarkNotificationRead flags the notification with id as read. It returns nil when the
// notification does not exist.
func (s *Service) MarkNotificationRead(ctx context.Context, id string) (*types.Notification, error) {
	n, err := s.repos.Notifications.Update(ctx, id, func(n *types.Notification) error {
		n.IsRead = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return n, nil
}

// GetNotificationSettings returns the stored settings of a user, or the defaults when the
// user never saved any.
func (s *Service) GetNotificationSettings(ctx context.Context, userID string) (types.NotificationSettings, error) {
	settings, err := s.repos.NotificationSettings.Get(ctx, userID)
	if err != nil {
		return types.NotificationSettings{}, fmt.Errorf("failed to get notification settings: %w", err)
	}
	if settings == nil {
		return types.DefaultNotificationSettings(userID), nil
	}
	return *settings, nil
}

// UpdateNotificationSettings stores the settings of a user.
func (s *Service) UpdateNotificationSettings(ctx context.Context, userID string, settings types.NotificationSettings) (types.NotificationSettings, error) {
	settings.UserID = userID

	replace := func(stored *types.NotificationSettings) error {
		*stored = settings
		return nil
	}
	updated, err := s.repos.NotificationSettings.Update(ctx, userID, replace)
	if err != nil {
		return types.NotificationSettings{}, fmt.Errorf("failed to update notification settings: %w", err)
	}
	if updated != nil {
		return *updated, nil
	}

	err = s.repos.NotificationSettings.Create(ctx, settings)
	if errors.Is(err, store.ErrDuplicateID) {
		// created concurrently
		if _, err = s.repos.NotificationSettings.Update(ctx, userID, replace); err == nil {
			return settings, nil
		}
	}
	if err != nil {
		return types.NotificationSettings{}, fmt.Errorf("failed to create notification settings: %w", err)
	}
	return settings, nil
}

func (s *Service) notify(ctx context.Context, n types.Notification) (*types.Notification, error) {
	n.ID = s.newID()
	n.CreatedAt = s.clock()
	if err := s.repos.Notifications.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &n, nil
}
