package types

import "time"

// MessageType classifies a message.
type MessageType string

const (
	MessageText            MessageType = "text"
	MessageFile            MessageType = "file"
	MessageInterviewInvite MessageType = "interview_invite"
	MessageStatusUpdate    MessageType = "status_update"
	MessageSystem          MessageType = "system"
)

// MessageStatus is the delivery state of a message. It only moves forward.
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// Rank orders delivery states so that a status never regresses.
func (s MessageStatus) Rank() int {
	switch s {
	case MessageDelivered:
		return 1
	case MessageRead:
		return 2
	default:
		return 0
	}
}

// ConversationType is what a conversation is about.
type ConversationType string

const (
	ConversationApplication ConversationType = "application"
	ConversationInterview   ConversationType = "interview"
	ConversationGeneral     ConversationType = "general"
)

// ConversationTypes lists every conversation type.
var ConversationTypes = []ConversationType{ConversationApplication, ConversationInterview, ConversationGeneral}

// Valid reports whether t is a known conversation type.
func (t ConversationType) Valid() bool { return contains(ConversationTypes, t) }

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationMessage      NotificationType = "message"
	NotificationInterview    NotificationType = "interview"
	NotificationStatusUpdate NotificationType = "status_update"
	NotificationSystem       NotificationType = "system"
)

// Message is a single entry in a conversation.
type Message struct {
	ID             string              `json:"id"`
	ConversationID string              `json:"conversation_id"`
	SenderID       string              `json:"sender_id"`
	SenderName     string              `json:"sender_name"`
	SenderRole     UserRole            `json:"sender_role"`
	RecipientID    string              `json:"recipient_id"`
	RecipientName  string              `json:"recipient_name"`
	Type           MessageType         `json:"type"`
	Content        string              `json:"content"`
	Attachments    []MessageAttachment `json:"attachments,omitempty"`
	Status         MessageStatus       `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	ReadAt         *time.Time          `json:"read_at,omitempty"`
}

// GetID returns the message identifier.
func (m Message) GetID() string { return m.ID }

// MessageAttachment is a file referenced by a message.
type MessageAttachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Participant is a member of a conversation.
type Participant struct {
	UserID     string     `json:"user_id"`
	UserName   string     `json:"user_name"`
	UserRole   UserRole   `json:"user_role"`
	JoinedAt   time.Time  `json:"joined_at"`
	LastReadAt *time.Time `json:"last_read_at,omitempty"`
}

// Conversation groups messages between two or more participants.
type Conversation struct {
	ID            string           `json:"id"`
	Type          ConversationType `json:"type"`
	ApplicationID string           `json:"application_id,omitempty"`
	InterviewID   string           `json:"interview_id,omitempty"`
	JobID         string           `json:"job_id,omitempty"`
	JobTitle      string           `json:"job_title,omitempty"`
	Participants  []Participant    `json:"participants"`
	LastMessage   *Message         `json:"last_message,omitempty"`
	UnreadCount   int              `json:"unread_count"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// GetID returns the conversation identifier.
func (c Conversation) GetID() string { return c.ID }

// HasParticipant reports whether userID takes part in the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Notification is an in-app alert for a user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	ActionURL string           `json:"action_url,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// GetID returns the notification identifier.
func (n Notification) GetID() string { return n.ID }

// NotificationSettings are a user's notification switches, keyed by user.
type NotificationSettings struct {
	UserID               string `json:"user_id"`
	EmailNotifications   bool   `json:"email_notifications"`
	PushNotifications    bool   `json:"push_notifications"`
	MessageNotifications bool   `json:"message_notifications"`
	InterviewReminders   bool   `json:"interview_reminders"`
	StatusUpdates        bool   `json:"status_updates"`
	WeeklyDigest         bool   `json:"weekly_digest"`
}

// GetID returns the owning user identifier.
func (s NotificationSettings) GetID() string { return s.UserID }

// DefaultNotificationSettings returns the settings a user starts with.
func DefaultNotificationSettings(userID string) NotificationSettings {
	return NotificationSettings{
		UserID:               userID,
		EmailNotifications:   true,
		PushNotifications:    true,
		MessageNotifications: true,
		InterviewReminders:   true,
		StatusUpdates:        true,
	}
}

// CommunicationFilters holds the optional conversation search criteria.
type CommunicationFilters struct {
	Search        string           `json:"search,omitempty"`
	Type          ConversationType `json:"type,omitempty"`
	UnreadOnly    bool             `json:"unread_only,omitempty"`
	ParticipantID string           `json:"participant_id,omitempty"`
}

// MessageParty identifies the sender or recipient of a message.
type MessageParty struct {
	ID   string   `json:"id" validate:"required"`
	Name string   `json:"name" validate:"required"`
	Role UserRole `json:"role,omitempty"`
}

// SendMessageRequest is the payload for posting a message to a conversation.
type SendMessageRequest struct {
	Sender    MessageParty `json:"sender"`
	Recipient MessageParty `json:"recipient"`
	Content   string       `json:"content" validate:"required"`
	Type      MessageType  `json:"type,omitempty" validate:"omitempty,oneof=text file interview_invite status_update system"`
}

// Validate validates the SendMessageRequest using the validator.
func (r *SendMessageRequest) Validate() error {
	return validate.Struct(r)
}

// ParticipantInput names a user joining a new conversation.
type ParticipantInput struct {
	UserID   string   `json:"user_id" validate:"required"`
	UserName string   `json:"user_name" validate:"required"`
	UserRole UserRole `json:"user_role" validate:"required,oneof=admin hr_manager employer job_seeker"`
}

// ConversationInput is the payload for opening a conversation.
type ConversationInput struct {
	Type          ConversationType   `json:"type" validate:"required,oneof=application interview general"`
	ApplicationID string             `json:"application_id,omitempty"`
	InterviewID   string             `json:"interview_id,omitempty"`
	JobID         string             `json:"job_id,omitempty"`
	JobTitle      string             `json:"job_title,omitempty"`
	Participants  []ParticipantInput `json:"participants" validate:"dive"`
}

// Validate validates the ConversationInput and requires at least two participants.
func (in *ConversationInput) Validate() error {
	if len(in.Participants) < 2 {
		return &ErrInvalidRange{Field: "participants", Message: "at least two participants are required"}
	}
	return validate.Struct(in)
}
