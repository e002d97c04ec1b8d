// Package store defines the repository abstraction the hiring service reads and writes through.
// Backends (memory, postgres, sqlite) implement Collection for every entity kind so the query,
// stats and analytics packages never depend on where records live.
package store

import (
	"context"
	"errors"

	"github.com/jonathan/hireflow/internal/types"
)

// ErrDuplicateID is returned by Create when a record with the same id already exists.
var ErrDuplicateID = errors.New("duplicate id")

// Entity is anything stored in a Collection.
type Entity interface {
	GetID() string
}

// Collection is a keyed set of records of one kind.
//
// Get and Update return (nil, nil) when the id is unknown. List returns records in insertion order.
// Update applies fn to a copy of the stored record and persists it only when fn returns nil;
// implementations serialize concurrent updates of the same record.
type Collection[T Entity] interface {
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, id string, fn func(*T) error) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Kind names used as table names and record discriminators by the backends.
const (
	KindJobs                 = "jobs"
	KindApplications         = "applications"
	KindNotes                = "application_notes"
	KindInterviews           = "interviews"
	KindSlots                = "interview_slots"
	KindConversations        = "conversations"
	KindMessages             = "messages"
	KindNotifications        = "notifications"
	KindNotificationSettings = "notification_settings"
	KindProfiles             = "candidate_profiles"
	KindUsers                = "users"
)

// Kinds lists every collection kind.
var Kinds = []string{
	KindJobs,
	KindApplications,
	KindNotes,
	KindInterviews,
	KindSlots,
	KindConversations,
	KindMessages,
	KindNotifications,
	KindNotificationSettings,
	KindProfiles,
	KindUsers,
}

// Repositories bundles one collection per entity kind.
type Repositories struct {
	Jobs                 Collection[types.Job]
	Applications         Collection[types.Application]
	Notes                Collection[types.ApplicationNote]
	Interviews           Collection[types.Interview]
	Slots                Collection[types.InterviewSlot]
	Conversations        Collection[types.Conversation]
	Messages             Collection[types.Message]
	Notifications        Collection[types.Notification]
	NotificationSettings Collection[types.NotificationSettings]
	Profiles             Collection[types.CandidateProfile]
	Users                Collection[types.UserRecord]
}
