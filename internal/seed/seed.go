// Package seed loads fixture data into a store. The embedded fixture holds a small demo
// hiring pipeline; other fixtures can be supplied as long as they satisfy the seed schema.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/hireflow/internal/schemas"
	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
	seedschema "github.com/jonathan/hireflow/schemas"
)

//go:embed fixture.json
var defaultFixture []byte

// Fixture is a document of records keyed by collection.
type Fixture struct {
	Users                []User                       `json:"users"`
	Jobs                 []types.Job                  `json:"jobs"`
	Applications         []types.Application          `json:"applications"`
	Notes                []types.ApplicationNote      `json:"application_notes"`
	Interviews           []types.Interview            `json:"interviews"`
	Slots                []types.InterviewSlot        `json:"interview_slots"`
	Conversations        []types.Conversation         `json:"conversations"`
	Messages             []types.Message              `json:"messages"`
	Notifications        []types.Notification         `json:"notifications"`
	NotificationSettings []types.NotificationSettings `json:"notification_settings,omitempty"`
	Profiles             []types.CandidateProfile     `json:"candidate_profiles"`
}

// User is a fixture account with a plain-text password that is hashed on load.
type User struct {
	types.User
	Password string `json:"password"`
}

// Summary counts the records written and skipped per collection kind.
type Summary struct {
	Created map[string]int
	Skipped map[string]int
}

// Total is the number of records written.
func (s Summary) Total() int {
	n := 0
	for _, c := range s.Created {
		n += c
	}
	return n
}

var compileSchema = sync.OnceValues(func() (*schemas.Validator, error) {
	return schemas.Compile("seed", seedschema.Seed)
})

// Default returns the embedded demo fixture.
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

// Parse validates data against the seed schema and decodes it.
func Parse(data []byte) (*Fixture, error) {
	v, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(data); err != nil {
		return nil, err
	}

	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &fx, nil
}

// HashFunc turns a plain-text password into its stored hash.
type HashFunc func(password string) (string, error)

// Load writes every fixture record into repos. Records whose id already exists are left
// untouched, so loading the same fixture twice is harmless.
func Load(ctx context.Context, repos *store.Repositories, fx *Fixture, hash HashFunc) (Summary, error) {
	sum := Summary{Created: map[string]int{}, Skipped: map[string]int{}}

	users := make([]types.UserRecord, 0, len(fx.Users))
	now := time.Now().UTC()
	for _, u := range fx.Users {
		hashed, err := hash(u.Password)
		if err != nil {
			return sum, fmt.Errorf("failed to hash password for user %s: %w", u.ID, err)
		}
		record := types.UserRecord{User: u.User, PasswordHash: hashed}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = now
			record.UpdatedAt = now
		}
		users = append(users, record)
	}

	steps := []func() error{
		func() error { return insert(ctx, repos.Users, store.KindUsers, users, &sum) },
		func() error { return insert(ctx, repos.Jobs, store.KindJobs, fx.Jobs, &sum) },
		func() error { return insert(ctx, repos.Applications, store.KindApplications, fx.Applications, &sum) },
		func() error { return insert(ctx, repos.Notes, store.KindNotes, fx.Notes, &sum) },
		func() error { return insert(ctx, repos.Interviews, store.KindInterviews, fx.Interviews, &sum) },
		func() error { return insert(ctx, repos.Slots, store.KindSlots, fx.Slots, &sum) },
		func() error { return insert(ctx, repos.Conversations, store.KindConversations, fx.Conversations, &sum) },
		func() error { return insert(ctx, repos.Messages, store.KindMessages, fx.Messages, &sum) },
		func() error { return insert(ctx, repos.Notifications, store.KindNotifications, fx.Notifications, &sum) },
		func() error {
			return insert(ctx, repos.NotificationSettings, store.KindNotificationSettings, fx.NotificationSettings, &sum)
		},
		func() error { return insert(ctx, repos.Profiles, store.KindProfiles, fx.Profiles, &sum) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func insert[T store.Entity](ctx context.Context, c store.Collection[T], kind string, items []T, sum *Summary) error {
	for _, item := range items {
		err := c.Create(ctx, item)
		if errors.Is(err, store.ErrDuplicateID) {
			sum.Skipped[kind]++
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed %s %s: %w", kind, item.GetID(), err)
		}
		sum.Created[kind]++
	}
	return nil
}
