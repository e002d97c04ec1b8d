// Package sqlstore provides a SQLite-backed store.Collection built on GORM.
// Every entity kind shares one records table keyed by (kind, id) with the record body stored as JSON.
package sqlstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
)

// record is the row layout shared by all kinds.
type record struct {
	Kind      string `gorm:"primaryKey;size:64"`
	ID        string `gorm:"primaryKey;size:191"`
	Seq       int64  `gorm:"index;not null"`
	Body      []byte `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name regardless of naming strategy.
func (record) TableName() string { return "records" }

// Open opens (or creates) the SQLite database at path and migrates the records table.
// Use ":memory:" for an ephemeral database.
func Open(ctx context.Context, path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// SQLite allows a single writer; in-memory databases are also per-connection.
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the records table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("failed to migrate records table: %w", err)
	}
	return nil
}

// NewRepositories builds Repositories whose collections all live in db.
func NewRepositories(db *gorm.DB) *store.Repositories {
	return &store.Repositories{
		Jobs:                 NewCollection[types.Job](db, store.KindJobs),
		Applications:         NewCollection[types.Application](db, store.KindApplications),
		Notes:                NewCollection[types.ApplicationNote](db, store.KindNotes),
		Interviews:           NewCollection[types.Interview](db, store.KindInterviews),
		Slots:                NewCollection[types.InterviewSlot](db, store.KindSlots),
		Conversations:        NewCollection[types.Conversation](db, store.KindConversations),
		Messages:             NewCollection[types.Message](db, store.KindMessages),
		Notifications:        NewCollection[types.Notification](db, store.KindNotifications),
		NotificationSettings: NewCollection[types.NotificationSettings](db, store.KindNotificationSettings),
		Profiles:             NewCollection[types.CandidateProfile](db, store.KindProfiles),
		Users:                NewCollection[types.UserRecord](db, store.KindUsers),
	}
}

// Collection stores records of one kind in the shared records table.
type Collection[T store.Entity] struct {
	db   *gorm.DB
	kind string
}

var _ store.Collection[types.Job] = (*Collection[types.Job])(nil)

// NewCollection creates a collection for kind.
func NewCollection[T store.Entity](db *gorm.DB, kind string) *Collection[T] {
	return &Collection[T]{db: db, kind: kind}
}

// Get returns the record with the given id, or nil if absent.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var rec record
	err := c.db.WithContext(ctx).Where("kind = ? AND id = ?", c.kind, id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", c.kind, id, err)
	}
	return decode[T](rec.Body)
}

// List returns every record of the kind in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var rows []record
	if err := c.db.WithContext(ctx).Where("kind = ?", c.kind).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.kind, err)
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := decode[T](row.Body)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

// Create inserts a new record. It fails with store.ErrDuplicateID if the id is taken.
func (c *Collection[T]) Create(ctx context.Context, item T) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.kind, err)
	}
	id := item.GetID()

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&record{}).Where("kind = ? AND id = ?", c.kind, id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check %s %s: %w", c.kind, id, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", store.ErrDuplicateID, id)
		}

		var maxSeq int64
		if err := tx.Model(&record{}).Where("kind = ?", c.kind).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
			return fmt.Errorf("failed to read sequence for %s: %w", c.kind, err)
		}

		rec := record{Kind: c.kind, ID: id, Seq: maxSeq + 1, Body: body}
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to insert %s %s: %w", c.kind, id, err)
		}
		return nil
	})
}

// Update applies fn to the stored record inside a transaction.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	var result *T
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec record
		err := tx.Where("kind = ? AND id = ?", c.kind, id).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load %s %s: %w", c.kind, id, err)
		}

		item, err := decode[T](rec.Body)
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
		body, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", c.kind, err)
		}

		err = tx.Model(&record{}).
			Where("kind = ? AND id = ?", c.kind, id).
			Updates(map[string]any{"body": body, "updated_at": time.Now()}).Error
		if err != nil {
			return fmt.Errorf("failed to update %s %s: %w", c.kind, id, err)
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the record and reports whether it existed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	res := c.db.WithContext(ctx).Where("kind = ? AND id = ?", c.kind, id).Delete(&record{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete %s %s: %w", c.kind, id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func decode[T any](body []byte) (*T, error) {
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &item, nil
}
