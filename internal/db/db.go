// Package db provides the PostgreSQL backend for the hiring store.
// Each entity kind lives in its own table holding the record as JSONB.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migrate creates one table per entity kind if it does not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	for _, kind := range store.Kinds {
		if _, err := db.pool.Exec(ctx, createTableSQL(kind)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", kind, err)
		}
	}
	return nil
}

// NewRepositories builds Repositories whose collections are tables in db
func (db *DB) NewRepositories() *store.Repositories {
	return &store.Repositories{
		Jobs:                 NewTable[types.Job](db, store.KindJobs),
		Applications:         NewTable[types.Application](db, store.KindApplications),
		Notes:                NewTable[types.ApplicationNote](db, store.KindNotes),
		Interviews:           NewTable[types.Interview](db, store.KindInterviews),
		Slots:                NewTable[types.InterviewSlot](db, store.KindSlots),
		Conversations:        NewTable[types.Conversation](db, store.KindConversations),
		Messages:             NewTable[types.Message](db, store.KindMessages),
		Notifications:        NewTable[types.Notification](db, store.KindNotifications),
		NotificationSettings: NewTable[types.NotificationSettings](db, store.KindNotificationSettings),
		Profiles:             NewTable[types.CandidateProfile](db, store.KindProfiles),
		Users:                NewTable[types.UserRecord](db, store.KindUsers),
	}
}

func createTableSQL(kind string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		seq BIGSERIAL,
		body JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, kind)
}
