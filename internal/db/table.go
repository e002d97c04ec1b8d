package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/types"
)

const uniqueViolation = "23505"

// Table is a store.Collection persisted in a single JSONB table.
// The table name is always one of store.Kinds, never caller input.
type Table[T store.Entity] struct {
	db   *DB
	name string
}

var _ store.Collection[types.Job] = (*Table[types.Job])(nil)

// NewTable creates a collection over the named table
func NewTable[T store.Entity](db *DB, name string) *Table[T] {
	return &Table[T]{db: db, name: name}
}

// Get retrieves a record by id, returns nil if not found
func (t *Table[T]) Get(ctx context.Context, id string) (*T, error) {
	var body []byte
	err := t.db.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT body FROM %s WHERE id = $1`, t.name), id,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", t.name, err)
	}
	return decode[T](body)
}

// List retrieves all records in insertion order
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	rows, err := t.db.pool.Query(ctx, fmt.Sprintf(`SELECT body FROM %s ORDER BY seq ASC`, t.name))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		item, err := decode[T](body)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", t.name, err)
	}
	return items, nil
}

// Create inserts a new record
func (t *Table[T]) Create(ctx context.Context, item T) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", t.name, err)
	}

	_, err = t.db.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, body) VALUES ($1, $2)`, t.name),
		item.GetID(), body,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", store.ErrDuplicateID, item.GetID())
	}
	if err != nil {
		return fmt.Errorf("failed to insert %s: %w", t.name, err)
	}
	return nil
}

// Update locks the row, applies fn and writes the result back in one transaction
func (t *Table[T]) Update(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	tx, err := t.db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var body []byte
	err = tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT body FROM %s WHERE id = $1 FOR UPDATE`, t.name), id,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", t.name, err)
	}

	item, err := decode[T](body)
	if err != nil {
		return nil, err
	}
	if err := fn(item); err != nil {
		return nil, err
	}

	body, err = json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", t.name, err)
	}
	if _, err := tx.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET body = $1, updated_at = NOW() WHERE id = $2`, t.name),
		body, id,
	); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", t.name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return item, nil
}

// Delete removes a record and reports whether it existed
func (t *Table[T]) Delete(ctx context.Context, id string) (bool, error) {
	result, err := t.db.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", t.name, err)
	}
	return result.RowsAffected() > 0, nil
}

func decode[T any](body []byte) (*T, error) {
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &item, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
