package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/hireflow/internal/types"
)

// MemoryCollection is an in-process Collection guarded by a read/write mutex.
// Records are copied on the way in and out so callers never share state with the store.
type MemoryCollection[T Entity] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

var _ Collection[types.Job] = (*MemoryCollection[types.Job])(nil)

// NewMemoryCollection creates an empty in-memory collection.
func NewMemoryCollection[T Entity]() *MemoryCollection[T] {
	return &MemoryCollection[T]{items: make(map[string]T)}
}

// NewMemory creates Repositories backed entirely by memory.
func NewMemory() *Repositories {
	return &Repositories{
		Jobs:                 NewMemoryCollection[types.Job](),
		Applications:         NewMemoryCollection[types.Application](),
		Notes:                NewMemoryCollection[types.ApplicationNote](),
		Interviews:           NewMemoryCollection[types.Interview](),
		Slots:                NewMemoryCollection[types.InterviewSlot](),
		Conversations:        NewMemoryCollection[types.Conversation](),
		Messages:             NewMemoryCollection[types.Message](),
		Notifications:        NewMemoryCollection[types.Notification](),
		NotificationSettings: NewMemoryCollection[types.NotificationSettings](),
		Profiles:             NewMemoryCollection[types.CandidateProfile](),
		Users:                NewMemoryCollection[types.UserRecord](),
	}
}

// Get returns a copy of the record with the given id, or nil if absent.
func (c *MemoryCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	out, err := clone(item)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns copies of all records in insertion order.
func (c *MemoryCollection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		item, err := clone(c.items[id])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Create stores a new record. It fails with ErrDuplicateID if the id is taken.
func (c *MemoryCollection[T]) Create(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored, err := clone(item)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := item.GetID()
	if _, exists := c.items[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	c.items[id] = stored
	c.order = append(c.order, id)
	return nil
}

// Update applies fn to a copy of the record under the write lock and stores the result.
func (c *MemoryCollection[T]) Update(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	working, err := clone(current)
	if err != nil {
		return nil, err
	}
	if err := fn(&working); err != nil {
		return nil, err
	}
	stored, err := clone(working)
	if err != nil {
		return nil, err
	}
	c.items[id] = stored
	return &working, nil
}

// Delete removes the record and reports whether it existed.
func (c *MemoryCollection[T]) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false, nil
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// clone deep-copies a record through its JSON form, the same encoding the database backends store.
func clone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return out, nil
}
