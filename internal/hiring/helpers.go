package hiring

import (
	"errors"
	"time"
)

// errSkip aborts a collection update without storing anything.
var errSkip = errors.New("skip update")

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
