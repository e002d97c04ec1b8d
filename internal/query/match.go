// Package query filters and orders hiring records. Every function is pure: inputs are never
// modified and the result is a fresh, non-nil slice in the entity's default order.
package query

import (
	"sort"
	"strings"
	"time"
)

// containsFold reports whether sub is a case-insensitive substring of s.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// anyContainsFold reports whether any of fields contains the search term.
func anyContainsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if containsFold(f, term) {
			return true
		}
	}
	return false
}

// overlapsFold reports whether any record member contains any criteria member, ignoring case.
func overlapsFold(record, criteria []string) bool {
	for _, want := range criteria {
		for _, have := range record {
			if containsFold(have, want) {
				return true
			}
		}
	}
	return false
}

// within reports whether t lies in the inclusive range [from, to]. Nil bounds are open.
func within(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

// selectSorted keeps the items accepted by keep and stable-sorts them with less.
func selectSorted[T any](items []T, keep func(*T) bool, less func(a, b *T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}
