// Package stats derives summary counts and averages from hiring records.
package stats

import (
	"time"

	"github.com/jonathan/hireflow/internal/types"
)

// RecentWindow is the trailing window counted as "this week".
const RecentWindow = 7 * 24 * time.Hour

// Histogram counts items per key. Keys that never occur are absent, so the values sum to len(items).
func Histogram[K comparable, T any](items []T, key func(*T) K) map[K]int {
	counts := make(map[K]int)
	for i := range items {
		counts[key(&items[i])]++
	}
	return counts
}

// Mean averages values, returning 0 for an empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Ratio divides num by den, returning 0 when den is 0.
func Ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Percent is Ratio scaled to 0..100.
func Percent(num, den int) float64 {
	return Ratio(num, den) * 100
}

// IsRecent reports whether t falls within RecentWindow before now, inclusive of the boundary.
func IsRecent(t, now time.Time) bool {
	return !t.Before(now.Add(-RecentWindow))
}

// Applications summarizes apps as of now.
func Applications(apps []types.Application, now time.Time) types.ApplicationStats {
	ratings := make([]float64, 0, len(apps))
	recent := 0
	for i := range apps {
		if apps[i].Rating != nil {
			ratings = append(ratings, float64(*apps[i].Rating))
		}
		if IsRecent(apps[i].AppliedAt, now) {
			recent++
		}
	}

	return types.ApplicationStats{
		Total:              len(apps),
		ByStatus:           Histogram(apps, func(a *types.Application) types.ApplicationStatus { return a.Status }),
		AverageRating:      Mean(ratings),
		RecentApplications: recent,
	}
}

// Interviews summarizes ivs as of now.
func Interviews(ivs []types.Interview, now time.Time) types.InterviewStats {
	ratings := make([]float64, 0, len(ivs))
	for i := range ivs {
		if ivs[i].Feedback != nil {
			ratings = append(ratings, float64(ivs[i].Feedback.OverallRating))
		}
	}

	return types.InterviewStats{
		Total:              len(ivs),
		ByStatus:           Histogram(ivs, func(iv *types.Interview) types.InterviewStatus { return iv.Status }),
		ByType:             Histogram(ivs, func(iv *types.Interview) types.InterviewType { return iv.Type }),
		AverageRating:      Mean(ratings),
		UpcomingInterviews: Upcoming(ivs, now),
	}
}

// Upcoming counts interviews still in the scheduled state whose time is after now.
// Confirmed interviews are deliberately not counted.
func Upcoming(ivs []types.Interview, now time.Time) int {
	n := 0
	for i := range ivs {
		if ivs[i].Status == types.InterviewScheduled && ivs[i].ScheduledAt.After(now) {
			n++
		}
	}
	return n
}
