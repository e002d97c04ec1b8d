package query

import (
	"time"

	"github.com/jonathan/hireflow/internal/types"
)

// MatchInterview reports whether iv satisfies every criterion set in f.
func MatchInterview(iv *types.Interview, f types.InterviewFilters) bool {
	if f.Search != "" && !anyContainsFold(f.Search, iv.CandidateName, iv.JobTitle, iv.InterviewerName) {
		return false
	}
	if f.Status != "" && iv.Status != f.Status {
		return false
	}
	if f.Type != "" && iv.Type != f.Type {
		return false
	}
	if f.InterviewerID != "" && iv.InterviewerID != f.InterviewerID {
		return false
	}
	if f.JobID != "" && iv.JobID != f.JobID {
		return false
	}
	return within(iv.ScheduledAt, f.DateFrom, f.DateTo)
}

// Interviews returns the interviews matching f, soonest first.
func Interviews(ivs []types.Interview, f types.InterviewFilters) []types.Interview {
	return selectSorted(ivs,
		func(iv *types.Interview) bool { return MatchInterview(iv, f) },
		func(a, b *types.Interview) bool { return a.ScheduledAt.Before(b.ScheduledAt) },
	)
}

// Slots returns the open slots of an interviewer on the calendar day of date, earliest first.
func Slots(slots []types.InterviewSlot, interviewerID string, date time.Time) []types.InterviewSlot {
	y, m, d := date.Date()
	return selectSorted(slots,
		func(s *types.InterviewSlot) bool {
			sy, sm, sd := s.Date.In(date.Location()).Date()
			return s.InterviewerID == interviewerID && s.IsAvailable && sy == y && sm == m && sd == d
		},
		func(a, b *types.InterviewSlot) bool { return a.StartTime < b.StartTime },
	)
}
