package server

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/hireflow/internal/types"
)

const dateOnly = "2006-01-02"

// params reads typed query values and remembers the first malformed one.
type params struct {
	q   url.Values
	err error
}

func newParams(q url.Values) *params {
	return &params{q: q}
}

func (p *params) fail(field, message string) {
	if p.err == nil {
		p.err = &ErrValidation{Field: field, Message: message}
	}
}

func (p *params) str(key string) string {
	return strings.TrimSpace(p.q.Get(key))
}

// list splits a comma separated value, dropping empty items.
func (p *params) list(key string) []string {
	var out []string
	for _, raw := range p.q[key] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (p *params) intPtr(key string) *int {
	raw := p.str(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, "must be an integer")
		return nil
	}
	return &v
}

func (p *params) boolean(key string) bool {
	raw := p.str(key)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, "must be a boolean")
		return false
	}
	return v
}

// date accepts RFC3339 or YYYY-MM-DD. A bare date used as an upper bound covers the whole day.
func (p *params) date(key string, endOfDay bool) *time.Time {
	raw := p.str(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		p.fail(key, "must be RFC3339 or YYYY-MM-DD")
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

// enum returns the value when valid reports it as known; empty stays empty.
func enum[T ~string](p *params, key string, valid func(T) bool) T {
	v := T(p.str(key))
	if v != "" && !valid(v) {
		p.fail(key, "unknown value "+strconv.Quote(string(v)))
		return ""
	}
	return v
}

func parseJobFilters(q url.Values) (types.JobFilters, error) {
	p := newParams(q)
	f := types.JobFilters{
		Search:          p.str("search"),
		Location:        p.str("location"),
		WorkLocation:    enum(p, "work_location", types.WorkLocation.Valid),
		JobType:         enum(p, "job_type", types.JobType.Valid),
		ExperienceLevel: enum(p, "experience_level", types.ExperienceLevel.Valid),
		SalaryMin:       p.intPtr("salary_min"),
		SalaryMax:       p.intPtr("salary_max"),
		Skills:          p.list("skills"),
		Status:          enum(p, "status", types.JobStatus.Valid),
	}
	return f, p.err
}

func parseApplicationFilters(q url.Values) (types.ApplicationFilters, error) {
	p := newParams(q)
	f := types.ApplicationFilters{
		Search:   p.str("search"),
		Status:   enum(p, "status", types.ApplicationStatus.Valid),
		JobID:    p.str("job_id"),
		Rating:   p.intPtr("rating"),
		DateFrom: p.date("date_from", false),
		DateTo:   p.date("date_to", true),
		Tags:     p.list("tags"),
	}
	return f, p.err
}

func parseInterviewFilters(q url.Values) (types.InterviewFilters, error) {
	p := newParams(q)
	f := types.InterviewFilters{
		Search:        p.str("search"),
		Status:        enum(p, "status", types.InterviewStatus.Valid),
		Type:          enum(p, "type", types.InterviewType.Valid),
		InterviewerID: p.str("interviewer_id"),
		JobID:         p.str("job_id"),
		DateFrom:      p.date("date_from", false),
		DateTo:        p.date("date_to", true),
	}
	return f, p.err
}

func parseCommunicationFilters(q url.Values) (types.CommunicationFilters, error) {
	p := newParams(q)
	f := types.CommunicationFilters{
		Search:        p.str("search"),
		Type:          enum(p, "type", types.ConversationType.Valid),
		UnreadOnly:    p.boolean("unread_only"),
		ParticipantID: p.str("participant_id"),
	}
	return f, p.err
}

func parseAnalyticsFilters(q url.Values) (types.AnalyticsFilters, error) {
	p := newParams(q)
	f := types.AnalyticsFilters{
		DateFrom:        p.date("date_from", false),
		DateTo:          p.date("date_to", true),
		Department:      p.str("department"),
		RecruiterID:     p.str("recruiter_id"),
		JobType:         enum(p, "job_type", types.JobType.Valid),
		ExperienceLevel: enum(p, "experience_level", types.ExperienceLevel.Valid),
	}
	return f, p.err
}

// parseDay reads a required calendar day such as the slots date.
func parseDay(q url.Values, key string) (time.Time, error) {
	p := newParams(q)
	t := p.date(key, false)
	if p.err != nil {
		return time.Time{}, p.err
	}
	if t == nil {
		return time.Time{}, &ErrValidation{Field: key, Message: "is required"}
	}
	return *t, nil
}
