package types

import "time"

// ApplicationStatus is a position in the hiring pipeline.
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "applied"
	StatusScreening          ApplicationStatus = "screening"
	StatusPhoneInterview     ApplicationStatus = "phone_interview"
	StatusTechnicalInterview ApplicationStatus = "technical_interview"
	StatusFinalInterview     ApplicationStatus = "final_interview"
	StatusOfferExtended      ApplicationStatus = "offer_extended"
	StatusHired              ApplicationStatus = "hired"
	StatusRejected           ApplicationStatus = "rejected"
	StatusWithdrawn          ApplicationStatus = "withdrawn"
)

// ApplicationStatuses lists every status, pipeline order first, then the terminal side branches.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusScreening,
	StatusPhoneInterview,
	StatusTechnicalInterview,
	StatusFinalInterview,
	StatusOfferExtended,
	StatusHired,
	StatusRejected,
	StatusWithdrawn,
}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool { return contains(ApplicationStatuses, s) }

// Application is a candidate's application to a job.
type Application struct {
	ID             string            `json:"id"`
	JobID          string            `json:"job_id"`
	JobTitle       string            `json:"job_title"`
	Company        string            `json:"company"`
	CandidateID    string            `json:"candidate_id"`
	CandidateName  string            `json:"candidate_name"`
	CandidateEmail string            `json:"candidate_email"`
	CandidatePhone string            `json:"candidate_phone,omitempty"`
	ResumeURL      string            `json:"resume_url,omitempty"`
	CoverLetter    string            `json:"cover_letter,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      time.Time         `json:"applied_at"`
	LastUpdated    time.Time         `json:"last_updated"`
	Notes          []ApplicationNote `json:"notes"`
	Rating         *int              `json:"rating,omitempty"`
	Tags           []string          `json:"tags"`
	Source         string            `json:"source"`
}

// GetID returns the application identifier.
func (a Application) GetID() string { return a.ID }

// ApplicationNote is an immutable reviewer note on an application.
type ApplicationNote struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Content       string    `json:"content"`
	IsPrivate     bool      `json:"is_private"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetID returns the note identifier.
func (n ApplicationNote) GetID() string { return n.ID }

// ApplicationFilters holds the optional application search criteria.
type ApplicationFilters struct {
	Search   string            `json:"search,omitempty"`
	Status   ApplicationStatus `json:"status,omitempty"`
	JobID    string            `json:"job_id,omitempty"`
	Rating   *int              `json:"rating,omitempty"`
	DateFrom *time.Time        `json:"date_from,omitempty"`
	DateTo   *time.Time        `json:"date_to,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
}

// ApplicationStats summarizes a set of applications. ByStatus omits statuses with no applications.
type ApplicationStats struct {
	Total              int                       `json:"total"`
	ByStatus           map[ApplicationStatus]int `json:"by_status"`
	AverageRating      float64                   `json:"average_rating"`
	RecentApplications int                       `json:"recent_applications"`
}

// ApplicationInput is the payload for submitting an application.
type ApplicationInput struct {
	JobID          string   `json:"job_id" validate:"required"`
	JobTitle       string   `json:"job_title"`
	Company        string   `json:"company"`
	CandidateID    string   `json:"candidate_id" validate:"required"`
	CandidateName  string   `json:"candidate_name" validate:"required"`
	CandidateEmail string   `json:"candidate_email" validate:"required,email"`
	CandidatePhone string   `json:"candidate_phone,omitempty"`
	ResumeURL      string   `json:"resume_url,omitempty"`
	CoverLetter    string   `json:"cover_letter,omitempty"`
	Tags           []string `json:"tags"`
	Source         string   `json:"source"`
}

// Validate validates the ApplicationInput using the validator.
func (in *ApplicationInput) Validate() error {
	return validate.Struct(in)
}

// ApplicationPatch is the bulk update payload. Nil fields are left untouched.
type ApplicationPatch struct {
	Status *ApplicationStatus `json:"status,omitempty"`
	Rating *int               `json:"rating,omitempty"`
	Tags   []string           `json:"tags,omitempty"`
}

// Validate checks the status and rating when present.
func (p *ApplicationPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return &ErrInvalidEnum{Field: "status", Value: string(*p.Status)}
	}
	return checkOptionalRating("rating", p.Rating)
}

// NoteInput is the payload for adding a note to an application.
type NoteInput struct {
	Content    string `json:"content" validate:"required"`
	AuthorID   string `json:"author_id" validate:"required"`
	AuthorName string `json:"author_name" validate:"required"`
	IsPrivate  bool   `json:"is_private"`
}

// Validate validates the NoteInput using the validator.
func (in *NoteInput) Validate() error {
	return validate.Struct(in)
}
