package types

import "time"

// InterviewType is the format of an interview.
type InterviewType string

const (
	InterviewPhoneScreening InterviewType = "phone_screening"
	InterviewVideo          InterviewType = "video_interview"
	InterviewTechnical      InterviewType = "technical_interview"
	InterviewBehavioral     InterviewType = "behavioral_interview"
	InterviewFinal          InterviewType = "final_interview"
	InterviewPanel          InterviewType = "panel_interview"
)

// InterviewTypes lists every interview type.
var InterviewTypes = []InterviewType{
	InterviewPhoneScreening,
	InterviewVideo,
	InterviewTechnical,
	InterviewBehavioral,
	InterviewFinal,
	InterviewPanel,
}

// Valid reports whether t is a known interview type.
func (t InterviewType) Valid() bool { return contains(InterviewTypes, t) }

// InterviewStatus is the state of a scheduled interview.
type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "scheduled"
	InterviewConfirmed   InterviewStatus = "confirmed"
	InterviewInProgress  InterviewStatus = "in_progress"
	InterviewCompleted   InterviewStatus = "completed"
	InterviewCancelled   InterviewStatus = "cancelled"
	InterviewRescheduled InterviewStatus = "rescheduled"
	InterviewNoShow      InterviewStatus = "no_show"
)

// InterviewStatuses lists every interview status.
var InterviewStatuses = []InterviewStatus{
	InterviewScheduled,
	InterviewConfirmed,
	InterviewInProgress,
	InterviewCompleted,
	InterviewCancelled,
	InterviewRescheduled,
	InterviewNoShow,
}

// Valid reports whether s is a known interview status.
func (s InterviewStatus) Valid() bool { return contains(InterviewStatuses, s) }

// Recommendation is the interviewer's hiring verdict.
type Recommendation string

const (
	RecommendHire   Recommendation = "hire"
	RecommendNoHire Recommendation = "no_hire"
	RecommendMaybe  Recommendation = "maybe"
)

// Interview is a scheduled conversation between a candidate and an interviewer.
type Interview struct {
	ID               string             `json:"id"`
	ApplicationID    string             `json:"application_id"`
	JobID            string             `json:"job_id"`
	JobTitle         string             `json:"job_title"`
	CandidateID      string             `json:"candidate_id"`
	CandidateName    string             `json:"candidate_name"`
	CandidateEmail   string             `json:"candidate_email"`
	InterviewerID    string             `json:"interviewer_id"`
	InterviewerName  string             `json:"interviewer_name"`
	InterviewerEmail string             `json:"interviewer_email"`
	Type             InterviewType      `json:"type"`
	Status           InterviewStatus    `json:"status"`
	ScheduledAt      time.Time          `json:"scheduled_at"`
	Duration         int                `json:"duration"`
	Location         string             `json:"location,omitempty"`
	MeetingLink      string             `json:"meeting_link,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Feedback         *InterviewFeedback `json:"feedback,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// GetID returns the interview identifier.
func (i Interview) GetID() string { return i.ID }

// InterviewFeedback is the single evaluation attached to an interview.
type InterviewFeedback struct {
	ID              string         `json:"id"`
	InterviewID     string         `json:"interview_id"`
	OverallRating   int            `json:"overall_rating"`
	TechnicalSkills *int           `json:"technical_skills,omitempty"`
	Communication   *int           `json:"communication,omitempty"`
	CulturalFit     *int           `json:"cultural_fit,omitempty"`
	Experience      *int           `json:"experience,omitempty"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Comments        string         `json:"comments"`
	Recommendation  Recommendation `json:"recommendation"`
	CreatedAt       time.Time      `json:"created_at"`
}

// InterviewSlot is an interviewer's bookable time window. Times are "HH:MM".
type InterviewSlot struct {
	ID            string    `json:"id"`
	InterviewerID string    `json:"interviewer_id"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	IsAvailable   bool      `json:"is_available"`
	Duration      int       `json:"duration"`
}

// GetID returns the slot identifier.
func (s InterviewSlot) GetID() string { return s.ID }

// InterviewFilters holds the optional interview search criteria.
type InterviewFilters struct {
	Search        string          `json:"search,omitempty"`
	Status        InterviewStatus `json:"status,omitempty"`
	Type          InterviewType   `json:"type,omitempty"`
	InterviewerID string          `json:"interviewer_id,omitempty"`
	JobID         string          `json:"job_id,omitempty"`
	DateFrom      *time.Time      `json:"date_from,omitempty"`
	DateTo        *time.Time      `json:"date_to,omitempty"`
}

// InterviewStats summarizes a set of interviews. The maps omit values with no interviews.
type InterviewStats struct {
	Total              int                     `json:"total"`
	ByStatus           map[InterviewStatus]int `json:"by_status"`
	ByType             map[InterviewType]int   `json:"by_type"`
	AverageRating      float64                 `json:"average_rating"`
	UpcomingInterviews int                     `json:"upcoming_interviews"`
}

// InterviewInput is the payload for scheduling an interview.
type InterviewInput struct {
	ApplicationID    string          `json:"application_id" validate:"required"`
	JobID            string          `json:"job_id" validate:"required"`
	JobTitle         string          `json:"job_title"`
	CandidateID      string          `json:"candidate_id" validate:"required"`
	CandidateName    string          `json:"candidate_name" validate:"required"`
	CandidateEmail   string          `json:"candidate_email" validate:"required,email"`
	InterviewerID    string          `json:"interviewer_id" validate:"required"`
	InterviewerName  string          `json:"interviewer_name" validate:"required"`
	InterviewerEmail string          `json:"interviewer_email" validate:"omitempty,email"`
	Type             InterviewType   `json:"type" validate:"required,oneof=phone_screening video_interview technical_interview behavioral_interview final_interview panel_interview"`
	Status           InterviewStatus `json:"status" validate:"omitempty,oneof=scheduled confirmed in_progress completed cancelled rescheduled no_show"`
	ScheduledAt      time.Time       `json:"scheduled_at" validate:"required"`
	Duration         int             `json:"duration" validate:"required,gt=0"`
	Location         string          `json:"location,omitempty"`
	MeetingLink      string          `json:"meeting_link,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// Validate validates the InterviewInput using the validator.
func (in *InterviewInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	if in.ScheduledAt.IsZero() {
		return &ErrInvalidRange{Field: "scheduled_at", Message: "is required"}
	}
	return nil
}

// InterviewPatch is a partial interview update. Nil fields are left untouched.
type InterviewPatch struct {
	InterviewerID    *string          `json:"interviewer_id,omitempty"`
	InterviewerName  *string          `json:"interviewer_name,omitempty"`
	InterviewerEmail *string          `json:"interviewer_email,omitempty"`
	Type             *InterviewType   `json:"type,omitempty"`
	Status           *InterviewStatus `json:"status,omitempty"`
	ScheduledAt      *time.Time       `json:"scheduled_at,omitempty"`
	Duration         *int             `json:"duration,omitempty"`
	Location         *string          `json:"location,omitempty"`
	MeetingLink      *string          `json:"meeting_link,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

// Validate checks the enum and duration fields present in the patch.
func (p *InterviewPatch) Validate() error {
	if p.Type != nil && !p.Type.Valid() {
		return &ErrInvalidEnum{Field: "type", Value: string(*p.Type)}
	}
	if p.Status != nil && !p.Status.Valid() {
		return &ErrInvalidEnum{Field: "status", Value: string(*p.Status)}
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return &ErrInvalidRange{Field: "duration", Message: "must be positive"}
	}
	return nil
}

// Apply copies the present patch fields onto iv.
func (p *InterviewPatch) Apply(iv *Interview) {
	if p.InterviewerID != nil {
		iv.InterviewerID = *p.InterviewerID
	}
	if p.InterviewerName != nil {
		iv.InterviewerName = *p.InterviewerName
	}
	if p.InterviewerEmail != nil {
		iv.InterviewerEmail = *p.InterviewerEmail
	}
	if p.Type != nil {
		iv.Type = *p.Type
	}
	if p.Status != nil {
		iv.Status = *p.Status
	}
	if p.ScheduledAt != nil {
		iv.ScheduledAt = *p.ScheduledAt
	}
	if p.Duration != nil {
		iv.Duration = *p.Duration
	}
	if p.Location != nil {
		iv.Location = *p.Location
	}
	if p.MeetingLink != nil {
		iv.MeetingLink = *p.MeetingLink
	}
	if p.Notes != nil {
		iv.Notes = *p.Notes
	}
}

// FeedbackInput is the payload for submitting interview feedback.
type FeedbackInput struct {
	OverallRating   int            `json:"overall_rating" validate:"required"`
	TechnicalSkills *int           `json:"technical_skills,omitempty"`
	Communication   *int           `json:"communication,omitempty"`
	CulturalFit     *int           `json:"cultural_fit,omitempty"`
	Experience      *int           `json:"experience,omitempty"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Comments        string         `json:"comments"`
	Recommendation  Recommendation `json:"recommendation" validate:"required,oneof=hire no_hire maybe"`
}

// Validate validates the FeedbackInput and checks every rating is within 1..5.
func (in *FeedbackInput) Validate() error {
	if err := CheckRating("overall_rating", in.OverallRating); err != nil {
		return err
	}
	for field, rating := range map[string]*int{
		"technical_skills": in.TechnicalSkills,
		"communication":    in.Communication,
		"cultural_fit":     in.CulturalFit,
		"experience":       in.Experience,
	} {
		if err := checkOptionalRating(field, rating); err != nil {
			return err
		}
	}
	return validate.Struct(in)
}

// SlotInput is the payload for publishing an interviewer's availability.
type SlotInput struct {
	InterviewerID string    `json:"interviewer_id" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	StartTime     string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string    `json:"end_time" validate:"required,datetime=15:04"`
	Duration      int       `json:"duration" validate:"required,gt=0"`
}

// Validate validates the SlotInput and checks the window is not inverted.
func (in *SlotInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	if in.Date.IsZero() {
		return &ErrInvalidRange{Field: "date", Message: "is required"}
	}
	if in.EndTime <= in.StartTime {
		return &ErrInvalidRange{Field: "end_time", Message: "must be after start_time"}
	}
	return nil
}
