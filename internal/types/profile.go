package types

import "time"

// CandidateProfile is a job seeker's public or private profile.
type CandidateProfile struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone,omitempty"`
	Location          string           `json:"location"`
	Title             string           `json:"title"`
	Summary           string           `json:"summary"`
	Experience        []WorkExperience `json:"experience"`
	Education         []Education      `json:"education"`
	Skills            []Skill          `json:"skills"`
	Certifications    []Certification  `json:"certifications"`
	Languages         []Language       `json:"languages"`
	PortfolioURL      string           `json:"portfolio_url,omitempty"`
	LinkedinURL       string           `json:"linkedin_url,omitempty"`
	GithubURL         string           `json:"github_url,omitempty"`
	ResumeURL         string           `json:"resume_url,omitempty"`
	ProfilePictureURL string           `json:"profile_picture_url,omitempty"`
	IsPublic          bool             `json:"is_public"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// GetID returns the profile identifier.
func (p CandidateProfile) GetID() string { return p.ID }

// WorkExperience is one position held.
type WorkExperience struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsCurrent    bool       `json:"is_current"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
}

// Education is one degree or course of study.
type Education struct {
	ID           string     `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	GPA          *float64   `json:"gpa,omitempty"`
	Description  string     `json:"description,omitempty"`
}

// Skill is a named competency with a proficiency level.
type Skill struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Level             string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Category          string `json:"category"`
	YearsOfExperience *int   `json:"years_of_experience,omitempty"`
}

// Certification is a credential held by the candidate.
type Certification struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	IssueDate     time.Time  `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CredentialID  string     `json:"credential_id,omitempty"`
	CredentialURL string     `json:"credential_url,omitempty"`
}

// Language is a spoken language and its proficiency.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=basic conversational fluent native"`
}

// ProfileInput is the payload for creating a candidate profile.
type ProfileInput struct {
	UserID            string           `json:"user_id" validate:"required"`
	FirstName         string           `json:"first_name" validate:"required"`
	LastName          string           `json:"last_name" validate:"required"`
	Email             string           `json:"email" validate:"required,email"`
	Phone             string           `json:"phone,omitempty"`
	Location          string           `json:"location"`
	Title             string           `json:"title"`
	Summary           string           `json:"summary"`
	Experience        []WorkExperience `json:"experience"`
	Education         []Education      `json:"education"`
	Skills            []Skill          `json:"skills" validate:"dive"`
	Certifications    []Certification  `json:"certifications"`
	Languages         []Language       `json:"languages" validate:"dive"`
	PortfolioURL      string           `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	LinkedinURL       string           `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GithubURL         string           `json:"github_url,omitempty" validate:"omitempty,url"`
	ResumeURL         string           `json:"resume_url,omitempty"`
	ProfilePictureURL string           `json:"profile_picture_url,omitempty"`
	IsPublic          bool             `json:"is_public"`
}

// Validate validates the ProfileInput using the validator.
func (in *ProfileInput) Validate() error {
	return validate.Struct(in)
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	FirstName      *string          `json:"first_name,omitempty"`
	LastName       *string          `json:"last_name,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Location       *string          `json:"location,omitempty"`
	Title          *string          `json:"title,omitempty"`
	Summary        *string          `json:"summary,omitempty"`
	Experience     []WorkExperience `json:"experience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Skills         []Skill          `json:"skills,omitempty" validate:"dive"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Languages      []Language       `json:"languages,omitempty" validate:"dive"`
	PortfolioURL   *string          `json:"portfolio_url,omitempty"`
	LinkedinURL    *string          `json:"linkedin_url,omitempty"`
	GithubURL      *string          `json:"github_url,omitempty"`
	ResumeURL      *string          `json:"resume_url,omitempty"`
	IsPublic       *bool            `json:"is_public,omitempty"`
}

// Validate validates the ProfilePatch using the validator.
func (p *ProfilePatch) Validate() error {
	return validate.Struct(p)
}

// Apply copies the present patch fields onto profile.
func (p *ProfilePatch) Apply(profile *CandidateProfile) {
	setString(&profile.FirstName, p.FirstName)
	setString(&profile.LastName, p.LastName)
	setString(&profile.Phone, p.Phone)
	setString(&profile.Location, p.Location)
	setString(&profile.Title, p.Title)
	setString(&profile.Summary, p.Summary)
	setString(&profile.PortfolioURL, p.PortfolioURL)
	setString(&profile.LinkedinURL, p.LinkedinURL)
	setString(&profile.GithubURL, p.GithubURL)
	setString(&profile.ResumeURL, p.ResumeURL)
	if p.Experience != nil {
		profile.Experience = p.Experience
	}
	if p.Education != nil {
		profile.Education = p.Education
	}
	if p.Skills != nil {
		profile.Skills = p.Skills
	}
	if p.Certifications != nil {
		profile.Certifications = p.Certifications
	}
	if p.Languages != nil {
		profile.Languages = p.Languages
	}
	if p.IsPublic != nil {
		profile.IsPublic = *p.IsPublic
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
