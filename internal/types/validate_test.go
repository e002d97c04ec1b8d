//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validJobInput() JobInput {
	return JobInput{
		Title:           "Backend Engineer",
		Description:     "Build services",
		Company:         "Acme",
		Location:        "Berlin",
		WorkLocation:    WorkLocationRemote,
		JobType:         JobTypeFullTime,
		ExperienceLevel: ExperienceMid,
		PostedBy:        "recruiter-1",
	}
}

func TestJobInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*JobInput)
		wantErr bool
	}{
		{name: "valid", mutate: func(*JobInput) {}},
		{name: "missing title", mutate: func(in *JobInput) { in.Title = "" }, wantErr: true},
		{name: "unknown work location", mutate: func(in *JobInput) { in.WorkLocation = "moon" }, wantErr: true},
		{name: "unknown status", mutate: func(in *JobInput) { in.Status = "archived" }, wantErr: true},
		{
			name:   "salary range ok",
			mutate: func(in *JobInput) { in.SalaryMin, in.SalaryMax = intPtr(100), intPtr(200) },
		},
		{
			name:    "salary range inverted",
			mutate:  func(in *JobInput) { in.SalaryMin, in.SalaryMax = intPtr(300), intPtr(200) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validJobInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobInput_SalaryRangeErrorType(t *testing.T) {
	in := validJobInput()
	in.SalaryMin, in.SalaryMax = intPtr(5), intPtr(1)

	err := in.Validate()
	var rangeErr *ErrInvalidRange
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "salary_min", rangeErr.Field)
}

func TestJobPatch_ValidateAndApply(t *testing.T) {
	bad := WorkLocation("moon")
	err := (&JobPatch{WorkLocation: &bad}).Validate()
	var enumErr *ErrInvalidEnum
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "work_location", enumErr.Field)

	title := "New title"
	status := JobStatusPaused
	job := Job{Title: "Old", Company: "Acme", Status: JobStatusActive}
	patch := JobPatch{Title: &title, Status: &status}
	require.NoError(t, patch.Validate())
	patch.Apply(&job)

	assert.Equal(t, "New title", job.Title)
	assert.Equal(t, JobStatusPaused, job.Status)
	assert.Equal(t, "Acme", job.Company)
}

func TestCheckRating(t *testing.T) {
	for _, r := range []int{1, 3, 5} {
		assert.NoError(t, CheckRating("rating", r))
	}
	for _, r := range []int{0, 6, -1} {
		assert.Error(t, CheckRating("rating", r))
	}
}

func TestFeedbackInput_Validate(t *testing.T) {
	valid := FeedbackInput{OverallRating: 4, Recommendation: RecommendHire}
	assert.NoError(t, valid.Validate())

	tooHigh := FeedbackInput{OverallRating: 6, Recommendation: RecommendHire}
	assert.Error(t, tooHigh.Validate())

	badSub := FeedbackInput{OverallRating: 4, Communication: intPtr(0), Recommendation: RecommendMaybe}
	assert.Error(t, badSub.Validate())

	badRecommendation := FeedbackInput{OverallRating: 4, Recommendation: "strong_yes"}
	assert.Error(t, badRecommendation.Validate())
}

func TestConversationInput_RequiresTwoParticipants(t *testing.T) {
	in := ConversationInput{
		Type: ConversationGeneral,
		Participants: []ParticipantInput{
			{UserID: "u1", UserName: "One", UserRole: RoleEmployer},
		},
	}
	assert.Error(t, in.Validate())

	in.Participants = append(in.Participants, ParticipantInput{UserID: "u2", UserName: "Two", UserRole: RoleJobSeeker})
	assert.NoError(t, in.Validate())
}

func TestSlotInput_Validate(t *testing.T) {
	in := SlotInput{InterviewerID: "i1", Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "10:00", Duration: 60}
	assert.NoError(t, in.Validate())

	in.EndTime = "08:00"
	assert.Error(t, in.Validate())

	in.EndTime = "9am"
	assert.Error(t, in.Validate())
}

func TestEnumValid(t *testing.T) {
	assert.True(t, StatusHired.Valid())
	assert.False(t, ApplicationStatus("ghosted").Valid())
	assert.True(t, InterviewPanel.Valid())
	assert.False(t, InterviewType("lunch").Valid())
	assert.True(t, ConversationGeneral.Valid())
	assert.True(t, ExperienceExecutive.Valid())
	assert.True(t, JobTypeInternship.Valid())
}

func TestMessageStatus_Rank(t *testing.T) {
	assert.Less(t, MessageSent.Rank(), MessageDelivered.Rank())
	assert.Less(t, MessageDelivered.Rank(), MessageRead.Rank())
}

func TestDefaultNotificationSettings(t *testing.T) {
	s := DefaultNotificationSettings("u1")
	assert.Equal(t, "u1", s.GetID())
	assert.True(t, s.EmailNotifications)
	assert.True(t, s.StatusUpdates)
	assert.False(t, s.WeeklyDigest)
}
