package query

import "github.com/jonathan/hireflow/internal/types"

// MatchApplication reports whether app satisfies every criterion set in f.
func MatchApplication(app *types.Application, f types.ApplicationFilters) bool {
	if f.Search != "" && !anyContainsFold(f.Search, app.CandidateName, app.CandidateEmail, app.JobTitle, app.Company) {
		return false
	}
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	if f.JobID != "" && app.JobID != f.JobID {
		return false
	}
	if f.Rating != nil && (app.Rating == nil || *app.Rating < *f.Rating) {
		return false
	}
	if !within(app.AppliedAt, f.DateFrom, f.DateTo) {
		return false
	}
	if len(f.Tags) > 0 && !overlapsFold(app.Tags, f.Tags) {
		return false
	}
	return true
}

// Applications returns the applications matching f, most recently applied first.
func Applications(apps []types.Application, f types.ApplicationFilters) []types.Application {
	return selectSorted(apps,
		func(a *types.Application) bool { return MatchApplication(a, f) },
		func(a, b *types.Application) bool { return a.AppliedAt.After(b.AppliedAt) },
	)
}

// Notes returns the notes of one application, newest first.
func Notes(notes []types.ApplicationNote, applicationID string) []types.ApplicationNote {
	return selectSorted(notes,
		func(n *types.ApplicationNote) bool { return n.ApplicationID == applicationID },
		func(a, b *types.ApplicationNote) bool { return a.CreatedAt.After(b.CreatedAt) },
	)
}
