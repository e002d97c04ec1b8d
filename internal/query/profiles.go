package query

import "github.com/jonathan/hireflow/internal/types"

// MatchProfile reports whether a public profile matches the search text and skill criteria.
func MatchProfile(p *types.CandidateProfile, search string, skills []string) bool {
	if !p.IsPublic {
		return false
	}
	skillNames := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		skillNames[i] = s.Name
	}
	if search != "" {
		fields := append([]string{p.FirstName, p.LastName, p.Title, p.Summary}, skillNames...)
		if !anyContainsFold(search, fields...) {
			return false
		}
	}
	if len(skills) > 0 && !overlapsFold(skillNames, skills) {
		return false
	}
	return true
}

// Profiles returns the public profiles matching the criteria, most recently updated first.
func Profiles(profiles []types.CandidateProfile, search string, skills []string) []types.CandidateProfile {
	return selectSorted(profiles,
		func(p *types.CandidateProfile) bool { return MatchProfile(p, search, skills) },
		func(a, b *types.CandidateProfile) bool { return a.UpdatedAt.After(b.UpdatedAt) },
	)
}
