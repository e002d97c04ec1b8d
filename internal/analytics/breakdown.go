package analytics

import (
	"sort"
	"strings"

	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// TopSkillsLimit is how many skills the hiring report lists.
const TopSkillsLimit = 5

// ApplicationsByStatus returns one row per status present in apps, in pipeline order.
func ApplicationsByStatus(apps []types.Application) []types.LabelMetric {
	counts := stats.Histogram(apps, func(a *types.Application) types.ApplicationStatus { return a.Status })
	return labelRows(types.ApplicationStatuses, counts, len(apps))
}

// InterviewsByType returns one row per interview type present in ivs, in taxonomy order.
func InterviewsByType(ivs []types.Interview) []types.LabelMetric {
	counts := stats.Histogram(ivs, func(iv *types.Interview) types.InterviewType { return iv.Type })
	return labelRows(types.InterviewTypes, counts, len(ivs))
}

func labelRows[K ~string](order []K, counts map[K]int, total int) []types.LabelMetric {
	rows := make([]types.LabelMetric, 0, len(counts))
	for _, key := range order {
		n := counts[key]
		if n == 0 {
			continue
		}
		rows = append(rows, types.LabelMetric{
			Label:      string(key),
			Count:      n,
			Percentage: stats.Percent(n, total),
		})
	}
	return rows
}

// TopSkills ranks the skills requested by jobs. A skill counts once per job; spelling
// variants that differ only in case are merged under the first spelling seen.
func TopSkills(jobs []types.Job, limit int) []types.SkillMetric {
	type tally struct {
		name  string
		count int
	}
	byKey := make(map[string]*tally)
	order := make([]string, 0)

	for _, job := range jobs {
		seen := make(map[string]bool, len(job.Skills))
		for _, skill := range job.Skills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			t, ok := byKey[key]
			if !ok {
				t = &tally{name: strings.TrimSpace(skill)}
				byKey[key] = t
				order = append(order, key)
			}
			t.count++
		}
	}

	rows := make([]types.SkillMetric, 0, len(order))
	for _, key := range order {
		t := byKey[key]
		rows = append(rows, types.SkillMetric{
			Skill:      t.name,
			Count:      t.count,
			Percentage: stats.Percent(t.count, len(jobs)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return strings.ToLower(rows[i].Skill) < strings.ToLower(rows[j].Skill)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
