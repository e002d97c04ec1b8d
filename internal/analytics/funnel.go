package analytics

import (
	"fmt"

	"github.com/jonathan/hireflow/internal/stats"
	"github.com/jonathan/hireflow/internal/types"
)

// FunnelStages are the hiring funnel stages in order.
var FunnelStages = []string{"Applications", "Screening", "Interview", "Offer", "Hired"}

// StageOf returns the index of the furthest funnel stage an application status has reached.
// Rejected and withdrawn applications only count toward the first stage.
func StageOf(status types.ApplicationStatus) int {
	switch status {
	case types.StatusScreening:
		return 1
	case types.StatusPhoneInterview, types.StatusTechnicalInterview, types.StatusFinalInterview:
		return 2
	case types.StatusOfferExtended:
		return 3
	case types.StatusHired:
		return 4
	default:
		return 0
	}
}

// Funnel computes the cumulative hiring funnel for apps.
func Funnel(apps []types.Application) []types.FunnelMetric {
	counts := make([]int, len(FunnelStages))
	for _, app := range apps {
		for stage := 0; stage <= StageOf(app.Status); stage++ {
			counts[stage]++
		}
	}
	return FunnelFromCounts(counts)
}

// FunnelFromCounts turns per-stage counts into funnel rows.
//
// Percentage is relative to the first stage. The first stage converts at 100 when it is
// non-empty; every later stage converts relative to its predecessor, and a stage following
// an empty stage converts at 0.
func FunnelFromCounts(counts []int) []types.FunnelMetric {
	out := make([]types.FunnelMetric, len(counts))
	for i, count := range counts {
		row := types.FunnelMetric{
			Stage: stageName(i),
			Count: count,
		}
		if len(counts) > 0 {
			row.Percentage = stats.Percent(count, counts[0])
		}
		if i == 0 {
			if count > 0 {
				row.ConversionRate = 100
			}
		} else {
			row.ConversionRate = stats.Percent(count, counts[i-1])
		}
		out[i] = row
	}
	return out
}

func stageName(i int) string {
	if i < len(FunnelStages) {
		return FunnelStages[i]
	}
	return fmt.Sprintf("Stage %d", i+1)
}
