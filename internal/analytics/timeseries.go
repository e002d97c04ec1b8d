package analytics

import (
	"sort"
	"time"

	"github.com/jonathan/hireflow/internal/types"
)

// DateLayout is the bucket key format of a time series point.
const DateLayout = "2006-01-02"

// TimeSeries buckets applications, interviews and hires by UTC day.
// Only days with at least one event appear; there is no gap filling.
func TimeSeries(ds Dataset) []types.TimeSeriesPoint {
	points := make(map[string]*types.TimeSeriesPoint)
	at := func(t time.Time) *types.TimeSeriesPoint {
		key := t.UTC().Format(DateLayout)
		p, ok := points[key]
		if !ok {
			p = &types.TimeSeriesPoint{Date: key}
			points[key] = p
		}
		return p
	}

	for _, app := range ds.Applications {
		at(app.AppliedAt).Applications++
		if app.Status == types.StatusHired {
			at(app.LastUpdated).Hires++
		}
	}
	for _, iv := range ds.Interviews {
		at(iv.ScheduledAt).Interviews++
	}

	out := make([]types.TimeSeriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
