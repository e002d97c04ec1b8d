package hiring

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule closes expired postings once a day at midnight UTC.
const DefaultSweepSchedule = "@daily"

// Sweeper periodically closes active jobs whose expiry date has passed.
type Sweeper struct {
	svc  *Service
	cron *cron.Cron
}

// NewSweeper registers the expired-job sweep on schedule, a standard five-field cron
// expression or descriptor such as "@daily".
func NewSweeper(svc *Service, schedule string) (*Sweeper, error) {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	sw := &Sweeper{
		svc:  svc,
		cron: cron.New(cron.WithLocation(time.UTC)),
	}
	if _, err := sw.cron.AddFunc(schedule, sw.run); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return sw, nil
}

// Start runs the schedule in the background.
func (sw *Sweeper) Start() {
	sw.cron.Start()
	log.Info("[sweeper] expired job sweeper started")
}

// Stop halts the schedule and waits for a running sweep to finish or ctx to end.
func (sw *Sweeper) Stop(ctx context.Context) {
	done := sw.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// RunOnce closes every job that has expired by now and returns how many were closed.
func (sw *Sweeper) RunOnce(ctx context.Context) (int, error) {
	closed, err := sw.svc.CloseExpiredJobs(ctx, sw.svc.clock())
	return len(closed), err
}

func (sw *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := sw.RunOnce(ctx)
	if err != nil {
		log.WithError(err).Error("[sweeper] failed to close expired jobs")
		return
	}
	if n > 0 {
		log.WithField("closed", n).Info("[sweeper] closed expired jobs")
	}
}
