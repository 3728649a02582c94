package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher regenerates stale insight cache entries
type Refresher interface {
	RefreshStaleInsights(ctx context.Context) (int, error)
}

// InsightRefreshJob regenerates cached insights whose client data changed since generation
type InsightRefreshJob struct {
	refresher Refresher
	timeout   time.Duration
	log       *logrus.Entry
}

// NewInsightRefreshJob creates the job; timeout bounds a single run
func NewInsightRefreshJob(refresher Refresher, timeout time.Duration, log *logrus.Logger) *InsightRefreshJob {
	return &InsightRefreshJob{
		refresher: refresher,
		timeout:   timeout,
		log:       log.WithField("job", "insight_refresh"),
	}
}

// Name returns the job name
func (j *InsightRefreshJob) Name() string {
	return "insight_refresh"
}

// Run executes one refresh pass
func (j *InsightRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.refresher.RefreshStaleInsights(ctx)
	j.log.Infof("Refreshed %d stale insight entries", n)
	return err
}
