package scheduler

import (
	"context"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/internal/metrics"
	"github.com/Iqura-Alam/HireUp/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the background maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	jobs domain.JobRepository
}

func New(jobs domain.JobRepository) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: jobs,
	}
}

// Start registers the jobs and starts the cron loop. The expiry sweep runs
// hourly and once immediately so restarts do not leave stale listings open.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.sweepExpiredJobs); err != nil {
		return err
	}
	s.cron.Start()
	go s.sweepExpiredJobs()
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) sweepExpiredJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.jobs.ExpireDue(ctx, time.Now())
	if err != nil {
		logger.Log.Error("job expiry sweep failed", "error", err.Error())
		return
	}
	if count > 0 {
		metrics.JobsExpired.Add(float64(count))
		logger.Log.Info("expired stale job postings", "count", count)
	}
}
