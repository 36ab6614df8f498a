// Package scheduler runs periodic jobs on cron schedules.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Job is a named unit of periodic work.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context) error
}

// Scheduler wraps a cron runner whose jobs log their outcome.
type Scheduler struct {
	cron    *cron.Cron
	loc     *time.Location
	now     func() time.Time
	logger  *slog.Logger
	timeout time.Duration
}

// New creates a scheduler evaluating schedules in the named time zone.
func New(timezone string, logger *slog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %s", timezone)
	}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		loc:     loc,
		now:     time.Now,
		logger:  logger,
		timeout: 10 * time.Minute,
	}, nil
}

// Now is the current time in the scheduler's time zone.
func (s *Scheduler) Now() time.Time {
	return s.now().In(s.loc)
}

// Yesterday is the previous calendar day in the scheduler's time zone.
func (s *Scheduler) Yesterday() time.Time {
	return s.Now().AddDate(0, 0, -1)
}

// Add registers a job; the schedule uses the standard five-field syntax.
func (s *Scheduler) Add(job Job) error {
	_, err := s.cron.AddFunc(job.Schedule, func() {
		s.run(job)
	})

	return errors.Wrapf(err, "schedule job %s", job.Name)
}

func (s *Scheduler) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	if err := job.Run(ctx); err != nil {
		s.logger.Error("[Scheduler] Job failed",
			slog.String("job", job.Name),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("[Scheduler] Job finished",
		slog.String("job", job.Name),
		slog.Duration("elapsed", time.Since(started)),
	)
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
