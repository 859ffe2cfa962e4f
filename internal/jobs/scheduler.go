package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

// ReminderRunner is satisfied by the reminder use case.
type ReminderRunner interface {
	Execute(ctx context.Context) (int, error)
}

// Scheduler runs the periodic jobs in the deployment's timezone.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

func NewScheduler(loc *time.Location, log *slog.Logger) *Scheduler {
	cl := cronLogger{log: log}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log: log,
	}
}

func (s *Scheduler) AddReminders(spec string, uc ReminderRunner) error {
	_, err := s.cron.AddFunc(spec, reminderJob(uc, s.log))
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job or ctx, whichever comes
// first.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func reminderJob(uc ReminderRunner, log *slog.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		n, err := uc.Execute(ctx)
		if err != nil {
			log.Error("reminder job failed", "err", err)
			return
		}

		log.Info("reminder job finished",
			"appointments", n,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// cronLogger routes cron's internal logging into slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: "+msg, append([]interface{}{"err", err}, keysAndValues...)...)
}
