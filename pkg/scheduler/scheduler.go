package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is the unit of work driven by the scheduler: here, pushing the
// durable document to the remote store.
type Job func(context.Context) error

// jobTimeout bounds a single run. A backup push is two short network
// calls; anything longer is a stuck upstream, not progress.
const jobTimeout = time.Minute

// DefaultParser accepts standard cron expressions with optional seconds
// and descriptors such as "@daily".
var DefaultParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

// Scheduler runs one job on a cron expression.
type Scheduler struct {
	cron        *cron.Cron
	expression  string
	job         Job
	started     bool
	startStopMu sync.Mutex
	entryID     cron.EntryID
}

// New creates a scheduler for the provided cron expression and job.
func New(expression string, job Job) (*Scheduler, error) {
	if expression == "" {
		return nil, errors.New("cron expression cannot be empty")
	}

	if job == nil {
		return nil, errors.New("job cannot be nil")
	}

	if _, err := DefaultParser.Parse(expression); err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	return &Scheduler{
		expression: expression,
		job:        job,
		cron:       cron.New(cron.WithParser(DefaultParser)),
	}, nil
}

// Start schedules the job according to the configured cron expression.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	job := func() {
		if err := s.Run(ctx); err != nil {
			slog.Error("scheduled backup failed", "error", err)
		}
	}

	entryID, err := s.cron.AddFunc(s.expression, job)
	if err != nil {
		return fmt.Errorf("schedule job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.started = true

	if ctx != nil {
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
	}

	return nil
}

// Stop halts the scheduler and waits for any running job to finish.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.startStopMu.Lock()
	if !s.started {
		s.startStopMu.Unlock()
		return
	}

	ctx := s.cron.Stop()
	s.started = false
	s.startStopMu.Unlock()

	<-ctx.Done()
}

// Run executes the job immediately, bounded by the run timeout.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	return s.job(ctx)
}
