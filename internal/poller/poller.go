// Package poller drives a submitted generation task to a terminal state by
// querying the provider at a fixed interval until the task completes, fails
// or exceeds its timeout.
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"examplegen/internal/domain"
	"examplegen/internal/infra"
	"examplegen/internal/providers/generation"
)

const (
	DefaultTimeout  = 900 * time.Second
	DefaultInterval = 6 * time.Second

	MinTimeout  = 10 * time.Second
	MinInterval = 2 * time.Second
)

// Options configures a Poller. Now and Sleep exist so tests can drive time.
type Options struct {
	Fetcher  generation.StatusFetcher
	Timeout  time.Duration
	Interval time.Duration
	Now      func() time.Time
	Sleep    func(ctx context.Context, d time.Duration) error
	Logger   *infra.Logger
}

// Poller polls one task at a time.
type Poller struct {
	fetcher  generation.StatusFetcher
	timeout  time.Duration
	interval time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	logger   *infra.Logger
}

// ValidateSettings enforces the CLI lower bounds on timeout and interval.
func ValidateSettings(timeout, interval time.Duration) error {
	if timeout < MinTimeout {
		return fmt.Errorf("%w: poll_timeout must be at least %d seconds", domain.ErrInvalidConfig, int(MinTimeout/time.Second))
	}
	if interval < MinInterval {
		return fmt.Errorf("%w: poll_interval must be at least %d seconds", domain.ErrInvalidConfig, int(MinInterval/time.Second))
	}
	return nil
}

// New returns a Poller. Zero durations fall back to the defaults.
func New(opts Options) (*Poller, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("poller: status fetcher is required")
	}
	p := &Poller{
		fetcher:  opts.Fetcher,
		timeout:  opts.Timeout,
		interval: opts.Interval,
		now:      opts.Now,
		sleep:    opts.Sleep,
		logger:   opts.Logger,
	}
	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}
	if p.interval <= 0 {
		p.interval = DefaultInterval
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.sleep == nil {
		p.sleep = sleepContext
	}
	if p.logger == nil {
		p.logger = infra.NopLogger()
	}
	return p, nil
}

// Poll queries taskID until it reaches completed, failed or timeout. A status
// query error aborts polling and is returned as is.
func (p *Poller) Poll(ctx context.Context, taskID string) (domain.PollResult, error) {
	start := p.now()
	attempt := 0
	for {
		attempt++
		report, err := p.fetcher.Status(ctx, taskID)
		if err != nil {
			return domain.PollResult{}, fmt.Errorf("poll %s: %w", taskID, err)
		}

		switch report.Status {
		case domain.TaskStatusCompleted, domain.TaskStatusFailed:
			p.logger.Info().
				Str("task_id", taskID).
				Str("status", string(report.Status)).
				Int("attempts", attempt).
				Int("urls", len(report.URLs)).
				Msg("poller: task resolved")
			return domain.PollResult{
				Status:       report.Status,
				URLs:         report.URLs,
				ErrorMessage: report.ErrorMessage,
				Raw:          report.Raw,
			}, nil
		}

		if p.now().Sub(start) >= p.timeout {
			p.logger.Warn().
				Str("task_id", taskID).
				Str("last_status", string(report.Status)).
				Int("attempts", attempt).
				Msg("poller: task timed out")
			return domain.PollResult{
				Status:       domain.TaskStatusTimeout,
				URLs:         report.URLs,
				ErrorMessage: fmt.Sprintf("Polling timed out after %d seconds", int(p.timeout/time.Second)),
				Raw:          report.Raw,
			}, nil
		}

		p.logger.Debug().
			Str("task_id", taskID).
			Str("status", string(report.Status)).
			Msg("poller: waiting")
		if err := p.sleep(ctx, p.interval); err != nil {
			return domain.PollResult{}, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
