package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Cadence paces the polling loop. Unlike a cron engine it never runs jobs on its own goroutine:
// the caller blocks in Wait until the next activation of the schedule.
type Cadence struct {
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

// NewCadence parses spec as a standard cron expression or descriptor such as "@every 10m".
func NewCadence(spec string, logger *logrus.Entry) (*Cadence, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &Cadence{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}, nil
}

// Next returns the next activation after t.
func (c *Cadence) Next(t time.Time) time.Time {
	return c.schedule.Next(t)
}

// Wait blocks until the next activation or until ctx is done.
func (c *Cadence) Wait(ctx context.Context) error {
	now := c.now()
	next := c.schedule.Next(now)
	delay := next.Sub(now)
	c.logger.Debugf("Next poll at %s (in %s)", next.Format("2006-01-02 15:04:05"), delay.Round(time.Second))

	select {
	case <-c.after(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
