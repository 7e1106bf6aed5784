package distribution

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sherine-k/queuesim/pkg/config"
)

// Cron yields the gaps between successive firings of a cron schedule, so that
// arrivals happen exactly when the schedule fires
type Cron struct {
	schedule cron.Schedule
	unit     time.Duration
	current  time.Time
}

// NewCron creates a sampler for the cron expression expr starting at start, with gaps measured in unit
func NewCron(expr string, start time.Time, unit time.Duration) (*Cron, error) {
	if unit <= 0 {
		return nil, fmt.Errorf("unit must be greater than 0")
	}

	schedule, err := config.CronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cron schedule %q: %w", expr, err)
	}

	if schedule.Next(start).IsZero() {
		return nil, fmt.Errorf("cron schedule %q never fires after %s", expr, start.Format(time.RFC3339))
	}

	return &Cron{
		schedule: schedule,
		unit:     unit,
		current:  start,
	}, nil
}

// Rand returns the time until the next firing and moves past it
func (c *Cron) Rand() float64 {
	next := c.schedule.Next(c.current)
	gap := next.Sub(c.current)
	c.current = next
	return float64(gap) / float64(c.unit)
}

// Current returns the time of the last firing handed out
func (c *Cron) Current() time.Time {
	return c.current
}
