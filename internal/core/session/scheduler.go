package session

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Scheduler provides the engine's view of time: a wall clock and cancellable
// single-shot callbacks. Periodic schedules are built by the engine from
// absolute offsets against phase start, so they never drift and never chain
// off callback completion.
type Scheduler interface {
	Now() time.Time
	Schedule(delay time.Duration, fn func()) (cancel func())
}

type systemScheduler struct {
	clock clock.Clock
}

// NewSystemScheduler returns a Scheduler backed by the real clock.
func NewSystemScheduler() Scheduler {
	return &systemScheduler{clock: clock.New()}
}

func (scheduler *systemScheduler) Now() time.Time {
	return scheduler.clock.Now()
}

func (scheduler *systemScheduler) Schedule(delay time.Duration, fn func()) func() {
	if delay < 0 {
		delay = 0
	}
	timer := scheduler.clock.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}
