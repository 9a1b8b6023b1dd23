package scheduler

import "errors"

var (
	ErrInvalidTimeOfDay = errors.New("scheduler: invalid time-of-day string")

	// ErrEmptyDayMask is returned by ScheduleDailyAt when daysMask == 0,
	// per the recorded Open Question decision: reject at schedule time
	// rather than silently installing a 24h-recurring no-op.
	ErrEmptyDayMask = errors.New("scheduler: daily job requires a non-empty day mask")

	ErrJobNotFound   = errors.New("scheduler: job id not found")
	ErrEmptyJobID    = errors.New("scheduler: job id must not be empty")
	ErrStopped       = errors.New("scheduler: service stopped")
	ErrNilJobFunc    = errors.New("scheduler: job function must not be nil")
)
