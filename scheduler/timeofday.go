// Package scheduler implements PicoFramework's TimerService: one-shot,
// interval, time-of-day and duration job scheduling, grounded on
// original_source's events/TimerService.h/.cpp and time/TimeOfDay.h and
// built on the teacher's modules/scheduler's cron-backed service shape.
package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time of day (no date), matching
// original_source's TimeOfDay.h.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// toSeconds returns the number of seconds since local midnight.
func (t TimeOfDay) toSeconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// String renders "HH:MM:SS", or "HH:MM" when Second is zero -- the
// original's round-trip string form, restored for config-driven job
// definitions (a daily job's time is naturally authored as a string in
// YAML/TOML).
func (t TimeOfDay) String() string {
	if t.Second == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
		nums[i] = n
	}
	tod := TimeOfDay{Hour: nums[0], Minute: nums[1]}
	if len(nums) == 3 {
		tod.Second = nums[2]
	}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 || tod.Second < 0 || tod.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return tod, nil
}

// UnmarshalText lets TimeOfDay appear as a plain
// "HH:MM" string in YAML/TOML config sections.
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
