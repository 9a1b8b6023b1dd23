package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
)

// dailySchedule implements cron.Schedule using the original firmware's
// secondsUntilNextMatch algorithm. cron.Schedule is a one-method interface
// (Next(time.Time) time.Time), exactly the seam needed to drop a custom
// day-mask/time-of-day rule into robfig/cron/v3's dispatcher.
type dailySchedule struct {
	tod  TimeOfDay
	mask DaysOfWeek
}

var _ cron.Schedule = dailySchedule{}

func (d dailySchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(secondsUntilNextMatch(d.tod, d.mask, t)) * time.Second)
}

// secondsUntilNextMatch ports original_source's
// framework/src/events/TimerService.cpp::secondsUntilNextMatch, including
// its offset>0 branch, which adds a full extra day beyond the seconds
// remaining in the current day -- that is the original's actual
// arithmetic and is followed here rather than corrected.
func secondsUntilNextMatch(tod TimeOfDay, mask DaysOfWeek, now time.Time) int {
	today := int(now.Weekday())
	nowSec := now.Hour()*3600 + now.Minute()*60 + now.Second()
	targetSec := tod.toSeconds()

	for offset := 0; offset < 7; offset++ {
		checkDay := (today + offset) % 7
		if mask&(1<<uint(checkDay)) == 0 {
			continue
		}
		if offset == 0 && targetSec <= nowSec {
			continue
		}
		if offset == 0 {
			return targetSec - nowSec
		}
		return offset*86400 + (targetSec + 86400 - nowSec)
	}
	return 86400
}

// onceSchedule fires exactly once at `at`; after that it schedules itself
// effectively never again. The job callback removes the cron entry once it
// fires, so this is a belt-and-braces guard against double-firing.
type onceSchedule struct {
	at time.Time
}

var _ cron.Schedule = onceSchedule{}

func (o onceSchedule) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}
	return t.AddDate(100, 0, 0)
}
