package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is the callback a scheduled job invokes on the dedicated timer
// goroutine cron.Cron drives internally -- spec.md §4.3's requirement
// that "timer callbacks run in a dedicated timer thread", not on the
// caller's goroutine.
type JobFunc func(ctx context.Context)

// jobRecord tracks the cron entries backing one scheduled job id. Duration
// jobs own two entries (start and stop); everything else owns one.
type jobRecord struct {
	entries  []cron.EntryID
	periodic bool
}

// TimerService is PicoFramework's scheduling service, grounded on
// original_source's events/TimerService.h/.cpp for the operation set
// (ScheduleAt/ScheduleEvery/ScheduleDailyAt/ScheduleDuration/Cancel) and
// on the teacher's modules/scheduler for the cron.Cron-backed Go service
// shape.
type TimerService struct {
	mu   sync.Mutex
	cron *cron.Cron
	jobs map[string]jobRecord
}

// NewTimerService creates a TimerService. Start must run before any job
// is scheduled.
func NewTimerService() *TimerService {
	return &TimerService{
		cron: cron.New(),
		jobs: make(map[string]jobRecord),
	}
}

// Start begins the dedicated timer goroutine.
func (s *TimerService) Start(ctx context.Context) error {
	s.cron.Start()
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
	return nil
}

// Stop halts the timer goroutine, waiting for any in-flight job to finish.
func (s *TimerService) Stop(ctx context.Context) error {
	<-s.cron.Stop().Done()
	return nil
}

// ScheduleAt runs fn once, at the given absolute time. Re-scheduling the
// same id cancels the previous handle atomically (the recorded Open
// Question decision: no error is surfaced for the overwrite).
func (s *TimerService) ScheduleAt(id string, at time.Time, fn JobFunc) error {
	if id == "" {
		return ErrEmptyJobID
	}
	if fn == nil {
		return ErrNilJobFunc
	}
	if !at.After(time.Now()) {
		s.Cancel(id)
		go fn(context.Background())
		return nil
	}
	return s.install(id, false, []cron.Schedule{onceSchedule{at: at}}, []JobFunc{s.selfRemoving(id, fn)})
}

// ScheduleEvery runs fn on a fixed interval starting one interval from now.
func (s *TimerService) ScheduleEvery(id string, interval time.Duration, fn JobFunc) error {
	if id == "" {
		return ErrEmptyJobID
	}
	if fn == nil {
		return ErrNilJobFunc
	}
	return s.install(id, true, []cron.Schedule{cron.ConstantDelaySchedule{Delay: interval}}, []JobFunc{fn})
}

// ScheduleDailyAt runs fn at tod on every day set in mask. An empty mask
// is rejected with ErrEmptyDayMask rather than silently installing a
// 24h-recurring no-op (the recorded Open Question decision).
func (s *TimerService) ScheduleDailyAt(id string, tod TimeOfDay, mask DaysOfWeek, fn JobFunc) error {
	if id == "" {
		return ErrEmptyJobID
	}
	if fn == nil {
		return ErrNilJobFunc
	}
	if mask == 0 {
		return ErrEmptyDayMask
	}
	return s.install(id, true, []cron.Schedule{dailySchedule{tod: tod, mask: mask}}, []JobFunc{fn})
}

// ScheduleDuration runs onStart at tod on every day in mask, then runs
// onStop once duration later. Matches original_source's scheduleDuration:
// both entries are computed from one secondsUntilNextMatch call and fire
// once each; re-arming for the following day is the caller's
// responsibility (original_source documents day-boundary rescheduling as
// unimplemented).
func (s *TimerService) ScheduleDuration(id string, start TimeOfDay, mask DaysOfWeek, duration time.Duration, onStart, onStop JobFunc) error {
	if id == "" {
		return ErrEmptyJobID
	}
	if onStart == nil || onStop == nil {
		return ErrNilJobFunc
	}
	if mask == 0 {
		return ErrEmptyDayMask
	}

	startDelay := time.Duration(secondsUntilNextMatch(start, mask, time.Now())) * time.Second
	startAt := time.Now().Add(startDelay)
	stopAt := startAt.Add(duration)

	return s.install(id, false,
		[]cron.Schedule{onceSchedule{at: startAt}, onceSchedule{at: stopAt}},
		[]JobFunc{onStart, onStop})
}

// Cancel stops and removes the job registered under id. Idempotent.
func (s *TimerService) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.jobs[id]
	if !ok {
		return
	}
	for _, entryID := range rec.entries {
		s.cron.Remove(entryID)
	}
	delete(s.jobs, id)
}

// install registers one or more (schedule, job) pairs under id, replacing
// any existing registration for id first.
func (s *TimerService) install(id string, periodic bool, schedules []cron.Schedule, fns []JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, exists := s.jobs[id]; exists {
		for _, entryID := range rec.entries {
			s.cron.Remove(entryID)
		}
		delete(s.jobs, id)
	}

	entries := make([]cron.EntryID, 0, len(schedules))
	for i, sched := range schedules {
		fn := fns[i]
		entryID := s.cron.Schedule(sched, cron.FuncJob(func() { fn(context.Background()) }))
		entries = append(entries, entryID)
	}

	s.jobs[id] = jobRecord{entries: entries, periodic: periodic}
	return nil
}

// selfRemoving wraps a one-shot job's callback so the job's own cron entry
// is torn down after it fires, since cron.Cron has no native one-shot
// entry type.
func (s *TimerService) selfRemoving(id string, fn JobFunc) JobFunc {
	return func(ctx context.Context) {
		fn(ctx)
		s.Cancel(id)
	}
}

