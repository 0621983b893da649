// Package scheduler fires the push jobs on wall-clock triggers in the bot's
// time zone. It ticks well under a minute and dedupes per trigger window, so
// each job fires exactly once at its scheduled time.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const tickInterval = 30 * time.Second

// Jobs are the scheduled pushes. Each runs synchronously on the scheduler
// goroutine; a slow fetch delays later triggers rather than overlapping
// them.
type Jobs struct {
	Daily          func()
	SaturdayDigest func()
	EveningAlerts  func()
	HourlyTicker   func()
}

type Scheduler struct {
	loc         *time.Location
	dailyHour   int
	tickerStart int
	tickerEnd   int
	jobs        Jobs

	fired map[string]string
}

func New(loc *time.Location, dailyHour, tickerStart, tickerEnd int, jobs Jobs) *Scheduler {
	return &Scheduler{
		loc:         loc,
		dailyHour:   dailyHour,
		tickerStart: tickerStart,
		tickerEnd:   tickerEnd,
		jobs:        jobs,
		fired:       make(map[string]string),
	}
}

// Run ticks until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(time.Now().In(s.loc))
		}
	}
}

// tick evaluates every trigger against the current time. Split out from Run
// so the trigger logic is testable with synthetic clocks.
func (s *Scheduler) tick(now time.Time) {
	day := now.Format("2006-01-02")

	if now.Hour() == s.dailyHour && now.Minute() == 0 {
		s.fireOnce("daily", day, s.jobs.Daily)
	}

	if now.Weekday() == time.Saturday && now.Hour() == 7 && now.Minute() == 0 {
		s.fireOnce("saturday-digest", day, s.jobs.SaturdayDigest)
	}

	if now.Hour() == 20 && now.Minute() == 0 {
		s.fireOnce("evening-alerts", day, s.jobs.EveningAlerts)
	}

	if now.Minute() == 0 && now.Hour() >= s.tickerStart && now.Hour() < s.tickerEnd {
		s.fireOnce("hourly", now.Format("2006-01-02T15"), s.jobs.HourlyTicker)
	}
}

func (s *Scheduler) fireOnce(job, key string, fn func()) {
	if fn == nil || s.fired[job] == key {
		return
	}
	s.fired[job] = key

	log.Info().Str("job", job).Str("window", key).Msg("Firing scheduled job")
	fn()
}
