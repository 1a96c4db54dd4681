// Package clock provides the midnight watcher that drives same-day cache
// invalidation for long-running sessions.
package clock

import (
	"sync"
	"time"

	"github.com/noorjournal/noor/internal/utils"
)

// Midnight polls the current day key once a second and invokes its
// callback when the calendar date rolls over. It is single-owner: create
// one, and call Stop when it is no longer observed so the repeating
// callback does not leak.
type Midnight struct {
	onRollover func(day string)
	now        func() time.Time
	interval   time.Duration

	done     chan struct{}
	stopOnce sync.Once
}

// Option adjusts a watcher, mainly for tests.
type Option func(*Midnight)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(m *Midnight) { m.now = now }
}

// WithInterval replaces the one-second polling interval.
func WithInterval(d time.Duration) Option {
	return func(m *Midnight) { m.interval = d }
}

// Watch starts a watcher that calls onRollover with the new day key each
// time the date changes.
func Watch(onRollover func(day string), opts ...Option) *Midnight {
	m := &Midnight{
		onRollover: onRollover,
		now:        time.Now,
		interval:   time.Second,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	go m.run()
	return m
}

func (m *Midnight) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	current := utils.DayKey(m.now())
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			day := utils.DayKey(m.now())
			if day != current {
				current = day
				m.onRollover(day)
			}
		}
	}
}

// Stop tears the watcher down. Safe to call more than once.
func (m *Midnight) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}
