package clock

import (
	"sync"
	"testing"
	"time"
)

// steppableClock hands out a fixed time until advanced.
type steppableClock struct {
	mu sync.Mutex
	at time.Time
}

func (c *steppableClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

func (c *steppableClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
}

func TestMidnightRollover(t *testing.T) {
	clock := &steppableClock{at: time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)}
	rollovers := make(chan string, 1)

	watcher := Watch(func(day string) { rollovers <- day },
		WithClock(clock.now),
		WithInterval(time.Millisecond))
	defer watcher.Stop()

	// Still the same day: no callback.
	select {
	case day := <-rollovers:
		t.Fatalf("unexpected rollover to %s", day)
	case <-time.After(20 * time.Millisecond):
	}

	clock.advance(2 * time.Second)
	select {
	case day := <-rollovers:
		if day != "2024-03-02" {
			t.Errorf("rolled over to %s, want 2024-03-02", day)
		}
	case <-time.After(time.Second):
		t.Fatal("no rollover observed after the date changed")
	}

	// No repeat callback while the day stays the same.
	select {
	case day := <-rollovers:
		t.Fatalf("duplicate rollover to %s", day)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestMidnightConsecutiveDays(t *testing.T) {
	clock := &steppableClock{at: time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)}
	rollovers := make(chan string, 2)

	watcher := Watch(func(day string) { rollovers <- day },
		WithClock(clock.now),
		WithInterval(time.Millisecond))
	defer watcher.Stop()

	for _, want := range []string{"2024-03-02", "2024-03-03"} {
		clock.advance(24 * time.Hour)
		select {
		case day := <-rollovers:
			if day != want {
				t.Errorf("rolled over to %s, want %s", day, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("no rollover observed for %s", want)
		}
	}
}

func TestMidnightStopIsIdempotent(t *testing.T) {
	watcher := Watch(func(string) {}, WithInterval(time.Millisecond))
	watcher.Stop()
	watcher.Stop() // must not panic
}

func TestMidnightNoCallbackAfterStop(t *testing.T) {
	clock := &steppableClock{at: time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)}
	rollovers := make(chan string, 1)

	watcher := Watch(func(day string) { rollovers <- day },
		WithClock(clock.now),
		WithInterval(time.Millisecond))
	watcher.Stop()

	// Give the watcher goroutine time to observe the stop before the date
	// changes.
	time.Sleep(10 * time.Millisecond)
	clock.advance(2 * time.Second)
	select {
	case day := <-rollovers:
		t.Fatalf("callback fired after Stop: %s", day)
	case <-time.After(20 * time.Millisecond):
	}
}
