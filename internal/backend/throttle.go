package backend

import (
	"sync"
	"time"
)

// throttle spaces out successive Reminders fetches so a burst of refresh
// requests never hammers the osascript bridge faster than the configured
// poll interval. A zero interval disables the spacing entirely.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until at least one interval has passed since the previous
// fetch was admitted. Safe to call from concurrent poll loops.
func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		time.Sleep(wait)
	}
}
