package storage

import (
	"sync"
	"time"
)

// debouncer coalesces rapid per-key triggers into one delayed firing per
// key. A new trigger for a key that already has a pending timer replaces
// the timer rather than queuing a second firing, so a timer ticking every
// second or a drag gesture produces one write per quiet period instead of
// one per event. Different keys debounce independently.
type debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[string]*time.Timer
	fire   func()
}

func newDebouncer(delay time.Duration, fire func()) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
		fire:   fire,
	}
}

// Trigger schedules a firing for key after the debounce delay, replacing
// any pending one. A non-positive delay fires synchronously.
func (d *debouncer) Trigger(key string) {
	if d.delay <= 0 {
		d.fire()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		d.fire()
	})
}

// Flush cancels all pending timers and fires once if any were pending.
func (d *debouncer) Flush() {
	d.mu.Lock()
	pending := len(d.timers) > 0
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
	d.mu.Unlock()

	if pending {
		d.fire()
	}
}
