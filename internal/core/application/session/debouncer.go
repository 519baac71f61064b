package session

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into one action per key. Each
// Trigger restarts the key's timer; only the action of the last Trigger in
// a burst runs, after the configured delay of quiet.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timers map[int]*time.Timer
	closed bool
}

// NewDebouncer creates a debouncer with the given quiet delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[int]*time.Timer),
	}
}

// Trigger schedules action to run after the delay, replacing any action
// already pending for the same key. Triggers on a closed debouncer are
// ignored.
func (d *Debouncer) Trigger(key int, action func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if timer, ok := d.timers[key]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current, ok := d.timers[key]
		if !ok || current != timer || d.closed {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()

		action()
	})
	d.timers[key] = timer
}

// Cancel drops the pending action for a key, if any.
func (d *Debouncer) Cancel(key int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[key]; ok {
		timer.Stop()
		delete(d.timers, key)
	}
}

// CancelAll drops every pending action.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}

// Close cancels all pending actions and rejects further triggers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
