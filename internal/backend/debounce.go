package backend

import (
	"slices"
	"time"
)

// debouncer coalesces bursts of filesystem changes per directory and
// releases them once the burst has been quiet for interval.
type debouncer struct {
	interval time.Duration

	pending map[string]string
	timer   *time.Timer
}

func newDebouncer(interval time.Duration) *debouncer {
	if interval < 0 {
		interval = 0
	}
	return &debouncer{interval: interval, pending: make(map[string]string)}
}

// add records a change for dir and re-arms the quiet period.
func (d *debouncer) add(dir, op string) {
	d.pending[dir] = op
	if d.timer == nil {
		d.timer = time.NewTimer(d.interval)
		return
	}
	if !d.timer.Stop() {
		select {
		case <-d.timer.C:
		default:
		}
	}
	d.timer.Reset(d.interval)
}

// C fires when pending changes are ready. It is nil while nothing is pending.
func (d *debouncer) C() <-chan time.Time {
	if d.timer == nil || len(d.pending) == 0 {
		return nil
	}
	return d.timer.C
}

// drain returns the pending changes ordered by directory and resets the
// debouncer.
func (d *debouncer) drain() []Event {
	dirs := make([]string, 0, len(d.pending))
	for dir := range d.pending {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	events := make([]Event, 0, len(dirs))
	for _, dir := range dirs {
		events = append(events, Event{Dir: dir, Op: d.pending[dir]})
	}
	clear(d.pending)
	return events
}

func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
