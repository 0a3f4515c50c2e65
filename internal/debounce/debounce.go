package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of edits into one flush. A single timer
// exists at a time: every Schedule call records the key/value pair and
// restarts the quiescence window, and when the window elapses with no
// further edits the whole pending batch is handed to the flush callback.
// Within a burst the last value scheduled for a key wins, but distinct
// keys are all retained.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timer   *time.Timer
	pending map[string]string
	flush   func(map[string]string)
	stopped bool
}

func New(window time.Duration, flush func(map[string]string)) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]string),
		flush:   flush,
	}
}

// Schedule records an edit and (re)arms the quiescence timer, cancelling
// any pending one.
func (d *Debouncer) Schedule(key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending[key] = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	batch := d.take()
	d.mu.Unlock()
	if len(batch) > 0 {
		d.flush(batch)
	}
}

// Flush synchronously writes out anything pending, cancelling the timer.
// Used before submission and on shutdown so no edit is lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	batch := d.take()
	d.mu.Unlock()
	if len(batch) > 0 {
		d.flush(batch)
	}
}

// Stop cancels any pending timer and rejects further schedules. Pending
// edits are discarded; call Flush first if they must survive.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports how many keys are waiting to be flushed.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *Debouncer) take() map[string]string {
	batch := d.pending
	d.pending = make(map[string]string)
	return batch
}
