package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	batches []map[string]string
}

func (r *recorder) flush(batch map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, batch)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func (r *recorder) batch(i int) map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches[i]
}

func TestBurstCoalescesIntoOneFlush(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.flush)
	defer d.Stop()

	d.Schedule("0-0", "a")
	d.Schedule("0-0", "b")
	d.Schedule("0-1", "c")

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	batch := rec.batch(0)
	// Last value per key wins, distinct keys are all retained.
	assert.Equal(t, map[string]string{"0-0": "b", "0-1": "c"}, batch)
	assert.Equal(t, 0, d.Pending())
}

func TestNewEditRestartsWindow(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.flush)
	defer d.Stop()

	d.Schedule("0-0", "a")
	time.Sleep(30 * time.Millisecond)
	d.Schedule("0-0", "b")
	time.Sleep(30 * time.Millisecond)

	// 60ms elapsed but the window restarted at 30ms, so nothing fired yet.
	assert.Equal(t, 0, rec.count())

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "b", rec.batch(0)["0-0"])
}

func TestFlushForcesPendingOut(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.flush)
	defer d.Stop()

	d.Schedule("1-2", "draft")
	d.Flush()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, map[string]string{"1-2": "draft"}, rec.batch(0))

	// Nothing pending, a second flush is a no-op.
	d.Flush()
	assert.Equal(t, 1, rec.count())
}

func TestStopDiscardsPending(t *testing.T) {
	rec := &recorder{}
	d := New(10*time.Millisecond, rec.flush)

	d.Schedule("0-0", "a")
	d.Stop()
	d.Schedule("0-1", "b") // rejected after Stop

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestSeparateBurstsFlushSeparately(t *testing.T) {
	rec := &recorder{}
	d := New(15*time.Millisecond, rec.flush)
	defer d.Stop()

	d.Schedule("0-0", "first")
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	d.Schedule("0-0", "second")
	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, "first", rec.batch(0)["0-0"])
	assert.Equal(t, "second", rec.batch(1)["0-0"])
}
