package session

import (
	"sync"
	"time"
)

// IdleWatcher tracks a monotonic last-activity timestamp and fires onIdle
// once the session has been quiet for the full timeout. The timer is re-armed
// after every activity reset and on early wakeups, and Stop tears it down so
// no timer survives a kiosk mode toggle.
type IdleWatcher struct {
	timeout time.Duration
	onIdle  func()

	mu      sync.Mutex
	last    time.Time
	timer   *time.Timer
	idle    bool
	stopped bool
}

func NewIdleWatcher(timeout time.Duration, onIdle func()) *IdleWatcher {
	w := &IdleWatcher{
		timeout: timeout,
		onIdle:  onIdle,
		last:    time.Now(),
	}
	w.timer = time.AfterFunc(timeout, w.check)
	return w
}

// Touch records activity and clears any idle condition.
func (w *IdleWatcher) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.last = time.Now()
	w.idle = false
	w.timer.Reset(w.timeout)
}

// Idle reports whether the watcher has fired since the last activity.
func (w *IdleWatcher) Idle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idle
}

// Stop cancels the pending timer. The watcher cannot be restarted.
func (w *IdleWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	w.timer.Stop()
}

func (w *IdleWatcher) check() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	remaining := w.timeout - time.Since(w.last)
	if remaining > 0 {
		// Activity arrived while we slept; re-arm for the remainder.
		w.timer.Reset(remaining)
		w.mu.Unlock()
		return
	}
	w.idle = true
	onIdle := w.onIdle
	w.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
}
