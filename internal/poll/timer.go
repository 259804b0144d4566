// Package poll provides a single recurring timer with handle-based cancellation.
package poll

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrRunning  = errors.New("poll: timer already running")
	ErrInterval = errors.New("poll: interval must be positive")
)

// Handle identifies one Start call. The zero Handle never refers to a timer.
type Handle uint64

// Timer runs at most one recurring callback at a time. The zero value is ready to use.
type Timer struct {
	mu      sync.Mutex
	last    Handle
	current Handle
	stop    chan struct{}
}

func New() *Timer {
	return &Timer{}
}

// Start calls fn every interval on a dedicated goroutine until the returned handle is
// stopped. Callbacks never overlap; ticks that land while fn is running are dropped.
func (t *Timer) Start(interval time.Duration, fn func()) (Handle, error) {
	if interval <= 0 {
		return 0, ErrInterval
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		return 0, ErrRunning
	}

	t.last++
	t.current = t.last
	t.stop = make(chan struct{})

	go run(interval, fn, t.stop)

	return t.current, nil
}

// Stop cancels the timer behind h. Stale, zero and unknown handles are ignored.
// It does not wait for a callback that is already running.
func (t *Timer) Stop(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if h == 0 || h != t.current || t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
	t.current = 0
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func run(interval time.Duration, fn func(), stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// a tick and a stop can be ready together
			select {
			case <-stop:
				return
			default:
			}
			fn()
		}
	}
}
