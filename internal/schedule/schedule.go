package schedule

import (
	"sync"
	"time"
)

// Task is a scheduled callback that can be cancelled.
type Task interface {
	// Cancel stops the task. Safe to call more than once.
	Cancel()
}

// Scheduler runs deferred and recurring callbacks and reports the current time.
type Scheduler interface {
	Now() time.Time
	// Every runs fn every d until the returned task is cancelled.
	Every(d time.Duration, fn func()) Task
	// After runs fn once after d unless the returned task is cancelled first.
	After(d time.Duration, fn func()) Task
}

// Clock is a Scheduler backed by the wall clock.
type Clock struct{}

// NewClock returns a scheduler using real timers
func NewClock() Clock {
	return Clock{}
}

// Now returns the local wall-clock time
func (Clock) Now() time.Time {
	return time.Now()
}

// Every starts a ticker goroutine that calls fn on each tick
func (Clock) Every(d time.Duration, fn func()) Task {
	task := &tickerTask{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}

	go func() {
		defer task.ticker.Stop()
		for {
			select {
			case <-task.done:
				return
			case <-task.ticker.C:
				fn()
			}
		}
	}()

	return task
}

// After calls fn once after d
func (Clock) After(d time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(d, fn)}
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() {
		close(t.done)
	})
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() {
	t.timer.Stop()
}
