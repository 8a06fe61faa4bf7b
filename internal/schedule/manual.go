package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	manual *Manual
	at     time.Time
	every  time.Duration
	fn     func()
	seq    int
}

// NewManual creates a manual scheduler starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the scheduler's current time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Every schedules fn every d, first firing at now+d
func (m *Manual) Every(d time.Duration, fn func()) Task {
	return m.add(d, d, fn)
}

// After schedules fn once at now+d
func (m *Manual) After(d time.Duration, fn func()) Task {
	return m.add(d, 0, fn)
}

// Pending returns the number of tasks that have not fired or been cancelled.
// Recurring tasks count until cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves time forward by d, firing every task that falls due in order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}

		m.now = next.at
		if next.every > 0 {
			next.at = next.at.Add(next.every)
		} else {
			m.removeLocked(next)
		}
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) add(d, every time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	task := &manualTask{
		manual: m,
		at:     m.now.Add(d),
		every:  every,
		fn:     fn,
		seq:    m.seq,
	}
	m.tasks = append(m.tasks, task)
	return task
}

// nextDueLocked picks the earliest task due at or before target, oldest first on ties
func (m *Manual) nextDueLocked(target time.Time) *manualTask {
	var next *manualTask
	for _, task := range m.tasks {
		if task.at.After(target) {
			continue
		}
		if next == nil || task.at.Before(next.at) || (task.at.Equal(next.at) && task.seq < next.seq) {
			next = task
		}
	}
	return next
}

func (m *Manual) removeLocked(task *manualTask) {
	for i, t := range m.tasks {
		if t == task {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (t *manualTask) Cancel() {
	t.manual.mu.Lock()
	defer t.manual.mu.Unlock()
	t.manual.removeLocked(t)
}
