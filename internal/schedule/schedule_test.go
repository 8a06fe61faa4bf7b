package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.Local)

func TestManualEveryFiresOncePerInterval(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	m.Every(time.Second, func() { count++ })

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, count)

	m.Advance(3500 * time.Millisecond)
	assert.Equal(t, 4, count)
	assert.Equal(t, epoch.Add(4*time.Second), m.Now())
}

func TestManualAfterFiresOnce(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	m.After(2*time.Second, func() { count++ })

	m.Advance(10 * time.Second)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, m.Pending())
}

func TestManualCancel(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	task := m.Every(time.Second, func() { count++ })

	m.Advance(2 * time.Second)
	task.Cancel()
	task.Cancel()
	m.Advance(5 * time.Second)

	assert.Equal(t, 2, count)
	assert.Equal(t, 0, m.Pending())
}

func TestManualCallbackCanScheduleAndCancel(t *testing.T) {
	m := NewManual(epoch)
	var order []string

	var tick Task
	tick = m.Every(time.Second, func() {
		order = append(order, "tick")
		tick.Cancel()
		m.After(time.Second, func() { order = append(order, "after") })
	})

	m.Advance(5 * time.Second)
	assert.Equal(t, []string{"tick", "after"}, order)
}

func TestManualSameInstantRunsInScheduleOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []int
	m.After(time.Second, func() { order = append(order, 1) })
	m.After(time.Second, func() { order = append(order, 2) })

	m.Advance(time.Second)
	assert.Equal(t, []int{1, 2}, order)
}

func TestClockAfterAndCancel(t *testing.T) {
	clock := NewClock()

	fired := make(chan struct{})
	clock.After(10*time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("After callback never fired")
	}

	var calls atomic.Int32
	task := clock.After(50*time.Millisecond, func() { calls.Add(1) })
	task.Cancel()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClockEveryStopsAfterCancel(t *testing.T) {
	clock := NewClock()

	var calls atomic.Int32
	task := clock.Every(5*time.Millisecond, func() { calls.Add(1) })
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, time.Millisecond)

	task.Cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}
