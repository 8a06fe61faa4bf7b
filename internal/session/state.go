package session

import "fmt"

// TimerState is the live countdown. It is never persisted.
type TimerState struct {
	Mode      Mode
	Remaining int // seconds left, 0 <= Remaining <= Total
	Total     int // seconds in the session when it was last reset
	Running   bool
}

// Progress returns the elapsed fraction of the session in [0, 1]
func (s TimerState) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	progress := float64(s.Total-s.Remaining) / float64(s.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Clock formats the remaining time as MM:SS
func (s TimerState) Clock() string {
	return FormatClock(s.Remaining)
}

// FormatClock formats seconds as MM:SS; minutes are not capped at 59
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Snapshot is a consistent copy of everything the controller owns.
type Snapshot struct {
	Timer            TimerState
	Settings         Settings
	Stats            DailyStats
	AutoStartPending bool
	// NextMode is the mode an auto-start will switch to; only meaningful when AutoStartPending.
	NextMode Mode
}
