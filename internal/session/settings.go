package session

import "time"

// Default durations in minutes.
const (
	DefaultPomodoro   = 25
	DefaultShortBreak = 5
	DefaultLongBreak  = 15
)

// DateLayout formats a calendar day as "Sun Oct 18 2026".
const DateLayout = "Mon Jan 02 2006"

// LongBreakEvery is the focus-session cadence that earns a long break.
const LongBreakEvery = 4

// Settings holds the user-editable durations (minutes) and the auto-start flag.
type Settings struct {
	Pomodoro   int
	ShortBreak int
	LongBreak  int
	AutoStart  bool
}

// DefaultSettings returns 25/5/15 minutes with auto-start off
func DefaultSettings() Settings {
	return Settings{
		Pomodoro:   DefaultPomodoro,
		ShortBreak: DefaultShortBreak,
		LongBreak:  DefaultLongBreak,
	}
}

// Minutes returns the configured duration of mode in minutes
func (s Settings) Minutes(mode Mode) int {
	switch mode {
	case ShortBreak:
		return s.ShortBreak
	case LongBreak:
		return s.LongBreak
	default:
		return s.Pomodoro
	}
}

// Seconds returns the configured duration of mode in seconds
func (s Settings) Seconds(mode Mode) int {
	return s.Minutes(mode) * 60
}

// Normalized replaces non-positive durations with their defaults
func (s Settings) Normalized() Settings {
	if s.Pomodoro <= 0 {
		s.Pomodoro = DefaultPomodoro
	}
	if s.ShortBreak <= 0 {
		s.ShortBreak = DefaultShortBreak
	}
	if s.LongBreak <= 0 {
		s.LongBreak = DefaultLongBreak
	}
	return s
}

// DailyStats counts the focus work done on one calendar day.
type DailyStats struct {
	Date      string
	Pomodoros int
	Minutes   int
}

// Today returns the calendar-day identifier for t
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// StatsFor returns stats as loaded for day: kept if the dates match, zeroed otherwise
func StatsFor(stored DailyStats, day string) DailyStats {
	if stored.Date != day {
		return DailyStats{Date: day}
	}
	if stored.Pomodoros < 0 {
		stored.Pomodoros = 0
	}
	if stored.Minutes < 0 {
		stored.Minutes = 0
	}
	return stored
}

// NextBreak returns the break earned after the given total of completed pomodoros
func NextBreak(pomodoros int) Mode {
	if pomodoros > 0 && pomodoros%LongBreakEvery == 0 {
		return LongBreak
	}
	return ShortBreak
}
