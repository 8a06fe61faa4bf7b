package session

import (
	"fmt"
	"strings"
)

// Mode is one of the three session types.
type Mode int

const (
	Focus Mode = iota
	ShortBreak
	LongBreak
)

// Modes lists every mode in display order.
var Modes = []Mode{Focus, ShortBreak, LongBreak}

var modeKeys = [...]string{
	Focus:      "pomodoro",
	ShortBreak: "shortBreak",
	LongBreak:  "longBreak",
}

var modeLabels = [...]string{
	Focus:      "Focus Time",
	ShortBreak: "Short Break",
	LongBreak:  "Long Break",
}

var modeColors = [...]string{
	Focus:      "#667eea",
	ShortBreak: "#51cf66",
	LongBreak:  "#4ecdc4",
}

// Key returns the mode's storage key, the same key used in the settings record
func (m Mode) Key() string {
	if !m.Valid() {
		return ""
	}
	return modeKeys[m]
}

// Label returns the human readable mode name
func (m Mode) Label() string {
	if !m.Valid() {
		return ""
	}
	return modeLabels[m]
}

// Color returns the mode's accent color as a hex string
func (m Mode) Color() string {
	if !m.Valid() {
		return ""
	}
	return modeColors[m]
}

// IsBreak reports whether the mode is a short or long break
func (m Mode) IsBreak() bool {
	return m == ShortBreak || m == LongBreak
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m >= Focus && m <= LongBreak
}

func (m Mode) String() string {
	return m.Key()
}

// ParseMode accepts a storage key or a short alias (focus, short, long)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pomodoro", "focus", "work", "f":
		return Focus, nil
	case "shortbreak", "short", "s":
		return ShortBreak, nil
	case "longbreak", "long", "l":
		return LongBreak, nil
	default:
		return Focus, fmt.Errorf("unknown mode %q (use focus, short or long)", s)
	}
}
