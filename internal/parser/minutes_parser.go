package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxMinutes caps any single session at one day
const MaxMinutes = 24 * 60

var (
	plainMinutesRegex = regexp.MustCompile(`^(\d+)$`)
	unitMinutesRegex  = regexp.MustCompile(`^(?:(\d+)\s*(?:h|hr|hrs|hour|hours))?\s*(?:(\d+)\s*(?:m|min|mins|minute|minutes))?$`)
)

// ParseMinutes parses a session length entered by the user
// Supported formats:
// - plain minutes (e.g., "25")
// - minutes with a unit (e.g., "25m", "25 min")
// - hours and minutes (e.g., "1h", "1h30m", "2 hours")
func ParseMinutes(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("duration is required")
	}

	if matches := plainMinutesRegex.FindStringSubmatch(input); matches != nil {
		minutes, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid number")
		}
		return validateMinutes(minutes)
	}

	matches := unitMinutesRegex.FindStringSubmatch(input)
	if matches == nil || (matches[1] == "" && matches[2] == "") {
		return 0, fmt.Errorf("invalid duration %q. Use: 25, 25m, 1h or 1h30m", input)
	}

	total := 0
	if matches[1] != "" {
		hours, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid hours")
		}
		total += hours * 60
	}
	if matches[2] != "" {
		minutes, err := strconv.Atoi(matches[2])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes")
		}
		total += minutes
	}

	return validateMinutes(total)
}

// validateMinutes keeps durations positive and within a day
func validateMinutes(minutes int) (int, error) {
	if minutes < 1 {
		return 0, fmt.Errorf("duration must be at least 1 minute")
	}
	if minutes > MaxMinutes {
		return 0, fmt.Errorf("duration must be at most %d minutes", MaxMinutes)
	}
	return minutes, nil
}

// FormatMinutes renders minutes the way ParseMinutes accepts them back
func FormatMinutes(minutes int) string {
	if minutes >= 60 && minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	if minutes > 60 {
		return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
