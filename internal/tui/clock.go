package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ASCII art for clock characters (5 columns x 5 rows each)
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders an MM:SS string as five lines of block characters
func renderBigClock(clock string, color string) string {
	var lines [5]strings.Builder

	for _, char := range clock {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ") // Space between digits
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	rendered := make([]string, 5)
	for i := range lines {
		rendered[i] = clockStyle.Render(strings.TrimRight(lines[i].String(), " "))
	}
	return strings.Join(rendered, "\n")
}
