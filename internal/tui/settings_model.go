package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/pomo/internal/parser"
	"github.com/balkashynov/pomo/internal/session"
)

// Field order of the settings panel; the last row is the auto-start toggle
const (
	fieldPomodoro = iota
	fieldShortBreak
	fieldLongBreak
	fieldAutoStart
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldPomodoro:   "Focus (min)",
	fieldShortBreak: "Short break (min)",
	fieldLongBreak:  "Long break (min)",
	fieldAutoStart:  "Auto-start next session",
}

// settingsOutcome tells the timer what the panel wants after a key press
type settingsOutcome int

const (
	settingsEditing settingsOutcome = iota
	settingsSaved
	settingsCancelled
)

// SettingsForm edits the three durations and the auto-start flag
type SettingsForm struct {
	inputs        []textinput.Model
	autoStart     bool
	focus         int
	validationErr string
}

// NewSettingsForm creates a form prefilled with current settings
func NewSettingsForm(current session.Settings) SettingsForm {
	inputs := make([]textinput.Model, fieldAutoStart)
	values := []int{current.Pomodoro, current.ShortBreak, current.LongBreak}

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 12
		inputs[i].CharLimit = 10
		inputs[i].Placeholder = "25, 25m, 1h30m"

		// Apply color scheme
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		inputs[i].SetValue(strconv.Itoa(values[i]))
	}
	inputs[fieldPomodoro].Focus()

	return SettingsForm{
		inputs:    inputs,
		autoStart: current.AutoStart,
	}
}

// Settings validates the fields and returns the edited settings
func (f SettingsForm) Settings() (session.Settings, error) {
	minutes := make([]int, len(f.inputs))
	for i, input := range f.inputs {
		value, err := parser.ParseMinutes(input.Value())
		if err != nil {
			return session.Settings{}, fmt.Errorf("%s: %v", fieldLabels[i], err)
		}
		minutes[i] = value
	}

	return session.Settings{
		Pomodoro:   minutes[fieldPomodoro],
		ShortBreak: minutes[fieldShortBreak],
		LongBreak:  minutes[fieldLongBreak],
		AutoStart:  f.autoStart,
	}, nil
}

// Update handles a key press inside the panel
func (f SettingsForm) Update(msg tea.KeyMsg) (SettingsForm, settingsOutcome, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, settingsCancelled, nil

	case "enter":
		if _, err := f.Settings(); err != nil {
			f.validationErr = err.Error()
			return f, settingsEditing, nil
		}
		return f, settingsSaved, nil

	case "tab", "down":
		return f.setFocus((f.focus + 1) % fieldCount), settingsEditing, textinput.Blink

	case "shift+tab", "up":
		return f.setFocus((f.focus + fieldCount - 1) % fieldCount), settingsEditing, textinput.Blink
	}

	// The toggle row has no text input
	if f.focus == fieldAutoStart {
		switch msg.String() {
		case " ", "space", "left", "right", "a", "y", "n":
			f.autoStart = !f.autoStart
		}
		return f, settingsEditing, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.validationErr = ""
	return f, settingsEditing, cmd
}

func (f SettingsForm) setFocus(focus int) SettingsForm {
	f.focus = focus
	for i := range f.inputs {
		if i == focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f
}

// View renders the panel
func (f SettingsForm) View(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(titleStyle.Render("⚙  Settings"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Width(26)
	focusedLabelStyle := labelStyle.
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	for i := 0; i < fieldCount; i++ {
		style := labelStyle
		marker := "  "
		if i == f.focus {
			style = focusedLabelStyle
			marker = "▶ "
		}
		b.WriteString(marker)
		b.WriteString(style.Render(fieldLabels[i]))

		if i == fieldAutoStart {
			b.WriteString(renderToggle(f.autoStart))
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")
	}

	if f.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		b.WriteString(errStyle.Render("⚠️  " + f.validationErr))
		b.WriteString("\n")
	}

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab/↑↓ move · space toggle · enter save · esc cancel"))

	panelWidth := width - 4
	if panelWidth > 60 {
		panelWidth = 60
	}
	if panelWidth < 20 {
		panelWidth = 20
	}
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Width(panelWidth)

	return panelStyle.Render(b.String())
}

// renderToggle draws an on/off switch
func renderToggle(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true).Render("● on")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("○ off")
}
