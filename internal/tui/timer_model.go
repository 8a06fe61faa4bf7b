package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/pomo/internal/session"
)

// BannerDuration is how long a notification stays on screen
const BannerDuration = 4 * time.Second

// controllerEventMsg carries one controller event into the update loop
type controllerEventMsg session.Event

// controllerClosedMsg is sent once the controller's event channel is closed
type controllerClosedMsg struct{}

// bannerExpiredMsg hides the banner it belongs to
type bannerExpiredMsg struct {
	id int
}

// TimerModel represents the TUI model for the pomodoro timer
type TimerModel struct {
	width  int
	height int

	ctrl   *session.Controller
	events <-chan session.Event
	snap   session.Snapshot

	keys     keyMap
	help     help.Model
	progress progress.Model

	// Notification banner
	banner   string
	bannerID int

	// Mode waiting for a y/n answer because the timer is running
	confirming   bool
	confirmMode  session.Mode
	settingsOpen bool
	settings     SettingsForm
	statusErr    string
	quitting     bool
}

// NewTimerModel creates a new timer TUI model driven by ctrl
func NewTimerModel(ctrl *session.Controller) TimerModel {
	bar := progress.New(
		progress.WithSolidFill(session.Focus.Color()),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = ColorBorder

	return TimerModel{
		ctrl:     ctrl,
		events:   ctrl.Subscribe(64),
		snap:     ctrl.Snapshot(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
	}
}

// Init starts listening for controller events
func (m TimerModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// waitForEvent blocks on the next controller event
func waitForEvent(events <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return controllerClosedMsg{}
		}
		return controllerEventMsg(event)
	}
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case controllerEventMsg:
		m.snap = m.ctrl.Snapshot()
		cmds := []tea.Cmd{waitForEvent(m.events)}
		if msg.Type == session.EventNotify {
			m.banner = msg.Message
			m.bannerID++
			id := m.bannerID
			cmds = append(cmds, tea.Tick(BannerDuration, func(time.Time) tea.Msg {
				return bannerExpiredMsg{id: id}
			}))
		}
		return m, tea.Batch(cmds...)

	case controllerClosedMsg:
		return m, nil

	case bannerExpiredMsg:
		// A newer banner replaced this one
		if msg.id == m.bannerID {
			m.banner = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-10, 10), 60)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.confirming {
			return m.handleConfirmKeys(msg)
		}
		if m.settingsOpen {
			return m.handleSettingsKeys(msg)
		}
		return m.handleTimerKeys(msg)
	}

	return m, nil
}

// handleTimerKeys handles the global bindings
func (m TimerModel) handleTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.Toggle()

	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()

	case key.Matches(msg, m.keys.AutoStart):
		if _, err := m.ctrl.ToggleAutoStart(); err != nil {
			m.statusErr = err.Error()
		}

	case key.Matches(msg, m.keys.Settings):
		m.settingsOpen = true
		m.settings = NewSettingsForm(m.ctrl.Snapshot().Settings)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		for mode, binding := range m.keys.modeBindings() {
			if key.Matches(msg, binding) {
				return m.selectMode(mode)
			}
		}
		return m, nil
	}

	m.snap = m.ctrl.Snapshot()
	return m, nil
}

// selectMode switches directly when paused and asks first when running
func (m TimerModel) selectMode(mode session.Mode) (tea.Model, tea.Cmd) {
	if m.ctrl.Snapshot().Timer.Running {
		m.confirming = true
		m.confirmMode = mode
		return m, nil
	}

	m.ctrl.SetMode(mode, nil)
	m.snap = m.ctrl.Snapshot()
	return m, nil
}

// handleConfirmKeys answers the "switch mode?" question
func (m TimerModel) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirming = false
		m.ctrl.SetMode(m.confirmMode, session.AlwaysConfirm)
	case "n", "N", "esc", "q":
		m.confirming = false
	}
	m.snap = m.ctrl.Snapshot()
	return m, nil
}

// handleSettingsKeys routes keys to the settings panel
func (m TimerModel) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, outcome, cmd := m.settings.Update(msg)
	m.settings = form

	switch outcome {
	case settingsCancelled:
		m.settingsOpen = false
	case settingsSaved:
		settings, err := form.Settings()
		if err != nil {
			return m, nil
		}
		m.settingsOpen = false
		m.statusErr = ""
		if err := m.ctrl.UpdateSettings(settings); err != nil {
			m.statusErr = err.Error()
		}
		m.snap = m.ctrl.Snapshot()
	}

	return m, cmd
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string
	timer := m.snap.Timer

	components = append(components, m.renderModeTabs())

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(modeColor(timer.Mode))).
		Bold(true)
	status := "paused"
	if timer.Running {
		status = "running"
	}
	components = append(components, labelStyle.Render(timer.Mode.Label())+
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).Render(" · "+status))

	components = append(components, renderBigClock(timer.Clock(), modeColor(timer.Mode)))

	bar := m.progress
	bar.FullColor = modeColor(timer.Mode)
	components = append(components, bar.ViewAs(timer.Progress()))

	components = append(components, m.renderStats())

	if m.banner != "" {
		components = append(components, m.renderBanner())
	}
	if m.confirming {
		components = append(components, m.renderConfirm())
	}
	if m.statusErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		components = append(components, errStyle.Render("❌ "+m.statusErr))
	}
	if m.settingsOpen {
		components = append(components, m.settings.View(m.width))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, components...)

	helpBar := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.help.View(m.keys))

	contentHeight := m.height - lipgloss.Height(helpBar) - 1
	if contentHeight < 1 {
		contentHeight = 1
	}
	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}

// renderModeTabs renders one tab per mode, highlighting the active one
func (m TimerModel) renderModeTabs() string {
	bindings := m.keys.modeBindings()
	tabs := make([]string, 0, len(session.Modes))

	for _, mode := range session.Modes {
		style := lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Foreground(lipgloss.Color(ColorSecondaryText))
		if mode == m.snap.Timer.Mode {
			style = style.
				BorderForeground(lipgloss.Color(modeColor(mode))).
				Foreground(lipgloss.Color(modeColor(mode))).
				Bold(true)
		}
		text := fmt.Sprintf("%s %s", bindings[mode].Help().Key, mode.Label())
		tabs = append(tabs, style.Render(text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStats renders today's counters and the auto-start flag
func (m TimerModel) renderStats() string {
	stats := m.snap.Stats
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	auto := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("off")
	if m.snap.Settings.AutoStart {
		auto = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("on")
	}

	line := fmt.Sprintf("🍅 %s %s · ⏱  %s %s · auto-start %s",
		valueStyle.Render(fmt.Sprint(stats.Pomodoros)), textStyle.Render("pomodoros"),
		valueStyle.Render(fmt.Sprint(stats.Minutes)), textStyle.Render("min today"),
		auto)

	if m.snap.AutoStartPending {
		line += textStyle.Italic(true).Render(fmt.Sprintf(" · %s starts shortly", m.snap.NextMode.Label()))
	}
	return line
}

// renderBanner renders the transient notification
func (m TimerModel) renderBanner() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorCardBackground)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 2).
		Render("🔔 " + m.banner)
}

// renderConfirm renders the switch-mode question
func (m TimerModel) renderConfirm() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Bold(true).
		Render(fmt.Sprintf("⚠️  %s → %s (y/n)", session.SwitchModePrompt, m.confirmMode.Label()))
}
