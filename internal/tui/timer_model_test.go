package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/pomo/internal/schedule"
	"github.com/balkashynov/pomo/internal/session"
)

type memStore struct {
	settings session.Settings
	stats    session.DailyStats
}

func (s *memStore) LoadSettings() (session.Settings, error) { return s.settings, nil }
func (s *memStore) SaveSettings(v session.Settings) error  { s.settings = v; return nil }
func (s *memStore) LoadStats() (session.DailyStats, error)  { return s.stats, nil }
func (s *memStore) SaveStats(v session.DailyStats) error    { s.stats = v; return nil }

func newTestModel(t *testing.T, settings session.Settings) (TimerModel, *session.Controller, *schedule.Manual, *memStore) {
	t.Helper()
	store := &memStore{settings: settings}
	sched := schedule.NewManual(time.Date(2026, time.October, 18, 9, 0, 0, 0, time.Local))
	ctrl := session.New(store, sched)
	t.Cleanup(ctrl.Close)

	m := NewTimerModel(ctrl)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, ctrl, sched, store
}

func update(t *testing.T, m TimerModel, msg tea.Msg) TimerModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(TimerModel)
	require.True(t, ok)
	return model
}

func press(t *testing.T, m TimerModel, keys ...string) TimerModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m = update(t, m, msg)
	}
	return m
}

// pump feeds queued controller events through the update loop
func pump(t *testing.T, m TimerModel) TimerModel {
	t.Helper()
	for {
		select {
		case event := <-m.events:
			m = update(t, m, controllerEventMsg(event))
		default:
			return m
		}
	}
}

func TestSpaceTogglesTimer(t *testing.T) {
	m, ctrl, sched, _ := newTestModel(t, session.DefaultSettings())

	m = press(t, m, " ")
	assert.True(t, ctrl.Snapshot().Timer.Running)
	assert.True(t, m.snap.Timer.Running)

	sched.Advance(3 * time.Second)
	m = press(t, m, " ")
	snap := ctrl.Snapshot()
	assert.False(t, snap.Timer.Running)
	assert.Equal(t, 1497, snap.Timer.Remaining)
}

func TestModeKeysSwitchWhilePaused(t *testing.T) {
	m, ctrl, _, _ := newTestModel(t, session.DefaultSettings())

	m = press(t, m, "3")
	assert.Equal(t, session.LongBreak, ctrl.Snapshot().Timer.Mode)
	assert.Equal(t, 900, m.snap.Timer.Remaining)
	assert.False(t, m.confirming)

	press(t, m, "1")
	assert.Equal(t, session.Focus, ctrl.Snapshot().Timer.Mode)
}

func TestModeSwitchWhileRunningAsksFirst(t *testing.T) {
	m, ctrl, _, _ := newTestModel(t, session.DefaultSettings())
	m = press(t, m, " ")

	m = press(t, m, "2")
	assert.True(t, m.confirming)
	assert.Contains(t, m.View(), session.SwitchModePrompt)

	// Space is not a toggle while the question is open.
	m = press(t, m, " ")
	assert.True(t, m.confirming)

	m = press(t, m, "n")
	assert.False(t, m.confirming)
	snap := ctrl.Snapshot()
	assert.Equal(t, session.Focus, snap.Timer.Mode)
	assert.True(t, snap.Timer.Running)

	m = press(t, m, "2", "y")
	assert.False(t, m.confirming)
	snap = ctrl.Snapshot()
	assert.Equal(t, session.ShortBreak, snap.Timer.Mode)
	assert.False(t, snap.Timer.Running)
	assert.Equal(t, 300, snap.Timer.Remaining)
}

func TestResetAndAutoStartKeys(t *testing.T) {
	m, ctrl, sched, store := newTestModel(t, session.DefaultSettings())

	m = press(t, m, " ")
	sched.Advance(10 * time.Second)
	m = press(t, m, "r")
	snap := ctrl.Snapshot()
	assert.False(t, snap.Timer.Running)
	assert.Equal(t, 1500, snap.Timer.Remaining)

	m = press(t, m, "a")
	assert.True(t, store.settings.AutoStart)
	assert.True(t, m.snap.Settings.AutoStart)
}

func TestSettingsPanelSavesDurations(t *testing.T) {
	m, ctrl, _, store := newTestModel(t, session.DefaultSettings())

	m = press(t, m, "s")
	require.True(t, m.settingsOpen)

	// Replace "25" with "50"; space goes to the text field and must not start the timer.
	m = press(t, m, "backspace", "backspace", "5", "0", " ")
	assert.False(t, ctrl.Snapshot().Timer.Running)
	m = press(t, m, "backspace")

	m = press(t, m, "tab", "backspace", "1", "0")
	m = press(t, m, "tab", "backspace", "backspace", "2", "0")
	m = press(t, m, "tab", " ")
	m = press(t, m, "enter")

	assert.False(t, m.settingsOpen)
	want := session.Settings{Pomodoro: 50, ShortBreak: 10, LongBreak: 20, AutoStart: true}
	assert.Equal(t, want, store.settings)

	snap := ctrl.Snapshot()
	assert.Equal(t, want, snap.Settings)
	assert.Equal(t, 3000, snap.Timer.Remaining)
}

func TestSettingsPanelRejectsInvalidInput(t *testing.T) {
	m, _, _, store := newTestModel(t, session.DefaultSettings())

	m = press(t, m, "s", "backspace", "backspace", "0", "enter")
	assert.True(t, m.settingsOpen)
	assert.NotEmpty(t, m.settings.validationErr)
	assert.Equal(t, session.DefaultSettings(), store.settings)

	m = press(t, m, "esc")
	assert.False(t, m.settingsOpen)
}

func TestNotificationBannerExpires(t *testing.T) {
	m, ctrl, sched, _ := newTestModel(t, session.Settings{Pomodoro: 1, ShortBreak: 1, LongBreak: 1})

	m = press(t, m, " ")
	for i := 0; i < 60; i++ {
		sched.Advance(time.Second)
		m = pump(t, m)
	}

	assert.Equal(t, "Pomodoro complete! Time for a short break.", m.banner)
	assert.Equal(t, 1, m.snap.Stats.Pomodoros)
	assert.Contains(t, m.View(), "Pomodoro complete!")

	m = update(t, m, bannerExpiredMsg{id: m.bannerID - 1})
	assert.NotEmpty(t, m.banner)
	m = update(t, m, bannerExpiredMsg{id: m.bannerID})
	assert.Empty(t, m.banner)

	assert.False(t, ctrl.Snapshot().Timer.Running)
}

func TestViewShowsModeAndStats(t *testing.T) {
	m, _, _, _ := newTestModel(t, session.DefaultSettings())

	view := m.View()
	assert.Contains(t, view, "Focus Time")
	assert.Contains(t, view, "Short Break")
	assert.Contains(t, view, "pomodoros")
	assert.True(t, strings.Contains(view, "█"))

	empty := NewTimerModel(m.ctrl)
	assert.Equal(t, "Loading...", empty.View())
}

func TestQuitKey(t *testing.T) {
	m, _, _, _ := newTestModel(t, session.DefaultSettings())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.True(t, next.(TimerModel).quitting)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBigClock(t *testing.T) {
	clock := renderBigClock("25:00", "#667eea")
	assert.Len(t, strings.Split(clock, "\n"), 5)
}
