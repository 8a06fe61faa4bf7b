package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/balkashynov/pomo/internal/schedule"
)

const (
	// TickInterval is how often a running countdown loses one second.
	TickInterval = time.Second
	// AutoStartDelay separates a completed session from the auto-started next one.
	AutoStartDelay = 2 * time.Second
	// SwitchModePrompt is asked before abandoning a running session.
	SwitchModePrompt = "Timer is running. Switch mode?"
)

// Store persists settings and daily stats.
// A missing record is not an error: implementations return the zero value.
type Store interface {
	LoadSettings() (Settings, error)
	SaveSettings(Settings) error
	LoadStats() (DailyStats, error)
	SaveStats(DailyStats) error
}

// Alerter plays the completion alert. It is called with the controller locked and must not block.
type Alerter interface {
	Alert()
}

// Confirmer answers a yes/no question asked before a disruptive action.
type Confirmer func(prompt string) bool

// AlwaysConfirm is a Confirmer for callers that already asked the user.
func AlwaysConfirm(string) bool { return true }

type nopAlerter struct{}

func (nopAlerter) Alert() {}

// Option configures a Controller.
type Option func(*Controller)

// WithAlerter sets the completion alert
func WithAlerter(alerter Alerter) Option {
	return func(c *Controller) {
		if alerter != nil {
			c.alerter = alerter
		}
	}
}

// WithLogger sets the controller's logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller owns the countdown, the settings and today's stats, and moves between
// Focus, Short Break and Long Break sessions.
//
// All methods and scheduled callbacks are serialized by one mutex. At most one tick
// and one auto-start task are outstanding; callbacks from a cancelled task are ignored.
type Controller struct {
	mu      sync.Mutex
	store   Store
	sched   schedule.Scheduler
	alerter Alerter
	logger  *slog.Logger

	timer    TimerState
	settings Settings
	stats    DailyStats

	tick        schedule.Task
	tickGen     uint64
	pending     schedule.Task
	pendingGen  uint64
	pendingMode Mode

	subscribers []chan Event
	closed      bool
}

// New loads settings and today's stats from store and returns a paused Focus session.
// Unreadable records fall back to defaults.
func New(store Store, sched schedule.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		sched:   sched,
		alerter: nopAlerter{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.load()
	c.timer.Mode = Focus
	c.resetLocked()
	return c
}

func (c *Controller) load() {
	settings, err := c.store.LoadSettings()
	if err != nil {
		c.logger.Debug("settings unreadable, using defaults", "error", err)
		settings = DefaultSettings()
	}
	c.settings = settings.Normalized()

	stats, err := c.store.LoadStats()
	if err != nil {
		c.logger.Debug("stats unreadable, starting from zero", "error", err)
		stats = DailyStats{}
	}
	c.stats = StatsFor(stats, Today(c.sched.Now()))
}

// Subscribe registers a new observer channel. Sends never block: a full channel drops the event.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch
	}
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Timer:            c.timer,
		Settings:         c.settings,
		Stats:            c.stats,
		AutoStartPending: c.pending != nil,
		NextMode:         c.pendingMode,
	}
}

// SetMode switches to mode and resets its countdown, paused.
// If a session is running, confirm is asked first; a refusal (or a nil confirm) leaves
// everything untouched and SetMode returns false.
func (c *Controller) SetMode(mode Mode, confirm Confirmer) bool {
	if !mode.Valid() {
		return false
	}

	c.mu.Lock()
	running := c.timer.Running
	c.mu.Unlock()

	// Asked without the lock held: confirm may block on the user.
	if running && (confirm == nil || !confirm(SwitchModePrompt)) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.switchModeLocked(mode)
	c.emitStateLocked()
	c.logger.Debug("mode selected", "mode", mode)
	return true
}

// Start begins the countdown. A pending auto-start is carried out immediately,
// and a finished countdown is reset first. No-op while running.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

// Pause stops the countdown and drops any pending auto-start. Idempotent.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.timer.Running || c.pending != nil
	c.cancelPendingLocked()
	c.pauseLocked()
	if changed {
		c.emitStateLocked()
	}
}

// Toggle starts a paused countdown or pauses a running one
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer.Running {
		c.cancelPendingLocked()
		c.pauseLocked()
		c.emitStateLocked()
		return
	}
	c.startLocked()
}

// Reset pauses and restores the full duration of the current mode
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()
	c.pauseLocked()
	c.resetLocked()
	c.emitStateLocked()
}

// UpdateSettings replaces the settings, persists them and resets the countdown.
// Non-positive durations fall back to their defaults. The in-memory settings are
// updated even if persisting fails.
func (c *Controller) UpdateSettings(settings Settings) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings = settings.Normalized()
	err := c.store.SaveSettings(c.settings)
	if err != nil {
		c.logger.Error("failed to save settings", "error", err)
		err = fmt.Errorf("save settings: %w", err)
	}

	c.emitLocked(Event{Type: EventSettings, Timer: c.timer, Stats: c.stats, At: c.sched.Now()})

	c.cancelPendingLocked()
	c.pauseLocked()
	c.resetLocked()
	c.emitStateLocked()
	return err
}

// ToggleAutoStart flips the auto-start flag and persists it. Turning it off drops a
// pending auto-start. Returns the new value.
func (c *Controller) ToggleAutoStart() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings.AutoStart = !c.settings.AutoStart
	if !c.settings.AutoStart {
		c.cancelPendingLocked()
	}

	var err error
	if saveErr := c.store.SaveSettings(c.settings); saveErr != nil {
		c.logger.Error("failed to save settings", "error", saveErr)
		err = fmt.Errorf("save settings: %w", saveErr)
	}

	c.emitLocked(Event{Type: EventSettings, Timer: c.timer, Stats: c.stats, At: c.sched.Now()})
	return c.settings.AutoStart, err
}

// Close cancels every scheduled task and closes all subscriber channels
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.cancelPendingLocked()
	c.pauseLocked()
	c.closed = true

	for _, ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
}

func (c *Controller) startLocked() {
	if c.timer.Running || c.closed {
		return
	}

	if c.pending != nil {
		mode := c.pendingMode
		c.cancelPendingLocked()
		c.timer.Mode = mode
		c.resetLocked()
	} else if c.timer.Remaining <= 0 {
		c.resetLocked()
	}

	c.timer.Running = true
	c.tickGen++
	gen := c.tickGen
	c.tick = c.sched.Every(TickInterval, func() {
		c.onTick(gen)
	})

	c.emitStateLocked()
	c.logger.Debug("session started", "mode", c.timer.Mode, "remaining", c.timer.Remaining)
}

func (c *Controller) onTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stale tick from a task cancelled after it had already fired.
	if c.tick == nil || gen != c.tickGen || !c.timer.Running {
		return
	}

	c.timer.Remaining--
	if c.timer.Remaining < 0 {
		c.timer.Remaining = 0
	}
	c.emitLocked(Event{Type: EventTick, Timer: c.timer, Stats: c.stats, At: c.sched.Now()})

	if c.timer.Remaining == 0 {
		c.completeLocked()
	}
}

// completeLocked runs once per expired session
func (c *Controller) completeLocked() {
	c.pauseLocked()
	c.alerter.Alert()

	now := c.sched.Now()
	completed := c.timer.Mode

	var next Mode
	var message string
	if completed == Focus {
		// Counters never cross midnight.
		if today := Today(now); c.stats.Date != today {
			c.stats = DailyStats{Date: today}
		}
		c.stats.Pomodoros++
		c.stats.Minutes += c.settings.Pomodoro
		if err := c.store.SaveStats(c.stats); err != nil {
			c.logger.Error("failed to save stats", "error", err)
		}
		c.emitLocked(Event{Type: EventStats, Timer: c.timer, Stats: c.stats, At: now})

		next = NextBreak(c.stats.Pomodoros)
		kind := "short"
		if next == LongBreak {
			kind = "long"
		}
		message = fmt.Sprintf("Pomodoro complete! Time for a %s break.", kind)
	} else {
		next = Focus
		message = "Break complete! Ready for another pomodoro?"
	}

	c.emitLocked(Event{Type: EventComplete, Timer: c.timer, Stats: c.stats, Next: next, At: now})
	c.emitLocked(Event{Type: EventNotify, Timer: c.timer, Stats: c.stats, Next: next, Message: message, At: now})

	if c.settings.AutoStart {
		c.scheduleAutoStartLocked(next)
	}

	c.logger.Info("session complete",
		"mode", completed,
		"next", next,
		"pomodoros", c.stats.Pomodoros,
		"minutes", c.stats.Minutes,
		"auto_start", c.settings.AutoStart,
	)
}

func (c *Controller) scheduleAutoStartLocked(mode Mode) {
	c.cancelPendingLocked()
	c.pendingGen++
	gen := c.pendingGen
	c.pendingMode = mode
	c.pending = c.sched.After(AutoStartDelay, func() {
		c.onAutoStart(gen)
	})
}

func (c *Controller) onAutoStart(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || gen != c.pendingGen || c.closed {
		return
	}

	mode := c.pendingMode
	c.pending = nil
	c.switchModeLocked(mode)
	c.startLocked()
	c.logger.Debug("auto-started session", "mode", mode)
}

func (c *Controller) switchModeLocked(mode Mode) {
	c.cancelPendingLocked()
	c.pauseLocked()
	c.timer.Mode = mode
	c.resetLocked()
}

func (c *Controller) pauseLocked() {
	if c.tick != nil {
		c.tick.Cancel()
		c.tick = nil
	}
	c.tickGen++
	c.timer.Running = false
}

func (c *Controller) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	c.pendingGen++
}

func (c *Controller) resetLocked() {
	total := c.settings.Seconds(c.timer.Mode)
	c.timer.Total = total
	c.timer.Remaining = total
}

func (c *Controller) emitStateLocked() {
	c.emitLocked(Event{Type: EventState, Timer: c.timer, Stats: c.stats, At: c.sched.Now()})
}

func (c *Controller) emitLocked(event Event) {
	for _, ch := range c.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
