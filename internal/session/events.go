package session

import "time"

// EventType defines the kind of controller update.
type EventType string

const (
	EventState    EventType = "state"    // mode change, start, pause, reset
	EventTick     EventType = "tick"     // one second elapsed
	EventComplete EventType = "complete" // a session reached zero
	EventNotify   EventType = "notify"   // user-facing message
	EventStats    EventType = "stats"    // daily stats changed
	EventSettings EventType = "settings" // settings changed
)

// Event is a controller update for observers.
type Event struct {
	Type    EventType
	Timer   TimerState
	Stats   DailyStats
	Message string
	// Next is the mode that follows a completed session.
	Next Mode
	At   time.Time
}
