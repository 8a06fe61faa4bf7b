package models

import (
	"time"
)

// Keys of the two durable records
const (
	SettingsKey = "pomodoroSettings"
	StatsKey    = "pomodoroStats"
)

// Record is one entry of the key-value table. Name is the key, Value holds a JSON document.
type Record struct {
	Name      string    `gorm:"primaryKey" json:"name"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsRecord is the stored shape of the user settings
type SettingsRecord struct {
	Pomodoro   int  `json:"pomodoro"`   // minutes
	ShortBreak int  `json:"shortBreak"` // minutes
	LongBreak  int  `json:"longBreak"`  // minutes
	AutoStart  bool `json:"autoStart"`
}

// StatsRecord is the stored shape of one day's stats
type StatsRecord struct {
	Date      string `json:"date"` // e.g. "Sun Oct 18 2026"
	Pomodoros int    `json:"pomodoros"`
	Minutes   int    `json:"minutes"`
}
