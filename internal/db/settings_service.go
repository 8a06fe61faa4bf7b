package db

import (
	"github.com/balkashynov/pomo/internal/models"
	"github.com/balkashynov/pomo/internal/session"
)

// LoadSettings reads the stored settings.
// A missing record or missing fields yield the defaults; a malformed record yields the
// defaults together with the decode error.
func (s *Store) LoadSettings() (session.Settings, error) {
	var record models.SettingsRecord
	found, err := s.getRecord(models.SettingsKey, &record)
	if err != nil {
		return session.DefaultSettings(), err
	}
	if !found {
		return session.DefaultSettings(), nil
	}

	settings := session.Settings{
		Pomodoro:   record.Pomodoro,
		ShortBreak: record.ShortBreak,
		LongBreak:  record.LongBreak,
		AutoStart:  record.AutoStart,
	}
	return settings.Normalized(), nil
}

// SaveSettings overwrites the stored settings
func (s *Store) SaveSettings(settings session.Settings) error {
	return s.putRecord(models.SettingsKey, models.SettingsRecord{
		Pomodoro:   settings.Pomodoro,
		ShortBreak: settings.ShortBreak,
		LongBreak:  settings.LongBreak,
		AutoStart:  settings.AutoStart,
	})
}

// ResetSettings forgets the stored settings so the defaults apply again
func (s *Store) ResetSettings() error {
	return s.deleteRecord(models.SettingsKey)
}
