package db

import (
	"github.com/balkashynov/pomo/internal/models"
	"github.com/balkashynov/pomo/internal/session"
)

// LoadStats reads the stored daily stats as written, whatever day they belong to.
// Callers decide whether the stored date is still today.
func (s *Store) LoadStats() (session.DailyStats, error) {
	var record models.StatsRecord
	found, err := s.getRecord(models.StatsKey, &record)
	if err != nil || !found {
		return session.DailyStats{}, err
	}

	return session.DailyStats{
		Date:      record.Date,
		Pomodoros: record.Pomodoros,
		Minutes:   record.Minutes,
	}, nil
}

// SaveStats overwrites the stored daily stats
func (s *Store) SaveStats(stats session.DailyStats) error {
	return s.putRecord(models.StatsKey, models.StatsRecord{
		Date:      stats.Date,
		Pomodoros: stats.Pomodoros,
		Minutes:   stats.Minutes,
	})
}

// TodayStats returns the stats for day, zeroed if the stored record is from another day
// or unreadable
func (s *Store) TodayStats(day string) session.DailyStats {
	stats, err := s.LoadStats()
	if err != nil {
		return session.DailyStats{Date: day}
	}
	return session.StatsFor(stats, day)
}

// ResetStats discards the stored stats
func (s *Store) ResetStats() error {
	return s.deleteRecord(models.StatsKey)
}
