package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/pomo/internal/models"
)

// getRecord decodes the JSON value stored under key into out.
// Returns false without error when the key has never been written.
func (s *Store) getRecord(key string, out any) (bool, error) {
	var record models.Record
	err := s.db.Where("name = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(record.Value), out); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// putRecord stores v as JSON under key, replacing any previous value
func (s *Store) putRecord(key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	record := models.Record{Name: key, Value: string(value)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// deleteRecord removes key; deleting a missing key is not an error
func (s *Store) deleteRecord(key string) error {
	if err := s.db.Where("name = ?", key).Delete(&models.Record{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
