// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warehouse414/catalog-backend/internal/models"
)

// SettingsService reads and writes the back-office key/value settings.
// Typed reads fall back to a caller-supplied default instead of erroring,
// so a missing or mangled row can never break a customer flow.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Get(key string) (string, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("setting not found")
		}
		return "", fmt.Errorf("database error: %w", err)
	}
	return setting.Value, nil
}

// GetInt returns the setting parsed as an integer, or fallback when the
// row is missing or the value does not parse.
func (s *SettingsService) GetInt(key string, fallback int) int {
	value, err := s.Get(key)
	if err != nil {
		return fallback
	}
	return ParseIntSetting(value, fallback)
}

// ParseIntSetting applies the fallback rule for numeric settings.
func ParseIntSetting(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s *SettingsService) Set(key, value string) (*models.Setting, error) {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return &setting, nil
}

func (s *SettingsService) List() ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.db.Order("key").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}
