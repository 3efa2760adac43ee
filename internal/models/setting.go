// internal/models/setting.go
package models

// Setting is a process-wide key/value row managed from the back-office.
// Values are stored as text; typed reads live in the settings service.
type Setting struct {
	BaseModel
	Key   string `json:"key" gorm:"size:128;uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:text;not null"`
}

const (
	SettingHoldDurationHours = "hold_duration_hours"
	SettingFeaturedLimit     = "featured_limit"
)
