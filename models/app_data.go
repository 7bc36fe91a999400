package models

import "gorm.io/gorm"

// AppData is the aggregate root for one user. A nil Profile means
// onboarding has not completed yet. Serialized one-to-one into the
// cloud record, no versioning.
type AppData struct {
	Profile *UserProfile        `json:"profile"`
	Logs    map[string]DailyLog `json:"logs"`
	Fasting FastingSession      `json:"fasting"`
}

// NewAppData returns the pristine aggregate a fresh account starts with.
func NewAppData() AppData {
	return AppData{
		Profile: nil,
		Logs:    map[string]DailyLog{},
		Fasting: FastingSession{StartTime: nil, TargetDuration: DefaultFastingDuration, IsActive: false},
	}
}

// Sanitize repairs records written by older clients: a missing logs map
// and a zero fasting target both get their defaults back.
func (d *AppData) Sanitize() {
	if d.Logs == nil {
		d.Logs = map[string]DailyLog{}
	}
	if d.Fasting.TargetDuration == 0 {
		d.Fasting.TargetDuration = DefaultFastingDuration
	}
	if !d.Fasting.IsActive {
		d.Fasting.StartTime = nil
	}
	if d.Fasting.IsActive && d.Fasting.StartTime == nil {
		d.Fasting.IsActive = false
	}
}

// CloudRecord is the persistence row for one user's AppData blob,
// keyed by the opaque user id.
type CloudRecord struct {
	gorm.Model
	UserID string  `gorm:"type:varchar(64);uniqueIndex;not null"`
	Data   AppData `gorm:"serializer:json"`
}
