package services

import (
	"errors"

	"github.com/jiyuan880304-cmd/fitfocus/models"

	"gorm.io/gorm"
)

// CloudStore is the persistence collaborator for AppData blobs.
// Load returns (nil, nil) when the user has no record yet. Save
// failures are non-fatal to callers: the session layer proceeds with
// the in-memory result either way.
type CloudStore interface {
	Load(userID string) (*models.AppData, error)
	Save(userID string, data models.AppData) error
	Delete(userID string) error
}

// GormCloudStore keeps one CloudRecord row per user.
type GormCloudStore struct {
	db *gorm.DB
}

func NewGormCloudStore(db *gorm.DB) *GormCloudStore {
	return &GormCloudStore{db: db}
}

func (s *GormCloudStore) Load(userID string) (*models.AppData, error) {
	var rec models.CloudRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.Data.Sanitize()
	return &rec.Data, nil
}

func (s *GormCloudStore) Save(userID string, data models.AppData) error {
	var rec models.CloudRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.CloudRecord{UserID: userID, Data: data}
		return s.db.Create(&rec).Error
	}
	if err != nil {
		return err
	}
	rec.Data = data
	return s.db.Save(&rec).Error
}

func (s *GormCloudStore) Delete(userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CloudRecord{}).Error
}
