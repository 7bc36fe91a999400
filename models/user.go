package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the identity record. UserID is the opaque id handed out at
// registration and used as the key for the user's AppData blob.
type User struct {
	gorm.Model
	UserID        string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	ResetToken    string
	ResetTokenExp time.Time
}
