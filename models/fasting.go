package models

import "time"

// FastingDurations are the only accepted fasting targets, in hours.
var FastingDurations = []int{12, 14, 16, 18, 20}

// DefaultFastingDuration is the 16/8 schedule new accounts start with.
const DefaultFastingDuration = 16

// FastingSession tracks the intermittent-fasting timer.
// Invariant: StartTime is non-nil exactly when IsActive is true.
type FastingSession struct {
	StartTime      *time.Time `json:"startTime"`
	TargetDuration int        `json:"targetDuration"` // hours
	IsActive       bool       `json:"isActive"`
}

// ValidFastingDuration reports whether hours is one of the accepted targets.
func ValidFastingDuration(hours int) bool {
	for _, d := range FastingDurations {
		if d == hours {
			return true
		}
	}
	return false
}
