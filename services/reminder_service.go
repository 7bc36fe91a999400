package services

import (
	"fmt"
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/utils"
)

// ReminderFor applies the nudge rules in priority order and returns ""
// when nothing is due. The same rule set feeds the dashboard summary
// and the hourly push scheduler.
func ReminderFor(profile models.UserProfile, todayLog models.DailyLog, now time.Time) string {
	waterGoal := utils.WaterGoalML(profile.Weight)
	hour := now.Hour()

	switch {
	case waterGoal > 0 && todayLog.WaterIntake*100 < waterGoal*30:
		return "Your body is thirsty! Remember to hydrate 💧"
	case todayLog.Steps < 3000 && hour > 14:
		return fmt.Sprintf("Get up and walk, aim for %d steps! 👟", utils.StepGoal)
	case hour >= 21:
		return "It's getting late, keep the fast going 🌙"
	default:
		return ""
	}
}
