package controllers

import (
	"net/http"
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/services"
	"github.com/jiyuan880304-cmd/fitfocus/utils"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Sessions *services.SessionManager
}

func NewSummaryController(sm *services.SessionManager) *SummaryController {
	return &SummaryController{Sessions: sm}
}

// Today assembles the dashboard numbers: consumption vs goals, BMI and
// the fasting state.
func (sc *SummaryController) Today(c *gin.Context) {
	data, err := sc.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	profile := data.Profile
	todayLog := services.GetLogOrDefault(data.Logs, services.TodayKey(), profile.Weight)

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	consumed := todayLog.TotalCalories()
	waterGoal := utils.WaterGoalML(profile.Weight)

	// Implausible metrics render as a null BMI rather than a fake zero.
	var bmi any
	if v, err := utils.CalculateBMI(profile.Height, profile.Weight); err == nil {
		bmi = v
	}

	var fastingElapsed int64
	if data.Fasting.IsActive && data.Fasting.StartTime != nil {
		fastingElapsed = int64(time.Since(*data.Fasting.StartTime).Seconds())
	}

	c.JSON(http.StatusOK, gin.H{
		"date": todayLog.Date,
		"calories": map[string]float64{
			"consumed": consumed,
			"goal":     float64(profile.DailyCalorieGoal),
			"percent":  pct(consumed, float64(profile.DailyCalorieGoal)),
		},
		"water": map[string]float64{
			"consumed": float64(todayLog.WaterIntake),
			"goal":     float64(waterGoal),
			"percent":  pct(float64(todayLog.WaterIntake), float64(waterGoal)),
		},
		"steps": map[string]float64{
			"consumed": float64(todayLog.Steps),
			"goal":     float64(utils.StepGoal),
			"percent":  pct(float64(todayLog.Steps), float64(utils.StepGoal)),
		},
		"bowelMovements": todayLog.BowelMovements,
		"bmi":            bmi,
		"nudge":          services.ReminderFor(*profile, todayLog, time.Now()),
		"fasting": gin.H{
			"isActive":       data.Fasting.IsActive,
			"targetDuration": data.Fasting.TargetDuration,
			"elapsedSeconds": fastingElapsed,
		},
	})
}
