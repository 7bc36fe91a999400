package controllers

import (
	"net/http"
	"sort"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Sessions *services.SessionManager
}

func NewLogController(sm *services.SessionManager) *LogController {
	return &LogController{Sessions: sm}
}

// GetToday returns today's log, zero-valued if nothing was recorded yet.
func (lc *LogController) GetToday(c *gin.Context) {
	data, err := lc.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}
	c.JSON(http.StatusOK, services.GetLogOrDefault(data.Logs, services.TodayKey(), data.Profile.Weight))
}

// applyToToday routes one log mutation through the session controller
// so the accrual diff always runs.
func (lc *LogController) applyToToday(c *gin.Context, mutate func(models.DailyLog) models.DailyLog) {
	next, err := lc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		if d.Profile == nil {
			return d
		}
		today := services.TodayKey()
		entry := mutate(services.GetLogOrDefault(d.Logs, today, d.Profile.Weight))
		d.Logs = services.PutLog(d.Logs, today, entry)
		return d
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if next.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"log":     next.Logs[services.TodayKey()],
		"profile": next.Profile,
	})
}

type WaterInput struct {
	Amount int `json:"amount"`
}

// AddWater adds one glass (250ml by default) to today's intake.
func (lc *LogController) AddWater(c *gin.Context) {
	var input WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount <= 0 {
		input.Amount = services.WaterTierML
	}

	lc.applyToToday(c, func(log models.DailyLog) models.DailyLog {
		log.WaterIntake += input.Amount
		return log
	})
}

type StepsInput struct {
	Steps int `json:"steps" binding:"min=0"`
}

// SetSteps overwrites today's step count (synced from a tracker, so it
// is a set, not an increment).
func (lc *LogController) SetSteps(c *gin.Context) {
	var input StepsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lc.applyToToday(c, func(log models.DailyLog) models.DailyLog {
		log.Steps = input.Steps
		return log
	})
}

// AddBowelMovement records one event.
func (lc *LogController) AddBowelMovement(c *gin.Context) {
	lc.applyToToday(c, func(log models.DailyLog) models.DailyLog {
		log.BowelMovements++
		return log
	})
}

type WeightInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

// SetWeight records today's measurement and, by policy, also moves the
// profile weight to match.
func (lc *LogController) SetWeight(c *gin.Context) {
	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next, err := lc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		if d.Profile == nil {
			return d
		}
		today := services.TodayKey()
		entry := services.GetLogOrDefault(d.Logs, today, d.Profile.Weight)
		w := input.Weight
		entry.Weight = &w
		d.Logs = services.PutLog(d.Logs, today, entry)

		p := *d.Profile
		p.Weight = input.Weight
		d.Profile = &p
		return d
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if next.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"log":     next.Logs[services.TodayKey()],
		"profile": next.Profile,
	})
}

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// WeightTrend returns the date-ordered series of measured weights.
func (lc *LogController) WeightTrend(c *gin.Context) {
	data, err := lc.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	points := make([]WeightPoint, 0, len(data.Logs))
	for date, log := range data.Logs {
		if log.Weight == nil {
			continue
		}
		points = append(points, WeightPoint{Date: date, Weight: *log.Weight})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	c.JSON(http.StatusOK, points)
}
