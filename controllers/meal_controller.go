package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Sessions *services.SessionManager
	Analyzer services.MealAnalyzer
}

func NewMealController(sm *services.SessionManager, analyzer services.MealAnalyzer) *MealController {
	return &MealController{Sessions: sm, Analyzer: analyzer}
}

type LogMealInput struct {
	Description string `json:"description" binding:"required"`
}

// LogMeal sends the description to the analysis collaborator and, on
// success, appends the resulting FoodItem and applies the flat meal
// bonus. A failed analysis creates nothing.
func (mc *MealController) LogMeal(c *gin.Context) {
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := mc.Analyzer.Analyze(c.Request.Context(), input.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed, please try again or rephrase."})
		return
	}

	now := time.Now()
	item := models.FoodItem{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      analysis.Name,
		Calories:  analysis.Calories,
		Protein:   analysis.Protein,
		Carbs:     analysis.Carbs,
		Fat:       analysis.Fat,
		Timestamp: now.UnixMilli(),
	}

	next, err := mc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		if d.Profile == nil {
			return d
		}
		today := services.TodayKey()
		entry := services.GetLogOrDefault(d.Logs, today, d.Profile.Weight)

		meals := make([]models.FoodItem, 0, len(entry.Meals)+1)
		meals = append(meals, entry.Meals...)
		meals = append(meals, item)
		entry.Meals = meals

		d.Logs = services.PutLog(d.Logs, today, entry)

		rewarded := services.MealBonus(*d.Profile)
		d.Profile = &rewarded
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

	c.JSON(http.StatusCreated, gin.H{
		"meal":    item,
		"profile": next.Profile,
	})
}

// ListMeals returns today's meals in the order they were logged.
func (mc *MealController) ListMeals(c *gin.Context) {
	data, err := mc.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	today := services.GetLogOrDefault(data.Logs, services.TodayKey(), data.Profile.Weight)
	c.JSON(http.StatusOK, today.Meals)
}

// DeleteMeal removes one item from today's log. The meal bonus is not
// reversed.
func (mc *MealController) DeleteMeal(c *gin.Context) {
	mealID := c.Param("id")

	found := false
	next, err := mc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		if d.Profile == nil {
			return d
		}
		today := services.TodayKey()
		entry := services.GetLogOrDefault(d.Logs, today, d.Profile.Weight)

		meals := make([]models.FoodItem, 0, len(entry.Meals))
		for _, m := range entry.Meals {
			if m.ID == mealID {
				found = true
				continue
			}
			meals = append(meals, m)
		}
		entry.Meals = meals

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
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
