package controllers

import (
	"net/http"

	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
)

type AdviceController struct {
	Sessions *services.SessionManager
	Advice   *services.AdviceService
}

func NewAdviceController(sm *services.SessionManager, advice *services.AdviceService) *AdviceController {
	return &AdviceController{Sessions: sm, Advice: advice}
}

// The advice endpoints always answer with some text; generation
// failures fall back to canned messages inside the service.

func (ac *AdviceController) Daily(c *gin.Context) {
	data, err := ac.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	todayLog := services.GetLogOrDefault(data.Logs, services.TodayKey(), data.Profile.Weight)
	text := ac.Advice.DailyAdvice(c.Request.Context(), *data.Profile, todayLog)
	c.JSON(http.StatusOK, gin.H{"advice": text})
}

func (ac *AdviceController) Motivation(c *gin.Context) {
	data, err := ac.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	text := ac.Advice.MotivationMessage(c.Request.Context(), *data.Profile)
	c.JSON(http.StatusOK, gin.H{"message": text})
}

func (ac *AdviceController) Cheer(c *gin.Context) {
	data, err := ac.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	text := ac.Advice.QuickCheer(c.Request.Context(), *data.Profile)
	c.JSON(http.StatusOK, gin.H{"cheer": text})
}
