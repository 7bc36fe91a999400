package controllers

import (
	"net/http"
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
)

type FastingController struct {
	Sessions *services.SessionManager
}

func NewFastingController(sm *services.SessionManager) *FastingController {
	return &FastingController{Sessions: sm}
}

type fastingStatus struct {
	models.FastingSession
	ElapsedSeconds int64 `json:"elapsedSeconds"`
}

func statusOf(f models.FastingSession) fastingStatus {
	s := fastingStatus{FastingSession: f}
	if f.IsActive && f.StartTime != nil {
		s.ElapsedSeconds = int64(time.Since(*f.StartTime).Seconds())
	}
	return s
}

func (fc *FastingController) Get(c *gin.Context) {
	data, err := fc.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, statusOf(data.Fasting))
}

// Start begins a fast now. Starting an already active fast restarts it.
func (fc *FastingController) Start(c *gin.Context) {
	now := time.Now()
	next, err := fc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		d.Fasting.IsActive = true
		d.Fasting.StartTime = &now
		return d
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, statusOf(next.Fasting))
}

// Stop ends the fast; StartTime is cleared with it.
func (fc *FastingController) Stop(c *gin.Context) {
	next, err := fc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		d.Fasting.IsActive = false
		d.Fasting.StartTime = nil
		return d
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, statusOf(next.Fasting))
}

type DurationInput struct {
	TargetDuration int `json:"targetDuration" binding:"required"`
}

// SetDuration changes the target window. Only the fixed set of
// durations is accepted, and not while a fast is running.
func (fc *FastingController) SetDuration(c *gin.Context) {
	var input DurationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidFastingDuration(input.TargetDuration) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetDuration must be one of 12, 14, 16, 18, 20"})
		return
	}

	rejected := false
	next, err := fc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		if d.Fasting.IsActive {
			rejected = true
			return d
		}
		d.Fasting.TargetDuration = input.TargetDuration
		return d
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rejected {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot change duration during an active fast"})
		return
	}
	c.JSON(http.StatusOK, statusOf(next.Fasting))
}
