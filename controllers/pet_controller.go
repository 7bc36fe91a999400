package controllers

import (
	"errors"
	"net/http"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
)

type PetController struct {
	Sessions *services.SessionManager
}

func NewPetController(sm *services.SessionManager) *PetController {
	return &PetController{Sessions: sm}
}

// Status returns the pet's state plus its current dialogue line.
func (pc *PetController) Status(c *gin.Context) {
	data, err := pc.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data.Profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding not completed"})
		return
	}

	todayLog := services.GetLogOrDefault(data.Logs, services.TodayKey(), data.Profile.Weight)
	c.JSON(http.StatusOK, gin.H{
		"petType":   data.Profile.PetType,
		"petName":   data.Profile.PetName,
		"affection": data.Profile.Affection,
		"tokens":    data.Profile.Tokens,
		"inventory": data.Profile.Inventory,
		"speech":    services.PetSpeech(*data.Profile, todayLog),
	})
}

func (pc *PetController) Shop(c *gin.Context) {
	c.JSON(http.StatusOK, services.ShopCatalog)
}

type PurchaseInput struct {
	ItemID string `json:"itemId" binding:"required"`
}

// Purchase buys a shop item for the pet.
func (pc *PetController) Purchase(c *gin.Context) {
	var input PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var purchaseErr error
	var bought services.ShopItem
	next, err := pc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		if d.Profile == nil {
			return d
		}
		updated, item, err := services.Purchase(*d.Profile, input.ItemID)
		if err != nil {
			purchaseErr = err
			return d
		}
		bought = item
		d.Profile = &updated
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
	if purchaseErr != nil {
		status := http.StatusBadRequest
		if errors.Is(purchaseErr, services.ErrInsufficientTokens) {
			status = http.StatusPaymentRequired
		}
		c.JSON(status, gin.H{"error": purchaseErr.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":    bought,
		"profile": next.Profile,
	})
}
