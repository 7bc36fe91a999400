package controllers

import (
	"net/http"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/services"
	"github.com/jiyuan880304-cmd/fitfocus/utils"

	"github.com/gin-gonic/gin"
)

// New accounts start with a small token allowance and a shy pet.
const (
	initialTokens    = 100
	initialAffection = 10
)

type ProfileController struct {
	Sessions *services.SessionManager
}

func NewProfileController(sm *services.SessionManager) *ProfileController {
	return &ProfileController{Sessions: sm}
}

// GetState returns the whole aggregate. A null profile tells the client
// to show onboarding.
func (pc *ProfileController) GetState(c *gin.Context) {
	data, err := pc.Sessions.Data(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

type OnboardingInput struct {
	Name         string  `json:"name" binding:"required"`
	Gender       string  `json:"gender" binding:"required,oneof=male female other"`
	Height       float64 `json:"height" binding:"required,gt=0"`
	Weight       float64 `json:"weight" binding:"required,gt=0"`
	TargetWeight float64 `json:"targetWeight" binding:"required,gt=0"`
	PetType      string  `json:"petType" binding:"required,oneof=cat dog mouse"`
	PetName      string  `json:"petName" binding:"required"`
}

// CompleteOnboarding creates the profile, derives the calorie goal and
// seeds today's log with the starting weight.
func (pc *ProfileController) CompleteOnboarding(c *gin.Context) {
	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")

	profile := models.UserProfile{
		Name:             input.Name,
		Gender:           input.Gender,
		Height:           input.Height,
		Weight:           input.Weight,
		TargetWeight:     input.TargetWeight,
		DailyCalorieGoal: utils.DailyCalorieGoal(input.Gender, input.Height, input.Weight),
		Tokens:           initialTokens,
		Affection:        initialAffection,
		Inventory:        []string{},
		PetType:          models.PetType(input.PetType),
		PetName:          input.PetName,
	}

	// The guard runs inside the transform so two racing onboarding
	// requests cannot both create a profile.
	already := false
	next, err := pc.Sessions.Apply(userID, func(d models.AppData) models.AppData {
		if d.Profile != nil {
			already = true
			return d
		}
		today := services.TodayKey()
		d.Profile = &profile
		d.Logs = services.PutLog(d.Logs, today, services.GetLogOrDefault(d.Logs, today, profile.Weight))
		return d
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if already {
		c.JSON(http.StatusConflict, gin.H{"error": "onboarding already completed"})
		return
	}

	c.JSON(http.StatusCreated, next.Profile)
}

type ProfileUpdateInput struct {
	Name             *string  `json:"name"`
	TargetWeight     *float64 `json:"targetWeight"`
	Height           *float64 `json:"height"`
	DailyCalorieGoal *int     `json:"dailyCalorieGoal"` // explicit edit only, never recomputed
	PetName          *string  `json:"petName"`
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next, err := pc.Sessions.Apply(c.GetString("userID"), func(d models.AppData) models.AppData {
		if d.Profile == nil {
			return d
		}
		p := *d.Profile
		if input.Name != nil && *input.Name != "" {
			p.Name = *input.Name
		}
		if input.TargetWeight != nil && *input.TargetWeight > 0 {
			p.TargetWeight = *input.TargetWeight
		}
		if input.Height != nil && *input.Height > 0 {
			p.Height = *input.Height
		}
		if input.DailyCalorieGoal != nil && *input.DailyCalorieGoal > 0 {
			p.DailyCalorieGoal = *input.DailyCalorieGoal
		}
		if input.PetName != nil && *input.PetName != "" {
			p.PetName = *input.PetName
		}
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

	c.JSON(http.StatusOK, next.Profile)
}

type ImageUploadInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadAvatar accepts either a raw emoji or a base64 data-URL image.
// Images are moderated, then stored in S3.
func (pc *ProfileController) UploadAvatar(c *gin.Context) {
	pc.uploadImage(c, "avatars", func(p *models.UserProfile, url string) { p.Avatar = url })
}

// UploadMotivationImage stores the aspiration photo shown on the
// motivation view.
func (pc *ProfileController) UploadMotivationImage(c *gin.Context) {
	pc.uploadImage(c, "motivation", func(p *models.UserProfile, url string) { p.MotivationImage = url })
}

func (pc *ProfileController) uploadImage(c *gin.Context, prefix string, assign func(*models.UserProfile, string)) {
	var input ImageUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID := c.GetString("userID")

	raw, err := utils.DecodeBase64Image(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image"})
		return
	}
	if err := utils.ModerateImage(raw); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	url, err := utils.UploadBase64Image(input.ImageBase64, prefix+"/"+userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	next, err := pc.Sessions.Apply(userID, func(d models.AppData) models.AppData {
		if d.Profile == nil {
			return d
		}
		p := *d.Profile
		assign(&p, url)
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

	c.JSON(http.StatusOK, gin.H{"url": url})
}
