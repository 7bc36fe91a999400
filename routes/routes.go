package routes

import (
	"github.com/jiyuan880304-cmd/fitfocus/controllers"
	"github.com/jiyuan880304-cmd/fitfocus/middlewares"
	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
)

// Deps bundles the shared services the controllers need.
type Deps struct {
	Sessions *services.SessionManager
	Hub      *services.SyncHub
	Push     *services.PushService
	Analyzer services.MealAnalyzer
	Advice   *services.AdviceService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	account := controllers.NewAccountController(d.Sessions)
	profile := controllers.NewProfileController(d.Sessions)
	logs := controllers.NewLogController(d.Sessions)
	meals := controllers.NewMealController(d.Sessions, d.Analyzer)
	fasting := controllers.NewFastingController(d.Sessions)
	pet := controllers.NewPetController(d.Sessions)
	advice := controllers.NewAdviceController(d.Sessions, d.Advice)
	summary := controllers.NewSummaryController(d.Sessions)
	realtime := controllers.NewRealtimeController(d.Hub)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/logout", account.Logout)
		api.DELETE("/account", account.Delete)

		api.GET("/state", profile.GetState)
		api.POST("/onboarding", profile.CompleteOnboarding)
		api.PUT("/profile", profile.UpdateProfile)
		api.POST("/profile/avatar", profile.UploadAvatar)
		api.POST("/profile/motivation-image", profile.UploadMotivationImage)

		api.GET("/logs/today", logs.GetToday)
		api.POST("/logs/today/water", logs.AddWater)
		api.PUT("/logs/today/steps", logs.SetSteps)
		api.POST("/logs/today/bowel-movements", logs.AddBowelMovement)
		api.PUT("/logs/today/weight", logs.SetWeight)
		api.GET("/logs/weight-trend", logs.WeightTrend)

		api.POST("/meals", meals.LogMeal)
		api.GET("/meals", meals.ListMeals)
		api.DELETE("/meals/:id", meals.DeleteMeal)

		api.GET("/fasting", fasting.Get)
		api.POST("/fasting/start", fasting.Start)
		api.POST("/fasting/stop", fasting.Stop)
		api.PUT("/fasting/duration", fasting.SetDuration)

		api.GET("/pet", pet.Status)
		api.GET("/pet/shop", pet.Shop)
		api.POST("/pet/shop/purchase", pet.Purchase)

		api.GET("/advice/daily", advice.Daily)
		api.GET("/advice/motivation", advice.Motivation)
		api.GET("/advice/cheer", advice.Cheer)

		api.GET("/summary/today", summary.Today)

		api.GET("/ws", realtime.EventsWS)
	}

	if d.Push != nil {
		devices := controllers.NewDeviceController(d.Push)
		api.POST("/devices", devices.Register)
	}

	return r
}
