package main

import (
	"github.com/jiyuan880304-cmd/fitfocus/config"
	"github.com/jiyuan880304-cmd/fitfocus/jobs"
	"github.com/jiyuan880304-cmd/fitfocus/routes"
	"github.com/jiyuan880304-cmd/fitfocus/services"
	"github.com/jiyuan880304-cmd/fitfocus/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.Load()
	config.InitDB()
	utils.InitS3()
	utils.InitSES()
	utils.InitRekognition()

	hub := services.NewSyncHub()
	store := services.NewGormCloudStore(config.DB)
	sessions := services.NewSessionManager(store, hub)

	analyzer, err := services.NewLLMMealAnalyzer()
	if err != nil {
		log.Fatalf("meal analyzer init failed: %v", err)
	}
	advice, err := services.NewAdviceService()
	if err != nil {
		log.Fatalf("advice service init failed: %v", err)
	}

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.WithError(err).Warn("push service unavailable, continuing without it")
		push = nil
	}

	if push != nil {
		scheduler := jobs.NewScheduler(config.DB, store, push, hub)
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := routes.SetupRouter(routes.Deps{
		Sessions: sessions,
		Hub:      hub,
		Push:     push,
		Analyzer: analyzer,
		Advice:   advice,
	})
	r.Run(":" + config.C.Port)
}
