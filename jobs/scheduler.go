// Package jobs runs the background reminder schedule.
package jobs

import (
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Scheduler sends hourly nudges to users with registered devices.
type Scheduler struct {
	cron  *cron.Cron
	db    *gorm.DB
	store services.CloudStore
	push  *services.PushService
	hub   *services.SyncHub
}

func NewScheduler(db *gorm.DB, store services.CloudStore, push *services.PushService, hub *services.SyncHub) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		db:    db,
		store: store,
		push:  push,
		hub:   hub,
	}
}

func (s *Scheduler) Start() {
	s.cron.AddFunc("0 * * * *", func() {
		if err := s.sendReminders(); err != nil {
			log.WithError(err).Error("reminder run failed")
		}
	})
	s.cron.Start()
	log.Info("reminder scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sendReminders() error {
	var userIDs []string
	err := s.db.Model(&models.UserDevice{}).
		Where("enabled = ?", true).
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return err
	}

	for _, uid := range userIDs {
		data, err := s.store.Load(uid)
		if err != nil || data == nil || data.Profile == nil {
			continue
		}

		todayLog := services.GetLogOrDefault(data.Logs, services.TodayKey(), data.Profile.Weight)
		msg := services.ReminderFor(*data.Profile, todayLog, time.Now())
		if msg == "" {
			continue
		}

		s.push.PushToUser(uid, "FitFocus", msg, map[string]string{"type": "reminder"})
		if s.hub != nil {
			s.hub.Broadcast(uid, map[string]any{"kind": services.EventReminder, "message": msg})
		}
	}
	return nil
}
