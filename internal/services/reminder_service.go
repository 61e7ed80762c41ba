package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vorathons/memory-mate/internal/domain"
	"github.com/vorathons/memory-mate/internal/logger"
	"github.com/vorathons/memory-mate/internal/store"
	"github.com/vorathons/memory-mate/internal/utils"
)

const defaultReminderBody = "อย่าลืมทำกิจวัตรประจำวันนะครับ"

// ReminderService fires a notification when the wall clock reaches an
// incomplete task's scheduled time. It ticks every second but keeps a
// single last-notified-minute marker, so a task notifies at most once
// per wall-clock minute no matter how often the tick lands inside it.
type ReminderService struct {
	routines *store.RoutineStore
	notifier domain.Notifier
	loc      *time.Location
	interval time.Duration

	mu                 sync.Mutex
	lastNotifiedMinute string
}

func NewReminderService(routines *store.RoutineStore, notifier domain.Notifier, loc *time.Location) *ReminderService {
	return &ReminderService{
		routines: routines,
		notifier: notifier,
		loc:      loc,
		interval: time.Second,
	}
}

// Start runs the tick loop until the context is cancelled.
func (s *ReminderService) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Reminder scheduler started", "timezone", s.loc.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder scheduler stopped")
			return ctx.Err()
		case now := <-ticker.C:
			s.checkOnce(now)
		}
	}
}

// checkOnce is one scheduler tick. When the formatted minute differs
// from the marker it scans every task, notifies the matching incomplete
// ones, then advances the marker once for the whole scan. Minutes the
// process slept through are skipped, never back-filled.
func (s *ReminderService) checkOnce(now time.Time) {
	minute := utils.FormatMinute(now.In(s.loc))

	s.mu.Lock()
	defer s.mu.Unlock()

	if minute == s.lastNotifiedMinute {
		return
	}

	for _, task := range s.routines.List() {
		if task.Time == minute && !task.Completed {
			body := task.VoiceMessageText
			if body == "" {
				body = defaultReminderBody
			}
			s.notifier.Notify(fmt.Sprintf("ถึงเวลา: %s", task.Title), body)
			logger.Info("Reminder dispatched", "task_id", task.ID, "title", task.Title, "minute", minute)
		}
	}

	s.lastNotifiedMinute = minute
}
