package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/callbacks/common/formatting"
	"todo-manager-bot/internal/model"
)

// Часы запуска рассылки напоминаний (локальное время сервера)
var reminderHours = []int{8, 20}

// TaskSource — операции сервиса задач, нужные планировщику.
// Реализуется service.TaskService.
type TaskSource interface {
	UserIDsWithTasks(ctx context.Context) ([]string, error)
	ListTomorrow(ctx context.Context, userID string) ([]*model.Task, error)
}

// DigestSender отправляет сообщения-дайджесты. Реализуется bot.Bot.
type DigestSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Scheduler управляет фоновой рассылкой напоминаний
type Scheduler struct {
	tasks    TaskSource
	sender   DigestSender
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(tasks TaskSource, sender DigestSender, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		tasks:    tasks,
		sender:   sender,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")
	go s.runReminderTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runReminderTask рассылает напоминания в 08:00 и 20:00
func (s *Scheduler) runReminderTask(ctx context.Context) {
	for {
		next := nextFireTime(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			s.sendTomorrowReminders(ctx)
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Reminder task stopped")
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Reminder task cancelled")
			return
		}
	}
}

// nextFireTime возвращает ближайший будущий момент рассылки
func nextFireTime(now time.Time) time.Time {
	for _, hour := range reminderHours {
		fire := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if fire.After(now) {
			return fire
		}
	}
	// Все времена на сегодня прошли — первый запуск завтра
	return time.Date(now.Year(), now.Month(), now.Day()+1, reminderHours[0], 0, 0, 0, now.Location())
}

// sendTomorrowReminders отправляет каждому пользователю дайджест задач на завтра.
// Ошибка по одному пользователю не прерывает рассылку остальным.
func (s *Scheduler) sendTomorrowReminders(ctx context.Context) {
	logger := s.logger.With(zap.String("run_id", uuid.NewString()))
	logger.Info("Starting reminder run")

	userIDs, err := s.tasks.UserIDsWithTasks(ctx)
	if err != nil {
		logger.Error("Failed to list users for reminders", zap.Error(err))
		return
	}

	var sent int
	for _, userID := range userIDs {
		tasks, err := s.tasks.ListTomorrow(ctx, userID)
		if err != nil {
			logger.Error("Failed to load tomorrow tasks",
				zap.String("user_id", userID),
				zap.Error(err))
			continue
		}

		if len(tasks) == 0 {
			continue
		}

		_, err = s.sender.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: userID,
			Text:   buildDigest(tasks),
		})
		if err != nil {
			logger.Error("Failed to send reminder",
				zap.String("user_id", userID),
				zap.Error(err))
			continue
		}
		sent++
	}

	logger.Info("Reminder run finished",
		zap.Int("users_total", len(userIDs)),
		zap.Int("reminders_sent", sent))
}

// buildDigest собирает одно сообщение-дайджест по задачам на завтра
func buildDigest(tasks []*model.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf("🎯 %s\nПриоритет: %s", task.Text, formatting.PriorityName(task.Priority)))
	}

	return fmt.Sprintf(
		"👋 Дружеское напоминание!\n\nНа завтра у вас запланировано %d %s:\n\n%s\n\nХорошего дня! 🌟",
		len(tasks),
		formatting.PluralizeTasks(len(tasks)),
		strings.Join(lines, "\n\n"),
	)
}
