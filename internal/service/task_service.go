package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"todo-manager-bot/internal/model"
)

var (
	// ErrTaskNotFound — задача не существует или принадлежит другому пользователю.
	// Снаружи эти два случая неразличимы намеренно.
	ErrTaskNotFound = errors.New("task not found or not owned by user")

	// ErrEmptyText — текст задачи пуст после обрезки пробелов
	ErrEmptyText = errors.New("task text is empty")
)

// TaskStore — операции хранилища, нужные сервису.
// Реализуется repository.TaskRepository.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListByUser(ctx context.Context, userID string) ([]*model.Task, error)
	ListDueBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Task, error)
	ListDueBetweenInclusive(ctx context.Context, userID string, from, to time.Time) ([]*model.Task, error)
	MarkDone(ctx context.Context, taskID int64, userID string) (bool, error)
	Delete(ctx context.Context, taskID int64, userID string) (bool, error)
	UserIDs(ctx context.Context) ([]string, error)
}

type TaskService struct {
	store  TaskStore
	logger *zap.Logger
}

func NewTaskService(store TaskStore, logger *zap.Logger) *TaskService {
	return &TaskService{
		store:  store,
		logger: logger,
	}
}

// CreateTask создаёт задачу. Пустой приоритет заменяется на medium.
func (s *TaskService) CreateTask(ctx context.Context, userID, text string, priority model.Priority, dueDate time.Time) (*model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	parsed, err := model.ParsePriority(string(priority))
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		UserID:   userID,
		Text:     text,
		Priority: parsed,
		DueDate:  dueDate,
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("Task created",
		zap.Int64("task_id", task.ID),
		zap.String("user_id", userID),
		zap.String("priority", string(task.Priority)),
		zap.Time("due_date", task.DueDate))

	return task, nil
}

// ListTasks возвращает все задачи пользователя по возрастанию срока
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return s.store.ListByUser(ctx, userID)
}

// ListToday возвращает задачи со сроком в [сегодня 00:00, завтра 00:00)
func (s *TaskService) ListToday(ctx context.Context, userID string) ([]*model.Task, error) {
	from, to := dayWindow(time.Now(), 0)
	return s.store.ListDueBetween(ctx, userID, from, to)
}

// ListTomorrow возвращает задачи со сроком в [завтра 00:00, послезавтра 00:00)
func (s *TaskService) ListTomorrow(ctx context.Context, userID string) ([]*model.Task, error) {
	from, to := dayWindow(time.Now(), 1)
	return s.store.ListDueBetween(ctx, userID, from, to)
}

// ListThisMonth возвращает задачи со сроком в текущем календарном месяце
func (s *TaskService) ListThisMonth(ctx context.Context, userID string) ([]*model.Task, error) {
	from, to := monthWindow(time.Now())
	return s.store.ListDueBetweenInclusive(ctx, userID, from, to)
}

// MarkDone помечает задачу пользователя выполненной
func (s *TaskService) MarkDone(ctx context.Context, taskID int64, userID string) error {
	updated, err := s.store.MarkDone(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTaskNotFound
	}

	s.logger.Info("Task marked as done",
		zap.Int64("task_id", taskID),
		zap.String("user_id", userID))

	return nil
}

// DeleteTask удаляет задачу пользователя
func (s *TaskService) DeleteTask(ctx context.Context, taskID int64, userID string) error {
	deleted, err := s.store.Delete(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}

	s.logger.Info("Task deleted",
		zap.Int64("task_id", taskID),
		zap.String("user_id", userID))

	return nil
}

// UserIDsWithTasks возвращает всех пользователей, которым могут понадобиться напоминания
func (s *TaskService) UserIDsWithTasks(ctx context.Context) ([]string, error) {
	return s.store.UserIDs(ctx)
}
