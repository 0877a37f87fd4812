package handlers

import (
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/state"
	"todo-manager-bot/internal/service"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	taskService  *service.TaskService
	stateManager *state.Manager
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	taskService *service.TaskService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		taskService:  taskService,
		stateManager: stateManager,
		logger:       logger,
	}
}

// Подписи кнопок главного меню (reply-клавиатура)
const (
	MenuAddTask    = "📝 Добавить задачу"
	MenuListTasks  = "📋 Все задачи"
	MenuTodayTasks = "📅 На сегодня"
	MenuMonthTasks = "📆 На месяц"
	MenuMarkDone   = "✅ Отметить выполненной"
	MenuDeleteTask = "❌ Удалить задачу"
)
