package callbacks

import (
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/state"
	"todo-manager-bot/internal/service"
)

// Handler содержит зависимости для всех callback handlers
type Handler struct {
	taskService  *service.TaskService
	stateManager *state.Manager
	logger       *zap.Logger
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	taskService *service.TaskService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		taskService:  taskService,
		stateManager: stateManager,
		logger:       logger,
	}
}
