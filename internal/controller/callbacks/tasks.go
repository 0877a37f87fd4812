package callbacks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/callbacks/common"
	"todo-manager-bot/internal/controller/callbacks/common/formatting"
	"todo-manager-bot/internal/controller/callbacks/common/keyboard"
	"todo-manager-bot/internal/controller/state"
	"todo-manager-bot/internal/model"
	"todo-manager-bot/internal/service"
)

// handlePrioritySelected обрабатывает выбор приоритета в диалоге добавления
func (h *Handler) handlePrioritySelected(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, action Action) {
	telegramID := callback.From.ID

	// Кнопка могла остаться от прошлого диалога — без активной сессии
	// на нужном шаге нажатие игнорируется
	if h.stateManager.GetState(telegramID) != state.StateAddTaskPriority {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoActiveFlow))
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		h.logger.Error("Failed to get message from callback", zap.Int64("user_id", telegramID))
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	// Сессию мог удалить параллельный /cancel после проверки состояния —
	// тогда SetState ниже воскресил бы её с пустым черновиком
	ok := h.stateManager.UpdateDraft(telegramID, func(draft *model.TaskDraft) {
		draft.Priority = action.Priority
	})
	if !ok {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoActiveFlow))
		return
	}
	h.stateManager.SetState(telegramID, state.StateAddTaskDueDate)

	h.logger.Info("Priority selected, showing calendar",
		zap.Int64("telegram_id", telegramID),
		zap.String("session_id", h.stateManager.SessionID(telegramID)),
		zap.String("priority", string(action.Priority)))

	common.AnswerCallback(ctx, b, callback.ID, "")

	// Убираем клавиатуру приоритетов, чтобы её нельзя было нажать повторно
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf("Приоритет: %s %s\n\nШаг 3 из 3: Выберите срок выполнения:",
			formatting.PriorityEmoji(action.Priority), formatting.PriorityName(action.Priority)),
		ReplyMarkup: &models.InlineKeyboardMarkup{
			InlineKeyboard: keyboard.Calendar(time.Now()),
		},
	})
}

// handleDateSelected обрабатывает выбор даты в календаре и создаёт задачу
func (h *Handler) handleDateSelected(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, action Action) {
	telegramID := callback.From.ID

	if h.stateManager.GetState(telegramID) != state.StateAddTaskDueDate {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoActiveFlow))
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		h.logger.Error("Failed to get message from callback", zap.Int64("user_id", telegramID))
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	draft, ok := h.stateManager.Draft(telegramID)
	if !ok {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoActiveFlow))
		return
	}

	sessionID := h.stateManager.SessionID(telegramID)
	userID := strconv.FormatInt(telegramID, 10)

	task, err := h.taskService.CreateTask(ctx, userID, draft.Text, draft.Priority, action.Date)

	// Диалог завершён в любом исходе, черновик больше не нужен
	h.stateManager.ClearState(telegramID)

	common.AnswerCallback(ctx, b, callback.ID, "")
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	if err != nil {
		h.logger.Error("Failed to create task",
			zap.Int64("telegram_id", telegramID),
			zap.String("session_id", sessionID),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   common.ErrorMessage(err),
		})
		return
	}

	h.logger.Info("Add task dialog completed",
		zap.Int64("telegram_id", telegramID),
		zap.String("session_id", sessionID),
		zap.Int64("task_id", task.ID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf("✅ Задача добавлена!\n\n🎯 %s\nПриоритет: %s %s\nСрок: %s",
			task.Text,
			formatting.PriorityEmoji(task.Priority),
			formatting.PriorityName(task.Priority),
			formatting.FormatDate(task.DueDate)),
	})
}

// handleMarkDone отмечает выбранную задачу выполненной
func (h *Handler) handleMarkDone(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, action Action) {
	h.finishSelection(ctx, b, callback, action.TaskID, "✅ Задача отмечена выполненной!", h.taskService.MarkDone)
}

// handleDelete удаляет выбранную задачу
func (h *Handler) handleDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, action Action) {
	h.finishSelection(ctx, b, callback, action.TaskID, "✅ Задача удалена!", h.taskService.DeleteTask)
}

// finishSelection завершает одношаговый флоу выбора задачи из списка:
// выполняет операцию хранилища и убирает список кнопок
func (h *Handler) finishSelection(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	taskID int64,
	successText string,
	op func(ctx context.Context, taskID int64, userID string) error,
) {
	telegramID := callback.From.ID
	userID := strconv.FormatInt(telegramID, 10)

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		h.logger.Error("Failed to get message from callback", zap.Int64("user_id", telegramID))
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	err := op(ctx, taskID, userID)

	common.AnswerCallback(ctx, b, callback.ID, "")
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	if err != nil {
		if !errors.Is(err, service.ErrTaskNotFound) {
			h.logger.Error("Task operation failed",
				zap.Int64("task_id", taskID),
				zap.String("user_id", userID),
				zap.Error(err))
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   common.ErrorMessage(err),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   successText,
	})
}
