package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/callbacks"
	"todo-manager-bot/internal/controller/callbacks/common/keyboard"
	"todo-manager-bot/internal/controller/state"
	"todo-manager-bot/internal/model"
)

// handleAddTaskTextStep обрабатывает ввод текста задачи
func (h *Handlers) handleAddTaskTextStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	if text == "" {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Текст задачи не может быть пустым.\n\nПопробуйте ещё раз:")
		return
	}

	// Сессия могла исчезнуть между проверкой состояния и этим шагом
	// (например, параллельный /cancel) — тогда диалог не продолжается
	ok := h.stateManager.UpdateDraft(telegramID, func(draft *model.TaskDraft) {
		draft.Text = text
	})
	if !ok {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"❌ Нет активного диалога. Начните заново: /add")
		return
	}
	h.stateManager.SetState(telegramID, state.StateAddTaskPriority)

	h.logger.Info("Task text saved, moving to priority step",
		zap.Int64("telegram_id", telegramID),
		zap.String("session_id", h.stateManager.SessionID(telegramID)))

	priorityKeyboard := keyboard.NewBuilder().
		Row(
			keyboard.Button("🔴 Высокий", callbacks.PriorityPrefix+string(model.PriorityHigh)),
			keyboard.Button("🟡 Средний", callbacks.PriorityPrefix+string(model.PriorityMedium)),
			keyboard.Button("🟢 Низкий", callbacks.PriorityPrefix+string(model.PriorityLow)),
		).
		Build()

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Шаг 2 из 3: Выберите приоритет задачи:",
		ReplyMarkup: priorityKeyboard,
	})
	if err != nil {
		h.logger.Error("Failed to send priority keyboard",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}
