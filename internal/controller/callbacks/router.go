package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/callbacks/common"
)

// HandleCallbackQuery — главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	action, err := ParseAction(callback.Data)
	if err != nil {
		// Некорректный payload: логируем и отвечаем, дальше запрос не идёт
		h.logger.Warn("Malformed callback data",
			zap.String("data", callback.Data),
			zap.Int64("user_id", callback.From.ID),
			zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	h.logger.Info("Routing callback",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID))

	switch action.Kind {
	case ActionIgnore:
		common.AnswerCallback(ctx, b, callback.ID, "")
	case ActionPriority:
		h.handlePrioritySelected(ctx, b, callback, action)
	case ActionDate:
		h.handleDateSelected(ctx, b, callback, action)
	case ActionDone:
		h.handleMarkDone(ctx, b, callback, action)
	case ActionDelete:
		h.handleDelete(ctx, b, callback, action)
	}
}
