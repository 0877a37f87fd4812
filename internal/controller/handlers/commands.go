package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/callbacks"
	"todo-manager-bot/internal/controller/callbacks/common/keyboard"
	"todo-manager-bot/internal/controller/state"
	"todo-manager-bot/internal/model"
)

// HandleStart обрабатывает команды /start и /menu — показывает главное меню
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	menu := &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: MenuAddTask}, {Text: MenuListTasks}},
			{{Text: MenuTodayTasks}, {Text: MenuMonthTasks}},
			{{Text: MenuMarkDone}, {Text: MenuDeleteTask}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: false,
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Добро пожаловать в Todo Manager Bot! 📝\nВыберите действие в меню ниже:",
		ReplyMarkup: menu,
	})
	if err != nil {
		h.logger.Error("Failed to send main menu",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/add - Добавить задачу\n" +
		"/list - Все задачи\n" +
		"/today - Задачи на сегодня\n" +
		"/month - Задачи на этот месяц\n" +
		"/done - Отметить задачу выполненной\n" +
		"/delete - Удалить задачу\n" +
		"/cancel - Отменить текущий диалог\n" +
		"/menu - Показать главное меню"

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Операция отменена.")
}

// HandleAddTask начинает диалог добавления задачи
func (h *Handlers) HandleAddTask(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	// Повторный /add посреди диалога начинает новую сессию с чистым черновиком
	h.stateManager.ClearState(telegramID)
	h.stateManager.SetState(telegramID, state.StateAddTaskText)

	h.logger.Info("Starting add task dialog",
		zap.Int64("telegram_id", telegramID),
		zap.String("session_id", h.stateManager.SessionID(telegramID)))

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"📝 Новая задача\n\n"+
			"Шаг 1 из 3: Введите текст задачи\n\n"+
			"Для отмены используйте /cancel")
}

// HandleListTasks обрабатывает команду /list — все задачи пользователя
func (h *Handlers) HandleListTasks(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	userID := strconv.FormatInt(update.Message.From.ID, 10)

	tasks, err := h.taskService.ListTasks(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list tasks", zap.String("user_id", userID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось получить задачи. Попробуйте позже.")
		return
	}

	if len(tasks) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "У вас пока нет задач!")
		return
	}

	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, FormatTask(task, true))
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, "📝 Ваши задачи:\n\n"+strings.Join(lines, "\n\n"))
}

// HandleTodayTasks обрабатывает команду /today
func (h *Handlers) HandleTodayTasks(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleTaskWindow(ctx, b, update, "📅 Задачи на сегодня:", "На сегодня задач нет!", h.taskService.ListToday)
}

// HandleMonthTasks обрабатывает команду /month
func (h *Handlers) HandleMonthTasks(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleTaskWindow(ctx, b, update, "📆 Задачи на этот месяц:", "На этот месяц задач нет!", h.taskService.ListThisMonth)
}

func (h *Handlers) handleTaskWindow(
	ctx context.Context,
	b *bot.Bot,
	update *models.Update,
	header, emptyText string,
	list func(ctx context.Context, userID string) ([]*model.Task, error),
) {
	if update.Message == nil {
		return
	}

	userID := strconv.FormatInt(update.Message.From.ID, 10)

	tasks, err := list(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list tasks for window", zap.String("user_id", userID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось получить задачи. Попробуйте позже.")
		return
	}

	if len(tasks) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, emptyText)
		return
	}

	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, FormatTask(task, true))
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, header+"\n\n"+strings.Join(lines, "\n\n"))
}

// HandleMarkDone обрабатывает команду /done — список задач для отметки
func (h *Handlers) HandleMarkDone(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showTaskSelection(ctx, b, update,
		"Выберите задачу, чтобы отметить её выполненной:",
		"У вас нет задач для отметки!",
		callbacks.DonePrefix)
}

// HandleDeleteTask обрабатывает команду /delete — список задач для удаления
func (h *Handlers) HandleDeleteTask(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showTaskSelection(ctx, b, update,
		"Выберите задачу для удаления:",
		"У вас нет задач для удаления!",
		callbacks.DeletePrefix)
}

// showTaskSelection показывает список задач как inline-кнопки, по одной в ряд.
// При пустом списке клавиатура не показывается вовсе.
func (h *Handlers) showTaskSelection(ctx context.Context, b *bot.Bot, update *models.Update, prompt, emptyText, payloadPrefix string) {
	if update.Message == nil {
		return
	}

	userID := strconv.FormatInt(update.Message.From.ID, 10)

	tasks, err := h.taskService.ListTasks(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list tasks for selection", zap.String("user_id", userID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось получить задачи. Попробуйте позже.")
		return
	}

	if len(tasks) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, emptyText)
		return
	}

	builder := keyboard.NewBuilder()
	for _, task := range tasks {
		builder.Row(keyboard.Button(
			FormatTaskButton(task),
			fmt.Sprintf("%s%d", payloadPrefix, task.ID),
		))
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        prompt,
		ReplyMarkup: builder.Build(),
	})
	if err != nil {
		h.logger.Error("Failed to send task selection",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}

// HandleTextMessage обрабатывает текстовые сообщения: сначала кнопки
// главного меню, затем шаги активного диалога
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	switch update.Message.Text {
	case MenuAddTask:
		h.HandleAddTask(ctx, b, update)
		return
	case MenuListTasks:
		h.HandleListTasks(ctx, b, update)
		return
	case MenuTodayTasks:
		h.HandleTodayTasks(ctx, b, update)
		return
	case MenuMonthTasks:
		h.HandleMonthTasks(ctx, b, update)
		return
	case MenuMarkDone:
		h.HandleMarkDone(ctx, b, update)
		return
	case MenuDeleteTask:
		h.HandleDeleteTask(ctx, b, update)
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	switch currentState {
	case state.StateNone:
		// Нет активного диалога — сообщение игнорируется
	case state.StateAddTaskText:
		h.handleAddTaskTextStep(ctx, b, update)
	case state.StateAddTaskPriority, state.StateAddTaskDueDate:
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"Используйте кнопки выше, чтобы продолжить. Для отмены: /cancel")
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}
