package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"todo-manager-bot/internal/controller/callbacks"
	"todo-manager-bot/internal/controller/handlers"
	"todo-manager-bot/internal/controller/state"
	"todo-manager-bot/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	taskService *service.TaskService,
	logger *zap.Logger,
) *BotController {
	// Менеджер сессий общий для команд и callbacks:
	// одна сессия на пользователя, один диспетчер на тип события
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(taskService, stateManager, logger)
	callbackHandler := callbacks.NewHandler(taskService, stateManager, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/menu", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/add", bot.MatchTypeExact, c.handlers.HandleAddTask)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/list", bot.MatchTypeExact, c.handlers.HandleListTasks)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/today", bot.MatchTypeExact, c.handlers.HandleTodayTasks)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/month", bot.MatchTypeExact, c.handlers.HandleMonthTasks)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/done", bot.MatchTypeExact, c.handlers.HandleMarkDone)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/delete", bot.MatchTypeExact, c.handlers.HandleDeleteTask)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Обработчик текстовых сообщений (кнопки меню и шаги диалогов)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "menu", Description: "📝 Главное меню"},
		{Command: "add", Description: "➕ Добавить задачу"},
		{Command: "list", Description: "📋 Все задачи"},
		{Command: "today", Description: "📅 Задачи на сегодня"},
		{Command: "month", Description: "📆 Задачи на месяц"},
		{Command: "done", Description: "✅ Отметить выполненной"},
		{Command: "delete", Description: "❌ Удалить задачу"},
		{Command: "cancel", Description: "🚫 Отменить диалог"},
		{Command: "help", Description: "❓ Справка"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота (блокирует до отмены контекста)
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
