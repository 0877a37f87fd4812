package handlers

import (
	"fmt"

	"todo-manager-bot/internal/controller/callbacks/common/formatting"
	"todo-manager-bot/internal/model"
)

// FormatTask форматирует задачу для текстового списка
func FormatTask(task *model.Task, withDate bool) string {
	text := fmt.Sprintf("%s %s\nПриоритет: %s %s",
		formatting.CompletionGlyph(task.Completed),
		task.Text,
		formatting.PriorityEmoji(task.Priority),
		formatting.PriorityName(task.Priority),
	)
	if withDate {
		text += fmt.Sprintf("\nСрок: %s", formatting.FormatDate(task.DueDate))
	}
	return text + fmt.Sprintf("\nID: %d", task.ID)
}

// FormatTaskButton форматирует подпись кнопки задачи в списках выбора
func FormatTaskButton(task *model.Task) string {
	return fmt.Sprintf("%s %s (до %s)",
		formatting.CompletionGlyph(task.Completed),
		task.Text,
		formatting.FormatDate(task.DueDate),
	)
}
