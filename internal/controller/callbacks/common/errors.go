package common

import (
	"errors"

	"todo-manager-bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrNoActiveFlow  = errors.New("no active dialog for this step")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		return "❌ Задача не найдена или у вас нет к ней доступа"
	case errors.Is(err, service.ErrEmptyText):
		return "❌ Текст задачи не может быть пустым"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, ErrNoActiveFlow):
		return "❌ Нет активного диалога. Начните заново: /add"
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	default:
		return "❌ Произошла ошибка. Попробуйте позже."
	}
}
