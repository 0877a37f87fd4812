package state

import (
	"todo-manager-bot/internal/model"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния диалога добавления задачи
	StateAddTaskText     UserState = "add_task_text"
	StateAddTaskPriority UserState = "add_task_priority"
	StateAddTaskDueDate  UserState = "add_task_due_date"
)

// Session хранит состояние одного незавершённого диалога пользователя.
// Draft накапливает поля будущей задачи и отбрасывается вместе с сессией.
type Session struct {
	ID    string // идентификатор для корреляции логов
	State UserState
	Draft model.TaskDraft
}
