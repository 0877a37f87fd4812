package model

import (
	"fmt"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority используется, если приоритет не указан при создании задачи
const DefaultPriority = PriorityMedium

// ParsePriority разбирает строковое значение приоритета.
// Пустая строка считается приоритетом по умолчанию (medium).
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return DefaultPriority, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}

type Task struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Priority  Priority  `json:"priority"`
	DueDate   time.Time `json:"due_date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskDraft накапливает данные задачи по шагам диалога добавления.
// Хранится только в памяти внутри сессии, никогда не пишется в БД.
type TaskDraft struct {
	Text     string
	Priority Priority
	DueDate  time.Time
}
