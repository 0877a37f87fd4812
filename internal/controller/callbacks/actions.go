package callbacks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"todo-manager-bot/internal/controller/callbacks/common"
	"todo-manager-bot/internal/controller/callbacks/common/keyboard"
	"todo-manager-bot/internal/model"
)

// Префиксы callback data — формат кнопок, который бот отправляет сам себе
const (
	PriorityPrefix = "priority_" // priority_high | priority_medium | priority_low
	DatePrefix     = "date_"     // date_2024-01-15
	DonePrefix     = "done_"     // done_<task_id>
	DeletePrefix   = "delete_"   // delete_<task_id>
)

// ActionKind определяет вид действия, закодированного в callback data
type ActionKind int

const (
	ActionIgnore ActionKind = iota // неинтерактивные ячейки клавиатур
	ActionPriority
	ActionDate
	ActionDone
	ActionDelete
)

// Action — разобранное действие кнопки. Дальше роутера сырые
// строковые префиксы не уходят.
type Action struct {
	Kind     ActionKind
	Priority model.Priority // для ActionPriority
	Date     time.Time      // для ActionDate
	TaskID   int64          // для ActionDone и ActionDelete
}

// ParseAction разбирает callback data в типизированное действие
func ParseAction(data string) (Action, error) {
	switch {
	case data == keyboard.CalendarIgnore:
		return Action{Kind: ActionIgnore}, nil

	case strings.HasPrefix(data, PriorityPrefix):
		payload := strings.TrimPrefix(data, PriorityPrefix)
		if payload == "" {
			return Action{}, fmt.Errorf("%w: empty priority payload", common.ErrInvalidFormat)
		}
		priority, err := model.ParsePriority(payload)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
		}
		return Action{Kind: ActionPriority, Priority: priority}, nil

	case strings.HasPrefix(data, DatePrefix):
		date, err := keyboard.ParseCalendarDate(strings.TrimPrefix(data, DatePrefix))
		if err != nil {
			return Action{}, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
		}
		return Action{Kind: ActionDate, Date: date}, nil

	case strings.HasPrefix(data, DonePrefix):
		taskID, err := parseTaskID(strings.TrimPrefix(data, DonePrefix))
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionDone, TaskID: taskID}, nil

	case strings.HasPrefix(data, DeletePrefix):
		taskID, err := parseTaskID(strings.TrimPrefix(data, DeletePrefix))
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionDelete, TaskID: taskID}, nil

	default:
		return Action{}, fmt.Errorf("%w: unknown callback %q", common.ErrInvalidFormat, data)
	}
}

func parseTaskID(payload string) (int64, error) {
	taskID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad task id %q", common.ErrInvalidFormat, payload)
	}
	return taskID, nil
}
