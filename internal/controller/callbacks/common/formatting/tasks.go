package formatting

import "todo-manager-bot/internal/model"

// PluralizeTasks возвращает правильное склонение слова "задача"
func PluralizeTasks(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "задача"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "задачи"
	}
	return "задач"
}

// PriorityName возвращает название приоритета на русском
func PriorityName(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "высокий"
	case model.PriorityMedium:
		return "средний"
	case model.PriorityLow:
		return "низкий"
	default:
		return string(p)
	}
}

// PriorityEmoji возвращает цветовую метку приоритета
func PriorityEmoji(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	case model.PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// CompletionGlyph возвращает метку статуса выполнения задачи
func CompletionGlyph(completed bool) string {
	if completed {
		return "✅"
	}
	return "⭕"
}
