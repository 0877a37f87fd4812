package service

import "time"

// Окна вычисляются по локальным часам сервера, не по часовому поясу
// пользователя — так вела себя и исходная версия бота.

// dayWindow возвращает полуинтервал [00:00 дня now+offsetDays, 00:00 следующего дня)
func dayWindow(now time.Time, offsetDays int) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := day.AddDate(0, 0, offsetDays)
	return from, from.AddDate(0, 0, 1)
}

// monthWindow возвращает отрезок [1-е число 00:00:00, последнее число 23:59:59]
// текущего месяца, обе границы включительно
func monthWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, now.Location())
	return from, to
}
