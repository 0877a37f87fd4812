package keyboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot/models"

	"todo-manager-bot/internal/controller/callbacks/common/formatting"
)

// Ячейки-заглушки и заголовки несут payload CalendarIgnore и не инициируют
// никаких действий, кнопки дней несут "date_ГГГГ-ММ-ДД".
const (
	CalendarIgnore     = "ignore"
	CalendarDatePrefix = "date_"
	calendarDateLayout = "2006-01-02"
)

// Calendar строит сетку месяца для выбора даты: ровно 8 рядов по 7 ячеек.
// Ряд 0 — заголовок с месяцем и годом, ряд 1 — дни недели начиная с
// воскресенья, ряды 2-7 — 42 ячейки с числами месяца. Сетка зависит только
// от года и месяца опорной даты.
func Calendar(ref time.Time) [][]models.InlineKeyboardButton {
	year, month := ref.Year(), ref.Month()

	// День недели первого числа задаёт сдвиг первого ряда (0 = воскресенье)
	firstDay := int(time.Date(year, month, 1, 0, 0, 0, 0, ref.Location()).Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, ref.Location()).Day()

	grid := make([][]models.InlineKeyboardButton, 0, 8)

	header := make([]models.InlineKeyboardButton, 7)
	for col := range header {
		header[col] = blankCell()
	}
	header[3] = Button(fmt.Sprintf("%s %d", formatting.GetMonthName(month), year), CalendarIgnore)
	grid = append(grid, header)

	weekdays := make([]models.InlineKeyboardButton, 7)
	for col := 0; col < 7; col++ {
		weekdays[col] = Button(formatting.GetWeekdayShort(col), CalendarIgnore)
	}
	grid = append(grid, weekdays)

	day := 1
	for row := 0; row < 6; row++ {
		cells := make([]models.InlineKeyboardButton, 7)
		for col := 0; col < 7; col++ {
			cellIndex := row*7 + col
			if cellIndex < firstDay || day > daysInMonth {
				cells[col] = blankCell()
				continue
			}

			date := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
			cells[col] = Button(strconv.Itoa(day), CalendarDatePrefix+date.Format(calendarDateLayout))
			day++
		}
		grid = append(grid, cells)
	}

	return grid
}

// ParseCalendarDate разбирает дату из payload кнопки дня (без префикса)
func ParseCalendarDate(payload string) (time.Time, error) {
	return time.ParseInLocation(calendarDateLayout, payload, time.Local)
}

func blankCell() models.InlineKeyboardButton {
	return Button(" ", CalendarIgnore)
}
