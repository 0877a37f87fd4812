package keyboard

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 30, 0, 0, time.Local)
}

func TestCalendar_GridShape(t *testing.T) {
	tests := []struct {
		name        string
		ref         time.Time
		daysInMonth int
		firstDayCol int // день недели 1-го числа, 0 = воскресенье
	}{
		{"january 31 days", date(2024, time.January, 15), 31, 1},
		{"february leap year", date(2024, time.February, 1), 29, 4},
		{"february non-leap", date(2023, time.February, 28), 28, 3},
		{"april 30 days", date(2024, time.April, 10), 30, 1},
		{"month starts on sunday", date(2024, time.September, 5), 30, 0},
		{"month starts on saturday", date(2024, time.June, 20), 30, 6},
		{"december year boundary", date(2024, time.December, 31), 31, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Calendar(tt.ref)

			require.Len(t, grid, 8, "grid must have exactly 8 rows")
			for i, row := range grid {
				require.Lenf(t, row, 7, "row %d must have exactly 7 columns", i)
			}

			// Ряды заголовка и дней недели неинтерактивны
			for _, row := range grid[:2] {
				for _, cell := range row {
					assert.Equal(t, CalendarIgnore, cell.CallbackData)
				}
			}

			// Количество активных ячеек равно числу дней месяца
			var dayCells int
			firstDayCol := -1
			for rowIdx, row := range grid[2:] {
				for colIdx, cell := range row {
					if cell.CallbackData == CalendarIgnore {
						assert.Equal(t, " ", cell.Text)
						continue
					}
					if firstDayCol == -1 {
						assert.Equal(t, 0, rowIdx, "first day must be in the first content row")
						firstDayCol = colIdx
					}
					dayCells++
					assert.Equal(t, strconv.Itoa(dayCells), cell.Text, "day numbers must be sequential")
				}
			}

			assert.Equal(t, tt.daysInMonth, dayCells)
			assert.Equal(t, tt.firstDayCol, firstDayCol)
		})
	}
}

func TestCalendar_DayPayloads(t *testing.T) {
	ref := date(2024, time.February, 10)
	grid := Calendar(ref)

	day := 0
	for _, row := range grid[2:] {
		for _, cell := range row {
			if cell.CallbackData == CalendarIgnore {
				continue
			}
			day++
			want := fmt.Sprintf("date_2024-02-%02d", day)
			assert.Equal(t, want, cell.CallbackData)

			parsed, err := ParseCalendarDate(fmt.Sprintf("2024-02-%02d", day))
			require.NoError(t, err)
			assert.Equal(t, time.Date(2024, time.February, day, 0, 0, 0, 0, time.Local), parsed)
		}
	}
	assert.Equal(t, 29, day)
}

func TestCalendar_DependsOnlyOnYearAndMonth(t *testing.T) {
	a := Calendar(date(2025, time.July, 1))
	b := Calendar(date(2025, time.July, 31))
	assert.Equal(t, a, b)
}

func TestCalendar_Header(t *testing.T) {
	grid := Calendar(date(2025, time.March, 9))
	assert.Equal(t, "Март 2025", grid[0][3].Text)

	weekdays := []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}
	for col, want := range weekdays {
		assert.Equal(t, want, grid[1][col].Text)
	}
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	_, err := ParseCalendarDate("not-a-date")
	assert.Error(t, err)
}
