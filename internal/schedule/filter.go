package schedule

import (
	"sort"
	"strings"
	"time"
)

// CityAll сентинел "все города" — фильтр по городу выключен
const CityAll = "Усі"

// SelectUpcoming отбирает будущие курсы из сырых строк таблицы.
// Строки без обязательных колонок, с нечитаемой датой начала или с датой
// раньше сегодняшнего дня отбрасываются. Непустой фильтр города (кроме
// CityAll) оставляет только точные совпадения после обрезки пробелов —
// сравнение чувствительно к регистру. Результат отсортирован по дате
// начала по возрастанию, порядок строк с одинаковой датой сохраняется.
func SelectUpcoming(rows [][]string, today time.Time, city string) []Row {
	midnight := Midnight(today)

	type dated struct {
		row   Row
		start time.Time
	}

	var selected []dated
	for _, cells := range rows {
		row := DecodeRow(cells)
		if !row.ScheduleEligible() {
			continue
		}

		start, ok := ParseDate(row.StartRaw, today)
		if !ok || start.Before(midnight) {
			continue
		}

		if city != "" && city != CityAll && strings.TrimSpace(row.City) != city {
			continue
		}

		selected = append(selected, dated{row: row, start: start})
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].start.Before(selected[j].start)
	})

	result := make([]Row, 0, len(selected))
	for _, d := range selected {
		result = append(result, d.row)
	}
	return result
}
