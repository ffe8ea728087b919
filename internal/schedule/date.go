package schedule

import (
	"strconv"
	"strings"
	"time"
)

// dateLayout формат дат в таблице и в карточках
const dateLayout = "02.01.2006"

// Midnight обрезает время до начала календарного дня.
// Все сравнения дат в пакете идут по календарным дням в UTC,
// чтобы разница двух дней всегда была кратна 24 часам.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату вида "дд.мм" или "дд.мм.гггг".
// Если год не указан, берётся год из today; когда такая дата уже
// прошла, год сдвигается на единицу вперёд — запись "дд.мм" всегда
// означает ближайшее будущее вхождение.
// Календарная валидность не проверяется: "31.02" переполняется в
// начало марта, как и в исходных данных.
func ParseDate(raw string, today time.Time) (time.Time, bool) {
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}

	year := today.Year()
	hasYear := len(parts) >= 3 && strings.TrimSpace(parts[2]) != ""
	if hasYear {
		year, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return time.Time{}, false
		}
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if !hasYear && d.Before(Midnight(today)) {
		d = d.AddDate(1, 0, 0)
	}

	return d, true
}

// FormatDate возвращает дату в виде "дд.мм.гггг" или "-" для отсутствующей
func FormatDate(d time.Time, ok bool) string {
	if !ok {
		return "-"
	}
	return d.Format(dateLayout)
}

// dayOffset считает разницу в календарных днях между today и датой начала
func dayOffset(today, start time.Time) int {
	return int(Midnight(start).Sub(Midnight(today)) / (24 * time.Hour))
}
