package schedule

import "time"

// ReminderOffsets за сколько дней до начала курса шлётся напоминание
var ReminderOffsets = map[int]bool{1: true, 2: true}

// Reminder курс, попавший под рассылку, вместе со смещением в днях
type Reminder struct {
	Row    Row
	Start  time.Time
	Offset int
}

// SelectStartingIn отбирает курсы, начинающиеся ровно через одно из
// смещений offsets календарных дней от today. Порядок строк входа
// сохраняется, сортировка не применяется.
func SelectStartingIn(rows [][]string, today time.Time, offsets map[int]bool) []Reminder {
	var result []Reminder
	for _, cells := range rows {
		row := DecodeRow(cells)
		if !row.ReminderEligible() {
			continue
		}

		start, ok := ParseDate(row.StartRaw, today)
		if !ok {
			continue
		}

		offset := dayOffset(today, start)
		if !offsets[offset] {
			continue
		}

		result = append(result, Reminder{Row: row, Start: start, Offset: offset})
	}
	return result
}
