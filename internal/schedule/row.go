package schedule

import "strings"

// Row одна запись расписания из таблицы.
// Колонки фиксированы: id группы, город, курс, дата начала, дата
// окончания, преподаватель, цена. Всё после седьмой колонки игнорируется.
type Row struct {
	GroupID    string
	City       string
	Course     string
	StartRaw   string
	EndRaw     string
	Instructor string
	Price      string

	cells int
}

// DecodeRow собирает Row из сырых ячеек строки таблицы.
// Отсутствующие хвостовые ячейки остаются пустыми строками и при
// отрисовке заменяются на "-".
func DecodeRow(cells []string) Row {
	at := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	return Row{
		GroupID:    at(0),
		City:       at(1),
		Course:     at(2),
		StartRaw:   at(3),
		EndRaw:     at(4),
		Instructor: at(5),
		Price:      at(6),
		cells:      len(cells),
	}
}

// ScheduleEligible строка достаточно полна для показа в расписании
func (r Row) ScheduleEligible() bool {
	return r.cells >= 7 && r.StartRaw != ""
}

// ReminderEligible более мягкая проверка для рассылки напоминаний
func (r Row) ReminderEligible() bool {
	return r.cells >= 5 && r.StartRaw != ""
}

// Displayable строку можно отрисовать карточкой
func (r Row) Displayable() bool {
	return r.cells >= 3
}

// MatchesID сравнивает id группы с запрошенным, игнорируя пробелы по краям
func (r Row) MatchesID(id string) bool {
	return strings.TrimSpace(r.GroupID) == strings.TrimSpace(id)
}
