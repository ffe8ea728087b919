package schedule

import (
	"testing"
	"time"
)

func TestSelectStartingIn(t *testing.T) {
	today := date(2025, time.November, 30)

	rows := [][]string{
		{"G0", "Одеса", "Сьогодні", "30.11.2025", "05.12.2025"},
		{"G1", "Одеса", "Завтра", "01.12.2025", "10.12.2025"},
		{"G2", "Миколаїв", "Післязавтра", "02.12.2025", "12.12.2025"},
		{"G3", "Одеса", "Через три дні", "03.12.2025", "13.12.2025"},
		{"G4", "Одеса", "Нечитаема", "скоро", "13.12.2025"},
		{"G5", "Одеса", "Коротка", "01.12.2025"},
	}

	got := SelectStartingIn(rows, today, ReminderOffsets)

	if len(got) != 2 {
		t.Fatalf("SelectStartingIn вернул %d строк, want 2", len(got))
	}

	if got[0].Row.GroupID != "G1" || got[0].Offset != 1 {
		t.Errorf("первое напоминание %s/%d, want G1/1", got[0].Row.GroupID, got[0].Offset)
	}
	if got[1].Row.GroupID != "G2" || got[1].Offset != 2 {
		t.Errorf("второе напоминание %s/%d, want G2/2", got[1].Row.GroupID, got[1].Offset)
	}
}

func TestSelectStartingInLooseValidation(t *testing.T) {
	today := date(2025, time.November, 30)

	// Пять колонок достаточно для напоминания, хоть и мало для расписания
	rows := [][]string{
		{"G1", "Одеса", "Курс", "01.12.2025", "10.12.2025"},
	}

	row := DecodeRow(rows[0])
	if row.ScheduleEligible() {
		t.Fatal("пять колонок не должны проходить проверку расписания")
	}

	if got := SelectStartingIn(rows, today, ReminderOffsets); len(got) != 1 {
		t.Errorf("строка из пяти колонок не попала в напоминания")
	}
}

func TestSelectStartingInKeepsInputOrder(t *testing.T) {
	today := date(2025, time.November, 30)

	rows := [][]string{
		{"B", "Одеса", "Курс", "02.12.2025", "10.12.2025"},
		{"A", "Одеса", "Курс", "01.12.2025", "10.12.2025"},
	}

	got := SelectStartingIn(rows, today, ReminderOffsets)
	if len(got) != 2 || got[0].Row.GroupID != "B" || got[1].Row.GroupID != "A" {
		t.Errorf("порядок входа не сохранён: %+v", got)
	}
}
