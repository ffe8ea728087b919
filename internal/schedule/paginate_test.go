package schedule

import (
	"fmt"
	"testing"
)

func makeRows(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, DecodeRow([]string{fmt.Sprintf("G%d", i), "Одеса", "Курс", "01.12.2025", "10.12.2025", "х", "1"}))
	}
	return rows
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantPages []int // размеры страниц
	}{
		{"пусто", 0, 6, nil},
		{"меньше страницы", 4, 6, []int{4}},
		{"ровно страница", 6, 6, []int{6}},
		{"последняя короче", 14, 6, []int{6, 6, 2}},
		{"страница из одного", 3, 1, []int{1, 1, 1}},
		{"некорректный размер", 3, 0, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := makeRows(tt.total)
			pages := Paginate(rows, tt.size)

			if len(pages) != len(tt.wantPages) {
				t.Fatalf("Paginate(%d, %d): %d страниц, want %d", tt.total, tt.size, len(pages), len(tt.wantPages))
			}

			// Склейка страниц даёт исходную последовательность
			idx := 0
			for p, page := range pages {
				if len(page) != tt.wantPages[p] {
					t.Errorf("страница %d размера %d, want %d", p, len(page), tt.wantPages[p])
				}
				if len(page) == 0 {
					t.Errorf("пустая страница %d", p)
				}
				for _, row := range page {
					if row.GroupID != rows[idx].GroupID {
						t.Fatalf("страница %d нарушает порядок: %s на позиции %d", p, row.GroupID, idx)
					}
					idx++
				}
			}
			if idx != tt.total {
				t.Errorf("склейка страниц дала %d строк, want %d", idx, tt.total)
			}
		})
	}
}
