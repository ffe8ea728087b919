package schedule

// DefaultPageSize сколько карточек помещается в одно сообщение
const DefaultPageSize = 6

// Paginate режет последовательность строк на страницы по size элементов.
// Последняя страница может быть короче, пустых страниц не бывает.
func Paginate(rows []Row, size int) [][]Row {
	if size < 1 {
		size = 1
	}

	var pages [][]Row
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		pages = append(pages, rows[start:end])
	}
	return pages
}
