package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeProvider подменяет Google Sheets в тестах
type fakeProvider struct {
	rows [][]string
	err  error

	gotRange string
}

func (f *fakeProvider) FetchRange(_ context.Context, rangeSpec string) ([][]string, error) {
	f.gotRange = rangeSpec
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func newTestService(p *fakeProvider, today time.Time) *Service {
	svc := NewService(p, "ГРУППЫ!A2:H", zerolog.Nop())
	svc.now = func() time.Time { return today }
	return svc
}

func TestServiceUpcoming(t *testing.T) {
	today := date(2025, time.November, 1)

	t.Run("страницы по шесть карточек", func(t *testing.T) {
		var rows [][]string
		for i := 0; i < 8; i++ {
			rows = append(rows, []string{string(rune('A' + i)), "Одеса", "Курс", "01.12.2025", "10.12.2025", "х", "1"})
		}
		provider := &fakeProvider{rows: rows}

		pages, err := newTestService(provider, today).Upcoming(context.Background(), CityAll)
		if err != nil {
			t.Fatalf("Upcoming: %v", err)
		}
		if len(pages) != 2 || len(pages[0]) != 6 || len(pages[1]) != 2 {
			t.Errorf("страницы %v, want [6 2]", pageSizes(pages))
		}
		if provider.gotRange != "ГРУППЫ!A2:H" {
			t.Errorf("запрошен диапазон %q", provider.gotRange)
		}
	})

	t.Run("пустая таблица", func(t *testing.T) {
		provider := &fakeProvider{}
		_, err := newTestService(provider, today).Upcoming(context.Background(), CityAll)
		if !errors.Is(err, ErrNoCourses) {
			t.Errorf("err = %v, want ErrNoCourses", err)
		}
	})

	t.Run("пусто после фильтра", func(t *testing.T) {
		provider := &fakeProvider{rows: [][]string{
			{"G1", "Одеса", "Курс", "01.12.2025", "10.12.2025", "х", "1"},
		}}
		_, err := newTestService(provider, today).Upcoming(context.Background(), "Миколаїв")
		if !errors.Is(err, ErrNoneMatched) {
			t.Errorf("err = %v, want ErrNoneMatched", err)
		}
	})

	t.Run("ошибка провайдера", func(t *testing.T) {
		provErr := errors.New("quota exceeded")
		provider := &fakeProvider{err: provErr}
		_, err := newTestService(provider, today).Upcoming(context.Background(), CityAll)
		if !errors.Is(err, provErr) {
			t.Errorf("ошибка провайдера не пробрасывается: %v", err)
		}
	})
}

func TestServiceFindByID(t *testing.T) {
	today := date(2025, time.November, 1)
	provider := &fakeProvider{rows: [][]string{
		{"G1", "Одеса", "Манікюр", "01.12.2025", "10.12.2025", "Яна", "100"},
		{" G2 ", "Київ", "Брови"},
	}}
	svc := newTestService(provider, today)

	t.Run("найдена", func(t *testing.T) {
		row, found, err := svc.FindByID(context.Background(), "G1")
		if err != nil || !found {
			t.Fatalf("FindByID(G1) = %v, %v", found, err)
		}
		if row.City != "Одеса" || row.Course != "Манікюр" {
			t.Errorf("FindByID(G1) вернул не ту строку: %+v", row)
		}
	})

	t.Run("id сравнивается после обрезки пробелов", func(t *testing.T) {
		// Короткая строка тоже находится: валидаторы при поиске не применяются
		row, found, err := svc.FindByID(context.Background(), "G2")
		if err != nil || !found {
			t.Fatalf("FindByID(G2) = %v, %v", found, err)
		}
		if row.Displayable() != true {
			t.Errorf("строка из трёх колонок должна отрисовываться карточкой")
		}
	})

	t.Run("не найдена", func(t *testing.T) {
		_, found, err := svc.FindByID(context.Background(), "G9")
		if err != nil {
			t.Fatalf("FindByID(G9): %v", err)
		}
		if found {
			t.Error("FindByID(G9) нашёл несуществующую группу")
		}
	})
}

func TestServiceStartingSoon(t *testing.T) {
	today := date(2025, time.November, 30)
	provider := &fakeProvider{rows: [][]string{
		{"G1", "Одеса", "Манікюр", "01.12.2025", "10.12.2025", "Яна", "100"},
		{"G2", "Одеса", "Брови", "05.12.2025", "15.12.2025", "Іван", "50"},
	}}

	got, err := newTestService(provider, today).StartingSoon(context.Background(), today)
	if err != nil {
		t.Fatalf("StartingSoon: %v", err)
	}
	if len(got) != 1 || got[0].Row.GroupID != "G1" || got[0].Offset != 1 {
		t.Errorf("StartingSoon = %+v, want G1 со смещением 1", got)
	}
}

func pageSizes(pages [][]Row) []int {
	sizes := make([]int, 0, len(pages))
	for _, p := range pages {
		sizes = append(sizes, len(p))
	}
	return sizes
}
