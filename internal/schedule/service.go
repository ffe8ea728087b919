package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNoCourses в таблице нет ни одной строки
	ErrNoCourses = errors.New("расписание пусто")
	// ErrNoneMatched после фильтра по дате и городу ничего не осталось
	ErrNoneMatched = errors.New("ничего не подошло под фильтр")
)

// Provider источник сырых строк расписания
type Provider interface {
	FetchRange(ctx context.Context, rangeSpec string) ([][]string, error)
}

// Service отвечает на запросы расписания поверх Provider.
// Состояния между вызовами нет: строки запрашиваются заново на каждый
// запрос и отбрасываются после отрисовки.
type Service struct {
	provider  Provider
	rangeSpec string
	pageSize  int
	now       func() time.Time
	log       zerolog.Logger
}

// NewService создаёт сервис расписания
func NewService(provider Provider, rangeSpec string, log zerolog.Logger) *Service {
	return &Service{
		provider:  provider,
		rangeSpec: rangeSpec,
		pageSize:  DefaultPageSize,
		now:       time.Now,
		log:       log,
	}
}

// Upcoming возвращает будущие курсы выбранного города страницами.
// Пустая таблица и пустой результат фильтра различаются ошибками
// ErrNoCourses и ErrNoneMatched.
func (s *Service) Upcoming(ctx context.Context, city string) ([][]Row, error) {
	rows, err := s.provider.FetchRange(ctx, s.rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("запрос расписания: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoCourses
	}

	selected := SelectUpcoming(rows, s.now(), city)
	if len(selected) == 0 {
		return nil, ErrNoneMatched
	}

	s.log.Debug().Int("rows", len(rows)).Int("selected", len(selected)).
		Str("city", city).Msg("расписание отобрано")

	return Paginate(selected, s.pageSize), nil
}

// FindByID ищет строку по id группы среди всех строк таблицы.
// Проверки полноты не применяются: короткая строка тоже находится,
// карточка для неё отрисуется предупреждением.
func (s *Service) FindByID(ctx context.Context, id string) (Row, bool, error) {
	rows, err := s.provider.FetchRange(ctx, s.rangeSpec)
	if err != nil {
		return Row{}, false, fmt.Errorf("запрос расписания: %w", err)
	}

	for _, cells := range rows {
		row := DecodeRow(cells)
		if row.MatchesID(id) {
			return row, true, nil
		}
	}
	return Row{}, false, nil
}

// StartingSoon отбирает курсы, начинающиеся завтра или послезавтра
// относительно today
func (s *Service) StartingSoon(ctx context.Context, today time.Time) ([]Reminder, error) {
	rows, err := s.provider.FetchRange(ctx, s.rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("запрос расписания: %w", err)
	}
	return SelectStartingIn(rows, today, ReminderOffsets), nil
}
