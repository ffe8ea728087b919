package bot

import (
	"context"
	"time"

	"coursesbot/internal/schedule"

	"github.com/google/uuid"
)

// Подписи напоминаний по смещению в днях
var reminderLabels = map[int]string{
	1: "🔔 Нагадування: курс починається завтра!",
	2: "🔔 Нагадування: курс починається через два дні!",
}

// RunReminder рассылает напоминания о курсах, начинающихся завтра и
// послезавтра. Вызывается планировщиком раз в день; состояния между
// запусками нет, повторный запуск в тот же день продублирует рассылку.
func (b *Bot) RunReminder() {
	runID := uuid.NewString()
	log := b.log.With().Str("run_id", runID).Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	today := time.Now()

	reminders, err := b.schedule.StartingSoon(ctx, today)
	if err != nil {
		// Рассылка за день пропускается, повторов нет
		log.Error().Err(err).Msg("напоминания не отправлены")
		return
	}

	for _, rem := range reminders {
		text := reminderLabels[rem.Offset] + "\n\n" + schedule.RenderCard(rem.Row, today)
		b.sendHTML(b.cfg.DefaultChatID, text)
	}

	log.Info().Int("sent", len(reminders)).Msg("рассылка напоминаний завершена")
}
