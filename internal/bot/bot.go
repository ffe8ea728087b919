package bot

import (
	"context"

	"coursesbot/internal/config"
	"coursesbot/internal/schedule"
	"coursesbot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Bot представляет Telegram бота расписания курсов
type Bot struct {
	api      *tgbotapi.BotAPI
	schedule *schedule.Service
	sessions *session.Store
	cfg      *config.Config
	log      zerolog.Logger
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, scheduleSvc *schedule.Service, sessions *session.Store, cfg *config.Config, log zerolog.Logger) *Bot {
	return &Bot{
		api:      api,
		schedule: scheduleSvc,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

// Start запускает long polling и блокируется до отмены контекста
func (b *Bot) Start(ctx context.Context) error {
	// Снимаем вебхук, иначе getUpdates отвечает 409 Conflict
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		b.log.Warn().Err(err).Msg("не удалось снять вебхук")
	}

	b.notifyStartup()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.log.Info().Str("account", b.api.Self.UserName).Msg("бот запущен в режиме polling")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// notifyStartup сообщает в служебный чат, что бот поднялся
func (b *Bot) notifyStartup() {
	msg := tgbotapi.NewMessage(b.cfg.DefaultChatID, "✅ Бот запущено та готовий до роботи!")
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn().Err(err).Msg("не удалось отправить стартовое сообщение")
	}
}

// sendHTML отправляет сообщение с HTML-разметкой
func (b *Bot) sendHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка отправки сообщения")
	}
}

// sendText отправляет обычное текстовое сообщение
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка отправки сообщения")
	}
}
