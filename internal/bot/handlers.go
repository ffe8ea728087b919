package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"coursesbot/internal/schedule"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Кнопки главного меню
const (
	buttonSchedule   = "📅 Розклад курсів"
	buttonChooseCity = "📍 Обрати місто"
	buttonHelp       = "ℹ️ Допомога"
)

// cities закрытый список городов; первый элемент выключает фильтр
var cities = []string{schedule.CityAll, "Одеса", "Миколаїв"}

const cityCallbackPrefix = "CITY_"

// lookupRe запрос карточки группы: "id G1" или "/id G1"
var lookupRe = regexp.MustCompile(`(?i)^/?id\s+(\S+)`)

const helpText = `ℹ️ Як користуватись ботом:

📅 Розклад курсів — найближчі курси обраного міста
📍 Обрати місто — фільтр розкладу за містом
🆔 id <номер групи> — картка конкретної групи

Питання — пиши адміністратору 💬`

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	chatID := message.Chat.ID

	switch message.Text {
	case buttonSchedule:
		b.handleSchedule(ctx, chatID)
	case buttonChooseCity:
		b.handleChooseCity(chatID)
	case buttonHelp:
		b.sendText(chatID, helpText)
	default:
		if m := lookupRe.FindStringSubmatch(message.Text); m != nil {
			b.handleLookup(ctx, chatID, m[1])
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.sendText(chatID, helpText)
	case "id":
		id := strings.TrimSpace(message.CommandArguments())
		if id == "" {
			b.sendText(chatID, "Вкажи номер групи: /id <номер>")
			return
		}
		b.handleLookup(ctx, chatID, id)
	}
}

// handleStart приветствует пользователя и показывает главное меню.
// Если город ещё не выбран, сессия получает значение "Усі".
func (b *Bot) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	city, err := b.sessions.City(chatID)
	if err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка чтения сессии")
	}
	if city == "" {
		if err := b.sessions.SetCity(chatID, schedule.CityAll); err != nil {
			b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка записи сессии")
		}
	}

	greeting := fmt.Sprintf("👋 Привіт, %s!\n\nЯ бот розкладу школи 💅\nОбери, що тебе цікавить 👇", message.From.FirstName)

	msg := tgbotapi.NewMessage(chatID, greeting)
	msg.ReplyMarkup = mainKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка отправки приветствия")
	}
}

// handleSchedule показывает будущие курсы выбранного города страницами
func (b *Bot) handleSchedule(ctx context.Context, chatID int64) {
	city, err := b.sessions.City(chatID)
	if err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка чтения сессии")
	}
	if city == "" {
		city = schedule.CityAll
	}

	pages, err := b.schedule.Upcoming(ctx, city)
	switch {
	case errors.Is(err, schedule.ErrNoCourses):
		b.sendText(chatID, "Наразі немає запланованих курсів.")
		return
	case errors.Is(err, schedule.ErrNoneMatched):
		b.sendText(chatID, fmt.Sprintf("Нічого не знайдено для міста “%s”.", city))
		return
	case err != nil:
		b.log.Error().Err(err).Msg("ошибка получения расписания")
		b.sendText(chatID, "⚠️ Помилка під час отримання даних.")
		return
	}

	today := time.Now()
	for i, page := range pages {
		cards := make([]string, 0, len(page))
		for _, row := range page {
			cards = append(cards, schedule.RenderCard(row, today))
		}

		text := strings.Join(cards, "\n\n")
		if i == 0 {
			text = "📆 <b>Найближчі курси:</b>\n\n" + text
		}
		b.sendHTML(chatID, text)
	}
}

// handleChooseCity показывает инлайн-клавиатуру выбора города
func (b *Bot) handleChooseCity(chatID int64) {
	selected, err := b.sessions.City(chatID)
	if err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка чтения сессии")
	}

	msg := tgbotapi.NewMessage(chatID, "Вибери місто:")
	msg.ReplyMarkup = cityKeyboard(selected)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка отправки клавиатуры")
	}
}

// handleCallback обрабатывает нажатие кнопки города
func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if !strings.HasPrefix(callback.Data, cityCallbackPrefix) {
		return
	}

	city := strings.TrimPrefix(callback.Data, cityCallbackPrefix)
	if !validCity(city) {
		return
	}

	chatID := callback.Message.Chat.ID
	if err := b.sessions.SetCity(chatID, city); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("ошибка записи сессии")
	}

	ack := tgbotapi.NewCallback(callback.ID, "Місто: "+city)
	if _, err := b.api.Request(ack); err != nil {
		b.log.Error().Err(err).Msg("ошибка ответа на callback")
	}

	edit := tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, "Обрано місто: "+city)
	if _, err := b.api.Send(edit); err != nil {
		b.log.Error().Err(err).Msg("ошибка редактирования сообщения")
	}
}

// handleLookup отвечает карточкой группы по её id
func (b *Bot) handleLookup(ctx context.Context, chatID int64, id string) {
	row, found, err := b.schedule.FindByID(ctx, id)
	if err != nil {
		b.log.Error().Err(err).Str("group_id", id).Msg("ошибка поиска группы")
		b.sendText(chatID, "⚠️ Помилка під час отримання даних.")
		return
	}
	if !found {
		b.sendText(chatID, "Групу не знайдено.")
		return
	}

	b.sendHTML(chatID, schedule.RenderCard(row, time.Now()))
}

// mainKeyboard собирает постоянную клавиатуру главного меню
func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonSchedule),
			tgbotapi.NewKeyboardButton(buttonChooseCity),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonHelp),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// cityKeyboard собирает инлайн-клавиатуру городов,
// выбранный город помечается галочкой
func cityKeyboard(selected string) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(cities))
	for _, city := range cities {
		label := city
		if city == selected {
			label = "✅ " + city
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(label, cityCallbackPrefix+city))
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons)
}

func validCity(city string) bool {
	for _, c := range cities {
		if c == city {
			return true
		}
	}
	return false
}
