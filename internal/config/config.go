package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	BotToken string

	// Google Sheets
	GoogleSheetID         string
	GoogleCredentialsFile string
	GoogleCredentialsJSON string
	SheetRange            string

	// Чат для служебных сообщений и напоминаний
	DefaultChatID int64

	// Расписание рассылки напоминаний (формат robfig/cron, с секундами)
	ReminderCron string

	SessionsPath string
	Port         string

	LogLevel  string
	LogFormat string
}

// Load загружает конфигурацию из переменных окружения или .env файла.
// Отсутствие обязательной переменной — фатальная ошибка запуска.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env необязателен

	cfg := &Config{
		BotToken:              os.Getenv("BOT_TOKEN"),
		GoogleSheetID:         os.Getenv("GOOGLE_SHEET_ID"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		GoogleCredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		SheetRange:            getEnv("SHEET_RANGE", "ГРУППЫ!A2:H"),
		ReminderCron:          getEnv("REMINDER_CRON", "0 0 9 * * *"),
		SessionsPath:          getEnv("SESSIONS_PATH", "sessions.db"),
		Port:                  getEnv("PORT", "3000"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "pretty"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN не задан")
	}

	if cfg.GoogleSheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID не задан")
	}

	if cfg.GoogleCredentialsFile == "" && cfg.GoogleCredentialsJSON == "" {
		return nil, fmt.Errorf("нужен GOOGLE_CREDENTIALS_FILE или GOOGLE_CREDENTIALS_JSON")
	}

	chatIDStr := os.Getenv("DEFAULT_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("DEFAULT_CHAT_ID не задан")
	}

	var err error
	cfg.DefaultChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("некорректный DEFAULT_CHAT_ID: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
