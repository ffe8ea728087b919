package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursesbot/internal/bot"
	"coursesbot/internal/config"
	"coursesbot/internal/gsheets"
	"coursesbot/internal/logger"
	"coursesbot/internal/schedule"
	"coursesbot/internal/session"
	"coursesbot/internal/web"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Логгер ещё не настроен, конфиг нужен раньше него
		fallbackLog := logger.Setup("info", "pretty")
		fallbackLog.Fatal().Err(err).Msg("ошибка конфигурации")
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, err := session.NewStore(cfg.SessionsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("ошибка открытия хранилища сессий")
	}
	defer sessions.Close()

	sheetsClient, err := gsheets.NewClient(ctx, cfg.GoogleCredentialsFile, cfg.GoogleCredentialsJSON, cfg.GoogleSheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("ошибка инициализации Google Sheets")
	}

	scheduleSvc := schedule.NewService(sheetsClient, cfg.SheetRange, log)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("ошибка создания бота")
	}

	courseBot := bot.New(api, scheduleSvc, sessions, cfg, log)

	// Ежедневная рассылка напоминаний
	scheduler := cron.New()
	if err := scheduler.AddFunc(cfg.ReminderCron, courseBot.RunReminder); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.ReminderCron).Msg("некорректное расписание напоминаний")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Liveness-эндпоинт для хостинга
	webSrv := web.NewServer(cfg.Port, log)
	go func() {
		if err := webSrv.Start(); err != nil {
			log.Error().Err(err).Msg("liveness-сервер остановлен с ошибкой")
		}
	}()

	go func() {
		if err := courseBot.Start(ctx); err != nil {
			log.Error().Err(err).Msg("бот остановлен с ошибкой")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("останавливаем бота")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := webSrv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("ошибка остановки liveness-сервера")
	}
}
