package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Logging comes first so a missing credential is reported in the log file too.
	if err := logger.Init(config.LoggingDefaults()); err != nil {
		logrus.WithError(err).Error("FATAL: Could not initialize logger")
		return 1
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Component("main").WithError(err).Error("FATAL: Could not load application configuration")
		return 1
	}

	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"schedule":    cfg.PollSchedule,
		"chat_id":     cfg.TelegramChatID,
	}).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.HTTPTimeout)
	if err != nil {
		mainLogger.WithError(err).Error("FATAL: Could not create Telegram bot")
		return 1
	}
	notifier := telegram.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Component("notifier"))

	cadence, err := scheduler.NewCadence(cfg.PollSchedule, logger.Component("scheduler"))
	if err != nil {
		mainLogger.WithError(err).Error("FATAL: Could not parse poll schedule")
		return 1
	}

	var journal homework.Journal
	if cfg.DatabaseURL != "" {
		db, repo, err := openJournal(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Error("FATAL: Could not open delivery journal")
			return 1
		}
		defer db.Close()
		journal = repo
		mainLogger.Info("Delivery journal enabled")
	}

	client := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout, logger.Component("practicum"))
	fromDate := time.Now().Add(-cfg.Lookback)

	service := app.NewStatusService(client, notifier, cadence, journal, logger.Component("poller"), fromDate)
	if err := service.Run(ctx); err != nil {
		return 1
	}

	mainLogger.Info("Application shut down gracefully.")
	return 0
}

func openJournal(ctx context.Context, dsn string) (*sql.DB, *idb.PostgresJournalRepository, error) {
	db, err := idb.NewPostgresConnection(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	repo := idb.NewPostgresJournalRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, repo, nil
}
