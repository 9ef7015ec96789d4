package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/palpitebot/palpitebot/internal/analyzer"
	"github.com/palpitebot/palpitebot/internal/bot"
	"github.com/palpitebot/palpitebot/internal/competitions"
	"github.com/palpitebot/palpitebot/internal/fetcher"
	"github.com/palpitebot/palpitebot/internal/forebet"
	"github.com/palpitebot/palpitebot/internal/pkg/config"
	"github.com/palpitebot/palpitebot/internal/pkg/logging"
	"github.com/palpitebot/palpitebot/internal/pkg/storage"
	"github.com/palpitebot/palpitebot/internal/predictions"
	"github.com/palpitebot/palpitebot/internal/scheduler"
)

const defaultConfigPath = "configs/production.yaml"

// bot-server is the long-running mode: it answers Telegram commands and
// posts the daily predictions to the channel on schedule.
func main() {
	var configPath string

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.SetupLogger(&cfg.Logging, "bot-server")

	if cfg.Telegram.Token == "" {
		log.Fatal("Telegram bot token is required (telegram.token or TELEGRAM_BOT_TOKEN)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	index := competitions.NewDefaultIndex()

	var store storage.PredictionStorage
	if cfg.Postgres.DSN != "" {
		pg, err := storage.NewPostgresPredictionStorage(&cfg.Postgres, logger)
		if err != nil {
			log.Fatalf("Failed to initialize postgres storage: %v", err)
		}
		defer pg.Close()
		store = pg
	} else {
		logger.Info("predictions history disabled, no postgres DSN configured")
	}

	service := predictions.New(
		fetcher.New(cfg.FootballAPI, index, logger),
		forebet.New(cfg.Forebet, logger),
		analyzer.New(index, cfg.Analysis, logger),
		store,
		logger,
	)

	notifier, err := bot.NewNotifier(cfg.Telegram, logger)
	if err != nil {
		log.Fatalf("Failed to initialize telegram bot: %v", err)
	}

	dailyJob := func(ctx context.Context, date time.Time) error {
		message, _, err := service.RunDaily(ctx, date)
		if err != nil {
			return err
		}
		return notifier.SendToChannel(message)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		daily := scheduler.New(cfg.Scheduler, dailyJob, logger)
		if err := daily.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler exited", "error", err)
			stop()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		listener := bot.NewListener(notifier, service, cfg.Telegram, logger)
		listener.Run(ctx)
	}()

	logger.Info("bot server started",
		"dailySendTime", cfg.Scheduler.DailySendTime,
		"channelId", cfg.Telegram.ChannelID)

	<-ctx.Done()
	logger.Info("shutting down")
	wg.Wait()
}
