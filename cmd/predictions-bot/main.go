package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
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
)

const defaultConfigPath = "configs/production.yaml"

// predictions-bot runs one analysis cycle and exits: fetch the day's
// fixtures, analyze them and post (or print) the result.
func main() {
	var configPath string
	var dateArg string
	var dryRun bool
	var outputPath string

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&dateArg, "date", "", "Date to analyze as YYYY-MM-DD (default: today)")
	flag.BoolVar(&dryRun, "dry-run", false, "Print the message instead of posting to Telegram")
	flag.StringVar(&outputPath, "output", "", "Write the analysis result as JSON to a file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.SetupLogger(&cfg.Logging, "predictions-bot")

	date := time.Now().UTC()
	if dateArg != "" {
		date, err = time.Parse("2006-01-02", dateArg)
		if err != nil {
			log.Fatalf("Invalid -date %q, expected YYYY-MM-DD: %v", dateArg, err)
		}
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

	message, result, err := service.RunDaily(ctx, date)
	if err != nil {
		log.Fatalf("Daily analysis failed: %v", err)
	}

	if outputPath != "" {
		summary, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		if err := os.WriteFile(outputPath, summary, 0o644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
		logger.Info("result written", "path", outputPath)
	}

	if dryRun {
		fmt.Println(message)
		logger.Info("dry run finished", "analyzed", result.TotalAnalyzed)
		return
	}

	notifier, err := bot.NewNotifier(cfg.Telegram, logger)
	if err != nil {
		log.Fatalf("Failed to initialize telegram bot: %v", err)
	}
	if err := notifier.SendToChannel(message); err != nil {
		log.Fatalf("Failed to post predictions: %v", err)
	}

	logger.Info("predictions posted",
		"date", date.Format("2006-01-02"),
		"analyzed", result.TotalAnalyzed,
		"highConfidence", result.HighConfidenceCount)
}
