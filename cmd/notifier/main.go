package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"video_notifier/internal/config"
	"video_notifier/internal/keypool"
	"video_notifier/internal/ledger"
	"video_notifier/internal/publisher"
	"video_notifier/internal/scheduler"
	"video_notifier/internal/service"
	"video_notifier/internal/source/rssfeed"
	"video_notifier/internal/source/youtube"
	"video_notifier/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	quotaLocation, err := time.LoadLocation(cfg.YouTube.HomeTimezone)
	if err != nil {
		logger.Error("invalid home timezone", "timezone", cfg.YouTube.HomeTimezone, "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize credential pool
	pool, err := keypool.New(keypool.Config{
		Keys:         cfg.YouTube.APIKeys,
		QuotaCeiling: cfg.YouTube.QuotaCeiling,
		Location:     quotaLocation,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize key pool", "error", err)
		os.Exit(1)
	}
	go pool.RunDailyReset(ctx)

	dedupLedger := ledger.New(ledger.Config{
		VideoRetention:  cfg.Ledger.VideoRetention,
		StreamRetention: cfg.Ledger.StreamRetention,
	}, logger)

	// Initialize sources
	youtubeSource := youtube.New(youtube.Config{
		BaseURL:         cfg.YouTube.BaseURL,
		MaxResults:      cfg.YouTube.MaxResults,
		Timeout:         cfg.YouTube.Timeout,
		FreshnessWindow: cfg.Poll.FreshnessWindow,
		DetailPause:     cfg.YouTube.DetailPause,
	}, pool, nil, logger)

	feedSource := rssfeed.New(rssfeed.Config{
		FeedURL: cfg.Feed.URL,
		Timeout: cfg.Feed.Timeout,
	}, logger)

	// Initialize stores
	subscriptionStore := postgres.NewSubscriptionStore(db)
	channelStateStore := postgres.NewChannelStateStore(db)

	poller := service.NewPoller(
		youtubeSource,
		feedSource,
		subscriptionStore,
		channelStateStore,
		dedupLedger,
		rabbitMQ,
		logger,
		cfg.Poll,
	)

	groups, err := subscriptionStore.ListGroups(ctx)
	if err != nil {
		logger.Error("failed to list groups", "error", err)
		os.Exit(1)
	}
	if len(groups) == 0 {
		logger.Warn("no subscriber groups configured, nothing to poll")
	}

	schedGroups := make([]scheduler.Group, 0, len(groups))
	for _, g := range groups {
		schedGroups = append(schedGroups, scheduler.Group{
			ID:       g.ID,
			Interval: cfg.Poll.ClampInterval(g.PollIntervalMinutes),
		})
	}

	sched := scheduler.New(poller, dedupLedger, schedGroups, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting video notifier",
		"groups", len(groups),
		"api_keys", pool.ActiveCount(),
		"quota_ceiling", cfg.YouTube.QuotaCeiling,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
