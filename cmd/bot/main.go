package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviebot/internal/config"
	"moviebot/internal/handler"
	"moviebot/internal/health"
	"moviebot/internal/middleware"
	"moviebot/internal/repository"
	"moviebot/internal/repository/memory"
	redisrepo "moviebot/internal/repository/redis"
	"moviebot/internal/service"
	"moviebot/internal/streaming"
	"moviebot/internal/tmdb"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting movie bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Bool("group_mode", cfg.GroupMode),
		zap.String("storage", cfg.Storage),
		zap.Bool("streaming", cfg.Streaming.Enabled),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories
	watchedRepo, pendingRepo, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer closeStore()

	// Initialize collaborators
	tmdbClient := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, cfg.HTTPTimeout, logger)

	var searcher service.StreamingSearcher
	if cfg.Streaming.Enabled {
		searcher = streaming.NewScraper(cfg.Streaming.SearchURL, cfg.Streaming.Selector, cfg.HTTPTimeout, logger)
	}

	// Initialize services
	searchService := service.NewSearchService(tmdbClient, cfg.TMDB.Language)
	cardService := service.NewCardService(searcher, service.StreamingConfig{
		Name:      cfg.Streaming.Name,
		SearchURL: cfg.Streaming.SearchURL,
	}, logger)
	watchedService := service.NewWatchedService(watchedRepo)
	pendingService := service.NewPendingService(pendingRepo, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Failed to handle update", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	bot.Use(middleware.Logger(logger))

	// Initialize handler
	h := handler.NewHandler(
		bot,
		searchService,
		cardService,
		watchedService,
		pendingService,
		handler.Options{GroupMode: cfg.GroupMode},
		logger,
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	var healthServer *http.Server
	if cfg.HealthAddr != "" {
		healthServer = &http.Server{Addr: cfg.HealthAddr, Handler: health.NewRouter()}
		go func() {
			logger.Info("Health endpoint listening", zap.String("addr", cfg.HealthAddr))
			if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Health server stopped", zap.Error(err))
			}
		}()
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	if healthServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
		defer shutdownCancel()
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to stop health server", zap.Error(err))
		}
	}
	cancel()

	logger.Info("Bot stopped gracefully")
}

// openStores creates the watched and pending stores for the configured backend
func openStores(ctx context.Context, cfg *config.Config) (repository.WatchedRepository, repository.PendingRepository, func(), error) {
	if cfg.Storage != config.StorageRedis {
		return memory.NewWatchedRepo(), memory.NewPendingRepo(), func() {}, nil
	}

	client, err := redisrepo.Connect(ctx, redisrepo.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	closeFn := func() { client.Close() }
	return redisrepo.NewWatchedRepo(client, cfg.Redis.TTL), redisrepo.NewPendingRepo(client, cfg.Redis.TTL), closeFn, nil
}
