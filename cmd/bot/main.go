package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/workout-coach-bot/internal/catalog"
	"github.com/aliskhannn/workout-coach-bot/internal/config"
	"github.com/aliskhannn/workout-coach-bot/internal/delivery/telegram"
	"github.com/aliskhannn/workout-coach-bot/internal/engine"
	"github.com/aliskhannn/workout-coach-bot/internal/infra/postgres"
	"github.com/aliskhannn/workout-coach-bot/internal/logger"
	"github.com/aliskhannn/workout-coach-bot/internal/repository"
	"github.com/aliskhannn/workout-coach-bot/internal/storage"
	"github.com/aliskhannn/workout-coach-bot/internal/timer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	program, err := catalog.Load(cfg.ProgramJSONPath)
	if err != nil {
		zlog.Fatal("load program catalog", zap.Error(err))
	}

	if err := postgres.RunMigrations(cfg.DB.URL, zlog); err != nil {
		zlog.Fatal("run migrations", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zlog.Fatal("connect to database", zap.Error(err))
	}
	defer pool.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zlog.Fatal("create bot api", zap.Error(err))
	}
	zlog.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Начало работы"},
		{Command: "help", Description: "Справка"},
		{Command: "program", Description: "Программа тренировок"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zlog.Warn("failed to set bot commands", zap.Error(err))
	}

	store := repository.NewStore(pool)
	pending := storage.NewPendingWeights()

	eng := engine.New(program, store, pending, cfg.Timer.RestOptions, zlog)
	timers := timer.NewManager(telegram.NewCountdownNotifier(bot), store, zlog)

	handler := telegram.NewHandler(bot, zlog, eng, timers, store)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zlog.Fatal("telegram handler", zap.Error(err))
	}

	zlog.Info("shutdown signal received")
}
