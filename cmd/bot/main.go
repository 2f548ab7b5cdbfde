package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/glossary-quiz/internal/config"
	"github.com/aliskhannn/glossary-quiz/internal/delivery/telegram"
	"github.com/aliskhannn/glossary-quiz/internal/logger"
	"github.com/aliskhannn/glossary-quiz/internal/repository"
	"github.com/aliskhannn/glossary-quiz/internal/service"
	"github.com/aliskhannn/glossary-quiz/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "quiz",
			Description: "Start a new quiz",
		},
		{
			Command:     "shuffle",
			Description: "Shuffle the current quiz and start over",
		},
		{
			Command:     "stop",
			Description: "End the current quiz",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	_, err = bot.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := repository.NewSource(ctx, cfg)
	if err != nil {
		lg.Fatal("failed to open glossary source", zap.Error(err))
	}
	defer closeSource()

	quizService := service.NewQuizService(
		source,
		service.NewGlossaryParser(lg.Named("parser")),
		service.NewQuestionGenerator(service.NewOptionGenerator(nil), cfg.Quiz.BlankMarker, lg.Named("generator")),
		lg,
		service.WithShuffle(cfg.Quiz.ShuffleQuestions),
	)

	handler := telegram.NewHandler(bot, lg, quizService, storage.NewQuizStorage())
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
