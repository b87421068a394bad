// Command notifier consumes domain events from RabbitMQ and delivers the
// resulting notifications (password reset mails, generation analytics).
// It runs until SIGINT/SIGTERM.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/mail"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/rabbitmq"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/service/notify"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.RabbitMQ.Enabled() {
		logger.Error("RABBITMQ_URL is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(logger, cfg.RabbitMQ.URL, cfg.RabbitMQ.EventQueue, cfg.RabbitMQ.Prefetch)
	if err != nil {
		logger.Error("connect to broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer consumer.Close()

	svc := notify.NewService(logger, mail.NewLogSender(logger))

	if err := consumer.Run(ctx, svc.Handle); err != nil {
		logger.Error("consumer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("notifier stopped")
}
