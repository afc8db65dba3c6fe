package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fiadoapp/backend/internal/api"
	"github.com/fiadoapp/backend/internal/clients/mailer"
	"github.com/fiadoapp/backend/internal/clients/whatsapp"
	"github.com/fiadoapp/backend/internal/repository"
	"github.com/fiadoapp/backend/internal/service"
	"github.com/fiadoapp/backend/pkg/broker"
	"github.com/fiadoapp/backend/pkg/config"
	"github.com/fiadoapp/backend/pkg/job"
	"github.com/fiadoapp/backend/pkg/logger"
	"github.com/fiadoapp/backend/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	var producer service.Producer = broker.NopProducer{}

	if cfg.Kafka.Enabled {
		kafkaProducer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.LedgerEventTopic)
		defer kafkaProducer.Close()

		producer = kafkaProducer
	}

	var sender service.Sender

	switch cfg.Notifier.Channel {
	case "email":
		sender = mailer.New(cfg.Mailer)
	default:
		sender = whatsapp.New(cfg.WhatsApp)
	}

	s := service.New(repo, producer, sender, int(cfg.Notifier.BatchSize))

	jobs := job.NewService().
		RegisterJob("drain notifications", cfg.Notifier.DrainInterval, s.DrainNotifications)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
