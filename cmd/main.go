// Package main wires the HTTP server for the project release configuration service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"release-config-exchange/config"
	"release-config-exchange/internal/access"
	"release-config-exchange/internal/metrics"
	"release-config-exchange/internal/repository"
	"release-config-exchange/internal/transport/http/middleware"
	"release-config-exchange/internal/transport/http/server/handlers-fiber"
	"release-config-exchange/internal/usecase"
	"release-config-exchange/internal/usecase/domain"
	"release-config-exchange/internal/validator"
	"release-config-exchange/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	metrics.Register()
	if cfg.Slack.ClientID == "" {
		log.Warnw("slack.client_id is empty, responder linking will not complete")
	}

	uc := usecase.New(
		log,
		repo,
		validator.New(log, cfg.Providers),
		access.NewOwnerPolicy(cfg.Auth.Admins),
		domain.Options{
			Timeout:       cfg.HTTP.RequestTimeout,
			SlackClientID: cfg.Slack.ClientID,
		},
	)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.Caller(cfg.Auth.UserHeader))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/readyz", func(c *fiber.Ctx) error {
		if err := repo.Ping(c.Context()); err != nil {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(serv, h)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Warnw("server shutdown", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
}
