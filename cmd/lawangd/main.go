package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lborres/lawang"
	fiberadapter "github.com/lborres/lawang/adapters/fiber"
	pgxadapter "github.com/lborres/lawang/adapters/pgx"
	"github.com/lborres/lawang/pkg/config"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := pgxadapter.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		return err
	}
	log.Info("migrations applied")

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
	}))

	_, err = lawang.New(lawang.Config{
		Secret:   cfg.Secret,
		Database: pgxadapter.New(pool),
		HTTP:     fiberadapter.New(app),
		TokenTTL: cfg.TokenTTL,
		BasePath: cfg.BasePath,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()
	log.Info("listening", "addr", cfg.Addr, "base_path", cfg.BasePath)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.Shutdown()
}
