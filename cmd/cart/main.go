package main

import (
	"context"
	"labshop/internal/app"
	"labshop/internal/database/psql"
	carthandler "labshop/internal/handlers/cart"
	cartrowshandler "labshop/internal/handlers/cartrows"
	"labshop/internal/routes"
	cartservice "labshop/internal/service/cart"
	"labshop/internal/storage/memory"
	"labshop/pkg/config"
	"labshop/pkg/lib/logger"
	"labshop/pkg/lib/logger/sl"
	"log/slog"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.Load(config.ServiceCart)
	if err != nil {
		panic(err)
	}

	log, err := logger.SetupLogger(cfg.HTTP.Env)
	if err != nil {
		panic(err)
	}

	log.Info("Starting cart service", slog.String("env", cfg.HTTP.Env), slog.String("storage", cfg.Storage))

	var (
		handler routes.CartHandler
		closeFn = func() error { return nil }
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		storage, err := psql.New(log, cfg.ConnectionString(), cfg.Psql.Migrate)
		if err != nil {
			panic(err)
		}
		closeFn = storage.Close
		handler = cartrowshandler.New(log, cartservice.NewRowService(log, storage))
	default:
		storage := memory.New(log)
		handler = carthandler.New(log, cartservice.NewItemService(log, storage))
	}

	application := app.New(
		log,
		cfg.Addr(),
		routes.New(log).Cart(handler),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := application.RunContext(ctx, cfg.HTTP.ShutdownTimeout); err != nil {
		log.Error("Application failed", sl.Err(err))
	}

	log.Info("Closing storage")
	if err := closeFn(); err != nil {
		log.Error("Failed to close storage", sl.Err(err))
	}
}
