package main

import (
	"context"
	"labshop/internal/app"
	cataloguehandler "labshop/internal/handlers/catalogue"
	"labshop/internal/routes"
	catalogueservice "labshop/internal/service/catalogue"
	"labshop/pkg/config"
	"labshop/pkg/lib/logger"
	"labshop/pkg/lib/logger/sl"
	"log/slog"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.Load(config.ServiceCatalogue)
	if err != nil {
		panic(err)
	}

	log, err := logger.SetupLogger(cfg.HTTP.Env)
	if err != nil {
		panic(err)
	}

	log.Info("Starting catalogue service", slog.String("env", cfg.HTTP.Env))

	handler := cataloguehandler.New(log, catalogueservice.New(log))

	application := app.New(
		log,
		cfg.Addr(),
		routes.New(log).Catalogue(handler),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := application.RunContext(ctx, cfg.HTTP.ShutdownTimeout); err != nil {
		log.Error("Application failed", sl.Err(err))
	}
}
