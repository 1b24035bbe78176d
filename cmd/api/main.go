package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/superchain/token-explorer/internal/adapter"
	"github.com/superchain/token-explorer/internal/api/rest"
	"github.com/superchain/token-explorer/internal/api/server"
	"github.com/superchain/token-explorer/internal/config"
	"github.com/superchain/token-explorer/internal/logger"
	"github.com/superchain/token-explorer/internal/pricehistory"
	"github.com/superchain/token-explorer/internal/store"
)

func main() {
	var (
		configFile = flag.String("config", "config.yaml", "path to config file")
		envFile    = flag.String("env", "", "path to env file overlay")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		panic(err)
	}

	if err := logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.Sentry.DSN,
		Tags:      map[string]string{"service": "token-explorer-api"},
	}); err != nil {
		panic(err)
	}
	defer logger.Flush(2 * time.Second)

	db, err := gorm.Open(postgres.Open(cfg.Database.URI), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	pg := store.NewPGStore(db)
	if err := pg.AutoMigrate(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	if err := pg.ConfigureConnectionPool(5, 50, time.Hour); err != nil {
		logger.Fatal("failed to configure connection pool", zap.Error(err))
	}

	aggregator := pricehistory.NewAggregator(pg, adapter.NewClock())
	handler := rest.NewHandler(pg, aggregator)
	srv := server.New(cfg.Server.Addr, cfg.Server.APIKeys, handler, cfg.Debug)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutting down", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(err)
		}
	}()

	logger.Info("api server listening", zap.String("addr", cfg.Server.Addr))
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
