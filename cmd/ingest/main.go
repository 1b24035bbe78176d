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
	"github.com/superchain/token-explorer/internal/config"
	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/ingest"
	"github.com/superchain/token-explorer/internal/logger"
	"github.com/superchain/token-explorer/internal/providers/coingecko"
	"github.com/superchain/token-explorer/internal/retry"
	"github.com/superchain/token-explorer/internal/store"
)

func main() {
	var (
		configFile = flag.String("config", "config.yaml", "path to config file")
		envFile    = flag.String("env", "", "path to env file overlay")
		once       = flag.Bool("once", false, "run a single ingestion cycle and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		panic(err)
	}

	if err := logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.Sentry.DSN,
		Tags:      map[string]string{"service": "token-explorer-ingest"},
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
	if err := pg.ConfigureConnectionPool(5, 20, time.Hour); err != nil {
		logger.Fatal("failed to configure connection pool", zap.Error(err))
	}

	clock := adapter.NewClock()
	market := coingecko.NewClient(
		adapter.NewHTTPClient(30*time.Second),
		clock,
		cfg.CoinGecko.BaseURL,
		cfg.CoinGecko.APIKey,
		cfg.CoinGecko.MinInterval,
	)

	chains := make([]domain.ChainConfig, 0, len(cfg.Chains))
	staticTokens := make(map[string][]string, len(cfg.Chains))
	for _, entry := range cfg.Chains {
		chains = append(chains, entry.ChainConfig())
		staticTokens[entry.Slug] = entry.Tokens
	}

	orchestrator := ingest.NewOrchestrator(
		pg,
		market,
		clock,
		ingest.EthereumFetcherFactory(adapter.NewEthClientDialer(), clock, retry.Policy{
			MaxAttempts: cfg.Ingest.RetryMax,
			BaseDelay:   cfg.Ingest.RetryDelay,
		}),
		[]ingest.TokenSource{
			ingest.NewStaticSource(staticTokens),
			ingest.NewStoreSource(pg),
		},
		chains,
		cfg.Ingest.TokenPause,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := ingest.NewWorker(orchestrator, clock, cfg.Ingest.Interval)

	if *once {
		summary := worker.RunOnce(ctx)
		logger.Info("single cycle complete",
			zap.Int("succeeded", summary.Succeeded()),
			zap.Duration("duration", summary.Duration))
		return
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer stopCancel()
		worker.Stop(stopCtx)
	}()

	if err := worker.Start(ctx); err != nil {
		logger.Fatal("worker failed to start", zap.Error(err))
	}
}
