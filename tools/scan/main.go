// Command scan runs a single ingestion pass and exits. Useful for verifying
// configuration and for manual catch-up runs without waiting for the
// scheduler.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/CheckerNetwork/spark-observer/internal/adapter"
	"github.com/CheckerNetwork/spark-observer/internal/config"
	"github.com/CheckerNetwork/spark-observer/internal/logger"
	"github.com/CheckerNetwork/spark-observer/internal/observer"
	"github.com/CheckerNetwork/spark-observer/internal/participant"
	"github.com/CheckerNetwork/spark-observer/internal/providers/ethereum"
	"github.com/CheckerNetwork/spark-observer/internal/providers/rewards"
	"github.com/CheckerNetwork/spark-observer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	pass       = flag.String("pass", "transfers", "Pass to run: transfers, rewards or all")
	timeout    = flag.Duration("timeout", 10*time.Minute, "Abort the run after this long")
)

func main() {
	flag.Parse()

	if *pass != "transfers" && *pass != "rewards" && *pass != "all" {
		fmt.Fprintf(os.Stderr, "unknown pass %q\n", *pass)
		flag.Usage()
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadObserverConfig(*configFile, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{Debug: cfg.Debug}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Flush(2 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	obs, cleanup, err := buildObserver(ctx, cfg)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to build observer", zap.Error(err))
	}
	defer cleanup()

	if *pass == "transfers" || *pass == "all" {
		count, err := obs.ObserveTransfers(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Transfer pass failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Transfer pass finished", zap.Int("events", count))
	}

	if *pass == "rewards" || *pass == "all" {
		count, err := obs.RefreshScheduledRewards(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Scheduled-rewards pass failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Scheduled-rewards pass finished", zap.Int("participants", count))
	}
}

// buildObserver wires a fully connected observer from the configuration. The
// returned cleanup closes every connection it opened.
func buildObserver(ctx context.Context, cfg *config.ObserverConfig) (*observer.Observer, func(), error) {
	statsDB, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to stats database: %w", err)
	}

	participationDB, err := gorm.Open(postgres.Open(cfg.Participation.DSN()), &gorm.Config{})
	if err != nil {
		closeDB(statsDB)
		return nil, nil, fmt.Errorf("failed to connect to participation database: %w", err)
	}

	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		closeDB(statsDB)
		closeDB(participationDB)
		return nil, nil, fmt.Errorf("failed to dial Ethereum RPC: %w", err)
	}

	statsStore := store.NewStatsStore(statsDB)
	obs := observer.New(
		statsStore,
		store.NewParticipationStore(participationDB),
		participant.NewResolver(statsStore),
		ethereum.NewChainClient(cfg.Ethereum.ContractAddress, ethClient),
		rewards.NewClient(cfg.Rewards.APIURL, adapter.NewHTTPClient(cfg.Rewards.HTTPTimeout)),
		adapter.NewClock(),
		observer.Config{
			SafetyWindow:          cfg.Ethereum.SafetyWindow,
			ParticipationLookback: time.Duration(cfg.ParticipationLookbackDays) * 24 * time.Hour,
			RewardsPoolSize:       cfg.Rewards.PoolSize,
		},
	)

	cleanup := func() {
		ethClient.Close()
		closeDB(statsDB)
		closeDB(participationDB)
	}
	return obs, cleanup, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
