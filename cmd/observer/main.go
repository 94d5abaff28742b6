package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
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
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadObserverConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "observer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Spark Observer")

	// Connect to the stats database
	statsDB, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to stats database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(statsDB,
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure stats connection pool", zap.Error(err))
	}
	defer closeDB(statsDB)

	// Connect to the recent-activity ledger
	participationDB, err := gorm.Open(postgres.Open(cfg.Participation.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to participation database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(participationDB,
		cfg.Participation.MaxOpenConns, cfg.Participation.MaxIdleConns,
		cfg.Participation.ConnMaxLifetime, cfg.Participation.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure participation connection pool", zap.Error(err))
	}
	defer closeDB(participationDB)
	logger.InfoCtx(ctx, "Connected to databases")

	// Initialize stores and resolver
	statsStore := store.NewStatsStore(statsDB)
	participationStore := store.NewParticipationStore(participationDB)
	resolver := participant.NewResolver(statsStore)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Rewards.HTTPTimeout)

	// Initialize ethereum client
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()
	chainClient := ethereum.NewChainClient(cfg.Ethereum.ContractAddress, ethClient)

	// Initialize off-chain rewards client
	rewardsClient := rewards.NewClient(cfg.Rewards.APIURL, httpClient)

	obs := observer.New(
		statsStore,
		participationStore,
		resolver,
		chainClient,
		rewardsClient,
		clockAdapter,
		observer.Config{
			SafetyWindow:          cfg.Ethereum.SafetyWindow,
			ParticipationLookback: time.Duration(cfg.ParticipationLookbackDays) * 24 * time.Hour,
			RewardsPoolSize:       cfg.Rewards.PoolSize,
		},
	)

	// Schedule the two ingestion passes independently. A failed pass only
	// logs; the next tick resumes from the last committed cursor.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Scheduler.TransfersSchedule, func() {
		start := clockAdapter.Now()
		count, err := obs.ObserveTransfers(ctx)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("pass", "transfers"))
			return
		}
		logger.InfoCtx(ctx, "Transfer pass finished",
			zap.Int("events", count),
			zap.Duration("elapsed", clockAdapter.Since(start)))
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to schedule transfer pass", zap.Error(err))
	}

	_, err = scheduler.AddFunc(cfg.Scheduler.ScheduledRewardsSchedule, func() {
		start := clockAdapter.Now()
		count, err := obs.RefreshScheduledRewards(ctx)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("pass", "scheduled-rewards"))
			return
		}
		logger.InfoCtx(ctx, "Scheduled-rewards pass finished",
			zap.Int("participants", count),
			zap.Duration("elapsed", clockAdapter.Since(start)))
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to schedule scheduled-rewards pass", zap.Error(err))
	}

	scheduler.Start()
	logger.InfoCtx(ctx, "Scheduler started",
		zap.String("transfers", cfg.Scheduler.TransfersSchedule),
		zap.String("scheduled_rewards", cfg.Scheduler.ScheduledRewardsSchedule))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received signal, shutting down", zap.String("signal", sig.String()))

	cancel()
	// Stop returns a context that completes once in-flight jobs finish
	<-scheduler.Stop().Done()
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
