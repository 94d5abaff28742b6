package observer

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/logger"
)

// RefreshScheduledRewards snapshots the total scheduled rewards for every
// participant active within the configured lookback window. Each snapshot
// overwrites the prior value for the day; a per-participant fetch failure is
// logged and skipped, never aborts the batch. Returns the number of
// participants updated.
func (o *Observer) RefreshScheduledRewards(ctx context.Context) (int, error) {
	now := o.clock.Now()
	since := now.Add(-o.config.ParticipationLookback)

	active, err := o.participation.ActiveParticipants(ctx, since)
	if err != nil {
		return 0, err
	}
	logger.InfoCtx(ctx, "Refreshing scheduled rewards", zap.Int("participants", len(active)))

	day := domain.DayUTC(now)
	pool := pond.NewPool(o.config.RewardsPoolSize, pond.WithContext(ctx))

	var updated atomic.Int64
	for _, p := range active {
		pool.Submit(func() {
			total, err := o.scheduledRewardsFor(ctx, p.Address)
			if err != nil {
				logger.WarnCtx(ctx, "Failed to fetch scheduled rewards, skipping participant",
					zap.String("address", p.Address), zap.Error(err))
				return
			}

			if err := o.stats.SetScheduledRewards(ctx, day, p.ID, total); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("address", p.Address))
				return
			}
			updated.Add(1)
		})
	}
	pool.StopAndWait()

	return int(updated.Load()), nil
}

// scheduledRewardsFor sums the contract-sourced and ledger-sourced scheduled
// rewards for one address. The two fetches run concurrently with each other
// and both must succeed before anything is written.
func (o *Observer) scheduledRewardsFor(ctx context.Context, address string) (*big.Int, error) {
	var (
		contractRewards, ledgerRewards *big.Int
		contractErr, ledgerErr         error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		contractRewards, contractErr = o.chain.RewardsScheduledFor(ctx, address)
	}()
	go func() {
		defer wg.Done()
		ledgerRewards, ledgerErr = o.rewards.ScheduledRewards(ctx, address)
	}()
	wg.Wait()

	if contractErr != nil {
		return nil, fmt.Errorf("contract source: %w", contractErr)
	}
	if ledgerErr != nil {
		return nil, fmt.Errorf("ledger source: %w", ledgerErr)
	}

	return new(big.Int).Add(contractRewards, ledgerRewards), nil
}
