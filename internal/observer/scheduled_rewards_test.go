package observer_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/observer"
)

func TestRefreshScheduledRewards_SumsBothSources(t *testing.T) {
	tm := setupTestObserver(t, observer.Config{
		ParticipationLookback: 3 * 24 * time.Hour,
		RewardsPoolSize:       2,
	})
	defer tearDownTestObserver(tm)
	ctx := context.Background()
	day := domain.DayUTC(testNow)

	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.participation.EXPECT().ActiveParticipants(ctx, testNow.Add(-3*24*time.Hour)).
		Return([]domain.ActiveParticipant{{ID: 1, Address: "0xaaa"}}, nil)
	tm.chain.EXPECT().RewardsScheduledFor(ctx, "0xaaa").Return(big.NewInt(150), nil)
	tm.rewards.EXPECT().ScheduledRewards(ctx, "0xaaa").Return(big.NewInt(25), nil)
	tm.stats.EXPECT().SetScheduledRewards(ctx, day, int64(1), big.NewInt(175)).Return(nil)

	updated, err := tm.observer.RefreshScheduledRewards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestRefreshScheduledRewards_LatestSnapshotWins(t *testing.T) {
	tm := setupTestObserver(t, observer.Config{
		ParticipationLookback: 3 * 24 * time.Hour,
		RewardsPoolSize:       2,
	})
	defer tearDownTestObserver(tm)
	ctx := context.Background()
	day := domain.DayUTC(testNow)

	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.participation.EXPECT().ActiveParticipants(ctx, gomock.Any()).
		Return([]domain.ActiveParticipant{{ID: 1, Address: "0xaaa"}}, nil).Times(2)

	// Rewards shrink between passes; each pass writes the current total as-is
	gomock.InOrder(
		tm.chain.EXPECT().RewardsScheduledFor(ctx, "0xaaa").Return(big.NewInt(200), nil),
		tm.chain.EXPECT().RewardsScheduledFor(ctx, "0xaaa").Return(big.NewInt(50), nil),
	)
	tm.rewards.EXPECT().ScheduledRewards(ctx, "0xaaa").Return(big.NewInt(0), nil).Times(2)
	gomock.InOrder(
		tm.stats.EXPECT().SetScheduledRewards(ctx, day, int64(1), big.NewInt(200)).Return(nil),
		tm.stats.EXPECT().SetScheduledRewards(ctx, day, int64(1), big.NewInt(50)).Return(nil),
	)

	for i := 0; i < 2; i++ {
		updated, err := tm.observer.RefreshScheduledRewards(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, updated)
	}
}

func TestRefreshScheduledRewards_FetchFailureSkipsParticipant(t *testing.T) {
	tm := setupTestObserver(t, observer.Config{
		ParticipationLookback: 3 * 24 * time.Hour,
		RewardsPoolSize:       2,
	})
	defer tearDownTestObserver(tm)
	ctx := context.Background()
	day := domain.DayUTC(testNow)

	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.participation.EXPECT().ActiveParticipants(ctx, gomock.Any()).
		Return([]domain.ActiveParticipant{
			{ID: 1, Address: "0xaaa"},
			{ID: 2, Address: "0xbbb"},
		}, nil)

	// One source failing poisons only that participant's snapshot
	tm.chain.EXPECT().RewardsScheduledFor(ctx, "0xaaa").Return(nil, errors.New("execution reverted"))
	tm.rewards.EXPECT().ScheduledRewards(ctx, "0xaaa").Return(big.NewInt(10), nil)

	tm.chain.EXPECT().RewardsScheduledFor(ctx, "0xbbb").Return(big.NewInt(30), nil)
	tm.rewards.EXPECT().ScheduledRewards(ctx, "0xbbb").Return(big.NewInt(12), nil)
	tm.stats.EXPECT().SetScheduledRewards(ctx, day, int64(2), big.NewInt(42)).Return(nil)

	updated, err := tm.observer.RefreshScheduledRewards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestRefreshScheduledRewards_NoActiveParticipants(t *testing.T) {
	tm := setupTestObserver(t, observer.Config{
		ParticipationLookback: 3 * 24 * time.Hour,
		RewardsPoolSize:       2,
	})
	defer tearDownTestObserver(tm)
	ctx := context.Background()

	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.participation.EXPECT().ActiveParticipants(ctx, gomock.Any()).
		Return(nil, nil)

	updated, err := tm.observer.RefreshScheduledRewards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestRefreshScheduledRewards_LedgerErrorPropagates(t *testing.T) {
	tm := setupTestObserver(t, observer.Config{
		ParticipationLookback: 3 * 24 * time.Hour,
		RewardsPoolSize:       2,
	})
	defer tearDownTestObserver(tm)
	ctx := context.Background()

	storeErr := errors.New("connection refused")
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.participation.EXPECT().ActiveParticipants(ctx, gomock.Any()).
		Return(nil, storeErr)

	_, err := tm.observer.RefreshScheduledRewards(ctx)
	assert.ErrorIs(t, err, storeErr)
}
