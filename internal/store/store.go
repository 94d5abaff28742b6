package store

import (
	"context"
	"math/big"
	"time"

	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/store/schema"
)

// StatsStore defines the database operations against the stats schema, the
// one holding participants and both daily rollup families.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=StatsStore=MockStatsStore,ParticipationStore=MockParticipationStore
type StatsStore interface {
	// FindParticipants returns the participants already registered for the given addresses
	FindParticipants(ctx context.Context, addresses []string) ([]schema.Participant, error)
	// CreateParticipants registers the given addresses, returning one row per
	// address whether it was newly inserted or raced with a concurrent writer
	CreateParticipants(ctx context.Context, addresses []string) ([]schema.Participant, error)
	// TransferCursor returns MAX(last_checked_block) over the transfer rollups;
	// the second return is false when no rollup rows exist yet
	TransferCursor(ctx context.Context) (uint64, bool, error)
	// UpdateDailyTransfer folds one transfer amount into the (day, participant) rollup
	UpdateDailyTransfer(ctx context.Context, day time.Time, toAddressID int64, amount *big.Int, lastCheckedBlock uint64) error
	// AdvanceTransferCursor bumps the cursor to height after a scan that produced no events
	AdvanceTransferCursor(ctx context.Context, height uint64) error
	// SetScheduledRewards overwrites the scheduled-rewards snapshot for (day, participant)
	SetScheduledRewards(ctx context.Context, day time.Time, participantID int64, total *big.Int) error
}

// ParticipationStore defines the read-only view over the recent-activity
// ledger owned by the evaluation pipeline.
type ParticipationStore interface {
	// ActiveParticipants returns the participants with activity recorded on or
	// after since, ordered by address
	ActiveParticipants(ctx context.Context, since time.Time) ([]domain.ActiveParticipant, error)
}
