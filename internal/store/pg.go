package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/store/schema"
)

type pgStatsStore struct {
	db *gorm.DB
}

// NewStatsStore creates a new PostgreSQL stats store instance
func NewStatsStore(db *gorm.DB) StatsStore {
	return &pgStatsStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	// database/sql treats MaxIdleConns > MaxOpenConns as MaxOpenConns anyway
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// FindParticipants returns the participants already registered for the given addresses
func (s *pgStatsStore) FindParticipants(ctx context.Context, addresses []string) ([]schema.Participant, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	var participants []schema.Participant
	err := s.db.WithContext(ctx).
		Where("participant_address IN ?", addresses).
		Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}

	return participants, nil
}

// CreateParticipants registers the given addresses. The no-op DO UPDATE makes
// RETURNING yield rows that conflicted with a concurrent insert, so every
// submitted address comes back with its id regardless of who created it.
func (s *pgStatsStore) CreateParticipants(ctx context.Context, addresses []string) ([]schema.Participant, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	participants := make([]schema.Participant, len(addresses))
	for i, address := range addresses {
		participants[i] = schema.Participant{Address: address}
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "participant_address"}},
			DoUpdates: clause.AssignmentColumns([]string{"participant_address"}),
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to register participants: %w", err)
	}

	return participants, nil
}

// TransferCursor returns MAX(last_checked_block) over the transfer rollups
func (s *pgStatsStore) TransferCursor(ctx context.Context) (uint64, bool, error) {
	var cursor sql.NullInt64
	row := s.db.WithContext(ctx).
		Model(&schema.DailyRewardTransfer{}).
		Select("MAX(last_checked_block)").
		Row()
	if err := row.Scan(&cursor); err != nil {
		return 0, false, fmt.Errorf("failed to query transfer cursor: %w", err)
	}

	if !cursor.Valid {
		return 0, false, nil
	}

	return uint64(cursor.Int64), true, nil
}

// UpdateDailyTransfer folds one transfer amount into the (day, participant)
// rollup. The conflict update accumulates the amount and records the height
// observed at scan time, so the write is commutative across concurrent scans.
func (s *pgStatsStore) UpdateDailyTransfer(ctx context.Context, day time.Time, toAddressID int64, amount *big.Int, lastCheckedBlock uint64) error {
	transfer := schema.DailyRewardTransfer{
		Day:              day,
		ToAddressID:      toAddressID,
		Amount:           amount.String(),
		LastCheckedBlock: lastCheckedBlock,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "day"}, {Name: "to_address_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"amount":             gorm.Expr("daily_reward_transfers.amount + EXCLUDED.amount"),
				"last_checked_block": gorm.Expr("EXCLUDED.last_checked_block"),
			}),
		}).
		Create(&transfer).Error
	if err != nil {
		return fmt.Errorf("failed to update daily transfer rollup: %w", err)
	}

	return nil
}

// AdvanceTransferCursor bumps last_checked_block on the current cursor rows.
// Used after a scan that returned no events, so the next scan does not
// re-request the same empty range. The monotonic guard keeps a stale pass
// from moving the cursor backwards. A no-op on an empty table: with no prior
// rows the next scan clamps to the safety window anyway.
func (s *pgStatsStore) AdvanceTransferCursor(ctx context.Context, height uint64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.DailyRewardTransfer{}).
		Where("last_checked_block = (SELECT MAX(last_checked_block) FROM daily_reward_transfers)").
		Where("last_checked_block < ?", height).
		Update("last_checked_block", height).Error
	if err != nil {
		return fmt.Errorf("failed to advance transfer cursor: %w", err)
	}

	return nil
}

// SetScheduledRewards overwrites the scheduled-rewards snapshot for
// (day, participant). Each write fully supersedes the prior value.
func (s *pgStatsStore) SetScheduledRewards(ctx context.Context, day time.Time, participantID int64, total *big.Int) error {
	snapshot := schema.DailyScheduledReward{
		Day:              day,
		ParticipantID:    participantID,
		ScheduledRewards: total.String(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}, {Name: "participant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"scheduled_rewards"}),
		}).
		Create(&snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to set scheduled rewards snapshot: %w", err)
	}

	return nil
}

type pgParticipationStore struct {
	db *gorm.DB
}

// NewParticipationStore creates a read-only store over the recent-activity ledger
func NewParticipationStore(db *gorm.DB) ParticipationStore {
	return &pgParticipationStore{db: db}
}

// ActiveParticipants returns the participants with activity recorded on or
// after since, ordered by address
func (s *pgParticipationStore) ActiveParticipants(ctx context.Context, since time.Time) ([]domain.ActiveParticipant, error) {
	var participants []domain.ActiveParticipant
	err := s.db.WithContext(ctx).Raw(`
		SELECT DISTINCT p.id, p.participant_address AS address
		FROM daily_participation dp
		JOIN participants p ON p.id = dp.participant_id
		WHERE dp.day >= ?
		ORDER BY address
	`, domain.DayUTC(since)).Scan(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query active participants: %w", err)
	}

	return participants, nil
}
