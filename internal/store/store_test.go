package store

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/store/schema"
)

func TestCreateParticipants_AssignsIDs(t *testing.T) {
	stats, _, _ := initTestStores(t)
	ctx := context.Background()

	created, err := stats.CreateParticipants(ctx, []string{"0xaaa", "0xbbb"})
	require.NoError(t, err)
	require.Len(t, created, 2)

	ids := make(map[string]int64)
	for _, p := range created {
		assert.Greater(t, p.ID, int64(0))
		ids[p.Address] = p.ID
	}
	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids["0xaaa"], ids["0xbbb"])
}

func TestCreateParticipants_ConflictReturnsExistingID(t *testing.T) {
	stats, _, _ := initTestStores(t)
	ctx := context.Background()

	first, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same address again, as if a concurrent writer had won the race
	second, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestFindParticipants_ReturnsOnlyKnown(t *testing.T) {
	stats, _, _ := initTestStores(t)
	ctx := context.Background()

	created, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)

	found, err := stats.FindParticipants(ctx, []string{"0xaaa", "0xnew"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "0xaaa", found[0].Address)
	assert.Equal(t, created[0].ID, found[0].ID)
}

func TestFindParticipants_DoesNotAdvanceIDSequence(t *testing.T) {
	stats, _, tx := initTestStores(t)
	ctx := context.Background()

	_, err := stats.CreateParticipants(ctx, []string{"0xaaa", "0xbbb"})
	require.NoError(t, err)

	before := sequenceValue(t, tx)

	// Steady state: the resolver only SELECTs for already-known addresses
	_, err = stats.FindParticipants(ctx, []string{"0xaaa", "0xbbb"})
	require.NoError(t, err)

	assert.Equal(t, before, sequenceValue(t, tx))
}

// sequenceValue reads the participants id sequence, used to show that
// resolving known addresses never consumes id space
func sequenceValue(t *testing.T, db *gorm.DB) int64 {
	var value int64
	err := db.Raw("SELECT last_value FROM participants_id_seq").Scan(&value).Error
	require.NoError(t, err)
	return value
}

func TestUpdateDailyTransfer_AccumulatesAmounts(t *testing.T) {
	stats, _, tx := initTestStores(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	created, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)
	id := created[0].ID

	require.NoError(t, stats.UpdateDailyTransfer(ctx, day, id, big.NewInt(100), 2000))
	require.NoError(t, stats.UpdateDailyTransfer(ctx, day, id, big.NewInt(200), 2000))

	var row struct {
		Amount           string
		LastCheckedBlock uint64
	}
	err = tx.Raw(
		"SELECT amount::TEXT, last_checked_block FROM daily_reward_transfers WHERE day = ? AND to_address_id = ?",
		day, id,
	).Scan(&row).Error
	require.NoError(t, err)
	assert.Equal(t, "300", row.Amount)
	assert.Equal(t, uint64(2000), row.LastCheckedBlock)
}

func TestUpdateDailyTransfer_SeparateDaysSeparateRows(t *testing.T) {
	stats, _, tx := initTestStores(t)
	ctx := context.Background()

	created, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)
	id := created[0].ID

	day1 := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, stats.UpdateDailyTransfer(ctx, day1, id, big.NewInt(100), 2000))
	require.NoError(t, stats.UpdateDailyTransfer(ctx, day2, id, big.NewInt(200), 2100))

	var count int64
	err = tx.Model(&schema.DailyRewardTransfer{}).Where("to_address_id = ?", id).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTransferCursor(t *testing.T) {
	stats, _, _ := initTestStores(t)
	ctx := context.Background()

	_, ok, err := stats.TransferCursor(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty table must report no cursor")

	created, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, stats.UpdateDailyTransfer(ctx, day, created[0].ID, big.NewInt(1), 1500))

	cursor, ok, err := stats.TransferCursor(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(1500), cursor)
}

func TestAdvanceTransferCursor(t *testing.T) {
	stats, _, _ := initTestStores(t)
	ctx := context.Background()

	// No rows: advancing is a no-op, the next scan clamps anyway
	require.NoError(t, stats.AdvanceTransferCursor(ctx, 2000))
	_, ok, err := stats.TransferCursor(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	created, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, stats.UpdateDailyTransfer(ctx, day, created[0].ID, big.NewInt(1), 1500))

	require.NoError(t, stats.AdvanceTransferCursor(ctx, 2000))
	cursor, ok, err := stats.TransferCursor(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(2000), cursor)

	// Never moves backwards
	require.NoError(t, stats.AdvanceTransferCursor(ctx, 1800))
	cursor, _, err = stats.TransferCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), cursor)
}

func TestSetScheduledRewards_OverwritesPriorValue(t *testing.T) {
	stats, _, tx := initTestStores(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	created, err := stats.CreateParticipants(ctx, []string{"0xaaa"})
	require.NoError(t, err)
	id := created[0].ID

	require.NoError(t, stats.SetScheduledRewards(ctx, day, id, big.NewInt(200)))
	require.NoError(t, stats.SetScheduledRewards(ctx, day, id, big.NewInt(50)))

	var value string
	err = tx.Raw(
		"SELECT scheduled_rewards::TEXT FROM daily_scheduled_rewards WHERE day = ? AND participant_id = ?",
		day, id,
	).Scan(&value).Error
	require.NoError(t, err)
	assert.Equal(t, "50", value, "snapshot must replace, not accumulate")
}

func TestActiveParticipants(t *testing.T) {
	stats, participation, tx := initTestStores(t)
	ctx := context.Background()

	created, err := stats.CreateParticipants(ctx, []string{"0xbbb", "0xaaa", "0xccc"})
	require.NoError(t, err)
	ids := make(map[string]int64)
	for _, p := range created {
		ids[p.Address] = p.ID
	}

	today := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	stale := today.AddDate(0, 0, -10)
	seed := []schema.DailyParticipation{
		{Day: today, ParticipantID: ids["0xbbb"]},
		{Day: today.AddDate(0, 0, -2), ParticipantID: ids["0xaaa"]},
		{Day: stale, ParticipantID: ids["0xccc"]},
	}
	require.NoError(t, tx.Create(&seed).Error)

	active, err := participation.ActiveParticipants(ctx, today.AddDate(0, 0, -3))
	require.NoError(t, err)
	require.Len(t, active, 2)

	// Ordered by address; the stale participant is excluded
	assert.Equal(t, []domain.ActiveParticipant{
		{ID: ids["0xaaa"], Address: "0xaaa"},
		{ID: ids["0xbbb"], Address: "0xbbb"},
	}, active)
}
