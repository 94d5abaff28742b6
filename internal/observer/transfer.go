package observer

import (
	"context"

	"go.uber.org/zap"

	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/logger"
)

// ObserveTransfers scans the rewards contract for Transfer events past the
// persisted cursor and folds them into the daily transfer rollups. Returns
// the number of events folded.
func (o *Observer) ObserveTransfers(ctx context.Context) (int, error) {
	cursor, haveCursor, err := o.stats.TransferCursor(ctx)
	if err != nil {
		return 0, err
	}

	height, err := o.chain.CurrentHeight(ctx)
	if err != nil {
		return 0, err
	}

	// The RPC provider only retains a bounded trailing window of history;
	// asking for anything older fails outright.
	var oldestServable uint64
	if height > o.config.SafetyWindow {
		oldestServable = height - o.config.SafetyWindow
	}

	fromBlock := cursor + 1
	if !haveCursor || fromBlock < oldestServable {
		fromBlock = oldestServable
		logger.WarnCtx(ctx, "Transfer cursor beyond provider retention, clamping scan window",
			zap.Uint64("from_block", fromBlock),
			zap.Uint64("current_height", height),
			zap.Uint64("safety_window", o.config.SafetyWindow))
	}

	logger.InfoCtx(ctx, "Querying Transfer events", zap.Uint64("from_block", fromBlock))
	events, err := o.chain.QueryTransferEvents(ctx, fromBlock)
	if err != nil {
		return 0, err
	}
	logger.InfoCtx(ctx, "Found Transfer events", zap.Int("count", len(events)))

	if len(events) == 0 {
		// Still advance the cursor to the height observed at scan time, so the
		// next pass does not re-request the same empty range forever.
		if err := o.stats.AdvanceTransferCursor(ctx, height); err != nil {
			return 0, err
		}
		return 0, nil
	}

	addresses := make([]string, 0, len(events))
	for _, event := range events {
		addresses = append(addresses, event.ToAddress)
	}

	ids, err := o.resolver.Resolve(ctx, addresses)
	if err != nil {
		return 0, err
	}

	day := domain.DayUTC(o.clock.Now())
	folded := 0
	for _, event := range events {
		id, ok := ids[event.ToAddress]
		if !ok {
			// The resolver guarantees every submitted address an id, so this
			// should be unreachable.
			logger.WarnCtx(ctx, "No participant id for transfer destination, skipping event",
				zap.String("address", event.ToAddress),
				zap.Uint64("block", event.BlockNumber))
			continue
		}

		// last_checked_block records the height observed at request time, not
		// the event's own block number.
		if err := o.stats.UpdateDailyTransfer(ctx, day, id, event.Amount, height); err != nil {
			return folded, err
		}
		folded++
	}

	if folded == 0 {
		// Every event was skipped; advance the cursor anyway, same as the
		// zero-event case, so the next pass does not re-request the range.
		if err := o.stats.AdvanceTransferCursor(ctx, height); err != nil {
			return 0, err
		}
	}

	return folded, nil
}
