package domain

import (
	"math/big"
	"time"
)

// TransferEvent is a normalized reward Transfer log entry emitted by the
// rewards contract.
type TransferEvent struct {
	// ToAddress is the destination participant address
	ToAddress string
	// Amount is the transferred amount in the smallest token unit
	Amount *big.Int
	// BlockNumber is the block the event was included in
	BlockNumber uint64
}

// ActiveParticipant is a participant seen in the recent-activity ledger,
// paired with its stable internal id.
type ActiveParticipant struct {
	ID      int64  `gorm:"column:id"`
	Address string `gorm:"column:address"`
}

// DayUTC truncates a point in time to its UTC calendar date. Both rollup
// families key on the day the observation was made, not on the block
// timestamp.
func DayUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
