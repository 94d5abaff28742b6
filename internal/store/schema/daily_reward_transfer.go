package schema

import "time"

// DailyRewardTransfer accumulates reward-transfer amounts per participant per
// day. Amount only ever grows for a given (day, participant) across repeated
// scans; the scan cursor is derived as MAX(last_checked_block) over the whole
// table, not tracked per row.
type DailyRewardTransfer struct {
	// Day is the UTC calendar date the transfers were observed on
	Day time.Time `gorm:"column:day;primaryKey;type:date"`
	// ToAddressID references the destination participant
	ToAddressID int64 `gorm:"column:to_address_id;primaryKey"`
	// Amount is the running sum of transferred amounts (numeric(78,0) to hold uint256)
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// LastCheckedBlock is the chain height observed during the scan pass that last touched this row
	LastCheckedBlock uint64 `gorm:"column:last_checked_block;not null"`
}

// TableName specifies the table name for the DailyRewardTransfer model
func (DailyRewardTransfer) TableName() string {
	return "daily_reward_transfers"
}
