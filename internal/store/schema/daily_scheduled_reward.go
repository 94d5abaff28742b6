package schema

import "time"

// DailyScheduledReward is a point-in-time snapshot of the total rewards
// scheduled for a participant as of the day of observation. Re-running the
// refresh for the same day replaces the value, it never accumulates.
type DailyScheduledReward struct {
	Day           time.Time `gorm:"column:day;primaryKey;type:date"`
	ParticipantID int64     `gorm:"column:participant_id;primaryKey"`
	// ScheduledRewards is the sum of the contract-sourced and ledger-sourced quantities
	ScheduledRewards string `gorm:"column:scheduled_rewards;not null;type:numeric(78,0)"`
}

// TableName specifies the table name for the DailyScheduledReward model
func (DailyScheduledReward) TableName() string {
	return "daily_scheduled_rewards"
}
