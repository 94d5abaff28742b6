package schema

import "time"

// DailyParticipation is the recent-activity ledger, owned by an external
// collaborator. This service only reads it to pick the fan-out set for the
// scheduled-rewards refresh.
type DailyParticipation struct {
	Day           time.Time `gorm:"column:day;primaryKey;type:date"`
	ParticipantID int64     `gorm:"column:participant_id;primaryKey"`
}

// TableName specifies the table name for the DailyParticipation model
func (DailyParticipation) TableName() string {
	return "daily_participation"
}
