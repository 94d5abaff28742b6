package schema

// Participant maps an external participant address to a stable surrogate id.
// Rows are created lazily the first time an address is observed and are never
// mutated or deleted afterwards; the id must never be reassigned.
type Participant struct {
	// ID is the internal surrogate key, monotonically assigned
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the unique external participant address
	Address string `gorm:"column:participant_address;not null;type:text;uniqueIndex:idx_participants_address"`
}

// TableName specifies the table name for the Participant model
func (Participant) TableName() string {
	return "participants"
}
