package model

import (
	"time"
)

const (
	ReputationEventPostCreated      = "post_created"
	ReputationEventPostUpvoted      = "post_upvoted"
	ReputationEventReactionReceived = "reaction_received"
	ReputationEventReportConfirmed  = "report_confirmed"
)

// ReputationLog 声望流水，只追加不修改
type ReputationLog struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ProfileID uint64    `gorm:"not null;index:idx_profile_id" json:"profile_id"`
	EventType string    `gorm:"type:varchar(40);not null" json:"event_type"`
	Points    int       `gorm:"not null" json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReputationLog) TableName() string {
	return "reputation_logs"
}
