package model

import (
	"time"
)

const (
	ModerationStateNone      = "none"
	ModerationStateMuted     = "muted"
	ModerationStateSuspended = "suspended"
	ModerationStateBanned    = "banned"
)

type Profile struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	PrimaryTeamID   *uint64   `gorm:"index:idx_primary_team" json:"primary_team_id"`
	ReputationTotal int       `gorm:"not null;default:0" json:"reputation_total"`
	StrikeCount     int       `gorm:"not null;default:0" json:"strike_count"`
	ModerationState string    `gorm:"type:varchar(20);not null;default:'none'" json:"moderation_state"` // none/muted/suspended/banned
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
