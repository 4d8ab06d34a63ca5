package model

import (
	"time"
)

const (
	ModerationActionNone = "none"
)

// ModerationReview 审核留痕，report_id 唯一索引保证一次举报只产生一条记录
type ModerationReview struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	ReportID         uint64    `gorm:"not null;uniqueIndex:idx_report_id" json:"report_id"`
	PostID           uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	ReviewerID       uint64    `gorm:"not null" json:"reviewer_id"`
	TargetProfileID  *uint64   `json:"target_profile_id"`
	Decision         string    `gorm:"type:varchar(20);not null" json:"decision"`
	ActionTaken      string    `gorm:"type:varchar(20);not null" json:"action_taken"`
	StrikeCountAfter *int      `json:"strike_count_after"`
	Notes            string    `gorm:"type:varchar(1000)" json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

func (ModerationReview) TableName() string {
	return "moderation_reviews"
}
