package model

import (
	"time"
)

const (
	ReportStatusOpen      = "open"
	ReportStatusReviewing = "reviewing"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

const (
	ReviewDecisionConfirmed = "confirmed"
	ReviewDecisionDismissed = "dismissed"
)

// Report 状态只允许 open → reviewing → {resolved, dismissed}，终态不可再变
type Report struct {
	ID         uint64     `gorm:"primaryKey" json:"id"`
	ReporterID uint64     `gorm:"not null;uniqueIndex:idx_reporter_post" json:"reporter_id"`
	PostID     uint64     `gorm:"not null;uniqueIndex:idx_reporter_post;index:idx_report_post_id" json:"post_id"`
	Reason     string     `gorm:"type:varchar(500);not null" json:"reason"`
	Status     string     `gorm:"type:varchar(20);not null;default:'open';index:idx_status" json:"status"`
	ReviewerID *uint64    `json:"reviewer_id"`
	ClaimedAt  *time.Time `json:"claimed_at"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
