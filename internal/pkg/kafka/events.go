package kafka

import "time"

// 审核事件类型
const (
	EventReportSubmitted = "report_submitted"
	EventReportResolved  = "report_resolved"
	EventReportDismissed = "report_dismissed"
)

// ModerationEvent 投递到审计总线的审核事件
type ModerationEvent struct {
	EventType       string    `json:"event_type"`
	ReportID        uint64    `json:"report_id"`
	PostID          uint64    `json:"post_id"`
	ReviewerID      uint64    `json:"reviewer_id,omitempty"`
	TargetProfileID uint64    `json:"target_profile_id,omitempty"`
	ActionTaken     string    `json:"action_taken,omitempty"`
	StrikeCount     int       `json:"strike_count,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
