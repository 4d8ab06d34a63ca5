package dto

// ReviewDTO 审核裁决请求
type ReviewDTO struct {
	ReportID uint64 `json:"report_id" binding:"required"`
	Decision string `json:"decision" binding:"required,oneof=confirmed dismissed"`
	Notes    string `json:"notes" validate:"max=500"`
}

// ReportDTO 举报队列条目
type ReportDTO struct {
	ID         uint64 `json:"id"`
	ReporterID uint64 `json:"reporter_id"`
	PostID     uint64 `json:"post_id"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	ReviewerID uint64 `json:"reviewer_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ReportQueueDTO 举报队列按状态分组的视图
type ReportQueueDTO struct {
	Flagged       []*ReportDTO `json:"flagged"`
	PendingReview []*ReportDTO `json:"pending_review"`
	Resolved      []*ReportDTO `json:"resolved"`
}

// ReviewResultDTO 裁决结果
type ReviewResultDTO struct {
	ReportID        uint64 `json:"report_id"`
	Decision        string `json:"decision"`
	ActionTaken     string `json:"action_taken"`
	TargetProfileID uint64 `json:"target_profile_id,omitempty"`
	StrikeCount     int    `json:"strike_count,omitempty"`
	ModerationState string `json:"moderation_state,omitempty"`
}

// NoticeDTO 审核结果通知
type NoticeDTO struct {
	ID        string         `json:"id"`
	Type      int8           `json:"type"`
	ReportID  uint64         `json:"report_id"`
	PostID    uint64         `json:"post_id"`
	Content   string         `json:"content"`
	Payload   map[string]any `json:"payload,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt string         `json:"created_at"`
}
