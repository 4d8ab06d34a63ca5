package dto

// VoteDTO 投票请求，1 赞成 -1 反对
type VoteDTO struct {
	Value int `json:"value" binding:"required,oneof=1 -1"`
}

// VoteResultDTO 投票后的权威计数
type VoteResultDTO struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Score     int64 `json:"score"`
}

// ReactionDTO 表态请求
type ReactionDTO struct {
	Reaction string `json:"reaction" binding:"required,oneof=clown fire bottle salty laugh"`
	Action   string `json:"action" binding:"required,oneof=add remove"`
}

// ReportCreateDTO 举报请求
type ReportCreateDTO struct {
	Reason string `json:"reason" binding:"required" validate:"min=1,max=500"`
}
