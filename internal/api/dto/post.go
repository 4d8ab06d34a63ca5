package dto

// PostCreateDTO 发帖请求
type PostCreateDTO struct {
	Scope      string  `json:"scope" binding:"required,oneof=team_room match_thread"`
	TeamID     *uint64 `json:"team_id"`
	MatchID    *uint64 `json:"match_id"`
	Body       string  `json:"body" binding:"required" validate:"min=1,max=2000"`
	MediaURL   string  `json:"media_url" validate:"max=2048"`
	AutoHidden bool    `json:"auto_hidden"` // 客户端预筛命中标记，只增不减
}

// PostDTO 帖子
type PostDTO struct {
	ID           uint64           `json:"id"`
	AuthorID     uint64           `json:"author_id"`
	Scope        string           `json:"scope"`
	TeamID       *uint64          `json:"team_id,omitempty"`
	MatchID      *uint64          `json:"match_id,omitempty"`
	Body         string           `json:"body"`
	MediaURL     string           `json:"media_url,omitempty"`
	Upvotes      int64            `json:"upvotes"`
	Downvotes    int64            `json:"downvotes"`
	Score        int64            `json:"score"`
	IsHidden     bool             `json:"is_hidden"`
	HiddenReason string           `json:"hidden_reason,omitempty"`
	Reactions    map[string]int64 `json:"reactions,omitempty"`
	CreatedAt    string           `json:"created_at"`
}

// FeedQueryDTO 信息流查询
type FeedQueryDTO struct {
	Scope    string `form:"scope" binding:"required,oneof=team_room match_thread"`
	TargetID uint64 `form:"target_id" binding:"required"`
}

// PostSearchDTO 帖子检索
type PostSearchDTO struct {
	Keyword string `form:"keyword" binding:"required" validate:"min=1,max=100"`
	Page    int    `form:"page" validate:"min=0"`
	Size    int    `form:"size" validate:"min=0,max=50"`
}
