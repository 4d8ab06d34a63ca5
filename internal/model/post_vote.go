package model

import (
	"time"
)

// PostVote 每个用户对同一帖子最多一行，改票原地更新 value
type PostVote struct {
	PostID    uint64    `gorm:"primaryKey" json:"post_id"`
	UserID    uint64    `gorm:"primaryKey;index:idx_user_id" json:"user_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 或 -1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PostVote) TableName() string {
	return "post_votes"
}
