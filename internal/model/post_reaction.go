package model

import (
	"time"
)

const (
	ReactionClown  = "clown"
	ReactionFire   = "fire"
	ReactionBottle = "bottle"
	ReactionSalty  = "salty"
	ReactionLaugh  = "laugh"
)

// ReactionKinds 合法的表态类型集合
var ReactionKinds = []string{
	ReactionClown,
	ReactionFire,
	ReactionBottle,
	ReactionSalty,
	ReactionLaugh,
}

// PostReaction 每个用户对同一帖子同一类型至多一行
type PostReaction struct {
	PostID    uint64    `gorm:"primaryKey" json:"post_id"`
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	Reaction  string    `gorm:"primaryKey;type:varchar(20)" json:"reaction"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostReaction) TableName() string {
	return "post_reactions"
}
