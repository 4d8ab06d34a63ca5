package es

import "time"

// PostES 写入 ES 的帖子文档
type PostES struct {
	ID        uint64    `json:"id"`
	AuthorID  uint64    `json:"author_id"`
	Scope     string    `json:"scope"`
	TeamID    *uint64   `json:"team_id,omitempty"`
	MatchID   *uint64   `json:"match_id,omitempty"`
	Body      string    `json:"body"`
	Score     int64     `json:"score"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
}
