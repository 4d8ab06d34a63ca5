package model

import (
	"time"
)

const (
	PostScopeTeamRoom    = "team_room"
	PostScopeMatchThread = "match_thread"
)

const (
	HiddenReasonAutoFilter         = "auto_filter"
	HiddenReasonConfirmedViolation = "confirmed_violation"
)

type Post struct {
	ID                    uint64    `gorm:"primaryKey" json:"id"`
	AuthorID              uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Scope                 string    `gorm:"type:varchar(20);not null;index:idx_scope" json:"scope"` // team_room/match_thread
	TeamID                *uint64   `gorm:"index:idx_team_id" json:"team_id"`
	MatchID               *uint64   `gorm:"index:idx_match_id" json:"match_id"`
	Body                  string    `gorm:"type:text;not null" json:"body"`
	MediaURL              string    `gorm:"type:varchar(2048)" json:"media_url"`
	Upvotes               int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes             int       `gorm:"not null;default:0" json:"downvotes"`
	Score                 int       `gorm:"not null;default:0;index:idx_score" json:"score"`
	IsHidden              bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_hidden"`
	HiddenReason          string    `gorm:"type:varchar(40)" json:"-"`
	ReportCount           int       `gorm:"not null;default:0" json:"report_count"`
	StrikeLinkedProfileID *uint64   `json:"-"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
