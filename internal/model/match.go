package model

import (
	"time"
)

const (
	MatchStatusScheduled = "scheduled"
	MatchStatusLive      = "live"
	MatchStatusFinished  = "finished"
)

type Match struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	HomeTeamID uint64    `gorm:"not null;index:idx_home_team" json:"home_team_id"`
	AwayTeamID uint64    `gorm:"not null;index:idx_away_team" json:"away_team_id"`
	KickoffAt  time.Time `gorm:"not null;index:idx_kickoff" json:"kickoff_at"`
	Status     string    `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"` // scheduled/live/finished
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Match) TableName() string {
	return "matches"
}
