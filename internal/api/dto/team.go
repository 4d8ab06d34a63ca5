package dto

// TeamDTO 球队
type TeamDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	Crest     string `json:"crest,omitempty"`
}

// MatchDTO 比赛
type MatchDTO struct {
	ID         uint64 `json:"id"`
	HomeTeamID uint64 `json:"home_team_id"`
	AwayTeamID uint64 `json:"away_team_id"`
	KickoffAt  string `json:"kickoff_at"`
	Status     string `json:"status"`
}

// TeamOverrideDTO 管理端改派主队请求
type TeamOverrideDTO struct {
	ProfileID uint64 `json:"profile_id" binding:"required"`
	TeamID    uint64 `json:"team_id" binding:"required"`
}

// LeaderboardEntryDTO 声望榜条目
type LeaderboardEntryDTO struct {
	Rank            int    `json:"rank"`
	ProfileID       uint64 `json:"profile_id"`
	Username        string `json:"username"`
	ReputationTotal int    `json:"reputation_total"`
}
