package handler

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/pkg/response"
	"Terrace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamSvc service.TeamService
}

func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamSvc: teamSvc,
	}
}

// GetTeams 球队列表
func (s *TeamHandler) GetTeams(c *gin.Context) {
	teams, err := s.teamSvc.GetTeams(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, teams)
}

// GetMatches 比赛列表，可按状态过滤
func (s *TeamHandler) GetMatches(c *gin.Context) {
	status := c.Query("status")

	matches, err := s.teamSvc.GetMatches(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, matches)
}

// SetPrimaryTeam 设置自己的主队
func (s *TeamHandler) SetPrimaryTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 64)
	if err != nil || teamID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.teamSvc.SetPrimaryTeam(c.Request.Context(), userID, teamID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// OverridePrimaryTeam 管理端改派用户主队
func (s *TeamHandler) OverridePrimaryTeam(c *gin.Context) {
	var req dto.TeamOverrideDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.teamSvc.OverridePrimaryTeam(c.Request.Context(), req.ProfileID, req.TeamID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetLeaderboard 声望榜
func (s *TeamHandler) GetLeaderboard(c *gin.Context) {
	entries, err := s.teamSvc.GetLeaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}
