package service

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/pkg/consts"
	"Terrace/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
)

const matchListLimit = 100

type TeamService interface {
	GetTeams(ctx context.Context) ([]*dto.TeamDTO, error)
	GetMatches(ctx context.Context, status string) ([]*dto.MatchDTO, error)
	SetPrimaryTeam(ctx context.Context, userID, teamID uint64) error
	OverridePrimaryTeam(ctx context.Context, profileID, teamID uint64) error
	GetLeaderboard(ctx context.Context) ([]*dto.LeaderboardEntryDTO, error)
}

type teamServiceImpl struct {
	teamRepo    repository.TeamRepo
	profileRepo repository.ProfileRepo
}

func NewTeamService(teamRepo repository.TeamRepo, profileRepo repository.ProfileRepo) TeamService {
	return &teamServiceImpl{
		teamRepo:    teamRepo,
		profileRepo: profileRepo,
	}
}

func (s *teamServiceImpl) GetTeams(ctx context.Context) ([]*dto.TeamDTO, error) {
	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TeamDTO, 0, len(teams))
	for _, team := range teams {
		item := &dto.TeamDTO{}
		_ = copier.Copy(item, team)
		result = append(result, item)
	}
	return result, nil
}

func (s *teamServiceImpl) GetMatches(ctx context.Context, status string) ([]*dto.MatchDTO, error) {
	matches, err := s.teamRepo.GetMatches(ctx, status, matchListLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MatchDTO, 0, len(matches))
	for _, match := range matches {
		item := &dto.MatchDTO{}
		_ = copier.Copy(item, match)
		item.KickoffAt = match.KickoffAt.Format(time.RFC3339)
		result = append(result, item)
	}
	return result, nil
}

func (s *teamServiceImpl) SetPrimaryTeam(ctx context.Context, userID, teamID uint64) error {
	return s.assignTeam(ctx, userID, teamID)
}

// OverridePrimaryTeam 管理端改派，跳过用户本人身份校验
func (s *teamServiceImpl) OverridePrimaryTeam(ctx context.Context, profileID, teamID uint64) error {
	return s.assignTeam(ctx, profileID, teamID)
}

func (s *teamServiceImpl) assignTeam(ctx context.Context, profileID, teamID uint64) error {
	if _, err := s.teamRepo.GetTeam(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTeamNotFound
		}
		return err
	}

	err := s.profileRepo.SetPrimaryTeam(ctx, profileID, teamID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	return err
}

func (s *teamServiceImpl) GetLeaderboard(ctx context.Context) ([]*dto.LeaderboardEntryDTO, error) {
	profiles, err := s.profileRepo.GetLeaderboard(ctx, consts.LeaderboardSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LeaderboardEntryDTO, 0, len(profiles))
	for i, profile := range profiles {
		result = append(result, &dto.LeaderboardEntryDTO{
			Rank:            i + 1,
			ProfileID:       profile.ID,
			Username:        profile.Username,
			ReputationTotal: profile.ReputationTotal,
		})
	}
	return result, nil
}
