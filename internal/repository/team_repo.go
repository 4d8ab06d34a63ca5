package repository

import (
	"context"
	"errors"

	"Terrace/internal/model"

	"gorm.io/gorm"
)

type TeamRepo interface {
	GetTeam(ctx context.Context, teamID uint64) (*model.Team, error)
	GetAllTeams(ctx context.Context) ([]*model.Team, error)
	GetMatch(ctx context.Context, matchID uint64) (*model.Match, error)
	GetMatches(ctx context.Context, status string, limit int) ([]*model.Match, error)
}

type TeamRepoImpl struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) TeamRepo {
	return &TeamRepoImpl{db}
}

func (s *TeamRepoImpl) GetTeam(ctx context.Context, teamID uint64) (*model.Team, error) {
	team := &model.Team{}
	err := s.db.WithContext(ctx).Take(team, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return team, err
}

func (s *TeamRepoImpl) GetAllTeams(ctx context.Context) ([]*model.Team, error) {
	var teams []*model.Team
	err := s.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}

func (s *TeamRepoImpl) GetMatch(ctx context.Context, matchID uint64) (*model.Match, error) {
	match := &model.Match{}
	err := s.db.WithContext(ctx).Take(match, matchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return match, err
}

func (s *TeamRepoImpl) GetMatches(ctx context.Context, status string, limit int) ([]*model.Match, error) {
	var matches []*model.Match
	query := s.db.WithContext(ctx).Model(&model.Match{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("kickoff_at ASC").Limit(limit).Find(&matches).Error
	return matches, err
}
