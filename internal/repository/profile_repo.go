package repository

import (
	"context"
	"errors"

	"Terrace/internal/model"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, profileID uint64) (*model.Profile, error)
	SetPrimaryTeam(ctx context.Context, profileID, teamID uint64) error
	AddReputation(ctx context.Context, profileID uint64, eventType string, points int) error
	GetLeaderboard(ctx context.Context, limit int) ([]*model.Profile, error)
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db: db}
}

func (s *ProfileRepoImpl) GetProfile(ctx context.Context, profileID uint64) (*model.Profile, error) {
	var profile model.Profile
	err := s.db.WithContext(ctx).First(&profile, profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileRepoImpl) SetPrimaryTeam(ctx context.Context, profileID, teamID uint64) error {
	res := s.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", profileID).
		Update("primary_team_id", teamID)
	if res.Error != nil {
		return res.Error
	}
	// mysql 驱动报告的是改动行数而非匹配行数，重复设置同一主队不算失败
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Profile{}).
			Where("id = ?", profileID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// AddReputation 流水插入与总分累加放在同一事务里，保证账账相符
func (s *ProfileRepoImpl) AddReputation(ctx context.Context, profileID uint64, eventType string, points int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		logRow := &model.ReputationLog{
			ProfileID: profileID,
			EventType: eventType,
			Points:    points,
		}
		if err := tx.Create(logRow).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Profile{}).
			Where("id = ?", profileID).
			UpdateColumn("reputation_total", gorm.Expr("reputation_total + ?", points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *ProfileRepoImpl) GetLeaderboard(ctx context.Context, limit int) ([]*model.Profile, error) {
	var profiles []*model.Profile
	err := s.db.WithContext(ctx).
		Order("reputation_total DESC, id ASC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
