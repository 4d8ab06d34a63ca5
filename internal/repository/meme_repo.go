package repository

import (
	"context"
	"errors"

	"Terrace/internal/model"

	"gorm.io/gorm"
)

type MemeRepo interface {
	GetTemplates(ctx context.Context) ([]*model.MemeTemplate, error)
	GetTemplateBySlug(ctx context.Context, slug string) (*model.MemeTemplate, error)
}

type MemeRepoImpl struct {
	db *gorm.DB
}

func NewMemeRepo(db *gorm.DB) MemeRepo {
	return &MemeRepoImpl{db}
}

func (s *MemeRepoImpl) GetTemplates(ctx context.Context) ([]*model.MemeTemplate, error) {
	var templates []*model.MemeTemplate
	err := s.db.WithContext(ctx).Order("id ASC").Find(&templates).Error
	return templates, err
}

func (s *MemeRepoImpl) GetTemplateBySlug(ctx context.Context, slug string) (*model.MemeTemplate, error) {
	template := &model.MemeTemplate{}
	err := s.db.WithContext(ctx).Where("slug = ?", slug).Take(template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return template, err
}
