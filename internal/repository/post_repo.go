package repository

import (
	"context"
	"errors"

	"Terrace/internal/model"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	// GetFeed 返回某个分区的帖子；viewerID 非 0 时作者本人能看到自己被隐藏的帖子
	GetFeed(ctx context.Context, scope string, targetID uint64, viewerID uint64) ([]*model.Post, error)
	// GetHiddenPosts 审核队列视角，只看被隐藏的帖子
	GetHiddenPosts(ctx context.Context, limit, offset int) ([]*model.Post, error)
	ReconcileReportCounts(ctx context.Context) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) GetFeed(ctx context.Context, scope string, targetID uint64, viewerID uint64) ([]*model.Post, error) {
	query := s.db.WithContext(ctx).Where("scope = ?", scope)

	switch scope {
	case model.PostScopeTeamRoom:
		query = query.Where("team_id = ?", targetID)
	case model.PostScopeMatchThread:
		query = query.Where("match_id = ?", targetID)
	}

	if viewerID != 0 {
		query = query.Where("is_hidden = ? OR author_id = ?", false, viewerID)
	} else {
		query = query.Where("is_hidden = ?", false)
	}

	var posts []*model.Post
	err := query.Order("created_at DESC").Limit(200).Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) GetHiddenPosts(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("is_hidden = ?", true).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ReconcileReportCounts 用 reports 表回填 report_count，修正漂移
func (s *PostRepoImpl) ReconcileReportCounts(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(
		"UPDATE posts SET report_count = (SELECT COUNT(*) FROM reports WHERE reports.post_id = posts.id)",
	).Error
}
