package repository

import (
	"context"
	"errors"
	"time"

	"Terrace/internal/model"

	"gorm.io/gorm"
)

// VoteResult 一次投票落库后的权威计数
type VoteResult struct {
	Upvotes   int64
	Downvotes int64
	Created   bool
}

type PostActionRepo interface {
	// ApplyVote 写入或原地更新 (post_id, user_id) 的唯一一票，
	// 并在同一事务内按全量票集重算计数、回写帖子
	ApplyVote(ctx context.Context, postID, userID uint64, value int) (*VoteResult, error)

	CreateReaction(ctx context.Context, reaction *model.PostReaction) error
	DeleteReaction(ctx context.Context, postID, userID uint64, kind string) error
	CheckReactionExists(ctx context.Context, postID, userID uint64, kind string) (bool, error)
	GetReactionCounts(ctx context.Context, postID uint64) (map[string]int64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

func (s *PostActionRepoImpl) ApplyVote(ctx context.Context, postID, userID uint64, value int) (*VoteResult, error) {
	result := &VoteResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PostVote
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Take(&existing).Error
		switch {
		case err == nil:
			if existing.Value != value {
				if err := tx.Model(&model.PostVote{}).
					Where("post_id = ? AND user_id = ?", postID, userID).
					Updates(map[string]interface{}{"value": value, "updated_at": time.Now()}).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			result.Created = true
			if err := tx.Create(&model.PostVote{PostID: postID, UserID: userID, Value: value}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		// 计数始终从全量票集重算，不做增量，避免部分失败造成漂移
		if err := tx.Model(&model.PostVote{}).
			Where("post_id = ? AND value = ?", postID, 1).
			Count(&result.Upvotes).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PostVote{}).
			Where("post_id = ? AND value = ?", postID, -1).
			Count(&result.Downvotes).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Post{}).Where("id = ?", postID).Updates(map[string]interface{}{
			"upvotes":   result.Upvotes,
			"downvotes": result.Downvotes,
			"score":     result.Upvotes - result.Downvotes,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostActionRepoImpl) CreateReaction(ctx context.Context, reaction *model.PostReaction) error {
	return s.db.WithContext(ctx).Create(reaction).Error
}

func (s *PostActionRepoImpl) DeleteReaction(ctx context.Context, postID, userID uint64, kind string) error {
	return s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ? AND reaction = ?", postID, userID, kind).
		Delete(&model.PostReaction{}).Error
}

func (s *PostActionRepoImpl) CheckReactionExists(ctx context.Context, postID, userID uint64, kind string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostReaction{}).
		Where("post_id = ? AND user_id = ? AND reaction = ?", postID, userID, kind).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) GetReactionCounts(ctx context.Context, postID uint64) (map[string]int64, error) {
	type row struct {
		Reaction string
		Total    int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&model.PostReaction{}).
		Select("reaction, COUNT(*) AS total").
		Where("post_id = ?", postID).
		Group("reaction").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Reaction] = r.Total
	}
	return counts, nil
}
