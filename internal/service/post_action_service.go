package service

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/model"
	"Terrace/internal/pkg/consts"
	"Terrace/internal/pkg/moderation"
	"Terrace/internal/pkg/redis"
	"Terrace/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/goccy/go-json"
)

const reactionCacheExpiration = 10 * time.Minute

type PostActionService interface {
	VotePost(ctx context.Context, userID, postID uint64, value int) (*dto.VoteResultDTO, error)
	AddReaction(ctx context.Context, userID, postID uint64, kind string) error
	RemoveReaction(ctx context.Context, userID, postID uint64, kind string) error
	GetReactionCounts(ctx context.Context, postID uint64) (map[string]int64, error)
}

type postActionServiceImpl struct {
	actionRepo  repository.PostActionRepo
	postRepo    repository.PostRepo
	profileRepo repository.ProfileRepo
}

func NewPostActionService(
	actionRepo repository.PostActionRepo,
	postRepo repository.PostRepo,
	profileRepo repository.ProfileRepo,
) PostActionService {
	return &postActionServiceImpl{
		actionRepo:  actionRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

func (s *postActionServiceImpl) VotePost(ctx context.Context, userID, postID uint64, value int) (*dto.VoteResultDTO, error) {
	if value != 1 && value != -1 {
		return nil, ErrParamInvalid
	}

	post, err := s.visiblePostCheck(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err = s.restrictedCheck(ctx, userID); err != nil {
		return nil, err
	}

	result, err := s.actionRepo.ApplyVote(ctx, postID, userID, value)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	// 新产生的赞成票给作者加声望，改票和自赞不加
	if result.Created && value == 1 && post.AuthorID != userID {
		if err := s.profileRepo.AddReputation(ctx, post.AuthorID, model.ReputationEventPostUpvoted, 2); err != nil {
			log.WarnContext(ctx, "award upvote reputation failed", "author_id", post.AuthorID, "err", err)
		}
	}

	return &dto.VoteResultDTO{
		Upvotes:   result.Upvotes,
		Downvotes: result.Downvotes,
		Score:     result.Upvotes - result.Downvotes,
	}, nil
}

// AddReaction 幂等：重复表态不报错也不重复计数
func (s *postActionServiceImpl) AddReaction(ctx context.Context, userID, postID uint64, kind string) error {
	if !isValidReaction(kind) {
		return ErrParamInvalid
	}

	post, err := s.visiblePostCheck(ctx, postID)
	if err != nil {
		return err
	}
	if err = s.restrictedCheck(ctx, userID); err != nil {
		return err
	}

	err = s.actionRepo.CreateReaction(ctx, &model.PostReaction{
		PostID:    postID,
		UserID:    userID,
		Reaction:  kind,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if isDuplicateError(err) {
			return nil
		}
		return err
	}

	if post.AuthorID != userID {
		if err := s.profileRepo.AddReputation(ctx, post.AuthorID, model.ReputationEventReactionReceived, 1); err != nil {
			log.WarnContext(ctx, "award reaction reputation failed", "author_id", post.AuthorID, "err", err)
		}
	}

	s.invalidateReactionCache(ctx, postID)
	return nil
}

func (s *postActionServiceImpl) RemoveReaction(ctx context.Context, userID, postID uint64, kind string) error {
	if !isValidReaction(kind) {
		return ErrParamInvalid
	}

	if _, err := s.visiblePostCheck(ctx, postID); err != nil {
		return err
	}
	if err := s.restrictedCheck(ctx, userID); err != nil {
		return err
	}

	if err := s.actionRepo.DeleteReaction(ctx, postID, userID, kind); err != nil {
		return err
	}

	s.invalidateReactionCache(ctx, postID)
	return nil
}

// GetReactionCounts 读侧先查缓存，未命中回源后写回
func (s *postActionServiceImpl) GetReactionCounts(ctx context.Context, postID uint64) (map[string]int64, error) {
	key := consts.PostReactionKey + strconv.FormatUint(postID, 10)
	cached, err := redis.GetValue(ctx, key)
	if err == nil {
		counts := make(map[string]int64)
		if err = json.Unmarshal([]byte(cached), &counts); err == nil {
			return counts, nil
		}
	}

	counts, err := s.actionRepo.GetReactionCounts(ctx, postID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(counts); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(payload), reactionCacheExpiration)
	}
	return counts, nil
}

func (s *postActionServiceImpl) visiblePostCheck(ctx context.Context, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.IsHidden {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postActionServiceImpl) restrictedCheck(ctx context.Context, userID uint64) error {
	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if moderation.IsPostingBlocked(profile.ModerationState) {
		return ErrAccountRestricted
	}
	return nil
}

func (s *postActionServiceImpl) invalidateReactionCache(ctx context.Context, postID uint64) {
	key := consts.PostReactionKey + strconv.FormatUint(postID, 10)
	if err := redis.Del(ctx, key); err != nil {
		log.WarnContext(ctx, "invalidate reaction cache failed", "post_id", postID, "err", err)
	}
}

func isValidReaction(kind string) bool {
	for _, k := range model.ReactionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	if errors.Is(err, repository.ErrAlreadyExists) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
