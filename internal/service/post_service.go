package service

import (
	"Terrace/internal/api/config"
	"Terrace/internal/api/dto"
	"Terrace/internal/model"
	"Terrace/internal/pkg/es"
	"Terrace/internal/pkg/feed"
	"Terrace/internal/pkg/moderation"
	"Terrace/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
)

const defaultSearchSize = 20

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error)
	GetFeed(ctx context.Context, viewerID uint64, query *dto.FeedQueryDTO) ([]*dto.PostDTO, error)
	SearchPosts(ctx context.Context, query *dto.PostSearchDTO) ([]*dto.PostDTO, error)
	GetHiddenPosts(ctx context.Context, limit, offset int) ([]*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	profileRepo repository.ProfileRepo
	teamRepo    repository.TeamRepo
	esRepo      es.PostRepo
	actionSvc   PostActionService
}

func NewPostService(
	postRepo repository.PostRepo,
	profileRepo repository.ProfileRepo,
	teamRepo repository.TeamRepo,
	esRepo es.PostRepo,
	actionSvc PostActionService,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		teamRepo:    teamRepo,
		esRepo:      esRepo,
		actionSvc:   actionSvc,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if moderation.IsPostingBlocked(profile.ModerationState) {
		return nil, ErrAccountRestricted
	}

	if err = s.validateScopeTarget(ctx, req); err != nil {
		return nil, err
	}

	mediaCfg := config.Cfg.Media
	mediaURL, err := moderation.ValidateMediaURL(req.MediaURL, mediaCfg.RequireHTTPS, mediaCfg.TrustedHosts)
	if err != nil {
		return nil, ErrMediaInvalid
	}

	// 客户端预筛命中只会让内容更严，绝不放宽服务端判定
	hidden := req.AutoHidden || moderation.ShouldAutoHide(req.Body, mediaURL)

	post := &model.Post{
		AuthorID: userID,
		Scope:    req.Scope,
		TeamID:   req.TeamID,
		MatchID:  req.MatchID,
		Body:     req.Body,
		MediaURL: mediaURL,
		IsHidden: hidden,
	}
	if hidden {
		post.HiddenReason = model.HiddenReasonAutoFilter
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	// 被过滤的帖子不进声望也不进索引
	if !hidden {
		if err := s.profileRepo.AddReputation(ctx, userID, model.ReputationEventPostCreated, 5); err != nil {
			log.WarnContext(ctx, "award post reputation failed", "user_id", userID, "err", err)
		}
		s.indexPost(ctx, post)
	}

	return toPostDTO(post, nil), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	// 被隐藏的帖子只有作者自己可见
	if post.IsHidden && post.AuthorID != viewerID {
		return nil, ErrPostNotFound
	}

	counts, err := s.actionSvc.GetReactionCounts(ctx, postID)
	if err != nil {
		log.WarnContext(ctx, "load reaction counts failed", "post_id", postID, "err", err)
		counts = nil
	}
	return toPostDTO(post, counts), nil
}

func (s *postServiceImpl) GetFeed(ctx context.Context, viewerID uint64, query *dto.FeedQueryDTO) ([]*dto.PostDTO, error) {
	if err := s.checkFeedTarget(ctx, query); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetFeed(ctx, query.Scope, query.TargetID, viewerID)
	if err != nil {
		return nil, err
	}

	ranked := feed.Rank(posts)
	result := make([]*dto.PostDTO, 0, len(ranked))
	for _, post := range ranked {
		counts, err := s.actionSvc.GetReactionCounts(ctx, post.ID)
		if err != nil {
			counts = nil
		}
		result = append(result, toPostDTO(post, counts))
	}
	return result, nil
}

func (s *postServiceImpl) SearchPosts(ctx context.Context, query *dto.PostSearchDTO) ([]*dto.PostDTO, error) {
	size := query.Size
	if size <= 0 {
		size = defaultSearchSize
	}
	from := query.Page * size

	docs, err := s.esRepo.SearchPosts(ctx, query.Keyword, from, size)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return []*dto.PostDTO{}, nil
	}

	// 索引只做召回，计数和可见性以库内数据为准
	ids := make([]uint64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	posts, err := s.postRepo.GetPostByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}

	result := make([]*dto.PostDTO, 0, len(docs))
	for _, doc := range docs {
		post, ok := byID[doc.ID]
		if !ok || post.IsHidden {
			continue
		}
		result = append(result, toPostDTO(post, nil))
	}
	return result, nil
}

func (s *postServiceImpl) GetHiddenPosts(ctx context.Context, limit, offset int) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetHiddenPosts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostDTO(post, nil))
	}
	return result, nil
}

func (s *postServiceImpl) validateScopeTarget(ctx context.Context, req *dto.PostCreateDTO) error {
	switch req.Scope {
	case model.PostScopeTeamRoom:
		if req.TeamID == nil {
			return ErrParamInvalid
		}
		if _, err := s.teamRepo.GetTeam(ctx, *req.TeamID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
	case model.PostScopeMatchThread:
		if req.MatchID == nil {
			return ErrParamInvalid
		}
		if _, err := s.teamRepo.GetMatch(ctx, *req.MatchID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrMatchNotFound
			}
			return err
		}
	default:
		return ErrParamInvalid
	}
	return nil
}

func (s *postServiceImpl) checkFeedTarget(ctx context.Context, query *dto.FeedQueryDTO) error {
	switch query.Scope {
	case model.PostScopeTeamRoom:
		if _, err := s.teamRepo.GetTeam(ctx, query.TargetID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
	case model.PostScopeMatchThread:
		if _, err := s.teamRepo.GetMatch(ctx, query.TargetID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrMatchNotFound
			}
			return err
		}
	default:
		return ErrParamInvalid
	}
	return nil
}

func (s *postServiceImpl) indexPost(ctx context.Context, post *model.Post) {
	if s.esRepo == nil {
		return
	}
	doc := &es.PostES{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Scope:     post.Scope,
		TeamID:    post.TeamID,
		MatchID:   post.MatchID,
		Body:      post.Body,
		Score:     int64(post.Score),
		IsHidden:  post.IsHidden,
		CreatedAt: post.CreatedAt,
	}
	if err := s.esRepo.IndexPost(ctx, doc); err != nil {
		log.WarnContext(ctx, "index post failed", "post_id", post.ID, "err", err)
	}
}

func toPostDTO(post *model.Post, reactions map[string]int64) *dto.PostDTO {
	d := &dto.PostDTO{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Scope:     post.Scope,
		TeamID:    post.TeamID,
		MatchID:   post.MatchID,
		Body:      post.Body,
		MediaURL:  post.MediaURL,
		Upvotes:   int64(post.Upvotes),
		Downvotes: int64(post.Downvotes),
		Score:     int64(post.Score),
		IsHidden:  post.IsHidden,
		Reactions: reactions,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
	}
	if post.IsHidden {
		d.HiddenReason = post.HiddenReason
	}
	return d
}
