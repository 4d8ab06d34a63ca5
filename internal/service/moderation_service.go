package service

import (
	"Terrace/internal/api/dto"
	"Terrace/internal/model"
	"Terrace/internal/pkg/consts"
	"Terrace/internal/pkg/es"
	"Terrace/internal/pkg/kafka"
	"Terrace/internal/pkg/mongo"
	"Terrace/internal/pkg/redis"
	"Terrace/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"time"
)

const (
	reportLockExpiration = 5 * time.Second
	reportQueueLimit     = 100
	noticePageSize       = 20
)

type ModerationService interface {
	SubmitReport(ctx context.Context, reporterID, postID uint64, reason string) error
	GetReportQueue(ctx context.Context) (*dto.ReportQueueDTO, error)
	ClaimReport(ctx context.Context, reviewerID, reportID uint64) error
	ReviewReport(ctx context.Context, reviewerID, reportID uint64, decision, notes string) (*dto.ReviewResultDTO, error)
	GetNotices(ctx context.Context, userID uint64, page int) ([]*dto.NoticeDTO, error)
	MarkNoticeRead(ctx context.Context, userID uint64, noticeID string) error
	MarkAllNoticesRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type moderationServiceImpl struct {
	reportRepo  repository.ReportRepo
	postRepo    repository.PostRepo
	profileRepo repository.ProfileRepo
	noticeRepo  mongo.NoticeRepo
	esRepo      es.PostRepo
	producer    kafka.ModerationProducer
}

func NewModerationService(
	reportRepo repository.ReportRepo,
	postRepo repository.PostRepo,
	profileRepo repository.ProfileRepo,
	noticeRepo mongo.NoticeRepo,
	esRepo es.PostRepo,
	producer kafka.ModerationProducer,
) ModerationService {
	return &moderationServiceImpl{
		reportRepo:  reportRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
		noticeRepo:  noticeRepo,
		esRepo:      esRepo,
		producer:    producer,
	}
}

func (s *moderationServiceImpl) SubmitReport(ctx context.Context, reporterID, postID uint64, reason string) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if post.IsHidden {
		return ErrPostNotFound
	}

	// 同一人对同一帖的并发提交先在 redis 上抢锁快速失败，唯一索引兜底
	lockKey := consts.ReportLock + strconv.FormatUint(reporterID, 10) + ":" + strconv.FormatUint(postID, 10)
	locked, err := redis.TryLock(ctx, lockKey, reporterID, reportLockExpiration, 0)
	if err == nil && !locked {
		return ErrReportDuplicate
	}
	defer redis.UnLock(ctx, lockKey, reporterID)

	report := &model.Report{
		ReporterID: reporterID,
		PostID:     postID,
		Reason:     reason,
		Status:     model.ReportStatusOpen,
	}
	if err = s.reportRepo.CreateReport(ctx, report); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return ErrReportDuplicate
		}
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	s.publishEvent(ctx, &kafka.ModerationEvent{
		EventType: kafka.EventReportSubmitted,
		ReportID:  report.ID,
		PostID:    postID,
	})
	return nil
}

// GetReportQueue 三个分组各自限量查询，避免积压的终态举报把待处理的挤出视图
func (s *moderationServiceImpl) GetReportQueue(ctx context.Context) (*dto.ReportQueueDTO, error) {
	open, err := s.reportRepo.GetReportQueue(ctx, []string{model.ReportStatusOpen}, reportQueueLimit)
	if err != nil {
		return nil, err
	}
	reviewing, err := s.reportRepo.GetReportQueue(ctx, []string{model.ReportStatusReviewing}, reportQueueLimit)
	if err != nil {
		return nil, err
	}
	terminal, err := s.reportRepo.GetReportQueue(ctx,
		[]string{model.ReportStatusResolved, model.ReportStatusDismissed}, reportQueueLimit)
	if err != nil {
		return nil, err
	}

	return &dto.ReportQueueDTO{
		Flagged:       toReportDTOs(open),
		PendingReview: toReportDTOs(reviewing),
		Resolved:      toReportDTOs(terminal),
	}, nil
}

func toReportDTOs(reports []*model.Report) []*dto.ReportDTO {
	result := make([]*dto.ReportDTO, 0, len(reports))
	for _, report := range reports {
		item := &dto.ReportDTO{
			ID:         report.ID,
			ReporterID: report.ReporterID,
			PostID:     report.PostID,
			Reason:     report.Reason,
			Status:     report.Status,
			CreatedAt:  report.CreatedAt.Format(time.RFC3339),
		}
		if report.ReviewerID != nil {
			item.ReviewerID = *report.ReviewerID
		}
		result = append(result, item)
	}
	return result
}

func (s *moderationServiceImpl) ClaimReport(ctx context.Context, reviewerID, reportID uint64) error {
	err := s.reportRepo.ClaimReport(ctx, reportID, reviewerID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrReportNotFound
	case errors.Is(err, repository.ErrNotReviewable):
		return ErrReportReviewed
	}
	return err
}

func (s *moderationServiceImpl) ReviewReport(ctx context.Context, reviewerID, reportID uint64, decision, notes string) (*dto.ReviewResultDTO, error) {
	if decision != model.ReviewDecisionConfirmed && decision != model.ReviewDecisionDismissed {
		return nil, ErrParamInvalid
	}

	outcome, err := s.reportRepo.ReviewReport(ctx, reportID, reviewerID, decision, notes)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrReportNotFound
		case errors.Is(err, repository.ErrNotReviewable):
			return nil, ErrReportReviewed
		case errors.Is(err, repository.ErrAuthorMissing):
			return nil, UnExpectedError
		}
		return nil, err
	}

	// 事务已提交，下面都是尽力而为的旁路动作
	s.settleReview(ctx, outcome)

	return &dto.ReviewResultDTO{
		ReportID:        outcome.ReportID,
		Decision:        outcome.Decision,
		ActionTaken:     outcome.ActionTaken,
		TargetProfileID: outcome.TargetProfileID,
		StrikeCount:     outcome.StrikeCount,
		ModerationState: outcome.ModerationState,
	}, nil
}

func (s *moderationServiceImpl) settleReview(ctx context.Context, outcome *repository.ReviewOutcome) {
	if outcome.Decision == model.ReviewDecisionDismissed {
		s.sendNotice(ctx, &mongo.NoticeModel{
			ReceiverID: outcome.ReporterID,
			Type:       mongo.NoticeTypeReportDismissed,
			ReportID:   outcome.ReportID,
			PostID:     outcome.PostID,
			Content:    "你的举报经审核未发现违规",
			CreatedAt:  time.Now(),
		})
		s.publishEvent(ctx, &kafka.ModerationEvent{
			EventType: kafka.EventReportDismissed,
			ReportID:  outcome.ReportID,
			PostID:    outcome.PostID,
		})
		return
	}

	if err := s.profileRepo.AddReputation(ctx, outcome.TargetProfileID, model.ReputationEventReportConfirmed, -20); err != nil {
		log.WarnContext(ctx, "deduct reputation failed", "profile_id", outcome.TargetProfileID, "err", err)
	}

	if s.esRepo != nil {
		if err := s.esRepo.HidePost(ctx, outcome.PostID); err != nil {
			log.WarnContext(ctx, "hide post in index failed", "post_id", outcome.PostID, "err", err)
		}
	}

	s.sendNotice(ctx, &mongo.NoticeModel{
		ReceiverID: outcome.ReporterID,
		Type:       mongo.NoticeTypeReportResolved,
		ReportID:   outcome.ReportID,
		PostID:     outcome.PostID,
		Content:    "你的举报已被确认，内容已处理",
		CreatedAt:  time.Now(),
	})
	s.sendNotice(ctx, &mongo.NoticeModel{
		ReceiverID: outcome.TargetProfileID,
		Type:       mongo.NoticeTypeStrikeApplied,
		ReportID:   outcome.ReportID,
		PostID:     outcome.PostID,
		Content:    fmt.Sprintf("你的内容因违规被移除，账号当前状态：%s", outcome.ModerationState),
		Payload: map[string]any{
			"strike_count":     outcome.StrikeCount,
			"moderation_state": outcome.ModerationState,
		},
		CreatedAt: time.Now(),
	})

	s.publishEvent(ctx, &kafka.ModerationEvent{
		EventType:       kafka.EventReportResolved,
		ReportID:        outcome.ReportID,
		PostID:          outcome.PostID,
		TargetProfileID: outcome.TargetProfileID,
		ActionTaken:     outcome.ActionTaken,
		StrikeCount:     outcome.StrikeCount,
	})
}

func (s *moderationServiceImpl) GetNotices(ctx context.Context, userID uint64, page int) ([]*dto.NoticeDTO, error) {
	if page < 0 {
		page = 0
	}
	list, err := s.noticeRepo.GetNoticeList(ctx, userID, noticePageSize, int64(page)*noticePageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoticeDTO, 0, len(list))
	for _, msg := range list {
		result = append(result, &dto.NoticeDTO{
			ID:        msg.ID.Hex(),
			Type:      msg.Type,
			ReportID:  msg.ReportID,
			PostID:    msg.PostID,
			Content:   msg.Content,
			Payload:   msg.Payload,
			IsRead:    msg.IsRead,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *moderationServiceImpl) MarkNoticeRead(ctx context.Context, userID uint64, noticeID string) error {
	return s.noticeRepo.MarkAsRead(ctx, userID, noticeID)
}

func (s *moderationServiceImpl) MarkAllNoticesRead(ctx context.Context, userID uint64) error {
	return s.noticeRepo.MarkAllAsRead(ctx, userID)
}

func (s *moderationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.noticeRepo.GetUnreadCount(ctx, userID)
}

func (s *moderationServiceImpl) sendNotice(ctx context.Context, msg *mongo.NoticeModel) {
	if s.noticeRepo == nil {
		return
	}
	if err := s.noticeRepo.CreateNotice(ctx, msg); err != nil {
		log.WarnContext(ctx, "send moderation notice failed", "receiver_id", msg.ReceiverID, "err", err)
	}
}

func (s *moderationServiceImpl) publishEvent(ctx context.Context, event *kafka.ModerationEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishModerationEvent(ctx, event); err != nil {
		log.WarnContext(ctx, "publish moderation event failed", "report_id", event.ReportID, "err", err)
	}
}
