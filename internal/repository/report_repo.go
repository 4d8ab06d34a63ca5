package repository

import (
	"context"
	"strings"
	"time"

	"Terrace/internal/model"
	"Terrace/internal/pkg/moderation"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ReviewOutcome 裁决事务提交后的落库结果，供上层发通知与积分结算
type ReviewOutcome struct {
	ReportID        uint64
	PostID          uint64
	Decision        string
	ActionTaken     string
	TargetProfileID uint64
	StrikeCount     int
	ModerationState string
	ReporterID      uint64
}

type ReportRepo interface {
	// CreateReport 同一事务内写举报并自增帖子的 report_count
	CreateReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, reportID uint64) (*model.Report, error)
	GetReportQueue(ctx context.Context, statuses []string, limit int) ([]*model.Report, error)
	// ClaimReport open -> reviewing 的条件更新，没抢到返回 ErrNotReviewable
	ClaimReport(ctx context.Context, reportID, reviewerID uint64) error
	// ReviewReport 终态裁决：状态机推进、记违规、隐藏帖子、写审计，全部同事务
	ReviewReport(ctx context.Context, reportID, reviewerID uint64, decision, notes string) (*ReviewOutcome, error)
	// RequeueStaleReviews 把被认领后长期未裁决的举报放回 open
	RequeueStaleReviews(ctx context.Context, olderThan time.Time) (int64, error)
}

type ReportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &ReportRepoImpl{db}
}

func (s *ReportRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Post{}).Where("id = ?", report.PostID).
			UpdateColumn("report_count", gorm.Expr("report_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(report).Error
	})
	if isDuplicateError(err) {
		return ErrAlreadyExists
	}
	return err
}

func (s *ReportRepoImpl) GetReport(ctx context.Context, reportID uint64) (*model.Report, error) {
	report := &model.Report{}
	err := s.db.WithContext(ctx).Take(report, reportID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	return report, err
}

func (s *ReportRepoImpl) GetReportQueue(ctx context.Context, statuses []string, limit int) ([]*model.Report, error) {
	var reports []*model.Report
	err := s.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (s *ReportRepoImpl) ClaimReport(ctx context.Context, reportID, reviewerID uint64) error {
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&model.Report{}).
		Where("id = ? AND status = ?", reportID, model.ReportStatusOpen).
		Updates(map[string]interface{}{
			"status":      model.ReportStatusReviewing,
			"reviewer_id": reviewerID,
			"claimed_at":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Report{}).
			Where("id = ?", reportID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrNotReviewable
	}
	return nil
}

func (s *ReportRepoImpl) ReviewReport(ctx context.Context, reportID, reviewerID uint64, decision, notes string) (*ReviewOutcome, error) {
	outcome := &ReviewOutcome{ReportID: reportID, Decision: decision}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		report := &model.Report{}
		if err := tx.Take(report, reportID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		outcome.PostID = report.PostID
		outcome.ReporterID = report.ReporterID

		target := model.ReportStatusDismissed
		if decision == model.ReviewDecisionConfirmed {
			target = model.ReportStatusResolved
		}

		// 只有 open/reviewing 能被推进；另一个审核员先提交时这里影响 0 行
		now := time.Now()
		res := tx.Model(&model.Report{}).
			Where("id = ? AND status IN ?", reportID,
				[]string{model.ReportStatusOpen, model.ReportStatusReviewing}).
			Updates(map[string]interface{}{
				"status":      target,
				"reviewer_id": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotReviewable
		}

		audit := &model.ModerationReview{
			ReportID:   reportID,
			PostID:     report.PostID,
			ReviewerID: reviewerID,
			Decision:   decision,
			Notes:      notes,
		}

		if decision == model.ReviewDecisionDismissed {
			audit.ActionTaken = model.ModerationActionNone
			return tx.Create(audit).Error
		}

		post := &model.Post{}
		if err := tx.Take(post, report.PostID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		if post.AuthorID == 0 {
			return ErrAuthorMissing
		}

		profile := &model.Profile{}
		if err := tx.Take(profile, post.AuthorID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrAuthorMissing
			}
			return err
		}

		newStrikes := profile.StrikeCount + 1
		newState := moderation.ApplyStrike(profile.StrikeCount)
		if err := tx.Model(&model.Profile{}).Where("id = ?", profile.ID).
			Updates(map[string]interface{}{
				"strike_count":     newStrikes,
				"moderation_state": newState,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Post{}).Where("id = ?", post.ID).
			Updates(map[string]interface{}{
				"is_hidden":                true,
				"hidden_reason":            model.HiddenReasonConfirmedViolation,
				"strike_linked_profile_id": profile.ID,
			}).Error; err != nil {
			return err
		}

		audit.ActionTaken = newState
		audit.TargetProfileID = &profile.ID
		audit.StrikeCountAfter = &newStrikes

		outcome.ActionTaken = newState
		outcome.TargetProfileID = profile.ID
		outcome.StrikeCount = newStrikes
		outcome.ModerationState = newState

		return tx.Create(audit).Error
	})
	if err != nil {
		return nil, err
	}
	if outcome.ActionTaken == "" {
		outcome.ActionTaken = model.ModerationActionNone
	}
	return outcome, nil
}

func (s *ReportRepoImpl) RequeueStaleReviews(ctx context.Context, olderThan time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.Report{}).
		Where("status = ? AND claimed_at < ?", model.ReportStatusReviewing, olderThan).
		Updates(map[string]interface{}{
			"status":      model.ReportStatusOpen,
			"reviewer_id": nil,
			"claimed_at":  nil,
		})
	return res.RowsAffected, res.Error
}

// isDuplicateError MySQL 1062 唯一键冲突
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		return mysqlErr.Number == 1062
	}
	// sqlite 测试环境下的唯一约束同样按重复处理
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
