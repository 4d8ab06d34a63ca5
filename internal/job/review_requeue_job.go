package job

import (
	"Terrace/internal/pkg/logger"
	"Terrace/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// StaleReviewAge 认领后超过这个时长仍未裁决的举报视为被放弃
const StaleReviewAge = 30 * time.Minute

type ReviewRequeueJob struct {
	reportRepo repository.ReportRepo
}

func NewReviewRequeueJob(reportRepo repository.ReportRepo) *ReviewRequeueJob {
	return &ReviewRequeueJob{reportRepo: reportRepo}
}

func (s *ReviewRequeueJob) Run() {
	traceID := "job-requeue-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	cutoff := time.Now().Add(-StaleReviewAge)
	count, err := s.reportRepo.RequeueStaleReviews(ctx, cutoff)
	if err != nil {
		log.ErrorContext(ctx, "requeue stale reviews error", "err", err)
		return
	}

	if count > 0 {
		log.InfoContext(ctx, "stale reviews returned to queue", "count", count)
	}
}
