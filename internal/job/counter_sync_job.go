package job

import (
	"Terrace/internal/pkg/logger"
	"Terrace/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CounterSyncJob 对账任务：把帖子上的冗余计数和真实行数拉平
type CounterSyncJob struct {
	postRepo repository.PostRepo
}

func NewCounterSyncJob(postRepo repository.PostRepo) *CounterSyncJob {
	return &CounterSyncJob{postRepo: postRepo}
}

func (s *CounterSyncJob) Run() {
	traceID := "job-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.postRepo.ReconcileReportCounts(ctx); err != nil {
		log.ErrorContext(ctx, "reconcile report counts error", "err", err)
		return
	}

	log.InfoContext(ctx, "counter reconcile success")
}
