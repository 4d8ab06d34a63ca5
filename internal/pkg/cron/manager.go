package cron

import (
	"Terrace/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	reviewRequeueJob *job.ReviewRequeueJob
	counterSyncJob   *job.CounterSyncJob
}

func NewCronManager(reviewRequeueJob *job.ReviewRequeueJob, counterSyncJob *job.CounterSyncJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		reviewRequeueJob: reviewRequeueJob,
		counterSyncJob:   counterSyncJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 5m", s.reviewRequeueJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.counterSyncJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
