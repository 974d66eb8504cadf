package cron

import (
	"Lantern/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	schedule       string
	insightSyncJob *job.InsightSyncJob
}

func NewCronManager(schedule string, insightSyncJob *job.InsightSyncJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		schedule:       schedule,
		insightSyncJob: insightSyncJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.schedule, s.insightSyncJob); err != nil {
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
