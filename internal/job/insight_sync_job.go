package job

import (
	"Lantern/internal/api/config"
	"Lantern/internal/pkg/consts"
	"Lantern/internal/pkg/logger"
	"Lantern/internal/pkg/redis"
	"Lantern/internal/pkg/util"
	"Lantern/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// InsightSyncJob 定时把粉丝页日报同步进库。同步本身是幂等的，
// 锁只是避免多实例同时打 Graph API
type InsightSyncJob struct {
	insightSvc service.InsightService
	syncCfg    config.SyncConfig
}

func NewInsightSyncJob(insightSvc service.InsightService, syncCfg config.SyncConfig) *InsightSyncJob {
	return &InsightSyncJob{
		insightSvc: insightSvc,
		syncCfg:    syncCfg,
	}
}

func (s *InsightSyncJob) Run() {
	traceID := "job-insight-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockTTL := time.Duration(s.syncCfg.LockSeconds) * time.Second
	locked, err := redis.TryLock(ctx, consts.InsightSyncLockKey, traceID, lockTTL, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire insight sync lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "insight sync already running, skip")
		return
	}
	defer redis.UnLock(ctx, consts.InsightSyncLockKey, traceID)

	today := util.GetMidnight(time.Now())
	since := today.AddDate(0, 0, -s.syncCfg.BackfillDays)
	until := today.AddDate(0, 0, -1)

	result, err := s.insightSvc.RefreshInsights(ctx, since, until)
	if err != nil {
		log.ErrorContext(ctx, "scheduled insight sync failed", "err", err)
		return
	}

	log.InfoContext(ctx, "scheduled insight sync done",
		"updated", result.Updated,
		"failed_types", result.FailedTypes)
}
