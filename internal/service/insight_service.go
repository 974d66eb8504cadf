package service

import (
	"Lantern/internal/api/dto"
	"Lantern/internal/model"
	"Lantern/internal/pkg/facebook"
	"Lantern/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// InsightService 粉丝页日报的读模型与同步入口。
// 持久层本身就是外部数据源的读穿缓存，这里不再加内存缓存
type InsightService interface {
	// GetDailyInsights 取每个报表类型最近一条记录，组装"今日"卡片
	GetDailyInsights(ctx context.Context) (*dto.DailyInsightsDTO, error)
	// GetInsightHistory 按日期窗口查询历史记录
	GetInsightHistory(ctx context.Context, since, until time.Time) (*dto.InsightHistoryDTO, error)
	// RefreshInsights 从 Graph API 拉取窗口内的数值并逐条 Upsert。
	// 单个报表类型失败只记入 FailedTypes，不中断其他类型；
	// 对同一窗口重复执行不会改变最终状态
	RefreshInsights(ctx context.Context, since, until time.Time) (*dto.SyncResultDTO, error)
}

type insightServiceImpl struct {
	insightRepo repository.InsightRepo
	fbClient    facebook.Client
}

func NewInsightService(insightRepo repository.InsightRepo, fbClient facebook.Client) InsightService {
	return &insightServiceImpl{
		insightRepo: insightRepo,
		fbClient:    fbClient,
	}
}

func (s *insightServiceImpl) GetDailyInsights(ctx context.Context) (*dto.DailyInsightsDTO, error) {
	result := &dto.DailyInsightsDTO{}
	for _, reportType := range model.ReportTypeOrder {
		latest, err := s.insightRepo.GetLatestByType(ctx, reportType)
		if err != nil {
			log.ErrorContext(ctx, "query latest insight failed", "report_type", reportType, "err", err)
			return nil, ErrStorageUnavailable
		}
		if latest == nil {
			continue
		}
		switch reportType {
		case model.ReportTypeViews:
			result.Views = latest.Value
		case model.ReportTypeViewers:
			result.Viewers = latest.Value
		case model.ReportTypeVisits:
			result.Visits = latest.Value
		case model.ReportTypeFollows:
			result.Follows = latest.Value
		}
	}
	return result, nil
}

func (s *insightServiceImpl) GetInsightHistory(ctx context.Context, since, until time.Time) (*dto.InsightHistoryDTO, error) {
	if until.Before(since) {
		return nil, ErrWindowInvalid
	}

	rows, err := s.insightRepo.GetDailyInsights(ctx, model.ReportTypeOrder, since, until)
	if err != nil {
		log.ErrorContext(ctx, "query insight history failed", "err", err)
		return nil, ErrStorageUnavailable
	}

	result := &dto.InsightHistoryDTO{
		Since: since.Format(time.DateOnly),
		Until: until.Format(time.DateOnly),
		List:  make([]*dto.InsightRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		result.List = append(result.List, &dto.InsightRowDTO{
			Date:       row.Date.Format(time.DateOnly),
			ReportType: row.ReportType,
			Value:      row.Value,
		})
	}
	return result, nil
}

func (s *insightServiceImpl) RefreshInsights(ctx context.Context, since, until time.Time) (*dto.SyncResultDTO, error) {
	if until.Before(since) {
		return nil, ErrWindowInvalid
	}

	result := &dto.SyncResultDTO{FailedTypes: make([]string, 0)}

	for _, reportType := range model.ReportTypeOrder {
		metricName := facebook.ReportMetrics[reportType]

		values, err := s.fbClient.FetchMetric(ctx, metricName, since, until)
		if err != nil {
			log.ErrorContext(ctx, "fetch insight metric failed",
				"report_type", reportType, "metric", metricName, "err", err)
			result.FailedTypes = append(result.FailedTypes, reportType)
			continue
		}

		failed := false
		for _, value := range values {
			err = s.insightRepo.SaveOrUpdateInsight(ctx, &model.DailyInsight{
				Metric:     metricName,
				ReportType: reportType,
				Value:      value.Value,
				Date:       value.Date,
			})
			if err != nil {
				log.ErrorContext(ctx, "upsert insight failed",
					"report_type", reportType, "date", value.Date.Format(time.DateOnly), "err", err)
				failed = true
				continue
			}
			result.Updated++
		}
		if failed {
			result.FailedTypes = append(result.FailedTypes, reportType)
		}
	}

	log.InfoContext(ctx, "insight refresh finished",
		"since", since.Format(time.DateOnly),
		"until", until.Format(time.DateOnly),
		"updated", result.Updated,
		"failed_types", result.FailedTypes)
	return result, nil
}
