package repository

import (
	"Lantern/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InsightRepo interface {
	SaveOrUpdateInsight(ctx context.Context, insight *model.DailyInsight) error
	GetDailyInsights(ctx context.Context, reportTypes []string, since, until time.Time) ([]*model.DailyInsight, error)
	GetLatestByType(ctx context.Context, reportType string) (*model.DailyInsight, error)
}

type insightRepoImpl struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepo {
	return &insightRepoImpl{db: db}
}

// SaveOrUpdateInsight 采用 Upsert 逻辑。(metric, report_type, date) 已存在时
// 只覆盖 value，同步重跑不会产生重复行
func (r *insightRepoImpl) SaveOrUpdateInsight(ctx context.Context, insight *model.DailyInsight) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "metric"}, {Name: "report_type"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"value",
		}),
	}).Create(insight).Error
}

// GetDailyInsights 按日期窗口查询指标，日期升序
func (r *insightRepoImpl) GetDailyInsights(ctx context.Context, reportTypes []string, since, until time.Time) ([]*model.DailyInsight, error) {
	insights := make([]*model.DailyInsight, 0)
	result := r.db.WithContext(ctx).
		Where("report_type IN ?", reportTypes).
		Where("date >= ? AND date <= ?", since, until).
		Order("date ASC").
		Find(&insights)
	if result.Error != nil {
		return nil, result.Error
	}
	return insights, nil
}

// GetLatestByType 获取某报表类型最近的一条记录，用于仪表盘"今日"卡片。
// 没有记录时返回 nil
func (r *insightRepoImpl) GetLatestByType(ctx context.Context, reportType string) (*model.DailyInsight, error) {
	var insight model.DailyInsight
	err := r.db.WithContext(ctx).
		Where("report_type = ?", reportType).
		Order("date DESC").
		First(&insight).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insight, nil
}
