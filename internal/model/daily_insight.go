package model

import (
	"time"
)

// 粉丝页日报类型，取值与 Graph API 指标一一对应
const (
	ReportTypeViews   = "Views"
	ReportTypeViewers = "Viewers"
	ReportTypeVisits  = "Visits"
	ReportTypeFollows = "Follows"
)

// ReportTypeOrder 仪表盘固定的展示顺序
var ReportTypeOrder = []string{
	ReportTypeViews,
	ReportTypeViewers,
	ReportTypeVisits,
	ReportTypeFollows,
}

type DailyInsight struct {
	ID         uint64    `gorm:"primaryKey"`
	Metric     string    `gorm:"size:64;not null;index:idx_metric_type_date,unique"`
	ReportType string    `gorm:"size:16;not null;index:idx_metric_type_date,unique;column:report_type"`
	Value      int64     `gorm:"not null;default:0"`
	Date       time.Time `gorm:"not null;index:idx_metric_type_date,unique"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (DailyInsight) TableName() string {
	return "fanpage_insights_daily"
}
