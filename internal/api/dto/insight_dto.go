package dto

// DailyInsightsDTO 粉丝页"今日"四项指标，顺序固定：Views、Viewers、Visits、Follows。
// 某类型还没有记录时对应值为 0
type DailyInsightsDTO struct {
	Views   int64 `json:"fb_views"`
	Viewers int64 `json:"fb_viewers"`
	Visits  int64 `json:"fb_visits"`
	Follows int64 `json:"fb_follows"`
}

// InsightRowDTO 历史窗口里的一行
type InsightRowDTO struct {
	Date       string `json:"date"` // 2026-01-07
	ReportType string `json:"report_type"`
	Value      int64  `json:"value"`
}

// InsightHistoryDTO 历史窗口返回包装，按日期升序
type InsightHistoryDTO struct {
	Since string           `json:"since"`
	Until string           `json:"until"`
	List  []*InsightRowDTO `json:"list"`
}

// SyncResultDTO 一轮同步的结果汇总
type SyncResultDTO struct {
	Updated     int      `json:"updated"`      // 成功写入/覆盖的记录数
	FailedTypes []string `json:"failed_types"` // 本轮失败的报表类型
}

// InsightWindowRequest 可选的日期窗口参数
type InsightWindowRequest struct {
	Since string `form:"since" binding:"omitempty,datetime=2006-01-02"`
	Until string `form:"until" binding:"omitempty,datetime=2006-01-02"`
}
