package ga

// GA4 Data API runRealtimeReport 的请求/响应结构，只保留用到的字段

type runRealtimeReportRequest struct {
	Dimensions   []dimension   `json:"dimensions,omitempty"`
	Metrics      []metric      `json:"metrics"`
	MinuteRanges []minuteRange `json:"minuteRanges,omitempty"`
}

type dimension struct {
	Name string `json:"name"`
}

type metric struct {
	Name string `json:"name"`
}

type minuteRange struct {
	Name            string `json:"name,omitempty"`
	StartMinutesAgo int    `json:"startMinutesAgo"`
}

type runRealtimeReportResponse struct {
	Rows []reportRow `json:"rows"`
}

type reportRow struct {
	DimensionValues []reportValue `json:"dimensionValues"`
	MetricValues    []reportValue `json:"metricValues"`
}

type reportValue struct {
	Value string `json:"value"`
}

// CityActiveUsers 单个城市两个时间窗口内的活跃用户数
type CityActiveUsers struct {
	City     string
	Users5m  int64
	Users30m int64
}

// DeviceActiveUsers 按设备类型统计的活跃用户数
type DeviceActiveUsers struct {
	Device string
	Users  int64
}

// PageViews 按页面统计的浏览量
type PageViews struct {
	Page  string
	Views int64
}
