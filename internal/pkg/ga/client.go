package ga

import (
	"Lantern/internal/api/config"
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

var (
	// ErrUnavailable 网络、超时或非 2xx 响应
	ErrUnavailable = errors.New("ga: provider unavailable")
	// ErrBadResponse 响应可达但内容无法解析
	ErrBadResponse = errors.New("ga: unexpected response")
)

// Client GA4 实时报表客户端。每个方法对应一次独立的维度查询，
// 互相之间没有依赖，单个查询失败不影响其他查询
type Client interface {
	FetchActiveUsers(ctx context.Context) (users5m int64, users30m int64, err error)
	FetchUsersByCity(ctx context.Context) ([]CityActiveUsers, error)
	FetchUsersByDevice(ctx context.Context) ([]DeviceActiveUsers, error)
	FetchViewsByPage(ctx context.Context) ([]PageViews, error)
}

type restClient struct {
	http       *resty.Client
	propertyID string
}

func NewClient(cfg *config.GAConfig) Client {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	return &restClient{
		http:       client,
		propertyID: cfg.PropertyID,
	}
}

// runReport 发起一次 runRealtimeReport 查询。实时数据不缓存、不重试
func (s *restClient) runReport(ctx context.Context, req *runRealtimeReportRequest) (*runRealtimeReportResponse, error) {
	var report runRealtimeReportResponse

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&report).
		Post("/properties/" + s.propertyID + ":runRealtimeReport")
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	if resp.IsError() {
		return nil, errors.Wrapf(ErrUnavailable, "status %d: %s", resp.StatusCode(), resp.String())
	}

	return &report, nil
}

// FetchActiveUsers 查询最近 5 分钟 / 30 分钟的总活跃用户数。
// GA4 Standard 的实时分钟范围上限是 29 分钟
func (s *restClient) FetchActiveUsers(ctx context.Context) (int64, int64, error) {
	users5m, err := s.fetchTotalActiveUsers(ctx, 5)
	if err != nil {
		return 0, 0, err
	}
	users30m, err := s.fetchTotalActiveUsers(ctx, 29)
	if err != nil {
		return 0, 0, err
	}
	return users5m, users30m, nil
}

func (s *restClient) fetchTotalActiveUsers(ctx context.Context, minutesAgo int) (int64, error) {
	report, err := s.runReport(ctx, &runRealtimeReportRequest{
		Metrics:      []metric{{Name: "activeUsers"}},
		MinuteRanges: []minuteRange{{StartMinutesAgo: minutesAgo}},
	})
	if err != nil {
		return 0, err
	}

	if len(report.Rows) == 0 {
		return 0, nil
	}
	return metricValue(report.Rows[0])
}

// FetchUsersByCity 按城市维度分别查询 5 分钟 / 30 分钟窗口，合并为一份列表
func (s *restClient) FetchUsersByCity(ctx context.Context) ([]CityActiveUsers, error) {
	rows5m, err := s.fetchCityWindow(ctx, 5)
	if err != nil {
		return nil, err
	}
	rows30m, err := s.fetchCityWindow(ctx, 29)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*CityActiveUsers)
	for city, users := range rows5m {
		merged[city] = &CityActiveUsers{City: city, Users5m: users}
	}
	for city, users := range rows30m {
		if row, ok := merged[city]; ok {
			row.Users30m = users
		} else {
			merged[city] = &CityActiveUsers{City: city, Users30m: users}
		}
	}

	result := make([]CityActiveUsers, 0, len(merged))
	for _, row := range merged {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Users30m > result[j].Users30m
	})
	return result, nil
}

func (s *restClient) fetchCityWindow(ctx context.Context, minutesAgo int) (map[string]int64, error) {
	report, err := s.runReport(ctx, &runRealtimeReportRequest{
		Dimensions:   []dimension{{Name: "city"}},
		Metrics:      []metric{{Name: "activeUsers"}},
		MinuteRanges: []minuteRange{{StartMinutesAgo: minutesAgo}},
	})
	if err != nil {
		return nil, err
	}

	rows := make(map[string]int64, len(report.Rows))
	for _, row := range report.Rows {
		city, users, err := dimensionMetricValue(row)
		if err != nil {
			return nil, err
		}
		rows[city] = users
	}
	return rows, nil
}

func (s *restClient) FetchUsersByDevice(ctx context.Context) ([]DeviceActiveUsers, error) {
	report, err := s.runReport(ctx, &runRealtimeReportRequest{
		Dimensions: []dimension{{Name: "deviceCategory"}},
		Metrics:    []metric{{Name: "activeUsers"}},
	})
	if err != nil {
		return nil, err
	}

	result := make([]DeviceActiveUsers, 0, len(report.Rows))
	for _, row := range report.Rows {
		device, users, err := dimensionMetricValue(row)
		if err != nil {
			return nil, err
		}
		result = append(result, DeviceActiveUsers{Device: device, Users: users})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Users > result[j].Users
	})
	return result, nil
}

// FetchViewsByPage 实时 API 里页面浏览要走 unifiedScreenName 维度
func (s *restClient) FetchViewsByPage(ctx context.Context) ([]PageViews, error) {
	report, err := s.runReport(ctx, &runRealtimeReportRequest{
		Dimensions: []dimension{{Name: "unifiedScreenName"}},
		Metrics:    []metric{{Name: "screenPageViews"}},
	})
	if err != nil {
		return nil, err
	}

	result := make([]PageViews, 0, len(report.Rows))
	for _, row := range report.Rows {
		page, views, err := dimensionMetricValue(row)
		if err != nil {
			return nil, err
		}
		result = append(result, PageViews{Page: page, Views: views})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Views > result[j].Views
	})
	return result, nil
}

func metricValue(row reportRow) (int64, error) {
	if len(row.MetricValues) == 0 {
		return 0, errors.Wrap(ErrBadResponse, "row without metric values")
	}
	value, err := strconv.ParseInt(row.MetricValues[0].Value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadResponse, "metric value %q", row.MetricValues[0].Value)
	}
	return value, nil
}

func dimensionMetricValue(row reportRow) (string, int64, error) {
	if len(row.DimensionValues) == 0 {
		return "", 0, errors.Wrap(ErrBadResponse, "row without dimension values")
	}
	value, err := metricValue(row)
	if err != nil {
		return "", 0, err
	}
	return row.DimensionValues[0].Value, value, nil
}
