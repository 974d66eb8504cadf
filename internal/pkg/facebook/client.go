package facebook

import (
	"Lantern/internal/api/config"
	"Lantern/internal/model"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

var (
	// ErrUnavailable 网络、超时或非 2xx 响应
	ErrUnavailable = errors.New("facebook: provider unavailable")
	// ErrBadResponse Graph API 返回了业务错误或无法解析的内容
	ErrBadResponse = errors.New("facebook: unexpected response")
)

// ReportMetrics 报表类型到 Graph API 指标名的映射。
// 只使用未废弃的指标（page_engaged_users 等已下线）
var ReportMetrics = map[string]string{
	model.ReportTypeViews:   "page_media_view",
	model.ReportTypeViewers: "page_impressions_unique",
	model.ReportTypeVisits:  "page_views_total",
	model.ReportTypeFollows: "page_daily_follows",
}

// DailyValue 单日指标值，value 原样保留上游数值，不做任何换算
type DailyValue struct {
	Date  time.Time
	Value int64
}

// Client 粉丝页 insights 客户端。一次调用只取一个指标，
// 这样单个指标失败不会拖垮整轮同步
type Client interface {
	FetchMetric(ctx context.Context, metricName string, since, until time.Time) ([]DailyValue, error)
}

type graphClient struct {
	http   *resty.Client
	pageID string
	token  string
}

func NewClient(cfg *config.FacebookConfig) Client {
	client := resty.New().
		SetBaseURL(cfg.Endpoint + "/" + cfg.APIVersion).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	return &graphClient{
		http:   client,
		pageID: cfg.PageID,
		token:  cfg.AccessToken,
	}
}

type insightsResponse struct {
	Data  []insightMetric `json:"data"`
	Error *graphError     `json:"error"`
}

type insightMetric struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []insightValue `json:"values"`
}

type insightValue struct {
	Value   int64  `json:"value"`
	EndTime string `json:"end_time"`
}

type graphError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// Graph API 的 end_time 带的是 +0000 风格时区
const endTimeLayout = "2006-01-02T15:04:05-0700"

func (s *graphClient) FetchMetric(ctx context.Context, metricName string, since, until time.Time) ([]DailyValue, error) {
	var report insightsResponse

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"metric":       metricName,
			"period":       "day",
			"since":        since.Format(time.DateOnly),
			"until":        until.Format(time.DateOnly),
			"access_token": s.token,
		}).
		SetResult(&report).
		SetError(&report).
		Get("/" + s.pageID + "/insights")
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	if report.Error != nil {
		return nil, errors.Wrapf(ErrBadResponse, "graph error %d (%s): %s",
			report.Error.Code, report.Error.Type, report.Error.Message)
	}
	if resp.IsError() {
		return nil, errors.Wrapf(ErrUnavailable, "status %d", resp.StatusCode())
	}

	result := make([]DailyValue, 0)
	for _, block := range report.Data {
		for _, entry := range block.Values {
			date, err := time.Parse(endTimeLayout, entry.EndTime)
			if err != nil {
				return nil, errors.Wrapf(ErrBadResponse, "end_time %q", entry.EndTime)
			}
			result = append(result, DailyValue{
				Date:  date.Truncate(24 * time.Hour),
				Value: entry.Value,
			})
		}
	}
	return result, nil
}
