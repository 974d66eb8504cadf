package handler

import (
	"Lantern/internal/api/dto"
	"Lantern/internal/pkg/util"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// fakeInsightService 记录收到的窗口，返回预置结果
type fakeInsightService struct {
	since, until time.Time
	daily        *dto.DailyInsightsDTO
	sync         *dto.SyncResultDTO
}

func (f *fakeInsightService) GetDailyInsights(context.Context) (*dto.DailyInsightsDTO, error) {
	return f.daily, nil
}

func (f *fakeInsightService) GetInsightHistory(_ context.Context, since, until time.Time) (*dto.InsightHistoryDTO, error) {
	f.since, f.until = since, until
	return &dto.InsightHistoryDTO{List: make([]*dto.InsightRowDTO, 0)}, nil
}

func (f *fakeInsightService) RefreshInsights(_ context.Context, since, until time.Time) (*dto.SyncResultDTO, error) {
	f.since, f.until = since, until
	return f.sync, nil
}

func setupRouter(svc *fakeInsightService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewInsightHandler(svc)
	r.GET("/api/insights/daily", h.GetDaily)
	r.GET("/api/insights/history", h.GetHistory)
	r.POST("/api/insights/refresh", h.Refresh)
	return r
}

func doRequest(r *gin.Engine, method, target string) (*httptest.ResponseRecorder, *dto.Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)

	var resp dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, &resp
}

func TestGetDailyEnvelope(t *testing.T) {
	require := require.New(t)
	svc := &fakeInsightService{
		daily: &dto.DailyInsightsDTO{Views: 120, Viewers: 80, Visits: 40, Follows: 5},
	}
	r := setupRouter(svc)

	w, resp := doRequest(r, http.MethodGet, "/api/insights/daily")
	require.Equal(http.StatusOK, w.Code)
	require.Equal(200, resp.Code)

	data := resp.Data.(map[string]interface{})
	require.Equal(float64(120), data["fb_views"])
	require.Equal(float64(5), data["fb_follows"])
}

func TestRefreshDefaultWindowIsYesterday(t *testing.T) {
	require := require.New(t)
	svc := &fakeInsightService{sync: &dto.SyncResultDTO{Updated: 4, FailedTypes: []string{}}}
	r := setupRouter(svc)

	_, resp := doRequest(r, http.MethodPost, "/api/insights/refresh")
	require.Equal(200, resp.Code)

	today := util.GetMidnight(time.Now())
	require.Equal(today.AddDate(0, 0, -2), svc.since)
	require.Equal(today.AddDate(0, 0, -1), svc.until)
}

func TestRefreshExplicitWindow(t *testing.T) {
	require := require.New(t)
	svc := &fakeInsightService{sync: &dto.SyncResultDTO{FailedTypes: []string{}}}
	r := setupRouter(svc)

	_, resp := doRequest(r, http.MethodPost, "/api/insights/refresh?since=2024-01-01&until=2024-01-05")
	require.Equal(200, resp.Code)
	require.Equal("2024-01-01", svc.since.Format(time.DateOnly))
	require.Equal("2024-01-05", svc.until.Format(time.DateOnly))
}

func TestRefreshRejectsBadDate(t *testing.T) {
	require := require.New(t)
	svc := &fakeInsightService{sync: &dto.SyncResultDTO{FailedTypes: []string{}}}
	r := setupRouter(svc)

	w, resp := doRequest(r, http.MethodPost, "/api/insights/refresh?since=01-01-2024")
	require.Equal(http.StatusOK, w.Code) // 业务码承载错误
	require.Equal(400, resp.Code)
}
