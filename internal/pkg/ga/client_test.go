package ga

import (
	"Lantern/internal/api/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeGA 按请求里的维度/分钟范围返回预置的报表
func fakeGA(t *testing.T, handler func(req *runRealtimeReportRequest) *runRealtimeReportResponse) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/properties/123456:runRealtimeReport", r.URL.Path)

		var req runRealtimeReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(handler(&req)))
	}))
}

func testConfig(url string) *config.GAConfig {
	return &config.GAConfig{
		Endpoint:    url,
		PropertyID:  "123456",
		AccessToken: "test-token",
		Timeout:     5,
	}
}

func row(dims []string, metrics ...string) reportRow {
	r := reportRow{}
	for _, d := range dims {
		r.DimensionValues = append(r.DimensionValues, reportValue{Value: d})
	}
	for _, m := range metrics {
		r.MetricValues = append(r.MetricValues, reportValue{Value: m})
	}
	return r
}

func TestFetchActiveUsers(t *testing.T) {
	require := require.New(t)

	srv := fakeGA(t, func(req *runRealtimeReportRequest) *runRealtimeReportResponse {
		require.Empty(req.Dimensions)
		require.Len(req.MinuteRanges, 1)
		if req.MinuteRanges[0].StartMinutesAgo == 5 {
			return &runRealtimeReportResponse{Rows: []reportRow{row(nil, "12")}}
		}
		require.Equal(29, req.MinuteRanges[0].StartMinutesAgo)
		return &runRealtimeReportResponse{Rows: []reportRow{row(nil, "47")}}
	})
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	users5m, users30m, err := client.FetchActiveUsers(context.Background())
	require.NoError(err)
	require.Equal(int64(12), users5m)
	require.Equal(int64(47), users30m)
}

func TestFetchActiveUsersEmptyReport(t *testing.T) {
	require := require.New(t)

	srv := fakeGA(t, func(req *runRealtimeReportRequest) *runRealtimeReportResponse {
		return &runRealtimeReportResponse{}
	})
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	users5m, users30m, err := client.FetchActiveUsers(context.Background())
	require.NoError(err)
	require.Zero(users5m)
	require.Zero(users30m)
}

func TestFetchUsersByCityMergesWindows(t *testing.T) {
	require := require.New(t)

	srv := fakeGA(t, func(req *runRealtimeReportRequest) *runRealtimeReportResponse {
		require.Equal("city", req.Dimensions[0].Name)
		if req.MinuteRanges[0].StartMinutesAgo == 5 {
			return &runRealtimeReportResponse{Rows: []reportRow{
				row([]string{"Hanoi"}, "3"),
			}}
		}
		return &runRealtimeReportResponse{Rows: []reportRow{
			row([]string{"Hanoi"}, "10"),
			row([]string{"Da Nang"}, "25"),
		}}
	})
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	rows, err := client.FetchUsersByCity(context.Background())
	require.NoError(err)
	require.Len(rows, 2)

	// 按 30 分钟窗口降序
	require.Equal("Da Nang", rows[0].City)
	require.Equal(int64(25), rows[0].Users30m)
	require.Zero(rows[0].Users5m)

	require.Equal("Hanoi", rows[1].City)
	require.Equal(int64(3), rows[1].Users5m)
	require.Equal(int64(10), rows[1].Users30m)
}

func TestFetchViewsByPageSortsDescending(t *testing.T) {
	require := require.New(t)

	srv := fakeGA(t, func(req *runRealtimeReportRequest) *runRealtimeReportResponse {
		require.Equal("unifiedScreenName", req.Dimensions[0].Name)
		require.Equal("screenPageViews", req.Metrics[0].Name)
		return &runRealtimeReportResponse{Rows: []reportRow{
			row([]string{"/about"}, "5"),
			row([]string{"/"}, "120"),
			row([]string{"/news"}, "40"),
		}}
	})
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	rows, err := client.FetchViewsByPage(context.Background())
	require.NoError(err)
	require.Len(rows, 3)
	require.Equal("/", rows[0].Page)
	require.Equal(int64(120), rows[0].Views)
	require.Equal("/news", rows[1].Page)
	require.Equal("/about", rows[2].Page)
}

func TestFetchUsersByDevice(t *testing.T) {
	require := require.New(t)

	srv := fakeGA(t, func(req *runRealtimeReportRequest) *runRealtimeReportResponse {
		require.Equal("deviceCategory", req.Dimensions[0].Name)
		return &runRealtimeReportResponse{Rows: []reportRow{
			row([]string{"desktop"}, "8"),
			row([]string{"mobile"}, "31"),
		}}
	})
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	rows, err := client.FetchUsersByDevice(context.Background())
	require.NoError(err)
	require.Equal("mobile", rows[0].Device)
	require.Equal(int64(31), rows[0].Users)
}

func TestServerErrorIsUnavailable(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, _, err := client.FetchActiveUsers(context.Background())
	require.Error(err)
	require.True(errors.Is(err, ErrUnavailable))
}

func TestMalformedMetricIsBadResponse(t *testing.T) {
	require := require.New(t)

	srv := fakeGA(t, func(req *runRealtimeReportRequest) *runRealtimeReportResponse {
		return &runRealtimeReportResponse{Rows: []reportRow{
			row([]string{"Hanoi"}, "not-a-number"),
		}}
	})
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.FetchUsersByCity(context.Background())
	require.Error(err)
	require.True(errors.Is(err, ErrBadResponse))
}
