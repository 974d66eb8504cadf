package service

import (
	"Lantern/internal/pkg/ga"
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeGAClient 每个维度可独立注入失败，对齐"单维度查询互不影响"的契约
type fakeGAClient struct {
	users5m, users30m int64
	cities            []ga.CityActiveUsers
	devices           []ga.DeviceActiveUsers
	pages             []ga.PageViews

	errActive, errCity, errDevice, errPage error
}

func (f *fakeGAClient) FetchActiveUsers(context.Context) (int64, int64, error) {
	if f.errActive != nil {
		return 0, 0, f.errActive
	}
	return f.users5m, f.users30m, nil
}

func (f *fakeGAClient) FetchUsersByCity(context.Context) ([]ga.CityActiveUsers, error) {
	if f.errCity != nil {
		return nil, f.errCity
	}
	return f.cities, nil
}

func (f *fakeGAClient) FetchUsersByDevice(context.Context) ([]ga.DeviceActiveUsers, error) {
	if f.errDevice != nil {
		return nil, f.errDevice
	}
	return f.devices, nil
}

func (f *fakeGAClient) FetchViewsByPage(context.Context) ([]ga.PageViews, error) {
	if f.errPage != nil {
		return nil, f.errPage
	}
	return f.pages, nil
}

func healthyClient() *fakeGAClient {
	return &fakeGAClient{
		users5m:  12,
		users30m: 47,
		cities: []ga.CityActiveUsers{
			{City: "Hanoi", Users5m: 3, Users30m: 10},
			{City: "Da Nang", Users5m: 1, Users30m: 4},
		},
		devices: []ga.DeviceActiveUsers{{Device: "mobile", Users: 31}},
		pages:   []ga.PageViews{{Page: "/", Views: 120}},
	}
}

func TestGetActiveUsers(t *testing.T) {
	require := require.New(t)
	svc := NewRealtimeService(healthyClient())

	result := svc.GetActiveUsers(context.Background())
	require.False(result.Degraded)
	require.Equal(int64(12), result.Users5m)
	require.Equal(int64(47), result.Users30m)
}

func TestGetActiveUsersDegraded(t *testing.T) {
	require := require.New(t)
	client := healthyClient()
	client.errActive = ga.ErrUnavailable
	svc := NewRealtimeService(client)

	result := svc.GetActiveUsers(context.Background())
	require.True(result.Degraded)
	require.Zero(result.Users5m)
	require.Zero(result.Users30m)
}

func TestGetMapDataResolvesAndDrops(t *testing.T) {
	require := require.New(t)
	client := healthyClient()
	client.cities = append(client.cities, ga.CityActiveUsers{City: "Atlantis", Users30m: 99})
	svc := NewRealtimeService(client)

	result := svc.GetMapData(context.Background())
	require.False(result.Degraded)
	require.Len(result.Points, 2)
	require.Equal(1, result.UnresolvedCount)

	hanoi := result.Points[0]
	require.Equal("Hà Nội", hanoi.Province)
	require.Equal(21.0285, hanoi.Lat)
	require.Equal(105.8542, hanoi.Lng)
	require.Equal(int64(3), hanoi.Users5m)
	require.Equal(int64(10), hanoi.Users30m)
}

func TestDegradeIsolation(t *testing.T) {
	require := require.New(t)
	client := healthyClient()
	client.errDevice = errors.New("quota exceeded")
	svc := NewRealtimeService(client)
	ctx := context.Background()

	devices := svc.GetUsersByDevice(ctx)
	require.True(devices.Degraded)
	require.Empty(devices.List)

	// 其余组件不受影响
	require.False(svc.GetActiveUsers(ctx).Degraded)
	require.False(svc.GetMapData(ctx).Degraded)
	require.False(svc.GetViewsByPage(ctx).Degraded)
}

func TestTopListTruncated(t *testing.T) {
	require := require.New(t)
	client := healthyClient()
	client.pages = nil
	for i := 0; i < 15; i++ {
		client.pages = append(client.pages, ga.PageViews{
			Page:  fmt.Sprintf("/p/%d", i),
			Views: int64(100 - i),
		})
	}
	svc := NewRealtimeService(client)

	result := svc.GetViewsByPage(context.Background())
	require.Len(result.List, 10)
	require.Equal(int64(100), result.List[0].Views)
}

func TestSnapshotSectionsIndependent(t *testing.T) {
	require := require.New(t)
	client := healthyClient()
	client.errPage = ga.ErrUnavailable
	svc := NewRealtimeService(client)

	snapshot := svc.Snapshot(context.Background())
	require.NotNil(snapshot.ActiveUsers)
	require.NotNil(snapshot.Map)
	require.NotNil(snapshot.Devices)
	require.NotNil(snapshot.Pages)
	require.NotEmpty(snapshot.FetchedAt)

	require.True(snapshot.Pages.Degraded)
	require.False(snapshot.ActiveUsers.Degraded)
	require.False(snapshot.Map.Degraded)
	require.False(snapshot.Devices.Degraded)
}
