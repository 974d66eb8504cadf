package service

import (
	"Lantern/internal/api/dto"
	"Lantern/internal/pkg/ga"
	"Lantern/internal/pkg/geo"
	"context"
	log "log/slog"
	"sync"
	"time"
)

// RealtimeService 实时侧聚合。每个方法对应一个仪表盘组件，
// 上游失败时返回带 degraded 标记的零值结果，绝不让单个组件拖垮整个响应
type RealtimeService interface {
	GetActiveUsers(ctx context.Context) *dto.ActiveUsersDTO
	GetMapData(ctx context.Context) *dto.MapDataDTO
	GetUsersByDevice(ctx context.Context) *dto.DeviceUsersDTO
	GetViewsByPage(ctx context.Context) *dto.PageViewsDTO
	// Snapshot 并发拉取四个维度，组装一份完整快照
	Snapshot(ctx context.Context) *dto.RealtimeSnapshotDTO
}

// 设备/页面组件最多展示的行数
const topListLimit = 10

type realtimeServiceImpl struct {
	gaClient ga.Client
}

func NewRealtimeService(gaClient ga.Client) RealtimeService {
	return &realtimeServiceImpl{gaClient: gaClient}
}

func (s *realtimeServiceImpl) GetActiveUsers(ctx context.Context) *dto.ActiveUsersDTO {
	users5m, users30m, err := s.gaClient.FetchActiveUsers(ctx)
	if err != nil {
		log.WarnContext(ctx, "realtime active users degraded", "err", err)
		return &dto.ActiveUsersDTO{Degraded: true}
	}
	return &dto.ActiveUsersDTO{Users5m: users5m, Users30m: users30m}
}

// GetMapData 解析失败的城市直接丢弃：错位的标记比缺失的标记更糟。
// 丢弃数量通过 unresolved_count 暴露给运维
func (s *realtimeServiceImpl) GetMapData(ctx context.Context) *dto.MapDataDTO {
	rows, err := s.gaClient.FetchUsersByCity(ctx)
	if err != nil {
		log.WarnContext(ctx, "realtime map data degraded", "err", err)
		return &dto.MapDataDTO{Points: make([]*dto.MapPointDTO, 0), Degraded: true}
	}

	result := &dto.MapDataDTO{Points: make([]*dto.MapPointDTO, 0, len(rows))}
	for _, row := range rows {
		coord, ok := geo.Resolve(row.City)
		if !ok {
			result.UnresolvedCount++
			continue
		}
		result.Points = append(result.Points, &dto.MapPointDTO{
			Province: coord.Name,
			City:     row.City,
			Lat:      coord.Lat,
			Lng:      coord.Lng,
			Users5m:  row.Users5m,
			Users30m: row.Users30m,
		})
	}
	return result
}

func (s *realtimeServiceImpl) GetUsersByDevice(ctx context.Context) *dto.DeviceUsersDTO {
	rows, err := s.gaClient.FetchUsersByDevice(ctx)
	if err != nil {
		log.WarnContext(ctx, "realtime device users degraded", "err", err)
		return &dto.DeviceUsersDTO{List: make([]*dto.DeviceCountDTO, 0), Degraded: true}
	}

	if len(rows) > topListLimit {
		rows = rows[:topListLimit]
	}
	result := &dto.DeviceUsersDTO{List: make([]*dto.DeviceCountDTO, 0, len(rows))}
	for _, row := range rows {
		result.List = append(result.List, &dto.DeviceCountDTO{
			Device:      row.Device,
			ActiveUsers: row.Users,
		})
	}
	return result
}

func (s *realtimeServiceImpl) GetViewsByPage(ctx context.Context) *dto.PageViewsDTO {
	rows, err := s.gaClient.FetchViewsByPage(ctx)
	if err != nil {
		log.WarnContext(ctx, "realtime page views degraded", "err", err)
		return &dto.PageViewsDTO{List: make([]*dto.PageViewCountDTO, 0), Degraded: true}
	}

	if len(rows) > topListLimit {
		rows = rows[:topListLimit]
	}
	result := &dto.PageViewsDTO{List: make([]*dto.PageViewCountDTO, 0, len(rows))}
	for _, row := range rows {
		result.List = append(result.List, &dto.PageViewCountDTO{
			Page:  row.Page,
			Views: row.Views,
		})
	}
	return result
}

// Snapshot 四个维度互不依赖，并发拉取；单个维度失败只降级自己
func (s *realtimeServiceImpl) Snapshot(ctx context.Context) *dto.RealtimeSnapshotDTO {
	snapshot := &dto.RealtimeSnapshotDTO{
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		snapshot.ActiveUsers = s.GetActiveUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		snapshot.Map = s.GetMapData(ctx)
	}()
	go func() {
		defer wg.Done()
		snapshot.Devices = s.GetUsersByDevice(ctx)
	}()
	go func() {
		defer wg.Done()
		snapshot.Pages = s.GetViewsByPage(ctx)
	}()
	wg.Wait()

	return snapshot
}
