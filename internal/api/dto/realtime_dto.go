package dto

// ActiveUsersDTO 实时活跃用户卡片
type ActiveUsersDTO struct {
	Users5m  int64 `json:"users_5min"`
	Users30m int64 `json:"users_30min"`
	Degraded bool  `json:"degraded"` // 上游查询失败时为 true，数值归零
}

// MapPointDTO 地图上的一个城市标记
type MapPointDTO struct {
	Province string  `json:"province"` // 本地化显示名
	City     string  `json:"city"`     // GA4 返回的英文城市名
	Lat      float64 `json:"latitude"`
	Lng      float64 `json:"longitude"`
	Users5m  int64   `json:"active_users_5min"`
	Users30m int64   `json:"active_users_30min"`
}

// MapDataDTO 地图数据，按 30 分钟活跃用户数降序
type MapDataDTO struct {
	Points          []*MapPointDTO `json:"points"`
	UnresolvedCount int            `json:"unresolved_count"` // 未能解析坐标而被丢弃的城市数
	Degraded        bool           `json:"degraded"`
}

// DeviceCountDTO 单个设备类型的活跃用户数
type DeviceCountDTO struct {
	Device      string `json:"device"`
	ActiveUsers int64  `json:"active_users"`
}

// DeviceUsersDTO 设备分布组件
type DeviceUsersDTO struct {
	List     []*DeviceCountDTO `json:"list"`
	Degraded bool              `json:"degraded"`
}

// PageViewCountDTO 单个页面的浏览量
type PageViewCountDTO struct {
	Page  string `json:"page"`
	Views int64  `json:"views"`
}

// PageViewsDTO 热门页面组件，按浏览量降序
type PageViewsDTO struct {
	List     []*PageViewCountDTO `json:"list"`
	Degraded bool                `json:"degraded"`
}

// RealtimeSnapshotDTO 一次性聚合的实时快照，仅用于 WS 推送，
// 每次请求都现取现组，从不落盘
type RealtimeSnapshotDTO struct {
	ActiveUsers *ActiveUsersDTO `json:"active_users"`
	Map         *MapDataDTO     `json:"map"`
	Devices     *DeviceUsersDTO `json:"devices"`
	Pages       *PageViewsDTO   `json:"pages"`
	FetchedAt   string          `json:"fetched_at"`
}
