package consts

const (
	// InsightSyncLockKey 定时同步的互斥锁，防止多实例同时跑同一轮
	InsightSyncLockKey = "insight:sync:lock"
)
