package util

import "time"

// GetMidnight 返回 UTC 当日零点，日报的日期全部对齐到这个粒度
func GetMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
