package api

import "Lantern/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	RealtimeHandler *handler.RealtimeHandler
	InsightHandler  *handler.InsightHandler
	WsHandler       *handler.WsHandler
}
