package handler

import (
	"Lantern/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler 按固定间隔向仪表盘推送实时快照，替代前端轮询
type WsHandler struct {
	realtimeSvc  service.RealtimeService
	pushInterval time.Duration
}

func NewWsHandler(realtimeSvc service.RealtimeService, pushIntervalSeconds int) *WsHandler {
	return &WsHandler{
		realtimeSvc:  realtimeSvc,
		pushInterval: time.Duration(pushIntervalSeconds) * time.Second,
	}
}

func (s *WsHandler) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ctx := c.Request.Context()

	// 读协程只负责感知客户端断开
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// 连接建立后立即推一帧，之后按间隔推送
	if err = s.push(ctx, conn); err != nil {
		return
	}

	ticker := time.NewTicker(s.pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err = s.push(ctx, conn); err != nil {
				log.Info("WS 推送结束", "err", err)
				return
			}
		}
	}
}

func (s *WsHandler) push(ctx context.Context, conn *websocket.Conn) error {
	snapshot := s.realtimeSvc.Snapshot(ctx)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
