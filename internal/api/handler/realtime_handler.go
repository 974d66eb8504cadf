package handler

import (
	"Lantern/internal/pkg/response"
	"Lantern/internal/service"

	"github.com/gin-gonic/gin"
)

type RealtimeHandler struct {
	realtimeSvc service.RealtimeService
}

func NewRealtimeHandler(realtimeSvc service.RealtimeService) *RealtimeHandler {
	return &RealtimeHandler{
		realtimeSvc: realtimeSvc,
	}
}

func (s *RealtimeHandler) GetActiveUsers(c *gin.Context) {
	response.Success(c, s.realtimeSvc.GetActiveUsers(c.Request.Context()))
}

func (s *RealtimeHandler) GetMapData(c *gin.Context) {
	response.Success(c, s.realtimeSvc.GetMapData(c.Request.Context()))
}

func (s *RealtimeHandler) GetUsersByDevice(c *gin.Context) {
	response.Success(c, s.realtimeSvc.GetUsersByDevice(c.Request.Context()))
}

func (s *RealtimeHandler) GetViewsByPage(c *gin.Context) {
	response.Success(c, s.realtimeSvc.GetViewsByPage(c.Request.Context()))
}

// Refresh 实时数据没有缓存可失效，这个端点只为与 insights 侧保持对称
func (s *RealtimeHandler) Refresh(c *gin.Context) {
	response.Success(c, nil)
}
