package handler

import (
	"Lantern/internal/api/dto"
	"Lantern/internal/pkg/response"
	"Lantern/internal/pkg/util"
	"Lantern/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightSvc service.InsightService
}

func NewInsightHandler(insightSvc service.InsightService) *InsightHandler {
	return &InsightHandler{
		insightSvc: insightSvc,
	}
}

func (s *InsightHandler) GetDaily(c *gin.Context) {
	insights, err := s.insightSvc.GetDailyInsights(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, insights)
}

// GetHistory 默认窗口为最近 7 天
func (s *InsightHandler) GetHistory(c *gin.Context) {
	since, until, err := parseWindow(c, -7, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	history, err := s.insightSvc.GetInsightHistory(c.Request.Context(), since, until)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

// Refresh 默认只同步昨天：Graph API 对当天的值要到次日才稳定
func (s *InsightHandler) Refresh(c *gin.Context) {
	since, until, err := parseWindow(c, -2, -1)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.insightSvc.RefreshInsights(c.Request.Context(), since, until)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// parseWindow 解析可选的 since/until 参数，缺省时取相对今天的偏移
func parseWindow(c *gin.Context, defaultSinceDays, defaultUntilDays int) (time.Time, time.Time, error) {
	var req dto.InsightWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, time.Time{}, err
	}

	today := util.GetMidnight(time.Now())
	since := today.AddDate(0, 0, defaultSinceDays)
	until := today.AddDate(0, 0, defaultUntilDays)

	if req.Since != "" {
		parsed, err := time.Parse(time.DateOnly, req.Since)
		if err != nil {
			return time.Time{}, time.Time{}, service.ErrParamInvalid
		}
		since = parsed
	}
	if req.Until != "" {
		parsed, err := time.Parse(time.DateOnly, req.Until)
		if err != nil {
			return time.Time{}, time.Time{}, service.ErrParamInvalid
		}
		until = parsed
	}
	return since, until, nil
}
