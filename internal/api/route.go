package api

import (
	"Lantern/internal/api/middleware"
	"Lantern/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		realtimeGroup := apiGroup.Group("/realtime")
		{
			realtimeGroup.GET("/active-users", group.RealtimeHandler.GetActiveUsers)
			realtimeGroup.GET("/map-data", group.RealtimeHandler.GetMapData)
			realtimeGroup.GET("/users-by-device", group.RealtimeHandler.GetUsersByDevice)
			realtimeGroup.GET("/views-by-page", group.RealtimeHandler.GetViewsByPage)
			realtimeGroup.POST("/refresh", group.RealtimeHandler.Refresh)
			realtimeGroup.GET("/live", group.WsHandler.Connect)
		}

		insightGroup := apiGroup.Group("/insights")
		{
			insightGroup.GET("/daily", group.InsightHandler.GetDaily)
			insightGroup.GET("/history", group.InsightHandler.GetHistory)
			insightGroup.POST("/refresh", group.InsightHandler.Refresh)
		}
	}

	return r
}
