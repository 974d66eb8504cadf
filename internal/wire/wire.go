package wire

import (
	"Lantern/internal/api"
	"Lantern/internal/api/config"
	"Lantern/internal/api/handler"
	"Lantern/internal/job"
	"Lantern/internal/pkg/cron"
	"Lantern/internal/pkg/facebook"
	"Lantern/internal/pkg/ga"
	"Lantern/internal/repository"
	"Lantern/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	gaClient := ga.NewClient(&cfg.GA)
	fbClient := facebook.NewClient(&cfg.Facebook)

	insightRepo := repository.NewInsightRepository(db)

	realtimeService := service.NewRealtimeService(gaClient)
	insightService := service.NewInsightService(insightRepo, fbClient)

	handlers := &api.HandlersGroup{
		RealtimeHandler: handler.NewRealtimeHandler(realtimeService),
		InsightHandler:  handler.NewInsightHandler(insightService),
		WsHandler:       handler.NewWsHandler(realtimeService, cfg.Sync.PushInterval),
	}

	router := api.SetupRouter(handlers)

	syncJob := job.NewInsightSyncJob(insightService, cfg.Sync)
	cronMgr := cron.NewCronManager(cfg.Sync.Schedule, syncJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
