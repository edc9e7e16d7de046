package wire

import (
	"Beacon/internal/api"
	"Beacon/internal/api/config"
	"Beacon/internal/api/handler"
	"Beacon/internal/job"
	"Beacon/internal/pkg/cron"
	"Beacon/internal/pkg/publisher"
	"Beacon/internal/repository"
	"Beacon/internal/service"

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
	pub := publisher.NewClient(cfg.Publisher)

	customerRepo := repository.NewCustomerAccountRepo(db)

	insightService := service.NewInsightService(pub)
	growthService := service.NewGrowthService(pub, customerRepo)

	handlers := &api.HandlersGroup{
		InsightHandler: handler.NewInsightHandler(insightService),
		GrowthHandler:  handler.NewGrowthHandler(growthService),
	}

	router := api.SetupRouter(handlers)

	warmJob := job.NewWarmInsightJob(insightService)
	cronMgr := cron.NewCronManager(warmJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
