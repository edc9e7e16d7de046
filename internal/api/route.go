package api

import (
	"Beacon/internal/api/middleware"
	"Beacon/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
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

		insightGroup := apiGroup.Group("/insights")
		insightGroup.Use(middleware.AuthMiddleware())
		{
			insightGroup.GET("/summary", group.InsightHandler.GetSummary)
			insightGroup.GET("/growth/:customer_id", group.GrowthHandler.GetReport)
		}
	}

	return r
}
