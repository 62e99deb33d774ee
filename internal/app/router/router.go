package router

import (
	"loan-intake/internal/app/handlers"
	"loan-intake/internal/app/middleware"
	"loan-intake/internal/common/config"
	"loan-intake/internal/common/database"
	"loan-intake/internal/common/logger"
	"loan-intake/internal/loan/intake"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
)

// Dependencies carries the explicitly constructed collaborators injected at
// startup; nothing here is an ambient singleton.
type Dependencies struct {
	Config  *config.Config
	Logger  logger.Logger
	Redis   *database.RedisClient
	Service *intake.Service
	Meter   metric.Meter
}

func Setup(deps *Dependencies) *gin.Engine {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.RequestMetrics(deps.Meter))

	loanHandler := handlers.NewLoanHandler(deps.Service, deps.Logger)
	systemHandler := handlers.NewSystemHandler(deps.Redis)

	api := r.Group("/api")
	{
		api.POST("/loan/apply", loanHandler.Apply)
		api.GET("/loan/status/:id", loanHandler.GetStatus)
		api.GET("/loan/:id", loanHandler.GetByID)
		api.GET("/stats", systemHandler.Stats)
	}

	r.GET("/health", systemHandler.Health)
	r.GET("/ready", systemHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
