package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scott198989/ParameterPath-Optimizer/internal/bootstrap"
	"github.com/scott198989/ParameterPath-Optimizer/internal/config"
	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/metrics"
	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/server/middleware"
)

func registerRoutes(r *gin.Engine, cfg config.Config, app *bootstrap.App) {
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet {
				return "REFERENCE"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":   {Rate: cfg.RateLimits.DefaultRate, Burst: cfg.RateLimits.DefaultBurst},
			"REFERENCE": {Rate: cfg.RateLimits.ReferenceRate, Burst: cfg.RateLimits.ReferenceBurst},
		},
	}))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.HealthService.Status())
	})

	app.MaterialsHandler.RegisterRoutes(api)
	app.DefectsHandler.RegisterRoutes(api)
	app.OptimizeHandler.RegisterRoutes(api)
	app.DiagnoseHandler.RegisterRoutes(api)
}
