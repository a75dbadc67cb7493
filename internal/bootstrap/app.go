package bootstrap

import (
	"github.com/scott198989/ParameterPath-Optimizer/internal/config"
	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/diagnose"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
	"github.com/scott198989/ParameterPath-Optimizer/internal/optimize"
	"github.com/scott198989/ParameterPath-Optimizer/internal/services/health"
	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/telemetry"
)

// App holds shared dependencies for the HTTP surface.
type App struct {
	Config config.Config

	OptimizeService *optimize.Service
	DiagnoseService *diagnose.Service
	HealthService   *health.Service

	MaterialsHandler *materials.Handler
	DefectsHandler   *defects.Handler
	OptimizeHandler  *optimize.Handler
	DiagnoseHandler  *diagnose.Handler
}

// Build prepares shared dependencies without wiring routes.
func Build(cfg config.Config) *App {
	telemetry.SetLevel(cfg.LogLevel)

	optimizeSvc := optimize.NewService()
	diagnoseSvc := diagnose.NewService()

	return &App{
		Config:           cfg,
		OptimizeService:  optimizeSvc,
		DiagnoseService:  diagnoseSvc,
		HealthService:    health.NewService(),
		MaterialsHandler: materials.NewHandler(),
		DefectsHandler:   defects.NewHandler(),
		OptimizeHandler:  optimize.NewHandler(optimizeSvc),
		DiagnoseHandler:  diagnose.NewHandler(diagnoseSvc),
	}
}
