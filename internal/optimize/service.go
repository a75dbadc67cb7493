package optimize

import (
	"time"

	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/metrics"
)

// Service resolves the material reference and runs the pure engine.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Optimize produces a settings recommendation for the target spec.
// The only failure mode is an unknown material identity.
func (s *Service) Optimize(req Request) (Settings, error) {
	mat, err := materials.Get(req.Material)
	if err != nil {
		return Settings{}, err
	}

	start := time.Now()
	out := Compute(req, mat)
	metrics.IncOptimize()
	metrics.ObserveOptimizeDuration(time.Since(start))
	return out, nil
}
