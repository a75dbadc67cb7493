package diagnose

import (
	"time"

	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/metrics"
)

// Service resolves the material and defect references and runs the engine.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Diagnose evaluates the defect against the current settings. The only
// failure modes are unknown identities.
func (s *Service) Diagnose(req Request) (Result, error) {
	mat, err := materials.Get(req.Material)
	if err != nil {
		return Result{}, err
	}
	def, err := defects.Get(req.Defect)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	out := Evaluate(req, def, mat)
	metrics.IncDiagnose()
	metrics.ObserveDiagnoseDuration(time.Since(start))
	return out, nil
}
