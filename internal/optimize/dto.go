package optimize

import (
	"github.com/go-playground/validator/v10"

	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

var validate = validator.New()

// Request is the caller-supplied target specification. The engine itself
// does not re-check bounds; Validate is the boundary's job (HTTP and CLI).
type Request struct {
	Material       materials.ID `json:"material" binding:"required" validate:"required"`
	TargetOD       float64      `json:"targetOD" binding:"required,gt=0" validate:"required,gt=0"`       // inches
	TargetGauge    float64      `json:"targetGauge" binding:"required,gt=0" validate:"required,gt=0"`    // mils
	ProductionRate float64      `json:"productionRate" binding:"required,gt=0" validate:"required,gt=0"` // lbs/hr
}

// Validate enforces positive, present inputs. Out-of-window but positive
// values are allowed through and degrade the confidence rating instead.
func (r Request) Validate() error {
	return validate.Struct(r)
}
