package diagnose

import (
	"github.com/go-playground/validator/v10"

	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

var validate = validator.New()

// CurrentSettings are the live machine readings the escalation rules
// compare against the material's processing window.
type CurrentSettings struct {
	MeltTemp   float64 `json:"meltTemp" binding:"required,gt=0" validate:"required,gt=0"`   // °F
	ScrewSpeed float64 `json:"screwSpeed" binding:"required,gt=0" validate:"required,gt=0"` // RPM
	LineSpeed  float64 `json:"lineSpeed" binding:"required,gt=0" validate:"required,gt=0"`  // ft/min
	DieTemp    float64 `json:"dieTemp" binding:"required,gt=0" validate:"required,gt=0"`    // °F
}

// Request is one diagnosis call: an observed defect plus the settings it
// was observed under.
type Request struct {
	Material materials.ID    `json:"material" binding:"required" validate:"required"`
	Defect   defects.ID      `json:"defect" binding:"required" validate:"required"`
	Settings CurrentSettings `json:"currentSettings" binding:"required" validate:"required"`
}

// Validate enforces present, positive readings at the boundary.
func (r Request) Validate() error {
	return validate.Struct(r)
}

// Result is the re-ranked cause list with assembled recommendations.
type Result struct {
	Defect                 defects.ID      `json:"defect"`
	Name                   string          `json:"name"`
	Description            string          `json:"description"`
	Causes                 []defects.Cause `json:"causes"`
	GeneralRecommendations []string        `json:"generalRecommendations"`
}
