package optimize

import "github.com/scott198989/ParameterPath-Optimizer/internal/materials"

// SpeedRange is an integer operating window with a recommended setpoint.
type SpeedRange struct {
	Min         int `json:"min"`
	Recommended int `json:"recommended"`
	Max         int `json:"max"`
}

// BarrelSettings are the recommended zone setpoints in °F.
type BarrelSettings struct {
	Feed        float64 `json:"feed"`
	Compression float64 `json:"compression"`
	Metering    float64 `json:"metering"`
	Die         float64 `json:"die"`
}

// AirRingSettings are qualitative air ring bands, each drawn from a small
// fixed set of messages.
type AirRingSettings struct {
	LipGap          string `json:"lipGap"`
	AirVelocity     string `json:"airVelocity"`
	CoolingCapacity string `json:"coolingCapacity"`
}

// FrostLineSettings bound the frost line height in inches above the die.
type FrostLineSettings struct {
	Min     float64 `json:"min"`
	Optimal float64 `json:"optimal"`
	Max     float64 `json:"max"`
	Note    string  `json:"note"`
}

// NipRollerSettings are qualitative nip guidance strings.
type NipRollerSettings struct {
	Speed       string `json:"speed"`
	Pressure    string `json:"pressure"`
	Temperature string `json:"temperature"`
}

// IBCRecommendation says whether internal bubble cooling is warranted.
type IBCRecommendation struct {
	Recommended bool   `json:"recommended"`
	AirFlow     string `json:"airFlow"`
	Notes       string `json:"notes"`
}

// GaugeControlPlan covers die gap setup and thickness-control practice.
type GaugeControlPlan struct {
	TargetVariation string   `json:"targetVariation"`
	DieGapSetting   float64  `json:"dieGapSetting"` // inches
	Recommendations []string `json:"recommendations"`
}

// StabilityAssessment scores how hard the bubble will be to hold.
type StabilityAssessment struct {
	Score           int      `json:"score"`
	Rating          string   `json:"rating"` // stable | moderate | challenging
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// ConfidenceAssessment scores how far the request sits inside the engine's
// well-characterized envelope.
type ConfidenceAssessment struct {
	Score int      `json:"score"`
	Level string   `json:"level"` // high | medium | low
	Notes []string `json:"notes"`
}

// Settings is the full recommendation produced for one optimize request.
// It is a pure function of the request and the material table.
type Settings struct {
	Material     materials.ID `json:"material"`
	MaterialName string       `json:"materialName"`

	LayflatWidth float64 `json:"layflatWidth"` // inches
	DieSize      float64 `json:"dieSize"`      // inches
	BlowUpRatio  float64 `json:"blowUpRatio"`

	Barrel       BarrelSettings `json:"barrelTemperatures"`
	ScrewSpeed   SpeedRange     `json:"screwSpeed"` // RPM
	LineSpeed    SpeedRange     `json:"lineSpeed"`  // ft/min
	MeltPressure int            `json:"meltPressure"`

	AirRing    AirRingSettings   `json:"airRing"`
	FrostLine  FrostLineSettings `json:"frostLine"`
	NipRollers NipRollerSettings `json:"nipRollers"`
	IBC        IBCRecommendation `json:"ibc"`

	GaugeControl GaugeControlPlan     `json:"gaugeControl"`
	Stability    StabilityAssessment  `json:"bubbleStability"`
	Confidence   ConfidenceAssessment `json:"confidence"`

	Notes              []string `json:"notes"`
	CriticalParameters []string `json:"criticalParameters"`
}
