package materials

// ID identifies one of the supported resin types.
type ID string

const (
	HDPE  ID = "hdpe"
	LDPE  ID = "ldpe"
	LLDPE ID = "lldpe"
	EVOH  ID = "evoh"
)

// Range is a closed numeric window.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the window.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Mid returns the midpoint of the window.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Clamp forces v into the window.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// ZoneTemps is one barrel zone's temperature window in °F.
type ZoneTemps struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Recommended float64 `json:"recommended"`
}

// BarrelTemps holds the four heating zones from hopper to die.
type BarrelTemps struct {
	Feed        ZoneTemps `json:"feed"`
	Compression ZoneTemps `json:"compression"`
	Metering    ZoneTemps `json:"metering"`
	Die         ZoneTemps `json:"die"`
}

// Profile is the full processing window for one material. All values are
// load-time constants; profiles are returned by value and never mutated.
type Profile struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`

	MeltTempRange       Range `json:"meltTempRange"`       // °F
	ProcessingTempRange Range `json:"processingTempRange"` // °F

	Barrel BarrelTemps `json:"barrelTemperatures"`

	ScrewSpeedRange   Range `json:"screwSpeedRange"`   // RPM
	MeltPressureRange Range `json:"meltPressureRange"` // PSI
	BlowUpRatioRange  Range `json:"blowUpRatioRange"`

	// FrostLineFactor scales frost line height targets relative to die size.
	FrostLineFactor float64 `json:"frostLineHeightFactor"`

	// Density in lb/in³, used for mass-per-foot line speed math.
	Density float64 `json:"density"`

	Notes []string `json:"notes"`
}
