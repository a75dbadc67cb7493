package defects

// ID identifies one of the supported defect types.
type ID string

const (
	MeltFracture      ID = "melt_fracture"
	SharkSkin         ID = "shark_skin"
	DieLines          ID = "die_lines"
	Gels              ID = "gels"
	VoidsBubbles      ID = "voids_bubbles"
	GaugeBands        ID = "gauge_bands"
	Wrinkles          ID = "wrinkles"
	BubbleInstability ID = "bubble_instability"
	Blocking          ID = "blocking"
	Haze              ID = "haze"
	Warping           ID = "warping"
	InconsistentWall  ID = "inconsistent_wall_thickness"
	SurfaceRoughness  ID = "surface_roughness"
)

// Probability is the likelihood tier assigned to a cause.
type Probability string

const (
	ProbabilityHigh   Probability = "high"
	ProbabilityMedium Probability = "medium"
	ProbabilityLow    Probability = "low"
)

// Rank orders tiers for sorting; lower sorts first.
func (p Probability) Rank() int {
	switch p {
	case ProbabilityHigh:
		return 0
	case ProbabilityMedium:
		return 1
	default:
		return 2
	}
}

// Category is the structured tag the diagnoser keys its escalation rules on.
// Tags are assigned at table definition time, one per cause, from the cause
// label's subject matter.
type Category string

const (
	CategoryNone       Category = ""
	CategoryTempLow    Category = "temperature-low"
	CategoryTempHigh   Category = "temperature-high"
	CategoryThroughput Category = "throughput"
	CategoryMoisture   Category = "moisture"
)

// Cause is one candidate explanation for a defect.
type Cause struct {
	Label       string      `json:"cause"`
	Probability Probability `json:"probability"`
	Explanation string      `json:"explanation"`
	Adjustments []string    `json:"adjustments"`
	Category    Category    `json:"-"`
}

// Profile is the static diagnostic entry for one defect type.
type Profile struct {
	ID                     ID       `json:"id"`
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	Causes                 []Cause  `json:"causes"`
	GeneralRecommendations []string `json:"generalRecommendations"`
}
