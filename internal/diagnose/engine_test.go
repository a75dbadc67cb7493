package diagnose

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

// Readings comfortably inside the LDPE processing window.
var ldpeNominal = CurrentSettings{MeltTemp: 340, ScrewSpeed: 50, LineSpeed: 100, DieTemp: 350}

// Readings comfortably inside the EVOH processing window.
var evohNominal = CurrentSettings{MeltTemp: 400, ScrewSpeed: 30, LineSpeed: 50, DieTemp: 420}

func evaluate(t *testing.T, matID materials.ID, defID defects.ID, s CurrentSettings) Result {
	t.Helper()
	mat, err := materials.Get(matID)
	require.NoError(t, err)
	def, err := defects.Get(defID)
	require.NoError(t, err)
	return Evaluate(Request{Material: matID, Defect: defID, Settings: s}, def, mat)
}

func causeByLabel(t *testing.T, r Result, label string) defects.Cause {
	t.Helper()
	for _, c := range r.Causes {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("cause %q not in result", label)
	return defects.Cause{}
}

func TestEVOHMoistureCauseEscalates(t *testing.T) {
	r := evaluate(t, materials.EVOH, defects.VoidsBubbles, evohNominal)

	c := causeByLabel(t, r, "Moisture in material")
	assert.Equal(t, defects.ProbabilityHigh, c.Probability)
	assert.Contains(t, c.Explanation, "hygroscopic")
}

func TestMoistureAnnotationOnlyForEVOH(t *testing.T) {
	r := evaluate(t, materials.LDPE, defects.VoidsBubbles, ldpeNominal)

	c := causeByLabel(t, r, "Moisture in material")
	assert.NotContains(t, c.Explanation, "hygroscopic")
}

func TestLowMeltTempEscalatesTemperatureCause(t *testing.T) {
	cold := ldpeNominal
	cold.MeltTemp = 300 // below LDPE's 320 floor

	r := evaluate(t, materials.LDPE, defects.DieLines, cold)

	c := causeByLabel(t, r, "Die temperature too low in one zone")
	assert.Equal(t, defects.ProbabilityHigh, c.Probability)
	assert.Contains(t, c.Explanation, "below the Low-Density Polyethylene (LDPE) window")

	// Escalated causes join the high tier behind the table's original highs.
	labels := make([]string, 0, len(r.Causes))
	for _, cause := range r.Causes {
		labels = append(labels, cause.Label)
	}
	assert.Equal(t, []string{
		"Contamination hung up in the die",
		"Damaged die lip",
		"Die temperature too low in one zone",
		"Plate-out from additives",
	}, labels)
}

func TestHighDieTempEscalatesTemperatureCause(t *testing.T) {
	hot := ldpeNominal
	hot.DieTemp = 380 // above LDPE's 370 die zone ceiling

	r := evaluate(t, materials.LDPE, defects.Warping, hot)

	c := causeByLabel(t, r, "Melt temperature too high at the die")
	assert.Equal(t, defects.ProbabilityHigh, c.Probability)
	assert.Contains(t, c.Explanation, "above the")
}

func TestScrewSpeedNearMaxEscalatesThroughputCause(t *testing.T) {
	fast := ldpeNominal
	fast.ScrewSpeed = 95 // within 10% of LDPE's 100 RPM maximum

	r := evaluate(t, materials.LDPE, defects.Wrinkles, fast)

	c := causeByLabel(t, r, "Line speed surging")
	assert.Equal(t, defects.ProbabilityHigh, c.Probability)
	assert.Contains(t, c.Explanation, "within 10%")
}

func TestNominalSettingsLeaveTiersUntouched(t *testing.T) {
	r := evaluate(t, materials.LDPE, defects.DieLines, ldpeNominal)

	def, err := defects.Get(defects.DieLines)
	require.NoError(t, err)
	require.Len(t, r.Causes, len(def.Causes))
	for i, c := range r.Causes {
		assert.Equal(t, def.Causes[i].Probability, c.Probability, "cause %q", c.Label)
		assert.Equal(t, def.Causes[i].Explanation, c.Explanation, "cause %q", c.Label)
	}
}

func TestEvaluateDoesNotMutateTable(t *testing.T) {
	cold := ldpeNominal
	cold.MeltTemp = 300
	evaluate(t, materials.LDPE, defects.DieLines, cold)

	def, err := defects.Get(defects.DieLines)
	require.NoError(t, err)
	for _, c := range def.Causes {
		if c.Label == "Die temperature too low in one zone" {
			assert.Equal(t, defects.ProbabilityMedium, c.Probability)
			assert.False(t, strings.Contains(c.Explanation, "corroborates"))
		}
	}
}

func TestRecommendationAssemblyOrder(t *testing.T) {
	r := evaluate(t, materials.EVOH, defects.VoidsBubbles, evohNominal)

	def, err := defects.Get(defects.VoidsBubbles)
	require.NoError(t, err)

	// Defect generals first, then material advisories, then process checks.
	require.Len(t, r.GeneralRecommendations, len(def.GeneralRecommendations)+4)
	assert.Equal(t, def.GeneralRecommendations, r.GeneralRecommendations[:len(def.GeneralRecommendations)])
	assert.Contains(t, r.GeneralRecommendations[len(def.GeneralRecommendations)], "dryer dew point")

	tail := r.GeneralRecommendations[len(r.GeneralRecommendations)-2:]
	for _, rec := range tail {
		assert.True(t, strings.HasPrefix(rec, "Process check:"), "rec %q", rec)
	}
}

func TestDefectsWithoutProcessChecksGetOnlyAdvisories(t *testing.T) {
	r := evaluate(t, materials.LDPE, defects.Blocking, ldpeNominal)

	def, err := defects.Get(defects.Blocking)
	require.NoError(t, err)
	assert.Len(t, r.GeneralRecommendations, len(def.GeneralRecommendations)+1)
}

func TestServiceUnknownIdentities(t *testing.T) {
	svc := NewService()

	_, err := svc.Diagnose(Request{Material: "pvc", Defect: defects.Gels, Settings: ldpeNominal})
	require.Error(t, err)
	assert.True(t, errors.Is(err, materials.ErrUnknownMaterial))

	_, err = svc.Diagnose(Request{Material: materials.LDPE, Defect: "fisheyes", Settings: ldpeNominal})
	require.Error(t, err)
	assert.True(t, errors.Is(err, defects.ErrUnknownDefect))
}
