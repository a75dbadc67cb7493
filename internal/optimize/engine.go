package optimize

import (
	"fmt"
	"math"

	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

// specificOutput is the assumed throughput per RPM, lbs/hr per RPM.
const specificOutput = 5.0

// referenceRate is the production rate the material pressure windows are
// characterized at, lbs/hr.
const referenceRate = 200.0

// Compute derives a full settings recommendation from the target spec and
// the material's processing window. It is pure: no I/O, no state, identical
// inputs always produce identical output.
func Compute(req Request, mat materials.Profile) Settings {
	layflat := math.Pi * req.TargetOD / 2
	dieSize := selectDieSize(req.TargetOD)
	bur := blowUpRatio(req.TargetOD, dieSize, mat)
	lineSpeed := lineSpeedRange(req, mat)

	notes := make([]string, 0, len(mat.Notes)+1)
	notes = append(notes, fmt.Sprintf("Estimated layflat width: %.1f in (π × %.1f OD / 2).", layflat, req.TargetOD))
	notes = append(notes, mat.Notes...)

	return Settings{
		Material:     mat.ID,
		MaterialName: mat.Name,

		LayflatWidth: layflat,
		DieSize:      dieSize,
		BlowUpRatio:  bur,

		Barrel:       barrelSettings(req.ProductionRate, mat),
		ScrewSpeed:   screwSpeedRange(req.ProductionRate, mat),
		LineSpeed:    lineSpeed,
		MeltPressure: meltPressureTarget(req.ProductionRate, mat),

		AirRing:    airRingSettings(req, mat),
		FrostLine:  frostLineSettings(req, dieSize, mat),
		NipRollers: nipRollerSettings(req, lineSpeed, mat),
		IBC:        ibcRecommendation(req, mat),

		GaugeControl: gaugeControlPlan(req, mat),
		Stability:    assessStability(req, bur, mat),
		Confidence:   assessConfidence(req, mat),

		Notes:              notes,
		CriticalParameters: criticalParameters(req, mat),
	}
}

// selectDieSize steps the target OD onto the nominal die sizes in stock.
func selectDieSize(od float64) float64 {
	switch {
	case od <= 10:
		return 4
	case od <= 20:
		return 6
	case od <= 35:
		return 8
	case od <= 50:
		return 10
	default:
		return 12
	}
}

func blowUpRatio(od, dieSize float64, mat materials.Profile) float64 {
	bur := mat.BlowUpRatioRange.Clamp(od / dieSize)
	return math.Round(bur*100) / 100
}

func screwSpeedRange(rate float64, mat materials.Profile) SpeedRange {
	base := rate / specificOutput
	return SpeedRange{
		Min:         roundInt(math.Max(mat.ScrewSpeedRange.Min, base*0.8)),
		Recommended: roundInt(mat.ScrewSpeedRange.Clamp(base)),
		Max:         roundInt(math.Min(mat.ScrewSpeedRange.Max, base*1.2)),
	}
}

func lineSpeedRange(req Request, mat materials.Profile) SpeedRange {
	filmArea := math.Pi * req.TargetOD * (req.TargetGauge / 1000) // in²
	volumePerFoot := filmArea * 12                                // in³/ft
	massPerFoot := volumePerFoot * mat.Density                    // lb/ft
	target := req.ProductionRate / massPerFoot / 60               // ft/min
	return SpeedRange{
		Min:         roundInt(target * 0.85),
		Recommended: roundInt(target),
		Max:         roundInt(target * 1.15),
	}
}

func meltPressureTarget(rate float64, mat materials.Profile) int {
	scale := math.Sqrt(rate / referenceRate)
	return roundInt(mat.MeltPressureRange.Clamp(mat.MeltPressureRange.Mid() * scale))
}

func barrelSettings(rate float64, mat materials.Profile) BarrelSettings {
	out := BarrelSettings{
		Feed:        mat.Barrel.Feed.Recommended,
		Compression: mat.Barrel.Compression.Recommended,
		Metering:    mat.Barrel.Metering.Recommended,
		Die:         mat.Barrel.Die.Recommended,
	}
	// High rates need extra melting energy downstream; the feed zone stays
	// put so pellets keep conveying.
	if rate > 300 {
		out.Compression += 10
		out.Metering += 10
		out.Die += 10
	}
	return out
}

func airRingSettings(req Request, mat materials.Profile) AirRingSettings {
	var lipGap string
	switch {
	case req.ProductionRate <= 150:
		lipGap = "Narrow lip gap (0.025-0.040 in) for gentle, precise cooling"
	case req.ProductionRate <= 300:
		lipGap = "Medium lip gap (0.040-0.060 in) balancing volume and velocity"
	default:
		lipGap = "Wide lip gap (0.060-0.090 in) to move enough air at high output"
	}

	var velocity string
	switch mat.ID {
	case materials.HDPE:
		velocity = "High air velocity for rapid quench below the stalk"
	case materials.EVOH:
		velocity = "Moderate air velocity; aggressive air chatters a low-melt-strength bubble"
	default:
		velocity = "Medium-high air velocity"
	}

	coolingLoad := req.ProductionRate * req.TargetOD
	var capacity string
	switch {
	case coolingLoad <= 2000:
		capacity = "Standard single-lip air ring is sufficient"
	case coolingLoad <= 5000:
		capacity = "Dual-lip air ring recommended at this cooling load"
	default:
		capacity = "Dual-lip air ring with chilled supply air required"
	}

	return AirRingSettings{LipGap: lipGap, AirVelocity: velocity, CoolingCapacity: capacity}
}

func frostLineSettings(req Request, dieSize float64, mat materials.Profile) FrostLineSettings {
	rateAdj := 1.0
	if req.ProductionRate > 300 {
		rateAdj = 1.1
	} else if req.ProductionRate < 100 {
		rateAdj = 0.9
	}

	var note string
	switch mat.ID {
	case materials.HDPE:
		note = "Run a high stalk: hold the frost line toward the top of this window for transverse strength."
	case materials.LLDPE:
		note = "Keep the bubble in-pocket; LLDPE prefers the lower half of this window."
	case materials.EVOH:
		note = "Freeze the barrier layer early; stay at the bottom of this window to limit crystallinity variation."
	default:
		note = "LDPE holds a stable frost line anywhere in this window; pick for optics."
	}

	scale := dieSize * mat.FrostLineFactor * rateAdj
	return FrostLineSettings{
		Min:     scale * 3,
		Optimal: scale * 4.5,
		Max:     scale * 6,
		Note:    note,
	}
}

func nipRollerSettings(req Request, lineSpeed SpeedRange, mat materials.Profile) NipRollerSettings {
	var pressure string
	switch {
	case req.TargetGauge < 1:
		pressure = "Low nip pressure; thin film wrinkles and stretches under a heavy nip"
	case req.TargetGauge <= 3:
		pressure = "Moderate nip pressure for a clean air seal without gauge distortion"
	default:
		pressure = "Firm nip pressure; thick film needs force to collapse flat"
	}

	var temperature string
	switch mat.ID {
	case materials.HDPE:
		temperature = "Cool the nip rolls; HDPE arrives hot off a high stalk"
	case materials.EVOH:
		temperature = "Hold nip rolls near ambient; thermal shock stresses the barrier layer"
	default:
		temperature = "Ambient nip rolls are adequate"
	}

	return NipRollerSettings{
		Speed:       fmt.Sprintf("Match nip speed to the recommended line speed (%d ft/min) to hold web tension", lineSpeed.Recommended),
		Pressure:    pressure,
		Temperature: temperature,
	}
}

func ibcRecommendation(req Request, mat materials.Profile) IBCRecommendation {
	coolingLoad := req.ProductionRate * req.TargetOD
	recommended := coolingLoad > 4000 || (req.TargetGauge > 3 && req.ProductionRate > 250)
	if !recommended {
		return IBCRecommendation{
			Recommended: false,
			AirFlow:     "None",
			Notes:       "IBC not required at this cooling load; external air ring capacity is sufficient.",
		}
	}

	out := IBCRecommendation{Recommended: true}
	switch mat.ID {
	case materials.HDPE:
		out.AirFlow = "High exchange rate"
		out.Notes = "IBC shortens the stalk transition and steadies the frost line at high HDPE outputs."
	case materials.EVOH:
		out.AirFlow = "Low, steady exchange rate"
		out.Notes = "Gentle IBC keeps barrier-property consistency; avoid quench shocks to the EVOH layer."
	default:
		out.AirFlow = "Moderate exchange rate"
		out.Notes = "IBC adds the cooling headroom this rate demands and improves gauge uniformity."
	}
	return out
}

func gaugeControlPlan(req Request, mat materials.Profile) GaugeControlPlan {
	var variation string
	switch {
	case req.TargetGauge < 1:
		variation = "±10% (thin films run to looser relative tolerance)"
	case req.TargetGauge <= 3:
		variation = "±7%"
	default:
		variation = "±5%"
	}

	recs := []string{
		"Map gauge around the full circumference before and after any die bolt change.",
		"Rotate or oscillate the die or nip so residual bands distribute across the roll.",
		"Hold the frost line steady; gauge control chases a moving frost line forever.",
	}
	if mat.ID == materials.HDPE {
		recs = append(recs, "With HDPE's narrow die gap, make bolt adjustments in small steps and wait a full bubble turnover between them.")
	}
	if req.TargetGauge < 1 {
		recs = append(recs, "Below 1 mil, prefer auto-gauge dies; manual bolt control rarely holds sub-mil tolerance.")
	}

	return GaugeControlPlan{
		TargetVariation: variation,
		DieGapSetting:   req.TargetGauge * 15 / 1000,
		Recommendations: recs,
	}
}

func assessStability(req Request, bur float64, mat materials.Profile) StabilityAssessment {
	score := 100
	var factors, recs []string

	if bur > 3.5 {
		score -= 15
		factors = append(factors, fmt.Sprintf("High blow-up ratio (%.2f) thins the bubble wall early and amplifies draft sensitivity.", bur))
		recs = append(recs, "Consider the next larger die to bring BUR down.")
	} else if bur < 2.0 {
		score += 5
		factors = append(factors, fmt.Sprintf("Low blow-up ratio (%.2f) keeps the bubble compact and easy to hold.", bur))
	}

	if req.TargetGauge < 0.75 {
		score -= 15
		factors = append(factors, "Sub-0.75 mil film gives the bubble very little wall to stabilize itself with.")
		recs = append(recs, "Shield the tower from drafts completely before starting thin-gauge work.")
	} else if req.TargetGauge < 1.5 {
		score -= 5
		factors = append(factors, "Thin gauge leaves modest margin for cooling asymmetry.")
	}

	if req.ProductionRate > 400 {
		score -= 10
		factors = append(factors, "Rates above 400 lbs/hr push most single-ring cooling setups near their stability limit.")
		recs = append(recs, "Budget for dual-lip air and IBC before committing to this rate.")
	}

	switch mat.ID {
	case materials.LLDPE:
		score -= 5
		factors = append(factors, "LLDPE's lower melt strength makes the bubble more sensitive than LDPE.")
	case materials.HDPE:
		score -= 10
		factors = append(factors, "HDPE's high-stalk process trades stability for orientation; stalk height control is critical.")
		recs = append(recs, "Use an iris or sizing cage to steady the stalk.")
	case materials.EVOH:
		score -= 15
		factors = append(factors, "EVOH has the lowest melt strength of the supported materials; the window is narrow.")
		recs = append(recs, "Make all changes in small increments; EVOH bubbles recover poorly from upsets.")
	}

	if req.TargetOD > 40 {
		score -= 10
		factors = append(factors, "Bubbles above 40 in OD present a large sail area to ambient air movement.")
	}

	rating := "challenging"
	switch {
	case score >= 75:
		rating = "stable"
	case score >= 50:
		rating = "moderate"
	}

	return StabilityAssessment{Score: score, Rating: rating, Factors: factors, Recommendations: recs}
}

func assessConfidence(req Request, mat materials.Profile) ConfidenceAssessment {
	score := 100
	var notes []string

	if req.ProductionRate < 50 {
		score -= 20
		notes = append(notes, "Production rates below 50 lbs/hr sit outside the envelope these scaling rules were characterized in.")
	} else if req.ProductionRate > 500 {
		score -= 15
		notes = append(notes, "Production rates above 500 lbs/hr extrapolate beyond the characterized envelope.")
	}

	if req.TargetGauge < 0.5 {
		score -= 25
		notes = append(notes, "Sub-0.5 mil gauge is specialty territory; treat these settings as a starting point only.")
	} else if req.TargetGauge > 10 {
		score -= 15
		notes = append(notes, "Above 10 mils the process behaves more like heavy sheet than film; verify cooling empirically.")
	}

	if req.TargetOD < 5 {
		score -= 10
		notes = append(notes, "Very small bubbles magnify die and air ring asymmetries.")
	} else if req.TargetOD > 60 {
		score -= 10
		notes = append(notes, "Bubbles above 60 in OD depend heavily on plant-specific tower conditions.")
	}

	if mat.ID == materials.EVOH {
		score -= 10
		notes = append(notes, "EVOH results depend on moisture control; confirm resin is dried to below 0.1% before trusting these settings.")
	}

	level := "low"
	switch {
	case score >= 80:
		level = "high"
	case score >= 60:
		level = "medium"
	}

	return ConfidenceAssessment{Score: score, Level: level, Notes: notes}
}

func criticalParameters(req Request, mat materials.Profile) []string {
	out := []string{
		"Die gap uniformity: re-verify bolt settings after every temperature change.",
		"Frost line height consistency: hold it steady before judging any other adjustment.",
	}
	if mat.ID == materials.EVOH {
		out = append(out, "Resin moisture: dryer dew point and residence time are part of the recipe for EVOH.")
		out = append(out, "Melt temperature uniformity: EVOH degrades within minutes of an overshoot.")
	}
	if mat.ID == materials.HDPE {
		out = append(out, "Stalk height: lock it down before touching gauge or temperatures.")
	}
	if req.TargetGauge < 1 {
		out = append(out, "Web tension: thin gauge stretches permanently above a narrow tension band.")
	}
	if req.ProductionRate > 300 {
		out = append(out, "Melt temperature stability: high-rate shear heating drifts upward over the first hour.")
	}
	return out
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
