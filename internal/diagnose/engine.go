package diagnose

import (
	"fmt"
	"sort"

	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

// settingsFlags are the boolean comparisons of live readings against the
// material's processing window.
type settingsFlags struct {
	meltTempLow    bool
	meltTempHigh   bool
	dieTempLow     bool
	dieTempHigh    bool
	screwSpeedHigh bool
}

func flagsFor(s CurrentSettings, mat materials.Profile) settingsFlags {
	return settingsFlags{
		meltTempLow:    s.MeltTemp < mat.MeltTempRange.Min,
		meltTempHigh:   s.MeltTemp > mat.MeltTempRange.Max,
		dieTempLow:     s.DieTemp < mat.Barrel.Die.Min,
		dieTempHigh:    s.DieTemp > mat.Barrel.Die.Max,
		screwSpeedHigh: s.ScrewSpeed > mat.ScrewSpeedRange.Max*0.9,
	}
}

// Evaluate re-ranks the defect's static cause list against the live
// settings and assembles the recommendation set. Pure: the table profiles
// are copied, never mutated.
func Evaluate(req Request, def defects.Profile, mat materials.Profile) Result {
	flags := flagsFor(req.Settings, mat)

	causes := make([]defects.Cause, len(def.Causes))
	copy(causes, def.Causes)

	for i := range causes {
		escalate, note := escalation(causes[i].Category, flags, mat)
		if !escalate {
			continue
		}
		causes[i].Probability = defects.ProbabilityHigh
		causes[i].Explanation = causes[i].Explanation + " " + note
	}

	// Stable: causes sharing a tier keep their table order.
	sort.SliceStable(causes, func(i, j int) bool {
		return causes[i].Probability.Rank() < causes[j].Probability.Rank()
	})

	recs := make([]string, 0, len(def.GeneralRecommendations)+8)
	recs = append(recs, def.GeneralRecommendations...)
	recs = append(recs, materialAdvisories(mat.ID)...)
	recs = append(recs, processChecks(def.ID)...)

	return Result{
		Defect:                 def.ID,
		Name:                   def.Name,
		Description:            def.Description,
		Causes:                 causes,
		GeneralRecommendations: recs,
	}
}

// escalation decides whether a cause's category is corroborated by the live
// settings, and returns the annotation to append to its explanation.
func escalation(cat defects.Category, f settingsFlags, mat materials.Profile) (bool, string) {
	switch cat {
	case defects.CategoryTempLow:
		if f.meltTempLow || f.dieTempLow {
			return true, fmt.Sprintf("Your current temperatures read below the %s window, which corroborates this cause.", mat.Name)
		}
	case defects.CategoryTempHigh:
		if f.meltTempHigh || f.dieTempHigh {
			return true, fmt.Sprintf("Your current temperatures read above the %s window, which corroborates this cause.", mat.Name)
		}
	case defects.CategoryThroughput:
		if f.screwSpeedHigh {
			return true, "Your screw speed is within 10% of the material's maximum, which corroborates this cause."
		}
	case defects.CategoryMoisture:
		if mat.ID == materials.EVOH {
			return true, "EVOH is strongly hygroscopic; with this material, moisture should be assumed guilty until drying records prove otherwise."
		}
	}
	return false, ""
}
