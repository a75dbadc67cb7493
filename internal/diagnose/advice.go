package diagnose

import (
	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

// materialAdvisories are the fixed per-material text blocks appended to
// every diagnosis for that material.
var materialAdvisoryTable = map[materials.ID][]string{
	materials.HDPE: {
		"HDPE runs a high-stalk bubble; several defects trace back to stalk height drift before anything else.",
		"Check melt temperature at the screen changer, not just zone readings; HDPE shear heating understates on the controllers.",
	},
	materials.LDPE: {
		"LDPE is forgiving; if a defect persists after settings corrections, suspect hardware or contamination over the recipe.",
	},
	materials.LLDPE: {
		"LLDPE draws more motor load and head pressure than LDPE at the same output; rule out drive and pressure limits when output-related causes rank high.",
		"A few percent LDPE in the blend stabilizes LLDPE bubbles without materially changing film properties.",
	},
	materials.EVOH: {
		"Verify dryer dew point and residence time records for the lot in the machine; EVOH defects are moisture defects until proven otherwise.",
		"Audit residence time: EVOH degrades quickly at melt temperature and degradation mimics several other defects.",
	},
}

func materialAdvisories(id materials.ID) []string {
	return materialAdvisoryTable[id]
}

// processCheckTable holds defect-specific process-check lists. Only a
// subset of defects carry one; the rest contribute nothing.
var processCheckTable = map[defects.ID][]string{
	defects.MeltFracture: {
		"Process check: note the exact screw speed where fracture onsets and compare against the last run's fingerprint.",
		"Process check: verify die gap against the setup sheet; a closed-down gap reproduces fracture at normal rates.",
	},
	defects.SharkSkin: {
		"Process check: measure actual die lip temperature with a surface probe; lip heaters fail quietly.",
		"Process check: confirm processing aid masterbatch is in the blend and within shelf life.",
	},
	defects.DieLines: {
		"Process check: mark die position against the frame and determine whether the line rotates with the die.",
		"Process check: review the purge log; lines appearing after a resin change usually mean incomplete purging.",
	},
	defects.VoidsBubbles: {
		"Process check: pull a dryer sample and measure moisture directly rather than trusting the dryer display.",
		"Process check: inspect the feed throat for bridging and confirm throat cooling water is flowing.",
	},
	defects.Warping: {
		"Process check: compare air ring segment flows side to side; warp follows cooling asymmetry.",
		"Process check: measure layflat edge-to-edge temperature at the collapsing frame exit.",
	},
	defects.InconsistentWall: {
		"Process check: trend melt pressure over ten minutes; swing beyond ±50 PSI indicates screw surging.",
		"Process check: verify hopper level control keeps a constant head of resin on the feed throat.",
	},
	defects.SurfaceRoughness: {
		"Process check: probe actual melt temperature; roughness with setpoints at recommended values usually means a lying thermocouple.",
	},
}

func processChecks(id defects.ID) []string {
	return processCheckTable[id]
}
