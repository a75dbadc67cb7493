package defects

import (
	"errors"
	"fmt"
)

// ErrUnknownDefect is returned for identities outside the fixed set.
var ErrUnknownDefect = errors.New("unknown defect")

var order = []ID{
	MeltFracture,
	SharkSkin,
	DieLines,
	Gels,
	VoidsBubbles,
	GaugeBands,
	Wrinkles,
	BubbleInstability,
	Blocking,
	Haze,
	Warping,
	InconsistentWall,
	SurfaceRoughness,
}

var profiles = map[ID]Profile{
	MeltFracture: {
		ID:          MeltFracture,
		Name:        "Melt Fracture",
		Description: "Gross surface distortion at the die exit, from a matte orange-peel texture up to helical ridges, caused by exceeding the critical shear stress of the melt.",
		Causes: []Cause{
			{
				Label:       "Output rate too high for die geometry",
				Probability: ProbabilityHigh,
				Category:    CategoryThroughput,
				Explanation: "Above the critical shear stress the melt slips and sticks at the die wall instead of flowing smoothly.",
				Adjustments: []string{
					"Reduce screw speed until the fracture pattern disappears, then creep back up",
					"Open the die gap to cut shear stress at the land",
					"Spread the same output across a larger die if one is available",
				},
			},
			{
				Label:       "Melt temperature too low",
				Probability: ProbabilityHigh,
				Category:    CategoryTempLow,
				Explanation: "A cold, viscous melt reaches the critical shear stress at much lower throughput.",
				Adjustments: []string{
					"Raise metering and die zone temperatures in 10°F steps",
					"Verify melt thermocouple reading against an immersion probe",
				},
			},
			{
				Label:       "No or depleted processing aid",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Fluoropolymer processing aid coats the die land and delays the onset of fracture; without it the window narrows sharply.",
				Adjustments: []string{
					"Add 400-800 ppm fluoropolymer processing aid masterbatch",
					"Allow 30-60 minutes for the die coating to condition before judging the result",
				},
			},
			{
				Label:       "Die land damaged or dirty",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "Scratches or plate-out on the land disturb the wall slip layer locally.",
				Adjustments: []string{
					"Pull and polish the die lips",
					"Purge with an abrasive purge compound before the next run",
				},
			},
		},
		GeneralRecommendations: []string{
			"Confirm the defect is fracture and not sharkskin: fracture is gross distortion, sharkskin is a fine perpendicular ridging.",
			"Log the screw speed at which fracture first appears; it is a repeatable fingerprint of the die and resin combination.",
		},
	},
	SharkSkin: {
		ID:          SharkSkin,
		Name:        "Shark Skin",
		Description: "Fine, regular ridges perpendicular to the extrusion direction giving the film a dull, rough finish, caused by surface tearing of the melt at the die exit.",
		Causes: []Cause{
			{
				Label:       "Die exit temperature too low",
				Probability: ProbabilityHigh,
				Category:    CategoryTempLow,
				Explanation: "The melt skin at the die exit is too cold to stretch and tears cyclically instead.",
				Adjustments: []string{
					"Raise the die zone setpoint 10-15°F",
					"Add or repair die lip heaters so the exit land runs hotter than the body",
				},
			},
			{
				Label:       "Line speed too high for melt state",
				Probability: ProbabilityMedium,
				Category:    CategoryThroughput,
				Explanation: "Higher drawdown raises the stretch rate at the die exit past what the melt skin can follow.",
				Adjustments: []string{
					"Slow the nip and accept thicker gauge while isolating the cause",
					"Rebalance output and haul-off so the drawdown ratio drops",
				},
			},
			{
				Label:       "Missing processing aid",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Processing aid relieves the exit stress the same way it delays melt fracture.",
				Adjustments: []string{
					"Introduce fluoropolymer processing aid at 400 ppm",
				},
			},
		},
		GeneralRecommendations: []string{
			"Sharkskin is an exit phenomenon; barrel changes upstream of the die rarely fix it on their own.",
			"Inspect film gloss under low-angle light to catch sharkskin before customers do.",
		},
	},
	DieLines: {
		ID:          DieLines,
		Name:        "Die Lines",
		Description: "Continuous longitudinal lines or streaks in the film, tracking a fixed position on the die circumference.",
		Causes: []Cause{
			{
				Label:       "Contamination hung up in the die",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "Degraded resin or foreign material lodged in the flow channel splits the melt stream and leaves a weld mark.",
				Adjustments: []string{
					"Purge hard with a high-viscosity purge resin",
					"If the line survives purging, pull and clean the die",
				},
			},
			{
				Label:       "Damaged die lip",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "A nick in the lip scores the melt at the same circumferential position on every wrap.",
				Adjustments: []string{
					"Run a brass shim around the lips to find the burr",
					"Stone and polish the damaged segment",
				},
			},
			{
				Label:       "Die temperature too low in one zone",
				Probability: ProbabilityMedium,
				Category:    CategoryTempLow,
				Explanation: "A cold spot raises local viscosity and starves flow at that position, printing a thin lane into the film.",
				Adjustments: []string{
					"Compare individual die heater zone readings; replace failed cartridges",
					"Raise the lagging zone to match its neighbors",
				},
			},
			{
				Label:       "Plate-out from additives",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "Slip and antiblock additives can deposit on the die land over long runs and build a ridge.",
				Adjustments: []string{
					"Schedule periodic lip cleaning during long campaigns",
					"Review additive loadings with the resin supplier",
				},
			},
		},
		GeneralRecommendations: []string{
			"Mark the die position against the line before stopping; a line that rotates with the die is in the die, one that stays fixed is downstream.",
			"Die lines usually worsen slowly; trend them per shift rather than judging a single roll.",
		},
	},
	Gels: {
		ID:          Gels,
		Name:        "Gels",
		Description: "Small transparent or discolored particles in the film, typically cross-linked or unmelted polymer.",
		Causes: []Cause{
			{
				Label:       "Resin degradation in dead spots",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "Material stagnating in transitions or behind the breaker plate cross-links over time and sheds into the melt stream.",
				Adjustments: []string{
					"Purge thoroughly at shutdown and startup",
					"Inspect the screen changer and adapter for hang-up areas",
				},
			},
			{
				Label:       "Melt temperature too high",
				Probability: ProbabilityHigh,
				Category:    CategoryTempHigh,
				Explanation: "Overheating accelerates oxidative cross-linking, especially with long residence time.",
				Adjustments: []string{
					"Lower metering zone temperature 10-15°F",
					"Reduce residence time by keeping output above the machine's minimum sensible rate",
				},
			},
			{
				Label:       "Unmelted resin from a cold feed",
				Probability: ProbabilityMedium,
				Category:    CategoryTempLow,
				Explanation: "A feed or compression zone running low leaves solid cores that survive to the die as clear gels.",
				Adjustments: []string{
					"Raise the compression zone toward the top of its window",
					"Check screw design against the resin's melting needs",
				},
			},
			{
				Label:       "Dirty or blinded screen pack",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "A torn screen lets captured gels re-enter the stream; a blinded one raises head pressure and melt temperature.",
				Adjustments: []string{
					"Change the screen pack and record the pressure drop",
					"Move to a finer mesh if gel counts stay high",
				},
			},
		},
		GeneralRecommendations: []string{
			"Classify gels under magnification: clear domes are unmelt, amber specks are degradation. The fix differs.",
			"A gel counter on the web pays for itself quickly on food-packaging work.",
		},
	},
	VoidsBubbles: {
		ID:          VoidsBubbles,
		Name:        "Voids / Bubbles",
		Description: "Entrapped gas pockets in the film wall, visible as lens-shaped voids or foamy streaks.",
		Causes: []Cause{
			{
				Label:       "Moisture in material",
				Probability: ProbabilityHigh,
				Category:    CategoryMoisture,
				Explanation: "Water flashing to steam in the melt creates voids that stretch into lenses during drawdown.",
				Adjustments: []string{
					"Dry the resin per supplier spec before extrusion",
					"Check dryer dew point and residence time, not just temperature",
					"Keep regrind covered; it picks up moisture far faster than virgin pellets",
				},
			},
			{
				Label:       "Melt temperature too high causing volatiles",
				Probability: ProbabilityMedium,
				Category:    CategoryTempHigh,
				Explanation: "Overheated resin releases decomposition volatiles that foam the melt.",
				Adjustments: []string{
					"Pull melt temperature back toward the middle of the material window",
					"Verify no zone controller is saturated full-on",
				},
			},
			{
				Label:       "Air entrained at the feed throat",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Irregular feeding or bridging gulps air that the screw cannot fully vent back.",
				Adjustments: []string{
					"Keep feed throat cooling on to prevent bridging",
					"Check hopper loading for steady head of material",
				},
			},
			{
				Label:       "Contaminated regrind",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "Inks, coatings, or foreign polymer in regrind gas off in the barrel.",
				Adjustments: []string{
					"Run virgin-only as a check; if voids clear, audit the regrind stream",
				},
			},
		},
		GeneralRecommendations: []string{
			"Voids concentrated at one circumferential position point to the die; voids everywhere point to the resin or the feed.",
			"Hold a film sample to a strong light; steam voids are smooth lenses while contamination voids have a particle at the center.",
		},
	},
	GaugeBands: {
		ID:          GaugeBands,
		Name:        "Gauge Bands",
		Description: "Repeating thick and thin lanes around the bubble circumference that build into hard and soft rings on the wound roll.",
		Causes: []Cause{
			{
				Label:       "Uneven die gap",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "Local gap variation feeds more melt into some lanes than others, and the variation lands at a fixed position.",
				Adjustments: []string{
					"Map gauge around the circumference and adjust die bolts against the map",
					"Re-center the mandrel if bolt adjustment runs out of range",
				},
			},
			{
				Label:       "Uneven air ring flow",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "Blocked or misadjusted air ring segments cool some lanes faster, freezing them thick.",
				Adjustments: []string{
					"Clean the air ring lips and plenum",
					"Check blower supply ducting for kinks and leaks",
				},
			},
			{
				Label:       "Die body temperature non-uniform",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Zone-to-zone temperature spread changes local viscosity and output around the circumference.",
				Adjustments: []string{
					"Compare die heater zones; hold them within 5°F of each other",
				},
			},
			{
				Label:       "Drafts across the bubble",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "Ambient air currents cool one side of the bubble and shift the frost line locally.",
				Adjustments: []string{
					"Shield the tower from doors, fans, and HVAC discharge",
				},
			},
		},
		GeneralRecommendations: []string{
			"Rotate or oscillate the die or nip so residual bands spread across the roll face instead of stacking.",
			"Fix bands at the source; oscillation hides them in the roll but the film still varies.",
		},
	},
	Wrinkles: {
		ID:          Wrinkles,
		Name:        "Wrinkles",
		Description: "Creases introduced at the collapsing frame or nip, running with or diagonal to the machine direction.",
		Causes: []Cause{
			{
				Label:       "Collapsing frame misaligned",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "If the frame is not square to the nip the two film faces travel different path lengths and the slack face folds.",
				Adjustments: []string{
					"Square the collapsing frame to the nip roll axis",
					"Set equal frame angles on both sides",
				},
			},
			{
				Label:       "Bubble too hot at the nip",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Film that has not finished cooling deforms in the nip instead of creasing flat.",
				Adjustments: []string{
					"Lower the frost line or add tower height/cooling",
					"Reduce output if cooling is at its limit",
				},
			},
			{
				Label:       "Nip pressure uneven across the face",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "A skewed or worn nip pulls one edge faster than the other.",
				Adjustments: []string{
					"Check nip roll parallelism with feeler stock at both ends",
					"Recondition worn rubber covers",
				},
			},
			{
				Label:       "Line speed surging",
				Probability: ProbabilityLow,
				Category:    CategoryThroughput,
				Explanation: "Speed hunting in the haul-off cyclically slackens the web.",
				Adjustments: []string{
					"Tune the nip drive loop; verify the speed reference is clean",
				},
			},
		},
		GeneralRecommendations: []string{
			"Diagonal wrinkles almost always mean asymmetry: frame, nip, or bubble off-center.",
			"Run layflat width checks on both edges; a width difference locates which face is slack.",
		},
	},
	BubbleInstability: {
		ID:          BubbleInstability,
		Name:        "Bubble Instability",
		Description: "The bubble breathes, dances, or snaps off: diameter or frost line will not hold steady.",
		Causes: []Cause{
			{
				Label:       "Melt temperature too high",
				Probability: ProbabilityHigh,
				Category:    CategoryTempHigh,
				Explanation: "An overheated melt loses the melt strength that carries the bubble's weight and inflation.",
				Adjustments: []string{
					"Drop barrel and die setpoints 10°F at a time toward the bottom of the window",
					"Check for a runaway zone controller",
				},
			},
			{
				Label:       "Output rate beyond cooling capacity",
				Probability: ProbabilityHigh,
				Category:    CategoryThroughput,
				Explanation: "When the air ring cannot freeze the film at the intended frost line, the bubble wanders looking for one.",
				Adjustments: []string{
					"Reduce screw speed until the frost line steadies",
					"Add chilled air or a dual-lip ring before chasing rate again",
				},
			},
			{
				Label:       "Air ring flow unbalanced or surging",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Pulsing or asymmetric cooling air pushes the bubble around mechanically.",
				Adjustments: []string{
					"Inspect blower inlet filters; a starving blower surges",
					"Balance air ring segment valves",
				},
			},
			{
				Label:       "IBC control loop hunting",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "An internal bubble cooling loop tuned too hot cycles the bubble diameter.",
				Adjustments: []string{
					"Slow the IBC valve response and re-tune from stable",
				},
			},
		},
		GeneralRecommendations: []string{
			"Stabilize cooling before touching temperatures; most dancing bubbles are cooling problems wearing a temperature disguise.",
			"Record which direction the frost line moved when instability began; rising means heat excess, falling means cooling excess.",
		},
	},
	Blocking: {
		ID:          Blocking,
		Name:        "Blocking",
		Description: "Film layers fuse or cling on the wound roll, resisting unwind or destroying the web on separation.",
		Causes: []Cause{
			{
				Label:       "Film wound too hot",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "Residual heat in the roll lets the layers sinter together under winding pressure.",
				Adjustments: []string{
					"Increase cooling between nip and winder; slow the line if needed",
					"Check web temperature at the winder with an IR gun; target below 110°F",
				},
			},
			{
				Label:       "Insufficient antiblock additive",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "Without antiblock particles the smooth film faces wet out against each other.",
				Adjustments: []string{
					"Raise antiblock masterbatch loading per the additive supplier's ladder",
					"Confirm the masterbatch carrier matches the film resin",
				},
			},
			{
				Label:       "Winding tension too high",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Over-tensioned rolls squeeze the layers into intimate contact.",
				Adjustments: []string{
					"Taper winding tension toward the outside of the roll",
				},
			},
			{
				Label:       "High slip additive migration time",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "Slip needs hours to bloom; rolls converted immediately after winding can still block.",
				Adjustments: []string{
					"Age rolls 24 hours before converting where the spec allows",
				},
			},
		},
		GeneralRecommendations: []string{
			"Blocking measured on the wound roll reflects winding conditions as much as the recipe; test both fresh and aged samples.",
		},
	},
	Haze: {
		ID:          Haze,
		Name:        "Haze",
		Description: "Loss of optical clarity: the film scatters light from surface roughness or internal crystalline structure.",
		Causes: []Cause{
			{
				Label:       "Melt temperature too low",
				Probability: ProbabilityHigh,
				Category:    CategoryTempLow,
				Explanation: "A cold melt keeps surface irregularities from leveling before the frost line, raising surface haze.",
				Adjustments: []string{
					"Raise die temperature toward the upper half of the window",
					"Confirm actual melt temperature with a probe, not just setpoints",
				},
			},
			{
				Label:       "Frost line too low",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Rapid quench close to the die can freeze in surface texture; too slow a quench grows internal haze. The frost line is the lever for both.",
				Adjustments: []string{
					"Move the frost line up or down one die diameter and compare haze readings",
				},
			},
			{
				Label:       "Excessive antiblock loading",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Mineral antiblock particles scatter light directly.",
				Adjustments: []string{
					"Trade some mineral antiblock for slip where blocking allows",
				},
			},
			{
				Label:       "Resin choice",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "High-density and high-crystallinity grades haze from spherulite growth regardless of process trim.",
				Adjustments: []string{
					"Discuss a clarity grade or an LDPE-rich blend with the supplier",
				},
			},
		},
		GeneralRecommendations: []string{
			"Split haze into surface and internal with a drop of mineral oil on the sample; oil removes surface haze, what remains is internal.",
		},
	},
	Warping: {
		ID:          Warping,
		Name:        "Warping",
		Description: "The finished film or bag curls, twists, or will not lie flat, from unbalanced orientation or cooling between the two faces.",
		Causes: []Cause{
			{
				Label:       "Uneven cooling between bubble faces",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "One face freezing earlier than the other locks in unequal shrinkage that releases later as curl.",
				Adjustments: []string{
					"Balance air ring flow and shield drafts",
					"Check collapsing frame surfaces for temperature difference side to side",
				},
			},
			{
				Label:       "Blow-up ratio outside the material window",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Extreme BUR skews the MD/TD orientation balance; relaxation after winding shows up as warp.",
				Adjustments: []string{
					"Bring BUR back inside the material's recommended range",
				},
			},
			{
				Label:       "Melt temperature too high at the die",
				Probability: ProbabilityMedium,
				Category:    CategoryTempHigh,
				Explanation: "A hot melt draws down unevenly, amplifying any cooling asymmetry.",
				Adjustments: []string{
					"Reduce die temperature toward the recommended value",
				},
			},
			{
				Label:       "Roll storage conditions",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "Rolls stored on end or in sun develop set that reads as warp at the converter.",
				Adjustments: []string{
					"Store rolls horizontally on racks at shop temperature",
				},
			},
		},
		GeneralRecommendations: []string{
			"Cut an unconstrained sample square and watch which way it moves; curl toward one face means that face cooled last.",
		},
	},
	InconsistentWall: {
		ID:          InconsistentWall,
		Name:        "Inconsistent Wall Thickness",
		Description: "Random or drifting gauge variation in the machine direction, distinct from fixed circumferential bands.",
		Causes: []Cause{
			{
				Label:       "Screw speed or output surging",
				Probability: ProbabilityHigh,
				Category:    CategoryThroughput,
				Explanation: "Output pulsing translates directly into MD gauge waves at the haul-off.",
				Adjustments: []string{
					"Watch melt pressure variation; more than ±50 PSI of swing means the screw is surging",
					"Stabilize feed zone temperature and hopper level",
				},
			},
			{
				Label:       "Melt temperature variation",
				Probability: ProbabilityHigh,
				Category:    CategoryNone,
				Explanation: "Cycling melt temperature cycles viscosity and therefore output at fixed screw speed.",
				Adjustments: []string{
					"Tune barrel zone PID loops; look for zones oscillating around setpoint",
				},
			},
			{
				Label:       "Nip speed variation",
				Probability: ProbabilityMedium,
				Category:    CategoryThroughput,
				Explanation: "Haul-off speed ripple stretches the web cyclically even with perfectly steady output.",
				Adjustments: []string{
					"Verify nip drive regulation under load",
					"Inspect nip roll bearings and gearbox",
				},
			},
			{
				Label:       "Inconsistent resin feed blend",
				Probability: ProbabilityLow,
				Category:    CategoryNone,
				Explanation: "Blender dosing errors shift viscosity batch to batch.",
				Adjustments: []string{
					"Calibrate gravimetric blender throughput per component",
				},
			},
		},
		GeneralRecommendations: []string{
			"Correlate a gauge trace with melt pressure on the same timebase; matching periods identify the upstream culprit.",
		},
	},
	SurfaceRoughness: {
		ID:          SurfaceRoughness,
		Name:        "Surface Roughness",
		Description: "General matte or pebbled film surface not traceable to discrete die defects.",
		Causes: []Cause{
			{
				Label:       "Melt temperature too low",
				Probability: ProbabilityHigh,
				Category:    CategoryTempLow,
				Explanation: "Insufficient melt relaxation leaves extrusion texture frozen into the surface.",
				Adjustments: []string{
					"Raise metering and die temperatures in 10°F steps",
				},
			},
			{
				Label:       "Poor resin melting or mixing",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Partially mixed melt carries viscosity domains that emboss the surface.",
				Adjustments: []string{
					"Raise compression zone temperature",
					"Consider a mixing section if the screw is a simple metering design",
				},
			},
			{
				Label:       "Onset of sharkskin",
				Probability: ProbabilityMedium,
				Category:    CategoryNone,
				Explanation: "Early sharkskin reads as uniform matte before it resolves into ridges.",
				Adjustments: []string{
					"Treat as sharkskin: raise die exit temperature, add processing aid",
				},
			},
			{
				Label:       "High output rate for die size",
				Probability: ProbabilityLow,
				Category:    CategoryThroughput,
				Explanation: "Shear-driven texture grows with specific output through the die gap.",
				Adjustments: []string{
					"Reduce output or open the die gap",
				},
			},
		},
		GeneralRecommendations: []string{
			"Compare inside and outside film faces; roughness on one face only points at the corresponding die lip or cooling side.",
		},
	},
}

// Get returns the profile for id. Identities outside the fixed set are a
// caller contract violation and yield ErrUnknownDefect.
func Get(id ID) (Profile, error) {
	p, ok := profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDefect, id)
	}
	return p, nil
}

// All returns defect identities in fixed declaration order.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}

// DisplayName returns the human-readable name for id, or the raw id string
// if it is outside the fixed set.
func DisplayName(id ID) string {
	if p, ok := profiles[id]; ok {
		return p.Name
	}
	return string(id)
}
