package materials

import (
	"errors"
	"fmt"
)

// ErrUnknownMaterial is returned for identities outside the fixed set.
var ErrUnknownMaterial = errors.New("unknown material")

// order fixes the listing order for All and the reference endpoints.
var order = []ID{HDPE, LDPE, LLDPE, EVOH}

var profiles = map[ID]Profile{
	HDPE: {
		ID:                  HDPE,
		Name:                "High-Density Polyethylene (HDPE)",
		MeltTempRange:       Range{Min: 380, Max: 430},
		ProcessingTempRange: Range{Min: 350, Max: 450},
		Barrel: BarrelTemps{
			Feed:        ZoneTemps{Min: 340, Max: 380, Recommended: 360},
			Compression: ZoneTemps{Min: 360, Max: 410, Recommended: 390},
			Metering:    ZoneTemps{Min: 380, Max: 430, Recommended: 410},
			Die:         ZoneTemps{Min: 390, Max: 440, Recommended: 420},
		},
		ScrewSpeedRange:   Range{Min: 20, Max: 120},
		MeltPressureRange: Range{Min: 2000, Max: 5000},
		BlowUpRatioRange:  Range{Min: 2.0, Max: 4.5},
		FrostLineFactor:   1.4,
		Density:           0.035,
		Notes: []string{
			"Run HDPE with a high-stalk bubble; the long neck builds the transverse orientation the film needs for stiffness.",
			"HDPE tolerates high screw speeds but melt temperature climbs quickly above 100 RPM; watch the metering zone.",
			"Use a narrow die gap relative to final gauge to keep drawdown under control.",
		},
	},
	LDPE: {
		ID:                  LDPE,
		Name:                "Low-Density Polyethylene (LDPE)",
		MeltTempRange:       Range{Min: 320, Max: 360},
		ProcessingTempRange: Range{Min: 300, Max: 380},
		Barrel: BarrelTemps{
			Feed:        ZoneTemps{Min: 300, Max: 340, Recommended: 320},
			Compression: ZoneTemps{Min: 310, Max: 350, Recommended: 335},
			Metering:    ZoneTemps{Min: 320, Max: 360, Recommended: 345},
			Die:         ZoneTemps{Min: 330, Max: 370, Recommended: 350},
		},
		ScrewSpeedRange:   Range{Min: 15, Max: 100},
		MeltPressureRange: Range{Min: 1000, Max: 3500},
		BlowUpRatioRange:  Range{Min: 1.5, Max: 3.5},
		FrostLineFactor:   1.0,
		Density:           0.033,
		Notes: []string{
			"LDPE is the most forgiving blown film resin; its high melt strength gives a stable bubble across a wide window.",
			"Keep melt temperature moderate; excess heat costs optical clarity and invites gels.",
		},
	},
	LLDPE: {
		ID:                  LLDPE,
		Name:                "Linear Low-Density Polyethylene (LLDPE)",
		MeltTempRange:       Range{Min: 350, Max: 400},
		ProcessingTempRange: Range{Min: 330, Max: 420},
		Barrel: BarrelTemps{
			Feed:        ZoneTemps{Min: 320, Max: 360, Recommended: 340},
			Compression: ZoneTemps{Min: 340, Max: 385, Recommended: 365},
			Metering:    ZoneTemps{Min: 355, Max: 400, Recommended: 380},
			Die:         ZoneTemps{Min: 365, Max: 410, Recommended: 390},
		},
		ScrewSpeedRange:   Range{Min: 20, Max: 110},
		MeltPressureRange: Range{Min: 1500, Max: 4500},
		BlowUpRatioRange:  Range{Min: 1.8, Max: 3.0},
		FrostLineFactor:   1.1,
		Density:           0.034,
		Notes: []string{
			"LLDPE's lower melt strength wants an in-pocket bubble and a wider die gap than LDPE.",
			"Expect higher motor load and head pressure than LDPE at the same output; the narrow molecular weight distribution shears harder.",
			"Blending a few percent LDPE noticeably improves bubble stability.",
		},
	},
	EVOH: {
		ID:                  EVOH,
		Name:                "Ethylene Vinyl Alcohol (EVOH)",
		MeltTempRange:       Range{Min: 390, Max: 430},
		ProcessingTempRange: Range{Min: 380, Max: 440},
		Barrel: BarrelTemps{
			Feed:        ZoneTemps{Min: 350, Max: 390, Recommended: 370},
			Compression: ZoneTemps{Min: 380, Max: 420, Recommended: 400},
			Metering:    ZoneTemps{Min: 390, Max: 430, Recommended: 410},
			Die:         ZoneTemps{Min: 400, Max: 435, Recommended: 420},
		},
		ScrewSpeedRange:   Range{Min: 10, Max: 60},
		MeltPressureRange: Range{Min: 1000, Max: 3000},
		BlowUpRatioRange:  Range{Min: 1.5, Max: 2.5},
		FrostLineFactor:   0.8,
		Density:           0.042,
		Notes: []string{
			"Dry EVOH to below 0.1% moisture before extrusion; the barrier layer is extremely hygroscopic.",
			"EVOH degrades fast at residence; avoid long holds at melt temperature and purge promptly on line stops.",
			"Keep the processing window narrow; the gap between melting and degradation is small for barrier grades.",
		},
	},
}

// Get returns the profile for id. Identities outside the fixed set are a
// caller contract violation and yield ErrUnknownMaterial.
func Get(id ID) (Profile, error) {
	p, ok := profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, id)
	}
	return p, nil
}

// All returns material identities in fixed declaration order.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}
